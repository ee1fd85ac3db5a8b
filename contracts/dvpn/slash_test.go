package dvpn_test

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/dvpn-contract/contracts/dvpn/dvpnconst"
	dvpnrpc "github.com/nspcc-dev/dvpn-contract/rpc/dvpn"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestSlashNode(t *testing.T) {
	x := newTestEnv(t)
	op := x.registerNode(t, defaultCapacity)
	attestor := x.invoker(x.authority)

	x.invoker(op).InvokeFail(t, dvpnconst.ErrUnauthorized, "slashNode", op.ScriptHash(), int64(1), "self")
	attestor.InvokeFail(t, dvpnconst.ErrInvalidAmount, "slashNode", op.ScriptHash(), int64(-1), "negative")

	h := attestor.Invoke(t, stackitem.Null{}, "slashNode", op.ScriptHash(), int64(4_0000_0000), "downtime")
	events, err := dvpnrpc.NodeSlashedEventsFromApplicationLog(x.applicationLog(t, h))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, "downtime", events[0].Reason)

	n := x.node(t, op.ScriptHash())
	require.Equal(t, int64(6_0000_0000), n.StakeAmount.Int64())
	require.True(t, n.LastSlashedAt.Sign() > 0)

	attestor.Invoke(t, stackitem.Null{}, "slashNode", op.ScriptHash(), int64(100_0000_0000), "fraud")
	require.Zero(t, x.node(t, op.ScriptHash()).StakeAmount.Sign())

	// Slashing is bookkeeping only.
	x.e.CheckGASBalance(t, x.dvpnHash, big.NewInt(defaultStake))
}

func TestSlashNode_RotatedAttestor(t *testing.T) {
	x := newTestEnv(t)
	op := x.registerNode(t, defaultCapacity)
	attestor := x.e.NewAccount(t)

	x.invoker(x.authority).Invoke(t, stackitem.Null{}, "setAttestor",
		x.authority.ScriptHash(), attestor.ScriptHash())

	x.invoker(x.authority).InvokeFail(t, dvpnconst.ErrUnauthorized, "slashNode", op.ScriptHash(), int64(1), "old attestor")
	x.invoker(attestor).Invoke(t, stackitem.Null{}, "slashNode", op.ScriptHash(), int64(1), "new attestor")
	require.Equal(t, int64(defaultStake-1), x.node(t, op.ScriptHash()).StakeAmount.Int64())
}

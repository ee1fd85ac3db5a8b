package dvpn_test

import (
	"math/big"
	"testing"

	"github.com/nspcc-dev/dvpn-contract/contracts/dvpn/dvpnconst"
	dvpnrpc "github.com/nspcc-dev/dvpn-contract/rpc/dvpn"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/native/nativenames"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

func TestRegisterNode(t *testing.T) {
	x := newTestEnv(t)
	authority := x.authority.ScriptHash()

	op := x.e.NewAccount(t)
	key := make([]byte, dvpnconst.NetworkKeyLen)
	key[0] = 7

	h := x.invoker(op).Invoke(t, stackitem.Null{}, "registerNode",
		op.ScriptHash(), authority, int64(defaultStake), int64(defaultCapacity),
		metadataHash("node"), key)

	events, err := dvpnrpc.NodeRegisteredEventsFromApplicationLog(x.applicationLog(t, h))
	require.NoError(t, err)
	require.Len(t, events, 1)
	require.Equal(t, op.ScriptHash(), events[0].Operator)
	require.Equal(t, int64(defaultStake), events[0].Stake.Int64())

	n := x.node(t, op.ScriptHash())
	require.Equal(t, op.ScriptHash(), n.Operator)
	require.Equal(t, authority, n.Protocol)
	require.Equal(t, dvpnrpc.DeriveStakeAccount(op.ScriptHash()), n.StakeAccount)
	require.Equal(t, int64(defaultCapacity), n.BandwidthCapacity.Int64())
	require.Equal(t, metadataHash("node"), n.MetadataHash)
	require.Equal(t, int64(defaultStake), n.StakeAmount.Int64())
	require.Zero(t, n.LifetimeBytesRelayed.Sign())
	require.Zero(t, n.UnclaimedReward.Sign())
	require.Equal(t, key, n.NetworkKey)
	require.Zero(t, n.RatingSum.Sign())
	require.Zero(t, n.RatingCount.Sign())
	require.True(t, n.Active)
	require.True(t, n.RegisteredAt.Sign() > 0)
	require.Zero(t, n.LastSlashedAt.Sign())

	x.e.CheckGASBalance(t, x.dvpnHash, big.NewInt(defaultStake))

	x.invoker(op).InvokeFail(t, dvpnconst.ErrNodeExists, "registerNode",
		op.ScriptHash(), authority, int64(defaultStake), int64(defaultCapacity),
		metadataHash("node"), nil)
}

func TestRegisterNode_WithoutNetworkKey(t *testing.T) {
	x := newTestEnv(t)
	op := x.registerNode(t, defaultCapacity)

	n := x.node(t, op.ScriptHash())
	require.Nil(t, n.NetworkKey)
}

func TestRegisterNode_Validation(t *testing.T) {
	x := newTestEnv(t)
	authority := x.authority.ScriptHash()
	op := x.e.NewAccount(t)
	inv := x.invoker(op)

	register := func(t *testing.T, errMsg string, stake, capacity any, meta, key []byte) {
		inv.InvokeFail(t, errMsg, "registerNode",
			op.ScriptHash(), authority, stake, capacity, meta, key)
	}

	t.Run("witness", func(t *testing.T) {
		x.invoker(x.e.NewAccount(t)).InvokeFail(t, dvpnconst.ErrUnauthorized, "registerNode",
			op.ScriptHash(), authority, int64(defaultStake), int64(defaultCapacity),
			metadataHash("node"), nil)
	})
	t.Run("zero stake", func(t *testing.T) {
		register(t, dvpnconst.ErrInvalidAmount, 0, int64(defaultCapacity), metadataHash("node"), nil)
	})
	t.Run("negative stake", func(t *testing.T) {
		register(t, dvpnconst.ErrInvalidAmount, -1, int64(defaultCapacity), metadataHash("node"), nil)
	})
	t.Run("capacity", func(t *testing.T) {
		register(t, dvpnconst.ErrInvalidCapacity, int64(defaultStake), int64(dvpnconst.MaxCapacity)+1, metadataHash("node"), nil)
	})
	t.Run("metadata hash", func(t *testing.T) {
		register(t, dvpnconst.ErrInvalidMetadataHash, int64(defaultStake), int64(defaultCapacity), []byte{1, 2, 3}, nil)
	})
	t.Run("network key", func(t *testing.T) {
		register(t, dvpnconst.ErrInvalidNetworkKey, int64(defaultStake), int64(defaultCapacity), metadataHash("node"), []byte{1})
	})
	t.Run("unknown protocol", func(t *testing.T) {
		inv.InvokeFail(t, dvpnconst.ErrConfigNotFound, "registerNode",
			op.ScriptHash(), op.ScriptHash(), int64(defaultStake), int64(defaultCapacity),
			metadataHash("node"), nil)
	})
	t.Run("stake above balance", func(t *testing.T) {
		// Accounts are funded with 100 GAS.
		register(t, dvpnconst.ErrStakeTransferRefused, int64(1000_0000_0000), int64(defaultCapacity), metadataHash("node"), nil)
	})

	x.e.CheckGASBalance(t, x.dvpnHash, big.NewInt(0))
	_, err := x.reader().TestInvoke(t, "node", op.ScriptHash())
	require.ErrorContains(t, err, dvpnconst.ErrNodeNotFound)
}

func TestOnNEP17Payment_UnexpectedGAS(t *testing.T) {
	x := newTestEnv(t)
	acc := x.e.NewAccount(t)

	gasHash := x.e.NativeHash(t, nativenames.Gas)
	x.e.NewInvoker(gasHash, acc).InvokeFail(t, dvpnconst.ErrUnexpectedPayment, "transfer",
		acc.ScriptHash(), x.dvpnHash, int64(1_0000_0000), nil)

	op := x.registerNode(t, defaultCapacity)

	// A registration does not leave the contract open for further stake.
	x.e.NewInvoker(gasHash, op).InvokeFail(t, dvpnconst.ErrUnexpectedPayment, "transfer",
		op.ScriptHash(), x.dvpnHash, int64(defaultStake), nil)
}

func TestListNodes(t *testing.T) {
	x := newTestEnv(t)
	a := x.registerNode(t, 10)
	b := x.registerNode(t, 20)

	s, err := x.reader().TestInvoke(t, "listNodes")
	require.NoError(t, err)

	iter := s.Pop().Value().(*storage.Iterator)
	items := iteratorToArray(iter)
	require.Len(t, items, 2)

	seen := make(map[string]int64)
	for _, it := range items {
		var n dvpnrpc.Node
		require.NoError(t, n.FromStackItem(it))
		seen[n.Operator.StringLE()] = n.BandwidthCapacity.Int64()
	}
	require.Equal(t, map[string]int64{
		a.ScriptHash().StringLE(): 10,
		b.ScriptHash().StringLE(): 20,
	}, seen)
}

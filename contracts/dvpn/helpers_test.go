package dvpn_test

import (
	"math/big"
	"path"
	"testing"

	dvpnrpc "github.com/nspcc-dev/dvpn-contract/rpc/dvpn"
	"github.com/nspcc-dev/neo-go/pkg/core/interop/storage"
	"github.com/nspcc-dev/neo-go/pkg/core/state"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/neorpc/result"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const (
	dvpnPath  = "."
	tokenPath = "../rewardtoken"

	defaultStake    = 10_0000_0000
	defaultRate     = 500
	defaultCapacity = 1000

	mib = 1 << 20
)

type testEnv struct {
	e         *neotest.Executor
	dvpnHash  util.Uint160
	tokenHash util.Uint160
	authority neotest.Signer
}

func newTestEnv(t *testing.T) *testEnv {
	return newTestEnvWithRate(t, defaultRate)
}

func newTestEnvWithRate(t *testing.T, rateBps int64) *testEnv {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	token := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, token, e.CommitteeHash)

	c := neotest.CompileFile(t, e.CommitteeHash, dvpnPath, path.Join(dvpnPath, "config.yml"))
	e.DeployContract(t, c, nil)

	e.CommitteeInvoker(token.Hash).Invoke(t, stackitem.Null{}, "setMinter", c.Hash)

	env := &testEnv{
		e:         e,
		dvpnHash:  c.Hash,
		tokenHash: token.Hash,
		authority: e.NewAccount(t),
	}
	env.invoker(env.authority).Invoke(t, stackitem.Null{}, "initializeConfig",
		env.authority.ScriptHash(), rateBps, token.Hash)

	return env
}

func (x *testEnv) invoker(signers ...neotest.Signer) *neotest.ContractInvoker {
	return x.e.NewInvoker(x.dvpnHash, signers...)
}

func (x *testEnv) reader() *neotest.ContractInvoker {
	return x.e.CommitteeInvoker(x.dvpnHash)
}

func (x *testEnv) tokenInvoker(signers ...neotest.Signer) *neotest.ContractInvoker {
	return x.e.NewInvoker(x.tokenHash, signers...)
}

func metadataHash(s string) []byte {
	h := hash.Sha256([]byte(s))
	return h.BytesBE()
}

func (x *testEnv) registerNode(t *testing.T, capacity int64) neotest.Signer {
	op := x.e.NewAccount(t)
	x.invoker(op).Invoke(t, stackitem.Null{}, "registerNode",
		op.ScriptHash(), x.authority.ScriptHash(), int64(defaultStake), capacity,
		metadataHash("node"), nil)
	return op
}

// mint issues reward tokens outside of the claim path by temporarily handing
// the minter role to the committee.
func (x *testEnv) mint(t *testing.T, to util.Uint160, amount int64) {
	tok := x.e.CommitteeInvoker(x.tokenHash)
	tok.Invoke(t, stackitem.Null{}, "setMinter", x.e.CommitteeHash)
	tok.Invoke(t, stackitem.Null{}, "mint", to, amount)
	tok.Invoke(t, stackitem.Null{}, "setMinter", x.dvpnHash)
}

func (x *testEnv) fundEscrow(t *testing.T, consumer neotest.Signer, node util.Uint160, amount int64) {
	x.mint(t, consumer.ScriptHash(), amount)
	x.tokenInvoker(consumer).Invoke(t, true, "transfer",
		consumer.ScriptHash(), x.dvpnHash, amount, node)
}

func (x *testEnv) node(t *testing.T, operator util.Uint160) *dvpnrpc.Node {
	s, err := x.reader().TestInvoke(t, "node", operator)
	require.NoError(t, err)

	var n dvpnrpc.Node
	require.NoError(t, n.FromStackItem(s.Pop().Item()))
	return &n
}

func (x *testEnv) session(t *testing.T, consumer, node util.Uint160) *dvpnrpc.Session {
	s, err := x.reader().TestInvoke(t, "session", consumer, node)
	require.NoError(t, err)

	var res dvpnrpc.Session
	require.NoError(t, res.FromStackItem(s.Pop().Item()))
	return &res
}

func (x *testEnv) config(t *testing.T, authority util.Uint160) *dvpnrpc.Config {
	s, err := x.reader().TestInvoke(t, "config", authority)
	require.NoError(t, err)

	var res dvpnrpc.Config
	require.NoError(t, res.FromStackItem(s.Pop().Item()))
	return &res
}

func (x *testEnv) readInt(t *testing.T, c *neotest.ContractInvoker, method string, args ...any) *big.Int {
	s, err := c.TestInvoke(t, method, args...)
	require.NoError(t, err)

	v, err := s.Pop().Item().TryInteger()
	require.NoError(t, err)
	return v
}

func (x *testEnv) tokenBalance(t *testing.T, acc util.Uint160) int64 {
	return x.readInt(t, x.e.CommitteeInvoker(x.tokenHash), "balanceOf", acc).Int64()
}

func (x *testEnv) escrowBalance(t *testing.T, consumer, node util.Uint160) int64 {
	return x.readInt(t, x.reader(), "escrowBalance", consumer, node).Int64()
}

func (x *testEnv) applicationLog(t *testing.T, h util.Uint256) *result.ApplicationLog {
	aer := x.e.GetTxExecResult(t, h)
	return &result.ApplicationLog{
		Container:     h,
		IsTransaction: true,
		Executions:    []state.Execution{aer.Execution},
	}
}

func iteratorToArray(iter *storage.Iterator) []stackitem.Item {
	stackItems := make([]stackitem.Item, 0)
	for iter.Next() {
		stackItems = append(stackItems, iter.Value())
	}
	return stackItems
}

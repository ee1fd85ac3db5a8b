package rewardtoken_test

import (
	"path"
	"testing"

	"github.com/nspcc-dev/dvpn-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/neotest"
	"github.com/nspcc-dev/neo-go/pkg/neotest/chain"
	"github.com/nspcc-dev/neo-go/pkg/util"
	"github.com/nspcc-dev/neo-go/pkg/vm/stackitem"
	"github.com/stretchr/testify/require"
)

const tokenPath = "."

func newTokenInvoker(t *testing.T) *neotest.ContractInvoker {
	bc, acc := chain.NewSingle(t)
	e := neotest.NewExecutor(t, bc, acc, acc)

	c := neotest.CompileFile(t, e.CommitteeHash, tokenPath, path.Join(tokenPath, "config.yml"))
	e.DeployContract(t, c, e.CommitteeHash)

	return e.CommitteeInvoker(c.Hash)
}

func balanceOf(t *testing.T, c *neotest.ContractInvoker, acc util.Uint160) int64 {
	s, err := c.TestInvoke(t, "balanceOf", acc)
	require.NoError(t, err)

	v, err := s.Pop().Item().TryInteger()
	require.NoError(t, err)
	return v.Int64()
}

func TestToken_Info(t *testing.T) {
	c := newTokenInvoker(t)

	s, err := c.TestInvoke(t, "symbol")
	require.NoError(t, err)
	symbol, err := s.Pop().Item().TryBytes()
	require.NoError(t, err)
	require.Equal(t, "DVPN", string(symbol))

	c.Invoke(t, 9, "decimals")
	c.Invoke(t, 0, "totalSupply")
	c.Invoke(t, stackitem.Null{}, "minter")
}

func TestToken_Mint(t *testing.T) {
	c := newTokenInvoker(t)
	minter := c.NewAccount(t)
	acc := c.NewAccount(t)

	c.InvokeFail(t, "minter is not set", "mint", acc.ScriptHash(), 10)

	c.WithSigners(minter).InvokeFail(t, common.ErrUnauthorized, "setMinter", minter.ScriptHash())
	c.Invoke(t, stackitem.Null{}, "setMinter", minter.ScriptHash())
	s, err := c.TestInvoke(t, "minter")
	require.NoError(t, err)
	h, err := s.Pop().Item().TryBytes()
	require.NoError(t, err)
	require.Equal(t, minter.ScriptHash().BytesBE(), h)

	c.InvokeFail(t, common.ErrUnauthorized, "mint", acc.ScriptHash(), 10)
	c.WithSigners(minter).InvokeFail(t, "invalid amount", "mint", acc.ScriptHash(), 0)
	c.WithSigners(minter).Invoke(t, stackitem.Null{}, "mint", acc.ScriptHash(), 10)

	require.Equal(t, int64(10), balanceOf(t, c, acc.ScriptHash()))
	c.Invoke(t, 10, "totalSupply")
}

func TestToken_Transfer(t *testing.T) {
	c := newTokenInvoker(t)
	from := c.NewAccount(t)
	to := c.NewAccount(t)

	c.Invoke(t, stackitem.Null{}, "setMinter", c.CommitteeHash)
	c.Invoke(t, stackitem.Null{}, "mint", from.ScriptHash(), 100)

	// Witness of the sender is required.
	c.WithSigners(to).Invoke(t, false, "transfer", from.ScriptHash(), to.ScriptHash(), 10, nil)
	c.WithSigners(from).Invoke(t, false, "transfer", from.ScriptHash(), to.ScriptHash(), 101, nil)
	c.WithSigners(from).InvokeFail(t, "negative amount", "transfer", from.ScriptHash(), to.ScriptHash(), -1, nil)

	c.WithSigners(from).Invoke(t, true, "transfer", from.ScriptHash(), to.ScriptHash(), 100, nil)
	require.Zero(t, balanceOf(t, c, from.ScriptHash()))
	require.Equal(t, int64(100), balanceOf(t, c, to.ScriptHash()))
	c.Invoke(t, 100, "totalSupply")
}

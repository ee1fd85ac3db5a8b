package dvpn

import (
	"github.com/nspcc-dev/dvpn-contract/common"
	"github.com/nspcc-dev/dvpn-contract/contracts/dvpn/dvpnconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// escrowAuthority is the only handle able to debit a session escrow. It is
// built for a (consumer, node) pair by settlement and withdrawal code.
type escrowAuthority struct {
	account interop.Hash160
}

func authorizeEscrow(consumer, node interop.Hash160) escrowAuthority {
	return escrowAuthority{account: escrowAccountOf(consumer, node)}
}

// release debits the escrow and returns the asset it is held in.
func (a escrowAuthority) release(ctx storage.Context, amount int) interop.Hash160 {
	acc := getEscrow(ctx, a.account)
	if acc.Balance < amount {
		panic(dvpnconst.ErrInsufficientEscrow)
	}

	acc.Balance -= amount
	putEscrow(ctx, a.account, acc)

	return acc.Asset
}

// EscrowAccount returns the derived account holding deposits of the consumer
// for sessions with the node.
func EscrowAccount(consumer, node interop.Hash160) interop.Hash160 {
	return escrowAccountOf(consumer, node)
}

// EscrowBalance returns the amount held in the escrow of the consumer and
// the node.
func EscrowBalance(consumer, node interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return getEscrow(ctx, escrowAccountOf(consumer, node)).Balance
}

// FeeBalance returns protocol fees of the authority accumulated in the asset.
func FeeBalance(authority, asset interop.Hash160) int {
	ctx := storage.GetReadOnlyContext()
	return common.GetInt(ctx, feeKey(authority, asset))
}

// WithdrawEscrow returns the whole escrow balance to the consumer. It must be
// witnessed by the consumer and is refused while a session with the node is
// open.
//
// It produces EscrowWithdrawn notification.
func WithdrawEscrow(consumer, node interop.Hash160) {
	common.CheckWitness(consumer)

	ctx := storage.GetContext()
	data := storage.Get(ctx, sessionKey(consumer, node))
	if data != nil {
		s := std.Deserialize(data.([]byte)).(SessionInfo)
		if !s.Closed {
			panic(dvpnconst.ErrSessionOpen)
		}
	}

	amount := getEscrow(ctx, escrowAccountOf(consumer, node)).Balance
	if amount == 0 {
		panic(dvpnconst.ErrNothingToWithdraw)
	}

	asset := authorizeEscrow(consumer, node).release(ctx, amount)
	common.TransferFromSelf(asset, consumer, amount)

	runtime.Notify("EscrowWithdrawn", consumer, node, amount)
}

// WithdrawFees transfers protocol fees accumulated in the asset to the
// receiver. It can be invoked only by the authority.
//
// It produces FeesWithdrawn notification.
func WithdrawFees(authority, asset, to interop.Hash160) {
	checkHash(to)

	ctx := storage.GetContext()
	cfg := getConfig(ctx, authority)
	common.CheckWitness(cfg.Authority)

	key := feeKey(authority, asset)
	amount := common.GetInt(ctx, key)
	if amount == 0 {
		panic(dvpnconst.ErrNothingToWithdraw)
	}

	storage.Delete(ctx, key)
	common.TransferFromSelf(asset, to, amount)

	runtime.Notify("FeesWithdrawn", authority, asset, to, amount)
}

// fundEscrow credits a reward asset payment to the escrow of the payer and
// the node passed as payment data.
func fundEscrow(ctx storage.Context, asset, consumer interop.Hash160, amount int, data any) {
	if amount <= 0 || len(consumer) != interop.Hash160Len || data == nil {
		panic(dvpnconst.ErrUnexpectedPayment)
	}

	node := data.(interop.Hash160)
	if len(node) != interop.Hash160Len {
		panic(dvpnconst.ErrUnexpectedPayment)
	}

	n := getNode(ctx, node)
	cfg := getConfig(ctx, n.Protocol)
	if !asset.Equals(cfg.RewardAsset) {
		panic(dvpnconst.ErrAssetMismatch)
	}

	account := escrowAccountOf(consumer, node)
	acc := getEscrow(ctx, account)
	if acc.Balance > 0 && !acc.Asset.Equals(asset) {
		panic(dvpnconst.ErrAssetMismatch)
	}

	acc.Asset = asset
	acc.Balance = checkedAdd(acc.Balance, amount)
	putEscrow(ctx, account, acc)

	runtime.Notify("EscrowFunded", consumer, node, amount)
}

func creditFee(ctx storage.Context, authority, asset interop.Hash160, amount int) {
	if amount == 0 {
		return
	}
	key := feeKey(authority, asset)
	storage.Put(ctx, key, checkedAdd(common.GetInt(ctx, key), amount))
}

func escrowAccountOf(consumer, node interop.Hash160) interop.Hash160 {
	return common.DeriveAccount(dvpnconst.EscrowSeed, []interop.Hash160{consumer, node})
}

func feeKey(authority, asset interop.Hash160) []byte {
	account := common.DeriveAccount(dvpnconst.FeeSeed, []interop.Hash160{authority})
	return append(append([]byte{feePrefix}, account...), asset...)
}

func escrowKey(account interop.Hash160) []byte {
	return append([]byte{escrowPrefix}, account...)
}

func getEscrow(ctx storage.Context, account interop.Hash160) Escrow {
	data := storage.Get(ctx, escrowKey(account))
	if data == nil {
		return Escrow{}
	}
	return std.Deserialize(data.([]byte)).(Escrow)
}

func putEscrow(ctx storage.Context, account interop.Hash160, acc Escrow) {
	if acc.Balance == 0 {
		storage.Delete(ctx, escrowKey(account))
		return
	}
	common.SetSerialized(ctx, escrowKey(account), acc)
}

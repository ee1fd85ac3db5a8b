package rewardtoken

import (
	"github.com/nspcc-dev/dvpn-contract/common"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

const (
	symbol   = "DVPN"
	decimals = 9

	ownerKey  = 'o'
	minterKey = 'm'
	supplyKey = 's'
	accPrefix = 'a'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	ctx := storage.GetContext()
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	owner := data.(interop.Hash160)
	if len(owner) != interop.Hash160Len {
		panic("invalid owner")
	}
	storage.Put(ctx, ownerKey, owner)

	runtime.Log("reward token initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by the token owner.
func Update(nefFile, manifest []byte, data any) {
	common.CheckWitness(getOwner(storage.GetReadOnlyContext()))

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("reward token updated")
}

// Symbol is a NEP-17 standard method that returns the token symbol.
func Symbol() string {
	return symbol
}

// Decimals is a NEP-17 standard method that returns token precision.
func Decimals() int {
	return decimals
}

// TotalSupply is a NEP-17 standard method that returns the amount of minted
// tokens.
func TotalSupply() int {
	return common.GetInt(storage.GetReadOnlyContext(), supplyKey)
}

// BalanceOf is a NEP-17 standard method that returns the balance of the account.
func BalanceOf(account interop.Hash160) int {
	if len(account) != interop.Hash160Len {
		panic("invalid account")
	}
	return common.GetInt(storage.GetReadOnlyContext(), accountKey(account))
}

// Transfer is a NEP-17 standard method. It can be invoked only by the
// account owner.
//
// It produces Transfer notification.
func Transfer(from, to interop.Hash160, amount int, data any) bool {
	if len(from) != interop.Hash160Len || len(to) != interop.Hash160Len {
		panic("invalid account")
	}
	if amount < 0 {
		panic("negative amount")
	}
	if !runtime.CheckWitness(from) {
		return false
	}

	ctx := storage.GetContext()
	fromBalance := common.GetInt(ctx, accountKey(from))
	if fromBalance < amount {
		runtime.Log("not enough assets")
		return false
	}

	if amount != 0 && !from.Equals(to) {
		setBalance(ctx, from, fromBalance-amount)
		setBalance(ctx, to, common.GetInt(ctx, accountKey(to))+amount)
	}

	postTransfer(from, to, amount, data)
	return true
}

// Mint issues new tokens to the account. It can be invoked only by the
// minter, normally the settlement contract paying claimed rewards.
//
// It produces Transfer notification.
func Mint(to interop.Hash160, amount int) {
	if len(to) != interop.Hash160Len {
		panic("invalid account")
	}
	if amount <= 0 {
		panic("invalid amount")
	}

	ctx := storage.GetContext()
	minter := storage.Get(ctx, minterKey)
	if minter == nil {
		panic("minter is not set")
	}
	common.CheckWitness(minter.(interop.Hash160))

	setBalance(ctx, to, common.GetInt(ctx, accountKey(to))+amount)
	storage.Put(ctx, supplyKey, common.GetInt(ctx, supplyKey)+amount)

	var from interop.Hash160
	postTransfer(from, to, amount, nil)
}

// SetMinter sets the only account allowed to mint. It can be invoked only by
// the token owner.
func SetMinter(minter interop.Hash160) {
	if len(minter) != interop.Hash160Len {
		panic("invalid minter")
	}

	ctx := storage.GetContext()
	common.CheckWitness(getOwner(ctx))
	storage.Put(ctx, minterKey, minter)

	runtime.Log("minter changed")
}

// Minter returns the account allowed to mint, nil if not set.
func Minter() interop.Hash160 {
	minter := storage.Get(storage.GetReadOnlyContext(), minterKey)
	if minter == nil {
		return nil
	}
	return minter.(interop.Hash160)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func postTransfer(from, to interop.Hash160, amount int, data any) {
	runtime.Notify("Transfer", from, to, amount)
	if management.GetContract(to) != nil {
		contract.Call(to, "onNEP17Payment", contract.All, from, amount, data)
	}
}

func getOwner(ctx storage.Context) interop.Hash160 {
	return storage.Get(ctx, ownerKey).(interop.Hash160)
}

func accountKey(account interop.Hash160) []byte {
	return append([]byte{accPrefix}, account...)
}

func setBalance(ctx storage.Context, account interop.Hash160, amount int) {
	if amount == 0 {
		storage.Delete(ctx, accountKey(account))
		return
	}
	storage.Put(ctx, accountKey(account), amount)
}

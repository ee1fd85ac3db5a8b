package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// TransferFromSelf moves NEP-17 assets owned by the executing contract and
// panics if the asset contract refuses the transfer.
func TransferFromSelf(asset, to interop.Hash160, amount int) {
	self := runtime.GetExecutingScriptHash()
	ok := contract.Call(asset, "transfer", contract.All, self, to, amount, nil).(bool)
	if !ok {
		panic("can't transfer assets")
	}
}

package dvpn

import (
	"github.com/nspcc-dev/dvpn-contract/common"
	"github.com/nspcc-dev/dvpn-contract/contracts/dvpn/dvpnconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// SlashNode reduces the recorded stake of the node, saturating at zero, and
// stamps the slash time. It can be invoked only by the attestor of the node's
// protocol. Staked GAS stays in the contract.
//
// It produces NodeSlashed notification.
func SlashNode(operator interop.Hash160, amount int, reason string) {
	ctx := storage.GetContext()
	n := getNode(ctx, operator)
	cfg := getConfig(ctx, n.Protocol)
	common.CheckWitness(cfg.Attestor)

	if amount < 0 {
		panic(dvpnconst.ErrInvalidAmount)
	}

	if amount >= n.StakeAmount {
		n.StakeAmount = 0
	} else {
		n.StakeAmount -= amount
	}
	n.LastSlashedAt = runtime.GetTime()
	putNode(ctx, n)

	runtime.Notify("NodeSlashed", operator, amount, reason)
}

package dvpn

import (
	"github.com/nspcc-dev/dvpn-contract/common"
	"github.com/nspcc-dev/dvpn-contract/contracts/dvpn/dvpnconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// RecordUsage accounts relayed traffic of the node and accrues the reward for
// it: bytes * rate / 10000, floored per call. It can be invoked only by the
// attestor of the node's protocol. Either both counters are updated or none.
//
// It produces UsageRecorded notification.
func RecordUsage(operator interop.Hash160, bytes int) {
	ctx := storage.GetContext()
	n := getNode(ctx, operator)
	cfg := getConfig(ctx, n.Protocol)
	common.CheckWitness(cfg.Attestor)

	if bytes < 0 {
		panic(dvpnconst.ErrInvalidAmount)
	}

	n.LifetimeBytesRelayed = checkedAdd(n.LifetimeBytesRelayed, bytes)
	reward := bytes * cfg.RewardRateBps / dvpnconst.BasisPoints
	n.UnclaimedReward = checkedAdd(n.UnclaimedReward, reward)
	putNode(ctx, n)

	runtime.Notify("UsageRecorded", operator, bytes, reward)
}

// ClaimRewards mints the whole unclaimed reward of the node to its operator.
// It must be witnessed by the operator. The balance is zeroed before the mint
// is requested.
//
// It produces RewardsClaimed notification.
func ClaimRewards(operator interop.Hash160) {
	ctx := storage.GetContext()
	n := getNode(ctx, operator)
	common.CheckWitness(n.Operator)

	amount := n.UnclaimedReward
	if amount == 0 {
		panic(dvpnconst.ErrNothingToClaim)
	}

	n.UnclaimedReward = 0
	putNode(ctx, n)

	cfg := getConfig(ctx, n.Protocol)
	contract.Call(cfg.RewardAsset, "mint", contract.All, operator, amount)

	runtime.Log("rewards claimed")
	runtime.Notify("RewardsClaimed", operator, amount)
}

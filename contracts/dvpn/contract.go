package dvpn

import (
	"github.com/nspcc-dev/dvpn-contract/common"
	"github.com/nspcc-dev/dvpn-contract/contracts/dvpn/dvpnconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/contract"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/management"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

type (
	// ProtocolConfig is a settlement configuration owned by a single
	// authority. Nodes registered under it share the attestor, the reward
	// asset and the reward rate.
	ProtocolConfig struct {
		Authority     interop.Hash160
		Attestor      interop.Hash160
		RewardAsset   interop.Hash160
		RewardRateBps int
	}

	// NodeInfo is a registered bandwidth provider.
	NodeInfo struct {
		Operator     interop.Hash160
		Protocol     interop.Hash160
		StakeAccount interop.Hash160

		BandwidthCapacity int
		MetadataHash      []byte
		StakeAmount       int

		LifetimeBytesRelayed int
		UnclaimedReward      int

		NetworkKey  []byte
		RatingSum   int
		RatingCount int
		Active      bool

		RegisteredAt  int
		LastSlashedAt int
	}

	// SessionInfo is a metered consumer-to-node session.
	SessionInfo struct {
		Consumer      interop.Hash160
		Node          interop.Hash160
		EscrowAccount interop.Hash160
		DepositAmount int
		BytesUsed     int
		OpenedAt      int
		Closed        bool
	}

	// Escrow is a sub-account holding consumer deposits in a single asset.
	Escrow struct {
		Asset   interop.Hash160
		Balance int
	}
)

const (
	configPrefix       = 'c'
	nodePrefix         = 'n'
	sessionPrefix      = 's'
	escrowPrefix       = 'e'
	feePrefix          = 'f'
	pendingStakePrefix = 'p'
	ratingPrefix       = 'r'
)

// nolint:unused
func _deploy(data any, isUpdate bool) {
	if isUpdate {
		args := data.([]any)
		common.CheckVersion(args[len(args)-1].(int))
		return
	}

	runtime.Log("dvpn contract initialized")
}

// Update method updates contract source code and manifest. It can be invoked
// only by committee.
func Update(nefFile, manifest []byte, data any) {
	if !common.HasUpdateAccess() {
		panic("only committee can update contract")
	}

	contract.Call(interop.Hash160(management.Hash), "update",
		contract.All, nefFile, manifest, common.AppendVersion(data))
	runtime.Log("dvpn contract updated")
}

// OnNEP17Payment is a callback for NEP-17 compatible native GAS and the
// reward asset contracts.
//
// GAS is accepted only as the stake of a registration in progress, see
// RegisterNode. Reward asset payments fund the escrow of the sender and the
// node whose operator hash is passed as data.
func OnNEP17Payment(from interop.Hash160, amount int, data any) {
	ctx := storage.GetContext()
	caller := runtime.GetCallingScriptHash()
	if caller.Equals(gas.Hash) {
		acceptStake(ctx, from, amount)
		return
	}

	fundEscrow(ctx, caller, from, amount, data)
}

// Version returns the version of the contract.
func Version() int {
	return common.Version
}

func maxCounter() int {
	return std.Atoi(dvpnconst.MaxCounterDec, 10)
}

// checkedAdd returns a+b or panics if the sum leaves the counter range.
func checkedAdd(a, b int) int {
	sum := a + b
	if sum > maxCounter() {
		panic(dvpnconst.ErrMathOverflow)
	}
	return sum
}

func checkAmount(v int) {
	if v < 0 {
		panic(dvpnconst.ErrInvalidAmount)
	}
	if v > maxCounter() {
		panic(dvpnconst.ErrMathOverflow)
	}
}

func checkHash(h interop.Hash160) {
	if len(h) != interop.Hash160Len {
		panic(dvpnconst.ErrInvalidHash)
	}
}

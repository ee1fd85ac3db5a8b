package dvpn

import (
	"github.com/nspcc-dev/dvpn-contract/common"
	"github.com/nspcc-dev/dvpn-contract/contracts/dvpn/dvpnconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/iterator"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/gas"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// RegisterNode registers the operator as a bandwidth provider under the
// protocol configuration of the given authority. It must be witnessed by the
// operator.
//
// Stake is transferred in GAS from the operator to the contract before the
// record is written, so a refused transfer leaves nothing behind. The operator
// witness scope must allow the GAS contract call (CustomContracts with GAS or
// Global). Network key is optional: pass nil or a 32-byte key.
//
// It produces NodeRegistered notification.
func RegisterNode(operator, protocol interop.Hash160, stake, bandwidthCapacity int,
	metadataHash, networkKey []byte) {
	checkHash(operator)
	common.CheckWitness(operator)

	if stake == 0 {
		panic(dvpnconst.ErrInvalidAmount)
	}
	checkAmount(stake)
	if bandwidthCapacity < 0 || bandwidthCapacity > dvpnconst.MaxCapacity {
		panic(dvpnconst.ErrInvalidCapacity)
	}
	if len(metadataHash) != dvpnconst.MetadataHashLen {
		panic(dvpnconst.ErrInvalidMetadataHash)
	}

	var key []byte
	if len(networkKey) != 0 {
		if len(networkKey) != dvpnconst.NetworkKeyLen {
			panic(dvpnconst.ErrInvalidNetworkKey)
		}
		key = networkKey
	}

	ctx := storage.GetContext()
	getConfig(ctx, protocol)

	if storage.Get(ctx, nodeKey(operator)) != nil {
		panic(dvpnconst.ErrNodeExists)
	}

	pendingKey := append([]byte{pendingStakePrefix}, operator...)
	storage.Put(ctx, pendingKey, stake)
	if !gas.Transfer(operator, runtime.GetExecutingScriptHash(), stake, nil) {
		panic(dvpnconst.ErrStakeTransferRefused)
	}

	n := NodeInfo{
		Operator:          operator,
		Protocol:          protocol,
		StakeAccount:      stakeAccountOf(operator),
		BandwidthCapacity: bandwidthCapacity,
		MetadataHash:      metadataHash,
		StakeAmount:       stake,
		NetworkKey:        key,
		Active:            true,
		RegisteredAt:      runtime.GetTime(),
	}
	putNode(ctx, n)

	runtime.Log("node registered")
	runtime.Notify("NodeRegistered", operator, stake, bandwidthCapacity)
}

// Node returns the record of the node operated by the given account.
func Node(operator interop.Hash160) NodeInfo {
	return getNode(storage.GetReadOnlyContext(), operator)
}

// ListNodes returns an iterator over all registered node records.
func ListNodes() iterator.Iterator {
	ctx := storage.GetReadOnlyContext()
	return storage.Find(ctx, []byte{nodePrefix}, storage.ValuesOnly|storage.DeserializeValues)
}

// acceptStake consumes the marker left by RegisterNode. Any other GAS
// payment is rejected.
func acceptStake(ctx storage.Context, from interop.Hash160, amount int) {
	key := append([]byte{pendingStakePrefix}, from...)
	pending := storage.Get(ctx, key)
	if pending == nil || pending.(int) != amount {
		panic(dvpnconst.ErrUnexpectedPayment)
	}
	storage.Delete(ctx, key)
}

func stakeAccountOf(operator interop.Hash160) interop.Hash160 {
	return common.DeriveAccount(dvpnconst.StakeSeed, []interop.Hash160{operator})
}

func nodeKey(operator interop.Hash160) []byte {
	return append([]byte{nodePrefix}, operator...)
}

func getNode(ctx storage.Context, operator interop.Hash160) NodeInfo {
	data := storage.Get(ctx, nodeKey(operator))
	if data == nil {
		panic(dvpnconst.ErrNodeNotFound)
	}
	return std.Deserialize(data.([]byte)).(NodeInfo)
}

func putNode(ctx storage.Context, n NodeInfo) {
	common.SetSerialized(ctx, nodeKey(n.Operator), n)
}

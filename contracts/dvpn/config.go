package dvpn

import (
	"github.com/nspcc-dev/dvpn-contract/common"
	"github.com/nspcc-dev/dvpn-contract/contracts/dvpn/dvpnconst"
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/std"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
	"github.com/nspcc-dev/neo-go/pkg/interop/storage"
)

// InitializeConfig creates the settlement configuration of the authority.
// The authority becomes the initial attestor. It can be invoked only once per
// authority and must be witnessed by it.
//
// It produces ConfigInitialized notification.
func InitializeConfig(authority interop.Hash160, rewardRateBps int, rewardAsset interop.Hash160) {
	checkHash(authority)
	checkHash(rewardAsset)
	common.CheckWitness(authority)

	if rewardRateBps < 0 || rewardRateBps > dvpnconst.MaxRewardRate {
		panic(dvpnconst.ErrInvalidRewardRate)
	}

	ctx := storage.GetContext()
	key := configKey(authority)
	if storage.Get(ctx, key) != nil {
		panic(dvpnconst.ErrConfigExists)
	}

	cfg := ProtocolConfig{
		Authority:     authority,
		Attestor:      authority,
		RewardAsset:   rewardAsset,
		RewardRateBps: rewardRateBps,
	}
	common.SetSerialized(ctx, key, cfg)

	runtime.Notify("ConfigInitialized", authority, rewardAsset, rewardRateBps)
}

// SetAttestor replaces the attestor of the authority's configuration. It can
// be invoked only by the authority.
//
// It produces AttestorChanged notification.
func SetAttestor(authority, attestor interop.Hash160) {
	checkHash(attestor)

	ctx := storage.GetContext()
	cfg := getConfig(ctx, authority)
	common.CheckWitness(cfg.Authority)

	cfg.Attestor = attestor
	common.SetSerialized(ctx, configKey(authority), cfg)

	runtime.Notify("AttestorChanged", authority, attestor)
}

// SetAsset replaces the reward asset of the authority's configuration. It can
// be invoked only by the authority. Already funded escrows keep their asset.
//
// It produces RewardAssetChanged notification.
func SetAsset(authority, asset interop.Hash160) {
	checkHash(asset)

	ctx := storage.GetContext()
	cfg := getConfig(ctx, authority)
	common.CheckWitness(cfg.Authority)

	cfg.RewardAsset = asset
	common.SetSerialized(ctx, configKey(authority), cfg)

	runtime.Notify("RewardAssetChanged", authority, asset)
}

// Config returns the settlement configuration of the authority.
func Config(authority interop.Hash160) ProtocolConfig {
	return getConfig(storage.GetReadOnlyContext(), authority)
}

func configKey(authority interop.Hash160) []byte {
	return append([]byte{configPrefix}, authority...)
}

func getConfig(ctx storage.Context, authority interop.Hash160) ProtocolConfig {
	data := storage.Get(ctx, configKey(authority))
	if data == nil {
		panic(dvpnconst.ErrConfigNotFound)
	}
	return std.Deserialize(data.([]byte)).(ProtocolConfig)
}

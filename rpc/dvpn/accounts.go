package dvpn

import (
	"github.com/nspcc-dev/dvpn-contract/contracts/dvpn/dvpnconst"
	"github.com/nspcc-dev/neo-go/pkg/crypto/hash"
	"github.com/nspcc-dev/neo-go/pkg/util"
)

// DeriveEscrowAccount returns the escrow sub-account of the consumer and the
// node as computed by the contract.
func DeriveEscrowAccount(consumer, node util.Uint160) util.Uint160 {
	return derive(dvpnconst.EscrowSeed, consumer, node)
}

// DeriveStakeAccount returns the stake sub-account of the node operator.
func DeriveStakeAccount(operator util.Uint160) util.Uint160 {
	return derive(dvpnconst.StakeSeed, operator)
}

// DeriveFeeAccount returns the protocol fee sub-account of the authority.
func DeriveFeeAccount(authority util.Uint160) util.Uint160 {
	return derive(dvpnconst.FeeSeed, authority)
}

func derive(seed string, parts ...util.Uint160) util.Uint160 {
	buf := []byte(seed)
	for _, p := range parts {
		buf = append(buf, p.BytesBE()...)
	}
	return hash.Hash160(buf)
}

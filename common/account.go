package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/native/crypto"
)

// DeriveAccount returns a script-hash-shaped address derived from the seed
// and the passed hashes: RIPEMD160(SHA256(seed || parts...)). Such addresses
// have no private key, they only name sub-accounts kept in contract storage.
func DeriveAccount(seed string, parts []interop.Hash160) interop.Hash160 {
	buf := []byte(seed)
	for i := range parts {
		buf = append(buf, parts[i]...)
	}
	return crypto.Ripemd160(crypto.Sha256(buf))
}

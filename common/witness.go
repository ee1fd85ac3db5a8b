package common

import (
	"github.com/nspcc-dev/neo-go/pkg/interop"
	"github.com/nspcc-dev/neo-go/pkg/interop/runtime"
)

// ErrUnauthorized appears when the method must be witnessed by a specific
// account (or one of several) but was not.
const ErrUnauthorized = "unauthorized"

// CheckWitness checks witness of the passed caller.
// It panics with ErrUnauthorized message on fail.
func CheckWitness(caller interop.Hash160) {
	if !runtime.CheckWitness(caller) {
		panic(ErrUnauthorized)
	}
}

// CheckEitherWitness checks that at least one of the passed callers witnessed
// the invocation. It panics with ErrUnauthorized message on fail.
func CheckEitherWitness(callers []interop.Hash160) {
	for i := range callers {
		if runtime.CheckWitness(callers[i]) {
			return
		}
	}
	panic(ErrUnauthorized)
}

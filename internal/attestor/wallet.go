package attestor

import (
	"errors"
	"fmt"

	"github.com/nspcc-dev/neo-go/pkg/encoding/address"
	"github.com/nspcc-dev/neo-go/pkg/wallet"
)

// OpenAccount reads the wallet and returns its decrypted account. Without
// addr the first account of the wallet is used.
func OpenAccount(path, addr, password string) (*wallet.Account, error) {
	w, err := wallet.NewWalletFromFile(path)
	if err != nil {
		return nil, fmt.Errorf("open wallet: %w", err)
	}

	// Wallet is left open on success: Close destroys keys of its accounts.
	acc, err := pickAccount(w, addr, password)
	if err != nil {
		w.Close()
		return nil, err
	}
	return acc, nil
}

func pickAccount(w *wallet.Wallet, addr, password string) (*wallet.Account, error) {
	var acc *wallet.Account
	if addr != "" {
		h, err := address.StringToUint160(addr)
		if err != nil {
			return nil, fmt.Errorf("invalid wallet address: %w", err)
		}
		acc = w.GetAccount(h)
		if acc == nil {
			return nil, fmt.Errorf("account %s not found in wallet", addr)
		}
	} else {
		if len(w.Accounts) == 0 {
			return nil, errors.New("wallet has no accounts")
		}
		acc = w.Accounts[0]
	}

	if err := acc.Decrypt(password, w.Scrypt); err != nil {
		return nil, fmt.Errorf("decrypt account %s: %w", acc.Address, err)
	}

	return acc, nil
}

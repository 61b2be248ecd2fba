package browser

import (
	"fmt"

	keytar "github.com/havoc-io/go-keytar"
	"github.com/zalando/go-keyring"
)

// Chromium falls back to this password on Linux when no keyring is
// available, so cookies encrypted with it decrypt without any keyring.
const linuxDefaultPassword = "peanuts"

type keychainLookup interface {
	GetPassword(service, account string) (string, error)
}

var (
	getKeychain = func() (keychainLookup, error) { return keytar.GetKeychain() }
	keyringGet  = keyring.Get
)

// chromeSecret returns the safe-storage password for b. On macOS this is
// the Keychain item "<Browser> Safe Storage"; missing items are an error
// because the browser always registers one. On Linux the Secret Service
// entry is tried first, then the KWallet-style "<Browser> Keys" folder,
// and finally the hardcoded default password.
func chromeSecret(b Browser, goos string) ([]byte, error) {
	service := b.title() + " Safe Storage"

	switch goos {
	case "darwin":
		kc, err := getKeychain()
		if err != nil {
			return nil, fmt.Errorf("%w: %v", ErrSecretNotFound, err)
		}
		pass, err := kc.GetPassword(service, b.title())
		if err != nil {
			return nil, fmt.Errorf("%w: keychain item (%q, %q): %v",
				ErrSecretNotFound, service, b.title(), err)
		}
		return []byte(pass), nil
	case "linux":
		if pass, err := keyringGet(service, b.title()); err == nil && pass != "" {
			return []byte(pass), nil
		}
		if pass, err := keyringGet(b.title()+" Keys", service); err == nil && pass != "" {
			return []byte(pass), nil
		}
		return []byte(linuxDefaultPassword), nil
	}

	return nil, fmt.Errorf("%w: no secret provider for %s", ErrUnsupportedPlatform, goos)
}

package browser

import "errors"

var (
	// ErrMissingScheme is returned when the requested URL lacks an
	// explicit scheme. Nothing is read from disk in that case.
	ErrMissingScheme = errors.New("url must include a scheme (http:// or https://)")

	// ErrUnsupportedPlatform is returned when no cookie-store location is
	// known for the current operating system.
	ErrUnsupportedPlatform = errors.New("unsupported platform")

	// ErrUnsupportedBrowser is returned for a browser this reader cannot
	// handle (e.g. Firefox passed to the Chrome-family reader).
	ErrUnsupportedBrowser = errors.New("unsupported browser")

	// ErrSecretNotFound is returned when the OS keyring holds no
	// safe-storage password for the browser.
	ErrSecretNotFound = errors.New("safe storage password not found in keyring")

	// ErrDatabaseAccess is returned when the cookie database cannot be
	// opened or queried; it is wrapped with the attempted path.
	ErrDatabaseAccess = errors.New("could not read cookie database")

	// ErrProfileNotPopulated is returned when a Firefox profile exists
	// but holds no cookie database.
	ErrProfileNotPopulated = errors.New("firefox profile has no cookie database")
)

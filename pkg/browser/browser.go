// Package browser locates browser cookie stores, reads their rows, and
// decrypts Chrome-family encrypted values. Chrome, Chromium, Brave and
// Slack share the Chromium cookie format; Firefox stores plaintext
// cookies in its own schema.
package browser

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"cookiemonger/pkg/logger"
)

// Browser identifies a supported cookie store.
type Browser string

const (
	Chrome   Browser = "chrome"
	Chromium Browser = "chromium"
	Brave    Browser = "brave"
	Slack    Browser = "slack"
	Firefox  Browser = "firefox"
)

// ParseBrowser converts a user-supplied name into a Browser.
func ParseBrowser(name string) (Browser, error) {
	b := Browser(strings.ToLower(name))
	switch b {
	case Chrome, Chromium, Brave, Slack, Firefox:
		return b, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnsupportedBrowser, name)
}

// title returns the capitalized browser name. Keyring entries are stored
// under this form ("Chrome Safe Storage"), so the capitalization matters.
func (b Browser) title() string {
	switch b {
	case Chrome:
		return "Chrome"
	case Chromium:
		return "Chromium"
	case Brave:
		return "Brave"
	case Slack:
		return "Slack"
	case Firefox:
		return "Firefox"
	}
	return string(b)
}

// Options adjusts a retrieval call. The zero value resolves everything
// from per-OS defaults.
type Options struct {
	// CookieFile overrides the default cookie database path.
	CookieFile string
	// Password overrides the OS keyring secret (Chrome family only).
	Password []byte
	// Profile names the Firefox profile to read; glob patterns are allowed.
	Profile string
	// Logger receives diagnostics; nil discards them.
	Logger logger.Logger
}

func (o *Options) log() logger.Logger {
	if o == nil || o.Logger == nil {
		return logger.NewNopLogger()
	}
	return o.Logger
}

// chromeConfig is the per-OS, per-browser configuration for a
// Chrome-family read: where the cookie database lives and how many PBKDF2
// rounds the browser applied to the safe-storage password.
type chromeConfig struct {
	cookieFile string
	iterations int
}

const (
	iterationsMacOS = 1003
	iterationsLinux = 1
)

func resolveChromeConfig(b Browser, goos, home string) (chromeConfig, error) {
	var paths map[Browser]string
	var iterations int

	switch goos {
	case "darwin":
		appSupport := filepath.Join(home, "Library", "Application Support")
		paths = map[Browser]string{
			Chrome:   filepath.Join(appSupport, "Google", "Chrome", "Default", "Cookies"),
			Chromium: filepath.Join(appSupport, "Chromium", "Default", "Cookies"),
			Brave:    filepath.Join(appSupport, "BraveSoftware", "Brave-Browser", "Default", "Cookies"),
			Slack:    filepath.Join(appSupport, "Slack", "Cookies"),
		}
		iterations = iterationsMacOS
	case "linux":
		config := filepath.Join(home, ".config")
		paths = map[Browser]string{
			Chrome:   filepath.Join(config, "google-chrome", "Default", "Cookies"),
			Chromium: filepath.Join(config, "chromium", "Default", "Cookies"),
			Brave:    filepath.Join(config, "BraveSoftware", "Brave-Browser", "Default", "Cookies"),
			Slack:    filepath.Join(config, "Slack", "Cookies"),
		}
		iterations = iterationsLinux
	default:
		return chromeConfig{}, fmt.Errorf("%w: chrome-family cookies are only readable on macOS and linux, not %s",
			ErrUnsupportedPlatform, goos)
	}

	path, ok := paths[b]
	if !ok {
		return chromeConfig{}, fmt.Errorf("%w: %q is not a chrome-family browser", ErrUnsupportedBrowser, b)
	}

	// Slack installed from the App Store keeps its data inside a sandbox
	// container rather than the direct-download location.
	if b == Slack && goos == "darwin" {
		if _, err := os.Stat(path); os.IsNotExist(err) {
			path = filepath.Join(home, "Library", "Containers", "com.tinyspeck.slackmacgap",
				"Data", "Library", "Application Support", "Slack", "Cookies")
		}
	}

	return chromeConfig{cookieFile: path, iterations: iterations}, nil
}

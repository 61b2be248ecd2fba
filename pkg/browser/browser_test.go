package browser

import (
	"errors"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestParseBrowser(t *testing.T) {
	tests := []struct {
		name string
		want Browser
		ok   bool
	}{
		{"chrome", Chrome, true},
		{"Chrome", Chrome, true},
		{"CHROMIUM", Chromium, true},
		{"brave", Brave, true},
		{"slack", Slack, true},
		{"firefox", Firefox, true},
		{"safari", "", false},
		{"", "", false},
	}
	for _, tt := range tests {
		got, err := ParseBrowser(tt.name)
		if tt.ok && (err != nil || got != tt.want) {
			t.Errorf("ParseBrowser(%q) = %v, %v; want %v", tt.name, got, err, tt.want)
		}
		if !tt.ok && !errors.Is(err, ErrUnsupportedBrowser) {
			t.Errorf("ParseBrowser(%q): expected ErrUnsupportedBrowser, got %v", tt.name, err)
		}
	}
}

func TestResolveChromeConfig(t *testing.T) {
	home := "/home/someone"
	tests := []struct {
		browser    Browser
		goos       string
		wantPath   string
		iterations int
	}{
		{Chrome, "darwin", "Library/Application Support/Google/Chrome/Default/Cookies", 1003},
		{Chromium, "darwin", "Library/Application Support/Chromium/Default/Cookies", 1003},
		{Brave, "linux", ".config/BraveSoftware/Brave-Browser/Default/Cookies", 1},
		{Chrome, "linux", ".config/google-chrome/Default/Cookies", 1},
		{Slack, "linux", ".config/Slack/Cookies", 1},
	}
	for _, tt := range tests {
		config, err := resolveChromeConfig(tt.browser, tt.goos, home)
		if err != nil {
			t.Errorf("resolveChromeConfig(%v, %s): %v", tt.browser, tt.goos, err)
			continue
		}
		want := filepath.Join(home, filepath.FromSlash(tt.wantPath))
		if config.cookieFile != want {
			t.Errorf("resolveChromeConfig(%v, %s) path = %q, want %q", tt.browser, tt.goos, config.cookieFile, want)
		}
		if config.iterations != tt.iterations {
			t.Errorf("resolveChromeConfig(%v, %s) iterations = %d, want %d", tt.browser, tt.goos, config.iterations, tt.iterations)
		}
	}
}

func TestResolveChromeConfigUnsupportedPlatform(t *testing.T) {
	if _, err := resolveChromeConfig(Chrome, "windows", "/home/someone"); !errors.Is(err, ErrUnsupportedPlatform) {
		t.Errorf("expected ErrUnsupportedPlatform, got %v", err)
	}
}

func TestResolveChromeConfigRejectsFirefox(t *testing.T) {
	if _, err := resolveChromeConfig(Firefox, "linux", "/home/someone"); !errors.Is(err, ErrUnsupportedBrowser) {
		t.Errorf("expected ErrUnsupportedBrowser, got %v", err)
	}
}

func TestResolveChromeConfigSlackContainerFallback(t *testing.T) {
	home := t.TempDir()

	config, err := resolveChromeConfig(Slack, "darwin", home)
	if err != nil {
		t.Fatalf("resolveChromeConfig: %v", err)
	}
	if !strings.Contains(config.cookieFile, "com.tinyspeck.slackmacgap") {
		t.Errorf("expected the App Store container path when the direct path is missing, got %q", config.cookieFile)
	}

	direct := filepath.Join(home, "Library", "Application Support", "Slack")
	if err := os.MkdirAll(direct, 0o755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(filepath.Join(direct, "Cookies"), nil, 0o644); err != nil {
		t.Fatal(err)
	}

	config, err = resolveChromeConfig(Slack, "darwin", home)
	if err != nil {
		t.Fatalf("resolveChromeConfig: %v", err)
	}
	if strings.Contains(config.cookieFile, "com.tinyspeck.slackmacgap") {
		t.Errorf("expected the direct-download path when it exists, got %q", config.cookieFile)
	}
}

func TestHostname(t *testing.T) {
	got, err := hostname("https://foo.example.org/some/path")
	if err != nil {
		t.Fatalf("hostname: %v", err)
	}
	if got != "foo.example.org" {
		t.Errorf("hostname = %q, want %q", got, "foo.example.org")
	}
}

func TestHostnameMissingScheme(t *testing.T) {
	for _, raw := range []string{"example.org", "example.org/path", ""} {
		if _, err := hostname(raw); !errors.Is(err, ErrMissingScheme) {
			t.Errorf("hostname(%q): expected ErrMissingScheme, got %v", raw, err)
		}
	}
}

package cookie

import (
	"bytes"
	"testing"
)

func TestNameValueMapLastWriteWins(t *testing.T) {
	cookies := []Cookie{
		{Name: "session", Value: "from-parent", Host: "example.org"},
		{Name: "other", Value: "kept", Host: ".example.org"},
		{Name: "session", Value: "from-subdomain", Host: "www.example.org"},
	}

	m := NameValueMap(cookies)
	if len(m) != 2 {
		t.Fatalf("expected 2 entries, got %d: %v", len(m), m)
	}
	if m["session"] != "from-subdomain" {
		t.Errorf("session = %q, want the later, more specific value", m["session"])
	}
	if m["other"] != "kept" {
		t.Errorf("other = %q, want %q", m["other"], "kept")
	}
}

func TestWriteNetscapeFile(t *testing.T) {
	cookies := []Cookie{
		{Name: "session", Value: "abc123", Host: ".example.org", Path: "/", Expires: 13370000000000000, IsSecure: true},
		{Name: "theme", Value: "dark", Host: "example.org", Path: "/settings", Expires: 0, IsSecure: false},
	}

	var buf bytes.Buffer
	if err := WriteNetscapeFile(&buf, cookies); err != nil {
		t.Fatalf("WriteNetscapeFile: %v", err)
	}

	want := "# Netscape HTTP Cookie File\n" +
		".example.org\tTRUE\t/\tTRUE\t13370000000000000\tsession\tabc123\n" +
		"example.org\tTRUE\t/settings\tFALSE\t0\ttheme\tdark\n"
	if buf.String() != want {
		t.Errorf("got:\n%q\nwant:\n%q", buf.String(), want)
	}
}

func TestWriteNetscapeFileEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteNetscapeFile(&buf, nil); err != nil {
		t.Fatalf("WriteNetscapeFile: %v", err)
	}
	if buf.String() != "# Netscape HTTP Cookie File\n" {
		t.Errorf("expected only the header line, got %q", buf.String())
	}
}

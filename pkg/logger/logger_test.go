package logger

import (
	"bytes"
	"log"
	"strings"
	"testing"
)

func TestStandardLoggerPrefixes(t *testing.T) {
	var buf bytes.Buffer
	l := NewStandardLogger(log.New(&buf, "", 0))

	l.Info("reading %d rows", 3)
	l.Warning("slow query")
	l.Error("open failed: %s", "no such file")

	out := buf.String()
	for _, want := range []string{
		"[INFO] reading 3 rows",
		"[WARNING] slow query",
		"[ERROR] open failed: no such file",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}
}

func TestNopLoggerDiscards(t *testing.T) {
	// Must not panic with a nil-safe zero value.
	l := NewNopLogger()
	l.Info("ignored %d", 1)
	l.Warning("ignored")
	l.Error("ignored")
}

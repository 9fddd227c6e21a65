package logging

import (
	"bytes"
	"strings"
	"testing"
)

func resetGlobal(t *testing.T) {
	t.Helper()
	SetGlobal(nil)
	t.Cleanup(func() { SetGlobal(nil) })
}

func TestGlobal_DefaultsToNoop(t *testing.T) {
	resetGlobal(t)

	if Global() == nil {
		t.Fatal("Global() returned nil")
	}
	// Should not panic
	Debug("debug")
	Info("info")
	Warn("warn")
	Error("error")
}

func TestSetGlobal(t *testing.T) {
	resetGlobal(t)

	var buf bytes.Buffer
	l, err := New(&Config{Level: LevelDebug, Console: true, Output: &buf})
	if err != nil {
		t.Fatal(err)
	}
	SetGlobal(l)

	if Global() != l {
		t.Error("Global() did not return the logger passed to SetGlobal")
	}

	Debug("global debug", "k", "v")
	Info("global info")
	Warn("global warn")
	Error("global error")
	With("component", "makefile").Info("scoped")

	out := buf.String()
	for _, want := range []string{"global debug", "global info", "global warn", "global error", "component=makefile"} {
		if !strings.Contains(out, want) {
			t.Errorf("output missing %q:\n%s", want, out)
		}
	}

	SetGlobal(nil)
	if Global() == l {
		t.Error("SetGlobal(nil) should restore the no-op logger")
	}
}

func TestInitGlobalAndClose(t *testing.T) {
	resetGlobal(t)

	dir := t.TempDir()
	if err := InitGlobal(&Config{Level: LevelInfo, LogDir: dir}); err != nil {
		t.Fatalf("InitGlobal() error = %v", err)
	}
	path := Global().LogPath()
	if !strings.HasPrefix(path, dir) {
		t.Errorf("LogPath() = %q, want under %q", path, dir)
	}

	if err := CloseGlobal(); err != nil {
		t.Errorf("CloseGlobal() error = %v", err)
	}
	if Global().LogPath() != "" {
		t.Error("CloseGlobal() should restore the no-op logger")
	}
	// Closing twice is fine.
	if err := CloseGlobal(); err != nil {
		t.Errorf("second CloseGlobal() error = %v", err)
	}
}

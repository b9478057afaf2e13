package logging

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
)

func TestParseLevel(t *testing.T) {
	tests := []struct {
		in       string
		expected log.Level
		wantErr  bool
	}{
		{"", log.InfoLevel, false},
		{"debug", log.DebugLevel, false},
		{"WARN", log.WarnLevel, false},
		{" error ", log.ErrorLevel, false},
		{"loud", log.InfoLevel, true},
	}

	for _, tc := range tests {
		t.Run(tc.in, func(t *testing.T) {
			lvl, err := ParseLevel(tc.in)
			if (err != nil) != tc.wantErr {
				t.Fatalf("ParseLevel(%q) error = %v, wantErr %v", tc.in, err, tc.wantErr)
			}
			if lvl != tc.expected {
				t.Errorf("ParseLevel(%q) = %v, expected %v", tc.in, lvl, tc.expected)
			}
		})
	}
}

func TestNewRespectsLevel(t *testing.T) {
	var buf bytes.Buffer
	logger := New(Options{Writer: &buf, Level: log.WarnLevel, Prefix: "test"})

	logger.Info("hidden")
	logger.Warn("shown", "key", "value")

	out := buf.String()
	if strings.Contains(out, "hidden") {
		t.Error("info message should be filtered at warn level")
	}
	if !strings.Contains(out, "shown") || !strings.Contains(out, "test") {
		t.Errorf("unexpected output %q", out)
	}
}

func TestOpenFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "logs", "snake.log")

	f, err := OpenFile(path)
	if err != nil {
		t.Fatalf("OpenFile() error: %v", err)
	}
	New(Options{Writer: f}).Info("first")
	f.Close()

	f, err = OpenFile(path)
	if err != nil {
		t.Fatalf("reopen error: %v", err)
	}
	New(Options{Writer: f}).Info("second")
	f.Close()

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(string(data), "first") || !strings.Contains(string(data), "second") {
		t.Errorf("log file should be appended to, got %q", data)
	}
}

func TestExpandHome(t *testing.T) {
	home, err := os.UserHomeDir()
	if err != nil {
		t.Skip("no home directory")
	}

	got, err := expandHome("~/x/y.log")
	if err != nil {
		t.Fatal(err)
	}
	if got != filepath.Join(home, "x", "y.log") {
		t.Errorf("expandHome = %q", got)
	}
	if got, _ := expandHome("/abs/path"); got != "/abs/path" {
		t.Errorf("absolute path changed to %q", got)
	}
}

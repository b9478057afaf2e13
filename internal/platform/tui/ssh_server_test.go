package tui

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/charmbracelet/log"
)

func TestNewSSHServerCreatesHostKey(t *testing.T) {
	dir := t.TempDir()
	cfg := DefaultSSHServerConfig()
	cfg.Address = "127.0.0.1:0"
	cfg.HostKeyPath = filepath.Join(dir, "keys", "host_key")
	cfg.DBPath = filepath.Join(dir, "sessions.db")
	cfg.Logger = log.New(io.Discard)

	srv, err := NewSSHServer(cfg)
	if err != nil {
		t.Fatalf("NewSSHServer() error: %v", err)
	}
	t.Cleanup(func() { _ = srv.Shutdown() })

	if _, err := os.Stat(cfg.HostKeyPath); err != nil {
		t.Errorf("host key not created: %v", err)
	}
	if srv.Addr() != cfg.Address {
		t.Errorf("Addr() = %q, expected %q", srv.Addr(), cfg.Address)
	}
	if srv.ActiveSessions() != 0 {
		t.Errorf("ActiveSessions() = %d, expected 0", srv.ActiveSessions())
	}
	if srv.store == nil {
		t.Error("session store should be open")
	}
}

func TestDefaultSSHServerConfig(t *testing.T) {
	cfg := DefaultSSHServerConfig()
	if cfg.Address != ":23234" || cfg.TickRate != 60 {
		t.Errorf("defaults = %+v", cfg)
	}
	if cfg.HostKeyPath != "" {
		t.Error("host key path should default to the generated key")
	}
}

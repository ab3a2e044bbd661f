package main

import (
	"os"
	"path/filepath"
	"testing"
)

func TestLoadSettingsCreatesDefaultFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	cfg, err := loadSettings(path)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("default config not written: %v", err)
	}
	if cfg.Server.URL == "" {
		t.Fatal("default server URL empty")
	}
	if cfg.UI.PrivateNamespacePrefix != "vorto.private" {
		t.Fatalf("private prefix = %q", cfg.UI.PrivateNamespacePrefix)
	}
	if cfg.UI.AttachmentMaxMB != 2 {
		t.Fatalf("attachment max = %d, want 2", cfg.UI.AttachmentMaxMB)
	}
}

func TestLoadSettingsParsesExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.toml")
	content := `
[server]
url = "https://repo.example.com"
token = "abc123"
log_level = "debug"

[session]
username = "alice"
authorities = ["model_creator", "model_reviewer"]

[ui]
attachment_max_mb = 10
`
	if err := os.WriteFile(path, []byte(content), 0o600); err != nil {
		t.Fatalf("write config: %v", err)
	}
	cfg, err := loadSettings(path)
	if err != nil {
		t.Fatalf("loadSettings: %v", err)
	}
	if cfg.Server.URL != "https://repo.example.com" {
		t.Errorf("url = %q", cfg.Server.URL)
	}
	if cfg.Server.Token != "abc123" {
		t.Errorf("token = %q", cfg.Server.Token)
	}
	if cfg.UI.AttachmentMaxMB != 10 {
		t.Errorf("attachment max = %d, want 10", cfg.UI.AttachmentMaxMB)
	}
	// unset values still get defaults
	if cfg.UI.SearchPageSize == 0 {
		t.Error("search page size default not applied")
	}
	if !cfg.Session.authenticated() {
		t.Error("session with username should be authenticated")
	}
	if !cfg.Session.hasAuthority("model_creator") {
		t.Error("model_creator authority not found")
	}
	if cfg.Session.hasAuthority("admin") {
		t.Error("unexpected admin authority")
	}
}

func TestSessionUnauthenticatedByDefault(t *testing.T) {
	var s sessionInfo
	if s.authenticated() {
		t.Fatal("empty session should not be authenticated")
	}
	if s.hasAuthority(authorityModelCreator) {
		t.Fatal("empty session should hold no authorities")
	}
}

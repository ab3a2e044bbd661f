package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/BurntSushi/toml"
)

// ---------------------------------------------------------------------------
// Client configuration (TOML-based)
// ---------------------------------------------------------------------------

// settings is the top-level TOML structure.
type settings struct {
	Server  serverSettings `toml:"server"`
	Session sessionInfo    `toml:"session"`
	UI      uiSettings     `toml:"ui"`
}

type serverSettings struct {
	URL      string `toml:"url"`
	Token    string `toml:"token"`
	LogLevel string `toml:"log_level"`
}

// sessionInfo mirrors what the repository's session endpoint would report
// about the caller: whether the token maps to a user and which authorities
// that user holds. repodeck is token-configured, so this lives in the config
// file next to the token it describes.
type sessionInfo struct {
	Username    string   `toml:"username"`
	Authorities []string `toml:"authorities"`
}

type uiSettings struct {
	PrivateNamespacePrefix string `toml:"private_namespace_prefix"`
	AttachmentMaxMB        int    `toml:"attachment_max_mb"`
	SearchPageSize         int    `toml:"search_page_size"`
}

// authenticated reports whether the session maps to a named user.
func (s sessionInfo) authenticated() bool { return s.Username != "" }

// hasAuthority reports whether the session holds the named authority.
func (s sessionInfo) hasAuthority(name string) bool {
	for _, a := range s.Authorities {
		if a == name {
			return true
		}
	}
	return false
}

const defaultConfigTOML = `# repodeck configuration

[server]
url = "http://localhost:8080"
token = ""
log_level = "info"

[session]
username = ""
authorities = []

[ui]
private_namespace_prefix = "vorto.private"
attachment_max_mb = 2
search_page_size = 6
`

// configDir returns the directory for repodeck config and state files,
// using XDG_CONFIG_HOME or falling back to ~/.config.
func configDir() (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", fmt.Errorf("user config dir: %w", err)
	}
	return filepath.Join(dir, "repodeck"), nil
}

// configPath returns the full path to the config.toml file.
func configPath() (string, error) {
	dir, err := configDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(dir, "config.toml"), nil
}

// loadSettings reads the config file, creating it with defaults when absent.
func loadSettings(path string) (settings, error) {
	if path == "" {
		var err error
		path, err = configPath()
		if err != nil {
			return settings{}, err
		}
	}
	if _, err := os.Stat(path); os.IsNotExist(err) {
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return settings{}, fmt.Errorf("create config dir: %w", err)
		}
		if err := os.WriteFile(path, []byte(defaultConfigTOML), 0o600); err != nil {
			return settings{}, fmt.Errorf("write default config: %w", err)
		}
	}
	var cfg settings
	if _, err := toml.DecodeFile(path, &cfg); err != nil {
		return settings{}, fmt.Errorf("parse config %s: %w", path, err)
	}
	cfg.applyDefaults()
	return cfg, nil
}

// applyDefaults fills zero values that would otherwise break the UI.
func (c *settings) applyDefaults() {
	if c.Server.URL == "" {
		c.Server.URL = "http://localhost:8080"
	}
	if c.Server.LogLevel == "" {
		c.Server.LogLevel = "info"
	}
	if c.UI.PrivateNamespacePrefix == "" {
		c.UI.PrivateNamespacePrefix = "vorto.private"
	}
	if c.UI.AttachmentMaxMB <= 0 {
		c.UI.AttachmentMaxMB = 2
	}
	if c.UI.SearchPageSize <= 0 {
		c.UI.SearchPageSize = 6
	}
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"

	"github.com/repodeck/repodeck/repo"
)

func main() {
	if err := rootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var (
		serverURL  string
		token      string
		configFile string
		logFile    string
	)

	cmd := &cobra.Command{
		Use:   "repodeck <namespace.Name:version>",
		Short: "Browse and edit models in a Vorto-style repository",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			modelID := args[0]
			if _, err := repo.ParseModelID(modelID); err != nil {
				return err
			}

			cfg, err := loadSettings(configFile)
			if err != nil {
				return err
			}
			if serverURL != "" {
				cfg.Server.URL = serverURL
			}
			if token != "" {
				cfg.Server.Token = token
			}

			log, closeLog, err := newLogger(cfg.Server.LogLevel, logFile)
			if err != nil {
				return err
			}
			defer closeLog()

			dir, err := configDir()
			if err != nil {
				return err
			}
			db, err := openStore(filepath.Join(dir, "state.db"))
			if err != nil {
				// The store backs drafts and recents only; run without it.
				log.Warn().Err(err).Msg("state store unavailable")
				db = nil
			}
			if db != nil {
				defer db.Close()
			}

			api := repo.NewClient(cfg.Server.URL, cfg.Server.Token, log)
			p := tea.NewProgram(newModel(cfg, api, db, modelID, log), tea.WithAltScreen())
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().StringVar(&serverURL, "server", "", "repository base URL (overrides config)")
	cmd.Flags().StringVar(&token, "token", "", "bearer token (overrides config)")
	cmd.Flags().StringVar(&configFile, "config", "", "path to config.toml")
	cmd.Flags().StringVar(&logFile, "log-file", "", "write debug logs to this file")
	return cmd
}

// newLogger builds a zerolog logger. Without a log file everything is
// discarded: stderr belongs to the terminal UI.
func newLogger(level, path string) (zerolog.Logger, func(), error) {
	lvl, err := zerolog.ParseLevel(strings.ToLower(level))
	if err != nil {
		lvl = zerolog.InfoLevel
	}
	if path == "" {
		return zerolog.New(io.Discard), func() {}, nil
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o600)
	if err != nil {
		return zerolog.Logger{}, nil, fmt.Errorf("open log file: %w", err)
	}
	log := zerolog.New(f).Level(lvl).With().Timestamp().Logger()
	return log, func() { f.Close() }, nil
}

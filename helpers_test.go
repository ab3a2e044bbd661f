package main

import (
	"os"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/repodeck/repodeck/repo"
)

// testModel builds a model wired against a nil store and a client pointing
// nowhere. Handlers under test never touch the network; commands returned by
// them are simply not executed.
func testModel(t *testing.T) model {
	t.Helper()
	cfg := settings{}
	cfg.applyDefaults()
	api := repo.NewClient("http://localhost:0", "", zerolog.New(os.Stderr).Level(zerolog.Disabled))
	return newModel(cfg, api, nil, "com.acme:Sensor:1.0.0", zerolog.Nop())
}

func testEntity() repo.ModelInfo {
	return repo.ModelInfo{
		ID: repo.ModelID{
			Namespace: "com.acme",
			Name:      "Sensor",
			Version:   "1.0.0",
			Pretty:    "com.acme.Sensor:1.0.0",
		},
		Type:   repo.TypeFunctionblock,
		Author: "alice",
		State:  "Draft",
	}
}

// asModel unwraps the tea.Model returned by an update handler.
func asModel(t *testing.T, tm tea.Model) model {
	t.Helper()
	m, ok := tm.(model)
	if !ok {
		t.Fatalf("update returned %T, want model", tm)
	}
	return m
}

// keyMsg helper for tests
func keyMsg(k string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(k)}
}

func keyMsgEnter() tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyEnter}
}

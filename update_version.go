package main

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/repodeck/repodeck/repo"
)

// ---------------------------------------------------------------------------
// Create-version dialog
// ---------------------------------------------------------------------------

func (m model) updateVersionDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !m.versionDlg.submitting {
			m.dialog = dialogNone
		}
		return m, nil
	case "enter":
		version := strings.TrimSpace(m.versionDlg.input.Value())
		if version == "" || m.versionDlg.submitting {
			return m, nil
		}
		m.versionDlg.submitting = true
		m.versionDlg.errorMessage = ""
		return m, createVersionCmd(m.api, m.entity.ID.PrettyFormat(), version)
	}
	var cmd tea.Cmd
	m.versionDlg.input, cmd = m.versionDlg.input.Update(msg)
	return m, cmd
}

func (m model) handleVersionCreated(msg versionCreatedMsg) (tea.Model, tea.Cmd) {
	m.versionDlg.submitting = false
	if msg.err != nil {
		if repo.IsConflict(msg.err) {
			m.versionDlg.errorMessage = conflictMessage
		} else {
			m.versionDlg.errorMessage = repo.ServerMessage(msg.err)
		}
		return m, nil
	}
	return m.navigateTo(msg.info.ID.PrettyFormat())
}

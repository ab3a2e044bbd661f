package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/repodeck/repodeck/repo"
)

// ---------------------------------------------------------------------------
// Delete and publish: confirmation dialogs around one guarded mutation
// ---------------------------------------------------------------------------

func (m model) updateDeleteDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !m.deleteDlg.submitting {
			m.dialog = dialogNone
		}
		return m, nil
	case "enter":
		if m.deleteDlg.submitting {
			return m, nil
		}
		m.deleteDlg.submitting = true
		return m, deleteModelCmd(m.api, m.entity.ID.PrettyFormat())
	}
	return m, nil
}

func (m model) handleDeleteDone(msg deleteDoneMsg) (tea.Model, tea.Cmd) {
	m.deleteDlg.submitting = false
	if msg.err != nil {
		m.dialog = dialogNone
		m.setError(repo.ServerMessage(msg.err))
		return m, nil
	}
	m.dialog = dialogNone
	m.screen = screenGone
	m.setStatus(m.modelID + " deleted")
	return m, nil
}

func (m model) updatePublishDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !m.publishDlg.submitting {
			m.dialog = dialogNone
		}
		return m, nil
	case "enter":
		if m.publishDlg.submitting {
			return m, nil
		}
		m.publishDlg.submitting = true
		return m, publishCmd(m.api, m.entity.ID.PrettyFormat())
	}
	return m, nil
}

func (m model) handlePublishDone(msg publishDoneMsg) (tea.Model, tea.Cmd) {
	m.publishDlg.submitting = false
	m.dialog = dialogNone
	if msg.err != nil {
		m.setError(repo.ServerMessage(msg.err))
		return m, nil
	}
	return m.loadDetails()
}

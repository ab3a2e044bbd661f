package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/repodeck/repodeck/repo"
)

// ---------------------------------------------------------------------------
// Workflow-transition dialog
//
// Two phases: choosing among the server-reported legal actions, then
// confirming one. Opening the confirm phase fetches the action's descriptor
// so the dialog can show what the transition does. A response with workflow
// errors keeps the dialog open.
// ---------------------------------------------------------------------------

func (m model) updateWorkflowDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.workflowDlg.choosing {
		return m.updateWorkflowChoice(msg)
	}
	switch msg.String() {
	case "esc":
		if !m.workflowDlg.submitting {
			m.dialog = dialogNone
		}
		return m, nil
	case "enter":
		if m.workflowDlg.submitting {
			return m, nil
		}
		m.workflowDlg.submitting = true
		m.workflowDlg.hasErrors = false
		m.workflowDlg.errorMessage = ""
		return m, transitionWorkflowCmd(m.api, m.entity.ID.PrettyFormat(), m.workflowDlg.action)
	}
	return m, nil
}

func (m model) updateWorkflowChoice(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dialog = dialogNone
		return m, nil
	case "up", "k":
		if m.workflowDlg.cursor > 0 {
			m.workflowDlg.cursor--
		}
		return m, nil
	case "down", "j":
		if m.workflowDlg.cursor < len(m.workflowActions)-1 {
			m.workflowDlg.cursor++
		}
		return m, nil
	case "enter":
		if len(m.workflowActions) == 0 {
			return m, nil
		}
		m.workflowDlg.choosing = false
		m.workflowDlg.action = m.workflowActions[m.workflowDlg.cursor]
		return m, fetchWorkflowDescriptorCmd(m.api, m.entity.ID.PrettyFormat(), m.workflowDlg.action)
	}
	return m, nil
}

func (m model) handleWorkflowDescriptor(msg workflowDescriptorMsg) (tea.Model, tea.Cmd) {
	if m.dialog != dialogWorkflow {
		return m, nil
	}
	// a missing descriptor only costs the description text
	if msg.err == nil {
		m.workflowDlg.descriptor = msg.descriptor
	}
	return m, nil
}

func (m model) handleWorkflowDone(msg workflowDoneMsg) (tea.Model, tea.Cmd) {
	m.workflowDlg.submitting = false
	if msg.err != nil {
		m.workflowDlg.hasErrors = true
		m.workflowDlg.errorMessage = repo.ServerMessage(msg.err)
		return m, nil
	}
	if msg.resp.HasErrors {
		m.workflowDlg.hasErrors = true
		m.workflowDlg.errorMessage = msg.resp.ErrorMessage
		return m, nil
	}
	m.dialog = dialogNone
	return m.loadDetails()
}

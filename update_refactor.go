package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/repodeck/repodeck/repo"
)

// ---------------------------------------------------------------------------
// Refactor (rename) dialog
//
// The dialog prefetches the caller's default namespace and prefills the
// suffix by diffing it against the model's current namespace. The new id is
// composed as defaultNamespace[.suffix]:name:version.
// ---------------------------------------------------------------------------

func (m model) openRefactorDialog() (tea.Model, tea.Cmd) {
	name := textinput.New()
	name.Prompt = "Name: "
	name.SetValue(m.entity.ID.Name)
	name.Focus()
	suffix := textinput.New()
	suffix.Prompt = "Namespace suffix: "
	m.refactorDlg = refactorDialog{nameInput: name, suffixInput: suffix}
	m.dialog = dialogRefactor
	return m, fetchDefaultNamespaceCmd(m.api, m.entity.ID.PrettyFormat())
}

func (m model) handleDefaultNamespace(msg defaultNamespaceMsg) (tea.Model, tea.Cmd) {
	if m.dialog != dialogRefactor {
		return m, nil
	}
	if msg.err != nil {
		m.refactorDlg.errorMessage = repo.ServerMessage(msg.err)
		return m, nil
	}
	m.refactorDlg.defaultNamespace = msg.namespace
	if len(m.entity.ID.Namespace) > len(msg.namespace) {
		m.refactorDlg.suffixInput.SetValue(m.entity.ID.Namespace[len(msg.namespace)+1:])
	}
	return m, nil
}

func (m model) updateRefactorDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !m.refactorDlg.submitting {
			m.dialog = dialogNone
		}
		return m, nil
	case "tab", "shift+tab":
		if m.refactorDlg.focus == 0 {
			m.refactorDlg.focus = 1
			m.refactorDlg.nameInput.Blur()
			m.refactorDlg.suffixInput.Focus()
		} else {
			m.refactorDlg.focus = 0
			m.refactorDlg.suffixInput.Blur()
			m.refactorDlg.nameInput.Focus()
		}
		return m, nil
	case "enter":
		if m.refactorDlg.submitting || m.refactorDlg.defaultNamespace == "" {
			return m, nil
		}
		newName := strings.TrimSpace(m.refactorDlg.nameInput.Value())
		if newName == "" {
			return m, nil
		}
		namespace := m.refactorDlg.defaultNamespace
		if suffix := strings.TrimSpace(m.refactorDlg.suffixInput.Value()); suffix != "" {
			namespace += "." + suffix
		}
		newID := fmt.Sprintf("%s:%s:%s", namespace, newName, m.entity.ID.Version)
		m.refactorDlg.submitting = true
		m.refactorDlg.errorMessage = ""
		return m, refactorCmd(m.api, m.entity.ID.PrettyFormat(), newID)
	}
	var cmd tea.Cmd
	if m.refactorDlg.focus == 0 {
		m.refactorDlg.nameInput, cmd = m.refactorDlg.nameInput.Update(msg)
	} else {
		m.refactorDlg.suffixInput, cmd = m.refactorDlg.suffixInput.Update(msg)
	}
	return m, cmd
}

func (m model) handleRefactorDone(msg refactorDoneMsg) (tea.Model, tea.Cmd) {
	m.refactorDlg.submitting = false
	if msg.err != nil {
		if repo.IsConflict(msg.err) {
			m.refactorDlg.errorMessage = conflictMessage
		} else {
			m.refactorDlg.errorMessage = repo.ServerMessage(msg.err)
		}
		return m, nil
	}
	return m.navigateTo(msg.info.ID.PrettyFormat())
}

package main

import (
	tea "github.com/charmbracelet/bubbletea"
)

// ---------------------------------------------------------------------------
// Recently opened models overlay
// ---------------------------------------------------------------------------

func (m model) handleRecentsListed(msg recentsListedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError(msg.err.Error())
		return m, nil
	}
	if len(msg.entries) == 0 {
		m.setStatus("No recently opened models")
		return m, nil
	}
	m.recentsDlg = recentsDialog{entries: msg.entries}
	m.dialog = dialogRecents
	return m, nil
}

func (m model) updateRecentsDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dialog = dialogNone
		return m, nil
	case "up", "k":
		if m.recentsDlg.cursor > 0 {
			m.recentsDlg.cursor--
		}
		return m, nil
	case "down", "j":
		if m.recentsDlg.cursor < len(m.recentsDlg.entries)-1 {
			m.recentsDlg.cursor++
		}
		return m, nil
	case "enter":
		if len(m.recentsDlg.entries) == 0 {
			return m, nil
		}
		target := m.recentsDlg.entries[m.recentsDlg.cursor].ModelID
		if target == m.modelID {
			m.dialog = dialogNone
			return m, nil
		}
		return m.navigateTo(target)
	}
	return m, nil
}

package main

import (
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/repodeck/repodeck/repo"
)

// ---------------------------------------------------------------------------
// Comment dialog
// ---------------------------------------------------------------------------

func (m model) updateCommentDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !m.commentDlg.submitting {
			m.dialog = dialogNone
		}
		return m, nil
	case "enter":
		content := strings.TrimSpace(m.commentDlg.input.Value())
		if content == "" || m.commentDlg.submitting {
			return m, nil
		}
		m.commentDlg.submitting = true
		comment := repo.Comment{
			ModelID: m.modelID,
			Author:  m.session.Username,
			Date:    time.Now().Format(time.RFC3339),
			Content: content,
		}
		return m, postCommentCmd(m.api, comment)
	}
	var cmd tea.Cmd
	m.commentDlg.input, cmd = m.commentDlg.input.Update(msg)
	return m, cmd
}

func (m model) handleCommentPosted(msg commentPostedMsg) (tea.Model, tea.Cmd) {
	m.commentDlg.submitting = false
	if msg.err != nil {
		m.setError(commentErrorMessage(msg.err))
		m.dialog = dialogNone
		return m, nil
	}
	m.dialog = dialogNone
	return m, fetchCommentsCmd(m.api, m.modelID, m.loadGen)
}

// commentErrorMessage maps comment-store failures to page messages.
func commentErrorMessage(err error) string {
	switch {
	case repo.IsForbidden(err):
		return "Operation is Forbidden"
	case repo.IsUnauthenticated(err):
		return "Unauthorized Operation"
	default:
		return repo.ServerMessage(err)
	}
}

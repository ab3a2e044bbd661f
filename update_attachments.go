package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/bubbles/list"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

// ---------------------------------------------------------------------------
// Attachment upload and delete dialogs
// ---------------------------------------------------------------------------

func noteForMaxSize(maxMB int) string {
	return fmt.Sprintf("Max file size %d MB.", maxMB)
}

// fileItem adapts a filename to the bubbles list.
type fileItem struct {
	name string
}

func (f fileItem) Title() string       { return f.name }
func (f fileItem) Description() string { return "" }
func (f fileItem) FilterValue() string { return f.name }

type fileItemDelegate struct{}

func (d fileItemDelegate) Height() int                             { return 1 }
func (d fileItemDelegate) Spacing() int                            { return 0 }
func (d fileItemDelegate) Update(_ tea.Msg, _ *list.Model) tea.Cmd { return nil }
func (d fileItemDelegate) Render(w io.Writer, m list.Model, index int, item list.Item) {
	entry, ok := item.(fileItem)
	if !ok {
		return
	}
	prefix := "  "
	style := lipgloss.NewStyle().Foreground(colorText)
	if index == m.Index() {
		prefix = "> "
		style = style.Foreground(colorFocus)
	}
	fmt.Fprint(w, style.Render(prefix+entry.name))
}

func (m model) handleUploadFilesListed(msg uploadFilesListedMsg) (tea.Model, tea.Cmd) {
	if m.dialog != dialogUpload {
		return m, nil
	}
	if msg.err != nil {
		m.uploadDlg.errorMessage = msg.err.Error()
		return m, nil
	}
	items := make([]list.Item, 0, len(msg.files))
	for _, name := range msg.files {
		items = append(items, fileItem{name: name})
	}
	picker := list.New(items, fileItemDelegate{}, 40, 10)
	picker.Title = "Attach file"
	picker.Styles.Title = titleStyle
	picker.SetShowStatusBar(false)
	picker.SetFilteringEnabled(false)
	picker.SetShowHelp(false)
	picker.DisableQuitKeybindings()
	m.uploadDlg.picker = picker
	m.uploadDlg.ready = true
	return m, nil
}

func (m model) updateUploadDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !m.uploadDlg.uploading {
			m.dialog = dialogNone
		}
		return m, nil
	case "enter":
		if !m.uploadDlg.ready || m.uploadDlg.uploading {
			return m, nil
		}
		item, ok := m.uploadDlg.picker.SelectedItem().(fileItem)
		if !ok {
			return m, nil
		}
		// advisory check; the server is the actual enforcer
		if info, err := os.Stat(item.name); err == nil &&
			info.Size() > int64(m.cfg.UI.AttachmentMaxMB)<<20 {
			m.uploadDlg.failed = true
			m.uploadDlg.errorMessage = sizeExceededMessage(m.cfg.UI.AttachmentMaxMB)
			return m, nil
		}
		m.uploadDlg.uploading = true
		m.uploadDlg.failed = false
		m.uploadDlg.errorMessage = ""
		m.uploadDlg.note = "Uploading..."
		return m, uploadAttachmentCmd(m.api, m.entity.ID.PrettyFormat(), item.name)
	}
	if !m.uploadDlg.ready {
		return m, nil
	}
	var cmd tea.Cmd
	m.uploadDlg.picker, cmd = m.uploadDlg.picker.Update(msg)
	return m, cmd
}

func sizeExceededMessage(maxMB int) string {
	return fmt.Sprintf("File size exceeded. Allowed max size: %d MB", maxMB)
}

func (m model) handleAttachmentUploaded(msg attachmentUploadedMsg) (tea.Model, tea.Cmd) {
	m.uploadDlg.uploading = false
	m.uploadDlg.note = noteForMaxSize(m.cfg.UI.AttachmentMaxMB)
	refresh := fetchAttachmentsCmd(m.api, m.modelID, m.loadGen)
	if msg.err != nil {
		m.uploadDlg.failed = true
		m.uploadDlg.errorMessage = sizeExceededMessage(m.cfg.UI.AttachmentMaxMB)
		return m, nil
	}
	if !msg.result.Success {
		m.uploadDlg.failed = true
		m.uploadDlg.errorMessage = msg.result.ErrorMessage
		return m, refresh
	}
	m.uploadDlg.uploaded = true
	return m, tea.Batch(refresh, autoCloseCmd(dialogUpload))
}

func (m model) updateAttachDeleteDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		if !m.attachDelDlg.deleting {
			m.dialog = dialogNone
		}
		return m, nil
	case "up", "k":
		if m.attachDelDlg.cursor > 0 {
			m.attachDelDlg.cursor--
		}
		return m, nil
	case "down", "j":
		if m.attachDelDlg.cursor < len(m.attachments)-1 {
			m.attachDelDlg.cursor++
		}
		return m, nil
	case "enter":
		if m.attachDelDlg.deleting || len(m.attachments) == 0 {
			return m, nil
		}
		m.attachDelDlg.fileName = m.attachments[m.attachDelDlg.cursor].FileName
		m.attachDelDlg.deleting = true
		m.attachDelDlg.failed = false
		return m, deleteAttachmentCmd(m.api, m.entity.ID.PrettyFormat(), m.attachDelDlg.fileName)
	}
	return m, nil
}

func (m model) handleAttachmentDeleted(msg attachmentDeletedMsg) (tea.Model, tea.Cmd) {
	m.attachDelDlg.deleting = false
	if msg.err != nil {
		m.attachDelDlg.failed = true
		return m, nil
	}
	m.attachDelDlg.deleted = true
	if m.attachDelDlg.cursor > 0 {
		m.attachDelDlg.cursor--
	}
	return m, tea.Batch(
		fetchAttachmentsCmd(m.api, m.modelID, m.loadGen),
		autoCloseCmd(dialogAttachDelete),
	)
}

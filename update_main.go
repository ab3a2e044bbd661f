package main

import (
	"os"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/repodeck/repodeck/repo"
)

// ---------------------------------------------------------------------------
// Main screen key handling and the save action
// ---------------------------------------------------------------------------

// actionsEnabled gates every lifecycle affordance on the loading flags: no
// action may start while the model or a save is still in flight.
func (m model) actionsEnabled() bool {
	return m.screen == screenDetails && m.haveEntity && !m.modelIsLoading && !m.isLoading
}

func (m model) updateMain(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.editorFocused {
		return m.updateEditorKeys(msg)
	}

	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit

	case key.Matches(msg, m.keys.Reload):
		return m.loadDetails()

	case key.Matches(msg, m.keys.References):
		m.showReferences = !m.showReferences
		return m, nil

	case key.Matches(msg, m.keys.Usages):
		m.showUsages = !m.showUsages
		return m, nil

	case key.Matches(msg, m.keys.Mappings):
		m.showMappings = !m.showMappings
		return m, nil

	case key.Matches(msg, m.keys.Recents):
		return m, listRecentsCmd(m.db)
	}

	if !m.actionsEnabled() {
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keys.EditToggle):
		if m.editor == nil {
			return m, nil
		}
		m.editorFocused = true
		m.editor.Focus()
		var cmd tea.Cmd
		if !m.draftTicking {
			m.draftTicking = true
			cmd = draftTickCmd()
		}
		return m, cmd

	case key.Matches(msg, m.keys.Save):
		return m.saveModel()

	case key.Matches(msg, m.keys.Delete):
		if m.permission == permissionRead {
			return m, nil
		}
		m.dialog = dialogDelete
		m.deleteDlg = confirmDialog{}
		return m, nil

	case key.Matches(msg, m.keys.NewVersion):
		if !m.session.hasAuthority(authorityModelCreator) {
			return m, nil
		}
		input := textinput.New()
		input.Prompt = "New version: "
		input.Placeholder = "1.0.1"
		input.Focus()
		m.versionDlg = versionDialog{input: input}
		m.dialog = dialogVersion
		return m, nil

	case key.Matches(msg, m.keys.Refactor):
		if !isEditingVisible(m.permission, m.entity) {
			return m, nil
		}
		return m.openRefactorDialog()

	case key.Matches(msg, m.keys.Publish):
		if !m.canPublishModel || hasOfficialPrefix(m.entity, m.cfg.UI.PrivateNamespacePrefix) {
			return m, nil
		}
		m.dialog = dialogPublish
		m.publishDlg = confirmDialog{}
		return m, nil

	case key.Matches(msg, m.keys.Workflow):
		if len(m.workflowActions) == 0 {
			m.setStatus("No workflow actions available")
			return m, nil
		}
		m.workflowDlg = workflowDialog{choosing: true}
		m.dialog = dialogWorkflow
		return m, nil

	case key.Matches(msg, m.keys.Upload):
		if m.permission == permissionRead {
			return m, nil
		}
		return m.openUploadDialog()

	case key.Matches(msg, m.keys.Attachments):
		if m.permission == permissionRead || len(m.attachments) == 0 {
			return m, nil
		}
		m.attachDelDlg = attachDeleteDialog{}
		m.dialog = dialogAttachDelete
		return m, nil

	case key.Matches(msg, m.keys.Comment):
		if !m.session.authenticated() {
			return m, nil
		}
		input := textinput.New()
		input.Prompt = "> "
		input.Placeholder = "comment"
		input.CharLimit = 250
		input.Focus()
		m.commentDlg = commentDialog{input: input}
		m.dialog = dialogComment
		return m, nil

	case key.Matches(msg, m.keys.Search):
		return m.openSearchDialog()
	}
	return m, nil
}

// updateEditorKeys routes keys while the editor pane has focus. Read-only
// editors still scroll, but never mutate the document.
func (m model) updateEditorKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.editorFocused = false
		m.editor.Blur()
		return m, nil
	case "ctrl+s":
		return m.saveModel()
	case "ctrl+r":
		return m.restoreDraft()
	}
	if m.editorReadOnly && !isEditorNavKey(msg) {
		return m, nil
	}
	before := m.editor.Value()
	var cmd tea.Cmd
	*m.editor, cmd = m.editor.Update(msg)
	if m.editor.Value() != before {
		m.editorDirty = true
	}
	return m, cmd
}

func isEditorNavKey(msg tea.KeyMsg) bool {
	switch msg.String() {
	case "up", "down", "left", "right", "pgup", "pgdown", "home", "end":
		return true
	}
	return false
}

// saveModel PUTs the editor content. Validation findings come back either in
// a 2xx result with valid=false or in a 400; both populate the issues panel.
func (m model) saveModel() (tea.Model, tea.Cmd) {
	if m.editor == nil || !isEditingVisible(m.permission, m.entity) || m.isLoading {
		return m, nil
	}
	m.isLoading = true
	m.errorText = ""
	m.message = ""
	m.validationIssues = nil
	return m, tea.Batch(
		saveModelCmd(m.api, m.entity.ID.PrettyFormat(), m.editor.Value(), m.entity.Type),
		m.spinner.Tick,
	)
}

func (m model) handleSaveDone(msg saveDoneMsg) (tea.Model, tea.Cmd) {
	m.isLoading = false
	if msg.err != nil {
		if repo.IsValidation(msg.err) {
			m.message = repo.ServerMessage(msg.err)
			m.validationIssues = repo.IssuesOf(msg.err)
		} else {
			m.errorText = repo.ServerMessage(msg.err)
		}
		return m, nil
	}
	m.message = msg.result.Message
	if !msg.result.Valid {
		m.validationIssues = msg.result.ValidationIssues
		return m, nil
	}
	m.editorDirty = false
	next, cmd := m.loadDetails()
	return next, tea.Batch(cmd, deleteDraftCmd(m.db, m.modelID))
}

func (m model) restoreDraft() (tea.Model, tea.Cmd) {
	if m.draftContent == "" || m.editor == nil || m.editorReadOnly {
		return m, nil
	}
	m.editor.SetValue(m.draftContent)
	m.editorDirty = true
	m.draftNotice = ""
	m.setStatus("Draft restored")
	return m, nil
}

// openUploadDialog lists attachable files from the working directory.
func (m model) openUploadDialog() (tea.Model, tea.Cmd) {
	dir, err := os.Getwd()
	if err != nil {
		m.setError(err.Error())
		return m, nil
	}
	m.uploadDlg = uploadDialog{
		note: noteForMaxSize(m.cfg.UI.AttachmentMaxMB),
	}
	m.dialog = dialogUpload
	return m, listUploadCandidatesCmd(dir)
}

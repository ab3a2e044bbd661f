package main

import (
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
)

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	// details orchestration
	case detailsLoadedMsg:
		return m.handleDetailsLoaded(msg)
	case referenceResolvedMsg:
		return m.handleReferenceResolved(msg)
	case mappingResolvedMsg:
		return m.handleMappingResolved(msg)
	case attachmentsLoadedMsg:
		return m.handleAttachmentsLoaded(msg)
	case commentsLoadedMsg:
		return m.handleCommentsLoaded(msg)
	case policyLoadedMsg:
		return m.handlePolicyLoaded(msg)
	case policiesLoadedMsg:
		return m.handlePoliciesLoaded(msg)
	case workflowActionsMsg:
		return m.handleWorkflowActions(msg)
	case generatorsLoadedMsg:
		return m.handleGeneratorsLoaded(msg)
	case editorBuiltMsg:
		return m.handleEditorBuilt(msg)
	case contentLoadedMsg:
		return m.handleContentLoaded(msg)

	// local drafts
	case draftLoadedMsg:
		return m.handleDraftLoaded(msg)
	case draftTickMsg:
		return m.handleDraftTick()
	case draftSavedMsg:
		if msg.err != nil {
			m.log.Warn().Err(msg.err).Msg("draft autosave failed")
		}
		return m, nil

	// action results
	case saveDoneMsg:
		return m.handleSaveDone(msg)
	case deleteDoneMsg:
		return m.handleDeleteDone(msg)
	case versionCreatedMsg:
		return m.handleVersionCreated(msg)
	case defaultNamespaceMsg:
		return m.handleDefaultNamespace(msg)
	case refactorDoneMsg:
		return m.handleRefactorDone(msg)
	case publishDoneMsg:
		return m.handlePublishDone(msg)
	case workflowDescriptorMsg:
		return m.handleWorkflowDescriptor(msg)
	case workflowDoneMsg:
		return m.handleWorkflowDone(msg)
	case attachmentUploadedMsg:
		return m.handleAttachmentUploaded(msg)
	case attachmentDeletedMsg:
		return m.handleAttachmentDeleted(msg)
	case commentPostedMsg:
		return m.handleCommentPosted(msg)
	case searchDoneMsg:
		return m.handleSearchDone(msg)
	case referenceCopiedMsg:
		return m.handleReferenceCopied(msg)
	case uploadFilesListedMsg:
		return m.handleUploadFilesListed(msg)
	case recentsListedMsg:
		return m.handleRecentsListed(msg)
	case dialogAutoCloseMsg:
		if m.dialog == msg.dialog {
			m.dialog = dialogNone
		}
		return m, nil

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.resizeEditor()
		return m, nil

	case spinner.TickMsg:
		if !m.anyLoading() {
			return m, nil
		}
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case tea.KeyMsg:
		if entry, ok := dialogDispatch(m.dialog); ok {
			return entry.handler(m, msg)
		}
		return m.updateMain(msg)
	}
	return m, nil
}

func (m model) anyLoading() bool {
	return m.modelIsLoading || m.isLoading || m.isLoadingGenerators || m.loadingModel
}

// resizeEditor keeps the editor sized to its pane.
func (m *model) resizeEditor() {
	if m.editor == nil {
		return
	}
	w := m.width/2 - 4
	h := m.height - 8
	if w < 20 {
		w = 20
	}
	if h < 5 {
		h = 5
	}
	m.editor.SetWidth(w)
	m.editor.SetHeight(h)
}

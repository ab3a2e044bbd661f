package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/repodeck/repodeck/repo"
)

// ---------------------------------------------------------------------------
// Details orchestration
//
// loadDetails is the sole entry point for a full reload. Each call bumps the
// load generation; results from superseded loads are discarded on arrival,
// so a reload during an in-flight load cannot interleave into the fresh
// snapshot.
// ---------------------------------------------------------------------------

func (m model) loadDetails() (model, tea.Cmd) {
	m.loadGen++
	m.modelIsLoading = true
	m.isLoadingGenerators = true
	m.errorLoading = ""
	m.message = ""
	m.errorText = ""
	m.validationIssues = nil
	m.draftNotice = ""
	m.draftContent = ""
	return m, tea.Batch(
		fetchDetailsCmd(m.api, m.modelID, m.loadGen),
		fetchGeneratorsCmd(m.api),
		m.spinner.Tick,
	)
}

// navigateTo switches the controller to another model id and reloads. The
// editor instance survives navigation; only its content is replaced.
func (m model) navigateTo(id string) (model, tea.Cmd) {
	m.modelID = id
	m.haveEntity = false
	m.editorFocused = false
	m.dialog = dialogNone
	return m.loadDetails()
}

func (m model) handleDetailsLoaded(msg detailsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen {
		return m, nil
	}
	if msg.err != nil {
		// the flag must drop on the failure path too, or the toolbar
		// never reappears
		m.modelIsLoading = false
		switch {
		case repo.IsUnauthenticated(msg.err):
			m.screen = screenLogin
		case repo.IsForbidden(msg.err):
			m.errorLoading = "No permission to access model"
		default:
			m.errorLoading = repo.ServerMessage(msg.err)
		}
		return m, nil
	}

	m.screen = screenDetails
	m.entity = msg.entity
	m.haveEntity = true
	if len(m.entity.Author) == pseudonymizedAuthorLen {
		m.entity.Author = authorPlaceholder
	}

	// fresh snapshot: derived state resets before the fan-out
	m.canGenerate = true
	m.showReferences = false
	m.showUsages = false
	m.references = derivedList{pending: len(m.entity.References)}
	m.referencedBy = derivedList{pending: len(m.entity.ReferencedBy)}
	m.mappings = mappingList{pending: len(m.entity.PlatformMappings)}
	m.attachments = nil
	m.comments = nil
	m.workflowActions = nil
	m.permission = permissionRead
	m.canPublishModel = false

	cmds := []tea.Cmd{
		fetchAttachmentsCmd(m.api, m.modelID, m.loadGen),
		fetchCommentsCmd(m.api, m.modelID, m.loadGen),
		fetchWorkflowActionsCmd(m.api, m.modelID, m.loadGen),
		recordRecentCmd(m.db, m.entity),
	}
	for mappingID, platformKey := range m.entity.PlatformMappings {
		cmds = append(cmds, resolveMappingCmd(m.api, mappingID, platformKey, m.loadGen))
	}
	for _, ref := range m.entity.References {
		cmds = append(cmds, resolveReferenceCmd(m.api, kindReferences, ref, m.loadGen))
	}
	for _, ref := range m.entity.ReferencedBy {
		cmds = append(cmds, resolveReferenceCmd(m.api, kindReferencedBy, ref, m.loadGen))
	}
	if m.session.authenticated() && m.session.hasAuthority(authorityModelCreator) {
		cmds = append(cmds,
			fetchPolicyCmd(m.api, m.modelID, m.loadGen),
			fetchPoliciesCmd(m.api, m.modelID, m.loadGen),
		)
	}

	// editor handling: create lazily on the first load, then only
	// repopulate content
	if m.editor == nil {
		cmds = append(cmds, createEditorCmd(m.loadGen, m.entity))
	} else {
		m.loadingModel = true
		cmds = append(cmds, fetchContentCmd(m.api, m.modelID, m.loadGen))
	}
	cmds = append(cmds, loadDraftCmd(m.db, m.modelID, m.loadGen))

	m.modelIsLoading = false
	m.setStatus(m.entity.ID.PrettyFormat() + " loaded")
	return m, tea.Batch(cmds...)
}

// handleReferenceResolved lands one member of a reference batch. Entries are
// appended in completion order; a failed member still yields a placeholder
// built from the original reference, and any inaccessible reference disables
// generation for the whole entity.
func (m model) handleReferenceResolved(msg referenceResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen {
		return m, nil
	}
	lst := &m.references
	if msg.kind == kindReferencedBy {
		lst = &m.referencedBy
	}
	if msg.err != nil {
		lst.entries = append(lst.entries, derivedEntry{
			modelID:   msg.source.PrettyFormat(),
			hasAccess: false,
		})
		if msg.kind == kindReferences {
			m.canGenerate = false
		}
	} else {
		lst.entries = append(lst.entries, derivedEntry{
			modelID:   msg.info.ID.PrettyFormat(),
			modelType: msg.info.Type,
			state:     msg.info.State,
			hasAccess: true,
		})
	}
	lst.show = true
	if lst.pending > 0 {
		lst.pending--
	}
	return m, nil
}

// handleMappingResolved lands one platform-mapping resolution. Failures are
// dropped silently; the mappings list only shows what resolved.
func (m model) handleMappingResolved(msg mappingResolvedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen {
		return m, nil
	}
	if m.mappings.pending > 0 {
		m.mappings.pending--
	}
	if msg.err != nil {
		return m, nil
	}
	m.mappings.entries = append(m.mappings.entries, mappingEntry{
		modelID:        msg.info.ID.PrettyFormat(),
		state:          msg.info.State,
		targetPlatform: msg.targetPlatform,
	})
	return m, nil
}

func (m model) handleAttachmentsLoaded(msg attachmentsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen || msg.err != nil {
		return m, nil
	}
	m.attachments = msg.attachments
	return m, nil
}

func (m model) handleCommentsLoaded(msg commentsLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen || msg.err != nil {
		return m, nil
	}
	// newest first
	comments := make([]repo.Comment, 0, len(msg.comments))
	for i := len(msg.comments) - 1; i >= 0; i-- {
		comments = append(comments, msg.comments[i])
	}
	m.comments = comments
	return m, nil
}

// handlePolicyLoaded records the caller's effective permission, falling back
// to READ when the fetch fails.
func (m model) handlePolicyLoaded(msg policyLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen {
		return m, nil
	}
	if msg.err != nil || msg.permission == "" {
		m.permission = permissionRead
		return m, nil
	}
	m.permission = msg.permission
	return m, nil
}

// handlePoliciesLoaded derives canPublishModel from policy membership. A
// failed fetch forces both permission and canPublishModel closed.
func (m model) handlePoliciesLoaded(msg policiesLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen {
		return m, nil
	}
	if msg.err != nil {
		m.permission = permissionRead
		m.canPublishModel = false
		return m, nil
	}
	m.canPublishModel = false
	for _, p := range msg.policies {
		if p.PrincipalID == principalModelPublisher {
			m.canPublishModel = true
			break
		}
	}
	return m, nil
}

func (m model) handleWorkflowActions(msg workflowActionsMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen || msg.err != nil {
		return m, nil
	}
	m.workflowActions = msg.actions
	return m, nil
}

// handleGeneratorsLoaded partitions the catalog by tag and reshapes each
// subset into a two-column grid for the generators pane.
func (m model) handleGeneratorsLoaded(msg generatorsLoadedMsg) (tea.Model, tea.Cmd) {
	m.isLoadingGenerators = false
	if msg.err != nil {
		return m, nil
	}
	m.prodGenerators = listToMatrix(filterByTag(msg.generators, "production"), 2)
	m.demoGenerators = listToMatrix(filterByTag(msg.generators, "demo"), 2)
	return m, nil
}

func (m model) handleEditorBuilt(msg editorBuiltMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen {
		return m, nil
	}
	m.bindEditor(msg.editor, msg.mode)
	m.resizeEditor()
	m.loadingModel = true
	return m, fetchContentCmd(m.api, m.modelID, m.loadGen)
}

func (m model) handleContentLoaded(msg contentLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen {
		return m, nil
	}
	m.loadingModel = false
	if msg.err != nil {
		m.errorText = repo.ServerMessage(msg.err)
		return m, nil
	}
	m.applyEditorContent(msg.content)
	return m, nil
}

func (m model) handleDraftLoaded(msg draftLoadedMsg) (tea.Model, tea.Cmd) {
	if msg.gen != m.loadGen || msg.err != nil || !msg.ok {
		return m, nil
	}
	m.draftContent = msg.content
	m.draftNotice = "Local draft available, ctrl+r restores it"
	return m, nil
}

func (m model) handleDraftTick() (tea.Model, tea.Cmd) {
	if !m.editorFocused || m.editor == nil {
		m.draftTicking = false
		return m, nil
	}
	var cmd tea.Cmd
	if m.editorDirty {
		cmd = saveDraftCmd(m.db, m.modelID, m.editor.Value())
	}
	return m, tea.Batch(cmd, draftTickCmd())
}

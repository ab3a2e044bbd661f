package main

import (
	"github.com/charmbracelet/bubbles/textarea"

	"github.com/repodeck/repodeck/repo"
)

// ---------------------------------------------------------------------------
// Bubble Tea messages
//
// Every message belonging to a details load carries the generation it was
// issued under; handlers discard messages from superseded loads.
// ---------------------------------------------------------------------------

type detailsLoadedMsg struct {
	gen    int
	entity repo.ModelInfo
	err    error
}

// derivedKind tells a reference resolution which output list it belongs to.
type derivedKind int

const (
	kindReferences derivedKind = iota
	kindReferencedBy
)

type referenceResolvedMsg struct {
	gen    int
	kind   derivedKind
	source repo.ModelID // original untyped reference, used for placeholders
	info   repo.ModelInfo
	err    error
}

type mappingResolvedMsg struct {
	gen            int
	targetPlatform string
	info           repo.ModelInfo
	err            error
}

type attachmentsLoadedMsg struct {
	gen         int
	attachments []repo.Attachment
	err         error
}

type commentsLoadedMsg struct {
	gen      int
	comments []repo.Comment
	err      error
}

type policyLoadedMsg struct {
	gen        int
	permission string
	err        error
}

type policiesLoadedMsg struct {
	gen      int
	policies []repo.Policy
	err      error
}

type workflowActionsMsg struct {
	gen     int
	actions []string
	err     error
}

type generatorsLoadedMsg struct {
	generators []repo.Generator
	err        error
}

type editorBuiltMsg struct {
	gen    int
	editor *textarea.Model
	mode   languageMode
}

type contentLoadedMsg struct {
	gen     int
	content string
	err     error
}

// --- action results --------------------------------------------------------

type saveDoneMsg struct {
	result repo.ValidationResult
	err    error
}

type deleteDoneMsg struct {
	err error
}

type versionCreatedMsg struct {
	info repo.ModelInfo
	err  error
}

type defaultNamespaceMsg struct {
	namespace string
	err       error
}

type refactorDoneMsg struct {
	info repo.ModelInfo
	err  error
}

type publishDoneMsg struct {
	err error
}

type workflowDescriptorMsg struct {
	descriptor *repo.WorkflowAction
	err        error
}

type workflowDoneMsg struct {
	resp repo.WorkflowResponse
	err  error
}

type attachmentUploadedMsg struct {
	result repo.UploadResult
	err    error
}

type attachmentDeletedMsg struct {
	err error
}

type commentPostedMsg struct {
	err error
}

type searchDoneMsg struct {
	seq     int
	results []repo.ModelInfo
	err     error
}

type referenceCopiedMsg struct {
	err error
}

// dialogAutoCloseMsg closes the named dialog after the post-success delay,
// unless the user already closed it or opened another one.
type dialogAutoCloseMsg struct {
	dialog dialogKind
}

// --- local store -----------------------------------------------------------

type uploadFilesListedMsg struct {
	files []string
	err   error
}

type draftTickMsg struct{}

type draftSavedMsg struct {
	err error
}

type draftLoadedMsg struct {
	gen     int
	content string
	ok      bool
	err     error
}

type recentsListedMsg struct {
	entries []recentModel
	err     error
}

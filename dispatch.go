package main

// ---------------------------------------------------------------------------
// Shared dialog dispatch table: single source of truth for dialog handling
// ---------------------------------------------------------------------------
//
// Two consumers read this table:
//   - Update (update.go) routes tea.KeyMsg to the open dialog
//   - View (render.go) renders the open dialog's card and footer hints
//
// Adding a new action dialog: add one entry here plus its update/view
// functions; both consumers stay in sync.

import tea "github.com/charmbracelet/bubbletea"

type dialogEntry struct {
	kind    dialogKind
	handler func(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd)
	view    func(m model) string
	footer  string
}

// dialogTable returns the authoritative dialog table. This is a function to
// avoid initialization cycles, since handlers transitively reference
// functions that read the table.
func dialogTable() []dialogEntry {
	return []dialogEntry{
		{
			kind:    dialogWorkflow,
			handler: func(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) { return m.updateWorkflowDialog(msg) },
			view:    func(m model) string { return m.viewWorkflowDialog() },
			footer:  "enter: confirm  esc: close",
		},
		{
			kind:    dialogDelete,
			handler: func(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) { return m.updateDeleteDialog(msg) },
			view:    func(m model) string { return m.viewDeleteDialog() },
			footer:  "enter: delete  esc: cancel",
		},
		{
			kind:    dialogVersion,
			handler: func(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) { return m.updateVersionDialog(msg) },
			view:    func(m model) string { return m.viewVersionDialog() },
			footer:  "enter: create  esc: cancel",
		},
		{
			kind:    dialogRefactor,
			handler: func(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) { return m.updateRefactorDialog(msg) },
			view:    func(m model) string { return m.viewRefactorDialog() },
			footer:  "enter: rename  tab: next field  esc: cancel",
		},
		{
			kind:    dialogPublish,
			handler: func(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) { return m.updatePublishDialog(msg) },
			view:    func(m model) string { return m.viewPublishDialog() },
			footer:  "enter: publish  esc: cancel",
		},
		{
			kind:    dialogSearch,
			handler: func(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) { return m.updateSearchDialog(msg) },
			view:    func(m model) string { return m.viewSearchDialog() },
			footer:  "enter: search  tab: type facet  y: copy reference  esc: close",
		},
		{
			kind:    dialogUpload,
			handler: func(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) { return m.updateUploadDialog(msg) },
			view:    func(m model) string { return m.viewUploadDialog() },
			footer:  "enter: upload  esc: cancel",
		},
		{
			kind:    dialogAttachDelete,
			handler: func(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) { return m.updateAttachDeleteDialog(msg) },
			view:    func(m model) string { return m.viewAttachDeleteDialog() },
			footer:  "enter: delete  esc: cancel",
		},
		{
			kind:    dialogComment,
			handler: func(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) { return m.updateCommentDialog(msg) },
			view:    func(m model) string { return m.viewCommentDialog() },
			footer:  "enter: post  esc: cancel",
		},
		{
			kind:    dialogRecents,
			handler: func(m model, msg tea.KeyMsg) (tea.Model, tea.Cmd) { return m.updateRecentsDialog(msg) },
			view:    func(m model) string { return m.viewRecentsDialog() },
			footer:  "enter: open  esc: close",
		},
	}
}

// dialogDispatch finds the table entry for the open dialog.
func dialogDispatch(kind dialogKind) (dialogEntry, bool) {
	if kind == dialogNone {
		return dialogEntry{}, false
	}
	for _, entry := range dialogTable() {
		if entry.kind == kind {
			return entry, true
		}
	}
	return dialogEntry{}, false
}

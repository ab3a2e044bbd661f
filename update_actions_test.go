package main

import (
	"errors"
	"testing"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/repodeck/repodeck/repo"
)

func editingModel(t *testing.T) model {
	t.Helper()
	m := testModel(t)
	m = asModel(t, firstOf(m.handleDetailsLoaded(detailsLoadedMsg{gen: m.loadGen, entity: testEntity()})))
	ta := textarea.New()
	m.bindEditor(&ta, editorConfig[languageFor(m.entity.Type)])
	m.applyEditorContent("functionblock Sensor {}")
	m.permission = "FULL_ACCESS"
	return m
}

// ---------------------------------------------------------------------------
// Save
// ---------------------------------------------------------------------------

func TestSaveGatedByPermissionAndReleaseState(t *testing.T) {
	m := editingModel(t)
	m.permission = permissionRead
	got := asModel(t, firstOf(m.saveModel()))
	if got.isLoading {
		t.Fatal("read-only caller must not start a save")
	}

	m = editingModel(t)
	m.entity.Released = true
	got = asModel(t, firstOf(m.saveModel()))
	if got.isLoading {
		t.Fatal("released model must not start a save")
	}

	m = editingModel(t)
	got = asModel(t, firstOf(m.saveModel()))
	if !got.isLoading {
		t.Fatal("editable model did not start a save")
	}
}

func TestSaveDoneValidationPaths(t *testing.T) {
	// 2xx with valid=false carries issues in the result
	m := editingModel(t)
	m.isLoading = true
	m.editorDirty = true
	got := asModel(t, firstOf(m.handleSaveDone(saveDoneMsg{result: repo.ValidationResult{
		Valid:            false,
		Message:          "Model is invalid",
		ValidationIssues: []repo.ValidationIssue{{Message: "unknown type", Line: 3}},
	}})))
	if got.isLoading {
		t.Fatal("isLoading still true after save result")
	}
	if len(got.validationIssues) != 1 || got.validationIssues[0].Line != 3 {
		t.Fatalf("validationIssues = %+v", got.validationIssues)
	}
	if !got.editorDirty {
		t.Fatal("invalid save must not clear the dirty flag")
	}

	// 400 carries issues in the error
	m = editingModel(t)
	m.isLoading = true
	got = asModel(t, firstOf(m.handleSaveDone(saveDoneMsg{err: &repo.APIError{
		Status:  400,
		Message: "Model is invalid",
		Issues:  []repo.ValidationIssue{{Message: "syntax error", Line: 1}},
	}})))
	if got.isLoading {
		t.Fatal("isLoading still true after 400")
	}
	if len(got.validationIssues) != 1 {
		t.Fatalf("validationIssues = %+v", got.validationIssues)
	}
	if got.errorText != "" {
		t.Fatalf("validation failure landed in errorText: %q", got.errorText)
	}

	// transport failure surfaces as error, not as validation
	m = editingModel(t)
	m.isLoading = true
	got = asModel(t, firstOf(m.handleSaveDone(saveDoneMsg{err: errors.New("connection reset")})))
	if got.errorText == "" {
		t.Fatal("transport failure did not surface")
	}
	if len(got.validationIssues) != 0 {
		t.Fatalf("transport failure produced issues: %+v", got.validationIssues)
	}
}

func TestSaveDoneValidReloads(t *testing.T) {
	m := editingModel(t)
	m.isLoading = true
	m.editorDirty = true
	gen := m.loadGen
	got := asModel(t, firstOf(m.handleSaveDone(saveDoneMsg{result: repo.ValidationResult{Valid: true}})))
	if got.editorDirty {
		t.Fatal("valid save left the editor dirty")
	}
	if got.loadGen != gen+1 || !got.modelIsLoading {
		t.Fatal("valid save did not trigger a reload")
	}
}

// ---------------------------------------------------------------------------
// Create version
// ---------------------------------------------------------------------------

func TestVersionConflictMessage(t *testing.T) {
	m := editingModel(t)
	m.dialog = dialogVersion
	m.versionDlg.submitting = true
	got := asModel(t, firstOf(m.handleVersionCreated(versionCreatedMsg{
		err: &repo.APIError{Status: 409, Message: "duplicate key"},
	})))
	if got.versionDlg.errorMessage != conflictMessage {
		t.Fatalf("errorMessage = %q, want %q", got.versionDlg.errorMessage, conflictMessage)
	}
	if got.dialog != dialogVersion {
		t.Fatal("conflict must keep the dialog open")
	}
	if got.versionDlg.submitting {
		t.Fatal("submitting still true after failure")
	}
}

func TestVersionCreatedNavigates(t *testing.T) {
	m := editingModel(t)
	m.dialog = dialogVersion
	created := testEntity()
	created.ID.Version = "2.0.0"
	created.ID.Pretty = "com.acme.Sensor:2.0.0"
	got := asModel(t, firstOf(m.handleVersionCreated(versionCreatedMsg{info: created})))
	if got.modelID != "com.acme.Sensor:2.0.0" {
		t.Fatalf("modelID = %q after version create", got.modelID)
	}
	if got.dialog != dialogNone {
		t.Fatal("dialog still open after navigation")
	}
	if !got.modelIsLoading {
		t.Fatal("navigation did not start a reload")
	}
}

// ---------------------------------------------------------------------------
// Refactor
// ---------------------------------------------------------------------------

func TestRefactorSuffixPrefill(t *testing.T) {
	m := editingModel(t)
	m.entity.ID.Namespace = "vorto.private.alice.devices"
	m = asModel(t, firstOf(m.openRefactorDialog()))
	got := asModel(t, firstOf(m.handleDefaultNamespace(defaultNamespaceMsg{namespace: "vorto.private.alice"})))
	if got.refactorDlg.suffixInput.Value() != "devices" {
		t.Fatalf("suffix prefill = %q, want %q", got.refactorDlg.suffixInput.Value(), "devices")
	}

	// namespace equal to the default leaves the suffix empty
	m = editingModel(t)
	m.entity.ID.Namespace = "vorto.private.alice"
	m = asModel(t, firstOf(m.openRefactorDialog()))
	got = asModel(t, firstOf(m.handleDefaultNamespace(defaultNamespaceMsg{namespace: "vorto.private.alice"})))
	if got.refactorDlg.suffixInput.Value() != "" {
		t.Fatalf("suffix prefill = %q, want empty", got.refactorDlg.suffixInput.Value())
	}
}

func TestRefactorConflictKeepsDialogOpen(t *testing.T) {
	m := editingModel(t)
	m = asModel(t, firstOf(m.openRefactorDialog()))
	m.refactorDlg.submitting = true
	got := asModel(t, firstOf(m.handleRefactorDone(refactorDoneMsg{
		err: &repo.APIError{Status: 409},
	})))
	if got.refactorDlg.errorMessage != conflictMessage {
		t.Fatalf("errorMessage = %q, want %q", got.refactorDlg.errorMessage, conflictMessage)
	}
	if got.dialog != dialogRefactor {
		t.Fatal("conflict must keep the refactor dialog open")
	}
}

// ---------------------------------------------------------------------------
// Workflow
// ---------------------------------------------------------------------------

func TestWorkflowErrorsKeepDialogOpen(t *testing.T) {
	m := editingModel(t)
	m.dialog = dialogWorkflow
	m.workflowDlg = workflowDialog{action: "Release", submitting: true}

	got := asModel(t, firstOf(m.handleWorkflowDone(workflowDoneMsg{
		resp: repo.WorkflowResponse{HasErrors: true, ErrorMessage: "references must be released first"},
	})))
	if got.dialog != dialogWorkflow {
		t.Fatal("workflow errors must keep the dialog open")
	}
	if !got.workflowDlg.hasErrors || got.workflowDlg.errorMessage == "" {
		t.Fatalf("workflowDlg = %+v, want hasErrors with message", got.workflowDlg)
	}
	if got.workflowDlg.submitting {
		t.Fatal("submitting still true after response")
	}
}

func TestWorkflowSuccessClosesAndReloads(t *testing.T) {
	m := editingModel(t)
	m.dialog = dialogWorkflow
	m.workflowDlg = workflowDialog{action: "Release", submitting: true}
	gen := m.loadGen

	got := asModel(t, firstOf(m.handleWorkflowDone(workflowDoneMsg{})))
	if got.dialog != dialogNone {
		t.Fatal("dialog still open after clean transition")
	}
	if got.loadGen != gen+1 {
		t.Fatal("clean transition did not reload the snapshot")
	}
}

func TestWorkflowChoiceSelectsAction(t *testing.T) {
	m := editingModel(t)
	m.workflowActions = []string{"Release", "Deprecate"}
	m.dialog = dialogWorkflow
	m.workflowDlg = workflowDialog{choosing: true}

	m = asModel(t, firstOf(m.updateWorkflowDialog(keyMsg("j"))))
	got := asModel(t, firstOf(m.updateWorkflowDialog(keyMsgEnter())))
	if got.workflowDlg.choosing {
		t.Fatal("still choosing after enter")
	}
	if got.workflowDlg.action != "Deprecate" {
		t.Fatalf("action = %q, want Deprecate", got.workflowDlg.action)
	}
}

// ---------------------------------------------------------------------------
// Delete / publish
// ---------------------------------------------------------------------------

func TestDeleteSuccessGoesToGoneScreen(t *testing.T) {
	m := editingModel(t)
	m.dialog = dialogDelete
	m.deleteDlg.submitting = true
	got := asModel(t, firstOf(m.handleDeleteDone(deleteDoneMsg{})))
	if got.screen != screenGone {
		t.Fatalf("screen = %v, want screenGone", got.screen)
	}
	if got.dialog != dialogNone {
		t.Fatal("dialog still open after delete")
	}
}

func TestDeleteFailureStaysOnDetails(t *testing.T) {
	m := editingModel(t)
	m.dialog = dialogDelete
	m.deleteDlg.submitting = true
	got := asModel(t, firstOf(m.handleDeleteDone(deleteDoneMsg{err: &repo.APIError{Status: 403, Message: "forbidden"}})))
	if got.screen != screenDetails {
		t.Fatalf("screen = %v, want screenDetails", got.screen)
	}
	if got.errorText == "" {
		t.Fatal("delete failure did not surface")
	}
}

func TestPublishSuccessReloads(t *testing.T) {
	m := editingModel(t)
	m.dialog = dialogPublish
	m.publishDlg.submitting = true
	gen := m.loadGen
	got := asModel(t, firstOf(m.handlePublishDone(publishDoneMsg{})))
	if got.dialog != dialogNone {
		t.Fatal("dialog still open after publish")
	}
	if got.loadGen != gen+1 {
		t.Fatal("publish did not reload the snapshot")
	}
}

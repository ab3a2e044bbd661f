package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"github.com/repodeck/repodeck/repo"
	"github.com/repodeck/repodeck/widgets"
)

func (m model) View() string {
	switch m.screen {
	case screenLogin:
		return m.viewCenteredNotice("Session expired or not logged in.",
			"Obtain a fresh token, update the config file, and restart "+appName+".")
	case screenGone:
		return m.viewCenteredNotice("Model deleted.", m.status)
	}

	base := m.viewDetails()
	if entry, ok := dialogDispatch(m.dialog); ok {
		card := widgets.Card(m.dialogTitle(), entry.view(m))
		return widgets.Overlay(base, card, m.width, m.height)
	}
	return base
}

func (m model) viewCenteredNotice(title, body string) string {
	content := titleStyle.Render(title) + "\n\n" + labelStyle.Render(body) +
		"\n\n" + dimStyle.Render("q: quit")
	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

// ---------------------------------------------------------------------------
// Details screen
// ---------------------------------------------------------------------------

func (m model) viewDetails() string {
	var b strings.Builder
	b.WriteString(m.viewHeader())
	b.WriteString("\n")
	b.WriteString(m.viewStatusBar())
	b.WriteString("\n")

	infoWidth := m.width/2 - 2
	if infoWidth < 30 {
		infoWidth = 30
	}
	info := paneStyle.Width(infoWidth).Render(m.viewInfoPane(infoWidth - 4))
	editorPane := m.viewEditorPane()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, info, editorPane))
	b.WriteString("\n")
	b.WriteString(m.viewFooter())
	return b.String()
}

func (m model) viewHeader() string {
	if m.modelIsLoading {
		return titleStyle.Render(appName) + "  " + m.spinner.View() + labelStyle.Render(" loading "+m.modelID)
	}
	if m.errorLoading != "" {
		return titleStyle.Render(appName) + "  " + errorStyle.Render(m.errorLoading)
	}
	if !m.haveEntity {
		return titleStyle.Render(appName)
	}
	parts := []string{
		titleStyle.Render(appName),
		headerStyle.Render(m.entity.ID.PrettyFormat()),
		typeBadge.Render(string(m.entity.Type)),
		lipgloss.NewStyle().Foreground(colorMantle).Background(stateColor(m.entity.State)).Padding(0, 1).Render(m.entity.State),
	}
	if m.entity.Released {
		parts = append(parts, releasedBadge.Render("RELEASED"))
	}
	if m.entity.HasImage {
		parts = append(parts, dimStyle.Render("[img]"))
	}
	parts = append(parts, labelStyle.Render("by "+m.entity.Author))
	return strings.Join(parts, "  ")
}

func (m model) viewStatusBar() string {
	switch {
	case m.errorText != "":
		return statusBarStyle.Render(errorStyle.Render(m.errorText))
	case m.message != "":
		return statusBarStyle.Render(m.message)
	case m.draftNotice != "":
		return statusBarStyle.Render(warningStyle.Render(m.draftNotice))
	default:
		return statusBarStyle.Render(m.status)
	}
}

func (m model) viewInfoPane(width int) string {
	var sections []string
	sections = append(sections, m.viewPermissionLine())
	if len(m.validationIssues) > 0 {
		sections = append(sections, m.viewValidationIssues())
	}
	if m.showMappings {
		sections = append(sections, m.viewMappings())
	}
	sections = append(sections, m.viewReferences())
	sections = append(sections, m.viewUsages())
	sections = append(sections, m.viewAttachments())
	sections = append(sections, m.viewGenerators())
	sections = append(sections, m.viewComments(width))
	return strings.Join(sections, "\n\n")
}

func (m model) viewPermissionLine() string {
	line := labelStyle.Render("Permission: ") + m.permission
	if m.canPublishModel {
		line += successStyle.Render("  can publish")
	}
	if !m.canGenerate {
		line += errorStyle.Render("  generation unavailable")
	}
	return line
}

func (m model) viewValidationIssues() string {
	var b strings.Builder
	b.WriteString(warningStyle.Render("Validation issues"))
	for _, issue := range m.validationIssues {
		b.WriteString(fmt.Sprintf("\n  line %d: %s", issue.Line, issue.Message))
	}
	return b.String()
}

func (m model) viewMappings() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Platform mappings (%d)", len(m.mappings.entries))))
	for _, e := range m.mappings.entries {
		b.WriteString(fmt.Sprintf("\n  %s %s %s",
			e.targetPlatform, labelStyle.Render(e.modelID), dimStyle.Render(e.state)))
	}
	if m.mappings.pending > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\n  resolving %d...", m.mappings.pending)))
	}
	return b.String()
}

func (m model) viewReferences() string {
	header := headerStyle.Render(fmt.Sprintf("References (%d)", len(m.entity.References)))
	if !m.showReferences {
		return header + dimStyle.Render("  R: expand")
	}
	return header + m.viewDerivedList(m.references)
}

func (m model) viewUsages() string {
	header := headerStyle.Render(fmt.Sprintf("Used by (%d)", len(m.entity.ReferencedBy)))
	if !m.showUsages {
		return header + dimStyle.Render("  U: expand")
	}
	return header + m.viewDerivedList(m.referencedBy)
}

func (m model) viewDerivedList(lst derivedList) string {
	if !lst.show {
		return dimStyle.Render("\n  (nothing settled yet)")
	}
	var b strings.Builder
	for _, e := range lst.entries {
		if !e.hasAccess {
			b.WriteString("\n  " + noAccessLine(e.modelID))
			continue
		}
		b.WriteString(fmt.Sprintf("\n  %s %s %s",
			e.modelID, dimStyle.Render(string(e.modelType)), dimStyle.Render(e.state)))
	}
	if lst.pending > 0 {
		b.WriteString(dimStyle.Render(fmt.Sprintf("\n  resolving %d...", lst.pending)))
	}
	return b.String()
}

func noAccessLine(modelID string) string {
	return dimStyle.Render(modelID) + " " + errorStyle.Render("no access")
}

func (m model) viewAttachments() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Attachments (%d)", len(m.attachments))))
	for _, a := range m.attachments {
		b.WriteString("\n  " + a.FileName)
		if a.Size > 0 {
			b.WriteString(dimStyle.Render(fmt.Sprintf(" (%d bytes)", a.Size)))
		}
	}
	return b.String()
}

func (m model) viewGenerators() string {
	var b strings.Builder
	b.WriteString(headerStyle.Render("Generators"))
	if m.isLoadingGenerators {
		b.WriteString(dimStyle.Render("  loading..."))
		return b.String()
	}
	if !m.canGenerate {
		b.WriteString(errorStyle.Render("  unavailable: a referenced model is not accessible"))
		return b.String()
	}
	b.WriteString(m.viewGeneratorGrid("production", m.prodGenerators))
	b.WriteString(m.viewGeneratorGrid("demo", m.demoGenerators))
	return b.String()
}

func (m model) viewGeneratorGrid(label string, grid [][]repo.Generator) string {
	if len(grid) == 0 {
		return ""
	}
	var b strings.Builder
	b.WriteString("\n  " + labelStyle.Render(label))
	for _, row := range grid {
		names := make([]string, 0, len(row))
		for _, g := range row {
			names = append(names, g.Name)
		}
		b.WriteString("\n    " + strings.Join(names, "  |  "))
	}
	return b.String()
}

func (m model) viewComments(width int) string {
	var b strings.Builder
	b.WriteString(headerStyle.Render(fmt.Sprintf("Comments (%d)", len(m.comments))))
	shown := m.comments
	if len(shown) > 5 {
		shown = shown[:5]
	}
	for _, c := range shown {
		text := c.Content
		if width > 10 {
			text = ansi.Truncate(text, width, "...")
		}
		b.WriteString(fmt.Sprintf("\n  %s %s", labelStyle.Render(c.Author+":"), text))
	}
	return b.String()
}

func (m model) viewEditorPane() string {
	style := paneStyle
	if m.editorFocused {
		style = focusPaneStyle
	}
	var header string
	switch {
	case m.editor == nil:
		return style.Render(dimStyle.Render("editor initializing..."))
	case m.loadingModel:
		header = dimStyle.Render("loading content...")
	case m.editorReadOnly:
		header = dimStyle.Render(m.editorMode.Lang + " (read-only)")
	case m.editorDirty:
		header = warningStyle.Render(m.editorMode.Lang + " *")
	default:
		header = dimStyle.Render(m.editorMode.Lang)
	}
	return style.Render(header + "\n" + m.editor.View())
}

func (m model) viewFooter() string {
	if entry, ok := dialogDispatch(m.dialog); ok {
		return footerStyle.Render(entry.footer)
	}
	if m.editorFocused {
		return footerStyle.Render("esc: leave editor  ctrl+s: save  ctrl+r: restore draft")
	}
	hints := []string{"r: reload", "e: edit", "/: search", "g: recent", "q: quit"}
	if m.actionsEnabled() {
		if isEditingVisible(m.permission, m.entity) {
			hints = append(hints, "ctrl+s: save", "n: rename")
		}
		if len(m.workflowActions) > 0 {
			hints = append(hints, "w: workflow")
		}
		if m.canPublishModel && !hasOfficialPrefix(m.entity, m.cfg.UI.PrivateNamespacePrefix) {
			hints = append(hints, "P: publish")
		}
	}
	return footerStyle.Render(strings.Join(hints, "  "))
}

// ---------------------------------------------------------------------------
// Dialog cards
// ---------------------------------------------------------------------------

func (m model) dialogTitle() string {
	switch m.dialog {
	case dialogWorkflow:
		if m.workflowDlg.choosing {
			return "Workflow actions"
		}
		return "Workflow: " + m.workflowDlg.action
	case dialogDelete:
		return "Delete model"
	case dialogVersion:
		return "Create new version"
	case dialogRefactor:
		return "Rename model"
	case dialogPublish:
		return "Publish model"
	case dialogSearch:
		return "Search models"
	case dialogUpload:
		return "Upload attachment"
	case dialogAttachDelete:
		return "Delete attachment"
	case dialogComment:
		return "New comment"
	case dialogRecents:
		return "Recent models"
	}
	return ""
}

func (m model) viewWorkflowDialog() string {
	if m.workflowDlg.choosing {
		var b strings.Builder
		for i, action := range m.workflowActions {
			prefix := "  "
			if i == m.workflowDlg.cursor {
				prefix = "> "
			}
			b.WriteString(prefix + action + "\n")
		}
		return strings.TrimRight(b.String(), "\n")
	}
	var b strings.Builder
	if m.workflowDlg.descriptor != nil && m.workflowDlg.descriptor.Description != "" {
		b.WriteString(m.workflowDlg.descriptor.Description + "\n\n")
	}
	b.WriteString(fmt.Sprintf("Apply %q to %s?", m.workflowDlg.action, m.entity.ID.PrettyFormat()))
	if m.workflowDlg.submitting {
		b.WriteString("\n\n" + dimStyle.Render("applying..."))
	}
	if m.workflowDlg.hasErrors {
		b.WriteString("\n\n" + errorStyle.Render(m.workflowDlg.errorMessage))
	}
	return b.String()
}

func (m model) viewDeleteDialog() string {
	body := fmt.Sprintf("Delete %s?\nThis cannot be undone.", m.entity.ID.PrettyFormat())
	if m.deleteDlg.submitting {
		body += "\n\n" + dimStyle.Render("deleting...")
	}
	return body
}

func (m model) viewPublishDialog() string {
	body := fmt.Sprintf("Make %s public?\nPublished models are visible to everyone.", m.entity.ID.PrettyFormat())
	if m.publishDlg.submitting {
		body += "\n\n" + dimStyle.Render("publishing...")
	}
	return body
}

func (m model) viewVersionDialog() string {
	body := m.versionDlg.input.View()
	if m.versionDlg.submitting {
		body += "\n\n" + dimStyle.Render("creating...")
	}
	if m.versionDlg.errorMessage != "" {
		body += "\n\n" + errorStyle.Render(m.versionDlg.errorMessage)
	}
	return body
}

func (m model) viewRefactorDialog() string {
	var b strings.Builder
	if m.refactorDlg.defaultNamespace != "" {
		b.WriteString(labelStyle.Render("Namespace: "+m.refactorDlg.defaultNamespace) + "\n")
	}
	b.WriteString(m.refactorDlg.suffixInput.View() + "\n")
	b.WriteString(m.refactorDlg.nameInput.View())
	if m.refactorDlg.submitting {
		b.WriteString("\n\n" + dimStyle.Render("renaming..."))
	}
	if m.refactorDlg.errorMessage != "" {
		b.WriteString("\n\n" + errorStyle.Render(m.refactorDlg.errorMessage))
	}
	return b.String()
}

func (m model) viewSearchDialog() string {
	var b strings.Builder
	b.WriteString(m.searchDlg.input.View())
	b.WriteString("  " + labelStyle.Render("["+m.searchDlg.modelType+"]") + "\n\n")
	if m.searchDlg.isLoading {
		b.WriteString(dimStyle.Render("searching..."))
		return b.String()
	}
	if len(m.searchDlg.results) == 0 {
		b.WriteString(dimStyle.Render("no results"))
		return b.String()
	}
	start, end := m.searchDlg.pager.GetSliceBounds(len(m.searchDlg.results))
	for i, result := range m.searchDlg.results[start:end] {
		prefix := "  "
		if i == m.searchDlg.cursor {
			prefix = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %s %s\n",
			prefix, result.ID.PrettyFormat(),
			dimStyle.Render(string(result.Type)), dimStyle.Render(result.State)))
	}
	b.WriteString("\n" + m.searchDlg.pager.View())
	return b.String()
}

func (m model) viewUploadDialog() string {
	var b strings.Builder
	b.WriteString(labelStyle.Render(m.uploadDlg.note) + "\n\n")
	switch {
	case m.uploadDlg.uploaded:
		b.WriteString(successStyle.Render("Uploaded."))
	case m.uploadDlg.uploading:
		b.WriteString(dimStyle.Render("uploading..."))
	case m.uploadDlg.failed:
		b.WriteString(errorStyle.Render(m.uploadDlg.errorMessage))
	case !m.uploadDlg.ready:
		b.WriteString(dimStyle.Render("listing files..."))
	default:
		b.WriteString(m.uploadDlg.picker.View())
	}
	return b.String()
}

func (m model) viewAttachDeleteDialog() string {
	var b strings.Builder
	switch {
	case m.attachDelDlg.deleted:
		b.WriteString(successStyle.Render("Deleted."))
	case m.attachDelDlg.deleting:
		b.WriteString(dimStyle.Render("deleting " + m.attachDelDlg.fileName + "..."))
	case m.attachDelDlg.failed:
		b.WriteString(errorStyle.Render("Could not delete " + m.attachDelDlg.fileName))
	default:
		for i, a := range m.attachments {
			prefix := "  "
			if i == m.attachDelDlg.cursor {
				prefix = "> "
			}
			b.WriteString(prefix + a.FileName + "\n")
		}
	}
	return strings.TrimRight(b.String(), "\n")
}

func (m model) viewCommentDialog() string {
	body := m.commentDlg.input.View()
	if m.commentDlg.submitting {
		body += "\n\n" + dimStyle.Render("posting...")
	}
	return body
}

func (m model) viewRecentsDialog() string {
	var b strings.Builder
	for i, entry := range m.recentsDlg.entries {
		prefix := "  "
		if i == m.recentsDlg.cursor {
			prefix = "> "
		}
		b.WriteString(fmt.Sprintf("%s%s %s\n", prefix, entry.ModelID, dimStyle.Render(entry.ModelType)))
	}
	return strings.TrimRight(b.String(), "\n")
}

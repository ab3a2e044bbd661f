package main

import (
	"database/sql"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/agnivade/levenshtein"
	"github.com/atotto/clipboard"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/repodeck/repodeck/repo"
)

// autoCloseDelay is how long success panels stay visible before their dialog
// closes itself.
const autoCloseDelay = 1500 * time.Millisecond

// ---------------------------------------------------------------------------
// Details orchestration commands
// ---------------------------------------------------------------------------

func fetchDetailsCmd(c *repo.Client, id string, gen int) tea.Cmd {
	return func() tea.Msg {
		info, err := c.GetModel(id)
		return detailsLoadedMsg{gen: gen, entity: info, err: err}
	}
}

// resolveReferenceCmd fetches full details for one member of a reference
// list. Failures are reported, not swallowed; the handler turns them into
// placeholder entries.
func resolveReferenceCmd(c *repo.Client, kind derivedKind, source repo.ModelID, gen int) tea.Cmd {
	return func() tea.Msg {
		info, err := c.GetModel(source.PrettyFormat())
		return referenceResolvedMsg{gen: gen, kind: kind, source: source, info: info, err: err}
	}
}

func resolveMappingCmd(c *repo.Client, mappingID, targetPlatform string, gen int) tea.Cmd {
	return func() tea.Msg {
		info, err := c.GetModel(mappingID)
		return mappingResolvedMsg{gen: gen, targetPlatform: targetPlatform, info: info, err: err}
	}
}

func fetchAttachmentsCmd(c *repo.Client, id string, gen int) tea.Cmd {
	return func() tea.Msg {
		attachments, err := c.GetAttachments(id)
		return attachmentsLoadedMsg{gen: gen, attachments: attachments, err: err}
	}
}

func fetchCommentsCmd(c *repo.Client, id string, gen int) tea.Cmd {
	return func() tea.Msg {
		comments, err := c.GetComments(id)
		return commentsLoadedMsg{gen: gen, comments: comments, err: err}
	}
}

func fetchPolicyCmd(c *repo.Client, id string, gen int) tea.Cmd {
	return func() tea.Msg {
		permission, err := c.GetPolicy(id)
		return policyLoadedMsg{gen: gen, permission: permission, err: err}
	}
}

func fetchPoliciesCmd(c *repo.Client, id string, gen int) tea.Cmd {
	return func() tea.Msg {
		policies, err := c.GetPolicies(id)
		return policiesLoadedMsg{gen: gen, policies: policies, err: err}
	}
}

func fetchWorkflowActionsCmd(c *repo.Client, id string, gen int) tea.Cmd {
	return func() tea.Msg {
		actions, err := c.GetWorkflowActions(id)
		return workflowActionsMsg{gen: gen, actions: actions, err: err}
	}
}

func fetchGeneratorsCmd(c *repo.Client) tea.Cmd {
	return func() tea.Msg {
		gens, err := c.GetGenerators()
		return generatorsLoadedMsg{generators: gens, err: err}
	}
}

func fetchContentCmd(c *repo.Client, id string, gen int) tea.Cmd {
	return func() tea.Msg {
		content, err := c.GetModelContent(id)
		return contentLoadedMsg{gen: gen, content: content, err: err}
	}
}

// ---------------------------------------------------------------------------
// Action commands
// ---------------------------------------------------------------------------

func saveModelCmd(c *repo.Client, id, content string, typ repo.ModelType) tea.Cmd {
	return func() tea.Msg {
		result, err := c.SaveModel(id, content, typ)
		return saveDoneMsg{result: result, err: err}
	}
}

func deleteModelCmd(c *repo.Client, id string) tea.Cmd {
	return func() tea.Msg {
		return deleteDoneMsg{err: c.DeleteModel(id)}
	}
}

func createVersionCmd(c *repo.Client, id, version string) tea.Cmd {
	return func() tea.Msg {
		info, err := c.CreateVersion(id, version)
		return versionCreatedMsg{info: info, err: err}
	}
}

func fetchDefaultNamespaceCmd(c *repo.Client, id string) tea.Cmd {
	return func() tea.Msg {
		ns, err := c.GetDefaultNamespace(id)
		return defaultNamespaceMsg{namespace: ns, err: err}
	}
}

func refactorCmd(c *repo.Client, id, newID string) tea.Cmd {
	return func() tea.Msg {
		info, err := c.Refactor(id, newID)
		return refactorDoneMsg{info: info, err: err}
	}
}

func publishCmd(c *repo.Client, id string) tea.Cmd {
	return func() tea.Msg {
		return publishDoneMsg{err: c.MakePublic(id)}
	}
}

// fetchWorkflowDescriptorCmd looks up the descriptor of one named action in
// the model's workflow.
func fetchWorkflowDescriptorCmd(c *repo.Client, id, action string) tea.Cmd {
	return func() tea.Msg {
		wf, err := c.GetWorkflowModel(id)
		if err != nil {
			return workflowDescriptorMsg{err: err}
		}
		for i := range wf.Actions {
			if wf.Actions[i].Name == action {
				return workflowDescriptorMsg{descriptor: &wf.Actions[i]}
			}
		}
		return workflowDescriptorMsg{}
	}
}

func transitionWorkflowCmd(c *repo.Client, id, action string) tea.Cmd {
	return func() tea.Msg {
		resp, err := c.TransitionWorkflow(id, action)
		return workflowDoneMsg{resp: resp, err: err}
	}
}

func uploadAttachmentCmd(c *repo.Client, id, path string) tea.Cmd {
	return func() tea.Msg {
		f, err := os.Open(path)
		if err != nil {
			return attachmentUploadedMsg{err: err}
		}
		defer f.Close()
		result, err := c.UploadAttachment(id, filepath.Base(path), f)
		return attachmentUploadedMsg{result: result, err: err}
	}
}

func deleteAttachmentCmd(c *repo.Client, id, filename string) tea.Cmd {
	return func() tea.Msg {
		return attachmentDeletedMsg{err: c.DeleteAttachment(id, filename)}
	}
}

func postCommentCmd(c *repo.Client, comment repo.Comment) tea.Cmd {
	return func() tea.Msg {
		return commentPostedMsg{err: c.PostComment(comment)}
	}
}

// searchCmd runs a scoped query, optionally narrowed by a model-type facet,
// and ranks the results by edit distance between their name and the query.
func searchCmd(c *repo.Client, query, modelType string, seq int) tea.Cmd {
	return func() tea.Msg {
		expression := query
		if modelType != "all" && modelType != "" {
			expression = strings.TrimSpace(query + " " + modelType)
		}
		results, err := c.Search(expression)
		if err != nil {
			return searchDoneMsg{seq: seq, err: err}
		}
		rankSearchResults(results, query)
		return searchDoneMsg{seq: seq, results: results}
	}
}

// rankSearchResults sorts results by Levenshtein distance of the model name
// to the query, closest first. An empty query keeps server order.
func rankSearchResults(results []repo.ModelInfo, query string) {
	q := strings.ToLower(strings.TrimSpace(query))
	if q == "" {
		return
	}
	sort.SliceStable(results, func(i, j int) bool {
		di := levenshtein.ComputeDistance(q, strings.ToLower(results[i].ID.Name))
		dj := levenshtein.ComputeDistance(q, strings.ToLower(results[j].ID.Name))
		return di < dj
	})
}

func copyReferenceCmd(id repo.ModelID) tea.Cmd {
	return func() tea.Msg {
		return referenceCopiedMsg{err: clipboard.WriteAll(id.UsingReference())}
	}
}

func autoCloseCmd(dialog dialogKind) tea.Cmd {
	return tea.Tick(autoCloseDelay, func(time.Time) tea.Msg {
		return dialogAutoCloseMsg{dialog: dialog}
	})
}

// listUploadCandidatesCmd scans the working directory for regular files the
// user can attach.
func listUploadCandidatesCmd(dir string) tea.Cmd {
	return func() tea.Msg {
		entries, err := os.ReadDir(dir)
		if err != nil {
			return uploadFilesListedMsg{err: err}
		}
		var files []string
		for _, entry := range entries {
			if entry.IsDir() || strings.HasPrefix(entry.Name(), ".") {
				continue
			}
			files = append(files, entry.Name())
		}
		return uploadFilesListedMsg{files: files}
	}
}

// ---------------------------------------------------------------------------
// Local store commands
// ---------------------------------------------------------------------------

const draftAutosaveInterval = 5 * time.Second

func draftTickCmd() tea.Cmd {
	return tea.Tick(draftAutosaveInterval, func(time.Time) tea.Msg {
		return draftTickMsg{}
	})
}

func saveDraftCmd(db *sql.DB, modelID, content string) tea.Cmd {
	return func() tea.Msg {
		return draftSavedMsg{err: saveDraft(db, modelID, content)}
	}
}

func loadDraftCmd(db *sql.DB, modelID string, gen int) tea.Cmd {
	return func() tea.Msg {
		content, ok, err := loadDraft(db, modelID)
		return draftLoadedMsg{gen: gen, content: content, ok: ok, err: err}
	}
}

func deleteDraftCmd(db *sql.DB, modelID string) tea.Cmd {
	return func() tea.Msg {
		// a stale draft after a successful save is worse than no draft
		_ = deleteDraft(db, modelID)
		return nil
	}
}

func recordRecentCmd(db *sql.DB, info repo.ModelInfo) tea.Cmd {
	return func() tea.Msg {
		_ = recordRecent(db, info.ID.PrettyFormat(), string(info.Type))
		return nil
	}
}

func listRecentsCmd(db *sql.DB) tea.Cmd {
	return func() tea.Msg {
		entries, err := listRecents(db, 20)
		return recentsListedMsg{entries: entries, err: err}
	}
}

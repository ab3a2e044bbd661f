package main

import (
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/repodeck/repodeck/repo"
)

// ---------------------------------------------------------------------------
// Search dialog
//
// The query runs as soon as the dialog opens and again on every submit;
// results are ranked by edit distance to the query and paginated. Stale
// query results are dropped by sequence number.
// ---------------------------------------------------------------------------

// searchTypeFacets cycles "all" plus the four concrete model types.
var searchTypeFacets = []string{
	"all",
	string(repo.TypeInformationModel),
	string(repo.TypeFunctionblock),
	string(repo.TypeDatatype),
	string(repo.TypeMapping),
}

func (m model) openSearchDialog() (tea.Model, tea.Cmd) {
	input := textinput.New()
	input.Prompt = "Search: "
	input.Focus()
	pager := paginator.New()
	pager.Type = paginator.Dots
	pager.PerPage = m.cfg.UI.SearchPageSize
	m.searchDlg = searchDialog{
		input:     input,
		modelType: "all",
		pager:     pager,
		isLoading: true,
		seq:       m.searchDlg.seq + 1,
	}
	m.dialog = dialogSearch
	return m, searchCmd(m.api, "", "all", m.searchDlg.seq)
}

func (m model) updateSearchDialog(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc":
		m.dialog = dialogNone
		return m, nil
	case "tab":
		m.searchDlg.modelType = nextFacet(m.searchDlg.modelType)
		return m.runSearch()
	case "enter":
		return m.runSearch()
	case "left", "right":
		var cmd tea.Cmd
		m.searchDlg.pager, cmd = m.searchDlg.pager.Update(msg)
		m.searchDlg.cursor = 0
		return m, cmd
	case "up":
		if m.searchDlg.cursor > 0 {
			m.searchDlg.cursor--
		}
		return m, nil
	case "down":
		start, end := m.searchDlg.pager.GetSliceBounds(len(m.searchDlg.results))
		if m.searchDlg.cursor < end-start-1 {
			m.searchDlg.cursor++
		}
		return m, nil
	case "y":
		if sel, ok := m.selectedSearchResult(); ok {
			m.dialog = dialogNone
			m.setStatus("Reference copied: " + sel.ID.UsingReference())
			return m, copyReferenceCmd(sel.ID)
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.searchDlg.input, cmd = m.searchDlg.input.Update(msg)
	return m, cmd
}

func nextFacet(current string) string {
	for i, facet := range searchTypeFacets {
		if facet == current {
			return searchTypeFacets[(i+1)%len(searchTypeFacets)]
		}
	}
	return searchTypeFacets[0]
}

func (m model) runSearch() (tea.Model, tea.Cmd) {
	m.searchDlg.seq++
	m.searchDlg.isLoading = true
	m.searchDlg.cursor = 0
	return m, searchCmd(m.api, m.searchDlg.input.Value(), m.searchDlg.modelType, m.searchDlg.seq)
}

func (m model) selectedSearchResult() (repo.ModelInfo, bool) {
	start, end := m.searchDlg.pager.GetSliceBounds(len(m.searchDlg.results))
	page := m.searchDlg.results[start:end]
	if m.searchDlg.cursor < 0 || m.searchDlg.cursor >= len(page) {
		return repo.ModelInfo{}, false
	}
	return page[m.searchDlg.cursor], true
}

func (m model) handleSearchDone(msg searchDoneMsg) (tea.Model, tea.Cmd) {
	if m.dialog != dialogSearch || msg.seq != m.searchDlg.seq {
		return m, nil
	}
	m.searchDlg.isLoading = false
	if msg.err != nil {
		m.searchDlg.results = nil
		m.searchDlg.pager.SetTotalPages(1)
		return m, nil
	}
	m.searchDlg.results = msg.results
	m.searchDlg.pager.Page = 0
	if len(msg.results) == 0 {
		m.searchDlg.pager.SetTotalPages(1)
	} else {
		m.searchDlg.pager.SetTotalPages(len(msg.results))
	}
	return m, nil
}

func (m model) handleReferenceCopied(msg referenceCopiedMsg) (tea.Model, tea.Cmd) {
	if msg.err != nil {
		m.setError("Clipboard unavailable: " + msg.err.Error())
	}
	return m, nil
}

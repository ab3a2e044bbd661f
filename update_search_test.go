package main

import (
	"errors"
	"testing"

	"github.com/repodeck/repodeck/repo"
)

func searchResult(name string) repo.ModelInfo {
	return repo.ModelInfo{ID: repo.ModelID{Namespace: "com.acme", Name: name, Version: "1.0.0"}}
}

func TestRankSearchResultsByEditDistance(t *testing.T) {
	results := []repo.ModelInfo{
		searchResult("Thermostat"),
		searchResult("Sensor"),
		searchResult("Sensing"),
	}
	rankSearchResults(results, "sensor")
	if results[0].ID.Name != "Sensor" {
		t.Fatalf("results[0] = %q, want Sensor", results[0].ID.Name)
	}
	if results[2].ID.Name != "Thermostat" {
		t.Fatalf("results[2] = %q, want Thermostat last", results[2].ID.Name)
	}
}

func TestRankSearchResultsEmptyQueryKeepsServerOrder(t *testing.T) {
	results := []repo.ModelInfo{
		searchResult("Zebra"),
		searchResult("Apple"),
	}
	rankSearchResults(results, "  ")
	if results[0].ID.Name != "Zebra" || results[1].ID.Name != "Apple" {
		t.Fatalf("server order not preserved: %q, %q", results[0].ID.Name, results[1].ID.Name)
	}
}

func TestNextFacetCyclesThroughAllTypes(t *testing.T) {
	seen := map[string]bool{}
	facet := "all"
	for range searchTypeFacets {
		seen[facet] = true
		facet = nextFacet(facet)
	}
	if facet != "all" {
		t.Fatalf("cycle did not wrap: ended on %q", facet)
	}
	if len(seen) != len(searchTypeFacets) {
		t.Fatalf("visited %d facets, want %d", len(seen), len(searchTypeFacets))
	}
	if nextFacet("bogus") != "all" {
		t.Fatal("unknown facet should reset to all")
	}
}

func TestSearchDoneDropsStaleSequence(t *testing.T) {
	m := testModel(t)
	m = asModel(t, firstOf(m.openSearchDialog()))
	m = asModel(t, firstOf(m.runSearch())) // seq moves past the opening query

	got := asModel(t, firstOf(m.handleSearchDone(searchDoneMsg{
		seq:     m.searchDlg.seq - 1,
		results: []repo.ModelInfo{searchResult("Stale")},
	})))
	if len(got.searchDlg.results) != 0 {
		t.Fatal("stale search results were installed")
	}
	if !got.searchDlg.isLoading {
		t.Fatal("stale result cleared the loading flag")
	}

	got = asModel(t, firstOf(got.handleSearchDone(searchDoneMsg{
		seq:     got.searchDlg.seq,
		results: []repo.ModelInfo{searchResult("Fresh")},
	})))
	if len(got.searchDlg.results) != 1 || got.searchDlg.results[0].ID.Name != "Fresh" {
		t.Fatalf("current results = %+v", got.searchDlg.results)
	}
	if got.searchDlg.isLoading {
		t.Fatal("loading flag still set after current result")
	}
}

func TestSearchDoneErrorClearsResults(t *testing.T) {
	m := testModel(t)
	m = asModel(t, firstOf(m.openSearchDialog()))
	m = asModel(t, firstOf(m.handleSearchDone(searchDoneMsg{
		seq: m.searchDlg.seq, results: []repo.ModelInfo{searchResult("Old")},
	})))
	m = asModel(t, firstOf(m.runSearch()))
	got := asModel(t, firstOf(m.handleSearchDone(searchDoneMsg{
		seq: m.searchDlg.seq, err: errors.New("boom"),
	})))
	if len(got.searchDlg.results) != 0 {
		t.Fatal("failed search kept previous results")
	}
}

func TestSelectedSearchResultRespectsPageBounds(t *testing.T) {
	m := testModel(t)
	m = asModel(t, firstOf(m.openSearchDialog()))
	m = asModel(t, firstOf(m.handleSearchDone(searchDoneMsg{
		seq:     m.searchDlg.seq,
		results: []repo.ModelInfo{searchResult("One"), searchResult("Two")},
	})))

	sel, ok := m.selectedSearchResult()
	if !ok || sel.ID.Name != "One" {
		t.Fatalf("selected = %v, %v; want One", sel.ID.Name, ok)
	}

	m.searchDlg.cursor = 99
	if _, ok := m.selectedSearchResult(); ok {
		t.Fatal("out-of-page cursor yielded a selection")
	}
}

package main

import (
	"strings"
	"testing"
	"unicode/utf8"

	"github.com/repodeck/repodeck/repo"
)

func TestViewCommentsTruncatesOnRuneBoundaries(t *testing.T) {
	m := testModel(t)
	m.comments = []repo.Comment{
		{Author: "alice", Content: strings.Repeat("温度センサーの説明", 10)},
	}
	out := m.viewComments(20)
	if !utf8.ValidString(out) {
		t.Fatal("truncated comment is not valid UTF-8")
	}
	if !strings.Contains(out, "...") {
		t.Fatal("long comment not truncated")
	}
}

func TestViewCommentsShowsAtMostFive(t *testing.T) {
	m := testModel(t)
	for i := 0; i < 7; i++ {
		m.comments = append(m.comments, repo.Comment{Author: "a", Content: "short"})
	}
	out := m.viewComments(40)
	if got := strings.Count(out, "short"); got != 5 {
		t.Fatalf("comments shown = %d, want 5", got)
	}
}

func TestHeaderShowsImageBadge(t *testing.T) {
	m := testModel(t)
	m = asModel(t, firstOf(m.handleDetailsLoaded(detailsLoadedMsg{gen: m.loadGen, entity: testEntity()})))
	if strings.Contains(m.viewHeader(), "[img]") {
		t.Fatal("image badge shown for a model without an image")
	}

	withImage := testEntity()
	withImage.HasImage = true
	m = asModel(t, firstOf(m.handleDetailsLoaded(detailsLoadedMsg{gen: m.loadGen, entity: withImage})))
	if !strings.Contains(m.viewHeader(), "[img]") {
		t.Fatal("image badge missing for a model with an image")
	}
}

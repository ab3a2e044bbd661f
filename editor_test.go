package main

import (
	"testing"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/repodeck/repodeck/repo"
)

func TestLanguageForEntityType(t *testing.T) {
	cases := []struct {
		typ  repo.ModelType
		want string
	}{
		{repo.TypeDatatype, "type"},
		{repo.TypeFunctionblock, "fbmodel"},
		{repo.TypeInformationModel, "infomodel"},
		{repo.TypeMapping, "mapping"},
		{repo.ModelType("SomethingNew"), "mapping"},
	}
	for _, tc := range cases {
		if got := languageFor(tc.typ); got != tc.want {
			t.Fatalf("languageFor(%q) = %q, want %q", tc.typ, got, tc.want)
		}
	}
}

func TestEditorConfigCoversAllLanguages(t *testing.T) {
	for _, lang := range []string{"infomodel", "fbmodel", "type", "mapping"} {
		mode, ok := editorConfig[lang]
		if !ok {
			t.Fatalf("no editor config for %q", lang)
		}
		if mode.SyntaxDefinition == "" || mode.ServiceURL == "" {
			t.Fatalf("incomplete mode for %q: %+v", lang, mode)
		}
	}
}

func TestApplyEditorContentResetsDirtyAndReadOnly(t *testing.T) {
	m := testModel(t)
	m.entity = testEntity()
	ta := textarea.New()
	m.bindEditor(&ta, editorConfig["fbmodel"])
	m.editorDirty = true

	m.applyEditorContent("functionblock Sensor {}")
	if m.editor.Value() != "functionblock Sensor {}" {
		t.Fatalf("editor value = %q", m.editor.Value())
	}
	if m.editorDirty {
		t.Fatal("applyEditorContent left the editor dirty")
	}
	if m.editorReadOnly {
		t.Fatal("draft model should be editable")
	}

	// read-only is re-derived from the current snapshot on every apply
	m.entity.Released = true
	m.applyEditorContent("functionblock Sensor {}")
	if !m.editorReadOnly {
		t.Fatal("released model should be read-only")
	}
	m.entity.Released = false
	m.applyEditorContent("functionblock Sensor {}")
	if m.editorReadOnly {
		t.Fatal("read-only flag not re-evaluated after a new draft version")
	}
}

func TestEditorSurvivesNavigation(t *testing.T) {
	m := testModel(t)
	m = asModel(t, firstOf(m.handleDetailsLoaded(detailsLoadedMsg{gen: m.loadGen, entity: testEntity()})))
	ta := textarea.New()
	m.bindEditor(&ta, editorConfig["fbmodel"])

	next, _ := m.navigateTo("com.acme.Other:1.0.0")
	if next.editor == nil {
		t.Fatal("navigation dropped the editor instance")
	}
	if next.modelID != "com.acme.Other:1.0.0" {
		t.Fatalf("modelID = %q", next.modelID)
	}
}

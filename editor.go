package main

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/charmbracelet/bubbles/textarea"

	"github.com/repodeck/repodeck/repo"
)

// ---------------------------------------------------------------------------
// Editor binding: at most one editor instance per program run
// ---------------------------------------------------------------------------

// languageMode binds a DSL language to its syntax definition and the
// language-service endpoint the repository serves for it.
type languageMode struct {
	Lang             string
	SyntaxDefinition string
	ServiceURL       string
}

// editorConfig is the static language-mode table.
var editorConfig = map[string]languageMode{
	"infomodel": {
		Lang:             "infomodel",
		SyntaxDefinition: "ace-modes/mode-infomodel",
		ServiceURL:       "infomodel/xtext-service",
	},
	"fbmodel": {
		Lang:             "fbmodel",
		SyntaxDefinition: "ace-modes/mode-fbmodel",
		ServiceURL:       "functionblock/xtext-service",
	},
	"type": {
		Lang:             "type",
		SyntaxDefinition: "ace-modes/mode-type",
		ServiceURL:       "datatype/xtext-service",
	},
	"mapping": {
		Lang:             "mapping",
		SyntaxDefinition: "ace-modes/mode-mapping",
		ServiceURL:       "mapping/xtext-service",
	},
}

// languageFor maps an entity type to its editor language. Mapping is the
// fallback for anything outside the three concrete DSLs.
func languageFor(typ repo.ModelType) string {
	switch typ {
	case repo.TypeDatatype:
		return "type"
	case repo.TypeFunctionblock:
		return "fbmodel"
	case repo.TypeInformationModel:
		return "infomodel"
	default:
		return "mapping"
	}
}

// createEditorCmd is the asynchronous editor factory. It resolves the
// language mode for the entity and constructs the one textarea this program
// run will use; content population follows as a separate step once the
// editorBuiltMsg lands.
func createEditorCmd(gen int, entity repo.ModelInfo) tea.Cmd {
	return func() tea.Msg {
		mode := editorConfig[languageFor(entity.Type)]
		ta := textarea.New()
		ta.Placeholder = "model content"
		ta.ShowLineNumbers = true
		ta.CharLimit = 0
		ta.Prompt = ""
		return editorBuiltMsg{gen: gen, editor: &ta, mode: mode}
	}
}

// bindEditor installs a freshly built editor on the model. Read-only state
// is applied separately so reloads re-evaluate it.
func (m *model) bindEditor(ed *textarea.Model, mode languageMode) {
	m.editor = ed
	m.editorMode = mode
}

// applyEditorContent replaces the document content, keeping the cursor at
// the top, and re-evaluates the read-only flag from the current snapshot.
func (m *model) applyEditorContent(content string) {
	if m.editor == nil {
		return
	}
	m.editor.SetValue(content)
	m.editor.CursorStart()
	m.editorDirty = false
	m.editorReadOnly = m.entity.Released
}

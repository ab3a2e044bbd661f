package main

import (
	"database/sql"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/paginator"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/textarea"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	"github.com/repodeck/repodeck/repo"
)

const appName = "repodeck"

// authorityModelCreator gates the policy fetches; authorityModelPublisher is
// the policy principal that unlocks publishing.
const (
	authorityModelCreator   = "model_creator"
	principalModelPublisher = "model_publisher"
)

// pseudonymizedAuthorLen is the length of a hashed author id; such authors
// are displayed as a placeholder instead of the hash.
const (
	pseudonymizedAuthorLen = 64
	authorPlaceholder      = "other user"
)

const conflictMessage = "Model with this name and namespace already exists."

// ---------------------------------------------------------------------------
// Screen and dialog state
// ---------------------------------------------------------------------------

type screenState int

const (
	screenDetails screenState = iota
	screenLogin               // entity fetch came back 401
	screenGone                // model deleted, nothing left to show
)

type dialogKind int

const (
	dialogNone dialogKind = iota
	dialogWorkflow
	dialogDelete
	dialogVersion
	dialogRefactor
	dialogPublish
	dialogSearch
	dialogUpload
	dialogAttachDelete
	dialogComment
	dialogRecents
)

// ---------------------------------------------------------------------------
// Derived lists
// ---------------------------------------------------------------------------

// derivedEntry is one resolved (or placeholder) member of the references or
// referencedBy list. A placeholder keeps the original reference id and
// hasAccess=false.
type derivedEntry struct {
	modelID   string
	modelType repo.ModelType
	state     string
	hasAccess bool
}

// derivedList collects one batch of reference resolutions. Entries land in
// completion order; pending counts the fetches still in flight.
type derivedList struct {
	entries []derivedEntry
	pending int
	show    bool
}

// settled reports whether every member fetch of the batch has landed.
func (l derivedList) settled() bool { return l.pending == 0 }

// mappingEntry is one resolved platform mapping. Failed mapping fetches are
// dropped, not placeholdered.
type mappingEntry struct {
	modelID        string
	state          string
	targetPlatform string
}

type mappingList struct {
	entries []mappingEntry
	pending int
}

// ---------------------------------------------------------------------------
// Dialog state machines (Idle → Open → Submitting → Success|Failure → Closed)
// ---------------------------------------------------------------------------

type workflowDialog struct {
	choosing     bool // picking among available actions
	cursor       int
	action       string
	descriptor   *repo.WorkflowAction
	submitting   bool
	hasErrors    bool
	errorMessage string
}

type versionDialog struct {
	input        textinput.Model
	submitting   bool
	errorMessage string
}

type refactorDialog struct {
	nameInput        textinput.Model
	suffixInput      textinput.Model
	focus            int
	defaultNamespace string
	submitting       bool
	errorMessage     string
}

type confirmDialog struct {
	submitting bool
}

type searchDialog struct {
	input     textinput.Model
	modelType string // "all" or a concrete repo.ModelType
	results   []repo.ModelInfo
	pager     paginator.Model
	cursor    int
	isLoading bool
	seq       int // discriminates stale query results
}

type uploadDialog struct {
	picker       list.Model
	ready        bool
	uploading    bool
	uploaded     bool
	failed       bool
	errorMessage string
	note         string
}

type attachDeleteDialog struct {
	cursor   int
	fileName string
	deleting bool
	deleted  bool
	failed   bool
}

type commentDialog struct {
	input      textinput.Model
	submitting bool
}

type recentsDialog struct {
	entries []recentModel
	cursor  int
}

// ---------------------------------------------------------------------------
// The model: per-session orchestrator state
// ---------------------------------------------------------------------------

type model struct {
	cfg     settings
	session sessionInfo
	api     *repo.Client
	db      *sql.DB
	log     zerolog.Logger
	keys    keyMap

	screen  screenState
	width   int
	height  int
	status  string
	spinner spinner.Model

	// primary entity
	modelID    string
	entity     repo.ModelInfo
	haveEntity bool
	loadGen    int // generation counter; stale fetch results are discarded

	// loading flags; every operation that sets one must clear it on every
	// exit path, or the affordances tied to it never come back
	modelIsLoading      bool
	isLoading           bool
	isLoadingGenerators bool
	loadingModel        bool

	// page-level error surface
	errorLoading     string
	errorText        string
	message          string
	validationIssues []repo.ValidationIssue

	// derived fetch results
	mappings       mappingList
	references     derivedList
	referencedBy   derivedList
	attachments    []repo.Attachment
	comments       []repo.Comment
	showReferences bool
	showUsages     bool
	showMappings   bool
	canGenerate    bool

	// permission state (fail-closed)
	permission      string
	canPublishModel bool

	workflowActions []string

	prodGenerators [][]repo.Generator
	demoGenerators [][]repo.Generator

	// editor binding: created at most once per run
	editor         *textarea.Model
	editorMode     languageMode
	editorFocused  bool
	editorReadOnly bool
	editorDirty    bool
	draftTicking   bool
	draftNotice    string
	draftContent   string

	// dialogs
	dialog       dialogKind
	workflowDlg  workflowDialog
	versionDlg   versionDialog
	refactorDlg  refactorDialog
	deleteDlg    confirmDialog
	publishDlg   confirmDialog
	searchDlg    searchDialog
	uploadDlg    uploadDialog
	attachDelDlg attachDeleteDialog
	commentDlg   commentDialog
	recentsDlg   recentsDialog
}

func newModel(cfg settings, api *repo.Client, db *sql.DB, modelID string, log zerolog.Logger) model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = lipgloss.NewStyle().Foreground(colorAccent)
	return model{
		cfg:     cfg,
		session: cfg.Session,
		api:     api,
		db:      db,
		log:     log,
		keys:    newKeyMap(),
		modelID: modelID,
		spinner: sp,
		// the first load starts in Init under generation 1
		loadGen:             1,
		modelIsLoading:      true,
		isLoadingGenerators: true,
		permission:          permissionRead,
		canGenerate:         true,
		showMappings:        true,
		status:              "Loading " + modelID,
	}
}

func (m model) Init() tea.Cmd {
	return tea.Batch(
		fetchDetailsCmd(m.api, m.modelID, m.loadGen),
		fetchGeneratorsCmd(m.api),
		m.spinner.Tick,
	)
}

func (m *model) setStatus(msg string) {
	m.status = msg
}

func (m *model) setError(msg string) {
	m.status = msg
	m.errorText = msg
}

// dialogOpen reports whether any action dialog is showing.
func (m model) dialogOpen() bool { return m.dialog != dialogNone }

package main

import "github.com/charmbracelet/bubbles/key"

type keyMap struct {
	Quit        key.Binding
	Reload      key.Binding
	EditToggle  key.Binding
	Save        key.Binding
	Delete      key.Binding
	Publish     key.Binding
	NewVersion  key.Binding
	Refactor    key.Binding
	Search      key.Binding
	Workflow    key.Binding
	Upload      key.Binding
	Attachments key.Binding
	Comment     key.Binding
	References  key.Binding
	Usages      key.Binding
	Mappings    key.Binding
	Recents     key.Binding
	UpDown      key.Binding
	Enter       key.Binding
	Close       key.Binding
}

func newKeyMap() keyMap {
	return keyMap{
		Quit:        key.NewBinding(key.WithKeys("q", "ctrl+c"), key.WithHelp("q", "quit")),
		Reload:      key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "reload")),
		EditToggle:  key.NewBinding(key.WithKeys("e"), key.WithHelp("e", "edit")),
		Save:        key.NewBinding(key.WithKeys("ctrl+s"), key.WithHelp("ctrl+s", "save")),
		Delete:      key.NewBinding(key.WithKeys("D"), key.WithHelp("D", "delete")),
		Publish:     key.NewBinding(key.WithKeys("P"), key.WithHelp("P", "publish")),
		NewVersion:  key.NewBinding(key.WithKeys("v"), key.WithHelp("v", "new version")),
		Refactor:    key.NewBinding(key.WithKeys("n"), key.WithHelp("n", "rename")),
		Search:      key.NewBinding(key.WithKeys("/"), key.WithHelp("/", "search")),
		Workflow:    key.NewBinding(key.WithKeys("w"), key.WithHelp("w", "workflow")),
		Upload:      key.NewBinding(key.WithKeys("a"), key.WithHelp("a", "attach file")),
		Attachments: key.NewBinding(key.WithKeys("x"), key.WithHelp("x", "delete attachment")),
		Comment:     key.NewBinding(key.WithKeys("c"), key.WithHelp("c", "comment")),
		References:  key.NewBinding(key.WithKeys("R"), key.WithHelp("R", "references")),
		Usages:      key.NewBinding(key.WithKeys("U"), key.WithHelp("U", "used by")),
		Mappings:    key.NewBinding(key.WithKeys("M"), key.WithHelp("M", "mappings")),
		Recents:     key.NewBinding(key.WithKeys("g"), key.WithHelp("g", "recent models")),
		UpDown:      key.NewBinding(key.WithKeys("up", "down"), key.WithHelp("↑/↓", "select")),
		Enter:       key.NewBinding(key.WithKeys("enter"), key.WithHelp("enter", "confirm")),
		Close:       key.NewBinding(key.WithKeys("esc"), key.WithHelp("esc", "close")),
	}
}

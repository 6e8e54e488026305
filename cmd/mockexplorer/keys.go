package main

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines all keyboard shortcuts
type KeyMap struct {
	// Navigation
	Up       key.Binding
	Down     key.Binding
	Left     key.Binding
	Right    key.Binding
	PageUp   key.Binding
	PageDown key.Binding
	Home     key.Binding
	End      key.Binding

	// Actions
	Enter    key.Binding
	Esc      key.Binding
	Transfer key.Binding
	Commit   key.Binding
	Discard  key.Binding
	Clone    key.Binding
	Approve  key.Binding
	Copy     key.Binding
	Refresh  key.Binding

	// View
	SwitchSide  key.Binding
	OnlyDiff    key.Binding
	ExpandAll   key.Binding
	CollapseAll key.Binding
	Help        key.Binding
	Quit        key.Binding
}

// DefaultKeyMap returns the default keybindings
func DefaultKeyMap() KeyMap {
	return KeyMap{
		// Navigation
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "move up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "move down"),
		),
		Left: key.NewBinding(
			key.WithKeys("left", "h"),
			key.WithHelp("←/h", "collapse/go to parent"),
		),
		Right: key.NewBinding(
			key.WithKeys("right", "l"),
			key.WithHelp("→/l", "expand"),
		),
		PageUp: key.NewBinding(
			key.WithKeys("pgup"),
			key.WithHelp("pgup", "page up"),
		),
		PageDown: key.NewBinding(
			key.WithKeys("pgdown"),
			key.WithHelp("pgdn", "page down"),
		),
		Home: key.NewBinding(
			key.WithKeys("home", "g"),
			key.WithHelp("g", "go to top"),
		),
		End: key.NewBinding(
			key.WithKeys("end", "G"),
			key.WithHelp("G", "go to bottom"),
		),

		// Actions
		Enter: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "expand/collapse"),
		),
		Esc: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "cancel"),
		),
		Transfer: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "transfer candidate value"),
		),
		Commit: key.NewBinding(
			key.WithKeys("w"),
			key.WithHelp("w", "write staged updates"),
		),
		Discard: key.NewBinding(
			key.WithKeys("u"),
			key.WithHelp("u", "discard staged updates"),
		),
		Clone: key.NewBinding(
			key.WithKeys("n"),
			key.WithHelp("n", "clone candidate as new record"),
		),
		Approve: key.NewBinding(
			key.WithKeys("A"),
			key.WithHelp("A", "approve candidate"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c"),
			key.WithHelp("c", "copy path"),
		),
		Refresh: key.NewBinding(
			key.WithKeys("r"),
			key.WithHelp("r", "reload database"),
		),

		// View
		SwitchSide: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "switch database/candidate"),
		),
		OnlyDiff: key.NewBinding(
			key.WithKeys("d"),
			key.WithHelp("d", "toggle differences only"),
		),
		ExpandAll: key.NewBinding(
			key.WithKeys("E"),
			key.WithHelp("E", "expand all"),
		),
		CollapseAll: key.NewBinding(
			key.WithKeys("C"),
			key.WithHelp("C", "collapse all"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "toggle help"),
		),
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
	}
}

// helpSections groups bindings for the help overlay
func (k KeyMap) helpSections() []helpSection {
	return []helpSection{
		{"Navigation", []key.Binding{k.Up, k.Down, k.Left, k.Right, k.PageUp, k.PageDown, k.Home, k.End}},
		{"Tree", []key.Binding{k.Enter, k.ExpandAll, k.CollapseAll, k.OnlyDiff, k.SwitchSide}},
		{"Actions", []key.Binding{k.Transfer, k.Commit, k.Discard, k.Clone, k.Approve, k.Copy, k.Refresh}},
		{"General", []key.Binding{k.Help, k.Esc, k.Quit}},
	}
}

type helpSection struct {
	title    string
	bindings []key.Binding
}

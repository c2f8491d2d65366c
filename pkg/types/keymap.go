package types

import "github.com/charmbracelet/bubbles/key"

// KeyMap defines the application-level key bindings.
// It lives in pkg/types so the shell and the footer share one definition.
type KeyMap struct {
	Quit          key.Binding // Only while the sidebar has focus
	ForceQuit     key.Binding
	ToggleSidebar key.Binding
	FocusNext     key.Binding
	FocusPrev     key.Binding
}

// DefaultKeyMap returns the bindings described in the user docs.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q"),
			key.WithHelp("q", "Quit"),
		),
		ForceQuit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "Quit"),
		),
		ToggleSidebar: key.NewBinding(
			key.WithKeys("ctrl+s"),
			key.WithHelp("ctrl+s", "Sidebar"),
		),
		FocusNext: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "Focus"),
		),
		FocusPrev: key.NewBinding(
			key.WithKeys("shift+tab"),
			key.WithHelp("shift+tab", "Focus back"),
		),
	}
}

// ShortHelp implements help.KeyMap.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Quit, k.ForceQuit, k.ToggleSidebar, k.FocusNext}
}

// FullHelp implements help.KeyMap.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Quit, k.ForceQuit},
		{k.ToggleSidebar, k.FocusNext, k.FocusPrev},
	}
}

// EditorKeyMap holds the editing keys of the editor pane. Printable keys
// are typed as-is and need no binding.
type EditorKeyMap struct {
	Left      key.Binding
	Right     key.Binding
	Up        key.Binding
	Down      key.Binding
	LineStart key.Binding
	LineEnd   key.Binding
	PageUp    key.Binding
	PageDown  key.Binding
	Newline   key.Binding
	Backspace key.Binding
	Delete    key.Binding
	Paste     key.Binding
}

// DefaultEditorKeyMap returns arrow keys plus the usual emacs aliases.
func DefaultEditorKeyMap() EditorKeyMap {
	return EditorKeyMap{
		Left:      key.NewBinding(key.WithKeys("left", "ctrl+b")),
		Right:     key.NewBinding(key.WithKeys("right", "ctrl+f")),
		Up:        key.NewBinding(key.WithKeys("up", "ctrl+p")),
		Down:      key.NewBinding(key.WithKeys("down", "ctrl+n")),
		LineStart: key.NewBinding(key.WithKeys("home", "ctrl+a")),
		LineEnd:   key.NewBinding(key.WithKeys("end", "ctrl+e")),
		PageUp:    key.NewBinding(key.WithKeys("pgup")),
		PageDown:  key.NewBinding(key.WithKeys("pgdown")),
		Newline:   key.NewBinding(key.WithKeys("enter")),
		Backspace: key.NewBinding(key.WithKeys("backspace", "ctrl+h")),
		Delete:    key.NewBinding(key.WithKeys("delete", "ctrl+d")),
		Paste: key.NewBinding(
			key.WithKeys("ctrl+v"),
			key.WithHelp("ctrl+v", "Paste"),
		),
	}
}

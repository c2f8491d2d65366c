package types

// Focus identifies which pane receives key input
type Focus int

const (
	// FocusSidebar is the directory tree; the shell starts here
	FocusSidebar Focus = iota
	// FocusEditor is the text editing pane
	FocusEditor
)

// String returns the pane name used in logs
func (f Focus) String() string {
	switch f {
	case FocusEditor:
		return "editor"
	default:
		return "sidebar"
	}
}

// Next returns the other pane
func (f Focus) Next() Focus {
	if f == FocusSidebar {
		return FocusEditor
	}
	return FocusSidebar
}

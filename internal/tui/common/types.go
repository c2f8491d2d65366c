package common

// ModelReader defines the interface that views use to read model state
type ModelReader interface {
	HeaderView() string
	SidebarView() string
	EditorView() string
	FooterView() string
	SidebarVisible() bool
}

package views

import (
	"treedit/internal/tui/common"

	"github.com/charmbracelet/lipgloss"
)

// RenderMainView stacks header, body and footer. The body is the sidebar
// (when visible) beside the editing pane.
func RenderMainView(m common.ModelReader) string {
	body := m.EditorView()
	if m.SidebarVisible() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.SidebarView(), body)
	}

	return lipgloss.JoinVertical(lipgloss.Left,
		m.HeaderView(),
		body,
		m.FooterView(),
	)
}

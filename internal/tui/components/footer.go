package components

import (
	"treedit/internal/tui/styles"

	"github.com/charmbracelet/bubbles/help"
)

// Footer shows the short help for the application key bindings
type Footer struct {
	help help.Model
}

func NewFooter(theme styles.Theme) *Footer {
	h := help.New()
	h.ShowAll = false
	h.Styles.ShortKey = theme.FooterKey
	h.Styles.ShortDesc = theme.FooterDesc
	h.Styles.ShortSeparator = theme.FooterDesc
	h.Styles.Ellipsis = theme.FooterDesc

	return &Footer{help: h}
}

func (f *Footer) SetWidth(width int) {
	f.help.Width = width
}

// View renders the enabled bindings of keys
func (f *Footer) View(keys help.KeyMap) string {
	return f.help.View(keys)
}

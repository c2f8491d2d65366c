package components

import (
	"treedit/internal/tui/styles"

	"github.com/mattn/go-runewidth"
)

// Header is the one-line title bar showing the title and the sub-title
type Header struct {
	title    string
	subTitle string
	width    int
	theme    styles.Theme
}

func NewHeader(title string, theme styles.Theme) *Header {
	return &Header{title: title, theme: theme}
}

func (h *Header) SetSubTitle(s string) {
	h.subTitle = s
}

func (h *Header) SubTitle() string {
	return h.subTitle
}

func (h *Header) Title() string {
	return h.title
}

func (h *Header) SetWidth(width int) {
	h.width = width
}

// Text is the header line before styling
func (h *Header) Text() string {
	if h.subTitle == "" {
		return h.title
	}
	return h.title + " - " + h.subTitle
}

func (h *Header) View() string {
	if h.width <= 0 {
		return h.theme.Header.Render(h.Text())
	}
	return h.theme.Header.Width(h.width).Render(runewidth.Truncate(h.Text(), h.width, "…"))
}

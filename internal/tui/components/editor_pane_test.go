package components

import (
	"strings"
	"testing"

	"treedit/internal/highlight"
	"treedit/internal/tui/styles"
	"treedit/pkg/types"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPane(lineNumbers bool) *EditorPane {
	return NewEditorPane(highlight.New("monokai", termenv.Ascii), styles.Default, lineNumbers)
}

func TestEditorPaneSetText(t *testing.T) {
	p := newPane(true)
	p.SetText("one\ntwo\nthree\n")

	assert.Equal(t, "one\ntwo\nthree\n", p.Text())
	assert.Equal(t, 0, p.CursorLine())

	p.Clear()
	assert.Empty(t, p.Text())
}

func TestEditorPaneLargeText(t *testing.T) {
	p := newPane(true)
	text := strings.Repeat(strings.Repeat("x", 300)+"\n", 2000)

	p.SetText(text)
	assert.Equal(t, text, p.Text(), "no size limits on text")
}

func TestEditorPaneSetLanguage(t *testing.T) {
	p := newPane(false)

	res := p.SetLanguage("python")
	assert.True(t, res.Applied())
	assert.Equal(t, "python", res.Language)
	assert.Equal(t, "python", p.Language())

	res = p.SetLanguage("no-such-language")
	assert.Equal(t, types.LanguageIgnored, res.Outcome)
	assert.Equal(t, "no-such-language", res.Requested)
	assert.Empty(t, p.Language(), "unknown hint falls back to plain text")

	res = p.SetLanguage("")
	assert.True(t, res.Applied())
	assert.Empty(t, p.Language())
}

func TestEditorPaneClearKeepsLanguage(t *testing.T) {
	p := newPane(false)
	p.SetLanguage("json")
	p.SetText("{}")
	p.Clear()

	assert.Equal(t, "json", p.Language())
}

func TestEditorPaneTyping(t *testing.T) {
	p := newPane(false)
	p.SetText("ab")

	// Keys are ignored until focused
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, "ab", p.Text())

	p.Focus()
	require.True(t, p.Focused())
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x")})
	assert.Equal(t, "xab", p.Text())

	p.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Equal(t, "x\nab", p.Text())
	assert.Equal(t, 1, p.CursorLine())

	p.Blur()
	assert.False(t, p.Focused())
}

func TestEditorPaneView(t *testing.T) {
	p := newPane(true)
	p.SetSize(40, 5)
	p.SetLanguage("python")
	p.SetText("x = 1\ny = 2")

	view := p.View()
	lines := strings.Split(view, "\n")
	require.GreaterOrEqual(t, len(lines), 2)
	assert.Contains(t, lines[0], "1")
	assert.Contains(t, lines[0], "x = 1")
	assert.Contains(t, lines[1], "2")
	assert.Contains(t, lines[1], "y = 2")
}

func TestEditorPaneViewFollowsCursor(t *testing.T) {
	p := newPane(false)
	p.SetSize(20, 3)

	var b strings.Builder
	for i := 0; i < 10; i++ {
		b.WriteString("line\n")
	}
	b.WriteString("last")
	p.SetText(b.String())
	p.Focus()

	for i := 0; i < 10; i++ {
		p.Update(tea.KeyMsg{Type: tea.KeyDown})
	}
	assert.Equal(t, 10, p.CursorLine())
	assert.Contains(t, p.View(), "last")
}

func TestEditorPaneKeepsTabsAndControlCharacters(t *testing.T) {
	tests := []string{
		"func main() {\n\tprintln(1)\n}\n",
		"a\x00b\x1bc\x0cd\n",
	}

	for _, text := range tests {
		p := newPane(true)
		p.SetLanguage("go")
		p.SetText(text)
		p.Focus()

		view := p.View()
		assert.Equal(t, text, p.Text(), "drawing does not touch the text")
		assert.NotContains(t, view, "\t")
		assert.NotContains(t, view, "\x1bc")
	}

	p := newPane(false)
	p.SetText("\tx")
	assert.True(t, strings.HasPrefix(p.View(), "    x"))
}

func TestEditorPaneTypingAfterTab(t *testing.T) {
	p := newPane(false)
	p.SetText("\tx")
	p.Focus()

	p.Update(tea.KeyMsg{Type: tea.KeyEnd})
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("y")})
	assert.Equal(t, "\txy", p.Text())
}

func TestEditorPaneEditingKeys(t *testing.T) {
	p := newPane(false)
	p.SetText("ab\ncd")
	p.Focus()

	p.Update(tea.KeyMsg{Type: tea.KeyDown})
	p.Update(tea.KeyMsg{Type: tea.KeyBackspace})
	assert.Equal(t, "abcd", p.Text(), "backspace at line start joins lines")
	assert.Equal(t, 0, p.CursorLine())

	p.Update(tea.KeyMsg{Type: tea.KeyDelete})
	assert.Equal(t, "abd", p.Text())

	p.Update(tea.KeyMsg{Type: tea.KeySpace})
	assert.Equal(t, "ab d", p.Text())

	p.Update(tea.KeyMsg{Type: tea.KeyHome})
	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("x"), Alt: true})
	assert.Equal(t, "ab d", p.Text(), "alt combinations are not typed")
}

func TestEditorPanePaste(t *testing.T) {
	p := newPane(false)
	p.Focus()

	p.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("a\r\n\tb"), Paste: true})
	assert.Equal(t, "a\n\tb", p.Text())
	assert.Equal(t, 1, p.CursorLine())

	p.Update(pasteMsg("c\nd"))
	assert.Equal(t, "a\n\tbc\nd", p.Text())

	cmd := p.Update(tea.KeyMsg{Type: tea.KeyCtrlV})
	assert.NotNil(t, cmd, "ctrl+v reads the clipboard")
}

func TestEditorPaneHorizontalScroll(t *testing.T) {
	p := newPane(true)
	p.SetSize(30, 5)
	line := strings.Repeat("x", 92) + "TAILMARK"
	p.SetText(line + "\nshort")
	p.Focus()

	assert.NotContains(t, p.View(), "TAILMARK")

	p.Update(tea.KeyMsg{Type: tea.KeyEnd})
	view := p.View()
	assert.Contains(t, view, "TAILMARK")
	for _, row := range strings.Split(view, "\n") {
		assert.LessOrEqual(t, ansi.StringWidth(row), 30)
	}

	p.Update(tea.KeyMsg{Type: tea.KeyHome})
	assert.NotContains(t, p.View(), "TAILMARK")
	assert.Contains(t, p.View(), "short")
}

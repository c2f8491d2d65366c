package components

import (
	"fmt"
	"strings"

	"treedit/internal/highlight"
	"treedit/internal/log"
	"treedit/internal/tui/styles"
	"treedit/pkg/types"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

// pasteMsg carries clipboard text into the pane
type pasteMsg string

// EditorPane holds the text of the open file and shows it highlighted.
//
// The text lives in a TextBuffer and is never rewritten for display;
// tabs and control characters are expanded only when lines are drawn.
// Drawing goes through a viewport for vertical scrolling, horizontal
// scrolling is a column offset that follows the cursor.
type EditorPane struct {
	buffer      *TextBuffer
	viewport    viewport.Model
	keys        types.EditorKeyMap
	highlighter *highlight.Highlighter
	theme       styles.Theme
	lineNumbers bool

	language string
	focused  bool
	width    int
	height   int
	xOffset  int

	// rendered caches the highlighted lines of renderedText
	rendered     []string
	renderedText string
	renderedLang string
}

// NewEditorPane creates an empty, unfocused pane
func NewEditorPane(h *highlight.Highlighter, theme styles.Theme, lineNumbers bool) *EditorPane {
	p := &EditorPane{
		buffer:      NewTextBuffer(),
		viewport:    viewport.New(40, 10),
		keys:        types.DefaultEditorKeyMap(),
		highlighter: h,
		theme:       theme,
		lineNumbers: lineNumbers,
	}
	p.SetSize(40, 10)
	return p
}

// Clear removes all text. The language is kept.
func (p *EditorPane) Clear() {
	p.buffer.Reset()
	p.xOffset = 0
	p.viewport.GotoTop()
}

// SetText replaces the text and puts the cursor at the start
func (p *EditorPane) SetText(text string) {
	p.buffer.SetText(text)
	p.xOffset = 0
	p.viewport.GotoTop()
}

// Text returns the current text, byte for byte as set or typed
func (p *EditorPane) Text() string {
	return p.buffer.Text()
}

// SetLanguage offers a highlighting hint. An unknown language is not an
// error: the pane drops to plain text and reports LanguageIgnored.
func (p *EditorPane) SetLanguage(language string) types.LanguageResult {
	if language == "" {
		p.language = ""
		return types.LanguageResult{Outcome: types.LanguageApplied}
	}

	if _, err := highlight.Lookup(language); err != nil {
		log.LogWithError(err).Debug("highlight hint ignored")
		p.language = ""
		return types.LanguageResult{Outcome: types.LanguageIgnored, Requested: language}
	}

	p.language = language
	return types.LanguageResult{Outcome: types.LanguageApplied, Requested: language, Language: language}
}

// Language returns the language in effect; empty means plain text
func (p *EditorPane) Language() string {
	return p.language
}

// Focus gives the pane key input
func (p *EditorPane) Focus() tea.Cmd {
	p.focused = true
	return nil
}

// Blur removes key input from the pane
func (p *EditorPane) Blur() {
	p.focused = false
}

// Focused reports whether the pane has key input
func (p *EditorPane) Focused() bool {
	return p.focused
}

// SetSize sets the inner size of the pane in cells
func (p *EditorPane) SetSize(width, height int) {
	p.width = max(width, 1)
	p.height = max(height, 1)
	p.viewport.Width = p.width
	p.viewport.Height = p.height
	p.followCursor()
}

// Update edits the text on key input while focused and scrolls the
// viewport on mouse wheel events.
func (p *EditorPane) Update(msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		if !p.focused {
			return nil
		}
		return p.handleKey(msg)
	case pasteMsg:
		p.insert(string(msg))
		return nil
	case tea.MouseMsg:
		var cmd tea.Cmd
		p.viewport, cmd = p.viewport.Update(msg)
		return cmd
	}
	return nil
}

func (p *EditorPane) handleKey(msg tea.KeyMsg) tea.Cmd {
	b := p.buffer
	changed := false

	switch {
	case key.Matches(msg, p.keys.Left):
		b.MoveLeft()
	case key.Matches(msg, p.keys.Right):
		b.MoveRight()
	case key.Matches(msg, p.keys.Up):
		b.MoveUp(1)
	case key.Matches(msg, p.keys.Down):
		b.MoveDown(1)
	case key.Matches(msg, p.keys.PageUp):
		b.MoveUp(p.height)
	case key.Matches(msg, p.keys.PageDown):
		b.MoveDown(p.height)
	case key.Matches(msg, p.keys.LineStart):
		b.LineStart()
	case key.Matches(msg, p.keys.LineEnd):
		b.LineEnd()
	case key.Matches(msg, p.keys.Newline):
		b.InsertNewline()
		changed = true
	case key.Matches(msg, p.keys.Backspace):
		changed = b.DeleteBackward()
	case key.Matches(msg, p.keys.Delete):
		changed = b.DeleteForward()
	case key.Matches(msg, p.keys.Paste):
		return readClipboard
	case msg.Type == tea.KeySpace:
		b.InsertRunes([]rune{' '})
		changed = true
	case msg.Type == tea.KeyRunes && !msg.Alt:
		if msg.Paste {
			p.insert(string(msg.Runes))
			return nil
		}
		b.InsertRunes(msg.Runes)
		changed = true
	}

	if changed {
		p.textChanged()
	}
	p.followCursor()
	return nil
}

var pasteNewlines = strings.NewReplacer("\r\n", "\n", "\r", "\n")

func (p *EditorPane) insert(text string) {
	if text == "" {
		return
	}
	p.buffer.InsertRunes([]rune(pasteNewlines.Replace(text)))
	p.textChanged()
	p.followCursor()
}

func (p *EditorPane) textChanged() {
	log.LogWithFields(log.F("lines", p.buffer.LineCount())).Debug("text changed")
}

func readClipboard() tea.Msg {
	text, err := clipboard.ReadAll()
	if err != nil {
		log.LogWithError(err).Debug("clipboard not available")
		return nil
	}
	return pasteMsg(text)
}

// CursorLine returns the zero-based line of the cursor
func (p *EditorPane) CursorLine() int {
	return p.buffer.Row()
}

// cursorX is the screen column of the cursor, before scrolling
func (p *EditorPane) cursorX() int {
	line := p.buffer.Line(p.buffer.Row())
	return highlight.Column(line[:p.buffer.Col()])
}

func (p *EditorPane) textWidth() int {
	return max(p.width-p.gutterWidth(), 1)
}

func (p *EditorPane) followCursor() {
	x, width := p.cursorX(), p.textWidth()
	if x < p.xOffset {
		p.xOffset = x
	} else if x >= p.xOffset+width {
		p.xOffset = x - width + 1
	}

	p.refresh()
	line := p.buffer.Row()
	if line < p.viewport.YOffset {
		p.viewport.SetYOffset(line)
	} else if line >= p.viewport.YOffset+p.viewport.Height {
		p.viewport.SetYOffset(line - p.viewport.Height + 1)
	}
}

func (p *EditorPane) gutterWidth() int {
	if !p.lineNumbers {
		return 0
	}
	digits := len(fmt.Sprint(p.buffer.LineCount()))
	return max(digits, 3) + 2
}

func (p *EditorPane) highlighted() []string {
	text := p.buffer.Text()
	if p.rendered == nil || text != p.renderedText || p.language != p.renderedLang {
		p.rendered = p.highlighter.RenderLines(p.language, text)
		p.renderedText = text
		p.renderedLang = p.language
	}
	return p.rendered
}

// View renders the visible part of the text
func (p *EditorPane) View() string {
	p.refresh()
	return p.viewport.View()
}

// refresh rebuilds the viewport content from the buffer
func (p *EditorPane) refresh() {
	lines := p.highlighted()
	current := p.buffer.Row()
	gutter := p.gutterWidth()
	textWidth := p.textWidth()

	var b strings.Builder
	for i, line := range lines {
		if i > 0 {
			b.WriteByte('\n')
		}

		if gutter > 0 {
			num := fmt.Sprintf("%*d ", gutter-1, i+1)
			if i == current {
				b.WriteString(p.theme.GutterCurrent.Render(num))
			} else {
				b.WriteString(p.theme.Gutter.Render(num))
			}
		}

		// The cursor line is drawn plain so the cursor cell can be shown
		if i == current && p.focused {
			line = p.renderCursorLine(p.buffer.Line(i))
		}
		b.WriteString(ansi.Cut(line, p.xOffset, p.xOffset+textWidth))
	}

	p.viewport.SetContent(b.String())
}

func (p *EditorPane) renderCursorLine(runes []rune) string {
	col := min(p.buffer.Col(), len(runes))
	before, x := highlight.Expand(string(runes[:col]), 0)

	if col == len(runes) {
		return before + p.theme.Cursor.Render(" ")
	}

	under, x := highlight.Expand(string(runes[col]), x)
	rest, _ := highlight.Expand(string(runes[col+1:]), x)

	// A tab shows the cursor on its first cell only
	if runes[col] == '\t' {
		return before + p.theme.Cursor.Render(" ") + under[1:] + rest
	}
	return before + p.theme.Cursor.Render(under) + rest
}

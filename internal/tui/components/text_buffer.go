package components

import "strings"

// TextBuffer holds the pane's text as hard lines split on "\n" together
// with a cursor. Text is kept exactly as given: tabs and control
// characters are only turned into something drawable at render time.
type TextBuffer struct {
	lines [][]rune
	row   int
	col   int
	// goal is the column up/down movement tries to return to
	goal int
}

// NewTextBuffer returns an empty buffer
func NewTextBuffer() *TextBuffer {
	b := &TextBuffer{}
	b.Reset()
	return b
}

// Reset empties the buffer and moves the cursor to the start
func (b *TextBuffer) Reset() {
	b.lines = [][]rune{{}}
	b.row, b.col, b.goal = 0, 0, 0
}

// SetText replaces the content. A trailing newline gives a final empty
// line so that Text returns the input unchanged.
func (b *TextBuffer) SetText(text string) {
	parts := strings.Split(text, "\n")
	b.lines = make([][]rune, len(parts))
	for i, part := range parts {
		b.lines[i] = []rune(part)
	}
	b.row, b.col, b.goal = 0, 0, 0
}

// Text returns the content
func (b *TextBuffer) Text() string {
	var sb strings.Builder
	for i, line := range b.lines {
		if i > 0 {
			sb.WriteByte('\n')
		}
		sb.WriteString(string(line))
	}
	return sb.String()
}

// Row is the zero-based cursor line
func (b *TextBuffer) Row() int { return b.row }

// Col is the cursor position in runes within its line
func (b *TextBuffer) Col() int { return b.col }

// LineCount returns the number of lines, never less than one
func (b *TextBuffer) LineCount() int { return len(b.lines) }

// Line returns line i; out of range gives nil
func (b *TextBuffer) Line(i int) []rune {
	if i < 0 || i >= len(b.lines) {
		return nil
	}
	return b.lines[i]
}

// LineLen returns the rune length of line i
func (b *TextBuffer) LineLen(i int) int {
	return len(b.Line(i))
}

// InsertRunes inserts rs at the cursor; a '\n' splits the line
func (b *TextBuffer) InsertRunes(rs []rune) {
	for _, r := range rs {
		if r == '\n' {
			b.InsertNewline()
			continue
		}
		line := b.lines[b.row]
		out := make([]rune, 0, len(line)+1)
		out = append(out, line[:b.col]...)
		out = append(out, r)
		out = append(out, line[b.col:]...)
		b.lines[b.row] = out
		b.col++
	}
	b.goal = b.col
}

// InsertNewline splits the current line at the cursor
func (b *TextBuffer) InsertNewline() {
	line := b.lines[b.row]
	before := append([]rune(nil), line[:b.col]...)
	after := append([]rune(nil), line[b.col:]...)

	lines := make([][]rune, 0, len(b.lines)+1)
	lines = append(lines, b.lines[:b.row]...)
	lines = append(lines, before, after)
	lines = append(lines, b.lines[b.row+1:]...)
	b.lines = lines

	b.row++
	b.col, b.goal = 0, 0
}

// DeleteBackward removes the rune before the cursor. At the start of a
// line it joins the line onto the previous one. It reports whether the
// text changed.
func (b *TextBuffer) DeleteBackward() bool {
	if b.col > 0 {
		line := b.lines[b.row]
		b.lines[b.row] = append(line[:b.col-1:b.col-1], line[b.col:]...)
		b.col--
		b.goal = b.col
		return true
	}
	if b.row == 0 {
		return false
	}
	b.col = len(b.lines[b.row-1])
	b.joinLines(b.row - 1)
	b.row--
	b.goal = b.col
	return true
}

// DeleteForward removes the rune under the cursor. At the end of a line
// it joins the next line onto it.
func (b *TextBuffer) DeleteForward() bool {
	line := b.lines[b.row]
	if b.col < len(line) {
		b.lines[b.row] = append(line[:b.col:b.col], line[b.col+1:]...)
		return true
	}
	if b.row+1 >= len(b.lines) {
		return false
	}
	b.joinLines(b.row)
	return true
}

func (b *TextBuffer) joinLines(idx int) {
	joined := make([]rune, 0, len(b.lines[idx])+len(b.lines[idx+1]))
	joined = append(joined, b.lines[idx]...)
	joined = append(joined, b.lines[idx+1]...)
	b.lines[idx] = joined
	b.lines = append(b.lines[:idx+1], b.lines[idx+2:]...)
}

// MoveLeft moves one rune back, wrapping to the end of the previous line
func (b *TextBuffer) MoveLeft() {
	switch {
	case b.col > 0:
		b.col--
	case b.row > 0:
		b.row--
		b.col = len(b.lines[b.row])
	}
	b.goal = b.col
}

// MoveRight moves one rune on, wrapping to the start of the next line
func (b *TextBuffer) MoveRight() {
	switch {
	case b.col < len(b.lines[b.row]):
		b.col++
	case b.row+1 < len(b.lines):
		b.row++
		b.col = 0
	}
	b.goal = b.col
}

// MoveUp moves n lines up, keeping the goal column where the line allows
func (b *TextBuffer) MoveUp(n int) {
	b.moveRow(b.row - n)
}

// MoveDown moves n lines down
func (b *TextBuffer) MoveDown(n int) {
	b.moveRow(b.row + n)
}

func (b *TextBuffer) moveRow(row int) {
	b.row = max(0, min(row, len(b.lines)-1))
	b.col = min(b.goal, len(b.lines[b.row]))
}

// LineStart moves to the start of the current line
func (b *TextBuffer) LineStart() {
	b.col, b.goal = 0, 0
}

// LineEnd moves past the last rune of the current line
func (b *TextBuffer) LineEnd() {
	b.col = len(b.lines[b.row])
	b.goal = b.col
}

package highlight

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// TabWidth is the distance between tab stops on screen.
const TabWidth = 4

// Expand turns s into what the terminal should draw when s starts at screen
// column col: tabs become spaces up to the next tab stop and control
// characters become caret notation (^@, ^[ ...). It returns the drawn
// text and the column after it. The text itself is never altered.
func Expand(s string, col int) (string, int) {
	var b strings.Builder
	for _, r := range s {
		col = writeRune(&b, r, col)
	}
	return b.String(), col
}

// RuneWidth is the number of cells r takes when drawn at column col.
func RuneWidth(r rune, col int) int {
	switch {
	case r == '\t':
		return TabWidth - col%TabWidth
	case r < 0x20 || r == 0x7f:
		return 2
	default:
		return runewidth.RuneWidth(r)
	}
}

// Column is the screen column reached after drawing runes from column 0.
func Column(runes []rune) int {
	col := 0
	for _, r := range runes {
		col += RuneWidth(r, col)
	}
	return col
}

func writeRune(b *strings.Builder, r rune, col int) int {
	w := RuneWidth(r, col)
	switch {
	case r == '\t':
		b.WriteString(strings.Repeat(" ", w))
	case r == 0x7f:
		b.WriteString("^?")
	case r < 0x20:
		b.WriteByte('^')
		b.WriteRune(r + '@')
	default:
		b.WriteRune(r)
	}
	return col + w
}

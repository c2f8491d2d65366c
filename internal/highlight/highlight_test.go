package highlight

import (
	"strings"
	"testing"

	"treedit/internal/errors"
	"treedit/pkg/testutils"

	"github.com/muesli/termenv"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGuess(t *testing.T) {
	tests := []struct {
		name    string
		path    string
		content string
		want    string
	}{
		{"python by extension", "a.py", "hello\n", "python"},
		{"json by extension", "data.json", `{"a":1}`, "json"},
		{"go by extension", "/src/main.go", "package main\n", "go"},
		{"nested path uses base name", "/tmp/dir.py/data.json", "[]", "json"},
		{"plain text", "empty.txt", "", "text"},
		{"shell by shebang", "run", "#!/bin/bash\necho hi\n", "bash"},
		{"nothing to go on", "blob.zzzz", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Guess(tt.path, tt.content))
		})
	}
}

func TestLookup(t *testing.T) {
	lexer, err := Lookup("python")
	require.NoError(t, err)
	assert.Equal(t, "python", Identifier(lexer))

	_, err = Lookup("no-such-language")
	require.Error(t, err)
	assert.True(t, errors.IsUnsupportedLanguage(err))

	_, err = Lookup("")
	assert.Error(t, err)
}

func TestRenderLinesPlainProfile(t *testing.T) {
	h := New("monokai", termenv.Ascii)

	text := "x = 1\ny = 2\n"
	assert.Equal(t, []string{"x = 1", "y = 2", ""}, h.RenderLines("python", text))
}

func TestRenderLinesExpandsTabs(t *testing.T) {
	text := "func main() {\n\tprintln(1)\n}\n"

	plain := New("monokai", termenv.Ascii).RenderLines("go", text)
	assert.Equal(t, "    println(1)", plain[1])

	coloured := New("monokai", termenv.TrueColor).RenderLines("go", text)
	assert.Equal(t, "    println(1)", testutils.StripANSI(coloured[1]))
	assert.NotContains(t, coloured[1], "\t")
}

func TestExpand(t *testing.T) {
	tests := []struct {
		name    string
		in      string
		col     int
		want    string
		wantCol int
	}{
		{"plain", "abc", 0, "abc", 3},
		{"leading tab", "\tx", 0, "    x", 5},
		{"tab to next stop", "ab\tc", 0, "ab  c", 5},
		{"tab after offset", "\t", 3, " ", 4},
		{"control characters", "a\x00b\x1bc\x7f", 0, "a^@b^[c^?", 9},
		{"wide runes", "日本", 0, "日本", 4},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, col := Expand(tt.in, tt.col)
			assert.Equal(t, tt.want, got)
			assert.Equal(t, tt.wantCol, col)
		})
	}

	assert.Equal(t, 6, Column([]rune("\tab")))
}

func TestRenderLinesKeepsLineCount(t *testing.T) {
	h := New("monokai", termenv.TrueColor)

	inputs := []string{
		"",
		"hello\n",
		`{"a":1}`,
		"/* block\ncomment */\nint x;\n\n",
		"def f():\n    return 1\n",
	}
	for _, text := range inputs {
		lines := h.RenderLines("c", text)
		assert.Len(t, lines, len(strings.Split(text, "\n")), "input %q", text)
		for _, line := range lines {
			assert.NotContains(t, line, "\n")
		}
	}
}

func TestRenderColours(t *testing.T) {
	h := New("monokai", termenv.TrueColor)

	lines := h.RenderLines("python", "def f():\n    return 1\n")
	assert.Contains(t, lines[0], "\x1b[")
	assert.Equal(t, "def f():", testutils.StripANSI(lines[0]))
	assert.Equal(t, "    return 1", testutils.StripANSI(lines[1]))
}

func TestRenderUnknownLanguageIsPlain(t *testing.T) {
	h := New("monokai", termenv.TrueColor)

	assert.Equal(t, []string{"a", "b"}, h.RenderLines("no-such-language", "a\nb"))
	assert.Equal(t, []string{"a", "b"}, h.RenderLines("", "a\nb"))
}

func TestNewFallsBackOnUnknownStyle(t *testing.T) {
	h := New("not-a-style", termenv.ANSI256)
	assert.NotEmpty(t, h.StyleName())
}

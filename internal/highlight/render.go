package highlight

import (
	"bytes"
	"strings"

	"treedit/internal/log"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/formatters"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/muesli/termenv"
)

// Highlighter renders text in a fixed chroma style for one terminal
// colour profile.
type Highlighter struct {
	style     *chroma.Style
	formatter chroma.Formatter
}

// New builds a highlighter. Unknown style names fall back to chroma's
// default style.
func New(styleName string, profile termenv.Profile) *Highlighter {
	style := styles.Get(styleName)
	if style == nil {
		style = styles.Fallback
	}
	return &Highlighter{
		style:     style,
		formatter: FormatterFor(profile),
	}
}

// FormatterFor picks the chroma terminal formatter matching what the
// terminal can show.
func FormatterFor(profile termenv.Profile) chroma.Formatter {
	name := "noop"
	switch profile {
	case termenv.TrueColor:
		name = "terminal16m"
	case termenv.ANSI256:
		name = "terminal256"
	case termenv.ANSI:
		name = "terminal16"
	}
	f := formatters.Get(name)
	if f == nil {
		return formatters.Fallback
	}
	return f
}

// StyleName returns the name of the chroma style in use.
func (h *Highlighter) StyleName() string {
	return h.style.Name
}

// RenderLines highlights text as language and returns one rendered string
// per line of text, so the result always has as many entries as
// strings.Split(text, "\n"). Lines come back ready to draw, with tabs and
// control characters expanded as Expand does. An empty or unknown language
// renders plain.
func (h *Highlighter) RenderLines(language, text string) []string {
	plain := strings.Split(text, "\n")
	for i, line := range plain {
		plain[i], _ = Expand(line, 0)
	}
	if language == "" {
		return plain
	}

	lexer, err := Lookup(language)
	if err != nil {
		return plain
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, text)
	if err != nil {
		log.LogWithError(err).Debug("tokenise failed, rendering plain text")
		return plain
	}

	out := make([]string, 0, len(plain))
	var buf bytes.Buffer
	for _, line := range chroma.SplitTokensIntoLines(it.Tokens()) {
		if len(out) == len(plain) {
			break
		}
		tokens := make([]chroma.Token, 0, len(line))
		col := 0
		for _, tok := range line {
			tok.Value, col = Expand(strings.TrimSuffix(tok.Value, "\n"), col)
			if tok.Value != "" {
				tokens = append(tokens, tok)
			}
		}

		buf.Reset()
		if err := h.formatter.Format(&buf, h.style, chroma.Literator(tokens...)); err != nil {
			out = append(out, plain[len(out)])
			continue
		}
		out = append(out, buf.String())
	}

	// The lexer may drop a trailing empty line; keep the line count.
	for len(out) < len(plain) {
		out = append(out, plain[len(out)])
	}
	return out
}

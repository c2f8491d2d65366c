// Package highlight guesses a syntax language for a file and renders text
// with chroma.
package highlight

import (
	"path/filepath"
	"strings"

	"treedit/internal/errors"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
)

// Guess returns the language identifier for a file, looking at the file
// name first and the content second. It returns "" when neither says
// anything useful.
func Guess(path, content string) string {
	lexer := lexers.Match(filepath.Base(path))
	if lexer == nil {
		lexer = lexers.Analyse(content)
	}
	if lexer == nil {
		return ""
	}
	return Identifier(lexer)
}

// Identifier is the canonical name of a lexer: its first alias, or its
// lower-cased name when it has none.
func Identifier(lexer chroma.Lexer) string {
	cfg := lexer.Config()
	if len(cfg.Aliases) > 0 {
		return cfg.Aliases[0]
	}
	return strings.ToLower(cfg.Name)
}

// Lookup resolves a language identifier to a lexer.
func Lookup(language string) (chroma.Lexer, error) {
	if language == "" {
		return nil, errors.NewLanguageError(language)
	}
	lexer := lexers.Get(language)
	if lexer == nil {
		return nil, errors.NewLanguageError(language)
	}
	return lexer, nil
}

// Package workspace reads files from the working tree for display.
package workspace

import (
	"io/fs"
	"os"
	"strings"
	"unicode/utf8"

	"treedit/internal/errors"
	"treedit/pkg/types"
)

// ReadText reads the whole file at path and returns it as text.
//
// The content must be valid UTF-8; anything else is reported as a NotText
// FileError. Line endings are normalised so "\r\n" and lone "\r" both
// become "\n". There is no size limit.
func ReadText(path string) (types.OpenedFile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return types.OpenedFile{}, classify(path, err)
	}

	if !utf8.Valid(data) {
		return types.OpenedFile{}, errors.NewFileError("cannot decode file as UTF-8", path, errors.NotText,
			errors.Newf("invalid byte sequence at offset %d", firstInvalid(data)))
	}

	return types.OpenedFile{
		Path: path,
		Text: normalizeNewlines(string(data)),
	}, nil
}

func classify(path string, err error) error {
	switch {
	case errors.Is(err, fs.ErrNotExist):
		return errors.NewFileError("file not found", path, errors.FileNotFound, err)
	case errors.Is(err, fs.ErrPermission):
		return errors.NewFileError("file access denied", path, errors.FileAccessDenied, err)
	default:
		return errors.NewFileError("cannot read file", path, errors.FileReadFailed, err)
	}
}

func firstInvalid(data []byte) int {
	for i := 0; i < len(data); {
		r, size := utf8.DecodeRune(data[i:])
		if r == utf8.RuneError && size <= 1 {
			return i
		}
		i += size
	}
	return -1
}

func normalizeNewlines(s string) string {
	if !strings.ContainsRune(s, '\r') {
		return s
	}
	s = strings.ReplaceAll(s, "\r\n", "\n")
	return strings.ReplaceAll(s, "\r", "\n")
}

// Package errors provides standardized error handling for treedit.
// It defines the error kinds the editor distinguishes and helpers for
// consistent error creation, wrapping, and inspection.
package errors

import (
	"errors"
	"fmt"
)

// Standard errors package errors that we re-export for convenience
var (
	// Unwrap unwraps an error to access the underlying error
	Unwrap = errors.Unwrap
	// Is reports whether any error in err's chain matches target
	Is = errors.Is
	// As finds the first error in err's chain that matches target
	As = errors.As
)

// Common error constants for frequently occurring errors
var (
	ErrFileNotFound  = NewFileError("file not found", "", FileNotFound, nil)
	ErrNotText       = NewFileError("file is not valid UTF-8 text", "", NotText, nil)
	ErrInvalidConfig = NewConfigError("invalid style sheet", "", InvalidConfig, nil)
)

// ErrorKind represents the kind of error
type ErrorKind int

// Error kinds
const (
	Unknown ErrorKind = iota
	// File error kinds
	FileNotFound
	FileAccessDenied
	InvalidPath
	FileReadFailed
	NotText
	// Directory error kinds
	DirectoryReadFailed
	WatchFailed
	// Config error kinds
	InvalidConfig
	ConfigNotFound
	// Highlighting error kinds
	UnsupportedLanguage
)

// String returns a short name for the kind, used in log fields.
func (k ErrorKind) String() string {
	switch k {
	case FileNotFound:
		return "file_not_found"
	case FileAccessDenied:
		return "file_access_denied"
	case InvalidPath:
		return "invalid_path"
	case FileReadFailed:
		return "file_read_failed"
	case NotText:
		return "not_text"
	case DirectoryReadFailed:
		return "directory_read_failed"
	case WatchFailed:
		return "watch_failed"
	case InvalidConfig:
		return "invalid_config"
	case ConfigNotFound:
		return "config_not_found"
	case UnsupportedLanguage:
		return "unsupported_language"
	default:
		return "unknown"
	}
}

// ApplicationError is the base error type for all application errors
type ApplicationError struct {
	msg  string
	err  error
	kind ErrorKind
}

// Error returns the error message
func (e *ApplicationError) Error() string {
	if e.err != nil {
		return fmt.Sprintf("%s: %v", e.msg, e.err)
	}
	return e.msg
}

// Unwrap returns the wrapped error
func (e *ApplicationError) Unwrap() error {
	return e.err
}

// Kind returns the kind of error
func (e *ApplicationError) Kind() ErrorKind {
	return e.kind
}

// FileError represents errors related to file and directory access
type FileError struct {
	ApplicationError
	path string
}

// NewFileError creates a new file error
func NewFileError(msg string, path string, kind ErrorKind, err error) *FileError {
	return &FileError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		path: path,
	}
}

// Error returns the file error message
func (e *FileError) Error() string {
	if e.path != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.path, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.path)
	}
	return e.ApplicationError.Error()
}

// Is matches sentinel file errors by kind, so a path-specific error
// satisfies errors.Is(err, ErrNotText).
func (e *FileError) Is(target error) bool {
	t, ok := target.(*FileError)
	if !ok {
		return false
	}
	return t.path == "" && t.kind == e.kind
}

// Path returns the file path associated with the error
func (e *FileError) Path() string {
	return e.path
}

// ConfigError represents errors related to the style sheet
type ConfigError struct {
	ApplicationError
	param string
}

// NewConfigError creates a new configuration error
func NewConfigError(msg string, param string, kind ErrorKind, err error) *ConfigError {
	return &ConfigError{
		ApplicationError: ApplicationError{
			msg:  msg,
			err:  err,
			kind: kind,
		},
		param: param,
	}
}

// Error returns the config error message
func (e *ConfigError) Error() string {
	if e.param != "" {
		if e.err != nil {
			return fmt.Sprintf("%s: %s: %v", e.msg, e.param, e.err)
		}
		return fmt.Sprintf("%s: %s", e.msg, e.param)
	}
	return e.ApplicationError.Error()
}

// Param returns the configuration parameter associated with the error
func (e *ConfigError) Param() string {
	return e.param
}

// LanguageError is returned when a highlight hint names a language the
// highlighter does not know.
type LanguageError struct {
	ApplicationError
	language string
}

// NewLanguageError creates a new unsupported-language error
func NewLanguageError(language string) *LanguageError {
	return &LanguageError{
		ApplicationError: ApplicationError{
			msg:  "unsupported highlighting language",
			kind: UnsupportedLanguage,
		},
		language: language,
	}
}

// Error returns the language error message
func (e *LanguageError) Error() string {
	return fmt.Sprintf("%s: %q", e.msg, e.language)
}

// Language returns the rejected language name
func (e *LanguageError) Language() string {
	return e.language
}

// New creates a new error with a message
func New(msg string) error {
	return &ApplicationError{
		msg:  msg,
		kind: Unknown,
	}
}

// Newf creates a new error with a formatted message
func Newf(format string, args ...interface{}) error {
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		kind: Unknown,
	}
}

// Wrap wraps an existing error with additional context
func Wrap(err error, msg string) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  msg,
		err:  err,
		kind: Unknown,
	}
}

// Wrapf wraps an existing error with additional formatted context
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return &ApplicationError{
		msg:  fmt.Sprintf(format, args...),
		err:  err,
		kind: Unknown,
	}
}

// KindOf returns the kind of the outermost typed error in err's chain.
// Plain wrappers made by Wrap or New are skipped.
func KindOf(err error) ErrorKind {
	for err != nil {
		switch e := err.(type) {
		case *FileError:
			return e.Kind()
		case *ConfigError:
			return e.Kind()
		case *LanguageError:
			return e.Kind()
		case *ApplicationError:
			if e.kind != Unknown {
				return e.kind
			}
		}
		err = errors.Unwrap(err)
	}
	return Unknown
}

func hasFileKind(err error, kind ErrorKind) bool {
	var fileErr *FileError
	return errors.As(err, &fileErr) && fileErr.Kind() == kind
}

// IsFileNotFound reports a missing file anywhere in err's chain
func IsFileNotFound(err error) bool {
	return hasFileKind(err, FileNotFound)
}

// IsFileAccessDenied reports a permission failure
func IsFileAccessDenied(err error) bool {
	return hasFileKind(err, FileAccessDenied)
}

// IsNotText reports content that failed to decode as UTF-8
func IsNotText(err error) bool {
	return hasFileKind(err, NotText)
}

// IsInvalidConfig reports a style sheet that failed to parse or validate
func IsInvalidConfig(err error) bool {
	var configErr *ConfigError
	return errors.As(err, &configErr) && configErr.Kind() == InvalidConfig
}

// IsUnsupportedLanguage checks if the error is an unsupported language error
func IsUnsupportedLanguage(err error) bool {
	var langErr *LanguageError
	return errors.As(err, &langErr)
}

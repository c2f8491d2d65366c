// Package log is treedit's structured logger, a thin layer over logrus.
//
// The terminal belongs to the UI while the program runs, so the default
// logger discards everything; cmd/treedit points it at a file when asked.
package log

import (
	"fmt"
	"io"
	"os"

	"treedit/internal/errors"

	"github.com/sirupsen/logrus"
)

var (
	isDebug = false
	logger  = NewLogger()
)

// Field is a single key/value pair attached to a log entry.
type Field struct {
	Key   string
	Value interface{}
}

// F builds a Field.
func F(key string, value interface{}) Field {
	return Field{Key: key, Value: value}
}

// Logger wraps a logrus entry so fields can be accumulated with With.
type Logger struct {
	entry *logrus.Entry
	file  *os.File
}

type options struct {
	out  io.Writer
	json bool
	path string
}

// Option configures a Logger.
type Option func(*options)

// WithOutput sends log lines to w.
func WithOutput(w io.Writer) Option {
	return func(o *options) {
		o.out = w
	}
}

// WithFile appends log lines to the file at path, creating it if needed.
func WithFile(path string) Option {
	return func(o *options) {
		o.path = path
	}
}

// WithJSON switches to one JSON object per line.
func WithJSON() Option {
	return func(o *options) {
		o.json = true
	}
}

// NewLogger builds a logger. Without options it writes nowhere.
func NewLogger(opts ...Option) *Logger {
	o := options{out: io.Discard}
	for _, opt := range opts {
		opt(&o)
	}

	base := logrus.New()
	base.SetLevel(logrus.DebugLevel)

	var file *os.File
	if o.path != "" {
		f, err := os.OpenFile(o.path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
		if err != nil {
			fmt.Fprintf(os.Stderr, "treedit: cannot open log file %s: %v\n", o.path, err)
		} else {
			file = f
			o.out = f
		}
	}
	base.SetOutput(o.out)

	if o.json {
		base.SetFormatter(&logrus.JSONFormatter{
			TimestampFormat: "2006-01-02 15:04:05",
			FieldMap: logrus.FieldMap{
				logrus.FieldKeyTime: "timestamp",
				logrus.FieldKeyMsg:  "message",
			},
		})
	} else {
		base.SetFormatter(&logrus.TextFormatter{
			DisableColors:   true,
			FullTimestamp:   true,
			TimestampFormat: "2006-01-02 15:04:05",
		})
	}

	return &Logger{
		entry: logrus.NewEntry(base),
		file:  file,
	}
}

// Configure replaces the package-level logger.
func Configure(opts ...Option) {
	logger = NewLogger(opts...)
}

// Close releases the log file, if the global logger owns one. Later
// messages are discarded.
func Close() error {
	if logger.file != nil {
		logger.entry.Logger.SetOutput(io.Discard)
		err := logger.file.Close()
		logger.file = nil
		return err
	}
	return nil
}

// SetDebug turns debug-level output on or off for every logger.
func SetDebug(debug bool) {
	isDebug = debug
}

// With returns a child logger carrying the given fields.
func (l *Logger) With(fields ...Field) *Logger {
	data := make(logrus.Fields, len(fields))
	for _, f := range fields {
		data[f.Key] = f.Value
	}
	return &Logger{entry: l.entry.WithFields(data), file: l.file}
}

// WithError attaches err along with the kind and path/param details of
// treedit's typed errors.
func (l *Logger) WithError(err error) *Logger {
	if err == nil {
		return l.With(F("error", "<nil>"))
	}

	fields := []Field{
		F("error", err.Error()),
		F("error_kind", errors.KindOf(err).String()),
	}

	var fileErr *errors.FileError
	if errors.As(err, &fileErr) && fileErr.Path() != "" {
		fields = append(fields, F("path", fileErr.Path()))
	}
	var configErr *errors.ConfigError
	if errors.As(err, &configErr) && configErr.Param() != "" {
		fields = append(fields, F("param", configErr.Param()))
	}
	var langErr *errors.LanguageError
	if errors.As(err, &langErr) {
		fields = append(fields, F("language", langErr.Language()))
	}

	return l.With(fields...)
}

func (l *Logger) Info(msg string) {
	l.entry.Info(msg)
}

func (l *Logger) Infof(format string, args ...interface{}) {
	l.entry.Infof(format, args...)
}

func (l *Logger) Warn(msg string) {
	l.entry.Warn(msg)
}

func (l *Logger) Warnf(format string, args ...interface{}) {
	l.entry.Warnf(format, args...)
}

func (l *Logger) Error(msg string) {
	l.entry.Error(msg)
}

func (l *Logger) Errorf(format string, args ...interface{}) {
	l.entry.Errorf(format, args...)
}

// Debug logs only when SetDebug(true) has been called.
func (l *Logger) Debug(msg string) {
	if isDebug {
		l.entry.Debug(msg)
	}
}

// Debugf logs a formatted message only in debug mode.
func (l *Logger) Debugf(format string, args ...interface{}) {
	if isDebug {
		l.entry.Debugf(format, args...)
	}
}

// LogWithFields starts an entry on the global logger.
func LogWithFields(fields ...Field) *Logger {
	return logger.With(fields...)
}

// LogWithError starts an entry on the global logger describing err.
func LogWithError(err error) *Logger {
	return logger.WithError(err)
}

// LogError is shorthand for LogWithError(err).Error(msg).
func LogError(err error, msg string) {
	logger.WithError(err).Error(msg)
}

func Info(msg string) {
	logger.Info(msg)
}

func Infof(format string, args ...interface{}) {
	logger.Infof(format, args...)
}

func Warn(msg string) {
	logger.Warn(msg)
}

func Warnf(format string, args ...interface{}) {
	logger.Warnf(format, args...)
}

func Error(msg string) {
	logger.Error(msg)
}

func Errorf(format string, args ...interface{}) {
	logger.Errorf(format, args...)
}

func Debug(msg string) {
	logger.Debug(msg)
}

func Debugf(format string, args ...interface{}) {
	logger.Debugf(format, args...)
}

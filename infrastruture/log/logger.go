// Package log provides the labeled, ANSI-colored logger injected into
// every service.
package log

import (
	"errors"
	"io"
	stdlog "log"
)

const (
	colorReset   = "\033[0m"
	infoColor    = "\033[32m"
	warningColor = "\033[33m"
	errorColor   = "\033[31m"
)

// Logger writes leveled log lines labeled with a colored prefix.
type Logger struct {
	prefix string
	color  string
	out    *stdlog.Logger
}

// New creates a Logger that labels every line with prefix in the given
// ANSI color.
func New(prefix, color string, out io.Writer) (*Logger, error) {
	if prefix == "" {
		return nil, errors.New("empty logger prefix")
	}
	if out == nil {
		return nil, errors.New("nil logger output")
	}

	return &Logger{
		prefix: prefix,
		color:  color,
		out:    stdlog.New(out, "", stdlog.LstdFlags),
	}, nil
}

// Info logs an informational message.
func (l *Logger) Info(msg string) {
	l.out.Printf("%s[%s]%s %s[INFO]%s %s", l.color, l.prefix, colorReset, infoColor, colorReset, msg)
}

// Warning logs a recoverable problem.
func (l *Logger) Warning(msg string) {
	l.out.Printf("%s[%s]%s %s[WARNING]%s %s", l.color, l.prefix, colorReset, warningColor, colorReset, msg)
}

// Error logs a failure.
func (l *Logger) Error(msg string) {
	l.out.Printf("%s[%s]%s %s[ERROR]%s %s", l.color, l.prefix, colorReset, errorColor, colorReset, msg)
}

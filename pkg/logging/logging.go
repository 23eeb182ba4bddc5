// Package logging builds the zerolog logger used by the editor. The TUI owns
// the terminal, so logs go to a file or an in-memory buffer, never stdout.
package logging

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog"
)

const permission = 0o664

// Builder collects logger settings.
type Builder struct {
	writer io.Writer
	path   string
	level  string
}

// Log is a built logger together with the file backing it, if any.
type Log struct {
	Logger zerolog.Logger
	file   *os.File
}

// New starts a Builder. Without a path or buffer the logger discards output.
func New() *Builder {
	return &Builder{}
}

// FromPath appends log lines to the file at path.
func (b *Builder) FromPath(path string) *Builder {
	b.path = path
	return b
}

// FromBuffer writes log lines to w.
func (b *Builder) FromBuffer(w io.Writer) *Builder {
	b.writer = w
	return b
}

// WithLevel sets the minimum level by name ("debug", "info", ...).
func (b *Builder) WithLevel(level string) *Builder {
	b.level = level
	return b
}

// Make opens the destination and returns the logger.
func (b *Builder) Make() (*Log, error) {
	l := &Log{}
	w := b.writer
	if b.path != "" {
		if dir := filepath.Dir(b.path); dir != "" {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return nil, fmt.Errorf("logging: create log dir: %w", err)
			}
		}
		f, err := os.OpenFile(b.path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, permission)
		if err != nil {
			return nil, fmt.Errorf("logging: open %s: %w", b.path, err)
		}
		l.file = f
		w = zerolog.SyncWriter(f)
	}
	if w == nil {
		l.Logger = zerolog.Nop()
		return l, nil
	}

	level := zerolog.InfoLevel
	if b.level != "" {
		parsed, err := zerolog.ParseLevel(b.level)
		if err != nil {
			l.Close()
			return nil, fmt.Errorf("logging: %w", err)
		}
		level = parsed
	}
	l.Logger = zerolog.New(w).Level(level).With().Timestamp().Logger()
	return l, nil
}

// Close releases the log file.
func (l *Log) Close() error {
	if l == nil || l.file == nil {
		return nil
	}
	err := l.file.Close()
	l.file = nil
	return err
}

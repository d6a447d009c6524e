// Package logging builds the process logger. The terminal UI owns stdout and
// stderr, so logs go to a file or nowhere.
package logging

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/abhisek/wellquiz/internal/config"
)

type nopCloser struct{}

func (nopCloser) Close() error { return nil }

// New returns a JSON logger writing to path at the given level. An empty
// path yields a logger that discards everything. The returned Closer must
// be closed on exit.
func New(path, level string) (*slog.Logger, io.Closer, error) {
	lvl, err := config.ParseLevel(level)
	if err != nil {
		return nil, nil, err
	}
	if path == "" {
		return slog.New(slog.DiscardHandler), nopCloser{}, nil
	}

	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, nil, fmt.Errorf("create log dir: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return nil, nil, fmt.Errorf("open log file: %w", err)
	}

	h := slog.NewJSONHandler(f, &slog.HandlerOptions{Level: lvl, AddSource: lvl == slog.LevelDebug})
	return slog.New(h).With(slog.String("service", "wellquiz")), f, nil
}

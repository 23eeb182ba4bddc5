// Package edit runs the interactive block editor.
package edit

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/mattn/go-isatty"

	"tableflip.dev/blocks/pkg/config"
	"tableflip.dev/blocks/pkg/logging"
	"tableflip.dev/blocks/pkg/tui/app"
)

// ErrNotTerminal is returned when stdout cannot host the editor.
var ErrNotTerminal = errors.New("edit: stdout is not a terminal")

// Edit opens a fresh page in the terminal editor.
type Edit struct {
	Config config.Config

	// Run replaces the program loop; tests use it to skip the terminal.
	Run func(app.Options) error
	// IsTerminal replaces the stdout terminal check.
	IsTerminal func() bool
}

// Do checks the terminal, builds the logger and runs the editor until the
// user quits.
func (e *Edit) Do(ctx context.Context) error {
	isTerm := e.IsTerminal
	if isTerm == nil {
		isTerm = stdoutIsTerminal
	}
	if !isTerm() {
		return ErrNotTerminal
	}

	log, err := logging.New().
		FromPath(e.Config.LogFile).
		WithLevel(e.Config.LogLevel).
		Make()
	if err != nil {
		return err
	}
	defer log.Close()

	log.Logger.Info().
		Bool("debug", e.Config.Debug).
		Bool("mouse", e.Config.Mouse).
		Msg("editor starting")

	run := e.Run
	if run == nil {
		run = app.Run
	}
	if err := run(app.Options{
		Logger:   &log.Logger,
		Debug:    e.Config.Debug,
		Mouse:    e.Config.Mouse,
		MenuRows: e.Config.MenuRows,
	}); err != nil {
		log.Logger.Error().Err(err).Msg("editor stopped")
		return fmt.Errorf("edit: %w", err)
	}
	log.Logger.Info().Msg("editor closed")
	return nil
}

func stdoutIsTerminal() bool {
	fd := os.Stdout.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

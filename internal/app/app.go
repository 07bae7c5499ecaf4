// Package app wires configuration, logging, audio and the UI together.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"slidelord/internal/audio"
	"slidelord/internal/commands"
	"slidelord/internal/config"
	"slidelord/internal/logging"
	"slidelord/internal/ui"
)

// Options come from the command line.
type Options struct {
	ConfigPath string
	LogDir     string
	Debug      bool
}

type App struct {
	opts   Options
	log    *slog.Logger
	closer io.Closer
	ui     *ui.TUI
}

// New loads the configuration and builds the UI.
func New(opts Options) (*App, error) {
	logger, closer, err := logging.Open(opts.LogDir, opts.Debug)
	if err != nil {
		return nil, err
	}

	cfg, err := config.Load(opts.ConfigPath)
	if err != nil {
		closer.Close()
		return nil, err
	}
	logger.Info("starting", "config", opts.ConfigPath, "theme", cfg.Theme)

	commander := commands.NewCommander(audio.NewPlayer(logger), logger)
	model, err := ui.NewModel(cfg, commander, logger)
	if err != nil {
		closer.Close()
		return nil, fmt.Errorf("build ui: %w", err)
	}

	return &App{
		opts:   opts,
		log:    logger,
		closer: closer,
		ui:     ui.New(model),
	}, nil
}

// Run blocks until the user quits. The configuration file is watched for
// the whole run.
func (a *App) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	go func() {
		err := config.Watch(ctx, a.opts.ConfigPath, a.log, func(cfg config.Config) {
			a.ui.Send(ui.ConfigMsg{Config: cfg})
		})
		if err != nil {
			a.log.Warn("config hot reload disabled", "err", err)
		}
	}()

	if err := a.ui.Start(); err != nil {
		return fmt.Errorf("run ui: %w", err)
	}
	return nil
}

// Close flushes the log file.
func (a *App) Close() error {
	return a.closer.Close()
}

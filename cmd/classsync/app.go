package main

import (
	"context"
	"fmt"
	"time"

	"classsync/internal/client"
	"classsync/internal/clientconfig"
	"classsync/internal/devicestore"
	"classsync/internal/logging"
	"classsync/internal/theme"
	"classsync/internal/workspace"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// newBackend is swapped out by tests.
var newBackend = func(cfg *clientconfig.Config) workspace.Backend {
	return client.New(cfg.ServerURL, cfg.RequestTimeout)
}

type app struct {
	cfg    *clientconfig.Config
	ws     *workspace.Workspace
	logger *logging.Logger
	now    func() time.Time
}

func openApp(ctx context.Context) (*app, error) {
	cfg, err := clientconfig.Load(flagConfig)
	if err != nil {
		return nil, err
	}

	level := cfg.LogLevel
	if flagVerbose {
		level = "debug"
	}
	logger, err := logging.NewForLevel(level)
	if err != nil {
		return nil, err
	}

	store, err := devicestore.NewFile(cfg.DeviceFile())
	if err != nil {
		return nil, fmt.Errorf("open device store: %w", err)
	}

	var backend workspace.Backend
	if cfg.Configured() {
		backend = newBackend(cfg)
	}
	ws := workspace.New(backend, store, workspace.Config{
		Policy:     cfg.Policy(),
		UndoWindow: cfg.UndoWindow,
		Logger:     logger,
	})

	if err := ws.Start(ctx); err != nil {
		return nil, err
	}
	return &app{cfg: cfg, ws: ws, logger: logger, now: time.Now}, nil
}

func (a *app) close(ctx context.Context) {
	if err := a.ws.Close(ctx); err != nil {
		a.logger.Warn(ctx, "failed to close workspace", zap.Error(err))
	}
	_ = a.logger.Sync()
}

func (a *app) theme() theme.Theme {
	p := a.ws.Prefs()
	return theme.New(p.DarkMode(), p.Accent(), p.ClassColors())
}

type runFunc func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error

// withApp opens the workspace in whatever state it is in.
func withApp(fn runFunc) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		a, err := openApp(ctx)
		if err != nil {
			return err
		}
		defer a.close(ctx)
		return fn(ctx, cmd, a, args)
	}
}

// withSession is withApp for commands that need a signed in, unbanned user.
func withSession(fn runFunc) func(*cobra.Command, []string) error {
	return withApp(func(ctx context.Context, cmd *cobra.Command, a *app, args []string) error {
		switch a.ws.State() {
		case workspace.StateAuth:
			return workspace.ErrNotSignedIn
		case workspace.StateBanned:
			return workspace.ErrBanned
		}
		return fn(ctx, cmd, a, args)
	})
}

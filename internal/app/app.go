// Package app implements the application layer for chore.
package app

import (
	"context"

	"github.com/chorelabs/chore/internal/core/domain"
	"github.com/chorelabs/chore/internal/core/ports"
	"github.com/chorelabs/chore/internal/engine/runner"
	"go.trai.ch/zerr"
)

// DefaultConfigPath is the chorefile looked up when none is given.
const DefaultConfigPath = "chorefile.yaml"

// App represents the main application logic: it loads task definitions into
// the engine and dispatches resolutions.
type App struct {
	source     ports.TaskSource
	runner     *runner.Runner
	logger     ports.Logger
	configPath string
}

// New creates a new App instance.
func New(source ports.TaskSource, r *runner.Runner, log ports.Logger) *App {
	return &App{
		source:     source,
		runner:     r,
		logger:     log,
		configPath: DefaultConfigPath,
	}
}

// SetConfigPath overrides the chorefile location.
func (a *App) SetConfigPath(path string) {
	if path != "" {
		a.configPath = path
	}
}

// Run loads the chorefile and resolves the target task with the given
// options. With direct set, only the task's own runnable executes and its
// declared dependencies are skipped.
func (a *App) Run(ctx context.Context, target string, opts domain.Options, direct bool) (any, error) {
	if err := a.load(); err != nil {
		return nil, err
	}
	if direct {
		return a.runner.RunDirect(ctx, target, opts)
	}
	return a.runner.Resolve(ctx, target, opts)
}

// RunAll loads the chorefile and resolves every target concurrently,
// returning results in target order.
func (a *App) RunAll(ctx context.Context, targets []string, opts domain.Options) ([]any, error) {
	if err := a.load(); err != nil {
		return nil, err
	}
	return a.runner.ResolveAll(ctx, targets, opts)
}

// List loads the chorefile and returns the registered task names.
func (a *App) List() ([]string, error) {
	if err := a.load(); err != nil {
		return nil, err
	}
	return a.runner.Names(), nil
}

func (a *App) load() error {
	regs, err := a.source.Load(a.configPath)
	if err != nil {
		return zerr.Wrap(err, "failed to load task definitions")
	}
	if err := a.runner.RegisterMany(regs); err != nil {
		return zerr.Wrap(err, "failed to register tasks")
	}
	return nil
}

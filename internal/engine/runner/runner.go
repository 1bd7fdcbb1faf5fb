// Package runner implements the task registry and the dependency
// resolution engine.
package runner

import (
	"context"
	"fmt"
	"slices"
	"strings"
	"sync"

	"github.com/chorelabs/chore/internal/core/domain"
	"github.com/chorelabs/chore/internal/core/ports"
	"go.trai.ch/zerr"
)

// Runner holds the name to task mapping and executes resolutions against it.
// It implements domain.Engine and is handed to every runnable it invokes.
//
// Resolution is plain recursion: no caching, no global execution lock, no
// snapshot of the registry at call start. A lookup always sees whatever
// entry is current at the moment it happens, and a runnable may re-enter
// the engine through its handle.
type Runner struct {
	mu    sync.RWMutex
	tasks map[string]domain.Registration
	order []string

	cycleGuard bool
	tracer     ports.Tracer
}

// Option configures a Runner.
type Option func(*Runner)

// WithCycleGuard makes every resolution track the task names on its current
// path and fail fast with domain.ErrCyclicDependency instead of recursing
// without bound. Off by default, where a cyclic declaration recurses until
// the stack runs out.
func WithCycleGuard() Option {
	return func(r *Runner) {
		r.cycleGuard = true
	}
}

// WithTracer records every runnable invocation on the given tracer.
func WithTracer(t ports.Tracer) Option {
	return func(r *Runner) {
		r.tracer = t
	}
}

// New creates an empty Runner.
func New(opts ...Option) *Runner {
	r := &Runner{
		tasks:  make(map[string]domain.Registration),
		tracer: noopTracer{},
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

var _ domain.Engine = (*Runner)(nil)

// CanRun reports whether a task is registered under name.
func (r *Runner) CanRun(name string) bool {
	r.mu.RLock()
	defer r.mu.RUnlock()
	_, ok := r.tasks[name]
	return ok
}

// Names returns a snapshot of all registered names in registration order.
// Re-registering a name keeps its original slot.
func (r *Runner) Names() []string {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return slices.Clone(r.order)
}

// Resolve runs the named task together with its transitive dependency chain
// and returns the task's own result.
//
// Dependencies are processed strictly sequentially in declaration order; a
// dependency fully completes before the next one starts. Each dependency
// resolves with the inherited options shallowly merged with its own
// override, in a fresh map, so siblings and ancestors never observe the
// override. The first failure aborts the whole resolution and propagates
// unwrapped. A task reachable through several paths runs once per path.
func (r *Runner) Resolve(ctx context.Context, name string, opts domain.Options) (any, error) {
	return r.resolve(ctx, name, opts, nil)
}

func (r *Runner) resolve(ctx context.Context, name string, opts domain.Options, path []string) (any, error) {
	reg, ok := r.lookup(name)
	if !ok {
		return nil, zerr.With(domain.ErrTaskNotFound, "task", name)
	}

	if r.cycleGuard {
		if slices.Contains(path, name) {
			cycle := strings.Join(append(path, name), " -> ")
			return nil, zerr.With(domain.ErrCyclicDependency, "cycle", cycle)
		}
		path = append(path, name)
	}

	results := make([]any, 0, len(reg.Dependencies))
	for _, dep := range reg.Dependencies {
		if !r.CanRun(dep.Task) {
			return nil, zerr.With(zerr.With(domain.ErrMissingDependency, "task", name), "dependency", dep.Task)
		}
		value, err := r.resolve(ctx, dep.Task, opts.Merge(dep.Options), path)
		if err != nil {
			return nil, err
		}
		results = append(results, value)
	}

	return r.invoke(ctx, name, reg, opts, results)
}

// RunDirect runs only the named task's runnable, with an empty results
// slice. Declared dependencies are never consulted.
func (r *Runner) RunDirect(ctx context.Context, name string, opts domain.Options) (any, error) {
	reg, ok := r.lookup(name)
	if !ok {
		return nil, zerr.With(domain.ErrTaskNotFound, "task", name)
	}
	return r.invoke(ctx, name, reg, opts, []any{})
}

func (r *Runner) lookup(name string) (domain.Registration, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	reg, ok := r.tasks[name]
	return reg, ok
}

// invoke runs a single runnable under a tracer span. A panic inside the
// runnable is recovered into an error so it travels the same failure
// channel as a returned one.
func (r *Runner) invoke(ctx context.Context, name string, reg domain.Registration, opts domain.Options, results []any) (value any, err error) {
	ctx, span := r.tracer.Start(ctx, name)
	defer func() {
		if rec := recover(); rec != nil {
			err = zerr.With(zerr.New(fmt.Sprintf("task panicked: %v", rec)), "task", name)
		}
		if err != nil {
			span.RecordError(err)
		}
		span.End()
	}()

	value, err = reg.Run(ctx, opts, r, results)
	return value, err
}

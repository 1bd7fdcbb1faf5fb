package runner_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/chorelabs/chore/internal/core/domain"
	"github.com/chorelabs/chore/internal/engine/runner"
)

// recordingTask registers a task that appends its name to calls and returns
// result.
func recordingTask(t *testing.T, r *runner.Runner, calls *[]string, name string, result any, deps ...domain.DependencySpec) {
	t.Helper()
	err := r.RegisterFunc(name, func(_ context.Context, _ domain.Options, _ domain.Engine, _ []any) (any, error) {
		*calls = append(*calls, name)
		return result, nil
	}, deps...)
	require.NoError(t, err)
}

func TestResolve_UnknownTask(t *testing.T) {
	r := runner.New()

	var calls []string
	recordingTask(t, r, &calls, "present", nil)

	_, err := r.Resolve(context.Background(), "missing", domain.Options{})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
	assert.Empty(t, calls)
}

func TestResolve_NoDependencies(t *testing.T) {
	r := runner.New()

	invocations := 0
	var gotDeps []any
	require.NoError(t, r.RegisterFunc("solo", func(_ context.Context, _ domain.Options, _ domain.Engine, deps []any) (any, error) {
		invocations++
		gotDeps = deps
		return "done", nil
	}))

	result, err := r.Resolve(context.Background(), "solo", domain.Options{})
	require.NoError(t, err)
	assert.Equal(t, "done", result)
	assert.Equal(t, 1, invocations)
	assert.Empty(t, gotDeps)
}

func TestResolve_DependencyOrderAndResults(t *testing.T) {
	r := runner.New()

	var calls []string
	recordingTask(t, r, &calls, "B", "resultOfB")
	recordingTask(t, r, &calls, "C", "resultOfC")

	var gotResults []any
	require.NoError(t, r.RegisterFunc("A", func(_ context.Context, _ domain.Options, _ domain.Engine, deps []any) (any, error) {
		calls = append(calls, "A")
		gotResults = deps
		return "resultOfA", nil
	}, domain.Dep("B"), domain.Dep("C")))

	result, err := r.Resolve(context.Background(), "A", domain.Options{"x": 1})
	require.NoError(t, err)
	assert.Equal(t, "resultOfA", result)
	assert.Equal(t, []string{"B", "C", "A"}, calls)
	assert.Equal(t, []any{"resultOfB", "resultOfC"}, gotResults)
}

func TestResolve_OptionOverrideScoping(t *testing.T) {
	r := runner.New()

	seen := map[string]domain.Options{}
	record := func(name string) domain.RunFunc {
		return func(_ context.Context, opts domain.Options, _ domain.Engine, _ []any) (any, error) {
			seen[name] = opts
			return nil, nil
		}
	}

	require.NoError(t, r.RegisterFunc("B", record("B")))
	require.NoError(t, r.RegisterFunc("C", record("C")))
	require.NoError(t, r.RegisterFunc("A", record("A"),
		domain.DepWith("B", domain.Options{"age": 34}),
		domain.Dep("C"),
	))

	parent := domain.Options{"message": "hi"}
	_, err := r.Resolve(context.Background(), "A", parent)
	require.NoError(t, err)

	assert.Equal(t, domain.Options{"message": "hi", "age": 34}, seen["B"])
	assert.Equal(t, domain.Options{"message": "hi"}, seen["C"], "override must not leak to siblings")
	assert.Equal(t, domain.Options{"message": "hi"}, seen["A"], "override must not leak back to the ancestor")
	assert.Equal(t, domain.Options{"message": "hi"}, parent, "caller's options must stay untouched")
}

func TestResolve_FailFast(t *testing.T) {
	r := runner.New()

	errBoom := errors.New("boom")
	var calls []string

	require.NoError(t, r.RegisterFunc("B", func(_ context.Context, _ domain.Options, _ domain.Engine, _ []any) (any, error) {
		calls = append(calls, "B")
		return nil, errBoom
	}))
	recordingTask(t, r, &calls, "C", nil)
	recordingTask(t, r, &calls, "A", nil, domain.Dep("B"), domain.Dep("C"))

	_, err := r.Resolve(context.Background(), "A", domain.Options{})
	require.ErrorIs(t, err, errBoom, "the dependency's error must propagate unwrapped")
	assert.Equal(t, []string{"B"}, calls, "later siblings and the parent must never run")
}

func TestResolve_MissingDependency(t *testing.T) {
	r := runner.New()

	var calls []string
	recordingTask(t, r, &calls, "A", nil, domain.Dep("ghost"), domain.Dep("B"))
	recordingTask(t, r, &calls, "B", nil)

	_, err := r.Resolve(context.Background(), "A", domain.Options{})
	require.ErrorIs(t, err, domain.ErrMissingDependency)
	assert.Empty(t, calls, "no runnable may run once a dependency is missing")
}

func TestResolve_DiamondRunsTwice(t *testing.T) {
	r := runner.New()

	var dOptions []domain.Options
	require.NoError(t, r.RegisterFunc("D", func(_ context.Context, opts domain.Options, _ domain.Engine, _ []any) (any, error) {
		dOptions = append(dOptions, opts)
		return "d", nil
	}))

	passthrough := func(_ context.Context, _ domain.Options, _ domain.Engine, deps []any) (any, error) {
		return deps[0], nil
	}
	require.NoError(t, r.RegisterFunc("B", passthrough, domain.DepWith("D", domain.Options{"from": "B"})))
	require.NoError(t, r.RegisterFunc("C", passthrough, domain.DepWith("D", domain.Options{"from": "C"})))
	require.NoError(t, r.RegisterFunc("A", passthrough, domain.Dep("B"), domain.Dep("C")))

	_, err := r.Resolve(context.Background(), "A", domain.Options{})
	require.NoError(t, err)

	require.Len(t, dOptions, 2, "a diamond dependency resolves once per path")
	assert.Equal(t, "B", dOptions[0]["from"])
	assert.Equal(t, "C", dOptions[1]["from"])
}

func TestResolve_Reentrant(t *testing.T) {
	r := runner.New()

	require.NoError(t, r.RegisterFunc("inner", func(_ context.Context, opts domain.Options, _ domain.Engine, _ []any) (any, error) {
		return opts["n"], nil
	}))
	require.NoError(t, r.RegisterFunc("outer", func(ctx context.Context, opts domain.Options, eng domain.Engine, _ []any) (any, error) {
		return eng.Resolve(ctx, "inner", opts.Merge(domain.Options{"n": 42}))
	}))

	result, err := r.Resolve(context.Background(), "outer", domain.Options{})
	require.NoError(t, err)
	assert.Equal(t, 42, result)
}

func TestResolve_PanicBecomesError(t *testing.T) {
	r := runner.New()

	require.NoError(t, r.RegisterFunc("explode", func(_ context.Context, _ domain.Options, _ domain.Engine, _ []any) (any, error) {
		panic("kaboom")
	}))

	_, err := r.Resolve(context.Background(), "explode", domain.Options{})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "kaboom")
}

func TestRunDirect(t *testing.T) {
	r := runner.New()

	var calls []string
	recordingTask(t, r, &calls, "B", "b")

	var gotDeps []any
	require.NoError(t, r.RegisterFunc("A", func(_ context.Context, _ domain.Options, _ domain.Engine, deps []any) (any, error) {
		calls = append(calls, "A")
		gotDeps = deps
		return "a", nil
	}, domain.Dep("B")))

	result, err := r.RunDirect(context.Background(), "A", domain.Options{"message": "hi"})
	require.NoError(t, err)
	assert.Equal(t, "a", result)
	assert.Equal(t, []string{"A"}, calls, "declared dependencies must not run")
	assert.Empty(t, gotDeps)

	_, err = r.RunDirect(context.Background(), "missing", domain.Options{})
	require.ErrorIs(t, err, domain.ErrTaskNotFound)
}

func TestCycleGuard(t *testing.T) {
	r := runner.New(runner.WithCycleGuard())

	noop := func(_ context.Context, _ domain.Options, _ domain.Engine, _ []any) (any, error) {
		return nil, nil
	}
	require.NoError(t, r.RegisterFunc("a", noop, domain.Dep("b")))
	require.NoError(t, r.RegisterFunc("b", noop, domain.Dep("a")))

	_, err := r.Resolve(context.Background(), "a", domain.Options{})
	require.ErrorIs(t, err, domain.ErrCyclicDependency)
}

func TestCycleGuard_AllowsDiamond(t *testing.T) {
	r := runner.New(runner.WithCycleGuard())

	invocations := 0
	require.NoError(t, r.RegisterFunc("d", func(_ context.Context, _ domain.Options, _ domain.Engine, _ []any) (any, error) {
		invocations++
		return nil, nil
	}))

	noop := func(_ context.Context, _ domain.Options, _ domain.Engine, _ []any) (any, error) {
		return nil, nil
	}
	require.NoError(t, r.RegisterFunc("b", noop, domain.Dep("d")))
	require.NoError(t, r.RegisterFunc("c", noop, domain.Dep("d")))
	require.NoError(t, r.RegisterFunc("a", noop, domain.Dep("b"), domain.Dep("c")))

	_, err := r.Resolve(context.Background(), "a", domain.Options{})
	require.NoError(t, err, "the guard tracks the current path, not all visited tasks")
	assert.Equal(t, 2, invocations)
}

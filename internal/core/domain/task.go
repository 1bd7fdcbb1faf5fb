// Package domain contains the core model for tasks, their dependency
// declarations, and the option mappings handed to runnables.
package domain

import "context"

// RunFunc is the signature every task runnable implements. It receives the
// option mapping for this invocation, the engine handle for re-entrant
// resolutions, and the resolved dependency values in declaration order.
type RunFunc func(ctx context.Context, opts Options, eng Engine, deps []any) (any, error)

// Engine is the handle passed to every runnable. It is implemented by the
// runner and allows a task body to query the registry or trigger further
// resolutions while it is executing.
type Engine interface {
	// Resolve runs the named task together with its transitive dependency
	// chain and returns the task's own result.
	Resolve(ctx context.Context, name string, opts Options) (any, error)

	// RunDirect runs only the named task's runnable. Declared dependencies
	// are never consulted.
	RunDirect(ctx context.Context, name string, opts Options) (any, error)

	// CanRun reports whether a task is registered under name.
	CanRun(name string) bool

	// Names returns a snapshot of all registered names in registration order.
	Names() []string
}

// DependencySpec is one edge in a task's dependency declaration: the name of
// another task, plus an optional option override that is visible only while
// that dependency and its own descendants resolve.
type DependencySpec struct {
	Task    string
	Options Options
}

// Dep declares a dependency on a task by name, with no option override.
func Dep(name string) DependencySpec {
	return DependencySpec{Task: name}
}

// DepWith declares a dependency whose resolution subtree sees opts shallowly
// merged on top of the inherited options.
func DepWith(name string, opts Options) DependencySpec {
	return DependencySpec{Task: name, Options: opts}
}

// Registration is the canonical registration shape. Name may be left empty
// when the runnable is a named function; the registry derives it from the
// function's symbol. Dependencies are ordered: declaration order fixes both
// execution sequence and result position.
type Registration struct {
	Name         string
	Run          RunFunc
	Dependencies []DependencySpec
}

// TaskOf builds a Registration whose name is derived from fn's symbol at
// registration time.
func TaskOf(fn RunFunc, deps ...DependencySpec) Registration {
	return Registration{Run: fn, Dependencies: deps}
}

// NamedTask builds a Registration with an explicit name.
func NamedTask(name string, fn RunFunc, deps ...DependencySpec) Registration {
	return Registration{Name: name, Run: fn, Dependencies: deps}
}

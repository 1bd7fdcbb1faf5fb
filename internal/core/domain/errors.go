package domain

import "go.trai.ch/zerr"

var (
	// ErrNotRunnable is returned at registration time when the registration
	// carries no runnable.
	ErrNotRunnable = zerr.New("task has no runnable")

	// ErrUnnamedTask is returned at registration time when no name was
	// supplied and none can be derived from the runnable's symbol.
	ErrUnnamedTask = zerr.New("task name cannot be derived")

	// ErrTaskNotFound is returned when the requested task is not registered.
	ErrTaskNotFound = zerr.New("task not found")

	// ErrMissingDependency is returned when a task's declared dependency is
	// not registered at resolution time. It carries the dependent task's
	// name and the missing name as metadata.
	ErrMissingDependency = zerr.New("missing dependency")

	// ErrCyclicDependency is returned by resolutions running with the cycle
	// guard enabled when the dependency walk revisits a task already on the
	// current path.
	ErrCyclicDependency = zerr.New("cyclic dependency detected")
)

package runner

import (
	"reflect"
	"regexp"
	"runtime"
	"slices"
	"strings"

	"github.com/chorelabs/chore/internal/core/domain"
	"go.trai.ch/zerr"
)

// anonFuncName matches the trailing symbol segment the compiler assigns to
// function literals, e.g. "func1", or the bare index of a nested literal.
var anonFuncName = regexp.MustCompile(`^(func\d+|\d+)$`)

// Register adds a task under reg.Name, deriving the name from the
// runnable's function symbol when none is given. Registering an existing
// name replaces the previous entry atomically.
func (r *Runner) Register(reg domain.Registration) error {
	if reg.Run == nil {
		return zerr.With(domain.ErrNotRunnable, "task", reg.Name)
	}

	name := reg.Name
	if name == "" {
		derived, ok := deriveName(reg.Run)
		if !ok {
			return domain.ErrUnnamedTask
		}
		name = derived
		reg.Name = name
	}

	r.mu.Lock()
	defer r.mu.Unlock()
	if _, exists := r.tasks[name]; !exists {
		r.order = append(r.order, name)
	}
	r.tasks[name] = reg
	return nil
}

// RegisterFunc registers fn under an explicit name with the given
// dependency declarations.
func (r *Runner) RegisterFunc(name string, fn domain.RunFunc, deps ...domain.DependencySpec) error {
	return r.Register(domain.NamedTask(name, fn, deps...))
}

// RegisterMany registers every runnable entry of the collection. The map
// key is the task name unless the entry carries its own; entries without a
// runnable are skipped without error. Keys are processed in sorted order so
// the resulting registration order is deterministic.
func (r *Runner) RegisterMany(entries map[string]domain.Registration) error {
	keys := make([]string, 0, len(entries))
	for key := range entries {
		keys = append(keys, key)
	}
	slices.Sort(keys)

	for _, key := range keys {
		reg := entries[key]
		if reg.Run == nil {
			continue
		}
		if reg.Name == "" {
			reg.Name = key
		}
		if err := r.Register(reg); err != nil {
			return err
		}
	}
	return nil
}

// deriveName extracts a task name from the runnable's function symbol.
// Function literals have no usable symbol and report false.
func deriveName(fn domain.RunFunc) (string, bool) {
	pc := reflect.ValueOf(fn).Pointer()
	sym := runtime.FuncForPC(pc)
	if sym == nil {
		return "", false
	}

	name := sym.Name()
	name = strings.TrimSuffix(name, "-fm") // method value wrappers
	if idx := strings.LastIndex(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	if name == "" || anonFuncName.MatchString(name) {
		return "", false
	}
	return name, true
}

// Package taskfile loads task registrations from a chorefile.yaml.
package taskfile

import (
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/chorelabs/chore/internal/core/domain"
	"github.com/chorelabs/chore/internal/core/ports"
	"go.trai.ch/zerr"
)

// Loader implements ports.TaskSource for YAML chorefiles. Every loaded task
// runs its command through the given CommandRunner and yields the command's
// captured stdout as its result value.
type Loader struct {
	runner ports.CommandRunner
}

// NewLoader creates a new Loader.
func NewLoader(runner ports.CommandRunner) *Loader {
	return &Loader{runner: runner}
}

// Load reads a chorefile from path and returns its registrations keyed by
// task name. Dependency names are not validated here: the engine reports a
// missing dependency when the task actually resolves.
func (l *Loader) Load(path string) (map[string]domain.Registration, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		return nil, zerr.Wrap(err, "failed to read chorefile")
	}

	var file Chorefile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse chorefile")
	}

	regs := make(map[string]domain.Registration, len(file.Tasks))
	for name, dto := range file.Tasks {
		deps := make([]domain.DependencySpec, len(dto.DependsOn))
		for i, dep := range dto.DependsOn {
			deps[i] = dep.Spec()
		}
		regs[name] = domain.Registration{
			Name:         name,
			Run:          l.commandRun(dto),
			Dependencies: deps,
		}
	}
	return regs, nil
}

// commandRun builds the runnable for a command task. Scalar option values
// are exported to the command as CHORE_OPT_<KEY> environment variables,
// layered under the task's own env block.
func (l *Loader) commandRun(dto TaskDTO) domain.RunFunc {
	return func(ctx context.Context, opts domain.Options, _ domain.Engine, _ []any) (any, error) {
		env := make(map[string]string, len(opts)+len(dto.Env))
		for key, value := range opts {
			switch value.(type) {
			case string, bool, int, int64, float64:
				env["CHORE_OPT_"+key] = fmt.Sprint(value)
			}
		}
		for key, value := range dto.Env {
			env[key] = value
		}
		return l.runner.Run(ctx, dto.Cmd, env)
	}
}

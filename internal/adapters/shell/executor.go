// Package shell provides the command runner adapter used by taskfile tasks.
package shell

import (
	"bytes"
	"context"
	"os"
	"os/exec"
	"strings"

	"github.com/chorelabs/chore/internal/core/ports"
	"go.trai.ch/zerr"
)

// Executor implements ports.CommandRunner using os/exec.
type Executor struct {
	logger ports.Logger
}

// NewExecutor creates a new Executor.
func NewExecutor(logger ports.Logger) *Executor {
	return &Executor{logger: logger}
}

// Run executes argv with env merged over the process environment. Standard
// output is captured and returned as the command's result; standard error
// is streamed line by line to the logger.
func (e *Executor) Run(ctx context.Context, argv []string, env map[string]string) (string, error) {
	if len(argv) == 0 {
		return "", nil
	}

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...) //nolint:gosec // user provided command
	cmd.Env = mergeEnvironment(os.Environ(), env)

	var stdout bytes.Buffer
	cmd.Stdout = &stdout
	cmd.Stderr = &logWriter{logger: e.logger}

	if err := cmd.Run(); err != nil {
		exitCode := -1
		if exitErr, ok := err.(*exec.ExitError); ok {
			exitCode = exitErr.ExitCode()
		}
		return "", zerr.With(zerr.Wrap(err, "command failed"), "exit_code", exitCode)
	}

	return strings.TrimRight(stdout.String(), "\n"), nil
}

type logWriter struct {
	logger ports.Logger
}

func (w *logWriter) Write(p []byte) (int, error) {
	msg := strings.TrimSuffix(string(p), "\n")
	for _, line := range strings.Split(msg, "\n") {
		if line != "" {
			w.logger.Info(line)
		}
	}
	return len(p), nil
}

// mergeEnvironment layers overrides on top of the base KEY=VALUE entries.
func mergeEnvironment(base []string, overrides map[string]string) []string {
	envMap := make(map[string]string, len(base)+len(overrides))
	for _, entry := range base {
		if k, v, ok := strings.Cut(entry, "="); ok {
			envMap[k] = v
		}
	}
	for k, v := range overrides {
		envMap[k] = v
	}

	result := make([]string, 0, len(envMap))
	for k, v := range envMap {
		result = append(result, k+"="+v)
	}
	return result
}

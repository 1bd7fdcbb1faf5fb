package ports

import "context"

// CommandRunner executes an external command on behalf of a task runnable.
//
//go:generate go run go.uber.org/mock/mockgen -source=command_runner.go -destination=mocks/mock_command_runner.go -package=mocks
type CommandRunner interface {
	// Run executes argv with env merged over the process environment and
	// returns the command's captured standard output.
	Run(ctx context.Context, argv []string, env map[string]string) (string, error)
}

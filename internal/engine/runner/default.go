package runner

import "sync"

var (
	defaultMu     sync.Mutex
	defaultRunner *Runner
)

// Default returns the process-wide shared Runner, creating it on first use.
// It is a convenience for callers that want one registry for the process
// lifetime; explicitly constructed instances remain the default choice.
func Default() *Runner {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	if defaultRunner == nil {
		defaultRunner = New()
	}
	return defaultRunner
}

// ResetDefault discards the shared Runner so the next Default call starts
// from an empty registry. Intended for test isolation.
func ResetDefault() {
	defaultMu.Lock()
	defer defaultMu.Unlock()
	defaultRunner = nil
}

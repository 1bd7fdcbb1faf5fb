// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "github.com/chorelabs/chore/internal/adapters/logger"
	_ "github.com/chorelabs/chore/internal/adapters/shell"
	_ "github.com/chorelabs/chore/internal/adapters/taskfile"
	_ "github.com/chorelabs/chore/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "github.com/chorelabs/chore/internal/app"
	_ "github.com/chorelabs/chore/internal/engine/runner"
)

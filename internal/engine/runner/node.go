package runner

import (
	"context"

	"github.com/chorelabs/chore/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"github.com/chorelabs/chore/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the runner Graft node.
const NodeID graft.ID = "engine.runner"

func init() {
	graft.Register(graft.Node[*Runner]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*Runner, error) {
			tracer, err := graft.Dep[ports.Tracer](ctx)
			if err != nil {
				return nil, err
			}
			return New(WithCycleGuard(), WithTracer(tracer)), nil
		},
	})
}

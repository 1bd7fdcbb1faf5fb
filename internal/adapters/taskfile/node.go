package taskfile

import (
	"context"

	"github.com/chorelabs/chore/internal/adapters/shell"
	"github.com/chorelabs/chore/internal/core/ports"
	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the taskfile loader Graft node.
const NodeID graft.ID = "adapter.task_source"

func init() {
	graft.Register(graft.Node[ports.TaskSource]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{shell.NodeID},
		Run: func(ctx context.Context) (ports.TaskSource, error) {
			runner, err := graft.Dep[ports.CommandRunner](ctx)
			if err != nil {
				return nil, err
			}
			return NewLoader(runner), nil
		},
	})
}

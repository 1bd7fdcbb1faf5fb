package runner

import (
	"context"

	"github.com/chorelabs/chore/internal/core/domain"
	"golang.org/x/sync/errgroup"
)

// ResolveAll resolves several root tasks concurrently and returns their
// results in the order the names were given. Each root still walks its own
// dependency chain strictly sequentially; only the roots fan out. The first
// failure cancels the group context and is returned.
//
// This is an explicit opt-in for independent roots. It deliberately does
// not change the sequential semantics of a single resolution.
func (r *Runner) ResolveAll(ctx context.Context, names []string, opts domain.Options) ([]any, error) {
	g, ctx := errgroup.WithContext(ctx)
	results := make([]any, len(names))

	for i, name := range names {
		g.Go(func() error {
			value, err := r.Resolve(ctx, name, opts)
			if err != nil {
				return err
			}
			results[i] = value
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	return results, nil
}

package runner

import (
	"context"

	"github.com/chorelabs/chore/internal/core/ports"
)

// noopTracer is the default tracer when none is configured.
type noopTracer struct{}

func (noopTracer) Start(ctx context.Context, _ string) (context.Context, ports.Span) {
	return ctx, noopSpan{}
}

type noopSpan struct{}

func (noopSpan) Write(p []byte) (int, error) { return len(p), nil }

func (noopSpan) End() {}

func (noopSpan) RecordError(error) {}

func (noopSpan) SetAttribute(string, any) {}

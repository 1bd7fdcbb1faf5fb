package ports

import (
	"context"
	"io"
)

//go:generate go run go.uber.org/mock/mockgen -source=tracer.go -destination=mocks/mock_tracer.go -package=mocks

// Tracer is the entry point for recording task invocations.
type Tracer interface {
	// Start begins recording a span for one task invocation.
	Start(ctx context.Context, name string) (context.Context, Span)
}

// Span represents one recorded task invocation.
type Span interface {
	io.Writer
	// End completes the span.
	End()
	// RecordError records a failure for the span.
	RecordError(err error)
	// SetAttribute adds a key-value pair to the span.
	SetAttribute(key string, value any)
}

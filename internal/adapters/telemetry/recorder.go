package telemetry

import (
	"context"
	"fmt"

	"github.com/cespare/xxhash/v2"
	"github.com/opencontainers/go-digest"
	"github.com/vito/progrock"

	"github.com/chorelabs/chore/internal/core/ports"
)

// Recorder implements ports.Tracer on a progrock tape, rendering one vertex
// per task invocation.
type Recorder struct {
	w   progrock.Writer
	rec *progrock.Recorder
}

// New creates a Recorder with a default tape.
func New() *Recorder {
	return NewRecorder(progrock.NewTape())
}

// NewRecorder creates a Recorder writing to w.
func NewRecorder(w progrock.Writer) *Recorder {
	return &Recorder{
		w:   w,
		rec: progrock.NewRecorder(w),
	}
}

// Start begins a vertex for one task invocation. The vertex digest is an
// xxhash of the task name, so repeated invocations of the same task under
// different branches collapse onto one vertex per name.
func (r *Recorder) Start(ctx context.Context, name string) (context.Context, ports.Span) {
	d := digest.Digest(fmt.Sprintf("xxh64:%016x", xxhash.Sum64String(name)))
	v := r.rec.Vertex(d, name)
	return ctx, &vertexSpan{vertex: v}
}

// Close flushes and closes the recording session.
func (r *Recorder) Close() error {
	if c, ok := r.w.(interface{ Close() error }); ok {
		return c.Close()
	}
	return nil
}

// vertexSpan implements ports.Span wrapping *progrock.VertexRecorder.
type vertexSpan struct {
	vertex *progrock.VertexRecorder
	err    error
}

// Write streams task output onto the vertex.
func (s *vertexSpan) Write(p []byte) (int, error) {
	return s.vertex.Stdout().Write(p)
}

// RecordError marks the span as failed when it ends.
func (s *vertexSpan) RecordError(err error) {
	s.err = err
}

// SetAttribute records a key-value pair on the vertex output.
func (s *vertexSpan) SetAttribute(key string, value any) {
	_, _ = fmt.Fprintf(s.vertex.Stdout(), "%s=%v\n", key, value)
}

// End completes the vertex with any recorded error.
func (s *vertexSpan) End() {
	s.vertex.Done(s.err)
}

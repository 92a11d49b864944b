// Package telemetry provides recording of long-running work for observability.
package telemetry

import (
	"context"
	"io"

	"go.trai.ch/primes/internal/core/ports"
)

// NoOp is a no-op implementation of ports.Telemetry. It is the default:
// the interactive front end shares stdout with query results, so progress
// rendering is opt-in.
type NoOp struct{}

// NewNoOp creates a new NoOp telemetry.
func NewNoOp() *NoOp {
	return &NoOp{}
}

// Record returns a no-op vertex.
func (t *NoOp) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoOpVertex{}
}

// Close does nothing.
func (t *NoOp) Close() error { return nil }

// NoOpVertex is a no-op implementation of ports.Vertex.
type NoOpVertex struct{}

// Stdout returns a writer that discards everything.
func (v *NoOpVertex) Stdout() io.Writer { return io.Discard }

// Complete does nothing.
func (v *NoOpVertex) Complete(_ error) {}

// Cached does nothing.
func (v *NoOpVertex) Cached() {}

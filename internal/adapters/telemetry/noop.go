// Package telemetry provides no-op progress recording for runs that do not
// render output, such as tests and machine-driven invocations.
package telemetry

import (
	"context"

	"go.trai.ch/pin/internal/core/ports"
)

// NoopRecorder is a no-op implementation of ports.Telemetry.
type NoopRecorder struct{}

// NewNoopRecorder creates a new NoopRecorder.
func NewNoopRecorder() *NoopRecorder {
	return &NoopRecorder{}
}

// Record creates a new no-op vertex.
func (r *NoopRecorder) Record(ctx context.Context, _ string) (context.Context, ports.Vertex) {
	return ctx, &NoopVertex{}
}

// Close does nothing.
func (r *NoopRecorder) Close() error {
	return nil
}

// NoopVertex is a no-op implementation of ports.Vertex.
type NoopVertex struct{}

// Cached does nothing.
func (v *NoopVertex) Cached() {}

// Complete does nothing.
func (v *NoopVertex) Complete(_ error) {}

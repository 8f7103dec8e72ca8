package ports

import "context"

// Telemetry records progress of a resolution run, one vertex per package
// fetch.
//
//go:generate go run go.uber.org/mock/mockgen -source=telemetry.go -destination=mocks/mock_telemetry.go -package=mocks
type Telemetry interface {
	// Record starts recording a new vertex.
	Record(ctx context.Context, name string) (context.Context, Vertex)

	// Close flushes and closes the recording session.
	Close() error
}

// Vertex represents one recorded unit of work.
type Vertex interface {
	// Cached marks the vertex as served from the resolution cache.
	Cached()

	// Complete marks the vertex as finished, successfully or with an error.
	Complete(err error)
}

package pm

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/core/ports"
)

// NodeID is the unique identifier for the metadata provider Graft node.
const NodeID graft.ID = "adapter.pm"

func init() {
	graft.Register(graft.Node[ports.MetadataProvider]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.MetadataProvider, error) {
			return NewDefaultRegistry(), nil
		},
	})
}

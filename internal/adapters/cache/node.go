package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/core/ports"
)

// NodeID is the unique identifier for the metadata cache factory Graft node.
const NodeID graft.ID = "adapter.cache"

func init() {
	graft.Register(graft.Node[ports.CacheFactory]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.CacheFactory, error) {
			return Factory, nil
		},
	})
}

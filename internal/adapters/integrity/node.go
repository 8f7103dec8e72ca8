package integrity

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/core/ports"
)

// NodeID is the unique identifier for the integrity verifier Graft node.
const NodeID graft.ID = "adapter.integrity"

func init() {
	graft.Register(graft.Node[ports.Digester]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.Digester, error) {
			return NewVerifier(), nil
		},
	})
}

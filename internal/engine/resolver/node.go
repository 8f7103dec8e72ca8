package resolver

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/adapters/pm"        //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pin/internal/adapters/telemetry" //nolint:depguard // Wired in engine wiring
	"go.trai.ch/pin/internal/core/ports"
)

// NodeID is the unique identifier for the resolver Graft node.
const NodeID graft.ID = "engine.resolver"

func init() {
	graft.Register(graft.Node[*Resolver]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			pm.NodeID,
			telemetry.TracerNodeID,
		},
		Run: func(ctx context.Context) (*Resolver, error) {
			provider, err := graft.Dep[ports.MetadataProvider](ctx)
			if err != nil {
				return nil, err
			}

			tracer, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(provider, tracer), nil
		},
	})
}

package config

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/pin/internal/core/ports"
)

// NodeID is the unique identifier for the manifest loader Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[ports.ManifestLoader]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (ports.ManifestLoader, error) {
			return &FileManifestLoader{Filename: DefaultManifestName}, nil
		},
	})
}

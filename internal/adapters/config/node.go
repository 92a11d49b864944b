package config

import (
	"context"

	"github.com/grindlemire/graft"
)

// NodeID is the unique identifier for the config adapter Graft node.
const NodeID graft.ID = "adapter.config"

func init() {
	graft.Register(graft.Node[*Settings]{
		ID:        NodeID,
		Cacheable: true,
		Run: func(_ context.Context) (*Settings, error) {
			return Load(DefaultFilename)
		},
	})
}

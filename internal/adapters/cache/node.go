package cache

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/primes/internal/adapters/config"
	"go.trai.ch/primes/internal/adapters/logger"
	"go.trai.ch/primes/internal/adapters/telemetry"
	"go.trai.ch/primes/internal/core/ports"
)

// NodeID is the unique identifier for the prime cache adapter Graft node.
const NodeID graft.ID = "adapter.prime_cache"

func init() {
	graft.Register(graft.Node[ports.PrimeCache]{
		ID:        NodeID,
		Cacheable: true,
		DependsOn: []graft.ID{config.NodeID, logger.NodeID, telemetry.NodeID},
		Run: func(ctx context.Context) (ports.PrimeCache, error) {
			settings, err := graft.Dep[*config.Settings](ctx)
			if err != nil {
				return nil, err
			}

			log, err := graft.Dep[ports.Logger](ctx)
			if err != nil {
				return nil, err
			}

			tel, err := graft.Dep[ports.Telemetry](ctx)
			if err != nil {
				return nil, err
			}

			return New(settings.InitialBound, settings.CacheCapacity, log, tel)
		},
	})
}

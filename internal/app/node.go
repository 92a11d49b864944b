package app

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/primes/internal/adapters/cache"
	"go.trai.ch/primes/internal/adapters/config"
	"go.trai.ch/primes/internal/adapters/logger"
	"go.trai.ch/primes/internal/adapters/telemetry"
	"go.trai.ch/primes/internal/core/ports"
	"go.trai.ch/primes/internal/engine/primes"
)

const (
	// AppNodeID is the unique identifier for the main App Graft node.
	AppNodeID graft.ID = "app.main"
	// ComponentsNodeID is the unique identifier for the App components Graft node.
	ComponentsNodeID graft.ID = "app.components"
)

func init() {
	graft.Register(graft.Node[*App]{
		ID:        AppNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			primes.OracleNodeID,
			primes.FactorizerNodeID,
			logger.NodeID,
			telemetry.NodeID,
		},
		Run: func(ctx context.Context) (*App, error) {
			oracle, err := graft.Dep[*primes.Oracle](ctx)
			if err != nil {
				return nil, err
			}

			factorizer, err := graft.Dep[*primes.Factorizer](ctx)
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

			return New(oracle, factorizer, log, tel), nil
		},
	})

	graft.Register(graft.Node[*Components]{
		ID:        ComponentsNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{
			AppNodeID,
			logger.NodeID,
			config.NodeID,
			cache.NodeID,
		},
		Run: runComponentsNode,
	})
}

func runComponentsNode(ctx context.Context) (*Components, error) {
	application, err := graft.Dep[*App](ctx)
	if err != nil {
		return nil, err
	}

	log, err := graft.Dep[ports.Logger](ctx)
	if err != nil {
		return nil, err
	}

	settings, err := graft.Dep[*config.Settings](ctx)
	if err != nil {
		return nil, err
	}

	primeCache, err := graft.Dep[ports.PrimeCache](ctx)
	if err != nil {
		return nil, err
	}

	return &Components{
		App:      application,
		Logger:   log,
		Settings: settings,
		Cache:    primeCache,
	}, nil
}

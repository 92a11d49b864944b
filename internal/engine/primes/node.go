package primes

import (
	"context"

	"github.com/grindlemire/graft"
	"go.trai.ch/primes/internal/adapters/cache"
	"go.trai.ch/primes/internal/core/ports"
)

const (
	// OracleNodeID is the unique identifier for the primality oracle Graft node.
	OracleNodeID graft.ID = "engine.oracle"
	// FactorizerNodeID is the unique identifier for the factorizer Graft node.
	FactorizerNodeID graft.ID = "engine.factorizer"
)

func init() {
	graft.Register(graft.Node[*Oracle]{
		ID:        OracleNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID},
		Run: func(ctx context.Context) (*Oracle, error) {
			c, err := graft.Dep[ports.PrimeCache](ctx)
			if err != nil {
				return nil, err
			}
			return NewOracle(c), nil
		},
	})

	graft.Register(graft.Node[*Factorizer]{
		ID:        FactorizerNodeID,
		Cacheable: true,
		DependsOn: []graft.ID{cache.NodeID},
		Run: func(ctx context.Context) (*Factorizer, error) {
			c, err := graft.Dep[ports.PrimeCache](ctx)
			if err != nil {
				return nil, err
			}
			return NewFactorizer(c), nil
		},
	})
}

// Package wiring registers all Graft nodes for the application.
package wiring

import (
	// Register adapter nodes.
	_ "go.trai.ch/primes/internal/adapters/cache"
	_ "go.trai.ch/primes/internal/adapters/config"
	_ "go.trai.ch/primes/internal/adapters/logger"
	_ "go.trai.ch/primes/internal/adapters/telemetry"
	// Register app and engine nodes.
	_ "go.trai.ch/primes/internal/app"
	_ "go.trai.ch/primes/internal/engine/primes"
)

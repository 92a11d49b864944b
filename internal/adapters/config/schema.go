package config

// Primesfile represents the structure of the primes.yaml configuration file.
type Primesfile struct {
	Version string   `yaml:"version"`
	Sieve   SieveDTO `yaml:"sieve"`
}

// SieveDTO represents the sieve and cache tuning section.
type SieveDTO struct {
	InitialBound  uint64 `yaml:"initialBound"`
	CacheCapacity int    `yaml:"cacheCapacity"`
}

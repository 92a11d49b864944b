// Package config provides the configuration loader for primes.
package config

import (
	"errors"
	"io/fs"
	"os"

	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

const (
	// DefaultInitialBound is the bound the cache is sieved to at startup.
	DefaultInitialBound uint64 = 1_000_000
	// DefaultCacheCapacity is the maximum number of primes the cache retains.
	DefaultCacheCapacity = 1_000_000
	// DefaultFilename is the configuration file looked up in the working directory.
	DefaultFilename = "primes.yaml"
)

// Settings is the validated runtime configuration.
type Settings struct {
	InitialBound  uint64
	CacheCapacity int
}

// Default returns the built-in settings used when no configuration file exists.
func Default() *Settings {
	return &Settings{
		InitialBound:  DefaultInitialBound,
		CacheCapacity: DefaultCacheCapacity,
	}
}

// Load reads a configuration file from the given path and returns validated
// settings. A missing file is not an error; the defaults apply.
func Load(path string) (*Settings, error) {
	data, err := os.ReadFile(path) //nolint:gosec // path is provided by user
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Default(), nil
		}
		return nil, zerr.Wrap(err, "failed to read config file")
	}

	var file Primesfile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, zerr.Wrap(err, "failed to parse config file")
	}

	settings := Default()
	if file.Sieve.InitialBound != 0 {
		settings.InitialBound = file.Sieve.InitialBound
	}
	if file.Sieve.CacheCapacity != 0 {
		settings.CacheCapacity = file.Sieve.CacheCapacity
	}

	if settings.InitialBound <= 1 {
		return nil, zerr.With(zerr.New("initialBound must be strictly greater than 1"), "initial_bound", settings.InitialBound)
	}
	if settings.CacheCapacity <= 0 {
		return nil, zerr.With(zerr.New("cacheCapacity must be positive"), "cache_capacity", settings.CacheCapacity)
	}

	return settings, nil
}

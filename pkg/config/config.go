// Package config loads beaconzone settings from a TOML file.
//
// A missing file is not an error: every field has a default, and command-line
// flags override whatever the file sets. Example file:
//
//	[count]
//	line = 2000000
//
//	[search]
//	bound = 4000000
//	multiplier = 4000000
//	workers = 8
//
//	[cache]
//	backend = "redis"
//	ttl = "72h"
//	redis_addr = "localhost:6379"
package config

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
	"runtime"
	"time"

	"github.com/BurntSushi/toml"

	"github.com/matzehuels/beaconzone/pkg/cache"
	"github.com/matzehuels/beaconzone/pkg/coverage"
	bzerrors "github.com/matzehuels/beaconzone/pkg/errors"
)

// Defaults for the full-size puzzle.
const (
	DefaultLine  = 2_000_000
	DefaultBound = 4_000_000
)

// Config is the complete configuration.
type Config struct {
	Count  CountConfig  `toml:"count"`
	Search SearchConfig `toml:"search"`
	Cache  CacheConfig  `toml:"cache"`
}

// CountConfig holds defaults for count queries.
type CountConfig struct {
	Line int64 `toml:"line"`
}

// SearchConfig holds defaults for search queries.
type SearchConfig struct {
	Bound      int64 `toml:"bound"`
	Multiplier int64 `toml:"multiplier"`
	Workers    int   `toml:"workers"`
}

// CacheConfig selects and configures the result cache backend.
type CacheConfig struct {
	Backend string `toml:"backend"`
	Dir     string `toml:"dir"`
	TTL     string `toml:"ttl"`

	RedisAddr     string `toml:"redis_addr"`
	RedisPassword string `toml:"redis_password"`
	RedisDB       int    `toml:"redis_db"`

	MongoURI        string `toml:"mongo_uri"`
	MongoDatabase   string `toml:"mongo_database"`
	MongoCollection string `toml:"mongo_collection"`
}

// TTLDuration parses TTL, falling back to cache.TTLResult when unset.
func (c CacheConfig) TTLDuration() (time.Duration, error) {
	if c.TTL == "" {
		return cache.TTLResult, nil
	}
	return time.ParseDuration(c.TTL)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Count: CountConfig{Line: DefaultLine},
		Search: SearchConfig{
			Bound:      DefaultBound,
			Multiplier: coverage.DefaultMultiplier,
			Workers:    runtime.NumCPU(),
		},
		Cache: CacheConfig{Backend: cache.BackendFile},
	}
}

// Load reads path on top of the defaults. A path that does not exist yields
// the defaults unchanged.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if errors.Is(err, fs.ErrNotExist) {
		return cfg, nil
	}
	if err != nil {
		return cfg, bzerrors.Wrap(bzerrors.ErrCodeInvalidConfig, err, "read %s", path)
	}

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return cfg, bzerrors.Wrap(bzerrors.ErrCodeInvalidConfig, err, "parse %s", path)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		return cfg, bzerrors.New(bzerrors.ErrCodeInvalidConfig, "%s: unknown key %q", path, undecoded[0].String())
	}

	return cfg, cfg.Validate()
}

// Validate checks field ranges and the cache backend settings.
func (c Config) Validate() error {
	if c.Search.Bound < 0 {
		return bzerrors.New(bzerrors.ErrCodeInvalidConfig, "search.bound must be non-negative")
	}
	if c.Search.Multiplier <= 0 {
		return bzerrors.New(bzerrors.ErrCodeInvalidConfig, "search.multiplier must be positive")
	}
	if c.Search.Workers < 0 {
		return bzerrors.New(bzerrors.ErrCodeInvalidConfig, "search.workers must be non-negative")
	}
	if _, err := c.Cache.TTLDuration(); err != nil {
		return bzerrors.Wrap(bzerrors.ErrCodeInvalidConfig, err, "cache.ttl")
	}

	switch c.Cache.Backend {
	case cache.BackendFile, cache.BackendNone, "":
	case cache.BackendRedis:
		if c.Cache.RedisAddr == "" {
			return bzerrors.New(bzerrors.ErrCodeInvalidConfig, "cache.redis_addr is required for the redis backend")
		}
	case cache.BackendMongo:
		if c.Cache.MongoURI == "" {
			return bzerrors.New(bzerrors.ErrCodeInvalidConfig, "cache.mongo_uri is required for the mongo backend")
		}
	default:
		return bzerrors.New(bzerrors.ErrCodeInvalidConfig, "unknown cache backend %q", c.Cache.Backend)
	}
	return nil
}

// DefaultPath returns the config file location following the XDG convention
// (~/.config/<app>/config.toml).
func DefaultPath(app string) (string, error) {
	if home := os.Getenv("XDG_CONFIG_HOME"); home != "" {
		return filepath.Join(home, app, "config.toml"), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", app, "config.toml"), nil
}

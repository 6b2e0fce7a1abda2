// Package cli implements the beaconzone command-line interface.
package cli

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/matzehuels/beaconzone/pkg/cache"
	"github.com/matzehuels/beaconzone/pkg/config"
	"github.com/matzehuels/beaconzone/pkg/pipeline"
)

// =============================================================================
// Constants
// =============================================================================

const (
	// appName is the application name used for directories and display.
	appName = "beaconzone"

	// stdinPath selects standard input for --input.
	stdinPath = "-"

	// sharedKeyPrefix namespaces result keys in Redis and MongoDB.
	sharedKeyPrefix = appName + ":"
)

// Log levels exported for use in main.go.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// =============================================================================
// CLI - Central CLI State
// =============================================================================

// CLI holds shared state for all commands.
type CLI struct {
	Logger *log.Logger

	configPath string
	noCache    bool
	cfg        config.Config
}

// New creates a new CLI instance with a default logger.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: newLogger(w, level),
		cfg:    config.Default(),
	}
}

// SetLogLevel updates the logger's level.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// loadConfig reads the config file named by --config, or the XDG default.
func (c *CLI) loadConfig() error {
	path := c.configPath
	if path == "" {
		var err error
		if path, err = config.DefaultPath(appName); err != nil {
			c.Logger.Debug("no config path", "err", err)
			return nil
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		return err
	}
	c.cfg = cfg
	c.Logger.Debug("loaded config", "path", path, "cache", cfg.Cache.Backend)
	return nil
}

// =============================================================================
// Runner Factory
// =============================================================================

// newRunner creates a pipeline runner for CLI use.
func (c *CLI) newRunner(ctx context.Context) (*pipeline.Runner, error) {
	ttl, err := c.cfg.Cache.TTLDuration()
	if err != nil {
		return nil, err
	}
	store := c.newCache(ctx)

	var keyer cache.Keyer
	switch store.(type) {
	case *cache.RedisCache, *cache.MongoCache:
		// Shared backends may hold entries from other tools.
		keyer = cache.NewScopedKeyer(nil, sharedKeyPrefix)
	}

	runner := pipeline.NewRunner(store, keyer, c.Logger)
	runner.TTL = ttl
	return runner, nil
}

// newCache opens the configured backend. A backend that cannot be reached
// degrades to no caching rather than failing the command.
func (c *CLI) newCache(ctx context.Context) cache.Cache {
	if c.noCache {
		return cache.NewNullCache()
	}

	cc := c.cfg.Cache
	var (
		store cache.Cache
		err   error
	)
	switch cc.Backend {
	case cache.BackendNone:
		return cache.NewNullCache()
	case cache.BackendRedis:
		store, err = cache.DialRedis(ctx, cc.RedisAddr, cc.RedisPassword, cc.RedisDB)
	case cache.BackendMongo:
		store, err = cache.DialMongo(ctx, cc.MongoURI, cc.MongoDatabase, cc.MongoCollection)
	default:
		store, err = c.fileCache()
	}
	if err != nil {
		c.Logger.Warn("cache unavailable, continuing without it", "backend", cc.Backend, "err", err)
		return cache.NewNullCache()
	}
	return store
}

func (c *CLI) fileCache() (*cache.FileCache, error) {
	dir, err := c.cacheDir()
	if err != nil {
		return nil, err
	}
	return cache.NewFileCache(dir)
}

// =============================================================================
// Paths
// =============================================================================

// cacheDir returns the configured cache directory, or the XDG default.
func (c *CLI) cacheDir() (string, error) {
	if c.cfg.Cache.Dir != "" {
		return c.cfg.Cache.Dir, nil
	}
	return cacheDir()
}

// cacheDir returns the cache directory using XDG standard (~/.cache/beaconzone/).
func cacheDir() (string, error) {
	if cacheHome := os.Getenv("XDG_CACHE_HOME"); cacheHome != "" {
		return filepath.Join(cacheHome, appName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".cache", appName), nil
}

// =============================================================================
// Input
// =============================================================================

// readInput reads the report lines from path, or from the command's stdin
// when path is empty or "-".
func readInput(cmd *cobra.Command, path string) ([]byte, error) {
	if path == "" || path == stdinPath {
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return nil, fmt.Errorf("read stdin: %w", err)
		}
		return data, nil
	}
	data, err := os.ReadFile(path)
	if errors.Is(err, os.ErrNotExist) {
		return nil, fmt.Errorf("input file not found: %s", path)
	}
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", path, err)
	}
	return data, nil
}

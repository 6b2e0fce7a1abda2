package pipeline

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/matzehuels/beaconzone/pkg/cache"
	"github.com/matzehuels/beaconzone/pkg/coverage"
	"github.com/matzehuels/beaconzone/pkg/observability"
	"github.com/matzehuels/beaconzone/pkg/records"
)

// Runner executes the pipeline with result caching.
//
// The Runner is stateless apart from its cache and logger; multiple
// goroutines may call Execute concurrently.
type Runner struct {
	Cache  cache.Cache
	Keyer  cache.Keyer
	Logger *log.Logger

	// TTL is how long answers stay cached. Zero means cache.TTLResult.
	TTL time.Duration
}

// NewRunner creates a runner. A nil cache disables caching, a nil keyer uses
// the default keyer and a nil logger uses log.Default().
func NewRunner(c cache.Cache, keyer cache.Keyer, logger *log.Logger) *Runner {
	if c == nil {
		c = cache.NewNullCache()
	}
	if keyer == nil {
		keyer = cache.NewDefaultKeyer()
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Runner{Cache: c, Keyer: keyer, Logger: logger}
}

// Execute answers opts.Query over the report lines in input.
func (r *Runner) Execute(ctx context.Context, input []byte, opts Options) (*Result, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	res := &Result{
		RunID:     uuid.NewString(),
		InputHash: cache.Hash(input),
	}
	logger := r.Logger.With("run", res.RunID[:8])
	mode := string(opts.Query.Mode())
	key := r.Keyer.ResultKey(res.InputHash, opts.ResultKeyOpts())

	if !opts.Refresh {
		if answer, ok := r.lookup(ctx, logger, key, mode); ok {
			res.Answer = answer
			res.CacheHit = true
			logger.Debug("answer from cache", "mode", mode, "value", answer.Value)
			return res, nil
		}
	}

	eng, stats, err := r.Load(ctx, input)
	if err != nil {
		return nil, err
	}
	eng.Workers = opts.Workers
	res.Stats = stats

	observability.Engine().OnQueryStart(ctx, mode)
	queryStart := time.Now()
	answer, err := eng.Run(ctx, opts.Query)
	res.Stats.QueryTime = time.Since(queryStart)
	observability.Engine().OnQueryComplete(ctx, mode, answer.Value, res.Stats.QueryTime, err)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", mode, err)
	}
	res.Answer = answer

	logger.Info("answered query",
		"mode", mode,
		"value", answer.Value,
		"workers", opts.Workers,
		"duration", res.Stats.QueryTime)

	r.store(ctx, logger, key, mode, answer)
	return res, nil
}

// Load parses input and builds an engine over it without running a query.
func (r *Runner) Load(ctx context.Context, input []byte) (*coverage.Engine, Stats, error) {
	var stats Stats

	parseStart := time.Now()
	recs, err := records.Parse(bytes.NewReader(input))
	if err != nil {
		return nil, stats, fmt.Errorf("parse: %w", err)
	}
	stats.ParseTime = time.Since(parseStart)
	stats.Records = len(recs)

	buildStart := time.Now()
	sources, witnesses, err := coverage.Build(recs)
	if err != nil {
		return nil, stats, fmt.Errorf("build: %w", err)
	}
	stats.BuildTime = time.Since(buildStart)
	stats.Sources = len(sources)
	stats.Witnesses = witnesses.Len()

	observability.Engine().OnBuild(ctx, stats.Records, stats.Sources, stats.Witnesses, stats.ParseTime+stats.BuildTime)
	r.Logger.Debug("built sources",
		"records", stats.Records,
		"sources", stats.Sources,
		"witnesses", stats.Witnesses,
		"duration", stats.ParseTime+stats.BuildTime)

	return coverage.NewEngine(sources, witnesses), stats, nil
}

// Close releases the cache.
func (r *Runner) Close() error {
	if r.Cache != nil {
		return r.Cache.Close()
	}
	return nil
}

// lookup fetches a cached answer. Backend failures are logged and treated as
// misses so a broken cache never blocks a query.
func (r *Runner) lookup(ctx context.Context, logger *log.Logger, key, mode string) (coverage.Result, bool) {
	var (
		data []byte
		hit  bool
	)
	err := cache.RetryWithBackoff(ctx, func() error {
		var err error
		data, hit, err = r.Cache.Get(ctx, key)
		return err
	})
	if err != nil {
		observability.Cache().OnCacheError(ctx, "get", err)
		logger.Warn("cache lookup failed", "err", err)
		return coverage.Result{}, false
	}
	if !hit {
		observability.Cache().OnCacheMiss(ctx, mode)
		return coverage.Result{}, false
	}

	var answer coverage.Result
	if err := json.Unmarshal(data, &answer); err != nil || answer.Mode != coverage.Mode(mode) {
		observability.Cache().OnCacheMiss(ctx, mode)
		return coverage.Result{}, false
	}
	observability.Cache().OnCacheHit(ctx, mode)
	return answer, true
}

func (r *Runner) store(ctx context.Context, logger *log.Logger, key, mode string, answer coverage.Result) {
	data, err := json.Marshal(answer)
	if err != nil {
		logger.Warn("encode answer for cache", "err", err)
		return
	}

	ttl := r.TTL
	if ttl == 0 {
		ttl = cache.TTLResult
	}
	err = cache.RetryWithBackoff(ctx, func() error {
		return r.Cache.Set(ctx, key, data, ttl)
	})
	if err != nil {
		observability.Cache().OnCacheError(ctx, "set", err)
		logger.Warn("cache store failed", "err", err)
		return
	}
	observability.Cache().OnCacheSet(ctx, mode, len(data))
}

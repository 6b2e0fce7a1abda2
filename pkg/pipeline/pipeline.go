// Package pipeline runs the parse → build → query sequence behind every
// beaconzone command.
//
// # Architecture
//
// The pipeline has three stages:
//
//  1. Parse: turn raw report lines into records ([records.Parse])
//  2. Build: calibrate coverage sources against the witnesses ([coverage.Build])
//  3. Query: answer a count or search query ([coverage.Engine.Run])
//
// Answers are cached by input fingerprint and query, so the expensive search
// stage runs at most once per input.
//
// # Usage
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	res, err := runner.Execute(ctx, input, pipeline.Options{
//	    Query:   coverage.SearchQuery{BoundMax: 4000000, Multiplier: 4000000},
//	    Workers: 8,
//	})
//	fmt.Println(res.Answer.Value)
package pipeline

import (
	"time"

	"github.com/matzehuels/beaconzone/pkg/cache"
	"github.com/matzehuels/beaconzone/pkg/coverage"
	bzerrors "github.com/matzehuels/beaconzone/pkg/errors"
)

// Options configures a single Execute call.
type Options struct {
	// Query selects count or search mode.
	Query coverage.Query

	// Workers is the search parallelism. Values <= 1 scan sequentially.
	Workers int

	// Refresh skips the cache lookup and recomputes; the fresh answer is
	// still stored.
	Refresh bool
}

// Validate checks the options before any work is done.
func (o Options) Validate() error {
	if o.Query == nil {
		return bzerrors.New(bzerrors.ErrCodeInvalidQuery, "no query given")
	}
	if o.Workers < 0 {
		return bzerrors.New(bzerrors.ErrCodeInvalidQuery, "workers must be non-negative, got %d", o.Workers)
	}
	return o.Query.Validate()
}

// ResultKeyOpts converts the query into cache key options.
func (o Options) ResultKeyOpts() cache.ResultKeyOpts {
	switch q := o.Query.(type) {
	case coverage.CountQuery:
		return cache.ResultKeyOpts{Mode: string(q.Mode()), Line: q.Line}
	case coverage.SearchQuery:
		return cache.ResultKeyOpts{Mode: string(q.Mode()), BoundMax: q.BoundMax, Multiplier: q.Multiplier}
	}
	return cache.ResultKeyOpts{}
}

// Stats records the size of the input and time spent per stage. Stages that
// were skipped because of a cache hit stay zero.
type Stats struct {
	Records   int           `json:"records"`
	Sources   int           `json:"sources"`
	Witnesses int           `json:"witnesses"`
	ParseTime time.Duration `json:"parse_time"`
	BuildTime time.Duration `json:"build_time"`
	QueryTime time.Duration `json:"query_time"`
}

// Result is the outcome of Execute.
type Result struct {
	RunID     string          `json:"run_id"`
	InputHash string          `json:"input_hash"`
	Answer    coverage.Result `json:"answer"`
	CacheHit  bool            `json:"cache_hit"`
	Stats     Stats           `json:"stats"`
}

package coverage

import (
	"context"
	"fmt"

	bzerrors "github.com/matzehuels/beaconzone/pkg/errors"
	"github.com/matzehuels/beaconzone/pkg/geom"
)

// Mode names the kind of query a [Result] answers.
type Mode string

// Query modes.
const (
	ModeCount  Mode = "count"
	ModeSearch Mode = "search"
)

// Query is a question the [Engine] can answer. It is implemented only by
// [CountQuery] and [SearchQuery].
type Query interface {
	Mode() Mode
	Validate() error
	isQuery()
}

// CountQuery asks how many positions on Line are covered, excluding
// witnesses.
type CountQuery struct {
	Line int64 `json:"line"`
}

// Mode returns ModeCount.
func (CountQuery) Mode() Mode { return ModeCount }

// Validate rejects lines outside ±geom.MaxCoordinate.
func (q CountQuery) Validate() error {
	if !geom.InRange(q.Line) {
		return bzerrors.New(bzerrors.ErrCodeInvalidQuery,
			"line %d outside [-%d,%d]", q.Line, geom.MaxCoordinate, geom.MaxCoordinate)
	}
	return nil
}

func (CountQuery) isQuery() {}

// SearchQuery asks for the uncovered point in [0,BoundMax]×[0,BoundMax],
// encoded with Multiplier.
type SearchQuery struct {
	BoundMax   int64 `json:"bound_max"`
	Multiplier int64 `json:"multiplier"`
}

// Mode returns ModeSearch.
func (SearchQuery) Mode() Mode { return ModeSearch }

// Validate rejects a negative bound or a non-positive multiplier.
func (q SearchQuery) Validate() error {
	return validateSearch(q.BoundMax, q.Multiplier)
}

func (SearchQuery) isQuery() {}

// Result is the answer to a Query. Value is the scalar answer for either mode:
// the covered count, or the gap's composite key.
type Result struct {
	Mode  Mode  `json:"mode"`
	Value int64 `json:"value"`

	// Line and Cover are set for count queries.
	Line  int64 `json:"line,omitempty"`
	Cover Cover `json:"cover,omitempty"`

	// Gap is set for search queries.
	Gap *Gap `json:"gap,omitempty"`
}

// Engine answers queries over a fixed set of sources.
// It holds no mutable state and is safe for concurrent use.
type Engine struct {
	Sources   []Source
	Witnesses WitnessSet

	// Workers is the number of goroutines used by search queries.
	// Values <= 1 scan sequentially.
	Workers int
}

// NewEngine creates an engine over sources and witnesses.
func NewEngine(sources []Source, witnesses WitnessSet) *Engine {
	return &Engine{Sources: sources, Witnesses: witnesses}
}

// NewEngineFromRecords builds sources from records and returns an engine over
// them.
func NewEngineFromRecords(records []Record) (*Engine, error) {
	sources, witnesses, err := Build(records)
	if err != nil {
		return nil, err
	}
	return NewEngine(sources, witnesses), nil
}

// Run answers q.
func (e *Engine) Run(ctx context.Context, q Query) (Result, error) {
	if q == nil {
		return Result{}, bzerrors.New(bzerrors.ErrCodeInvalidQuery, "query is nil")
	}
	if err := q.Validate(); err != nil {
		return Result{}, err
	}

	switch q := q.(type) {
	case CountQuery:
		return e.count(q)
	case SearchQuery:
		return e.search(ctx, q)
	default:
		return Result{}, bzerrors.New(bzerrors.ErrCodeUnsupported, "unsupported query %T", q)
	}
}

func (e *Engine) count(q CountQuery) (Result, error) {
	cover, err := CoverAt(e.Sources, q.Line)
	if err != nil {
		return Result{}, fmt.Errorf("cover line %d: %w", q.Line, err)
	}
	return Result{
		Mode:  ModeCount,
		Value: Count(cover, q.Line, e.Witnesses),
		Line:  q.Line,
		Cover: cover,
	}, nil
}

func (e *Engine) search(ctx context.Context, q SearchQuery) (Result, error) {
	gap, err := SearchParallel(ctx, e.Sources, q.BoundMax, q.Multiplier, e.Workers)
	if err != nil {
		return Result{}, err
	}
	return Result{Mode: ModeSearch, Value: gap.Key, Gap: &gap}, nil
}

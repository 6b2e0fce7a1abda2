package coverage

import (
	"context"
	"errors"
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"

	bzerrors "github.com/matzehuels/beaconzone/pkg/errors"
	"github.com/matzehuels/beaconzone/pkg/geom"
)

func sampleEngine(t *testing.T) *Engine {
	t.Helper()
	eng, err := NewEngineFromRecords(sampleRecords)
	if err != nil {
		t.Fatalf("NewEngineFromRecords() error: %v", err)
	}
	return eng
}

func TestEngineCount(t *testing.T) {
	eng := sampleEngine(t)

	res, err := eng.Run(context.Background(), CountQuery{Line: 10})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Mode != ModeCount {
		t.Errorf("Mode = %v, want %v", res.Mode, ModeCount)
	}
	if res.Value != 26 {
		t.Errorf("Value = %d, want 26", res.Value)
	}
	if res.Line != 10 || res.Gap != nil {
		t.Errorf("unexpected result fields: %+v", res)
	}
	if diff := cmp.Diff(Cover{iv(-2, 24)}, res.Cover); diff != "" {
		t.Errorf("cover mismatch (-want +got):\n%s", diff)
	}
}

func TestEngineCountUncoveredLine(t *testing.T) {
	eng := sampleEngine(t)

	res, err := eng.Run(context.Background(), CountQuery{Line: 1000})
	if err != nil {
		t.Fatalf("Run() error: %v", err)
	}
	if res.Value != 0 || len(res.Cover) != 0 {
		t.Errorf("far line = %+v, want empty", res)
	}
}

func TestEngineSearch(t *testing.T) {
	for _, workers := range []int{0, 1, 2, 3, 8, 64} {
		eng := sampleEngine(t)
		eng.Workers = workers

		res, err := eng.Run(context.Background(), SearchQuery{BoundMax: 20, Multiplier: DefaultMultiplier})
		if err != nil {
			t.Fatalf("workers=%d: Run() error: %v", workers, err)
		}
		if res.Value != 56000011 {
			t.Errorf("workers=%d: Value = %d, want 56000011", workers, res.Value)
		}
		if res.Gap == nil || res.Gap.Point != (geom.Point{X: 14, Y: 11}) {
			t.Errorf("workers=%d: Gap = %+v", workers, res.Gap)
		}
	}
}

func TestSearchParallelMatchesSequential(t *testing.T) {
	// Two holes: the lower line must win no matter how blocks are split.
	sources := []Source{
		{Origin: geom.Point{X: -5, Y: 0}, Radius: 3},
		{Origin: geom.Point{X: 3, Y: 0}, Radius: 3},
	}
	want, err := Search(sources, 3, 10)
	if err != nil {
		t.Fatalf("Search() error: %v", err)
	}

	for workers := 2; workers <= 5; workers++ {
		got, err := SearchParallel(context.Background(), sources, 3, 10, workers)
		if err != nil {
			t.Fatalf("workers=%d: error: %v", workers, err)
		}
		if got != want {
			t.Errorf("workers=%d: got %+v, want %+v", workers, got, want)
		}
	}
}

func TestSearchParallelNotFound(t *testing.T) {
	sources := []Source{{Origin: geom.Point{X: 10, Y: 10}, Radius: 20}}
	_, err := SearchParallel(context.Background(), sources, 20, DefaultMultiplier, 4)
	if !bzerrors.Is(err, bzerrors.ErrCodeGapNotFound) {
		t.Fatalf("error = %v, want GAP_NOT_FOUND", err)
	}
}

func TestSearchParallelCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	sources := []Source{{Origin: geom.Point{X: 10, Y: 10}, Radius: 20}}
	for _, workers := range []int{1, 4} {
		_, err := SearchParallel(ctx, sources, 20, DefaultMultiplier, workers)
		if !errors.Is(err, context.Canceled) {
			t.Errorf("workers=%d: error = %v, want context.Canceled", workers, err)
		}
	}
}

func TestEngineInvalidQuery(t *testing.T) {
	eng := sampleEngine(t)

	tests := []struct {
		name string
		q    Query
	}{
		{"nil", nil},
		{"negative bound", SearchQuery{BoundMax: -1, Multiplier: 1}},
		{"zero multiplier", SearchQuery{BoundMax: 10}},
		{"line out of range", CountQuery{Line: geom.MaxCoordinate + 1}},
		{"bound out of range", SearchQuery{BoundMax: geom.MaxCoordinate + 1, Multiplier: 1}},
		{"key overflow", SearchQuery{BoundMax: 4_000_000, Multiplier: math.MaxInt64 / 2}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := eng.Run(context.Background(), tt.q)
			if !bzerrors.Is(err, bzerrors.ErrCodeInvalidQuery) {
				t.Errorf("error = %v, want INVALID_QUERY", err)
			}
		})
	}
}

func TestEngineInvalidRadius(t *testing.T) {
	eng := NewEngine([]Source{{Radius: -3}}, WitnessSet{})
	_, err := eng.Run(context.Background(), CountQuery{Line: 0})
	if !bzerrors.Is(err, bzerrors.ErrCodeInvalidRadius) {
		t.Fatalf("error = %v, want INVALID_RADIUS", err)
	}
}

func TestQueryModes(t *testing.T) {
	if (CountQuery{}).Mode() != ModeCount {
		t.Error("CountQuery.Mode() != count")
	}
	if (SearchQuery{}).Mode() != ModeSearch {
		t.Error("SearchQuery.Mode() != search")
	}
}

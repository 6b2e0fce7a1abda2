package coverage

import (
	"context"
	"math"
	"sync"
	"sync/atomic"

	"golang.org/x/sync/errgroup"

	bzerrors "github.com/matzehuels/beaconzone/pkg/errors"
	"github.com/matzehuels/beaconzone/pkg/geom"
)

// DefaultMultiplier is the composite-key multiplier used when a caller does
// not supply one.
const DefaultMultiplier = 4_000_000

// Gap is the uncovered point found by a search, with its composite key.
type Gap struct {
	Point geom.Point `json:"point"`
	Key   int64      `json:"key"`
}

func newGap(x, y, multiplier int64) Gap {
	return Gap{Point: geom.Point{X: x, Y: y}, Key: x*multiplier + y}
}

// Search scans lines y = 0..boundMax in order and returns the first uncovered
// point inside the square [0,boundMax]×[0,boundMax].
//
// On each line the sources are projected and merged; a gap exists where the
// cover splits into more than one interval, immediately after an interval's
// end. The first such position inside [0,boundMax] wins. Search assumes at
// most one uncovered point in the square, so the scan stops at the first hit.
//
// If no line has a gap, Search fails with ErrCodeGapNotFound.
func Search(sources []Source, boundMax, multiplier int64) (Gap, error) {
	if err := validateSearch(boundMax, multiplier); err != nil {
		return Gap{}, err
	}

	for y := int64(0); y <= boundMax; y++ {
		x, ok, err := gapOnLine(sources, y, boundMax)
		if err != nil {
			return Gap{}, err
		}
		if ok {
			return newGap(x, y, multiplier), nil
		}
	}
	return Gap{}, gapNotFound(boundMax)
}

// SearchParallel is [Search] with the line scan split into contiguous blocks,
// one per worker. It returns the gap on the lowest qualifying line, the same
// answer Search gives. Workers stop once they pass a line that already has a
// gap, and the scan aborts when ctx is cancelled.
//
// workers <= 1 runs the sequential scan.
func SearchParallel(ctx context.Context, sources []Source, boundMax, multiplier int64, workers int) (Gap, error) {
	if err := validateSearch(boundMax, multiplier); err != nil {
		return Gap{}, err
	}
	if workers <= 1 {
		if err := ctx.Err(); err != nil {
			return Gap{}, err
		}
		return Search(sources, boundMax, multiplier)
	}

	var (
		mu    sync.Mutex
		found geom.Point
		bestY atomic.Int64
	)
	bestY.Store(math.MaxInt64)

	lines := boundMax + 1
	block := (lines + int64(workers) - 1) / int64(workers)

	g, gctx := errgroup.WithContext(ctx)
	for lo := int64(0); lo <= boundMax; lo += block {
		hi := min(lo+block-1, boundMax)
		g.Go(func() error {
			for y := lo; y <= hi; y++ {
				if y >= bestY.Load() {
					return nil
				}
				if err := gctx.Err(); err != nil {
					return err
				}
				x, ok, err := gapOnLine(sources, y, boundMax)
				if err != nil {
					return err
				}
				if ok {
					mu.Lock()
					if y < bestY.Load() {
						bestY.Store(y)
						found = geom.Point{X: x, Y: y}
					}
					mu.Unlock()
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return Gap{}, err
	}

	if bestY.Load() == math.MaxInt64 {
		return Gap{}, gapNotFound(boundMax)
	}
	return newGap(found.X, found.Y, multiplier), nil
}

// gapOnLine returns the first uncovered x in [0,boundMax] lying between two
// intervals of line y's cover. A hole that starts left of 0 but reaches into
// the square is reported at x=0.
//
// Every adjacent pair is checked, not only the end of the first interval, so
// a hole left of the square does not hide one inside it.
func gapOnLine(sources []Source, y, boundMax int64) (int64, bool, error) {
	cover, err := CoverAt(sources, y)
	if err != nil {
		return 0, false, err
	}
	for i := 0; i+1 < len(cover); i++ {
		x := max(cover[i].End+1, 0)
		if x > boundMax {
			break
		}
		if x < cover[i+1].Start {
			return x, true, nil
		}
	}
	return 0, false, nil
}

func validateSearch(boundMax, multiplier int64) error {
	if boundMax < 0 {
		return bzerrors.New(bzerrors.ErrCodeInvalidQuery, "search bound must be non-negative, got %d", boundMax)
	}
	if boundMax > geom.MaxCoordinate {
		return bzerrors.New(bzerrors.ErrCodeInvalidQuery, "search bound %d exceeds %d", boundMax, geom.MaxCoordinate)
	}
	if multiplier <= 0 {
		return bzerrors.New(bzerrors.ErrCodeInvalidQuery, "multiplier must be positive, got %d", multiplier)
	}
	// The largest key is boundMax*multiplier + boundMax.
	if boundMax > 0 && multiplier > (math.MaxInt64-boundMax)/boundMax {
		return bzerrors.New(bzerrors.ErrCodeInvalidQuery,
			"multiplier %d overflows the key for bound %d", multiplier, boundMax)
	}
	return nil
}

func gapNotFound(boundMax int64) error {
	return bzerrors.New(bzerrors.ErrCodeGapNotFound, "no uncovered point within [0,%d]", boundMax)
}

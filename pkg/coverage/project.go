package coverage

import (
	bzerrors "github.com/matzehuels/beaconzone/pkg/errors"
	"github.com/matzehuels/beaconzone/pkg/geom"
)

// Project intersects s with the horizontal line y.
//
// The second result is false when the line misses the diamond entirely
// (|y - origin.Y| > radius); that is not an error. When the line just grazes
// the tip (|y - origin.Y| == radius) the interval is the single position
// [origin.X, origin.X].
//
// A negative radius cannot come out of [NewSource]; Project rejects it with
// ErrCodeInvalidRadius rather than returning an inverted interval.
func Project(s Source, y int64) (geom.Interval, bool, error) {
	if s.Radius < 0 {
		return geom.Interval{}, false, bzerrors.New(bzerrors.ErrCodeInvalidRadius,
			"source %s has negative radius %d", s.Origin, s.Radius)
	}

	dy := y - s.Origin.Y
	if dy < 0 {
		dy = -dy
	}
	if dy > s.Radius {
		return geom.Interval{}, false, nil
	}

	half := s.Radius - dy
	return geom.Interval{Start: s.Origin.X - half, End: s.Origin.X + half}, true, nil
}

// ProjectAll projects every source onto line y and returns the intervals of
// the sources that reach it, in source order.
func ProjectAll(sources []Source, y int64) ([]geom.Interval, error) {
	out := make([]geom.Interval, 0, len(sources))
	for _, s := range sources {
		iv, ok, err := Project(s, y)
		if err != nil {
			return nil, err
		}
		if ok {
			out = append(out, iv)
		}
	}
	return out, nil
}

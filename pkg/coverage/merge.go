package coverage

import (
	"slices"

	"github.com/matzehuels/beaconzone/pkg/geom"
)

// Cover is a merged set of intervals on one line: sorted by Start, with no two
// intervals overlapping or touching.
type Cover []geom.Interval

// Len returns the number of positions covered.
func (c Cover) Len() int64 {
	var n int64
	for _, iv := range c {
		n += iv.Len()
	}
	return n
}

// Contains reports whether x lies inside any interval of the cover.
func (c Cover) Contains(x int64) bool {
	i, _ := slices.BinarySearchFunc(c, x, func(iv geom.Interval, x int64) int {
		switch {
		case iv.End < x:
			return -1
		case iv.Start > x:
			return 1
		}
		return 0
	})
	return i < len(c) && c[i].Contains(x)
}

// Merge sweeps intervals into a Cover.
//
// Intervals are sorted by (Start, End) and folded left to right into a single
// current interval, which is extended while the next one overlaps it or starts
// right after its end. Because intervals are inclusive, [0,5] and [6,9] merge
// into [0,9], while [0,5] and [7,9] stay apart with position 6 uncovered.
//
// Merge does not modify its argument. Empty input yields a nil cover.
func Merge(intervals []geom.Interval) Cover {
	if len(intervals) == 0 {
		return nil
	}

	sorted := slices.Clone(intervals)
	slices.SortFunc(sorted, geom.Interval.Compare)

	var out Cover
	cur := sorted[0]
	for _, next := range sorted[1:] {
		if next.Start <= cur.End+1 {
			cur.End = max(cur.End, next.End)
			continue
		}
		out = append(out, cur)
		cur = next
	}
	return append(out, cur)
}

// CoverAt projects every source onto line y and merges the result.
func CoverAt(sources []Source, y int64) (Cover, error) {
	ivs, err := ProjectAll(sources, y)
	if err != nil {
		return nil, err
	}
	return Merge(ivs), nil
}

// Package geom provides the integer point and interval types used by the
// coverage engine.
//
// All coordinates are int64. Puzzle inputs routinely place points in the
// millions and composite keys multiply those by a further few million, which
// overflows 32 bits.
//
// # Range
//
// Coordinates are usable within ±[MaxCoordinate]. Inside that range every
// distance, projected interval end and summed cover length stays far below
// the int64 limit, so the engine does no overflow checks of its own. Parsers
// and query validation reject values outside it.
//
// # Points
//
// [Point] is a comparable value type, so it can be used directly as a map key.
// Distances are Manhattan (L1):
//
//	a := geom.Point{X: 8, Y: 7}
//	b := geom.Point{X: 2, Y: 10}
//	a.Distance(b) // 9
//
// # Intervals
//
// [Interval] is inclusive on both ends. A single position is the interval
// [x, x] with length 1.
package geom

import (
	"cmp"
	"fmt"
)

// MaxCoordinate bounds the absolute value of any coordinate the engine accepts.
const MaxCoordinate int64 = 1 << 50

// InRange reports whether v lies in [-MaxCoordinate, MaxCoordinate].
func InRange(v int64) bool {
	return -MaxCoordinate <= v && v <= MaxCoordinate
}

// Point is an integer position on the plane.
type Point struct {
	X int64 `json:"x"`
	Y int64 `json:"y"`
}

// Distance returns the Manhattan distance between p and q.
func (p Point) Distance(q Point) int64 {
	return abs(p.X-q.X) + abs(p.Y-q.Y)
}

// Compare orders points by X, then Y. It returns -1, 0 or +1 and is suitable
// for slices.SortFunc.
func (p Point) Compare(q Point) int {
	if c := cmp.Compare(p.X, q.X); c != 0 {
		return c
	}
	return cmp.Compare(p.Y, q.Y)
}

// String returns the point formatted as "(x,y)".
func (p Point) String() string {
	return fmt.Sprintf("(%d,%d)", p.X, p.Y)
}

// Interval is an inclusive integer range [Start, End] with Start <= End.
type Interval struct {
	Start int64 `json:"start"`
	End   int64 `json:"end"`
}

// Len returns the number of integer positions in the interval.
func (iv Interval) Len() int64 {
	return iv.End - iv.Start + 1
}

// Contains reports whether x lies inside the interval.
func (iv Interval) Contains(x int64) bool {
	return iv.Start <= x && x <= iv.End
}

// Compare orders intervals by Start, then End.
func (iv Interval) Compare(o Interval) int {
	if c := cmp.Compare(iv.Start, o.Start); c != 0 {
		return c
	}
	return cmp.Compare(iv.End, o.End)
}

// String returns the interval formatted as "[start,end]".
func (iv Interval) String() string {
	return fmt.Sprintf("[%d,%d]", iv.Start, iv.End)
}

func abs(v int64) int64 {
	if v < 0 {
		return -v
	}
	return v
}

package coverage

import (
	"slices"

	"github.com/matzehuels/beaconzone/pkg/geom"
)

// WitnessSet is a deduplicated set of witness points kept in ascending
// (X, Y) order. The zero value is an empty set ready to use.
type WitnessSet struct {
	points []geom.Point
}

// NewWitnessSet returns a set holding the given points, duplicates removed.
func NewWitnessSet(points ...geom.Point) WitnessSet {
	var ws WitnessSet
	for _, p := range points {
		ws.Add(p)
	}
	return ws
}

// Add inserts p, keeping the set sorted. It reports whether p was new.
func (ws *WitnessSet) Add(p geom.Point) bool {
	i, found := slices.BinarySearchFunc(ws.points, p, geom.Point.Compare)
	if found {
		return false
	}
	ws.points = slices.Insert(ws.points, i, p)
	return true
}

// Contains reports whether p is in the set.
func (ws WitnessSet) Contains(p geom.Point) bool {
	_, found := slices.BinarySearchFunc(ws.points, p, geom.Point.Compare)
	return found
}

// Len returns the number of distinct witnesses.
func (ws WitnessSet) Len() int { return len(ws.points) }

// Points returns a copy of the witnesses in iteration order.
func (ws WitnessSet) Points() []geom.Point {
	return slices.Clone(ws.points)
}

// OnLine returns the witnesses with Y == y, ordered by X.
func (ws WitnessSet) OnLine(y int64) []geom.Point {
	var out []geom.Point
	for _, p := range ws.points {
		if p.Y == y {
			out = append(out, p)
		}
	}
	return out
}

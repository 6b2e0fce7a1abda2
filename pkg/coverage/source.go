package coverage

import (
	"maps"
	"slices"

	bzerrors "github.com/matzehuels/beaconzone/pkg/errors"
	"github.com/matzehuels/beaconzone/pkg/geom"
)

// Source is a diamond-shaped coverage region: every point within Radius
// (Manhattan) of Origin is covered.
type Source struct {
	Origin geom.Point `json:"origin"`
	Radius int64      `json:"radius"`
}

// Covers reports whether p lies inside the source's diamond.
func (s Source) Covers(p geom.Point) bool {
	return s.Origin.Distance(p) <= s.Radius
}

// Record pairs a source origin with the witness observed for it.
type Record struct {
	Origin  geom.Point
	Witness geom.Point
}

// NewSource builds a source at origin whose radius is the distance to the
// nearest point in candidates.
//
// Ties between equidistant witnesses go to the first one in the set's
// iteration order, which is ascending (X, Y). NewSource returns an
// ErrCodeNoWitness error when candidates is empty.
func NewSource(origin geom.Point, candidates WitnessSet) (Source, error) {
	if candidates.Len() == 0 {
		return Source{}, bzerrors.New(bzerrors.ErrCodeNoWitness, "source %s has no witness candidates", origin)
	}

	best := int64(-1)
	for _, w := range candidates.points {
		if d := origin.Distance(w); best < 0 || d < best {
			best = d
		}
	}
	return Source{Origin: origin, Radius: best}, nil
}

// Build turns records into sources and the set of every witness seen.
//
// Each origin is calibrated against the full witness set rather than only its
// own record's witness, so a source never reaches past any known witness.
// Repeated origins collapse into one source. The returned sources are sorted
// by origin.
func Build(records []Record) ([]Source, WitnessSet, error) {
	witnesses := NewWitnessSet()
	for _, r := range records {
		witnesses.Add(r.Witness)
	}

	byOrigin := make(map[geom.Point]Source, len(records))
	for _, r := range records {
		if _, ok := byOrigin[r.Origin]; ok {
			continue
		}
		s, err := NewSource(r.Origin, witnesses)
		if err != nil {
			return nil, WitnessSet{}, err
		}
		byOrigin[r.Origin] = s
	}

	sources := slices.SortedFunc(maps.Values(byOrigin), func(a, b Source) int {
		return a.Origin.Compare(b.Origin)
	})
	return sources, witnesses, nil
}

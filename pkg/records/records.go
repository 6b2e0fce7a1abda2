// Package records parses sensor reports into coverage records.
//
// Each non-blank input line has the form
//
//	Sensor at x=2, y=18: closest beacon is at x=-2, y=15
//
// The sensor becomes a coverage source origin and the beacon its witness.
// Malformed lines are reported as *errors.RecordError values carrying the
// 1-based line number; parsing never panics.
package records

import (
	"bufio"
	"io"
	"regexp"
	"strconv"
	"strings"

	"github.com/matzehuels/beaconzone/pkg/coverage"
	bzerrors "github.com/matzehuels/beaconzone/pkg/errors"
	"github.com/matzehuels/beaconzone/pkg/geom"
)

var recordRE = regexp.MustCompile(
	`^Sensor at x=(-?\d+),\s*y=(-?\d+):\s*closest beacon is at x=(-?\d+),\s*y=(-?\d+)$`)

// Parse reads every record from r. Blank lines are skipped.
func Parse(r io.Reader) ([]coverage.Record, error) {
	var result []coverage.Record

	scanner := bufio.NewScanner(r)
	lineNo := 0
	for scanner.Scan() {
		lineNo++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		rec, err := ParseLine(line)
		if err != nil {
			return nil, &bzerrors.RecordError{Line: lineNo, Text: line, Err: err}
		}
		result = append(result, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, bzerrors.Wrap(bzerrors.ErrCodeInvalidInput, err, "read records")
	}

	return result, nil
}

// ParseLine parses a single report line. Coordinates must lie within
// ±geom.MaxCoordinate.
func ParseLine(line string) (coverage.Record, error) {
	m := recordRE.FindStringSubmatch(strings.TrimSpace(line))
	if m == nil {
		return coverage.Record{}, errMalformed
	}

	var v [4]int64
	for i := range v {
		n, err := strconv.ParseInt(m[i+1], 10, 64)
		if err != nil {
			return coverage.Record{}, err
		}
		if !geom.InRange(n) {
			return coverage.Record{}, bzerrors.New(bzerrors.ErrCodeInvalidRecord,
				"coordinate %d outside [-%d,%d]", n, geom.MaxCoordinate, geom.MaxCoordinate)
		}
		v[i] = n
	}

	return coverage.Record{
		Origin:  geom.Point{X: v[0], Y: v[1]},
		Witness: geom.Point{X: v[2], Y: v[3]},
	}, nil
}

// Format renders rec in the report line format accepted by ParseLine.
func Format(rec coverage.Record) string {
	var b strings.Builder
	b.WriteString("Sensor at x=")
	b.WriteString(strconv.FormatInt(rec.Origin.X, 10))
	b.WriteString(", y=")
	b.WriteString(strconv.FormatInt(rec.Origin.Y, 10))
	b.WriteString(": closest beacon is at x=")
	b.WriteString(strconv.FormatInt(rec.Witness.X, 10))
	b.WriteString(", y=")
	b.WriteString(strconv.FormatInt(rec.Witness.Y, 10))
	return b.String()
}

var errMalformed = bzerrors.New(bzerrors.ErrCodeInvalidRecord, "expected \"Sensor at x=<int>, y=<int>: closest beacon is at x=<int>, y=<int>\"")

// Package coverage resolves Manhattan-distance coverage on horizontal lines.
//
// # Overview
//
// A coverage [Source] is an origin point plus a radius. It covers every point
// whose Manhattan distance to the origin is at most the radius, a diamond on
// the integer grid. The radius is calibrated from witness points: each source
// reaches exactly as far as its nearest witness.
//
// The package answers two kinds of question about a collection of sources:
//
//   - How many positions on line y are covered? ([Count], [CountQuery])
//   - Which single point in the square [0,B]×[0,B] is not covered?
//     ([Search], [SearchQuery])
//
// # Pipeline
//
// Data flows one way:
//
//	records → sources (built once) → Project per line → Merge → Count | Search
//
// [Build] turns parsed records into sources and a deduplicated [WitnessSet].
// [Project] intersects one source with a line, producing at most one inclusive
// interval. [Merge] sweeps a set of intervals into a [Cover]: sorted, with no
// two intervals overlapping or touching. [Count] and [Search] are reductions
// over covers.
//
// # Touching Intervals
//
// Intervals are inclusive integer ranges, so [0,5] and [6,9] cover every
// position from 0 to 9 and merge into [0,9]. A one-position gap, as in [0,5]
// and [7,9], is kept: position 6 is uncovered, and that is exactly the kind of
// hole [Search] looks for.
//
// # Engine
//
// [Engine] bundles built sources with their witnesses and dispatches a
// [Query]. The two query kinds are distinct types, so callers state the mode
// explicitly instead of toggling a flag:
//
//	eng := coverage.NewEngine(sources, witnesses)
//	res, err := eng.Run(ctx, coverage.CountQuery{Line: 2000000})
//	res, err = eng.Run(ctx, coverage.SearchQuery{BoundMax: 4000000, Multiplier: 4000000})
//
// # Concurrency
//
// Sources and witness sets are read-only once built and safe to share between
// goroutines. Each line in a search is independent; [SearchParallel] splits
// the scan over a worker pool and returns the same answer as [Search].
package coverage

package coverage

// Count returns the number of positions on line y covered by cover, not
// counting positions occupied by a witness.
//
// cover must be the merged cover of line y. Only witnesses lying on y are
// subtracted, and each one only if the cover actually reaches it.
func Count(cover Cover, y int64, witnesses WitnessSet) int64 {
	n := cover.Len()
	for _, w := range witnesses.OnLine(y) {
		if cover.Contains(w.X) {
			n--
		}
	}
	return n
}

package tooldata

import "cutdata/internal/cutting"

// guardedFeedTable builds an interpolated table whose smallest row is real
// data. Interpolation answers every diameter below the second key with the
// second row, so a D=0 row carrying the first value is put in front; the
// first real row then takes part in interpolation.
func guardedFeedTable(rows map[float64]float64) *cutting.FeedTable {
	first, seen := 0.0, false
	for d := range rows {
		if !seen || d < first {
			first, seen = d, true
		}
	}
	if seen && first > 0 {
		withGuard := make(map[float64]float64, len(rows)+1)
		for d, v := range rows {
			withGuard[d] = v
		}
		withGuard[0] = rows[first]
		rows = withGuard
	}
	return cutting.MustFeedTable(cutting.Interpolate, rows)
}

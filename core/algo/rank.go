// Package algo has the pure ranking, tertile and statistics functions.
package algo

import (
	"sort"

	"github.com/worldsys/worldsys/schema"
)

// CompetitionRank ranks values so that rank 1 is the most core-like value for
// the given direction. Tied values share the lowest rank of their group and the
// next distinct value skips accordingly ("1224" ranking).
// The result is aligned with the input; the input is not modified.
func CompetitionRank(values []float64, dir schema.Direction) []int {
	order := make([]int, len(values))
	for i := range order {
		order[i] = i
	}
	sort.SliceStable(order, func(i, j int) bool {
		a, b := values[order[i]], values[order[j]]
		if dir == schema.Ascending {
			return a < b
		}
		return a > b
	})

	ranks := make([]int, len(values))
	for pos, idx := range order {
		if pos > 0 && values[idx] == values[order[pos-1]] {
			ranks[idx] = ranks[order[pos-1]]
			continue
		}
		ranks[idx] = pos + 1
	}
	return ranks
}

// CompetitionRankInts ranks integer scores ascending (lowest score gets rank 1)
// with the same tie handling as CompetitionRank.
func CompetitionRankInts(values []int) []int {
	floats := make([]float64, len(values))
	for i, v := range values {
		floats[i] = float64(v)
	}
	return CompetitionRank(floats, schema.Ascending)
}

package algo

import "github.com/worldsys/worldsys/schema"

// TertileSize returns total / 3 without rounding.
func TertileSize(total int) float64 {
	return float64(total) / 3
}

// Categorize maps a final rank to its tier. Boundaries are inclusive on the
// upper side: rank <= N/3 is Core, rank <= 2N/3 is Semi-Periphery.
func Categorize(finalRank, total int) schema.Category {
	tertile := TertileSize(total)
	r := float64(finalRank)
	switch {
	case r <= tertile:
		return schema.Core
	case r <= 2*tertile:
		return schema.SemiPeriphery
	default:
		return schema.Periphery
	}
}

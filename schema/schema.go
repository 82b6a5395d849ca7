// Package schema has models, enums and errors shared by all parts of worldsys.
package schema

// Record is one country of the dataset with its three raw indicator values.
type Record struct {
	Identifier string  `json:"identifier" yaml:"identifier"` // ISO-3166 alpha-3 code
	Name       string  `json:"name" yaml:"name"`             // Display label
	Economic   float64 `json:"economic" yaml:"economic"`     // GDP per capita in USD
	Military   float64 `json:"military" yaml:"military"`     // Global Militarization Index score
	Diplomatic float64 `json:"diplomatic" yaml:"diplomatic"` // Global Diplomacy Index (number of posts)
}

// Value returns the raw value of the given metric.
func (r Record) Value(m Metric) float64 {
	switch m {
	case Economic:
		return r.Economic
	case Military:
		return r.Military
	case Diplomatic:
		return r.Diplomatic
	default:
		return 0
	}
}

// RankedRecord is a Record annotated by the ranking engine.
type RankedRecord struct {
	Record
	Ranks          map[Metric]int `json:"ranks"`           // Ranks for active metrics only
	CompositeScore int            `json:"composite_score"` // Sum of active ranks
	FinalRank      int            `json:"final_rank"`      // Competition rank of CompositeScore, ascending
	Category       Category       `json:"category"`
}

// Rank returns the rank for the metric and whether the metric was active.
func (r RankedRecord) Rank(m Metric) (int, bool) {
	v, ok := r.Ranks[m]
	return v, ok
}

// Classification is the full output of one ranking run.
type Classification struct {
	Selection   Selection      `json:"selection"`
	Total       int            `json:"total"`        // N, the dataset size
	TertileSize float64        `json:"tertile_size"` // N / 3, not rounded
	Records     []RankedRecord `json:"records"`      // Same order as the input
}

// CategoryOf returns a map of identifier to category.
func (c Classification) CategoryOf() map[string]Category {
	out := make(map[string]Category, len(c.Records))
	for _, r := range c.Records {
		out[r.Identifier] = r.Category
	}
	return out
}

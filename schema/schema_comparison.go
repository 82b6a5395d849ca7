package schema

// ComparisonDetail holds one record's position under the base and target selections.
type ComparisonDetail struct {
	Identifier     string   `json:"identifier"`
	Name           string   `json:"name"`
	BeforeRank     int      `json:"before_rank"`
	AfterRank      int      `json:"after_rank"`
	DeltaRank      int      `json:"delta_rank"` // AfterRank - BeforeRank (negative means more core-like)
	BeforeCategory Category `json:"before_category"`
	AfterCategory  Category `json:"after_category"`
	Movement       Movement `json:"movement"`
}

// ComparisonSummary has high-level counts.
type ComparisonSummary struct {
	Promoted  int `json:"promoted"`
	Demoted   int `json:"demoted"`
	Unchanged int `json:"unchanged"`

	// BeforeCounts and AfterCounts are category sizes under each selection.
	BeforeCounts map[Category]int `json:"before_counts"`
	AfterCounts  map[Category]int `json:"after_counts"`
}

// ComparisonResult holds the comparison details and summary.
type ComparisonResult struct {
	Base    Selection          `json:"base"`
	Target  Selection          `json:"target"`
	Details []ComparisonDetail `json:"details"`
	Summary ComparisonSummary  `json:"summary"`
}

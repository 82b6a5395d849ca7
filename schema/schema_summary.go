package schema

// Distribution is the five-number summary plus mean of a set of values.
// It carries what a box plot needs.
type Distribution struct {
	Count  int     `json:"count"`
	Min    float64 `json:"min"`
	Q1     float64 `json:"q1"`
	Median float64 `json:"median"`
	Q3     float64 `json:"q3"`
	Max    float64 `json:"max"`
	Mean   float64 `json:"mean"`
}

// MetricSummary holds the distribution of one metric within each category.
type MetricSummary struct {
	Metric     Metric                    `json:"metric"`
	Active     bool                      `json:"active"`
	ByCategory map[Category]Distribution `json:"by_category"`
}

// Summary is the headline view of a classification.
type Summary struct {
	Selection   Selection        `json:"selection"`
	Total       int              `json:"total"`
	TertileSize float64          `json:"tertile_size"`
	Counts      map[Category]int `json:"counts"`
	Metrics     []MetricSummary  `json:"metrics"`
}

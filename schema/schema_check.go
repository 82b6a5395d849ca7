package schema

// CheckResult holds the health report of a dataset.
type CheckResult struct {
	Passed  bool          `json:"passed"`
	Source  string        `json:"source"`
	Total   int           `json:"total"`
	Issues  []string      `json:"issues"`
	Metrics []MetricCheck `json:"metrics"`
}

// MetricCheck summarizes the raw values of one metric.
type MetricCheck struct {
	Metric    Metric  `json:"metric"`
	Min       float64 `json:"min"`
	Max       float64 `json:"max"`
	Distinct  int     `json:"distinct"`   // Number of distinct values
	TieGroups int     `json:"tie_groups"` // Number of values shared by two or more records
	Largest   int     `json:"largest"`    // Size of the largest tie group
}

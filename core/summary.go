package core

import (
	"github.com/worldsys/worldsys/core/algo"
	"github.com/worldsys/worldsys/schema"
)

// Summarize builds the headline view of a classification: how many records
// fall in each category, and for every metric the distribution of raw values
// within each category. Inactive metrics are summarized too and flagged.
func Summarize(c schema.Classification) schema.Summary {
	counts := make(map[schema.Category]int, len(schema.AllCategories))
	byCategory := make(map[schema.Category][]schema.Record, len(schema.AllCategories))
	for _, cat := range schema.AllCategories {
		counts[cat] = 0
	}
	for _, r := range c.Records {
		counts[r.Category]++
		byCategory[r.Category] = append(byCategory[r.Category], r.Record)
	}

	metrics := make([]schema.MetricSummary, 0, len(schema.AllMetrics))
	for _, m := range schema.AllMetrics {
		ms := schema.MetricSummary{
			Metric:     m,
			Active:     c.Selection.IsActive(m),
			ByCategory: make(map[schema.Category]schema.Distribution, len(schema.AllCategories)),
		}
		for _, cat := range schema.AllCategories {
			records := byCategory[cat]
			values := make([]float64, len(records))
			for i, r := range records {
				values[i] = r.Value(m)
			}
			ms.ByCategory[cat] = algo.Describe(values)
		}
		metrics = append(metrics, ms)
	}

	return schema.Summary{
		Selection:   c.Selection,
		Total:       c.Total,
		TertileSize: c.TertileSize,
		Counts:      counts,
		Metrics:     metrics,
	}
}

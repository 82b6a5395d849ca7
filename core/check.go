package core

import (
	"math"

	"github.com/worldsys/worldsys/internal/dataset"
	"github.com/worldsys/worldsys/schema"
)

// Check reports the health of a loaded dataset.
func Check(ds dataset.Dataset) schema.CheckResult {
	return CheckRecords(ds.Source(), ds.Records())
}

// CheckRecords reports the health of raw records, which may be invalid.
// Issues come from dataset.Inspect; the per-metric section describes value
// ranges and ties, since ties decide how much the competition ranking skips.
func CheckRecords(source string, records []schema.Record) schema.CheckResult {
	issues := dataset.Inspect(records)
	result := schema.CheckResult{
		Passed:  len(issues) == 0,
		Source:  source,
		Total:   len(records),
		Issues:  issues,
		Metrics: make([]schema.MetricCheck, 0, len(schema.AllMetrics)),
	}
	if len(records) == 0 {
		return result
	}

	for _, m := range schema.AllMetrics {
		mc := schema.MetricCheck{Metric: m, Min: math.Inf(1), Max: math.Inf(-1)}
		groups := make(map[float64]int, len(records))
		for _, r := range records {
			v := r.Value(m)
			mc.Min = math.Min(mc.Min, v)
			mc.Max = math.Max(mc.Max, v)
			groups[v]++
		}
		mc.Distinct = len(groups)
		for _, size := range groups {
			if size > 1 {
				mc.TieGroups++
			}
			mc.Largest = max(mc.Largest, size)
		}
		result.Metrics = append(result.Metrics, mc)
	}
	return result
}

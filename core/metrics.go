package core

import (
	"strings"

	"github.com/worldsys/worldsys/schema"
)

// BuildMetricsModel describes every indicator and its state in sel.
func BuildMetricsModel(sel schema.Selection) schema.MetricsRenderModel {
	sel = sel.Normalize()
	rows := make([]schema.IndicatorRow, 0, len(schema.AllMetrics))
	for _, m := range schema.AllMetrics {
		rows = append(rows, schema.IndicatorRow{
			Indicator: schema.Indicators[m],
			Direction: sel.Direction(m),
			Active:    sel.IsActive(m),
		})
	}

	formula := "composite = " + strings.Join(rankTerms(sel), " + ")
	if len(sel.Active) == 0 {
		formula = "composite = (no active metric)"
	}

	return schema.MetricsRenderModel{
		Title:       "World-Systems Indicators",
		Description: "Each active indicator is ranked across all countries (1 = most core-like, ties share the lowest rank). The ranks are summed into a composite score, the composite is ranked ascending, and the final rank is split into thirds: Core, Semi-Periphery, Periphery.",
		Formula:     formula,
		Indicators:  rows,
	}
}

func rankTerms(sel schema.Selection) []string {
	terms := make([]string, 0, len(sel.Active))
	for _, m := range sel.Active {
		terms = append(terms, "rank("+string(m)+")")
	}
	return terms
}

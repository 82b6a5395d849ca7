package core

import (
	"fmt"
	"sort"

	"github.com/worldsys/worldsys/internal/dataset"
	"github.com/worldsys/worldsys/schema"
)

// Compare classifies the dataset under the base and the target selection and
// reports how each record moved between them.
func Compare(ds dataset.Dataset, base, target schema.Selection) (schema.ComparisonResult, error) {
	before, err := Classify(ds, base)
	if err != nil {
		return schema.ComparisonResult{}, fmt.Errorf("base selection: %w", err)
	}
	after, err := Classify(ds, target)
	if err != nil {
		return schema.ComparisonResult{}, fmt.Errorf("target selection: %w", err)
	}
	return compareClassifications(before, after), nil
}

// compareClassifications pairs records by identifier. Both classifications
// come from the same dataset, so every identifier is present on both sides.
func compareClassifications(before, after schema.Classification) schema.ComparisonResult {
	afterByID := make(map[string]schema.RankedRecord, len(after.Records))
	for _, r := range after.Records {
		afterByID[r.Identifier] = r
	}

	summary := schema.ComparisonSummary{
		BeforeCounts: make(map[schema.Category]int, len(schema.AllCategories)),
		AfterCounts:  make(map[schema.Category]int, len(schema.AllCategories)),
	}
	for _, cat := range schema.AllCategories {
		summary.BeforeCounts[cat] = 0
		summary.AfterCounts[cat] = 0
	}

	details := make([]schema.ComparisonDetail, 0, len(before.Records))
	for _, b := range before.Records {
		a, ok := afterByID[b.Identifier]
		if !ok {
			continue
		}
		d := schema.ComparisonDetail{
			Identifier:     b.Identifier,
			Name:           b.Name,
			BeforeRank:     b.FinalRank,
			AfterRank:      a.FinalRank,
			DeltaRank:      a.FinalRank - b.FinalRank,
			BeforeCategory: b.Category,
			AfterCategory:  a.Category,
			Movement:       movement(b.Category, a.Category),
		}
		switch d.Movement {
		case schema.Promoted:
			summary.Promoted++
		case schema.Demoted:
			summary.Demoted++
		default:
			summary.Unchanged++
		}
		summary.BeforeCounts[b.Category]++
		summary.AfterCounts[a.Category]++
		details = append(details, d)
	}

	// Records that changed tier first, then the biggest rank moves.
	sort.SliceStable(details, func(i, j int) bool {
		mi, mj := details[i].Movement != schema.Unchanged, details[j].Movement != schema.Unchanged
		if mi != mj {
			return mi
		}
		ai, aj := abs(details[i].DeltaRank), abs(details[j].DeltaRank)
		if ai != aj {
			return ai > aj
		}
		if details[i].AfterRank != details[j].AfterRank {
			return details[i].AfterRank < details[j].AfterRank
		}
		return details[i].Identifier < details[j].Identifier
	})

	return schema.ComparisonResult{
		Base:    before.Selection,
		Target:  after.Selection,
		Details: details,
		Summary: summary,
	}
}

// movement compares tiers; a lower tier index is more core-like.
func movement(before, after schema.Category) schema.Movement {
	switch b, a := before.Tier(), after.Tier(); {
	case a < b:
		return schema.Promoted
	case a > b:
		return schema.Demoted
	default:
		return schema.Unchanged
	}
}

func abs(v int) int {
	if v < 0 {
		return -v
	}
	return v
}

package core

import (
	"slices"
	"sort"

	"github.com/worldsys/worldsys/core/algo"
	"github.com/worldsys/worldsys/internal/dataset"
	"github.com/worldsys/worldsys/schema"
)

// Classify runs the ranking engine over the dataset for the given selection.
// It returns a *schema.ConfigurationError, and no partial result, when the
// selection has no active metric or names an unknown metric or direction.
func Classify(ds dataset.Dataset, sel schema.Selection) (schema.Classification, error) {
	return ClassifyRecords(ds.Records(), sel)
}

// ClassifyRecords is Classify over a plain slice. The slice is only read.
// An empty slice yields an empty classification.
func ClassifyRecords(records []schema.Record, sel schema.Selection) (schema.Classification, error) {
	sel = sel.Normalize()
	if err := sel.Validate(); err != nil {
		return schema.Classification{}, err
	}

	n := len(records)
	ranked := make([]schema.RankedRecord, n)
	for i, r := range records {
		ranked[i] = schema.RankedRecord{
			Record: r,
			Ranks:  make(map[schema.Metric]int, len(sel.Active)),
		}
	}

	composites := make([]int, n)
	values := make([]float64, n)
	for _, m := range sel.Active {
		for i, r := range records {
			values[i] = r.Value(m)
		}
		for i, rank := range algo.CompetitionRank(values, sel.Direction(m)) {
			ranked[i].Ranks[m] = rank
			composites[i] += rank
		}
	}

	finals := algo.CompetitionRankInts(composites)
	for i := range ranked {
		ranked[i].CompositeScore = composites[i]
		ranked[i].FinalRank = finals[i]
		ranked[i].Category = algo.Categorize(finals[i], n)
	}

	return schema.Classification{
		Selection:   sel,
		Total:       n,
		TertileSize: algo.TertileSize(n),
		Records:     ranked,
	}, nil
}

// Filter keeps the records whose category is in categories (all when empty),
// sorts them by final rank then identifier and returns at most limit of them
// (all when limit is 0). The classification itself is left untouched.
func Filter(c schema.Classification, categories []schema.Category, limit int) []schema.RankedRecord {
	out := make([]schema.RankedRecord, 0, len(c.Records))
	for _, r := range c.Records {
		if len(categories) == 0 || slices.Contains(categories, r.Category) {
			out = append(out, r)
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		if out[i].FinalRank != out[j].FinalRank {
			return out[i].FinalRank < out[j].FinalRank
		}
		return out[i].Identifier < out[j].Identifier
	})
	if limit > 0 && len(out) > limit {
		return out[:limit]
	}
	return out
}

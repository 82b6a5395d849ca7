package dataset

import (
	"fmt"
	"math"
	"strings"

	"github.com/worldsys/worldsys/schema"
)

// ValidationError lists every problem found in a dataset.
type ValidationError struct {
	Issues []string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid dataset: %s", strings.Join(e.Issues, "; "))
}

// Validate checks the authoring-time invariants: at least one record, non-empty
// and unique identifiers and names, finite non-negative metric values.
func Validate(records []schema.Record) error {
	issues := Inspect(records)
	if len(issues) == 0 {
		return nil
	}
	return &ValidationError{Issues: issues}
}

// Inspect returns the list of problems without failing.
func Inspect(records []schema.Record) []string {
	var issues []string
	if len(records) == 0 {
		return []string{"dataset has no records"}
	}

	ids := make(map[string]int, len(records))
	names := make(map[string]int, len(records))
	for i, r := range records {
		row := i + 1
		id := strings.TrimSpace(r.Identifier)
		name := strings.TrimSpace(r.Name)

		if id == "" {
			issues = append(issues, fmt.Sprintf("record %d: empty identifier", row))
		} else if prev, ok := ids[id]; ok {
			issues = append(issues, fmt.Sprintf("record %d: duplicate identifier %q (first seen at record %d)", row, id, prev))
		} else {
			ids[id] = row
		}

		if name == "" {
			issues = append(issues, fmt.Sprintf("record %d: empty name", row))
		} else if prev, ok := names[name]; ok {
			issues = append(issues, fmt.Sprintf("record %d: duplicate name %q (first seen at record %d)", row, name, prev))
		} else {
			names[name] = row
		}

		for _, m := range schema.AllMetrics {
			v := r.Value(m)
			switch {
			case math.IsNaN(v) || math.IsInf(v, 0):
				issues = append(issues, fmt.Sprintf("record %d (%s): %s is not a finite number", row, id, m))
			case v < 0:
				issues = append(issues, fmt.Sprintf("record %d (%s): %s is negative (%g)", row, id, m, v))
			}
		}
	}
	return issues
}

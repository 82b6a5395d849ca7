package schema

import (
	"maps"
	"strings"
)

// Selection is the set of active metrics plus the ranking direction of each metric.
// A zero Selection has no active metric and is rejected by the ranking engine.
type Selection struct {
	Active     []Metric             `json:"active"`
	Directions map[Metric]Direction `json:"directions,omitempty"`
}

// NewSelection returns a Selection with the given metrics active and default directions.
func NewSelection(metrics ...Metric) Selection {
	return Selection{Active: append([]Metric(nil), metrics...)}.Normalize()
}

// DefaultSelection activates all three metrics, all ranked descending.
func DefaultSelection() Selection {
	return NewSelection(AllMetrics...)
}

// WithDirection returns a copy of the Selection with the direction of m replaced.
func (s Selection) WithDirection(m Metric, d Direction) Selection {
	out := s.Normalize()
	if out.Directions == nil {
		out.Directions = make(map[Metric]Direction, 1)
	}
	out.Directions[m] = d
	return out
}

// Direction returns the ranking direction for m, defaulting to Descending.
func (s Selection) Direction(m Metric) Direction {
	if d, ok := s.Directions[m]; ok && d != "" {
		return d
	}
	return Descending
}

// IsActive reports whether m is part of the selection.
func (s Selection) IsActive(m Metric) bool {
	for _, a := range s.Active {
		if a == m {
			return true
		}
	}
	return false
}

// Normalize deduplicates the active metrics, orders them like AllMetrics and
// copies the directions map so the result shares no state with s.
// Unknown metrics are kept at the end so Validate can report them.
func (s Selection) Normalize() Selection {
	seen := make(map[Metric]bool, len(s.Active))
	var active []Metric
	for _, m := range AllMetrics {
		for _, a := range s.Active {
			if a == m && !seen[m] {
				active = append(active, m)
				seen[m] = true
			}
		}
	}
	for _, a := range s.Active {
		if _, ok := ValidMetrics[a]; !ok && !seen[a] {
			active = append(active, a)
			seen[a] = true
		}
	}
	var dirs map[Metric]Direction
	if len(s.Directions) > 0 {
		dirs = make(map[Metric]Direction, len(s.Directions))
		maps.Copy(dirs, s.Directions)
	}
	return Selection{Active: active, Directions: dirs}
}

// Validate returns a *ConfigurationError when the selection is empty or names
// an unknown metric or direction.
func (s Selection) Validate() error {
	if len(s.Active) == 0 {
		return NewConfigurationError("at least one metric must be active")
	}
	for _, m := range s.Active {
		if _, ok := ValidMetrics[m]; !ok {
			return NewConfigurationError("unknown metric %q. must be economic, military, diplomatic", m)
		}
	}
	for m, d := range s.Directions {
		if _, ok := ValidMetrics[m]; !ok {
			return NewConfigurationError("unknown metric %q in directions", m)
		}
		if _, ok := ValidDirections[d]; !ok {
			return NewConfigurationError("invalid direction %q for %s. must be asc or desc", d, m)
		}
	}
	return nil
}

// Label renders the active metrics as "GDP per Capita + GMI + GDI".
func (s Selection) Label() string {
	parts := make([]string, 0, len(s.Active))
	for _, m := range s.Active {
		parts = append(parts, ShortName(m))
	}
	return strings.Join(parts, " + ")
}

// Keys returns the active metrics as plain strings.
func (s Selection) Keys() []string {
	out := make([]string, len(s.Active))
	for i, m := range s.Active {
		out[i] = string(m)
	}
	return out
}

package schema

import (
	"fmt"
	"strings"
)

// splitList splits a comma-separated list and drops empty parts.
func splitList(items []string) []string {
	var out []string
	for _, item := range items {
		for p := range strings.SplitSeq(item, ",") {
			if p = strings.TrimSpace(p); p != "" {
				out = append(out, p)
			}
		}
	}
	return out
}

// ParseMetrics turns "economic,military" (or a list of such strings) into metrics.
// Short aliases gdp, gmi and gdi are accepted.
func ParseMetrics(items ...string) ([]Metric, error) {
	var out []Metric
	for _, p := range splitList(items) {
		m, err := ParseMetric(p)
		if err != nil {
			return nil, err
		}
		out = append(out, m)
	}
	return out, nil
}

// ParseMetric parses a single metric name or alias.
func ParseMetric(s string) (Metric, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "economic", "gdp", "gdp_per_capita":
		return Economic, nil
	case "military", "gmi", "gmi_score":
		return Military, nil
	case "diplomatic", "gdi", "gdi_score":
		return Diplomatic, nil
	default:
		return "", NewConfigurationError("unknown metric %q. must be economic, military, diplomatic", s)
	}
}

// ParseDirection parses asc/desc and their long forms.
func ParseDirection(s string) (Direction, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "desc", "descending", "higher", "highest":
		return Descending, nil
	case "asc", "ascending", "lower", "lowest":
		return Ascending, nil
	default:
		return "", NewConfigurationError("invalid direction %q. must be asc or desc", s)
	}
}

// ParseDirections parses "military=asc,economic=desc" pairs.
func ParseDirections(items ...string) (map[Metric]Direction, error) {
	out := make(map[Metric]Direction)
	for _, p := range splitList(items) {
		key, value, ok := strings.Cut(p, "=")
		if !ok {
			return nil, NewConfigurationError("invalid direction override %q. expected metric=asc|desc", p)
		}
		m, err := ParseMetric(key)
		if err != nil {
			return nil, err
		}
		d, err := ParseDirection(value)
		if err != nil {
			return nil, err
		}
		out[m] = d
	}
	return out, nil
}

// ParseCategory parses a category name case-insensitively.
func ParseCategory(s string) (Category, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "core":
		return Core, nil
	case "semi-periphery", "semi_periphery", "semiperiphery", "semi":
		return SemiPeriphery, nil
	case "periphery":
		return Periphery, nil
	default:
		return "", fmt.Errorf("unknown category %q. must be core, semi-periphery, periphery", s)
	}
}

// ParseCategories parses a comma-separated category filter.
func ParseCategories(items ...string) ([]Category, error) {
	var out []Category
	for _, p := range splitList(items) {
		c, err := ParseCategory(p)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

package schema

// Custom string types for type safety.
type (
	// Metric identifies one of the three indicators.
	Metric string

	// Direction says which end of a metric is more core-like.
	Direction string

	// Category is the world-systems tier.
	Category string

	// OutputMode represents the format of the output.
	OutputMode string

	// Movement describes how a record moved between two classifications.
	Movement string
)

// All metrics supported.
const (
	Economic   Metric = "economic"   // GDP per capita
	Military   Metric = "military"   // Global Militarization Index
	Diplomatic Metric = "diplomatic" // Global Diplomacy Index
)

// All ranking directions supported.
const (
	Descending Direction = "desc" // default: highest raw value gets rank 1
	Ascending  Direction = "asc"  // lowest raw value gets rank 1
)

// All categories, ordered from most to least core-like.
const (
	Core          Category = "Core"
	SemiPeriphery Category = "Semi-Periphery"
	Periphery     Category = "Periphery"
)

// All output modes supported.
const (
	CSVOut     OutputMode = "csv"
	TextOut    OutputMode = "text" // default
	JSONOut    OutputMode = "json"
	ParquetOut OutputMode = "parquet"
	XLSXOut    OutputMode = "xlsx"
)

// All movements between two classifications.
const (
	Promoted  Movement = "promoted"
	Demoted   Movement = "demoted"
	Unchanged Movement = "unchanged"
)

// AllMetrics lists the metrics in display order.
var AllMetrics = []Metric{Economic, Military, Diplomatic}

// AllCategories lists the categories in display order.
var AllCategories = []Category{Core, SemiPeriphery, Periphery}

// ValidMetrics lists all valid metrics.
var ValidMetrics = map[Metric]struct{}{
	Economic:   {},
	Military:   {},
	Diplomatic: {},
}

// ValidDirections lists all valid directions.
var ValidDirections = map[Direction]struct{}{
	Descending: {},
	Ascending:  {},
}

// ValidOutputModes lists all valid output modes.
var ValidOutputModes = map[OutputMode]struct{}{
	CSVOut:     {},
	TextOut:    {},
	JSONOut:    {},
	ParquetOut: {},
	XLSXOut:    {},
}

// FileOnlyOutputModes are binary formats that need --output-file.
var FileOnlyOutputModes = map[OutputMode]struct{}{
	ParquetOut: {},
	XLSXOut:    {},
}

// categoryOrder maps a category to its tier index (0 = Core).
var categoryOrder = map[Category]int{
	Core:          0,
	SemiPeriphery: 1,
	Periphery:     2,
}

// Tier returns 0 for Core, 1 for Semi-Periphery, 2 for Periphery and -1 otherwise.
func (c Category) Tier() int {
	if t, ok := categoryOrder[c]; ok {
		return t
	}
	return -1
}

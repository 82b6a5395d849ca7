package schema

// Indicator describes one metric for display purposes.
type Indicator struct {
	Metric      Metric `json:"metric"`
	Name        string `json:"name"`
	ShortName   string `json:"short_name"`
	Source      string `json:"source"`
	Unit        string `json:"unit"`
	Description string `json:"description"`
}

// IndicatorRow is an Indicator plus its state in the current selection.
type IndicatorRow struct {
	Indicator
	Direction Direction `json:"direction"`
	Active    bool      `json:"active"`
}

// MetricsRenderModel contains everything needed to display the indicator definitions.
type MetricsRenderModel struct {
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Formula     string         `json:"formula"`
	Indicators  []IndicatorRow `json:"indicators"`
}

// Indicators holds the static definition of every metric.
var Indicators = map[Metric]Indicator{
	Economic: {
		Metric:      Economic,
		Name:        "GDP per Capita",
		ShortName:   "GDP per Capita",
		Source:      "World Bank 2023/2024",
		Unit:        "USD",
		Description: "Economic output per person",
	},
	Military: {
		Metric:      Military,
		Name:        "Global Militarization Index",
		ShortName:   "GMI",
		Source:      "BICC 2022",
		Unit:        "score",
		Description: "Military resources relative to society",
	},
	Diplomatic: {
		Metric:      Diplomatic,
		Name:        "Global Diplomacy Index",
		ShortName:   "GDI",
		Source:      "Lowy Institute 2024",
		Unit:        "posts",
		Description: "Number of diplomatic missions",
	},
}

// ShortName returns the compact display name of a metric.
func ShortName(m Metric) string {
	if ind, ok := Indicators[m]; ok {
		return ind.ShortName
	}
	return string(m)
}

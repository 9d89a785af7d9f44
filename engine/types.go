package engine

import (
	"fmt"
	"strconv"
	"strings"
)

// ============================================================================
// ENGINE TYPES - Records, filters, and render-ready output
// ============================================================================

// ============================================================================
// RECORD - Generic data row
// ============================================================================

// Record is a single data row with string dimensions and numeric measures.
// Date columns are dimensions holding ISO dates ("2024-01-01").
//
//	Record{Dimensions["enzyme"]="Amylase", Measures["reaction_rate"]=5.1}
type Record struct {
	Dimensions map[string]string  `json:"dimensions"`
	Measures   map[string]float64 `json:"measures"`
}

// ============================================================================
// FILTERS
// ============================================================================

// Range is an inclusive numeric bound on one measure: Low <= v <= High.
// Low == High selects a single point.
type Range struct {
	Column string  `json:"column"`
	Low    float64 `json:"low"`
	High   float64 `json:"high"`
}

// Contains reports whether v lies inside the range.
func (r Range) Contains(v float64) bool {
	return r.Low <= v && v <= r.High
}

// String renders the bounds as a pair, e.g. "(9.0, 15.0)".
func (r Range) String() string {
	return fmt.Sprintf("(%s, %s)", formatBound(r.Low), formatBound(r.High))
}

func formatBound(v float64) string {
	s := strconv.FormatFloat(v, 'f', -1, 64)
	if !strings.ContainsAny(s, ".") {
		s += ".0"
	}
	return s
}

// Filters define which records to include.
// Dimension keys map to allowed values: OR within a dimension, AND across
// dimensions. Every range must hold. Empty = all.
type Filters struct {
	Dimensions map[string][]string `json:"dimensions,omitempty"`
	Ranges     []Range             `json:"ranges,omitempty"`
}

// HasFilter returns true if a specific dimension filter is set.
func (f Filters) HasFilter(dimension string) bool {
	if f.Dimensions == nil {
		return false
	}
	vals, ok := f.Dimensions[dimension]
	return ok && len(vals) > 0
}

// IsEmpty returns true if no filters are set.
func (f Filters) IsEmpty() bool {
	if len(f.Ranges) > 0 {
		return false
	}
	for _, vals := range f.Dimensions {
		if len(vals) > 0 {
			return false
		}
	}
	return true
}

// ============================================================================
// EXPLORESPEC - What the explorer page asks the engine to compute
// ============================================================================

// ExploreSpec describes one data-explorer render: which records to keep and
// which two columns to chart.
type ExploreSpec struct {
	Title      string  `json:"title"`
	Filters    Filters `json:"filters"`
	ChartX     string  `json:"chartX"`     // axis column (dimension or measure)
	ChartY     string  `json:"chartY"`     // value column (measure)
	ChartKind  string  `json:"chartKind"`  // "line", "bar"
	ChartTitle string  `json:"chartTitle"` // e.g. "Reaction Rate (µmol/min) vs Substrate Concentration (mM)"
}

// ============================================================================
// RESULT - Render-ready output
// ============================================================================

// Result is the engine's render-ready output for one explore call.
type Result struct {
	Success bool   `json:"success"`
	Title   string `json:"title"`
	Reply   string `json:"reply"`
	Summary string `json:"summary"`

	Total   int `json:"total"`
	Matched int `json:"matched"`

	Dataset     *TableData   `json:"dataset"`
	Filtered    *TableData   `json:"filtered"`
	ChartConfig *ChartConfig `json:"chartConfig,omitempty"`

	// View is the filtered view the tables and chart were built from.
	View RecordView `json:"-"`
}

// ============================================================================
// GROUP - Intermediate aggregation result
// ============================================================================

// Group represents a grouped/aggregated result.
type Group struct {
	Key   string     `json:"key"`
	Label string     `json:"label"`
	Value float64    `json:"value"`
	Count int        `json:"count"`
	View  RecordView `json:"-"` // Sub-view for records in this group (zero-copy)
}

// ============================================================================
// CHART TYPES
// ============================================================================

// ChartConfig defines how to render a chart.
type ChartConfig struct {
	ChartType  string        `json:"chartType"`
	Title      string        `json:"title"`
	XAxis      string        `json:"xAxis,omitempty"`
	YAxis      string        `json:"yAxis,omitempty"`
	Series     []ChartSeries `json:"series"`
	Colors     []string      `json:"colors,omitempty"`
	ShowLegend bool          `json:"showLegend"`
	ShowGrid   bool          `json:"showGrid"`
}

// ChartSeries represents a data series in a chart.
type ChartSeries struct {
	Name  string       `json:"name"`
	Data  []ChartPoint `json:"data"`
	Color string       `json:"color,omitempty"`
}

// ChartPoint represents a single data point.
type ChartPoint struct {
	Label string  `json:"label"`
	Value float64 `json:"value"`
}

// ============================================================================
// TABLE TYPES
// ============================================================================

// TableData defines how to render a table.
type TableData struct {
	Title   string     `json:"title"`
	Columns []Column   `json:"columns"`
	Rows    [][]string `json:"rows"`
	Summary *Summary   `json:"summary,omitempty"`
}

// Column defines a table column.
type Column struct {
	Key   string `json:"key"`
	Label string `json:"label"`
	Type  string `json:"type"`  // "text", "number", "date"
	Align string `json:"align"` // "left", "right"
}

// Summary provides totals for a table.
type Summary struct {
	Label  string            `json:"label"`
	Values map[string]string `json:"values"`
}

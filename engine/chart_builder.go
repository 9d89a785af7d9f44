package engine

import "fmt"

// ============================================================================
// CHART BUILDER - Produces ChartConfig from projections or groups
// ============================================================================
// Charts are always built from the view the caller passes in. The explorer
// passes the filtered view, never the source dataset.
// ============================================================================

// Default color palette for chart series.
var defaultColors = []string{
	"#4F46E5", "#10B981", "#F59E0B", "#EF4444", "#8B5CF6",
	"#06B6D4", "#EC4899", "#84CC16", "#F97316", "#6366F1",
}

// Project produces the two-column (x, y) projection of a view, one point
// per record in view order. x may be any column; y must be numeric.
func Project(view RecordView, x, y string) ([]ChartPoint, error) {
	if !HasMeasure(view, y) {
		if HasDimension(view, y) {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotNumeric, y)
		}
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, y)
	}
	numericX := HasMeasure(view, x)
	if !numericX && !HasDimension(view, x) {
		return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, x)
	}

	points := make([]ChartPoint, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		points = append(points, ChartPoint{
			Label: cellText(view, i, x, numericX),
			Value: view.Measure(i, y),
		})
	}
	return points, nil
}

// BuildChart produces a single-series ChartConfig from projected points.
// Returns nil when there is nothing to plot.
func BuildChart(spec ExploreSpec, points []ChartPoint, xLabel, yLabel string) *ChartConfig {
	if len(points) == 0 {
		return nil
	}

	chartType := spec.ChartKind
	if chartType == "" {
		chartType = "line"
	}

	config := &ChartConfig{
		ChartType:  chartType,
		Title:      spec.ChartTitle,
		XAxis:      xLabel,
		YAxis:      yLabel,
		ShowLegend: false,
		ShowGrid:   true,
		Series: []ChartSeries{{
			Name: yLabel,
			Data: points,
		}},
	}
	config.Colors = assignColors(len(config.Series))
	return config
}

// BuildGroupChart produces a single-series chart from aggregated groups.
func BuildGroupChart(title, chartType, xLabel, aggregation string, groups []Group) *ChartConfig {
	if len(groups) == 0 {
		return nil
	}
	if chartType == "" {
		chartType = "bar"
	}

	points := make([]ChartPoint, 0, len(groups))
	for _, g := range groups {
		points = append(points, ChartPoint{
			Label: g.Label,
			Value: g.Value,
		})
	}

	yLabel := LabelForAggregation(aggregation)
	config := &ChartConfig{
		ChartType:  chartType,
		Title:      title,
		XAxis:      xLabel,
		YAxis:      yLabel,
		ShowLegend: false,
		ShowGrid:   true,
		Series:     []ChartSeries{{Name: yLabel, Data: points}},
	}
	config.Colors = assignColors(len(config.Series))
	return config
}

func assignColors(count int) []string {
	colors := make([]string, count)
	for i := 0; i < count; i++ {
		colors[i] = defaultColors[i%len(defaultColors)]
	}
	return colors
}

package engine

import (
	"github.com/spektr-org/stemfolio/schema"
)

// ============================================================================
// EXECUTOR - Data explorer pipeline
// ============================================================================
// Entry point: Explore(spec, view, schema, opts...)
//
// Pipeline:
//   1. Apply filters from ExploreSpec -> SubView
//   2. Build the full dataset table and the filtered table
//   3. Project (ChartX, ChartY) from the FILTERED view -> chart
//   4. Summarise the filter
//
// The source view is never mutated; every call returns fresh output.
// ============================================================================

// Explore runs an ExploreSpec against a view and returns a render-ready Result.
// Filter errors (unknown column, inverted range) are returned unchanged.
func Explore(spec ExploreSpec, view RecordView, sch schema.Config, opts ...Option) (*Result, error) {
	cfg := applyOptions(opts)

	filtered, err := ApplyFilters(view, spec.Filters)
	if err != nil {
		cfg.Logger.Debugw("explore filter rejected", "dataset", sch.Name, "error", err)
		return nil, err
	}

	cfg.Logger.Debugw("explore filtered",
		"dataset", sch.Name,
		"total", view.Len(),
		"matched", filtered.Len(),
		"ranges", len(spec.Filters.Ranges))

	result := &Result{
		Success:  true,
		Title:    spec.Title,
		Total:    view.Len(),
		Matched:  filtered.Len(),
		Dataset:  BuildTable(spec.Title, view, sch),
		Filtered: BuildTable("Filtered Results", filtered, sch),
		Summary:  BuildSummary(spec.Filters, filtered.Len(), view.Len(), sch),
		View:     filtered,
	}

	if spec.ChartX != "" && spec.ChartY != "" {
		points, err := Project(filtered, spec.ChartX, spec.ChartY)
		if err != nil {
			return nil, err
		}
		result.ChartConfig = BuildChart(spec, points, sch.DisplayName(spec.ChartX), sch.DisplayName(spec.ChartY))
	}

	if filtered.Len() == 0 {
		result.Reply = "No records match the selected range."
	}

	return result, nil
}

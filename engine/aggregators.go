package engine

import (
	"fmt"
	"math"
	"sort"
	"strconv"
	"strings"
	"time"
)

// ============================================================================
// AGGREGATORS - Grouping, Aggregation, and Sorting via RecordView
// ============================================================================
// All functions operate on RecordView. Grouping produces SubViews (index
// lists into the parent view).
// ============================================================================

// GroupAndAggregate groups a view by one column and aggregates a measure.
// Pipeline: group -> aggregate -> sort.
// The group column may be a dimension or a measure; measure values are
// grouped by their formatted text (2019 -> "2019").
func GroupAndAggregate(view RecordView, groupBy, measure, aggregation, sortBy string) []Group {
	if view.Len() == 0 {
		return nil
	}

	var groups []Group
	if groupBy == "" {
		groups = []Group{{Key: "all", Label: "Total", View: view}}
	} else {
		groups = groupBySingle(view, groupBy)
	}

	for i := range groups {
		aggregateGroup(&groups[i], measure, aggregation)
	}

	SortGroups(groups, sortBy)
	return groups
}

// ============================================================================
// GROUPING
// ============================================================================

func groupBySingle(view RecordView, column string) []Group {
	grouped := make(map[string][]int)
	order := make([]string, 0)

	numeric := !HasDimension(view, column) && HasMeasure(view, column)
	for i := 0; i < view.Len(); i++ {
		key := cellText(view, i, column, numeric)
		if _, exists := grouped[key]; !exists {
			order = append(order, key)
		}
		grouped[key] = append(grouped[key], i)
	}

	groups := make([]Group, 0, len(order))
	for _, key := range order {
		groups = append(groups, Group{
			Key:   key,
			Label: key,
			View:  newSubView(view, grouped[key]),
		})
	}
	return groups
}

// cellText returns the display text of a cell.
func cellText(view RecordView, i int, column string, numeric bool) string {
	if numeric {
		return FormatNumber(view.Measure(i, column))
	}
	return view.Dimension(i, column)
}

// ============================================================================
// AGGREGATION
// ============================================================================

func aggregateGroup(group *Group, measure string, aggregation string) {
	group.Count = group.View.Len()
	if group.Count == 0 {
		return
	}

	switch aggregation {
	case "count":
		group.Value = float64(group.Count)
	case "avg":
		group.Value = AvgMeasure(group.View, measure)
	case "max":
		group.Value = MaxMeasure(group.View, measure)
	case "min":
		group.Value = MinMeasure(group.View, measure)
	default:
		group.Value = SumMeasure(group.View, measure)
	}
}

// SumMeasure sums a named measure across a view.
func SumMeasure(view RecordView, measure string) float64 {
	var total float64
	for i := 0; i < view.Len(); i++ {
		total += view.Measure(i, measure)
	}
	return total
}

// AvgMeasure computes average of a named measure.
func AvgMeasure(view RecordView, measure string) float64 {
	n := view.Len()
	if n == 0 {
		return 0
	}
	return SumMeasure(view, measure) / float64(n)
}

// MaxMeasure returns the largest value of a named measure.
func MaxMeasure(view RecordView, measure string) float64 {
	n := view.Len()
	if n == 0 {
		return 0
	}
	m := math.Inf(-1)
	for i := 0; i < n; i++ {
		if v := view.Measure(i, measure); v > m {
			m = v
		}
	}
	return m
}

// MinMeasure returns the smallest value of a named measure.
func MinMeasure(view RecordView, measure string) float64 {
	n := view.Len()
	if n == 0 {
		return 0
	}
	m := math.Inf(1)
	for i := 0; i < n; i++ {
		if v := view.Measure(i, measure); v < m {
			m = v
		}
	}
	return m
}

// ============================================================================
// SORTING
// ============================================================================

// SortGroups sorts aggregate groups by the specified sort mode.
func SortGroups(groups []Group, sortBy string) {
	switch sortBy {
	case "value_desc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value > groups[j].Value })
	case "value_asc":
		sort.SliceStable(groups, func(i, j int) bool { return groups[i].Value < groups[j].Value })
	case "chronological", "date_asc":
		sort.SliceStable(groups, func(i, j int) bool { return parseSortableDate(groups[i].Key) < parseSortableDate(groups[j].Key) })
	case "reverse_chronological", "date_desc":
		sort.SliceStable(groups, func(i, j int) bool { return parseSortableDate(groups[i].Key) > parseSortableDate(groups[j].Key) })
	case "label_asc", "alpha_asc":
		sort.SliceStable(groups, func(i, j int) bool { return strings.ToLower(groups[i].Key) < strings.ToLower(groups[j].Key) })
	default:
		// preserve grouping order
	}
}

var sortableLayouts = []string{"2006-01-02", "Jan-2006", "2006-01", "2006"}

// parseSortableDate converts "2024-01-05", "Jan-2026" or "2019" to a
// sortable int (yyyymmdd). Unparseable keys sort first.
func parseSortableDate(key string) int {
	key = strings.TrimSpace(key)
	for _, layout := range sortableLayouts {
		if t, err := time.Parse(layout, key); err == nil {
			return t.Year()*10000 + int(t.Month())*100 + t.Day()
		}
	}
	return 0
}

// ============================================================================
// FORMATTING UTILITIES
// ============================================================================

// FormatNumber renders a value with the fewest digits that round-trip:
// 5.1 -> "5.1", 300 -> "300", 0.00005 -> "0.00005".
func FormatNumber(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

// FormatInt formats an integer with comma separators.
func FormatInt(n int) string {
	if n < 0 {
		return "-" + FormatInt(-n)
	}
	if n < 1000 {
		return fmt.Sprintf("%d", n)
	}
	return fmt.Sprintf("%s,%03d", FormatInt(n/1000), n%1000)
}

// UniqueValues returns distinct values for a dimension across a view.
func UniqueValues(view RecordView, dimension string) []string {
	seen := make(map[string]bool)
	var result []string
	for i := 0; i < view.Len(); i++ {
		val := view.Dimension(i, dimension)
		if val != "" && !seen[val] {
			seen[val] = true
			result = append(result, val)
		}
	}
	return result
}

// LabelForAggregation returns a human-readable label for an aggregation type.
func LabelForAggregation(aggregation string) string {
	switch aggregation {
	case "sum":
		return "Total"
	case "count":
		return "Count"
	case "avg":
		return "Average"
	case "max":
		return "Maximum"
	case "min":
		return "Minimum"
	default:
		return "Value"
	}
}

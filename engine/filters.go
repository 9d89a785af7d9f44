package engine

import (
	"fmt"
	"math"
	"strings"
)

// ============================================================================
// FILTERS - Dimension sets and numeric ranges via RecordView
// ============================================================================
// Single-pass filter: checks ALL constraints per record in one loop.
// Returns a SubView (index list into parent), so the source view is never
// copied or mutated and record order is preserved.
// ============================================================================

// ApplyFilters returns a view of records matching every dimension filter and
// every range. Dimensions are AND-combined; values within a dimension are
// OR-combined (case-insensitive). Empty filter = no restriction (returns the
// original view).
func ApplyFilters(view RecordView, filters Filters) (RecordView, error) {
	for _, r := range filters.Ranges {
		if err := checkRange(view, r); err != nil {
			return nil, err
		}
	}
	for dim, allowed := range filters.Dimensions {
		if len(allowed) > 0 && !HasDimension(view, dim) {
			return nil, fmt.Errorf("%w: %q", ErrColumnNotFound, dim)
		}
	}

	if filters.IsEmpty() {
		return view, nil
	}

	// Pre-build lowercase lookup sets for each dimension filter
	sets := make(map[string]map[string]bool)
	for dim, allowed := range filters.Dimensions {
		if len(allowed) > 0 {
			sets[dim] = toLowerSet(allowed)
		}
	}

	return Where(view, func(i int) bool {
		return matches(view, i, sets, filters.Ranges)
	}), nil
}

// Where returns a SubView of the records for which keep reports true, in
// source order.
func Where(view RecordView, keep func(i int) bool) RecordView {
	n := view.Len()
	indices := make([]int, 0, n)
	for i := 0; i < n; i++ {
		if keep(i) {
			indices = append(indices, i)
		}
	}
	return newSubView(view, indices)
}

// ApplyRange keeps the records whose numeric column lies in [low, high].
func ApplyRange(view RecordView, column string, low, high float64) (RecordView, error) {
	return ApplyFilters(view, Filters{Ranges: []Range{{Column: column, Low: low, High: high}}})
}

// Bounds returns the min..max range of a numeric column. Filtering with it
// keeps every record.
func Bounds(view RecordView, column string) (Range, error) {
	if !HasMeasure(view, column) {
		if HasDimension(view, column) {
			return Range{}, fmt.Errorf("%w: %q", ErrColumnNotNumeric, column)
		}
		return Range{}, fmt.Errorf("%w: %q", ErrColumnNotFound, column)
	}
	return Range{
		Column: column,
		Low:    MinMeasure(view, column),
		High:   MaxMeasure(view, column),
	}, nil
}

func matches(view RecordView, i int, sets map[string]map[string]bool, ranges []Range) bool {
	for dim, set := range sets {
		if !set[strings.ToLower(view.Dimension(i, dim))] {
			return false
		}
	}
	for _, r := range ranges {
		if !r.Contains(view.Measure(i, r.Column)) {
			return false
		}
	}
	return true
}

// checkRange enforces the filter contract: the column exists, is numeric,
// and Low <= High. Inverted bounds are rejected, not swapped.
func checkRange(view RecordView, r Range) error {
	if !HasMeasure(view, r.Column) {
		if HasDimension(view, r.Column) {
			return fmt.Errorf("%w: %q", ErrColumnNotNumeric, r.Column)
		}
		return fmt.Errorf("%w: %q", ErrColumnNotFound, r.Column)
	}
	if math.IsNaN(r.Low) || math.IsNaN(r.High) {
		return fmt.Errorf("%w: NaN bound on %q", ErrInvalidRange, r.Column)
	}
	if r.Low > r.High {
		return fmt.Errorf("%w: low %v > high %v on %q", ErrInvalidRange, r.Low, r.High, r.Column)
	}
	return nil
}

// toLowerSet converts a string slice to a lowercase lookup set.
func toLowerSet(items []string) map[string]bool {
	set := make(map[string]bool, len(items))
	for _, item := range items {
		set[strings.ToLower(item)] = true
	}
	return set
}

package engine

import (
	"fmt"
	"sort"
	"strings"

	"github.com/spektr-org/stemfolio/schema"
)

// ============================================================================
// TEXT BUILDER - Human-readable summary of a filter
// ============================================================================

// BuildSummary describes which ranges were applied and how many records
// survived, e.g.
//
//	Filtered Results for Reaction Rate (µmol/min) (9.0, 15.0): 3 of 5 records
func BuildSummary(filters Filters, matched, total int, sch schema.Config) string {
	if filters.IsEmpty() {
		return fmt.Sprintf("All %s records", FormatInt(total))
	}

	parts := make([]string, 0, len(filters.Ranges)+len(filters.Dimensions))
	for _, r := range filters.Ranges {
		parts = append(parts, fmt.Sprintf("%s %s", sch.DisplayName(r.Column), r.String()))
	}
	dims := make([]string, 0, len(filters.Dimensions))
	for dim := range filters.Dimensions {
		if filters.HasFilter(dim) {
			dims = append(dims, dim)
		}
	}
	sort.Strings(dims)
	for _, dim := range dims {
		parts = append(parts, fmt.Sprintf("%s in [%s]", sch.DisplayName(dim), strings.Join(filters.Dimensions[dim], ", ")))
	}

	return fmt.Sprintf("Filtered Results for %s: %s of %s records",
		strings.Join(parts, " and "), FormatInt(matched), FormatInt(total))
}

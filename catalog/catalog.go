// Package catalog holds the literal datasets shown by the data explorer.
//
// A Catalog is built once by New and is read-only afterwards, so one
// instance can be shared by every session.
package catalog

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spektr-org/stemfolio/engine"
	"github.com/spektr-org/stemfolio/schema"
)

// ErrUnknownVariant is returned by ParseVariant and New.
var ErrUnknownVariant = errors.New("unknown catalog variant")

// Variant selects which set of datasets a catalog carries.
type Variant string

const (
	Biochemistry Variant = "biochemistry"
	Physical     Variant = "physical"
)

// Variants lists the supported variants.
func Variants() []Variant {
	return []Variant{Biochemistry, Physical}
}

// ParseVariant accepts a variant name in any case. An empty name selects
// Biochemistry.
func ParseVariant(s string) (Variant, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "", string(Biochemistry):
		return Biochemistry, nil
	case string(Physical):
		return Physical, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownVariant, s)
}

// Entry is one dataset together with how the explorer presents it.
type Entry struct {
	ID      string
	Name    string
	Heading string
	Schema  schema.Config
	View    engine.RecordView

	// FilterColumns are the measures that get a range slider.
	FilterColumns []string

	ChartX     string
	ChartY     string
	ChartKind  string
	ChartTitle string
}

// FilterLabel is the slider caption for a filter column.
func (e *Entry) FilterLabel(column string) string {
	return "Filter by " + e.Schema.DisplayName(column)
}

// DefaultRanges returns the full bounds of every filter column, which is
// where the sliders start.
func (e *Entry) DefaultRanges() []engine.Range {
	ranges := make([]engine.Range, 0, len(e.FilterColumns))
	for _, col := range e.FilterColumns {
		r, err := engine.Bounds(e.View, col)
		if err != nil {
			continue
		}
		ranges = append(ranges, r)
	}
	return ranges
}

// Spec builds the explore request for this dataset. Filter columns without
// a range in ranges keep their full bounds.
func (e *Entry) Spec(ranges []engine.Range, dims map[string][]string) engine.ExploreSpec {
	set := make(map[string]bool, len(ranges))
	for _, r := range ranges {
		set[r.Column] = true
	}
	all := append([]engine.Range(nil), ranges...)
	for _, r := range e.DefaultRanges() {
		if !set[r.Column] {
			all = append(all, r)
		}
	}

	return engine.ExploreSpec{
		Title:      e.Heading,
		Filters:    engine.Filters{Dimensions: dims, Ranges: all},
		ChartX:     e.ChartX,
		ChartY:     e.ChartY,
		ChartKind:  e.ChartKind,
		ChartTitle: e.ChartTitle,
	}
}

// Catalog is an ordered, immutable set of datasets.
type Catalog struct {
	variant Variant
	entries []*Entry
	index   map[string]*Entry
}

// New builds the catalog for a variant.
func New(variant Variant) (*Catalog, error) {
	var entries []*Entry
	switch variant {
	case Biochemistry:
		entries = biochemistryEntries()
	case Physical:
		entries = physicalEntries()
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownVariant, variant)
	}

	c := &Catalog{
		variant: variant,
		entries: entries,
		index:   make(map[string]*Entry, 2*len(entries)),
	}
	for _, e := range entries {
		c.index[schema.Key(e.ID)] = e
		c.index[schema.Key(e.Name)] = e
	}
	return c, nil
}

// Variant reports which dataset set the catalog carries.
func (c *Catalog) Variant() Variant { return c.variant }

// Names returns dataset names in menu order.
func (c *Catalog) Names() []string {
	names := make([]string, len(c.entries))
	for i, e := range c.entries {
		names[i] = e.Name
	}
	return names
}

// Entries returns the datasets in menu order.
func (c *Catalog) Entries() []*Entry {
	return append([]*Entry(nil), c.entries...)
}

// Lookup finds a dataset by ID or name. Case, spacing, hyphens and Unicode
// normal form are ignored.
func (c *Catalog) Lookup(name string) (*Entry, bool) {
	e, ok := c.index[schema.Key(name)]
	return e, ok
}

// Default returns the first dataset in menu order.
func (c *Catalog) Default() *Entry {
	return c.entries[0]
}

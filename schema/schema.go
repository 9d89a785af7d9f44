package schema

import (
	"strings"

	"golang.org/x/text/unicode/norm"
)

// ============================================================================
// SCHEMA - Describes the shape of a dataset for the engine and renderers
// ============================================================================
// Built literally for catalog datasets, or auto-discovered from an uploaded
// CSV. The engine uses it for column typing and table column order.
// ============================================================================

// ColumnType is the semantic type of a column.
type ColumnType int

const (
	TypeString ColumnType = iota
	TypeNumber
	TypeDate
)

func (t ColumnType) String() string {
	switch t {
	case TypeNumber:
		return "number"
	case TypeDate:
		return "date"
	default:
		return "string"
	}
}

// Config describes the complete shape of a dataset.
type Config struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`

	// Order is the original column order (keys). Tables render in this order.
	Order []string `json:"order"`

	Dimensions []DimensionMeta `json:"dimensions"`
	Measures   []MeasureMeta   `json:"measures"`

	DiscoveredFrom string          `json:"discoveredFrom,omitempty"`
	DiscoveredAt   string          `json:"discoveredAt,omitempty"`
	SkippedColumns []SkippedColumn `json:"skippedColumns,omitempty"`
}

// DimensionMeta describes a string or date field.
type DimensionMeta struct {
	Key            string   `json:"key"`
	DisplayName    string   `json:"displayName"`
	SampleValues   []string `json:"sampleValues,omitempty"`
	IsTemporal     bool     `json:"isTemporal,omitempty"`
	TemporalFormat string   `json:"temporalFormat,omitempty"`
}

// MeasureMeta describes a numeric field.
type MeasureMeta struct {
	Key         string `json:"key"`
	DisplayName string `json:"displayName"`
	Unit        string `json:"unit,omitempty"`
}

// SkippedColumn records why a column was excluded during auto-discovery.
type SkippedColumn struct {
	Column string `json:"column"`
	Reason string `json:"reason"`
}

// Text declares a string column.
func Text(displayName string) Column {
	return Column{DisplayName: displayName, Type: TypeString}
}

// Number declares a numeric column. The unit is taken from a trailing
// parenthesised suffix: "Humidity (%)" has unit "%".
func Number(displayName string) Column {
	return Column{DisplayName: displayName, Type: TypeNumber, Unit: UnitOf(displayName)}
}

// Date declares an ISO date column (2006-01-02).
func Date(displayName string) Column {
	return Column{DisplayName: displayName, Type: TypeDate}
}

// Column is a literal column declaration used by Build.
type Column struct {
	DisplayName string
	Type        ColumnType
	Unit        string
}

// Build assembles a Config from ordered column declarations.
// Keys are derived from display names with Key.
func Build(name string, columns ...Column) Config {
	c := Config{Name: name}
	for _, col := range columns {
		key := Key(col.DisplayName)
		c.Order = append(c.Order, key)
		switch col.Type {
		case TypeNumber:
			c.Measures = append(c.Measures, MeasureMeta{Key: key, DisplayName: col.DisplayName, Unit: col.Unit})
		case TypeDate:
			c.Dimensions = append(c.Dimensions, DimensionMeta{
				Key:            key,
				DisplayName:    col.DisplayName,
				IsTemporal:     true,
				TemporalFormat: "yyyy-MM-dd",
			})
		default:
			c.Dimensions = append(c.Dimensions, DimensionMeta{Key: key, DisplayName: col.DisplayName})
		}
	}
	return c
}

// TypeOf reports the type of a column key.
func (c Config) TypeOf(key string) (ColumnType, bool) {
	for _, m := range c.Measures {
		if m.Key == key {
			return TypeNumber, true
		}
	}
	for _, d := range c.Dimensions {
		if d.Key == key {
			if d.IsTemporal {
				return TypeDate, true
			}
			return TypeString, true
		}
	}
	return TypeString, false
}

// DisplayName returns the human label for a key, or the key itself.
func (c Config) DisplayName(key string) string {
	for _, m := range c.Measures {
		if m.Key == key {
			return m.DisplayName
		}
	}
	for _, d := range c.Dimensions {
		if d.Key == key {
			return d.DisplayName
		}
	}
	return key
}

// Resolve maps a key or display name (any case, any Unicode form) to a key.
func (c Config) Resolve(name string) (string, bool) {
	want := Key(name)
	for _, key := range c.Order {
		if key == want {
			return key, true
		}
	}
	return "", false
}

// DimensionKeys returns all dimension keys.
func (c Config) DimensionKeys() []string {
	keys := make([]string, len(c.Dimensions))
	for i, d := range c.Dimensions {
		keys[i] = d.Key
	}
	return keys
}

// MeasureKeys returns all measure keys.
func (c Config) MeasureKeys() []string {
	keys := make([]string, len(c.Measures))
	for i, m := range c.Measures {
		keys[i] = m.Key
	}
	return keys
}

// UnitOf returns the text inside the last parenthesised group of a header.
func UnitOf(header string) string {
	open := strings.LastIndex(header, "(")
	end := strings.LastIndex(header, ")")
	if open < 0 || end <= open {
		return ""
	}
	return strings.TrimSpace(header[open+1 : end])
}

// Key converts a header such as "Reaction Rate (µmol/min)" to
// "reaction_rate". Parenthesised units are dropped, the text is NFKC
// normalised (µ and μ compare equal) and snake-cased.
func Key(header string) string {
	s := norm.NFKC.String(strings.TrimSpace(header))
	if i := strings.Index(s, "("); i > 0 {
		s = s[:i]
	}
	return toSnakeCase(strings.TrimSpace(s))
}

package helpers

import (
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/spektr-org/stemfolio/engine"
	"github.com/spektr-org/stemfolio/schema"
)

// ============================================================================
// CSV HELPER - Parses CSV data into []engine.Record
// ============================================================================
// The caller reads the bytes (an uploaded file, a fixture). This helper turns
// them into generic Records using a schema: number columns become measures,
// string and date columns become dimensions.
// ============================================================================

// ParseCSV parses CSV bytes into Records using sch for classification.
// Headers are matched to schema keys with schema.Key, so "Year" and "year"
// land on the same column. Columns absent from the schema are ignored, as are
// rows the CSV reader rejects. Unparseable numbers are left unset.
func ParseCSV(data []byte, sch schema.Config) ([]engine.Record, error) {
	reader := csv.NewReader(bytes.NewReader(data))
	reader.FieldsPerRecord = -1

	headers, err := reader.Read()
	if errors.Is(err, io.EOF) {
		return nil, schema.ErrNoColumns
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read CSV headers: %w", err)
	}

	type colMapping struct {
		key       string
		dimension bool
		measure   bool
	}

	mappings := make([]colMapping, len(headers))
	for i, h := range headers {
		key := schema.Key(h)
		typ, ok := sch.TypeOf(key)
		if !ok {
			continue
		}
		if typ == schema.TypeNumber {
			mappings[i] = colMapping{key: key, measure: true}
		} else {
			mappings[i] = colMapping{key: key, dimension: true}
		}
	}

	var records []engine.Record
	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			continue
		}

		rec := engine.Record{
			Dimensions: make(map[string]string),
			Measures:   make(map[string]float64),
		}
		for i, val := range row {
			if i >= len(mappings) {
				break
			}
			m := mappings[i]
			val = strings.TrimSpace(val)

			switch {
			case m.dimension:
				rec.Dimensions[m.key] = val
			case m.measure:
				if f, err := schema.ParseNumber(val); err == nil {
					rec.Measures[m.key] = f
				}
			}
		}
		records = append(records, rec)
	}

	return records, nil
}

// ParseCSVView parses CSV into a RecordView.
func ParseCSVView(data []byte, sch schema.Config) (engine.RecordView, error) {
	records, err := ParseCSV(data, sch)
	if err != nil {
		return nil, err
	}
	return engine.NewSliceView(records), nil
}

// ParseCSVAutoView discovers the schema of a CSV file and parses it with
// that schema.
func ParseCSVAutoView(data []byte, opts ...schema.DiscoverOptions) (engine.RecordView, *schema.Config, error) {
	sch, err := schema.DiscoverFromCSV(data, opts...)
	if err != nil {
		return nil, nil, err
	}
	view, err := ParseCSVView(data, *sch)
	if err != nil {
		return nil, nil, err
	}
	return view, sch, nil
}

package engine

import (
	"fmt"

	"github.com/spektr-org/stemfolio/schema"
)

// ============================================================================
// TABLE BUILDER - Produces TableData from a view and its schema
// ============================================================================
// Columns follow the schema's original order. Numbers are rendered with
// FormatNumber; dimensions and dates verbatim.
// ============================================================================

// BuildTable produces a row-per-record table. An empty view yields a table
// with columns and no rows.
func BuildTable(title string, view RecordView, sch schema.Config) *TableData {
	columns := make([]Column, 0, len(sch.Order))
	numeric := make([]bool, 0, len(sch.Order))
	for _, key := range sch.Order {
		typ, _ := sch.TypeOf(key)
		col := Column{
			Key:   key,
			Label: sch.DisplayName(key),
			Type:  "text",
			Align: "left",
		}
		switch typ {
		case schema.TypeNumber:
			col.Type = "number"
			col.Align = "right"
		case schema.TypeDate:
			col.Type = "date"
		}
		columns = append(columns, col)
		numeric = append(numeric, typ == schema.TypeNumber)
	}

	rows := make([][]string, 0, view.Len())
	for i := 0; i < view.Len(); i++ {
		row := make([]string, len(columns))
		for c, col := range columns {
			row[c] = cellText(view, i, col.Key, numeric[c])
		}
		rows = append(rows, row)
	}

	return &TableData{
		Title:   title,
		Columns: columns,
		Rows:    rows,
		Summary: &Summary{
			Label: fmt.Sprintf("%s records", FormatInt(view.Len())),
			Values: map[string]string{
				"count": fmt.Sprintf("%d", view.Len()),
			},
		},
	}
}

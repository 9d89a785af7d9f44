package cli

import (
	"encoding/csv"
	"io"

	"github.com/spektr-org/stemfolio/engine"
	"github.com/spektr-org/stemfolio/site"
)

// ============================================================================
// CSV OUTPUT - The page's data, ready for a spreadsheet
// ============================================================================
// Chart data first (the filtered projection), then the last table, then
// the page's fields and messages as Label,Value rows.
// ============================================================================

func writeCSV(w io.Writer, v *site.View) error {
	cw := csv.NewWriter(w)

	if charts := v.Charts(); len(charts) > 0 {
		writeChartCSV(cw, charts[len(charts)-1])
	} else if tables := v.Tables(); len(tables) > 0 {
		writeTableCSV(cw, tables[len(tables)-1])
	} else {
		writeFieldsCSV(cw, v)
	}

	cw.Flush()
	return cw.Error()
}

func writeChartCSV(cw *csv.Writer, chart *engine.ChartConfig) {
	xLabel := chart.XAxis
	yLabel := chart.YAxis
	if xLabel == "" {
		xLabel = "Label"
	}
	if yLabel == "" {
		yLabel = "Value"
	}

	// Single series -> two columns
	if len(chart.Series) == 1 {
		cw.Write([]string{xLabel, yLabel})
		for _, d := range chart.Series[0].Data {
			cw.Write([]string{d.Label, engine.FormatNumber(d.Value)})
		}
		return
	}

	// Multi-series -> label + one column per series
	headers := []string{xLabel}
	for _, s := range chart.Series {
		headers = append(headers, s.Name)
	}
	cw.Write(headers)
	if len(chart.Series) == 0 {
		return
	}
	for i, d := range chart.Series[0].Data {
		row := []string{d.Label}
		for _, s := range chart.Series {
			if i < len(s.Data) {
				row = append(row, engine.FormatNumber(s.Data[i].Value))
			} else {
				row = append(row, "")
			}
		}
		cw.Write(row)
	}
}

func writeTableCSV(cw *csv.Writer, table *engine.TableData) {
	headers := make([]string, len(table.Columns))
	for i, c := range table.Columns {
		headers[i] = c.Label
	}
	cw.Write(headers)
	for _, row := range table.Rows {
		cw.Write(row)
	}
}

func writeFieldsCSV(cw *csv.Writer, v *site.View) {
	cw.Write([]string{"Label", "Value"})
	for _, b := range v.Blocks {
		switch b.Kind {
		case site.BlockFields:
			for _, f := range b.Fields {
				cw.Write([]string{f.Label, f.Value})
			}
		case site.BlockResult:
			cw.Write([]string{"Result", b.Text})
		case site.BlockSuccess, site.BlockError, site.BlockInfo:
			cw.Write([]string{string(b.Kind), b.Text})
		case site.BlockList:
			for _, item := range b.Items {
				cw.Write([]string{"Item", item})
			}
		}
	}
}

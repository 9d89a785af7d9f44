package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/spektr-org/stemfolio/engine"
	"github.com/spektr-org/stemfolio/site"
)

// writeText renders a view for a terminal: the title, then each block
// separated by a blank line.
func writeText(w io.Writer, v *site.View) error {
	bw := bufio.NewWriter(w)
	fmt.Fprintf(bw, "# %s\n", v.Title)
	for _, b := range v.Blocks {
		bw.WriteString("\n")
		writeBlock(bw, b)
	}
	return bw.Flush()
}

func writeBlock(w *bufio.Writer, b site.Block) {
	switch b.Kind {
	case site.BlockHeading:
		fmt.Fprintf(w, "## %s\n", b.Text)
	case site.BlockFields:
		for _, f := range b.Fields {
			fmt.Fprintf(w, "%s: %s\n", f.Label, f.Value)
		}
	case site.BlockList:
		for _, item := range b.Items {
			fmt.Fprintf(w, "- %s\n", item)
		}
	case site.BlockImage:
		fmt.Fprintf(w, "[image] %s\n", b.Image.Path)
		if b.Image.Caption != "" {
			fmt.Fprintf(w, "        %s\n", b.Image.Caption)
		}
	case site.BlockEquation:
		fmt.Fprintf(w, "    %s\n", b.Text)
	case site.BlockResult:
		fmt.Fprintf(w, "=> %s\n", b.Text)
	case site.BlockSuccess:
		fmt.Fprintf(w, "OK: %s\n", b.Text)
	case site.BlockError:
		fmt.Fprintf(w, "Error: %s\n", b.Text)
	case site.BlockInfo:
		fmt.Fprintf(w, "Note: %s\n", b.Text)
	case site.BlockTable:
		writeTextTable(w, b.Table)
	case site.BlockChart:
		writeTextChart(w, b.Chart)
	default:
		fmt.Fprintln(w, b.Text)
	}
}

func writeTextTable(w io.Writer, t *engine.TableData) {
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	headers := make([]string, len(t.Columns))
	for i, c := range t.Columns {
		headers[i] = c.Label
	}
	fmt.Fprintln(tw, strings.Join(headers, "\t"))
	for _, row := range t.Rows {
		fmt.Fprintln(tw, strings.Join(row, "\t"))
	}
	tw.Flush()
	if t.Summary != nil {
		fmt.Fprintf(w, "(%s)\n", t.Summary.Label)
	}
}

func writeTextChart(w io.Writer, c *engine.ChartConfig) {
	fmt.Fprintf(w, "[%s chart] %s vs %s\n", c.ChartType, c.YAxis, c.XAxis)
	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	for _, s := range c.Series {
		for _, p := range s.Data {
			fmt.Fprintf(tw, "  %s\t%s\n", p.Label, engine.FormatNumber(p.Value))
		}
	}
	tw.Flush()
}

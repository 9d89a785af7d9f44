package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/spektr-org/stemfolio/engine"
	"github.com/spektr-org/stemfolio/schema"
	"github.com/spektr-org/stemfolio/site"
)

// ExploreOptions holds flags for the explore command.
type ExploreOptions struct {
	*RootOptions
	Ranges []string
	Where  []string
}

// NewExploreCommand creates the explore command.
func NewExploreCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &ExploreOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "explore [dataset]",
		Short: "Filter and chart a STEM dataset",
		Long: `Show a dataset, the records inside the selected ranges, and the chart
of the filtered records. Without an argument the datasets are listed.

Ranges are inclusive. Columns may be given by key or by display name.

Example:
  stemfolio explore "Enzyme Kinetics" --range reaction_rate=9:15
  stemfolio explore weather-data --range "Humidity=60:80" --where city=Tokyo,London`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runExplore(opts, args, cmd)
		},
	}

	cmd.Flags().StringArrayVar(&opts.Ranges, "range", nil, "inclusive range filter column=low:high (repeatable)")
	cmd.Flags().StringArrayVar(&opts.Where, "where", nil, "dimension filter column=value[,value] (repeatable)")

	return cmd
}

func runExplore(opts *ExploreOptions, args []string, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	s := opts.app.Site

	if len(args) == 0 {
		return f.Render(datasetList(s))
	}

	ranges := make([]engine.Range, 0, len(opts.Ranges))
	for _, raw := range opts.Ranges {
		r, err := ParseRange(raw)
		if err != nil {
			return f.Reject(ErrCodeInvalidRange, "invalid --range", err)
		}
		ranges = append(ranges, r)
	}
	where := map[string][]string{}
	for _, raw := range opts.Where {
		col, vals, err := ParseWhere(raw)
		if err != nil {
			return f.Reject(ErrCodeGeneric, "invalid --where", err)
		}
		where[col] = append(where[col], vals...)
	}
	f.VerboseLog("explore %s ranges=%v where=%v", args[0], ranges, where)

	sess := site.NewSession()
	sess.State.Explorer = site.ExplorerState{Dataset: args[0], Ranges: ranges, Where: where}
	sess.Navigate(site.PageDataExplorer)
	return f.Render(s.Serve(sess))
}

// ParseRange parses "column=low:high". Bounds may be negative, e.g.
// "temperature=-3:15".
func ParseRange(s string) (engine.Range, error) {
	i := strings.LastIndex(s, "=")
	if i <= 0 {
		return engine.Range{}, fmt.Errorf("%q: want column=low:high", s)
	}
	col, bounds := strings.TrimSpace(s[:i]), s[i+1:]
	lo, hi, ok := strings.Cut(bounds, ":")
	if !ok {
		return engine.Range{}, fmt.Errorf("%q: want column=low:high", s)
	}
	low, err := schema.ParseNumber(lo)
	if err != nil {
		return engine.Range{}, fmt.Errorf("%q: bad low bound: %w", s, err)
	}
	high, err := schema.ParseNumber(hi)
	if err != nil {
		return engine.Range{}, fmt.Errorf("%q: bad high bound: %w", s, err)
	}
	return engine.Range{Column: col, Low: low, High: high}, nil
}

// ParseWhere parses "column=value[,value...]".
func ParseWhere(s string) (string, []string, error) {
	col, vals, ok := strings.Cut(s, "=")
	col = strings.TrimSpace(col)
	if !ok || col == "" {
		return "", nil, fmt.Errorf("%q: want column=value", s)
	}
	var out []string
	for _, v := range strings.Split(vals, ",") {
		if v = strings.TrimSpace(v); v != "" {
			out = append(out, v)
		}
	}
	if len(out) == 0 {
		return "", nil, fmt.Errorf("%q: no values", s)
	}
	return col, out, nil
}

func datasetList(s *site.Site) *site.View {
	table := &engine.TableData{
		Title: "Datasets",
		Columns: []engine.Column{
			{Key: "id", Label: "ID", Type: "text", Align: "left"},
			{Key: "name", Label: "Name", Type: "text", Align: "left"},
			{Key: "filters", Label: "Range Filters", Type: "text", Align: "left"},
		},
	}
	for _, e := range s.Catalog().Entries() {
		table.Rows = append(table.Rows, []string{e.ID, e.Name, strings.Join(e.FilterColumns, ", ")})
	}
	return &site.View{
		Page:   site.PageDataExplorer,
		Title:  "STEM Data Explorer",
		Blocks: []site.Block{{Kind: site.BlockTable, Table: table}},
	}
}

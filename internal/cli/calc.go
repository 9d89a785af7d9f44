package cli

import (
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/spektr-org/stemfolio/engine"
	"github.com/spektr-org/stemfolio/formula"
	"github.com/spektr-org/stemfolio/site"
)

// NewCalcCommand creates the calc command. Every calculator parameter is a
// flag; only the flags given on the command line are passed on, the rest
// use the calculator defaults.
func NewCalcCommand(rootOpts *RootOptions) *cobra.Command {
	params := map[string]bool{}
	cmd := &cobra.Command{
		Use:   "calc [calculator]",
		Short: "Run a biochemistry calculator",
		Long: `Run one of the biochemistry calculators. Without an argument the
available calculators are listed.

Example:
  stemfolio calc michaelis-menten --substrate 10 --km 5
  stemfolio calc beer-lambert --absorbance 0.75
  stemfolio calc growth-rate --n1 0.1 --n2 0.8 --t2 6`,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			f := rootOpts.formatter(cmd)
			if len(args) == 0 {
				return f.Render(calculatorList())
			}

			inputs := formula.Values{}
			cmd.Flags().Visit(func(fl *pflag.Flag) {
				if !params[fl.Name] {
					return
				}
				if v, err := cmd.Flags().GetFloat64(fl.Name); err == nil {
					inputs[paramKey(fl.Name)] = v
				}
			})
			f.VerboseLog("calculator %s inputs %v", args[0], inputs)

			sess := site.NewSession()
			sess.State.Calculator = site.CalculatorState{ID: args[0], Inputs: inputs}
			sess.Navigate(site.PageCalculator)
			return f.Render(rootOpts.app.Site.Serve(sess))
		},
	}

	for _, c := range formula.Calculators() {
		for _, p := range c.Params {
			name := flagName(p.Key)
			if params[name] {
				continue
			}
			params[name] = true
			cmd.Flags().Float64(name, p.Default, p.Label)
		}
	}

	return cmd
}

func flagName(key string) string { return strings.ReplaceAll(key, "_", "-") }

func paramKey(flag string) string { return strings.ReplaceAll(flag, "-", "_") }

func calculatorList() *site.View {
	calcs := formula.Calculators()
	table := &engine.TableData{
		Title: "Calculators",
		Columns: []engine.Column{
			{Key: "id", Label: "ID", Type: "text", Align: "left"},
			{Key: "name", Label: "Name", Type: "text", Align: "left"},
			{Key: "parameters", Label: "Parameters", Type: "text", Align: "left"},
		},
	}
	for _, c := range calcs {
		params := make([]string, len(c.Params))
		for i, p := range c.Params {
			params[i] = "--" + flagName(p.Key)
		}
		table.Rows = append(table.Rows, []string{c.ID, c.Name, strings.Join(params, " ")})
	}
	return &site.View{
		Page:   site.PageCalculator,
		Title:  "Biochemistry Calculator",
		Blocks: []site.Block{{Kind: site.BlockTable, Table: table}},
	}
}

package cli

import (
	"github.com/spf13/cobra"

	"github.com/spektr-org/stemfolio/publications"
	"github.com/spektr-org/stemfolio/site"
)

// PublicationsOptions holds flags for the publications command.
type PublicationsOptions struct {
	*RootOptions
	File    string
	Keyword string
}

// NewPublicationsCommand creates the publications command.
func NewPublicationsCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &PublicationsOptions{RootOptions: rootOpts}

	cmd := &cobra.Command{
		Use:   "publications",
		Short: "List uploaded publications and their yearly trend",
		Long: `Load a CSV file of publications, filter it by keyword and chart the
number of publications per Year. Files without a Year column are listed
without the chart.

Example:
  stemfolio publications --file papers.csv --keyword kinetics`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runPublications(opts, cmd)
		},
	}

	cmd.Flags().StringVarP(&opts.File, "file", "f", "", "CSV file of publications")
	cmd.Flags().StringVarP(&opts.Keyword, "keyword", "k", "", "keep rows containing this text")

	return cmd
}

func runPublications(opts *PublicationsOptions, cmd *cobra.Command) error {
	f := opts.formatter(cmd)
	app := opts.app

	state := site.PublicationsState{Keyword: opts.Keyword}
	if opts.File != "" {
		f.VerboseLog("loading %s", opts.File)
		state.Dataset, state.LoadErr = publications.LoadFile(opts.File, publications.WithLogger(app.Logger))
	}

	sess := site.NewSession()
	sess.State.Publications = state
	sess.Navigate(site.PagePublications)
	return f.Render(app.Site.Serve(sess))
}

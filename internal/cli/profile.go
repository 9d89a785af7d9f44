package cli

import (
	"github.com/spf13/cobra"

	"github.com/spektr-org/stemfolio/site"
)

// NewProfileCommand creates the profile command.
func NewProfileCommand(rootOpts *RootOptions) *cobra.Command {
	return &cobra.Command{
		Use:           "profile",
		Short:         "Show the researcher profile",
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := site.NewSession()
			sess.Navigate(site.PageProfile)
			return rootOpts.formatter(cmd).Render(rootOpts.app.Site.Serve(sess))
		},
	}
}

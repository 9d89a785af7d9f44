package cli

import (
	"github.com/spf13/cobra"

	"github.com/spektr-org/stemfolio/contact"
	"github.com/spektr-org/stemfolio/site"
)

// NewContactCommand creates the contact command. With no form flags the
// empty form is shown; with any of them the form is submitted.
func NewContactCommand(rootOpts *RootOptions) *cobra.Command {
	form := &contact.Form{}

	cmd := &cobra.Command{
		Use:   "contact",
		Short: "Send a message through the contact form",
		Long: `Submit the contact form. Name, email and message are required.
Nothing is sent or stored; the submission is echoed back.

Example:
  stemfolio contact --name "Ana Silva" --email ana@example.org --message "Hello"`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			sess := site.NewSession()
			if submitted(cmd) {
				sess.State.Contact.Form = form
			}
			sess.Navigate(site.PageContact)
			return rootOpts.formatter(cmd).Render(rootOpts.app.Site.Serve(sess))
		},
	}

	cmd.Flags().StringVar(&form.Name, "name", "", "your name")
	cmd.Flags().StringVar(&form.Email, "email", "", "your email")
	cmd.Flags().StringVar(&form.Subject, "subject", "", "subject (default \""+contact.DefaultSubject+"\")")
	cmd.Flags().StringVar(&form.Message, "message", "", "message")

	return cmd
}

// submitted reports whether any form field was given on the command line.
func submitted(cmd *cobra.Command) bool {
	for _, name := range []string{"name", "email", "subject", "message"} {
		if cmd.Flags().Changed(name) {
			return true
		}
	}
	return false
}

// Package stemfolio is a research portfolio for a biochemistry student:
// a profile page, scientific calculators, a STEM data explorer, a contact
// form and a publications browser.
//
// Usage:
//
//	import "github.com/spektr-org/stemfolio/site"
//
//	cat, err := catalog.New(catalog.Biochemistry)
//	if err != nil { ... }
//	s := site.New(config.Default(), cat, logger)
//	sess := site.NewSession()
//	sess.Navigate(site.PageDataExplorer)
//	view := s.Serve(sess)
//
// Every page renders to a site.View of typed blocks. The stemfolio command
// in cmd/stemfolio prints views as text, JSON or CSV. All computation is
// local.
package stemfolio

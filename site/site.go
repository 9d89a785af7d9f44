// Package site turns page state into render-ready views.
//
// Render is a pure dispatch on State.Page: it calls the formula, engine,
// contact and publications packages and never fails. User errors become an
// error block on the returned View.
package site

import (
	"errors"
	"fmt"

	"go.uber.org/zap"

	"github.com/spektr-org/stemfolio/catalog"
	"github.com/spektr-org/stemfolio/config"
	"github.com/spektr-org/stemfolio/contact"
	"github.com/spektr-org/stemfolio/engine"
	"github.com/spektr-org/stemfolio/formula"
)

// Site renders pages for one configuration. It holds no per-session state
// and is safe for concurrent use.
type Site struct {
	profile config.Profile
	catalog *catalog.Catalog
	desk    *contact.Desk
	logger  *zap.SugaredLogger
}

// New creates a Site. A nil logger disables logging.
func New(cfg *config.Config, cat *catalog.Catalog, logger *zap.SugaredLogger) *Site {
	if logger == nil {
		logger = zap.NewNop().Sugar()
	}
	return &Site{
		profile: cfg.Profile,
		catalog: cat,
		desk:    contact.NewDesk(cfg.Contact.Subjects...),
		logger:  logger,
	}
}

// Catalog returns the datasets the explorer offers.
func (s *Site) Catalog() *catalog.Catalog { return s.catalog }

// Subjects returns the contact form subjects.
func (s *Site) Subjects() []string { return s.desk.Subjects() }

// Render builds the view for st.
func (s *Site) Render(st State) *View {
	s.logger.Debugw("render", "page", st.Page.Slug())

	switch st.Page {
	case PageProfile:
		return s.renderProfile()
	case PageCalculator:
		return s.renderCalculator(st.Calculator)
	case PageDataExplorer:
		return s.renderExplorer(st.Explorer)
	case PageContact:
		return s.renderContact(st.Contact)
	case PagePublications:
		return s.renderPublications(st.Publications)
	}

	v := &View{Page: st.Page, Title: st.Page.String()}
	v.fail(fmt.Errorf("unknown page %d", int(st.Page)), "This page does not exist.")
	return v
}

func (s *Site) renderProfile() *View {
	v := &View{Page: PageProfile, Title: "Researcher Profile"}
	v.add(Block{Kind: BlockFields, Fields: []Field{
		{Label: "Name", Value: s.profile.Name},
		{Label: "Institution", Value: s.profile.Institution},
		{Label: "Field of Research", Value: s.profile.Field},
	}})
	for _, p := range s.profile.Bio {
		v.text(p)
	}
	if s.profile.Image != "" {
		v.add(Block{Kind: BlockImage, Image: &Image{Path: s.profile.Image, Caption: s.profile.ImageCaption}})
	}
	return v
}

func (s *Site) renderCalculator(st CalculatorState) *View {
	v := &View{Page: PageCalculator, Title: "Biochemistry Calculator & Analysis"}
	v.text("This page provides interactive tools for performing common biochemistry " +
		"and microbial physiology calculations.")

	calc := formula.Calculators()[0]
	if st.ID != "" {
		var ok bool
		if calc, ok = formula.Lookup(st.ID); !ok {
			v.fail(fmt.Errorf("unknown calculator %q", st.ID), fmt.Sprintf("Unknown calculation %q.", st.ID))
			v.add(Block{Kind: BlockList, Items: calculatorNames()})
			return v
		}
	}

	v.heading(calc.Heading)
	v.add(Block{Kind: BlockEquation, Text: calc.Equation})

	result, err := calc.Evaluate(st.Inputs)
	if err != nil {
		s.logger.Debugw("calculation rejected", "calculator", calc.ID, "error", err)
		v.fail(err, err.Error())
		return v
	}

	fields := make([]Field, len(calc.Params))
	for i, p := range calc.Params {
		fields[i] = Field{Label: p.Label, Value: engine.FormatNumber(result.Inputs[p.Key])}
	}
	v.add(Block{Kind: BlockFields, Fields: fields})
	v.add(Block{Kind: BlockResult, Text: result.Formatted})
	return v
}

func calculatorNames() []string {
	calcs := formula.Calculators()
	names := make([]string, len(calcs))
	for i, c := range calcs {
		names[i] = c.Name
	}
	return names
}

func (s *Site) renderExplorer(st ExplorerState) *View {
	v := &View{Page: PageDataExplorer, Title: "STEM Data Explorer"}

	entry := s.catalog.Default()
	if st.Dataset != "" {
		var ok bool
		if entry, ok = s.catalog.Lookup(st.Dataset); !ok {
			v.fail(fmt.Errorf("unknown dataset %q", st.Dataset), fmt.Sprintf("Unknown dataset %q.", st.Dataset))
			v.add(Block{Kind: BlockList, Items: s.catalog.Names()})
			return v
		}
	}

	ranges := make([]engine.Range, len(st.Ranges))
	for i, r := range st.Ranges {
		if key, ok := entry.Schema.Resolve(r.Column); ok {
			r.Column = key
		}
		ranges[i] = r
	}
	where := make(map[string][]string, len(st.Where))
	for dim, vals := range st.Where {
		if key, ok := entry.Schema.Resolve(dim); ok {
			dim = key
		}
		where[dim] = append(where[dim], vals...)
	}

	spec := entry.Spec(ranges, where)
	result, err := engine.Explore(spec, entry.View, entry.Schema, engine.WithLogger(s.logger))
	if err != nil {
		v.fail(err, err.Error())
		return v
	}

	v.heading(entry.Heading)
	v.add(Block{Kind: BlockTable, Table: result.Dataset})
	for _, r := range spec.Filters.Ranges {
		v.add(Block{Kind: BlockFields, Fields: []Field{{Label: entry.FilterLabel(r.Column), Value: r.String()}}})
	}
	v.text(result.Summary)
	v.add(Block{Kind: BlockTable, Table: result.Filtered})
	if result.Reply != "" {
		v.info(result.Reply)
	}
	if result.ChartConfig != nil {
		v.heading(result.ChartConfig.Title)
		v.add(Block{Kind: BlockChart, Chart: result.ChartConfig})
	}
	return v
}

func (s *Site) renderContact(st ContactState) *View {
	v := &View{Page: PageContact, Title: "Contact Me"}
	v.text("If you would like to collaborate, ask questions, or request additional information, " +
		"please use the form below")
	v.heading("Send a Message")

	if st.Form == nil {
		v.text("Subjects:")
		v.add(Block{Kind: BlockList, Items: s.desk.Subjects()})
		return v
	}

	echo, err := s.desk.Submit(*st.Form)
	switch {
	case errors.Is(err, contact.ErrMissingField):
		v.fail(err, contact.MissingFieldsMessage)
		return v
	case err != nil:
		v.fail(err, err.Error())
		return v
	}

	s.logger.Infow("contact submitted", "receipt", echo.ReceiptID, "subject", echo.Subject)
	v.add(Block{Kind: BlockSuccess, Text: contact.SuccessMessage})
	v.heading("Summary")
	v.add(Block{Kind: BlockList, Items: echo.Lines()})
	v.add(Block{Kind: BlockFields, Fields: []Field{{Label: "Receipt", Value: echo.ReceiptID}}})
	return v
}

func (s *Site) renderPublications(st PublicationsState) *View {
	v := &View{Page: PagePublications, Title: "Publications"}

	if st.LoadErr != nil {
		v.fail(st.LoadErr, st.LoadErr.Error())
		return v
	}
	if st.Dataset == nil {
		v.info("Upload a CSV file of publications to see the list and publication trends.")
		return v
	}

	report := st.Dataset.Report(st.Keyword)
	v.add(Block{Kind: BlockFields, Fields: []Field{
		{Label: "File", Value: st.Dataset.Source},
		{Label: "Records", Value: fmt.Sprintf("%d of %d", report.Matched, report.Total)},
	}})
	v.add(Block{Kind: BlockTable, Table: report.Table})
	if report.Trend != nil {
		v.heading(report.Trend.Title)
		v.add(Block{Kind: BlockChart, Chart: report.Trend})
	}
	if report.Notice != "" {
		v.info(report.Notice)
	}
	return v
}

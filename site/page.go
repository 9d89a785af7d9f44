package site

import (
	"fmt"
	"strings"

	"github.com/spektr-org/stemfolio/contact"
	"github.com/spektr-org/stemfolio/engine"
	"github.com/spektr-org/stemfolio/formula"
	"github.com/spektr-org/stemfolio/publications"
)

// Page identifies one page of the site.
type Page int

const (
	PageProfile Page = iota
	PageCalculator
	PageDataExplorer
	PageContact
	PagePublications
)

var pageTitles = [...]string{
	PageProfile:      "Researcher Profile",
	PageCalculator:   "Biochemistry Calculator",
	PageDataExplorer: "STEM Data Explorer",
	PageContact:      "Contact",
	PagePublications: "Publications",
}

var pageSlugs = [...]string{
	PageProfile:      "profile",
	PageCalculator:   "calculator",
	PageDataExplorer: "explorer",
	PageContact:      "contact",
	PagePublications: "publications",
}

// Pages returns the navigation menu in order.
func Pages() []Page {
	return []Page{PageProfile, PageCalculator, PageDataExplorer, PageContact, PagePublications}
}

func (p Page) String() string {
	if p < 0 || int(p) >= len(pageTitles) {
		return fmt.Sprintf("Page(%d)", int(p))
	}
	return pageTitles[p]
}

// Slug is the short name used on the command line.
func (p Page) Slug() string {
	if p < 0 || int(p) >= len(pageSlugs) {
		return ""
	}
	return pageSlugs[p]
}

// ParsePage accepts a slug or a menu title, ignoring case.
func ParsePage(s string) (Page, error) {
	s = strings.TrimSpace(s)
	for _, p := range Pages() {
		if strings.EqualFold(s, p.Slug()) || strings.EqualFold(s, p.String()) {
			return p, nil
		}
	}
	return 0, fmt.Errorf("unknown page %q", s)
}

// State is everything a render needs. Page selects which of the per-page
// parts applies; the others are ignored.
type State struct {
	Page Page `json:"page"`

	Calculator   CalculatorState   `json:"calculator"`
	Explorer     ExplorerState     `json:"explorer"`
	Contact      ContactState      `json:"contact"`
	Publications PublicationsState `json:"publications"`
}

// CalculatorState selects a calculator and its inputs. Missing inputs use
// the calculator defaults.
type CalculatorState struct {
	ID     string         `json:"id,omitempty"`
	Inputs formula.Values `json:"inputs,omitempty"`
}

// ExplorerState selects a dataset and its filters. Range columns may be
// keys or display names. Filter columns without a range use their full
// bounds.
type ExplorerState struct {
	Dataset string              `json:"dataset,omitempty"`
	Ranges  []engine.Range      `json:"ranges,omitempty"`
	Where   map[string][]string `json:"where,omitempty"`
}

// ContactState holds a submitted form. A nil Form shows the empty form.
type ContactState struct {
	Form *contact.Form `json:"form,omitempty"`
}

// PublicationsState holds the uploaded dataset, or the error from loading it.
type PublicationsState struct {
	Dataset *publications.Dataset `json:"-"`
	LoadErr error                 `json:"-"`
	Keyword string                `json:"keyword,omitempty"`
}

// Package publications loads an uploaded publications list and derives the
// keyword-filtered table and the per-year trend chart from it.
package publications

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"go.uber.org/zap"

	"github.com/spektr-org/stemfolio/engine"
	"github.com/spektr-org/stemfolio/helpers"
	"github.com/spektr-org/stemfolio/schema"
)

// MaxUploadBytes bounds the size of an uploaded file.
const MaxUploadBytes = 10 << 20

var (
	// ErrUnsupportedFile is returned for uploads that are not CSV, or that
	// lack a column a derived view needs.
	ErrUnsupportedFile = errors.New("unsupported file")

	// ErrTooLarge is returned for uploads over MaxUploadBytes.
	ErrTooLarge = errors.New("file too large")
)

// YearColumn is the column the trend chart counts by.
const YearColumn = "Year"

// NoYearNotice explains a missing trend chart.
const NoYearNotice = "The uploaded file has no Year column, so publication trends cannot be shown."

// Dataset is a parsed upload.
type Dataset struct {
	Source string
	Schema schema.Config
	View   engine.RecordView
}

// Option configures Load.
type Option func(*options)

type options struct {
	logger *zap.SugaredLogger
}

// WithLogger routes load diagnostics to logger.
func WithLogger(logger *zap.SugaredLogger) Option {
	return func(o *options) {
		if logger != nil {
			o.logger = logger
		}
	}
}

// Load reads a CSV upload named source from r and infers its column types.
func Load(r io.Reader, source string, opts ...Option) (*Dataset, error) {
	o := &options{logger: zap.NewNop().Sugar()}
	for _, opt := range opts {
		opt(o)
	}

	if ext := strings.ToLower(filepath.Ext(source)); ext != ".csv" {
		return nil, fmt.Errorf("%w: %s is not a CSV file", ErrUnsupportedFile, source)
	}

	data, err := io.ReadAll(io.LimitReader(r, MaxUploadBytes+1))
	if err != nil {
		return nil, fmt.Errorf("read %s: %w", source, err)
	}
	if len(data) > MaxUploadBytes {
		return nil, fmt.Errorf("%w: %s exceeds %d bytes", ErrTooLarge, source, MaxUploadBytes)
	}
	data = bytes.TrimPrefix(data, []byte("\ufeff"))

	view, sch, err := helpers.ParseCSVAutoView(data, schema.DiscoverOptions{Name: "Publications"})
	if err != nil {
		return nil, fmt.Errorf("%w: %s: %v", ErrUnsupportedFile, source, err)
	}

	o.logger.Infow("publications loaded",
		"source", source,
		"records", view.Len(),
		"columns", len(sch.Order),
		"skipped", len(sch.SkippedColumns))

	return &Dataset{Source: source, Schema: *sch, View: view}, nil
}

// LoadFile opens and loads a CSV file from disk.
func LoadFile(path string, opts ...Option) (*Dataset, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return Load(f, filepath.Base(path), opts...)
}

// Filter keeps records where any text column contains keyword, ignoring
// case. An empty keyword keeps everything and returns the dataset's view.
func (d *Dataset) Filter(keyword string) engine.RecordView {
	keyword = strings.ToLower(strings.TrimSpace(keyword))
	if keyword == "" {
		return d.View
	}

	dims := d.View.DimensionKeys()
	return engine.Where(d.View, func(i int) bool {
		for _, dim := range dims {
			if strings.Contains(strings.ToLower(d.View.Dimension(i, dim)), keyword) {
				return true
			}
		}
		return false
	})
}

// Trend counts records per year, oldest first.
func (d *Dataset) Trend(view engine.RecordView) (*engine.ChartConfig, error) {
	key, ok := d.Schema.Resolve(YearColumn)
	if !ok {
		return nil, fmt.Errorf("%w: no %s column", ErrUnsupportedFile, YearColumn)
	}
	groups := engine.GroupAndAggregate(view, key, "", "count", "date_asc")
	return engine.BuildGroupChart("Publication Trends", "bar", d.Schema.DisplayName(key), "count", groups), nil
}

// Report is the publications page for one keyword.
type Report struct {
	Keyword string              `json:"keyword,omitempty"`
	Total   int                 `json:"total"`
	Matched int                 `json:"matched"`
	Table   *engine.TableData   `json:"table"`
	Trend   *engine.ChartConfig `json:"trend,omitempty"`
	Notice  string              `json:"notice,omitempty"`
}

// Report filters by keyword and builds the table and trend chart. A missing
// Year column is reported as a notice rather than an error.
func (d *Dataset) Report(keyword string) *Report {
	view := d.Filter(keyword)
	r := &Report{
		Keyword: strings.TrimSpace(keyword),
		Total:   d.View.Len(),
		Matched: view.Len(),
		Table:   engine.BuildTable("Publications", view, d.Schema),
	}
	trend, err := d.Trend(view)
	if err != nil {
		r.Notice = NoYearNotice
		return r
	}
	r.Trend = trend
	return r
}

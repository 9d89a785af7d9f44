package publications

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"

	"github.com/spektr-org/stemfolio/engine"
)

const papers = "\ufeffTitle,Authors,Journal,Year\n" +
	"Amylase activity in germinating maize,\"Ferreira, D.\",S Afr J Bot,2021\n" +
	"Catalase kinetics under oxidative stress,\"Ferreira, D.; Naidoo, K.\",Biochem J,2023\n" +
	"OD600 growth curves of E. coli,\"Naidoo, K.\",J Microbiol Methods,2021\n" +
	"Isoelectric focusing of serum albumin,\"Ferreira, D.\",Electrophoresis,2022\n"

func load(t *testing.T, data string) *Dataset {
	t.Helper()
	ds, err := Load(strings.NewReader(data), "papers.csv")
	require.NoError(t, err)
	return ds
}

func TestLoad(t *testing.T) {
	core, logs := observer.New(zap.InfoLevel)
	ds, err := Load(strings.NewReader(papers), "papers.csv", WithLogger(zap.New(core).Sugar()))
	require.NoError(t, err)

	assert.Equal(t, 4, ds.View.Len())
	assert.Equal(t, "Publications", ds.Schema.Name)
	assert.Equal(t, []string{"title", "authors", "journal", "year"}, ds.Schema.Order)

	require.Equal(t, 1, logs.Len())
	assert.Equal(t, "publications loaded", logs.All()[0].Message)
}

func TestLoad_Rejects(t *testing.T) {
	_, err := Load(strings.NewReader(papers), "papers.xlsx")
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	_, err = Load(strings.NewReader(""), "empty.csv")
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	big := strings.NewReader(strings.Repeat("a", MaxUploadBytes+1))
	_, err = Load(big, "big.csv")
	assert.ErrorIs(t, err, ErrTooLarge)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "Papers.CSV")
	require.NoError(t, os.WriteFile(path, []byte(papers), 0o644))

	ds, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "Papers.CSV", ds.Source)

	_, err = LoadFile(filepath.Join(t.TempDir(), "missing.csv"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestFilter(t *testing.T) {
	ds := load(t, papers)

	assert.Same(t, ds.View, ds.Filter("  "))

	view := ds.Filter("naidoo")
	require.Equal(t, 2, view.Len())
	assert.Equal(t, "Catalase kinetics under oxidative stress", view.Dimension(0, "title"))
	assert.Equal(t, "OD600 growth curves of E. coli", view.Dimension(1, "title"))

	assert.Equal(t, 0, ds.Filter("zebrafish").Len())
}

func TestTrend_CountsPerYear(t *testing.T) {
	ds := load(t, papers)

	chart, err := ds.Trend(ds.View)
	require.NoError(t, err)
	require.NotNil(t, chart)

	assert.Equal(t, "Publication Trends", chart.Title)
	assert.Equal(t, "bar", chart.ChartType)
	assert.Equal(t, "Count", chart.YAxis)
	assert.Equal(t, []engine.ChartPoint{
		{Label: "2021", Value: 2},
		{Label: "2022", Value: 1},
		{Label: "2023", Value: 1},
	}, chart.Series[0].Data)
}

func TestReport_MissingYear(t *testing.T) {
	ds := load(t, "Title,Journal\nAmylase,Biochem J\n")

	_, err := ds.Trend(ds.View)
	assert.ErrorIs(t, err, ErrUnsupportedFile)

	report := ds.Report("")
	assert.Nil(t, report.Trend)
	assert.Equal(t, NoYearNotice, report.Notice)
	assert.Len(t, report.Table.Rows, 1)
}

func TestReport_Keyword(t *testing.T) {
	report := load(t, papers).Report(" Ferreira ")

	assert.Equal(t, "Ferreira", report.Keyword)
	assert.Equal(t, 4, report.Total)
	assert.Equal(t, 3, report.Matched)
	require.NotNil(t, report.Trend)
	assert.Len(t, report.Trend.Series[0].Data, 3)
	assert.Empty(t, report.Notice)
}

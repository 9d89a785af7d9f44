package helpers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/stemfolio/schema"
)

const publicationsCSV = `Title,Journal,Year,Citations
"Amylase kinetics at low pH",Biochem J,2019,12
"Catalase in soil bacteria",Microbiology,2021,"1,204"
"Growth of E. coli at 37 C",J Bacteriol,2021,n/a
`

func TestParseCSV_WithSchema(t *testing.T) {
	sch := schema.Build("Publications",
		schema.Text("Title"),
		schema.Date("Year"),
		schema.Number("Citations"),
	)

	records, err := ParseCSV([]byte(publicationsCSV), sch)
	require.NoError(t, err)
	require.Len(t, records, 3)

	assert.Equal(t, "Amylase kinetics at low pH", records[0].Dimensions["title"])
	assert.Equal(t, "2019", records[0].Dimensions["year"])
	assert.Equal(t, 12.0, records[0].Measures["citations"])
	assert.Equal(t, 1204.0, records[1].Measures["citations"])

	_, ok := records[2].Measures["citations"]
	assert.False(t, ok, "unparseable numbers stay unset")

	_, ok = records[0].Dimensions["journal"]
	assert.False(t, ok, "columns outside the schema are ignored")
}

func TestParseCSVAutoView(t *testing.T) {
	view, sch, err := ParseCSVAutoView([]byte(publicationsCSV))
	require.NoError(t, err)

	assert.Equal(t, 3, view.Len())
	assert.Equal(t, []string{"title", "journal", "year", "citations"}, sch.Order)

	typ, ok := sch.TypeOf("year")
	require.True(t, ok)
	assert.Equal(t, schema.TypeDate, typ)
	assert.Equal(t, "2021", view.Dimension(2, "year"))
}

func TestParseCSV_Empty(t *testing.T) {
	_, err := ParseCSV(nil, schema.Config{})
	assert.ErrorIs(t, err, schema.ErrNoColumns)

	_, _, err = ParseCSVAutoView([]byte("Title,Year\n"))
	assert.ErrorIs(t, err, schema.ErrNoRows)
}

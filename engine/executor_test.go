package engine

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func enzymeSpec(low, high float64) ExploreSpec {
	return ExploreSpec{
		Title:      "Enzyme Kinetics",
		Filters:    Filters{Ranges: []Range{{Column: "reaction_rate", Low: low, High: high}}},
		ChartX:     "substrate_concentration",
		ChartY:     "reaction_rate",
		ChartKind:  "line",
		ChartTitle: "Reaction Rate (µmol/min) vs Substrate Concentration (mM)",
	}
}

func TestExplore_ChartUsesFilteredView(t *testing.T) {
	result, err := Explore(enzymeSpec(9.0, 15.0), enzymeView(), enzymeSchema)
	require.NoError(t, err)

	assert.Equal(t, 5, result.Total)
	assert.Equal(t, 3, result.Matched)
	assert.Len(t, result.Dataset.Rows, 5)
	assert.Len(t, result.Filtered.Rows, 3)

	require.NotNil(t, result.ChartConfig)
	require.Len(t, result.ChartConfig.Series, 1)
	assert.Equal(t, []ChartPoint{
		{Label: "2", Value: 9.3},
		{Label: "3", Value: 12.7},
		{Label: "4", Value: 14.9},
	}, result.ChartConfig.Series[0].Data, "chart must be projected from the filtered records")

	assert.Equal(t, "line", result.ChartConfig.ChartType)
	assert.Equal(t, "Substrate Concentration (mM)", result.ChartConfig.XAxis)
	assert.Equal(t, "Reaction Rate (µmol/min)", result.ChartConfig.YAxis)
	assert.Equal(t, "Filtered Results for Reaction Rate (µmol/min) (9.0, 15.0): 3 of 5 records", result.Summary)
	assert.Empty(t, result.Reply)
}

func TestExplore_EmptyMatchRendersWithoutChart(t *testing.T) {
	result, err := Explore(enzymeSpec(20, 30), enzymeView(), enzymeSchema)
	require.NoError(t, err)

	assert.True(t, result.Success)
	assert.Equal(t, 0, result.Matched)
	assert.Empty(t, result.Filtered.Rows)
	assert.Nil(t, result.ChartConfig)
	assert.Equal(t, "No records match the selected range.", result.Reply)
}

func TestExplore_InvalidRange(t *testing.T) {
	result, err := Explore(enzymeSpec(15, 9), enzymeView(), enzymeSchema)
	assert.ErrorIs(t, err, ErrInvalidRange)
	assert.Nil(t, result)
}

func TestExplore_BadChartColumn(t *testing.T) {
	spec := enzymeSpec(0, 100)
	spec.ChartY = "enzyme"
	_, err := Explore(spec, enzymeView(), enzymeSchema)
	assert.ErrorIs(t, err, ErrColumnNotNumeric)
}

func TestProject_DimensionAxis(t *testing.T) {
	points, err := Project(enzymeView(), "enzyme", "substrate_concentration")
	require.NoError(t, err)
	require.Len(t, points, 5)
	assert.Equal(t, ChartPoint{Label: "Amylase", Value: 1}, points[0])
	assert.Equal(t, ChartPoint{Label: "Urease", Value: 5}, points[4])

	_, err = Project(enzymeView(), "organism", "reaction_rate")
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestBuildTable_SchemaOrderAndFormatting(t *testing.T) {
	table := BuildTable("Enzyme Kinetics", enzymeView(), enzymeSchema)

	require.Len(t, table.Columns, 3)
	assert.Equal(t, Column{Key: "enzyme", Label: "Enzyme", Type: "text", Align: "left"}, table.Columns[0])
	assert.Equal(t, "number", table.Columns[2].Type)
	assert.Equal(t, []string{"Amylase", "1", "5.1"}, table.Rows[0])
	assert.Equal(t, "5 records", table.Summary.Label)
}

func TestBuildSummary(t *testing.T) {
	assert.Equal(t, "All 5 records", BuildSummary(Filters{}, 5, 5, enzymeSchema))

	got := BuildSummary(Filters{
		Dimensions: map[string][]string{"enzyme": {"Lipase"}},
		Ranges:     []Range{{Column: "substrate_concentration", Low: 1, High: 3}},
	}, 1, 5, enzymeSchema)
	assert.Equal(t, "Filtered Results for Substrate Concentration (mM) (1.0, 3.0) and Enzyme in [Lipase]: 1 of 5 records", got)
}

func TestGroupAndAggregate_CountByYear(t *testing.T) {
	records := []Record{
		{Dimensions: map[string]string{"year": "2021"}},
		{Dimensions: map[string]string{"year": "2019"}},
		{Dimensions: map[string]string{"year": "2021"}},
		{Dimensions: map[string]string{"year": "2020"}},
	}
	groups := GroupAndAggregate(NewSliceView(records), "year", "", "count", "date_asc")

	require.Len(t, groups, 3)
	assert.Equal(t, "2019", groups[0].Key)
	assert.Equal(t, "2020", groups[1].Key)
	assert.Equal(t, "2021", groups[2].Key)
	assert.Equal(t, 2.0, groups[2].Value)

	chart := BuildGroupChart("Publication Trends", "bar", "Year", "count", groups)
	require.NotNil(t, chart)
	assert.Equal(t, "Count", chart.YAxis)
	assert.Len(t, chart.Series[0].Data, 3)
	assert.Equal(t, 2.0, chart.Series[0].Data[2].Value)
	assert.True(t, chart.ShowGrid)
}

func TestGroupAndAggregate_NumericGroupColumn(t *testing.T) {
	groups := GroupAndAggregate(enzymeView(), "substrate_concentration", "reaction_rate", "sum", "value_desc")
	require.Len(t, groups, 5)
	assert.Equal(t, "5", groups[0].Key)
	assert.InDelta(t, 15.2, groups[0].Value, 1e-9)
}

func TestMinMaxOnEmptyView(t *testing.T) {
	empty := NewSliceView(nil)
	assert.Equal(t, 0.0, MinMeasure(empty, "x"))
	assert.Equal(t, 0.0, MaxMeasure(empty, "x"))
	assert.Nil(t, GroupAndAggregate(empty, "x", "x", "sum", ""))
}

func TestFormatNumber(t *testing.T) {
	assert.Equal(t, "5.1", FormatNumber(5.1))
	assert.Equal(t, "300", FormatNumber(300))
	assert.Equal(t, "0.00005", FormatNumber(0.00005))
	assert.Equal(t, "-12.7", FormatNumber(-12.7))
	assert.Equal(t, "1,234,567", FormatInt(1234567))
}

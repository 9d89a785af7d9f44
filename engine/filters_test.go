package engine

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/stemfolio/schema"
)

type enzyme struct {
	Name      string
	Substrate float64
	Rate      float64
}

var enzymes = []enzyme{
	{"Amylase", 1, 5.1},
	{"Catalase", 2, 9.3},
	{"Lipase", 3, 12.7},
	{"Protease", 4, 14.9},
	{"Urease", 5, 15.2},
}

var enzymeSchema = schema.Build("Enzyme Kinetics",
	schema.Text("Enzyme"),
	schema.Number("Substrate Concentration (mM)"),
	schema.Number("Reaction Rate (µmol/min)"),
)

func enzymeView() RecordView {
	return NewDomainAdapter[enzyme]().
		Dimension("enzyme", func(e enzyme) string { return e.Name }).
		Measure("substrate_concentration", func(e enzyme) float64 { return e.Substrate }).
		Measure("reaction_rate", func(e enzyme) float64 { return e.Rate }).
		Bind(enzymes)
}

func measures(view RecordView, key string) []float64 {
	out := make([]float64, view.Len())
	for i := range out {
		out[i] = view.Measure(i, key)
	}
	return out
}

func TestApplyRange_InclusiveAndOrdered(t *testing.T) {
	view := enzymeView()

	filtered, err := ApplyRange(view, "reaction_rate", 9.0, 15.0)
	require.NoError(t, err)

	assert.Equal(t, []float64{9.3, 12.7, 14.9}, measures(filtered, "reaction_rate"))
	assert.Equal(t, "Catalase", filtered.Dimension(0, "enzyme"))
	assert.Equal(t, 5, view.Len(), "source view must not change")
}

func TestApplyRange_BoundsAreInclusive(t *testing.T) {
	filtered, err := ApplyRange(enzymeView(), "reaction_rate", 5.1, 15.2)
	require.NoError(t, err)
	assert.Equal(t, 5, filtered.Len())
}

func TestApplyRange_SinglePoint(t *testing.T) {
	filtered, err := ApplyRange(enzymeView(), "reaction_rate", 12.7, 12.7)
	require.NoError(t, err)
	require.Equal(t, 1, filtered.Len())
	assert.Equal(t, "Lipase", filtered.Dimension(0, "enzyme"))
}

func TestApplyRange_EmptyResult(t *testing.T) {
	filtered, err := ApplyRange(enzymeView(), "reaction_rate", 100, 200)
	require.NoError(t, err)
	assert.Equal(t, 0, filtered.Len())

	table := BuildTable("Filtered Results", filtered, enzymeSchema)
	assert.Len(t, table.Columns, 3)
	assert.Empty(t, table.Rows)
}

func TestApplyRange_Errors(t *testing.T) {
	view := enzymeView()

	tests := []struct {
		name      string
		column    string
		low, high float64
		want      error
	}{
		{"inverted", "reaction_rate", 15, 9, ErrInvalidRange},
		{"nan low", "reaction_rate", math.NaN(), 9, ErrInvalidRange},
		{"nan high", "reaction_rate", 1, math.NaN(), ErrInvalidRange},
		{"unknown column", "velocity", 0, 1, ErrColumnNotFound},
		{"string column", "enzyme", 0, 1, ErrColumnNotNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			filtered, err := ApplyRange(view, tt.column, tt.low, tt.high)
			require.ErrorIs(t, err, tt.want)
			assert.Nil(t, filtered)
		})
	}
}

func TestApplyRange_FullBoundsKeepsEverything(t *testing.T) {
	view := enzymeView()

	for _, column := range []string{"reaction_rate", "substrate_concentration"} {
		bounds, err := Bounds(view, column)
		require.NoError(t, err)

		filtered, err := ApplyRange(view, column, bounds.Low, bounds.High)
		require.NoError(t, err)
		assert.Equal(t, view.Len(), filtered.Len(), column)
	}
}

func TestApplyRange_Idempotent(t *testing.T) {
	once, err := ApplyRange(enzymeView(), "reaction_rate", 9, 15)
	require.NoError(t, err)
	twice, err := ApplyRange(once, "reaction_rate", 9, 15)
	require.NoError(t, err)

	assert.Equal(t,
		BuildTable("t", once, enzymeSchema).Rows,
		BuildTable("t", twice, enzymeSchema).Rows)
}

func TestApplyRange_RandomDatasets(t *testing.T) {
	rng := rand.New(rand.NewSource(42))

	for trial := 0; trial < 200; trial++ {
		n := rng.Intn(40)
		records := make([]Record, n)
		for i := range records {
			records[i] = Record{
				Dimensions: map[string]string{"id": string(rune('a' + i%26))},
				Measures:   map[string]float64{"v": rng.Float64()*20 - 10},
			}
		}
		view := NewSliceView(records)

		lo := rng.Float64()*20 - 10
		hi := lo + rng.Float64()*10

		filtered, err := ApplyRange(view, "v", lo, hi)
		if n == 0 {
			// an empty slice view has no keys to validate against
			require.ErrorIs(t, err, ErrColumnNotFound)
			continue
		}
		require.NoError(t, err)

		sub, ok := filtered.(*SubView)
		require.True(t, ok)

		prev := -1
		for i, idx := range sub.indices {
			assert.Greater(t, idx, prev, "matches must keep source order")
			prev = idx
			v := filtered.Measure(i, "v")
			assert.True(t, lo <= v && v <= hi)
		}

		expected := 0
		for _, r := range records {
			if lo <= r.Measures["v"] && r.Measures["v"] <= hi {
				expected++
			}
		}
		assert.Equal(t, expected, filtered.Len())
	}
}

func TestApplyFilters_DimensionsAndRanges(t *testing.T) {
	view := enzymeView()

	filtered, err := ApplyFilters(view, Filters{
		Dimensions: map[string][]string{"enzyme": {"lipase", "UREASE", "Amylase"}},
		Ranges:     []Range{{Column: "substrate_concentration", Low: 2, High: 5}},
	})
	require.NoError(t, err)

	assert.Equal(t, []string{"Lipase", "Urease"}, UniqueValues(filtered, "enzyme"))
}

func TestApplyFilters_EmptyReturnsSameView(t *testing.T) {
	view := enzymeView()
	filtered, err := ApplyFilters(view, Filters{})
	require.NoError(t, err)
	assert.Same(t, view, filtered)
}

func TestApplyFilters_UnknownDimension(t *testing.T) {
	_, err := ApplyFilters(enzymeView(), Filters{
		Dimensions: map[string][]string{"organism": {"E. coli"}},
	})
	assert.ErrorIs(t, err, ErrColumnNotFound)
}

func TestRangeString(t *testing.T) {
	assert.Equal(t, "(9.0, 15.0)", Range{Low: 9, High: 15}.String())
	assert.Equal(t, "(5.1, 15.2)", Range{Low: 5.1, High: 15.2}.String())
	assert.Equal(t, "(-12.7, 0.2)", Range{Low: -12.7, High: 0.2}.String())
}

func TestWhere_KeepsKeysWhenEmpty(t *testing.T) {
	none := Where(enzymeView(), func(int) bool { return false })
	assert.Equal(t, 0, none.Len())
	assert.Equal(t, []string{"enzyme"}, none.DimensionKeys())

	odd := Where(enzymeView(), func(i int) bool { return i%2 == 1 })
	assert.Equal(t, []string{"Catalase", "Protease"}, UniqueValues(odd, "enzyme"))
}

package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spektr-org/stemfolio/engine"
)

func TestParseRange(t *testing.T) {
	tests := []struct {
		in   string
		want engine.Range
	}{
		{"reaction_rate=9:15", engine.Range{Column: "reaction_rate", Low: 9, High: 15}},
		{"temperature=-3:15", engine.Range{Column: "temperature", Low: -3, High: 15}},
		{"Reaction Rate (µmol/min)=9.0:15.0", engine.Range{Column: "Reaction Rate (µmol/min)", Low: 9, High: 15}},
		{"x = 1:1", engine.Range{Column: "x", Low: 1, High: 1}},
	}
	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseRange(tt.in)
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseRange_Errors(t *testing.T) {
	for _, in := range []string{"", "=1:2", "rate", "rate=9", "rate=a:2", "rate=1:b", "rate=NaN:2"} {
		_, err := ParseRange(in)
		assert.Error(t, err, in)
	}
}

func TestParseWhere(t *testing.T) {
	col, vals, err := ParseWhere("city=Tokyo, London,")
	require.NoError(t, err)
	assert.Equal(t, "city", col)
	assert.Equal(t, []string{"Tokyo", "London"}, vals)

	for _, in := range []string{"city", "=Tokyo", "city= , "} {
		_, _, err := ParseWhere(in)
		assert.Error(t, err, in)
	}
}

package cli

import (
	"bytes"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// execute runs the root command with args and returns stdout.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := NewRootCommand()
	out := &bytes.Buffer{}
	cmd.SetOut(out)
	cmd.SetErr(&bytes.Buffer{})
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func assertGolden(t *testing.T, name, got string) {
	t.Helper()
	g := goldie.New(t,
		goldie.WithFixtureDir("testdata/golden"),
		goldie.WithNameSuffix(".golden"),
	)
	g.Assert(t, name, []byte(got))
}

func TestGolden_Profile(t *testing.T) {
	out, err := execute(t, "profile")
	require.NoError(t, err)
	assertGolden(t, "profile", out)
}

func TestGolden_CalcMichaelisMenten(t *testing.T) {
	out, err := execute(t, "calc", "michaelis-menten", "--substrate", "5")
	require.NoError(t, err)
	assertGolden(t, "calc_michaelis_menten", out)
}

func TestGolden_CalcList(t *testing.T) {
	out, err := execute(t, "calc")
	require.NoError(t, err)
	assertGolden(t, "calc_list", out)
}

func TestGolden_ExploreEnzymeText(t *testing.T) {
	out, err := execute(t, "explore", "Enzyme Kinetics", "--range", "reaction_rate=9:15")
	require.NoError(t, err)
	assertGolden(t, "explore_enzyme", out)
}

func TestGolden_ExploreEnzymeCSV(t *testing.T) {
	out, err := execute(t, "--format", "csv", "explore", "enzyme-kinetics", "--range", "Reaction Rate (µmol/min)=9:15")
	require.NoError(t, err)
	assertGolden(t, "explore_enzyme_csv", out)
}

func TestGolden_ContactMissingEmail(t *testing.T) {
	out, err := execute(t, "contact", "--name", "Ana", "--message", "Hello")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assertGolden(t, "contact_missing_email", out)
}

func TestCalc_InvalidDomainExitCode(t *testing.T) {
	out, err := execute(t, "calc", "growth-rate", "--t1", "3", "--t2", "3")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, "Error: invalid domain: t2 = 3, must be != t1")

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.True(t, exitErr.Reported)
}

func TestCalc_FlagsOverrideDefaults(t *testing.T) {
	out, err := execute(t, "--format", "csv", "calc", "michaelis-menten", "--vmax", "200")
	require.NoError(t, err)
	assert.Contains(t, out, "Vmax (µmol/min),200\n")
	assert.Contains(t, out, "Substrate Concentration [S] (mM),10\n")
	assert.Contains(t, out, "Result,Reaction Rate (v): 133.33 µmol/min\n")
}

func TestCalc_GlobalFlagsAreNotInputs(t *testing.T) {
	out, err := execute(t, "--format", "csv", "-v", "calc", "beer-lambert", "--absorbance", "0.5")
	require.NoError(t, err)
	assert.Contains(t, out, "Absorbance (A),0.5\n")
	assert.NotContains(t, out, "unknown parameter")
}

func TestCalc_ForeignParameter(t *testing.T) {
	out, err := execute(t, "calc", "beer-lambert", "--km", "2")
	require.Error(t, err)
	assert.Contains(t, out, "unknown parameter for beer-lambert: km")
}

func TestExplore_BadRangeFlag(t *testing.T) {
	out, err := execute(t, "explore", "enzyme-kinetics", "--range", "reaction_rate=9")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
	assert.Equal(t, "Error [E102]: invalid --range: \"reaction_rate=9\": want column=low:high\n", out)
}

func TestExplore_BadWhereFlagJSON(t *testing.T) {
	out, err := execute(t, "--format", "json", "explore", "enzyme-kinetics", "--where", "enzyme=")
	require.Error(t, err)

	var exitErr *ExitError
	require.ErrorAs(t, err, &exitErr)
	assert.True(t, exitErr.Reported)
	assert.JSONEq(t, `{"status":"error","error":{"code":"E001","message":"invalid --where: \"enzyme=\": no values"}}`, out)
}

func TestExplore_InvertedRange(t *testing.T) {
	out, err := execute(t, "--format", "json", "explore", "enzyme-kinetics", "--range", "reaction_rate=15:9")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, `"code":"E102"`)
}

func TestExplore_PhysicalConfig(t *testing.T) {
	out, err := execute(t, "--config", "testdata/physical.yaml", "--format", "csv",
		"explore", "weather-data", "--range", "humidity=60:80")
	require.NoError(t, err)
	assert.Equal(t, "City,Temperature (°C)\nCape Town,25\nLondon,10\nTokyo,15\n", out)
}

func TestContact_Success(t *testing.T) {
	out, err := execute(t, "--format", "csv", "contact",
		"--name", "Ana", "--email", "ana@example.org", "--subject", "Data Request", "--message", "Hi")
	require.NoError(t, err)
	assert.Contains(t, out, "success,Thank you your message has been submitted successfully\n")
	assert.Contains(t, out, "Item,Subject: Data Request\n")
}

func TestContact_NoFlagsListsSubjects(t *testing.T) {
	out, err := execute(t, "contact")
	require.NoError(t, err)
	assert.Contains(t, out, "- General Inquiry\n")
	assert.NotContains(t, out, "Error:")
}

func TestContact_SubjectOnlyIsASubmission(t *testing.T) {
	out, err := execute(t, "--format", "json", "contact", "--subject", "Other")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Contains(t, out, `"code":"E104"`)
}

func TestPublications_NoYear(t *testing.T) {
	out, err := execute(t, "publications", "--file", "testdata/no_year.csv")
	require.NoError(t, err)
	assert.Contains(t, out, "Note: The uploaded file has no Year column")
}

func TestPublications_Trend(t *testing.T) {
	out, err := execute(t, "--format", "csv", "publications", "--file", "testdata/papers.csv", "-k", "enzyme")
	require.NoError(t, err)
	assert.Equal(t, "Year,Count\n2021,1\n2023,1\n", out)
}

func TestPublications_Unsupported(t *testing.T) {
	_, err := execute(t, "publications", "--file", "testdata/physical.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitFailure, GetExitCode(err))
	assert.Equal(t, ErrCodeUnsupportedFile, ErrorCode(err))
}

func TestInvalidFormat(t *testing.T) {
	_, err := execute(t, "--format", "xml", "profile")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestMissingConfig(t *testing.T) {
	_, err := execute(t, "--config", "testdata/missing.yaml", "profile")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestUnknownFlag(t *testing.T) {
	_, err := execute(t, "explore", "--bogus")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

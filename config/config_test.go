package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/multierr"

	"github.com/spektr-org/stemfolio/catalog"
)

func TestDefault(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())

	assert.Equal(t, "Damien Ferreira", cfg.Profile.Name)
	assert.Equal(t, "North-West University", cfg.Profile.Institution)
	assert.Len(t, cfg.Profile.Bio, 2)
	assert.Equal(t, catalog.Biochemistry, cfg.Variant())
	assert.Equal(t, "General Inquiry", cfg.Contact.Subjects[0])
	assert.False(t, cfg.Log.Debug)
}

func TestLoad(t *testing.T) {
	cfg, err := Load(filepath.Join("testdata", "site.yaml"))
	require.NoError(t, err)

	assert.Equal(t, "Naledi Dlamini", cfg.Profile.Name)
	assert.Equal(t, []string{"I study bacterial growth in extreme environments."}, cfg.Profile.Bio)
	assert.Equal(t, "Sunset (2).jpg", cfg.Profile.Image, "unset keys keep defaults")
	assert.Equal(t, catalog.Physical, cfg.Variant())
	assert.Equal(t, []string{"General Inquiry", "Supervision"}, cfg.Contact.Subjects)
	assert.True(t, cfg.Log.Debug)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestParse_Empty(t *testing.T) {
	cfg, err := Parse(nil)
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestParse_UnknownField(t *testing.T) {
	_, err := Parse([]byte("profile:\n  nmae: typo\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestValidate_CollectsAllProblems(t *testing.T) {
	cfg := Default()
	cfg.Profile.Name = " "
	cfg.Catalog = "geology"
	cfg.Contact.Subjects = []string{"Other", "", "Other"}

	err := cfg.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, catalog.ErrUnknownVariant)
	assert.Len(t, multierr.Errors(err), 4)

	_, err = Parse([]byte("catalog: geology\n"))
	assert.ErrorIs(t, err, catalog.ErrUnknownVariant)
}

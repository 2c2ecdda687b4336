package config

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault(t *testing.T) {
	set := Default()
	assert.Equal(t, "Revolut", set.Account)
	assert.Equal(t, DateFieldCompleted, set.DateField)
	assert.Equal(t, FilterBoth, set.TypeFilter)
	assert.True(t, set.OnlyCompleted)
	require.NoError(t, set.Validate())
}

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revcsv.yaml")

	set := Default()
	set.Website = "mysite"
	set.DateField = DateFieldStarted
	set.TypeFilter = FilterExpense
	require.NoError(t, Save(path, set))

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "mysite", loaded.Website)
	assert.Equal(t, DateFieldStarted, loaded.DateField)
	assert.Equal(t, FilterExpense, loaded.TypeFilter)
}

func TestLoad_EnvOverridesFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revcsv.yaml")
	set := Default()
	set.APIKey = "from-file"
	require.NoError(t, Save(path, set))

	t.Setenv("REVCSV_API_KEY", "from-env")
	t.Setenv("REVCSV_MODEL", "gemini-2.5-pro")

	loaded, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, "from-env", loaded.APIKey)
	assert.Equal(t, "gemini-2.5-pro", loaded.Model)
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoad_InvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "revcsv.yaml")
	require.NoError(t, os.WriteFile(path, []byte("date_field: [broken"), 0o644))
	_, err := Load(path)
	assert.Error(t, err)
}

func TestValidate(t *testing.T) {
	set := Default()
	set.DateField = "Posting Date"
	assert.ErrorContains(t, set.Validate(), "invalid date_field")

	set = Default()
	set.TypeFilter = "expenses"
	assert.ErrorContains(t, set.Validate(), "invalid type_filter")
}

func TestAlternateDateField(t *testing.T) {
	set := Default()
	assert.Equal(t, DateFieldStarted, set.AlternateDateField())
	set.DateField = DateFieldStarted
	assert.Equal(t, DateFieldCompleted, set.AlternateDateField())
}

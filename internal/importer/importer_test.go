package importer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/revcsv-dev/revcsv/internal/model"
)

func TestRevolutParser_Parse(t *testing.T) {
	data, err := os.ReadFile("../../testdata/revolut_export.csv")
	require.NoError(t, err)

	p := &RevolutParser{}
	result, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	assert.Len(t, result.Rows, 6)
	assert.Empty(t, result.MissingColumns)

	first := result.Rows[0]
	assert.Equal(t, "CARD_PAYMENT", first.Get(model.ColType))
	assert.Equal(t, "CONAD SUPERMARKET", first.Get(model.ColDescription))
	assert.Equal(t, "-47,30", first.Get(model.ColAmount))
	assert.Equal(t, "COMPLETED", first.Get(model.ColState))
}

func TestRevolutParser_MissingColumnsWarned(t *testing.T) {
	csv := "Type,Description,Amount\nCARD_PAYMENT,Conad,\"-5,00\"\n"
	p := &RevolutParser{}
	result, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)

	assert.Len(t, result.Rows, 1)
	assert.Contains(t, result.MissingColumns, model.ColState)
	assert.Contains(t, result.MissingColumns, model.ColCurrency)
	// Parsing still proceeds on the columns present.
	assert.Equal(t, "Conad", result.Rows[0].Get(model.ColDescription))
}

func TestRevolutParser_ShortRow(t *testing.T) {
	data, err := os.ReadFile("../../testdata/revolut_export.csv")
	require.NoError(t, err)

	p := &RevolutParser{}
	result, err := p.Parse(strings.NewReader(string(data)))
	require.NoError(t, err)

	// The pending row has no balance; it decodes as empty, not an error.
	pending := result.Rows[4]
	assert.Equal(t, "PENDING", pending.Get(model.ColState))
	assert.Equal(t, "", pending.Get(model.ColBalance))
}

func TestRevolutParser_Format(t *testing.T) {
	p := &RevolutParser{}
	assert.Equal(t, "revolut", p.Format())
}

func TestRegistry_RegisterAndGet(t *testing.T) {
	r := NewRegistry()
	r.Register(&RevolutParser{})
	p := r.Get("revolut")
	require.NotNil(t, p)
	assert.Equal(t, "revolut", p.Format())
}

func TestRegistry_CaseInsensitive(t *testing.T) {
	r := NewRegistry()
	r.Register(&RevolutParser{})
	assert.NotNil(t, r.Get("Revolut"))
	assert.NotNil(t, r.Get("REVOLUT"))
}

func TestRegistry_GetUnknown(t *testing.T) {
	r := NewRegistry()
	assert.Nil(t, r.Get("nonexistent"))
}

func TestDefaultRegistry(t *testing.T) {
	r := DefaultRegistry()
	assert.NotNil(t, r.Get("revolut"))
}

func TestScan_FindsCSVs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "other.txt"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "export.csv", files[0].Name)
}

func TestScan_IgnoresProcessedDir(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, "processed"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "new.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "processed", "old.csv"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "new.csv", files[0].Name)
}

func TestScan_IgnoresConversionOutputs(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export_out.csv"), []byte("data"), 0o644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "Statement_OUT.csv"), []byte("data"), 0o644))

	files, err := Scan(dir)
	require.NoError(t, err)
	require.Len(t, files, 1)
	assert.Equal(t, "export.csv", files[0].Name)
}

func TestOutputName(t *testing.T) {
	assert.Equal(t, "export_out.csv", OutputName("export.csv"))
	assert.Equal(t, "statement_out.csv", OutputName("statement.CSV"))
}

func TestScan_MissingDir(t *testing.T) {
	files, err := Scan(filepath.Join(t.TempDir(), "nope"))
	require.NoError(t, err)
	assert.Nil(t, files)
}

func TestMarkProcessed(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "export.csv"), []byte("data"), 0o644))

	require.NoError(t, MarkProcessed(dir, "export.csv"))

	_, err := os.Stat(filepath.Join(dir, "export.csv"))
	assert.True(t, os.IsNotExist(err))

	_, err = os.Stat(filepath.Join(dir, "processed", "export.csv"))
	assert.NoError(t, err)
}

package dataset

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
)

func writeCSV(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoadRowCountAndCountries(t *testing.T) {
	ResetLoadCache()
	path := writeCSV(t, "survey.csv",
		"Country,LanguageHaveWorkedWith\n"+
			"Germany,Go;Python\n"+
			"Austria,Go\n"+
			"Germany,Rust\n"+
			",Python\n")

	table, err := Load(path)
	require.NoError(t, err)
	require.Equal(t, 4, table.Len())

	// Sorted, deduplicated, missing excluded.
	require.Equal(t, []string{"Austria", "Germany"}, table.Countries())
}

func TestLoadWithoutCountryColumn(t *testing.T) {
	ResetLoadCache()
	path := writeCSV(t, "survey.csv", "LanguageHaveWorkedWith\nGo\n")

	table, err := Load(path)
	require.NoError(t, err)
	require.Empty(t, table.Countries())
}

func TestLoadNotFound(t *testing.T) {
	ResetLoadCache()
	table, err := Load(filepath.Join(t.TempDir(), "nope.csv"))
	require.Nil(t, table)
	require.ErrorIs(t, err, ErrNotFound)
}

func TestLoadCachesByPath(t *testing.T) {
	ResetLoadCache()
	path := writeCSV(t, "survey.csv", "Country\nGermany\n")

	first, err := Load(path)
	require.NoError(t, err)

	// A second load must not re-read the file: delete it and load again.
	require.NoError(t, os.Remove(path))
	second, err := Load(path)
	require.NoError(t, err)
	require.Same(t, first, second)
}

func TestLoadParseError(t *testing.T) {
	ResetLoadCache()
	// Unclosed quote makes the csv reader fail.
	path := writeCSV(t, "broken.csv", "Country,Lang\n\"Germany,Go\n")

	_, err := Load(path)
	require.Error(t, err)

	var pe *ParseError
	require.True(t, errors.As(err, &pe))
	require.Equal(t, path, pe.Path)
	require.NotNil(t, pe.Unwrap())
}

func TestLoadEmptyFile(t *testing.T) {
	ResetLoadCache()
	path := writeCSV(t, "empty.csv", "")

	_, err := Load(path)
	var pe *ParseError
	require.True(t, errors.As(err, &pe))
}

func TestLoadTypedCells(t *testing.T) {
	ResetLoadCache()
	path := writeCSV(t, "typed.csv", "Country,YearsCode,Lang\nGermany,12,Go\nAustria,,Rust\n")

	table, err := Load(path)
	require.NoError(t, err)

	years := table.Cell(0, "YearsCode")
	n, ok := years.Number()
	require.True(t, ok)
	require.Equal(t, 12.0, n)
	require.Equal(t, "12", years.String())

	require.True(t, table.Cell(1, "YearsCode").IsMissing())
	require.Equal(t, KindString, table.Cell(0, "Lang").Kind())
}

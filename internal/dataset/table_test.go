package dataset

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func makeTable() *Table {
	return NewTable(
		[]string{"Country", "Lang"},
		[]Row{
			{StringValue("KR"), StringValue("Go")},
			{StringValue("US"), StringValue("Go;Rust")},
			{Missing, StringValue("Python")},
		},
	)
}

func TestColumnLookup(t *testing.T) {
	table := makeTable()

	col, ok := table.Column("Lang")
	require.True(t, ok)
	require.Len(t, col, 3)
	require.Equal(t, "Go;Rust", col[1].String())

	_, ok = table.Column("Nope")
	require.False(t, ok)
	require.False(t, table.HasColumn("Nope"))
	require.True(t, table.HasColumn("Country"))
}

func TestCellOutOfRange(t *testing.T) {
	table := makeTable()
	require.True(t, table.Cell(99, "Lang").IsMissing())
	require.True(t, table.Cell(0, "Nope").IsMissing())
}

func TestShortRowsPadAsMissing(t *testing.T) {
	table := NewTable([]string{"A", "B", "C"}, []Row{{StringValue("x")}})
	require.True(t, table.Cell(0, "B").IsMissing())
	require.True(t, table.Cell(0, "C").IsMissing())
	require.Equal(t, "x", table.Cell(0, "A").String())
}

func TestFilterCountry(t *testing.T) {
	table := makeTable()

	kr := table.FilterCountry("KR")
	require.Equal(t, 1, kr.Len())
	require.Equal(t, "Go", kr.Cell(0, "Lang").String())

	// Pointer-stable: the same country filter yields the same table.
	require.Same(t, kr, table.FilterCountry("KR"))

	// Unknown country filters to an empty table, not an error.
	require.Equal(t, 0, table.FilterCountry("FR").Len())
}

func TestFilterCountryWithoutColumn(t *testing.T) {
	table := NewTable([]string{"Lang"}, []Row{{StringValue("Go")}})
	require.Equal(t, 0, table.FilterCountry("KR").Len())
	require.Empty(t, table.Countries())
}

func TestHead(t *testing.T) {
	table := makeTable()
	require.Len(t, table.Head(2), 2)
	require.Len(t, table.Head(10), 3)
}

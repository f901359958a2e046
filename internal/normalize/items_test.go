package normalize

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kwren/shipview/internal/report"
)

func TestExtractItemsSlotPriority(t *testing.T) {
	t.Parallel()

	row := report.Row{
		"ReleasesItemNo1":   "CMS Cabinet",
		"ReleasesItem1Qty":  "2",
		"ReleasesItem2Name": "Anchor Kit", // only the fallback name field
		"ReleasesItemNo2Qty": "4",
		"ReleasesItemNo3":   "   ", // blank name: slot skipped
		"ReleasesItem3Qty":  "9",
		"ReleasesItemNo5":   "Spare Bolts",
	}

	items := ExtractItems(row)
	require.Len(t, items, 3)

	require.Equal(t, "CMS Cabinet", items[0].Name)
	require.True(t, items[0].Qty.Numeric)
	require.Equal(t, 2.0, items[0].Qty.Number)

	require.Equal(t, "Anchor Kit", items[1].Name)
	require.True(t, items[1].Qty.Numeric)
	require.Equal(t, 4.0, items[1].Qty.Number)

	require.Equal(t, "Spare Bolts", items[2].Name)
	require.True(t, items[2].Qty.IsEmpty())
}

func TestExtractItemsNamePriorityOrder(t *testing.T) {
	t.Parallel()

	// Both name variants present: the numbered variant wins.
	row := report.Row{
		"ReleasesItemNo1":   "Primary",
		"ReleasesItem1Name": "Secondary",
	}
	items := ExtractItems(row)
	require.Len(t, items, 1)
	require.Equal(t, "Primary", items[0].Name)
}

func TestExtractItemsEmptyRow(t *testing.T) {
	t.Parallel()
	require.Empty(t, ExtractItems(report.Row{}))
}

func TestCoerceQuantity(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		in      any
		numeric bool
		number  float64
		text    string
		empty   bool
	}{
		{name: "clean number string", in: "5", numeric: true, number: 5},
		{name: "padded number string", in: " 12.5 ", numeric: true, number: 12.5},
		{name: "free text preserved", in: "5 boxes", text: "5 boxes"},
		{name: "free text trimmed", in: "  a few  ", text: "a few"},
		{name: "nil is empty", in: nil, empty: true},
		{name: "blank is empty", in: "   ", empty: true},
		{name: "json number", in: float64(7), numeric: true, number: 7},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			q := coerceQuantity(tc.in)
			require.Equal(t, tc.empty, q.IsEmpty())
			require.Equal(t, tc.numeric, q.Numeric)
			if tc.numeric {
				require.Equal(t, tc.number, q.Number)
			}
			require.Equal(t, tc.text, q.Text)
		})
	}
}

func TestQuantityDisplay(t *testing.T) {
	t.Parallel()

	require.Equal(t, "5", coerceQuantity("5").Display())
	require.Equal(t, "5 boxes", coerceQuantity("5 boxes").Display())
	require.Equal(t, "", coerceQuantity(nil).Display())
}

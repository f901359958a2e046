package grouping

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kwren/shipview/internal/normalize"
	"github.com/kwren/shipview/internal/report"
)

func rec(fields report.Row) normalize.Record {
	return normalize.Normalize(fields)
}

func TestGroupDropsBlankCustomerOrMilestone(t *testing.T) {
	t.Parallel()

	g := Group([]normalize.Record{
		rec(report.Row{"CustomerName": "  ", "MilestoneName": "Phase1"}),
		rec(report.Row{"CustomerName": "Acme", "MilestoneName": "   "}),
		rec(report.Row{"MilestoneName": "Phase1"}),
		rec(report.Row{"CustomerName": "Acme"}),
		rec(report.Row{"CustomerName": "Acme", "MilestoneName": "Phase1", "Number": "1"}),
	})

	require.Equal(t, 1, g.Len())
	require.Equal(t, []string{"Acme"}, g.Customers())
	require.Len(t, g.Customer("Acme").Records("Phase1"), 1)
}

func TestGroupFirstSeenAddressWins(t *testing.T) {
	t.Parallel()

	g := Group([]normalize.Record{
		rec(report.Row{"CustomerName": "Acme", "MilestoneName": "A", "CustomerAddressFullAddress": "First St"}),
		rec(report.Row{"CustomerName": "Acme", "MilestoneName": "B", "CustomerAddressFullAddress": "Second St"}),
	})

	require.Equal(t, "First St", g.Customer("Acme").Address)
}

func TestGroupPreservesFirstOccurrenceOrder(t *testing.T) {
	t.Parallel()

	g := Group([]normalize.Record{
		rec(report.Row{"CustomerName": "Zeta", "MilestoneName": "M2", "Number": "1"}),
		rec(report.Row{"CustomerName": "Acme", "MilestoneName": "M9", "Number": "2"}),
		rec(report.Row{"CustomerName": "Zeta", "MilestoneName": "M1", "Number": "3"}),
		rec(report.Row{"CustomerName": "Zeta", "MilestoneName": "M2", "Number": "4"}),
	})

	require.Equal(t, []string{"Zeta", "Acme"}, g.Customers(), "customers in first-seen order, not sorted")
	require.Equal(t, []string{"M2", "M1"}, g.Customer("Zeta").Milestones())

	bucket := g.Customer("Zeta").Records("M2")
	require.Len(t, bucket, 2)
	require.Equal(t, "1", bucket[0].Number())
	require.Equal(t, "4", bucket[1].Number())
}

func TestGroupEmptyInput(t *testing.T) {
	t.Parallel()

	g := Group(nil)
	require.Equal(t, 0, g.Len())
	require.Nil(t, g.Customer("anyone"))
}

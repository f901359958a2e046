package scope

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/kwren/shipview/internal/normalize"
	"github.com/kwren/shipview/internal/report"
)

func testRecords() []normalize.Record {
	return normalize.NormalizeAll([]report.Row{
		{"CustomerName": "MasTec, Inc.", "CustomerNumber": "86", "MilestoneName": "Union Ridge"},
		{"CustomerName": "Acme Fabrication", "CustomerNumber": "12", "MilestoneName": "Phase1"},
		{"CustomerName": "Union Ridge Supply Co.", "CustomerNumber": "44", "MilestoneName": "Yard"},
	})
}

func TestResolveCustomerNumericToken(t *testing.T) {
	t.Parallel()

	key, display := ResolveCustomer(testRecords(), "86")
	require.Equal(t, "MasTec, Inc.", key)
	require.Equal(t, "MasTec, Inc.", display)
}

func TestResolveCustomerNumericMiss(t *testing.T) {
	t.Parallel()

	key, display := ResolveCustomer(testRecords(), "99")
	require.Equal(t, "", key)
	require.Equal(t, "", display)
}

func TestResolveCustomerSlug(t *testing.T) {
	t.Parallel()

	for _, token := range []string{"mastec", "mastec-inc", "mi"} {
		key, _ := ResolveCustomer(testRecords(), token)
		require.Equal(t, "MasTec, Inc.", key, "token %q", token)
	}
}

func TestResolveCustomerSubstringFallback(t *testing.T) {
	t.Parallel()

	// Not an exact slug of anything, but contained in acme-fabrication.
	key, _ := ResolveCustomer(testRecords(), "fabrication")
	require.Equal(t, "Acme Fabrication", key)

	// Containment works in the other direction too.
	key, _ = ResolveCustomer(testRecords(), "acme-fabrication-llc")
	require.Equal(t, "Acme Fabrication", key)
}

func TestResolveCustomerExactBeatsSubstring(t *testing.T) {
	t.Parallel()

	// "union" is an exact 1-word slug of Union Ridge Supply Co.; the exact
	// pass must finish before any substring match is considered.
	key, _ := ResolveCustomer(testRecords(), "union")
	require.Equal(t, "Union Ridge Supply Co.", key)
}

func TestResolveCustomerFailsClosed(t *testing.T) {
	t.Parallel()

	key, display := ResolveCustomer(testRecords(), "nobody-here")
	require.Equal(t, "", key)
	require.Equal(t, "", display)
}

func TestResolveUnionsTokens(t *testing.T) {
	t.Parallel()

	sc := FromParams(Params{Customer: "86,acme"})
	res := Resolve(testRecords(), sc)
	require.True(t, res.Resolved())
	require.Equal(t, []string{"MasTec, Inc.", "Acme Fabrication"}, res.Keys)
	require.Equal(t, "MasTec, Inc., Acme Fabrication", res.DisplayName)
	require.True(t, res.Match("MasTec, Inc."))
	require.False(t, res.Match("Union Ridge Supply Co."))
}

func TestResolveUnresolvedTokensContributeNothing(t *testing.T) {
	t.Parallel()

	sc := FromParams(Params{Customer: "nope,also-nope"})
	res := Resolve(testRecords(), sc)
	require.False(t, res.Resolved())
	require.Empty(t, res.Keys)
	require.Equal(t, "", res.DisplayName)
}

func TestResolveDisabledScope(t *testing.T) {
	t.Parallel()

	res := Resolve(testRecords(), Scope{IsAdmin: true})
	require.False(t, res.Resolved())
}

func TestSuggest(t *testing.T) {
	t.Parallel()

	require.Equal(t, "mastec-inc", Suggest(testRecords(), "mastek-inc"))
	require.Equal(t, "", Suggest(testRecords(), "zzzzzzzzzzzz"), "far tokens get no suggestion")
	require.Equal(t, "", Suggest(nil, "mastec"))
}

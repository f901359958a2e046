package scope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestParseLink(t *testing.T) {
	t.Parallel()

	p := ParseLink("?c=mastec-inc&m=Union%20Ridge#task=17096")
	require.Equal(t, "mastec-inc", p.Customer)
	require.Equal(t, "Union Ridge", p.Milestone)
	require.Equal(t, "17096", p.Task)
	require.False(t, p.Admin)
}

func TestParseLinkAdmin(t *testing.T) {
	t.Parallel()

	require.True(t, ParseLink("?admin=true").Admin)
	require.False(t, ParseLink("?admin=yes").Admin, "only the literal true grants staff view")
}

func TestParseLinkTolerant(t *testing.T) {
	t.Parallel()

	require.Equal(t, Params{}, ParseLink(""))
	require.Equal(t, Params{}, ParseLink("#"))
	p := ParseLink("c=86")
	require.Equal(t, "86", p.Customer, "leading ? is optional")
}

func TestFromParamsAdminWins(t *testing.T) {
	t.Parallel()

	sc := FromParams(Params{Customer: "mastec", Admin: true})
	require.True(t, sc.IsAdmin)
	require.False(t, sc.Enabled)
	require.Empty(t, sc.Tokens)
	require.True(t, sc.Allowed())
}

func TestFromParamsSingleToken(t *testing.T) {
	t.Parallel()

	sc := FromParams(Params{Customer: " MasTec-Inc "})
	require.True(t, sc.Enabled)
	require.False(t, sc.IsAdmin)
	require.Equal(t, []string{"mastec-inc"}, sc.Tokens)
}

func TestFromParamsCommaList(t *testing.T) {
	t.Parallel()

	sc := FromParams(Params{Customer: "86, acme ,,"})
	require.True(t, sc.Enabled)
	require.Equal(t, []string{"86", "acme"}, sc.Tokens)
}

func TestFromParamsGate(t *testing.T) {
	t.Parallel()

	sc := FromParams(Params{})
	require.False(t, sc.Enabled)
	require.False(t, sc.IsAdmin)
	require.False(t, sc.Allowed(), "no token and no admin flag is the no-access gate")
}

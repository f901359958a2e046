package scope

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTokenizeWords(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"mastec", "inc"}, tokenizeWords("MasTec, Inc."))
	require.Equal(t, []string{"a1", "power"}, tokenizeWords("  A1 -- Power!! "))
	require.Empty(t, tokenizeWords("--- ..."))
}

func TestSlugs(t *testing.T) {
	t.Parallel()

	require.Equal(t, []string{"mastec", "mastec-inc"}, Slugs("MasTec, Inc."))
	require.Equal(t,
		[]string{"union", "union-ridge", "union-ridge-supply", "union-ridge-supply-co"},
		Slugs("Union Ridge Supply Co."))
	require.Nil(t, Slugs("!!!"))
}

func TestFullSlug(t *testing.T) {
	t.Parallel()

	require.Equal(t, "mastec-inc", FullSlug("MasTec, Inc."))
	require.Equal(t, "", FullSlug(""))
}

func TestAcronym(t *testing.T) {
	t.Parallel()

	require.Equal(t, "mi", Acronym("MasTec, Inc."))
	require.Equal(t, "urs", Acronym("Union Ridge Supply"))
	require.Equal(t, "", Acronym("lowercase only name"))
}

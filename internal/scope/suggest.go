package scope

import (
	"strings"

	"github.com/agnivade/levenshtein"

	"github.com/kwren/shipview/internal/normalize"
)

// suggestMaxRatio caps how far a suggestion may be from the token,
// as edit distance over the longer length.
const suggestMaxRatio = 0.5

// Suggest returns the nearest customer slug to an unresolved token, for a
// "did you mean" hint on the locked empty view. Advisory only; it never
// feeds back into resolution. Returns "" when nothing is close enough.
func Suggest(records []normalize.Record, token string) string {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return ""
	}

	best := ""
	bestRatio := suggestMaxRatio
	seen := make(map[string]struct{})
	for _, r := range records {
		full := FullSlug(r.Customer())
		if full == "" {
			continue
		}
		if _, dup := seen[full]; dup {
			continue
		}
		seen[full] = struct{}{}

		dist := levenshtein.ComputeDistance(token, full)
		maxlen := len(token)
		if len(full) > maxlen {
			maxlen = len(full)
		}
		if maxlen == 0 {
			continue
		}
		ratio := float64(dist) / float64(maxlen)
		if ratio < bestRatio {
			bestRatio = ratio
			best = full
		}
	}
	return best
}

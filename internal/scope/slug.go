package scope

import (
	"strings"
	"unicode"
)

// tokenizeWords splits a customer name into lowercase alphanumeric words.
// Runs of non-alphanumeric characters act as single separators.
func tokenizeWords(name string) []string {
	return strings.FieldsFunc(strings.ToLower(name), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
}

// Slugs returns the hyphen-joined slug derivations of a customer name:
// the first 1, 2, and 3 words, and all words. Duplicates are collapsed so
// short names don't repeat.
func Slugs(name string) []string {
	words := tokenizeWords(name)
	if len(words) == 0 {
		return nil
	}
	var out []string
	seen := make(map[string]struct{})
	for _, n := range []int{1, 2, 3, len(words)} {
		if n > len(words) {
			n = len(words)
		}
		s := strings.Join(words[:n], "-")
		if _, dup := seen[s]; dup {
			continue
		}
		seen[s] = struct{}{}
		out = append(out, s)
	}
	return out
}

// FullSlug joins every word of the name.
func FullSlug(name string) string {
	return strings.Join(tokenizeWords(name), "-")
}

// Acronym collects the uppercase initial letters of the original name's
// whitespace-separated words, lowercased. "MasTec, Inc." yields "mi".
func Acronym(name string) string {
	var b strings.Builder
	for _, w := range strings.Fields(name) {
		r := []rune(w)[0]
		if unicode.IsUpper(r) {
			b.WriteRune(unicode.ToLower(r))
		}
	}
	return b.String()
}

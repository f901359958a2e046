package scope

import (
	"strings"

	"github.com/kwren/shipview/internal/normalize"
)

// Resolution is the outcome of matching scope tokens against loaded data.
// An enabled scope with no keys means a locked view showing nothing.
type Resolution struct {
	Keys        []string
	DisplayName string
}

// Resolved reports whether at least one token matched a customer.
func (r Resolution) Resolved() bool { return len(r.Keys) > 0 }

// Match reports whether a customer key is inside the resolved set.
func (r Resolution) Match(customer string) bool {
	for _, k := range r.Keys {
		if k == customer {
			return true
		}
	}
	return false
}

// Resolve matches every scope token against the records and unions the
// results. Unresolved tokens contribute nothing; they never widen the set.
func Resolve(records []normalize.Record, sc Scope) Resolution {
	var res Resolution
	if !sc.Enabled {
		return res
	}
	seen := make(map[string]struct{})
	var names []string
	for _, token := range sc.Tokens {
		key, display := ResolveCustomer(records, token)
		if key == "" {
			continue
		}
		if _, dup := seen[key]; dup {
			continue
		}
		seen[key] = struct{}{}
		res.Keys = append(res.Keys, key)
		names = append(names, display)
	}
	res.DisplayName = strings.Join(names, ", ")
	return res
}

// ResolveCustomer matches one token against the records and returns the
// customer key plus its display name, or empty strings when nothing matches.
// A purely numeric token matches the customer-number field; otherwise the
// token is compared against each customer's slug derivations and acronym,
// with a substring fallback against the full slug. First match in record
// order wins.
func ResolveCustomer(records []normalize.Record, token string) (key, display string) {
	token = strings.ToLower(strings.TrimSpace(token))
	if token == "" {
		return "", ""
	}

	if isNumeric(token) {
		for _, r := range records {
			if r.CustomerNumber() == token {
				return r.Customer(), r.Customer()
			}
		}
		return "", ""
	}

	// Exact pass over every slug derivation before any fuzzy fallback.
	for _, r := range records {
		name := r.Customer()
		if name == "" {
			continue
		}
		for _, s := range Slugs(name) {
			if token == s {
				return name, name
			}
		}
		if a := Acronym(name); a != "" && token == a {
			return name, name
		}
	}

	// Substring containment in either direction against the full slug.
	for _, r := range records {
		name := r.Customer()
		if name == "" {
			continue
		}
		full := FullSlug(name)
		if full == "" {
			continue
		}
		if strings.Contains(full, token) || strings.Contains(token, full) {
			return name, name
		}
	}

	return "", ""
}

func isNumeric(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

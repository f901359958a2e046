// Package scope derives and enforces the customer restriction a view was
// opened with. Resolution fails closed: a token that matches no customer
// locks the view to an empty set, never the full one.
package scope

import (
	"net/url"
	"strings"
)

// Params are the route parameters carried by a share link.
//
//	?c=mastec-inc        name-based slug (or customer number, or comma list)
//	?admin=true          staff view, all customers
//	?m=Union Ridge       pre-applied milestone filter
//	#task=17096          deep-link to one record's detail view
type Params struct {
	Customer  string
	Admin     bool
	Milestone string
	Task      string
}

// ParseLink parses the query/hash portion of a share link. Unparseable input
// degrades to empty params rather than failing the launch.
func ParseLink(link string) Params {
	link = strings.TrimSpace(link)
	query := link
	hash := ""
	if i := strings.IndexByte(link, '#'); i >= 0 {
		query, hash = link[:i], link[i+1:]
	}
	query = strings.TrimPrefix(query, "?")

	var p Params
	if vals, err := url.ParseQuery(query); err == nil {
		p.Customer = strings.TrimSpace(vals.Get("c"))
		p.Admin = vals.Get("admin") == "true"
		p.Milestone = strings.TrimSpace(vals.Get("m"))
	}
	if vals, err := url.ParseQuery(hash); err == nil {
		p.Task = strings.TrimSpace(vals.Get("task"))
	}
	return p
}

// Scope is the customer restriction for the session. Three states:
// admin (unrestricted), enabled (locked to the tokens), and neither,
// the no-access gate, which callers must not confuse with admin.
type Scope struct {
	Enabled bool
	IsAdmin bool
	Tokens  []string
}

// FromParams derives the session scope. The admin flag wins over any
// customer token.
func FromParams(p Params) Scope {
	if p.Admin {
		return Scope{IsAdmin: true}
	}
	c := strings.ToLower(strings.TrimSpace(p.Customer))
	if c == "" {
		return Scope{}
	}
	var tokens []string
	for _, t := range strings.Split(c, ",") {
		if t = strings.TrimSpace(t); t != "" {
			tokens = append(tokens, t)
		}
	}
	if len(tokens) == 0 {
		return Scope{}
	}
	return Scope{Enabled: true, Tokens: tokens}
}

// Allowed reports whether the session may see anything at all.
func (s Scope) Allowed() bool { return s.IsAdmin || s.Enabled }

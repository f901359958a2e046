package grouping

import "github.com/kwren/shipview/internal/normalize"

// Groups buckets records by customer, then by milestone. Iteration follows
// first-occurrence order in the input, so a rebuilt grouping over the same
// rows always renders identically.
type Groups struct {
	order []string
	byKey map[string]*CustomerGroup
}

// CustomerGroup holds one customer's milestone buckets. Address is fixed to
// the first record seen for the customer; later records never overwrite it.
type CustomerGroup struct {
	Name    string
	Address string

	milestoneOrder []string
	buckets        map[string][]normalize.Record
}

// Group builds the customer/milestone structure. Records with a blank
// customer or milestone are dropped, not bucketed under a placeholder.
func Group(records []normalize.Record) *Groups {
	g := &Groups{byKey: make(map[string]*CustomerGroup)}
	for _, r := range records {
		customer := r.Customer()
		milestone := r.Milestone()
		if customer == "" || milestone == "" {
			continue
		}

		cg, ok := g.byKey[customer]
		if !ok {
			cg = &CustomerGroup{
				Name:    customer,
				Address: r.Address(),
				buckets: make(map[string][]normalize.Record),
			}
			g.byKey[customer] = cg
			g.order = append(g.order, customer)
		}

		if _, ok := cg.buckets[milestone]; !ok {
			cg.milestoneOrder = append(cg.milestoneOrder, milestone)
		}
		cg.buckets[milestone] = append(cg.buckets[milestone], r)
	}
	return g
}

// Customers returns customer keys in first-occurrence order.
func (g *Groups) Customers() []string { return g.order }

// Customer returns one customer's group, nil when absent.
func (g *Groups) Customer(name string) *CustomerGroup { return g.byKey[name] }

// Len is the number of distinct customers.
func (g *Groups) Len() int { return len(g.order) }

// Milestones returns milestone names in first-occurrence order.
func (c *CustomerGroup) Milestones() []string { return c.milestoneOrder }

// Records returns the bucket for a milestone in original input order.
func (c *CustomerGroup) Records(milestone string) []normalize.Record {
	return c.buckets[milestone]
}

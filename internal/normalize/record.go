package normalize

import "github.com/kwren/shipview/internal/report"

// Record is a report row after normalization: every original field retained,
// enriched with the derived line items and display dates. Normalization
// always succeeds; a row missing every expected field yields a record with
// zero items.
type Record struct {
	Raw   report.Row
	Items []LineItem

	// Derived display values; raw date fields stay untouched in Raw.
	DueDisplay        string
	CompletionDisplay string
	ContractDisplay   string
}

// Normalize converts one raw row. The input row is not mutated.
func Normalize(row report.Row) Record {
	return Record{
		Raw:               row,
		Items:             ExtractItems(row),
		DueDisplay:        DisplayDate(row.Str("DueDate")),
		CompletionDisplay: DisplayDate(row.Str("CompletionDate")),
		ContractDisplay:   DisplayDate(row.Str("ReleasesContractDate")),
	}
}

// NormalizeAll converts a full fetched row set, preserving order.
func NormalizeAll(rows []report.Row) []Record {
	out := make([]Record, 0, len(rows))
	for _, row := range rows {
		out = append(out, Normalize(row))
	}
	return out
}

// Well-known field accessors. All return "" when the field is absent.

func (r Record) Number() string         { return r.Raw.Str("Number") }
func (r Record) Name() string           { return r.Raw.Str("Name") }
func (r Record) Customer() string       { return r.Raw.Str("CustomerName") }
func (r Record) CustomerNumber() string { return r.Raw.Str("CustomerNumber") }
func (r Record) Milestone() string      { return r.Raw.Str("MilestoneName") }
func (r Record) Status() string         { return r.Raw.Str("Status") }
func (r Record) Address() string        { return r.Raw.Str("CustomerAddressFullAddress") }
func (r Record) ShipTo() string         { return r.Raw.Str("QuoteShipToLocation") }
func (r Record) TrackingURL() string    { return r.Raw.Str("ReleasesBOLTrackingNumber") }

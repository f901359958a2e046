package report

import "fmt"

// FetchClass selects the user-facing message for a failed fetch. It is
// presentation text only; callers treat every FetchError the same way.
type FetchClass int

const (
	FetchTransport FetchClass = iota
	FetchServerError
	FetchNotFound
	FetchUnauthorized
	FetchBadStatus
	FetchDecode
)

// FetchError is the single error kind surfaced by the report boundary.
type FetchError struct {
	Class  FetchClass
	Status int
	Err    error
}

func (e *FetchError) Error() string {
	if e.Err != nil {
		return fmt.Sprintf("fetch report: %v", e.Err)
	}
	return fmt.Sprintf("fetch report: status %d", e.Status)
}

func (e *FetchError) Unwrap() error { return e.Err }

// Message returns the human-readable text shown to the user.
func (e *FetchError) Message() string {
	switch e.Class {
	case FetchServerError:
		return "The report service had an internal problem. Try again shortly."
	case FetchNotFound:
		return "The report endpoint was not found. Check the configured report URL."
	case FetchUnauthorized:
		return "Access to the report endpoint was denied."
	case FetchBadStatus:
		return fmt.Sprintf("The report service returned an unexpected response (%d).", e.Status)
	case FetchDecode:
		return "The report service returned data that could not be read."
	default:
		return "Could not reach the report service. Check your connection."
	}
}

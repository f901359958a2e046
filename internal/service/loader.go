package service

import (
	"context"
	"time"

	"golang.org/x/time/rate"

	"github.com/kwren/shipview/internal/grouping"
	"github.com/kwren/shipview/internal/normalize"
	"github.com/kwren/shipview/internal/report"
)

// Loader runs one load cycle: fetch the full row set, normalize, group.
// Each result replaces the previous one wholesale; there is no partial merge.
type Loader struct {
	Source report.Source

	limiter *rate.Limiter
}

// LoadResult is the complete pipeline output for one cycle.
type LoadResult struct {
	Records   []normalize.Record
	Groups    *grouping.Groups
	FetchedAt time.Time
}

// NewLoader wires a loader over the given source. Manual reloads are
// throttled to one every two seconds.
func NewLoader(src report.Source) *Loader {
	return &Loader{
		Source:  src,
		limiter: rate.NewLimiter(rate.Every(2*time.Second), 1),
	}
}

// Load fetches and rebuilds the grouped structure from scratch. Fetch
// failures pass through as *report.FetchError.
func (l *Loader) Load(ctx context.Context) (LoadResult, error) {
	rows, err := l.Source.Fetch(ctx)
	if err != nil {
		return LoadResult{}, err
	}
	records := normalize.NormalizeAll(rows)
	return LoadResult{
		Records:   records,
		Groups:    grouping.Group(records),
		FetchedAt: time.Now(),
	}, nil
}

// AllowReload reports whether another manual reload may start yet.
func (l *Loader) AllowReload() bool {
	if l.limiter == nil {
		return true
	}
	return l.limiter.Allow()
}

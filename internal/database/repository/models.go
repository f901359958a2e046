package repository

import "time"

// Preset represents a saved filter preset row.
type Preset struct {
	ID             string
	Name           string
	CustomerQuery  string
	MilestoneQuery string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

// Package model defines the data structures shared across the application.
package model

import "time"

// ProductionReport is a single logged task completion. Reports are
// immutable once stored: the log only grows by submission and shrinks
// by a full clear.
type ProductionReport struct {
	ID             string    `json:"id"`
	Date           time.Time `json:"date"`
	TeamMember     string    `json:"teamMember"`
	Task           string    `json:"task"`
	TimeSpent      float64   `json:"timeSpent"`
	UnitsCompleted int       `json:"unitsCompleted"`
	Comments       string    `json:"comments,omitempty"`
	Timestamp      time.Time `json:"timestamp"`

	// Efficiency is set at submission time only when the task had a
	// standard time, and is never recomputed afterwards.
	Efficiency *float64 `json:"efficiency,omitempty"`
}

// ReportInput carries the raw form values for a report submission.
// Numeric fields are strings because they arrive as user-typed text
// and are parsed and validated by the report manager.
type ReportInput struct {
	Date           string
	TeamMember     string
	Task           string
	TimeSpent      string
	UnitsCompleted string
	Comments       string
}

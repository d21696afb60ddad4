package model

import "time"

// AlertSeverity grades a service alert.
type AlertSeverity string

const (
	SeverityInfo     AlertSeverity = "info"
	SeverityWarning  AlertSeverity = "warning"
	SeverityCritical AlertSeverity = "critical"
)

// Alert is a transit service disruption notice shown on the
// Scientist dashboard.
type Alert struct {
	ID        string        `json:"id"`
	Severity  AlertSeverity `json:"severity"`
	Line      string        `json:"line"`
	Message   string        `json:"message"`
	CreatedAt time.Time     `json:"created_at"`
}

// RidershipPoint is one day of rider counts for a transit line.
type RidershipPoint struct {
	Date   string `json:"date"` // YYYY-MM-DD
	Line   string `json:"line"`
	Riders int    `json:"riders"`
}

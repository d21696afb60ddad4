package model

import "time"

// TransitMode is the means of transport for a logged journey.
type TransitMode string

const (
	ModeBus     TransitMode = "bus"
	ModeTrain   TransitMode = "train"
	ModeMetro   TransitMode = "metro"
	ModeBicycle TransitMode = "bicycle"
	ModeWalk    TransitMode = "walk"
)

// Journey is a single transit trip logged by a user.
type Journey struct {
	ID          string      `json:"id"`
	UserID      string      `json:"user_id"`
	Origin      string      `json:"origin"`
	Destination string      `json:"destination"`
	Mode        TransitMode `json:"mode"`
	DurationMin int         `json:"duration_min"`
	CO2SavedKg  float64     `json:"co2_saved_kg"`
	LoggedAt    time.Time   `json:"logged_at"`
}

// JourneyStats aggregates a user's logged journeys.
type JourneyStats struct {
	TotalJourneys int     `json:"total_journeys"`
	TotalMinutes  int     `json:"total_minutes"`
	CO2SavedKg    float64 `json:"co2_saved_kg"`
}

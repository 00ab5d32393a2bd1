// Package domain contains the core data types for the commute stats
// application. This package has zero external dependencies and is imported by
// every other internal package (store, analysis, report, handler).
package domain

import "time"

// Activity is a single recorded activity as received from the upstream
// fitness-tracking service, validated and typed at the load boundary.
// Activities are immutable once constructed; no package mutates them.
type Activity struct {
	// ID is the upstream service's numeric activity identifier.
	// It appears verbatim in activity permalinks.
	ID int64

	// StartDate is the moment the activity started, always in UTC.
	StartDate time.Time

	// Distance is the total distance covered, in meters.
	Distance float64

	// MovingTime is the time actually spent in motion, in seconds.
	MovingTime int

	// ElapsedTime is the total wall-clock time including stops, in seconds.
	// Always >= MovingTime; the store rejects records that violate this.
	ElapsedTime int

	// Commute is the upstream "this was a commute" flag set by the athlete.
	Commute bool

	// The remaining fields are optional in the source data and default to
	// zero values. They feed the lifetime stats only, never the commute core.

	// Type is the activity type as reported upstream (e.g. "Ride", "Run").
	Type string

	// TotalElevationGain is the cumulative climb, in meters.
	TotalElevationGain float64

	// KudosCount is the number of kudos the activity received.
	KudosCount int

	// TotalPhotoCount is the number of photos attached to the activity.
	TotalPhotoCount int
}

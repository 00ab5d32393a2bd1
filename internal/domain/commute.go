package domain

import "time"

// Direction is the inferred travel direction of a commute.
// It is a heuristic derived from local start time, not a label present in the
// source data: commutes starting before local noon are assumed to head to
// work, the rest to head home.
type Direction int

const (
	// ToWork covers local start hours in [0, 12).
	ToWork Direction = iota
	// FromWork covers local start hours in [12, 24).
	FromWork
)

// String returns the human-readable direction name used in reports.
func (d Direction) String() string {
	if d == ToWork {
		return "TO work"
	}
	return "FROM work"
}

// Departure records when a commute left, expressed in the configured local
// time zone. It is computed once at classification time and read-only
// thereafter.
type Departure struct {
	// ActivityID links the departure back to its source activity.
	ActivityID int64

	// Local is the start instant converted to the configured zone.
	Local time.Time

	// Date is the local calendar date formatted as M/D/YYYY.
	Date string

	// Clock is the local time of day formatted as H:MM AM/PM,
	// with no leading zero on the hour.
	Clock string
}

// MinuteOfDay returns the departure's minutes since local midnight.
// Used for averaging departure times and for earliest/latest queries.
func (d Departure) MinuteOfDay() int {
	return d.Local.Hour()*60 + d.Local.Minute()
}

// Commute is an activity that passed the commute filter, together with its
// derived departure. Group membership (to work / from work) is the only
// state derived after construction.
type Commute struct {
	Activity
	Departure Departure
}

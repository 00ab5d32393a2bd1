package analysis

import (
	"strconv"

	"github.com/pkordes/commute-stats/internal/domain"
)

// activityBaseURL is the public permalink prefix; the activity ID is
// appended verbatim.
const activityBaseURL = "https://www.strava.com/activities/"

// CommuteDetail is the result of an extremal query: one commute with every
// value already converted and formatted for display. Durations appear both
// as raw minutes (for structured consumers) and as human-friendly strings
// (for the text report).
type CommuteDetail struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"`
	DistanceMiles float64 `json:"distance_miles"`

	MovingMinutes  float64 `json:"moving_minutes"`
	ElapsedMinutes float64 `json:"elapsed_minutes"`
	StopMinutes    float64 `json:"stop_minutes"`

	MovingTime  string `json:"moving_time"`
	ElapsedTime string `json:"elapsed_time"`
	StopTime    string `json:"stop_time"`

	// SpeedMPH is distance over moving time. Zero when moving time is zero.
	SpeedMPH float64 `json:"speed_mph"`

	// Departure is the local clock time the commute started, H:MM AM/PM.
	Departure string `json:"departure"`

	// Link is the activity's public permalink.
	Link string `json:"link"`
}

// newCommuteDetail builds the display bundle for one commute.
func newCommuteDetail(c domain.Commute) *CommuteDetail {
	moving := float64(c.MovingTime) / 60
	elapsed := float64(c.ElapsedTime) / 60
	stop := elapsed - moving

	return &CommuteDetail{
		ID:             c.ID,
		Date:           c.Departure.Date,
		DistanceMiles:  MetersToMiles(c.Distance),
		MovingMinutes:  moving,
		ElapsedMinutes: elapsed,
		StopMinutes:    stop,
		MovingTime:     FormatMinutes(moving),
		ElapsedTime:    FormatMinutes(elapsed),
		StopTime:       FormatMinutes(stop),
		SpeedMPH:       speedMPH(c.Activity),
		Departure:      c.Departure.Clock,
		Link:           activityBaseURL + strconv.FormatInt(c.ID, 10),
	}
}

// speedMPH returns the average speed of an activity in miles per hour.
// An activity with zero moving time has no meaningful speed; returns 0
// rather than dividing by zero.
func speedMPH(a domain.Activity) float64 {
	if a.MovingTime == 0 {
		return 0
	}
	hours := float64(a.MovingTime) / 3600
	return MetersToMiles(a.Distance) / hours
}

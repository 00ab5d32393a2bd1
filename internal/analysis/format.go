package analysis

import (
	"fmt"
	"math"
	"time"
)

// milesPerMeter converts meters to statute miles.
// Applied exactly once per value; no rounding until display.
const milesPerMeter = 0.000621371

// feetPerMeter converts meters to feet (elevation gain in lifetime stats).
const feetPerMeter = 3.28084

// Minutes-per-unit boundaries for FormatMinutes.
// A "year" is a flat 365 days; no leap-year adjustment.
const (
	minutesPerHour = 60
	minutesPerDay  = 24 * minutesPerHour
	minutesPerYear = 365 * minutesPerDay
)

// MetersToMiles converts a distance in meters to miles.
func MetersToMiles(meters float64) float64 {
	return meters * milesPerMeter
}

// FormatMinutes renders a real-valued duration in minutes as the coarsest
// two-unit human string: "30s", "5m 30s", "2h 10m", "1d 12h", "1y 2d".
// Zero terms are omitted; a zero duration renders as "0s" rather than an
// empty string. Values are truncated at each unit boundary, not rounded.
//
// The input is snapped to whole seconds first; minute values produced by
// seconds/60 divisions carry float error that would otherwise truncate a
// second low (2200s/60 minutes is 36.666…4, and ×60 lands just under 2200).
func FormatMinutes(minutes float64) string {
	total := int(math.Round(minutes * 60)) // whole seconds
	wholeMin := total / 60

	switch {
	case wholeMin < minutesPerHour:
		m := wholeMin
		s := total % 60
		switch {
		case m > 0 && s > 0:
			return fmt.Sprintf("%dm %ds", m, s)
		case m > 0:
			return fmt.Sprintf("%dm", m)
		case s > 0:
			return fmt.Sprintf("%ds", s)
		default:
			return "0s"
		}
	case wholeMin < minutesPerDay:
		h := wholeMin / minutesPerHour
		m := wholeMin % minutesPerHour
		if m == 0 {
			return fmt.Sprintf("%dh", h)
		}
		return fmt.Sprintf("%dh %dm", h, m)
	case wholeMin < minutesPerYear:
		d := wholeMin / minutesPerDay
		h := (wholeMin % minutesPerDay) / minutesPerHour
		if h == 0 {
			return fmt.Sprintf("%dd", d)
		}
		return fmt.Sprintf("%dd %dh", d, h)
	default:
		y := wholeMin / minutesPerYear
		d := (wholeMin % minutesPerYear) / minutesPerDay
		if d == 0 {
			return fmt.Sprintf("%dy", y)
		}
		return fmt.Sprintf("%dy %dd", y, d)
	}
}

// formatDate renders a local time as M/D/YYYY with no leading zeros.
func formatDate(t time.Time) string {
	return fmt.Sprintf("%d/%d/%d", int(t.Month()), t.Day(), t.Year())
}

// formatClock renders an hour and minute of day as H:MM AM/PM with no
// leading zero on the hour (12-hour clock: 0 → 12 AM, 13 → 1 PM).
func formatClock(hour, minute int) string {
	period := "AM"
	if hour >= 12 {
		period = "PM"
	}
	h := hour % 12
	if h == 0 {
		h = 12
	}
	return fmt.Sprintf("%d:%02d %s", h, minute, period)
}

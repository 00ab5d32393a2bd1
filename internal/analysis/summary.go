package analysis

import "github.com/pkordes/commute-stats/internal/domain"

// DirectionSummary bundles every aggregate and extremal result for one
// direction. Extremal fields are nil when the direction has no commutes.
type DirectionSummary struct {
	Count int `json:"count"`

	AvgDistanceMiles  float64 `json:"avg_distance_miles"`
	AvgMovingMinutes  float64 `json:"avg_moving_minutes"`
	AvgElapsedMinutes float64 `json:"avg_elapsed_minutes"`

	// AvgDepartureClock is empty when the direction has no commutes.
	AvgDepartureClock string `json:"avg_departure_clock,omitempty"`

	Fastest           *CommuteDetail `json:"fastest,omitempty"`
	Slowest           *CommuteDetail `json:"slowest,omitempty"`
	EarliestDeparture *CommuteDetail `json:"earliest_departure,omitempty"`
	LatestDeparture   *CommuteDetail `json:"latest_departure,omitempty"`
}

// Summary is the complete structured output of one analysis run. The text
// report and the JSON API are both consumers of this one structure.
type Summary struct {
	StartYear int `json:"start_year"`

	TotalCommutes       int     `json:"total_commutes"`
	TotalDistanceMiles  float64 `json:"total_distance_miles"`
	TotalElapsedMinutes float64 `json:"total_elapsed_minutes"`
	TotalElapsedTime    string  `json:"total_elapsed_time"`

	ToWork   DirectionSummary `json:"to_work"`
	FromWork DirectionSummary `json:"from_work"`
}

// Summary assembles every aggregate and extremal query into one value.
func (a *Analyzer) Summary() Summary {
	totalElapsed := a.TotalElapsedMinutes()

	return Summary{
		StartYear:           a.startYear,
		TotalCommutes:       a.TotalCommutes(),
		TotalDistanceMiles:  a.TotalDistanceMiles(),
		TotalElapsedMinutes: totalElapsed,
		TotalElapsedTime:    FormatMinutes(totalElapsed),
		ToWork:              a.directionSummary(domain.ToWork),
		FromWork:            a.directionSummary(domain.FromWork),
	}
}

// directionSummary runs every per-direction query for d.
func (a *Analyzer) directionSummary(d domain.Direction) DirectionSummary {
	miles, moving, elapsed := a.AverageCommute(d)

	return DirectionSummary{
		Count:             len(a.group(d)),
		AvgDistanceMiles:  miles,
		AvgMovingMinutes:  moving,
		AvgElapsedMinutes: elapsed,
		AvgDepartureClock: a.AverageDepartureClock(d),
		Fastest:           a.Fastest(d),
		Slowest:           a.Slowest(d),
		EarliestDeparture: a.EarliestDeparture(d),
		LatestDeparture:   a.LatestDeparture(d),
	}
}

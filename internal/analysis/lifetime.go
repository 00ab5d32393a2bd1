package analysis

import "github.com/pkordes/commute-stats/internal/domain"

// LifetimeStats is a one-pass summary over the full activity history,
// commutes and non-commutes alike. All fields are zero for an empty input.
type LifetimeStats struct {
	TotalActivities int `json:"total_activities"`

	BikeMiles float64 `json:"bike_miles"`
	RunMiles  float64 `json:"run_miles"`

	MovingMinutes float64 `json:"moving_minutes"`
	MovingTime    string  `json:"moving_time"`

	ElevationGainFeet float64 `json:"elevation_gain_feet"`
	Kudos             int     `json:"kudos"`
	Photos            int     `json:"photos"`

	// MostCommonType is the activity type with the highest count.
	// Ties resolve to the type seen first in input order.
	MostCommonType string `json:"most_common_type,omitempty"`
}

// Lifetime computes lifetime totals over all activities.
func Lifetime(activities []domain.Activity) LifetimeStats {
	stats := LifetimeStats{TotalActivities: len(activities)}
	if len(activities) == 0 {
		stats.MovingTime = FormatMinutes(0)
		return stats
	}

	var bikeMeters, runMeters, elevMeters float64
	var movingSeconds int

	counts := make(map[string]int)
	var order []string

	for _, a := range activities {
		switch a.Type {
		case "Ride":
			bikeMeters += a.Distance
		case "Run":
			runMeters += a.Distance
		}

		movingSeconds += a.MovingTime
		elevMeters += a.TotalElevationGain
		stats.Kudos += a.KudosCount
		stats.Photos += a.TotalPhotoCount

		if _, seen := counts[a.Type]; !seen {
			order = append(order, a.Type)
		}
		counts[a.Type]++
	}

	stats.BikeMiles = MetersToMiles(bikeMeters)
	stats.RunMiles = MetersToMiles(runMeters)
	stats.MovingMinutes = float64(movingSeconds) / 60
	stats.MovingTime = FormatMinutes(stats.MovingMinutes)
	stats.ElevationGainFeet = elevMeters * feetPerMeter

	best := -1
	for _, typ := range order {
		if counts[typ] > best {
			best = counts[typ]
			stats.MostCommonType = typ
		}
	}

	return stats
}

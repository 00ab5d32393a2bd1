// Package analysis implements the commute classification and statistics
// engine. An Analyzer is built once from a decoded activity list; every
// query afterwards is a pure read-only pass over the classified groups, so
// queries are safe to run concurrently once construction returns.
package analysis

import (
	"time"

	"github.com/pkordes/commute-stats/internal/domain"
)

// Analyzer holds the filtered and classified commutes for one activity
// history. Construct with New; the zero value is not usable.
type Analyzer struct {
	startYear int
	loc       *time.Location

	commutes []domain.Commute
	toWork   []domain.Commute
	fromWork []domain.Commute
}

// New filters activities down to commutes and classifies each by direction.
//
// An activity is a commute when its commute flag is set and the UTC year of
// its start date is >= startYear (inclusive, no upper bound). The filter is
// stable: output order follows input order. Each commute's start is then
// converted to loc and bucketed: local hour before noon means to work,
// otherwise from work. loc must carry real IANA zone data; a timestamp's
// UTC offset depends on its calendar date, not just the zone name.
func New(activities []domain.Activity, startYear int, loc *time.Location) *Analyzer {
	a := &Analyzer{startYear: startYear, loc: loc}

	for _, act := range activities {
		if !act.Commute {
			continue
		}
		if act.StartDate.UTC().Year() < startYear {
			continue
		}

		local := act.StartDate.In(loc)
		c := domain.Commute{
			Activity: act,
			Departure: domain.Departure{
				ActivityID: act.ID,
				Local:      local,
				Date:       formatDate(local),
				Clock:      formatClock(local.Hour(), local.Minute()),
			},
		}

		a.commutes = append(a.commutes, c)
		if local.Hour() < 12 {
			a.toWork = append(a.toWork, c)
		} else {
			a.fromWork = append(a.fromWork, c)
		}
	}

	return a
}

// StartYear returns the inclusive year cutoff the analyzer was built with.
func (a *Analyzer) StartYear() int { return a.startYear }

// group returns the ordered commute list for one direction.
func (a *Analyzer) group(d domain.Direction) []domain.Commute {
	if d == domain.ToWork {
		return a.toWork
	}
	return a.fromWork
}

// TotalCommutes returns the count of all filtered commutes, both directions.
func (a *Analyzer) TotalCommutes() int {
	return len(a.commutes)
}

// TotalDistanceMiles returns the summed distance of all commutes in miles.
func (a *Analyzer) TotalDistanceMiles() float64 {
	var meters float64
	for _, c := range a.commutes {
		meters += c.Distance
	}
	return MetersToMiles(meters)
}

// TotalElapsedMinutes returns the summed elapsed time of all commutes in
// minutes.
func (a *Analyzer) TotalElapsedMinutes() float64 {
	var seconds int
	for _, c := range a.commutes {
		seconds += c.ElapsedTime
	}
	return float64(seconds) / 60
}

// AverageCommute returns the mean distance (miles), mean moving time
// (minutes), and mean elapsed time (minutes) for one direction. The three
// means are computed independently; this is not a derived speed.
// An empty group returns 0, 0, 0.
func (a *Analyzer) AverageCommute(d domain.Direction) (miles, movingMin, elapsedMin float64) {
	group := a.group(d)
	if len(group) == 0 {
		return 0, 0, 0
	}

	var meters float64
	var moving, elapsed int
	for _, c := range group {
		meters += c.Distance
		moving += c.MovingTime
		elapsed += c.ElapsedTime
	}

	n := float64(len(group))
	return MetersToMiles(meters / n), float64(moving) / n / 60, float64(elapsed) / n / 60
}

// AverageDepartureClock returns the mean departure time of day for one
// direction, formatted as H:MM AM/PM. The mean is a plain arithmetic mean
// of minutes-since-midnight; it is deliberately not a circular mean, so a
// group whose departures straddle midnight averages to a meaningless
// mid-day value. Known limitation, documented rather than silently fixed.
// An empty group returns "".
func (a *Analyzer) AverageDepartureClock(d domain.Direction) string {
	group := a.group(d)
	if len(group) == 0 {
		return ""
	}

	var total int
	for _, c := range group {
		total += c.Departure.MinuteOfDay()
	}

	mean := float64(total) / float64(len(group))
	return formatClock(int(mean)/60, int(mean)%60)
}

// Fastest returns the commute with the minimum elapsed time in one
// direction, or nil for an empty group. "Fastest" is defined by elapsed
// time, not speed or moving time; ties go to the first commute in
// iteration order.
func (a *Analyzer) Fastest(d domain.Direction) *CommuteDetail {
	return pick(a.group(d), func(c, best domain.Commute) bool {
		return c.ElapsedTime < best.ElapsedTime
	})
}

// Slowest returns the commute with the maximum elapsed time in one
// direction, or nil for an empty group. Ties go to the first commute in
// iteration order.
func (a *Analyzer) Slowest(d domain.Direction) *CommuteDetail {
	return pick(a.group(d), func(c, best domain.Commute) bool {
		return c.ElapsedTime > best.ElapsedTime
	})
}

// EarliestDeparture returns the commute with the earliest local departure
// time of day in one direction, or nil for an empty group.
func (a *Analyzer) EarliestDeparture(d domain.Direction) *CommuteDetail {
	return pick(a.group(d), func(c, best domain.Commute) bool {
		return c.Departure.MinuteOfDay() < best.Departure.MinuteOfDay()
	})
}

// LatestDeparture returns the commute with the latest local departure time
// of day in one direction, or nil for an empty group.
func (a *Analyzer) LatestDeparture(d domain.Direction) *CommuteDetail {
	return pick(a.group(d), func(c, best domain.Commute) bool {
		return c.Departure.MinuteOfDay() > best.Departure.MinuteOfDay()
	})
}

// pick scans a group and returns the detail for the element preferred by
// better. The scan is stable: an element replaces the current best only
// when strictly better, so ties resolve to the first encountered.
func pick(group []domain.Commute, better func(c, best domain.Commute) bool) *CommuteDetail {
	if len(group) == 0 {
		return nil
	}

	best := group[0]
	for _, c := range group[1:] {
		if better(c, best) {
			best = c
		}
	}
	return newCommuteDetail(best)
}

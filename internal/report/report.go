// Package report renders an analysis.Summary as a fixed-order text report
// and writes it to disk. It consumes only plain values and strings from the
// analysis package; no classification or aggregation logic lives here.
package report

import (
	"bytes"
	"fmt"

	"github.com/pkordes/commute-stats/internal/analysis"
	"github.com/pkordes/commute-stats/internal/domain"
)

// Render assembles the full text report from a summary. Section order is
// fixed: header, totals, per-direction averages (to work, then from work),
// then fastest / slowest / earliest / latest for each direction. Sections
// for an empty direction group are omitted rather than rendered with zeros.
func Render(s analysis.Summary) string {
	var buf bytes.Buffer

	buf.WriteString("\n===== STRAVA COMMUTE ANALYSIS =====\n\n")
	fmt.Fprintf(&buf, "Analysis for commutes from %d onwards\n\n", s.StartYear)

	fmt.Fprintf(&buf, "Total number of commutes: %d\n", s.TotalCommutes)
	fmt.Fprintf(&buf, "Total distance of commutes: %.2f miles\n", s.TotalDistanceMiles)
	fmt.Fprintf(&buf, "Total elapsed time: %s\n", s.TotalElapsedTime)

	writeAverages(&buf, domain.ToWork, s.ToWork)
	writeAverages(&buf, domain.FromWork, s.FromWork)

	writeDetail(&buf, "Fastest commute", domain.ToWork, s.ToWork.Fastest)
	writeDetail(&buf, "Slowest commute", domain.ToWork, s.ToWork.Slowest)
	writeDetail(&buf, "Fastest commute", domain.FromWork, s.FromWork.Fastest)
	writeDetail(&buf, "Slowest commute", domain.FromWork, s.FromWork.Slowest)

	writeDeparture(&buf, "Earliest departure", domain.ToWork, s.ToWork.EarliestDeparture)
	writeDeparture(&buf, "Latest departure", domain.ToWork, s.ToWork.LatestDeparture)
	writeDeparture(&buf, "Earliest departure", domain.FromWork, s.FromWork.EarliestDeparture)
	writeDeparture(&buf, "Latest departure", domain.FromWork, s.FromWork.LatestDeparture)

	buf.WriteString("\n===================================\n")
	return buf.String()
}

// writeAverages renders the per-direction averages block.
// Skipped entirely when the direction has no commutes.
func writeAverages(buf *bytes.Buffer, d domain.Direction, ds analysis.DirectionSummary) {
	if ds.Count == 0 {
		return
	}

	fmt.Fprintf(buf, "\nAverage commute %s (%d commutes):\n", d, ds.Count)
	fmt.Fprintf(buf, "  Distance: %.2f miles\n", ds.AvgDistanceMiles)
	fmt.Fprintf(buf, "  Moving time: %s\n", analysis.FormatMinutes(ds.AvgMovingMinutes))
	fmt.Fprintf(buf, "  Elapsed time: %s\n", analysis.FormatMinutes(ds.AvgElapsedMinutes))
	fmt.Fprintf(buf, "  Stop time: %s\n", analysis.FormatMinutes(ds.AvgElapsedMinutes-ds.AvgMovingMinutes))
	fmt.Fprintf(buf, "  Departure: %s\n", ds.AvgDepartureClock)
}

// writeDetail renders one fastest/slowest extremal block. Nil means the
// direction group is empty and the block is omitted.
func writeDetail(buf *bytes.Buffer, label string, d domain.Direction, c *analysis.CommuteDetail) {
	if c == nil {
		return
	}

	fmt.Fprintf(buf, "\n%s %s: %s elapsed (%.2f mph)\n", label, d, c.ElapsedTime, c.SpeedMPH)
	fmt.Fprintf(buf, "  Date: %s\n", c.Date)
	fmt.Fprintf(buf, "  Distance: %.2f miles\n", c.DistanceMiles)
	fmt.Fprintf(buf, "  Moving time: %s\n", c.MovingTime)
	fmt.Fprintf(buf, "  Elapsed time: %s\n", c.ElapsedTime)
	fmt.Fprintf(buf, "  Stop time: %s\n", c.StopTime)
	fmt.Fprintf(buf, "  Link: %s\n", c.Link)
}

// writeDeparture renders one earliest/latest departure block.
func writeDeparture(buf *bytes.Buffer, label string, d domain.Direction, c *analysis.CommuteDetail) {
	if c == nil {
		return
	}

	fmt.Fprintf(buf, "\n%s %s: %s\n", label, d, c.Departure)
	fmt.Fprintf(buf, "  Date: %s\n", c.Date)
	fmt.Fprintf(buf, "  Distance: %.2f miles\n", c.DistanceMiles)
	fmt.Fprintf(buf, "  Elapsed time: %s\n", c.ElapsedTime)
	fmt.Fprintf(buf, "  Link: %s\n", c.Link)
}

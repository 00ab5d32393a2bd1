// Package main is the batch analyzer CLI. It loads the pre-fetched activity
// history, runs the commute analysis, prints the text report to stdout, and
// saves a dated copy under the report directory.
//
// Logs go to stderr so stdout stays clean for the report itself.
package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"time"

	// Embed the IANA timezone database so historical DST rules resolve
	// even on hosts without a system zoneinfo directory.
	_ "time/tzdata"

	"github.com/pkordes/commute-stats/internal/analysis"
	"github.com/pkordes/commute-stats/internal/config"
	"github.com/pkordes/commute-stats/internal/report"
	"github.com/pkordes/commute-stats/internal/store"
)

func main() {
	lifetime := flag.Bool("lifetime", false, "also print lifetime totals over the full activity history")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		slog.Error("configuration error", "error", err)
		os.Exit(1)
	}

	var logLevel slog.Level
	if err := logLevel.UnmarshalText([]byte(cfg.LogLevel)); err != nil {
		logLevel = slog.LevelInfo
	}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{
		Level: logLevel,
	}))
	slog.SetDefault(logger)

	loc, err := time.LoadLocation(cfg.Timezone)
	if err != nil {
		slog.Error("unknown timezone", "timezone", cfg.Timezone, "error", err)
		os.Exit(1)
	}

	activities, err := store.NewFileStore(cfg.ActivitiesFile).Load()
	if err != nil {
		slog.Error("failed to load activities", "path", cfg.ActivitiesFile, "error", err)
		os.Exit(1)
	}

	summary := analysis.New(activities, cfg.StartYear, loc).Summary()
	text := report.Render(summary)
	fmt.Print(text)

	path, err := report.NewWriter(cfg.ReportDir).Save(text, cfg.StartYear)
	if err != nil {
		slog.Error("failed to save report", "error", err)
		os.Exit(1)
	}
	slog.Info("analysis saved", "path", path)

	if *lifetime {
		printLifetime(analysis.Lifetime(activities))
	}
}

// printLifetime writes the lifetime totals block to stdout.
func printLifetime(stats analysis.LifetimeStats) {
	fmt.Println("\n===== LIFETIME STATS =====")
	fmt.Printf("Total activities: %d\n", stats.TotalActivities)
	fmt.Printf("Bike miles: %.0f\n", stats.BikeMiles)
	fmt.Printf("Run miles: %.0f\n", stats.RunMiles)
	fmt.Printf("Moving time: %s\n", stats.MovingTime)
	fmt.Printf("Elevation gain (ft): %.0f\n", stats.ElevationGainFeet)
	fmt.Printf("Kudos: %d\n", stats.Kudos)
	fmt.Printf("Photos: %d\n", stats.Photos)
	if stats.MostCommonType != "" {
		fmt.Printf("Most common: %s\n", stats.MostCommonType)
	}
}

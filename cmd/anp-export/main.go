// Command anp-export writes the sighting records and the ANP geometry to
// interchange formats: CSV for the observation log, shapefiles for the
// boundary and island traces.
package main

import (
	"flag"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/vigiamar/anp-sightings/internal/database"
	"github.com/vigiamar/anp-sightings/internal/geo"
	"github.com/vigiamar/anp-sightings/internal/observations"
	"github.com/vigiamar/anp-sightings/internal/reports"
)

func main() {
	dbPath := flag.String("db", database.DefaultPath(), "Path to the sqlite database")
	outDir := flag.String("out", "export", "Output directory")
	shapes := flag.Bool("shapes", false, "Also export boundary and island shapefiles")
	reportType := flag.String("report", reports.ReportTotal, "Window: weekly, monthly, annual or total")
	year := flag.Int("year", 0, "Report year (0: current)")
	month := flag.Int("month", 0, "Report month 1-12 (0: current)")
	week := flag.Int("week", 0, "Week of month for weekly reports")
	status := flag.String("status", "", "Optional status category filter")
	flag.Parse()

	if err := run(*dbPath, *outDir, *shapes, *reportType, *year, *month, *week, *status); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(dbPath, outDir string, shapes bool, reportType string, year, month, week int, status string) error {
	if err := os.MkdirAll(outDir, 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}

	db, err := database.Open(dbPath)
	if err != nil {
		return err
	}
	defer db.Close()
	if err := database.EnsureSchema(db); err != nil {
		return err
	}

	now := time.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = int(now.Month())
	}
	window, err := reports.ResolveWindow(reportType, year, time.Month(month), week)
	if err != nil {
		return err
	}

	repo := observations.NewRepository(db)
	obs, err := repo.QueryFiltered(window, status)
	if err != nil {
		return err
	}

	csvPath := filepath.Join(outDir, "avistamientos.csv")
	f, err := os.Create(csvPath)
	if err != nil {
		return fmt.Errorf("creating %s: %w", csvPath, err)
	}
	defer f.Close()
	if err := observations.WriteCSV(f, obs); err != nil {
		return err
	}
	fmt.Printf("Wrote %d observations (%s) to %s\n", len(obs), window.Label, csvPath)

	if shapes {
		boundaryPath := filepath.Join(outDir, "poligono_anp.shp")
		if err := geo.ExportBoundaryShapefile(boundaryPath); err != nil {
			return err
		}
		markerPath := filepath.Join(outDir, "islotes_anp.shp")
		if err := geo.ExportMarkerShapefile(markerPath); err != nil {
			return err
		}
		fmt.Printf("Wrote boundary and island shapefiles to %s\n", outDir)
	}

	return nil
}

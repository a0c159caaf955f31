package main

import (
	"flag"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vigiamar/anp-sightings/internal/config"
	"github.com/vigiamar/anp-sightings/internal/database"
	"github.com/vigiamar/anp-sightings/internal/observations"
	"github.com/vigiamar/anp-sightings/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "Path to a yaml config file (optional)")
	dbPath := flag.String("db", "", "Path to the sqlite database (overrides config)")
	flag.Parse()

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading configuration: %v\n", err)
		os.Exit(1)
	}
	if *dbPath != "" {
		cfg.Database.Path = *dbPath
	}

	setupLogging(cfg.Log.Level)

	if dir := filepath.Dir(cfg.Database.Path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			fmt.Fprintf(os.Stderr, "Error creating data directory: %v\n", err)
			os.Exit(1)
		}
	}

	db, err := database.Open(cfg.Database.Path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening database: %v\n", err)
		os.Exit(1)
	}
	defer db.Close()

	if err := database.EnsureSchema(db); err != nil {
		fmt.Fprintf(os.Stderr, "Error preparing database: %v\n", err)
		os.Exit(1)
	}

	svc := observations.NewService(observations.NewRepository(db))

	p := tea.NewProgram(
		ui.NewModel(svc, cfg.Reports.TopVesselLimit, cfg.Reports.MinInfractions),
		tea.WithAltScreen(),
	)
	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error running application: %v\n", err)
		os.Exit(1)
	}
}

// setupLogging routes slog to a file so log lines never tear the TUI.
func setupLogging(level string) {
	var lvl slog.Level
	if err := lvl.UnmarshalText([]byte(level)); err != nil {
		lvl = slog.LevelInfo
	}

	out, err := os.OpenFile("anp-sightings.log", os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})))
		return
	}
	slog.SetDefault(slog.New(slog.NewTextHandler(out, &slog.HandlerOptions{Level: lvl})))
}

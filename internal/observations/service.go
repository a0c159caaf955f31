package observations

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/vigiamar/anp-sightings/internal/classify"
	"github.com/vigiamar/anp-sightings/internal/coords"
	"github.com/vigiamar/anp-sightings/internal/models"
	"github.com/vigiamar/anp-sightings/internal/reports"
)

// ErrInvalidTimestamp is returned for unparseable sighting timestamps.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

// ErrNotFound is returned by Update for unknown observation ids.
var ErrNotFound = errors.New("observation not found")

// Accepted timestamp layouts (minute and second precision).
var timestampLayouts = []string{"2006-01-02T15:04", "2006-01-02T15:04:05"}

// SightingInput is the raw material for one observation: form-style
// strings plus a coordinate in any accepted format.
type SightingInput struct {
	Registration string
	VesselName   string
	CaptainName  string
	Timestamp    string // empty means "now"
	Coordinate   coords.Input
	VesselTypeID string
	StatusID     string // requested status category
	Notes        string
}

// RecordOutcome reports what happened to a submitted sighting.
type RecordOutcome struct {
	Observation models.Observation
	Inserted    bool // false when an identical (registration, timestamp) already existed
	// ManualOutside flags an inside-boundary point explicitly recorded as
	// outside by the caller.
	ManualOutside bool
}

// Service composes the normalize → classify → persist pipeline.
type Service struct {
	repo   *Repository
	clock  clockwork.Clock
	logger *slog.Logger
}

// NewService creates a service over the repository using the real clock.
func NewService(repo *Repository) *Service {
	return NewServiceWithClock(repo, clockwork.NewRealClock())
}

// NewServiceWithClock allows injecting a clock for tests.
func NewServiceWithClock(repo *Repository, clock clockwork.Clock) *Service {
	return &Service{repo: repo, clock: clock, logger: slog.Default()}
}

// AddObservation normalizes, classifies and stores a sighting.
func (s *Service) AddObservation(in SightingInput) (RecordOutcome, error) {
	obs, manual, err := s.buildObservation(in)
	if err != nil {
		return RecordOutcome{}, err
	}

	inserted, err := s.repo.Insert(&obs)
	if err != nil {
		return RecordOutcome{}, err
	}
	if !inserted {
		s.logger.Info("duplicate sighting ignored",
			"registration", obs.Registration, "timestamp", obs.Timestamp)
	}
	return RecordOutcome{Observation: obs, Inserted: inserted, ManualOutside: manual}, nil
}

// UpdateObservation re-runs the full pipeline against an existing record,
// replacing every field except the id.
func (s *Service) UpdateObservation(id int64, in SightingInput) (RecordOutcome, error) {
	obs, manual, err := s.buildObservation(in)
	if err != nil {
		return RecordOutcome{}, err
	}

	found, err := s.repo.Update(id, &obs)
	if err != nil {
		return RecordOutcome{}, err
	}
	if !found {
		return RecordOutcome{}, fmt.Errorf("%w: id %d", ErrNotFound, id)
	}
	obs.ID = id
	return RecordOutcome{Observation: obs, Inserted: true, ManualOutside: manual}, nil
}

// DeleteObservation removes a record by id.
func (s *Service) DeleteObservation(id int64) (bool, error) {
	return s.repo.Delete(id)
}

// History returns the sighting history for a registration, newest first.
func (s *Service) History(registration string) ([]models.Observation, error) {
	return s.repo.History(registration)
}

// Search finds observations by partial vessel name and/or captain name,
// newest first.
func (s *Service) Search(vesselName, captainName string) ([]models.Observation, error) {
	return s.repo.SearchByNameOrCaptain(vesselName, captainName)
}

// buildObservation runs the pure part of the pipeline: coordinate
// normalization, defaulting, timestamp parsing and status resolution.
func (s *Service) buildObservation(in SightingInput) (models.Observation, bool, error) {
	registration := strings.ToUpper(strings.TrimSpace(in.Registration))

	vesselName := strings.TrimSpace(in.VesselName)
	if vesselName == "" {
		vesselName = "Emb. " + registration
	}
	captainName := strings.TrimSpace(in.CaptainName)
	if captainName == "" {
		captainName = "N/A"
	}

	timestamp, err := s.parseTimestamp(in.Timestamp)
	if err != nil {
		return models.Observation{}, false, err
	}

	lon, lat, err := coords.Normalize(in.Coordinate)
	if err != nil {
		return models.Observation{}, false, err
	}
	if err := coords.ValidateGeographic(lon, lat); err != nil {
		return models.Observation{}, false, err
	}

	result, err := classify.Resolve(lon, lat, in.StatusID)
	if err != nil {
		return models.Observation{}, false, err
	}
	if result.ManualOutside {
		s.logger.Warn("point inside boundary recorded as outside by request",
			"registration", registration, "lat", lat, "lon", lon)
	}

	return models.Observation{
		Registration: registration,
		VesselName:   vesselName,
		CaptainName:  captainName,
		Timestamp:    timestamp,
		Latitude:     lat,
		Longitude:    lon,
		VesselTypeID: models.NormalizeVesselType(in.VesselTypeID),
		StatusID:     result.StatusID,
		Notes:        in.Notes,
	}, result.ManualOutside, nil
}

func (s *Service) parseTimestamp(raw string) (time.Time, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return s.clock.Now().UTC().Truncate(time.Minute), nil
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, raw, time.UTC); err == nil {
			return t, nil
		}
	}
	return time.Time{}, fmt.Errorf("%w: %q, use AAAA-MM-DDTHH:MM", ErrInvalidTimestamp, raw)
}

// Summary bundles every aggregate the reporting views need for one
// resolved window.
type Summary struct {
	Window        reports.Window
	Observations  []models.Observation
	MonthlyCounts []reports.PeriodCount
	Distribution  []reports.StatusCount
	TopVessels    []reports.VesselCount
	Infractions   []reports.InfractionRecord
}

// BuildSummary resolves the report window, pulls the matching records and
// runs the aggregation engine over them. Year and month fall back to the
// current calendar values when zero.
func (s *Service) BuildSummary(reportType string, year int, month time.Month, weekNumber int, statusFilter string, topLimit, minInfractions int) (Summary, error) {
	now := s.clock.Now()
	if year == 0 {
		year = now.Year()
	}
	if month == 0 {
		month = now.Month()
	}

	window, err := reports.ResolveWindow(reportType, year, month, weekNumber)
	if err != nil {
		return Summary{}, err
	}

	obs, err := s.repo.QueryFiltered(window, statusFilter)
	if err != nil {
		return Summary{}, err
	}

	return Summary{
		Window:        window,
		Observations:  obs,
		MonthlyCounts: reports.CountsByMonth(obs),
		Distribution:  reports.StatusDistribution(obs),
		TopVessels:    reports.TopRecurrentVessels(obs, topLimit),
		Infractions:   reports.RepeatedInfractions(obs, minInfractions),
	}, nil
}

package observations

import (
	"errors"
	"testing"
	"time"

	"github.com/jonboulle/clockwork"
	"github.com/vigiamar/anp-sightings/internal/coords"
	"github.com/vigiamar/anp-sightings/internal/models"
	"github.com/vigiamar/anp-sightings/internal/reports"
)

func newTestService(t *testing.T, at time.Time) *Service {
	t.Helper()
	repo := newTestRepository(t)
	return NewServiceWithClock(repo, clockwork.NewFakeClockAt(at))
}

func insideDDInput(reg, ts, status string) SightingInput {
	return SightingInput{
		Registration: reg,
		Timestamp:    ts,
		Coordinate: coords.Input{
			Format: coords.FormatDD,
			LatDD:  "21.5170",
			LonDD:  "-106.4712",
		},
		VesselTypeID: models.VesselPanga,
		StatusID:     status,
	}
}

func TestAddObservationInsidePassThrough(t *testing.T) {
	svc := newTestService(t, time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))

	// 21°18.739'N, 106°13.259'W, inside the maritime boundary.
	in := SightingInput{
		Registration: "mx1234",
		Timestamp:    "2024-03-10T09:30",
		Coordinate: coords.Input{
			Format:    coords.FormatGDMID,
			LatGDMDeg: "21", LatGDMMin: "18.739", LatGDMHem: "N",
			LonGDMDeg: "106", LonGDMMin: "13.259", LonGDMHem: "W",
		},
		VesselTypeID: models.VesselYate,
		StatusID:     models.StatusAuthorizedTourism,
	}

	out, err := svc.AddObservation(in)
	if err != nil {
		t.Fatalf("AddObservation() error = %v", err)
	}
	if !out.Inserted {
		t.Error("Inserted = false on first submission")
	}
	if out.ManualOutside {
		t.Error("ManualOutside = true for a plain inside sighting")
	}
	obs := out.Observation
	if obs.Registration != "MX1234" {
		t.Errorf("registration = %q, want MX1234", obs.Registration)
	}
	if obs.StatusID != models.StatusAuthorizedTourism {
		t.Errorf("status = %q, want requested category kept", obs.StatusID)
	}
	if obs.VesselName != "Emb. MX1234" || obs.CaptainName != "N/A" {
		t.Errorf("defaults not applied: name=%q captain=%q", obs.VesselName, obs.CaptainName)
	}
	want := time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC)
	if !obs.Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want %v", obs.Timestamp, want)
	}
}

func TestAddObservationOutsideOverridesCategory(t *testing.T) {
	svc := newTestService(t, time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))

	in := SightingInput{
		Registration: "FAR01",
		Timestamp:    "2024-03-10T09:30",
		Coordinate: coords.Input{
			Format: coords.FormatDD,
			LatDD:  "21.5",
			LonDD:  "-110.0",
		},
		StatusID: models.StatusEnvironmentalCrime,
	}

	out, err := svc.AddObservation(in)
	if err != nil {
		t.Fatalf("AddObservation() error = %v", err)
	}
	if out.Observation.StatusID != models.StatusOutsideANP {
		t.Errorf("status = %q, want %q for an outside point", out.Observation.StatusID, models.StatusOutsideANP)
	}
	if out.ManualOutside {
		t.Error("ManualOutside = true for a geometrically outside point")
	}
}

func TestAddObservationManualOutsideFlagged(t *testing.T) {
	svc := newTestService(t, time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))

	out, err := svc.AddObservation(insideDDInput("OV22", "2024-03-10T09:30", models.StatusOutsideANP))
	if err != nil {
		t.Fatalf("AddObservation() error = %v", err)
	}
	if out.Observation.StatusID != models.StatusOutsideANP {
		t.Errorf("status = %q, want %q", out.Observation.StatusID, models.StatusOutsideANP)
	}
	if !out.ManualOutside {
		t.Error("ManualOutside = false for an inside point recorded as outside")
	}
}

func TestAddObservationEmptyTimestampUsesClock(t *testing.T) {
	now := time.Date(2024, time.June, 3, 14, 27, 45, 0, time.UTC)
	svc := newTestService(t, now)

	out, err := svc.AddObservation(insideDDInput("CLK1", "", models.StatusInnocentPassage))
	if err != nil {
		t.Fatalf("AddObservation() error = %v", err)
	}
	want := time.Date(2024, time.June, 3, 14, 27, 0, 0, time.UTC)
	if !out.Observation.Timestamp.Equal(want) {
		t.Errorf("timestamp = %v, want clock truncated to %v", out.Observation.Timestamp, want)
	}
}

func TestAddObservationInvalidTimestamp(t *testing.T) {
	svc := newTestService(t, time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))

	_, err := svc.AddObservation(insideDDInput("BAD1", "10/03/2024 09:30", models.StatusInnocentPassage))
	if !errors.Is(err, ErrInvalidTimestamp) {
		t.Errorf("error = %v, want ErrInvalidTimestamp", err)
	}
}

func TestAddObservationDuplicate(t *testing.T) {
	svc := newTestService(t, time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))
	in := insideDDInput("DUP1", "2024-03-10T09:30", models.StatusInnocentPassage)

	if out, err := svc.AddObservation(in); err != nil || !out.Inserted {
		t.Fatalf("first AddObservation() = %+v, %v", out, err)
	}
	out, err := svc.AddObservation(in)
	if err != nil {
		t.Fatalf("second AddObservation() error = %v", err)
	}
	if out.Inserted {
		t.Error("duplicate submission reported Inserted = true")
	}
}

func TestUpdateObservation(t *testing.T) {
	svc := newTestService(t, time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))

	out, err := svc.AddObservation(insideDDInput("UP55", "2024-03-10T09:30", models.StatusInnocentPassage))
	if err != nil {
		t.Fatalf("AddObservation() error = %v", err)
	}

	edited := insideDDInput("UP55", "2024-03-10T09:30", models.StatusDocNavIssue)
	edited.Notes = "documentos incompletos"
	updated, err := svc.UpdateObservation(out.Observation.ID, edited)
	if err != nil {
		t.Fatalf("UpdateObservation() error = %v", err)
	}
	if updated.Observation.StatusID != models.StatusDocNavIssue || updated.Observation.Notes != "documentos incompletos" {
		t.Errorf("after update: %+v", updated.Observation)
	}

	if _, err := svc.UpdateObservation(9999, edited); !errors.Is(err, ErrNotFound) {
		t.Errorf("update of missing id: error = %v, want ErrNotFound", err)
	}
}

func TestBuildSummary(t *testing.T) {
	svc := newTestService(t, time.Date(2024, time.March, 15, 12, 0, 0, 0, time.UTC))

	seed := []struct {
		reg, ts, status string
	}{
		{"A1", "2024-03-04T08:00", models.StatusInnocentPassage},
		{"A1", "2024-03-05T08:00", models.StatusFisheriesIssue},
		{"B2", "2024-03-06T08:00", models.StatusFisheriesIssue},
		{"C3", "2024-04-01T08:00", models.StatusInnocentPassage},
	}
	for _, s := range seed {
		if _, err := svc.AddObservation(insideDDInput(s.reg, s.ts, s.status)); err != nil {
			t.Fatalf("seeding %s: %v", s.reg, err)
		}
	}

	sum, err := svc.BuildSummary(reports.ReportMonthly, 2024, time.March, 0, "", 10, 2)
	if err != nil {
		t.Fatalf("BuildSummary() error = %v", err)
	}
	if len(sum.Observations) != 3 {
		t.Fatalf("observations in window = %d, want 3", len(sum.Observations))
	}
	if len(sum.Distribution) != 2 || sum.Distribution[0].StatusID != models.StatusFisheriesIssue {
		t.Errorf("distribution = %+v, want pesca_lgpas_issue leading with 2", sum.Distribution)
	}
	if len(sum.TopVessels) == 0 || sum.TopVessels[0].Registration != "A1" {
		t.Errorf("top vessels = %+v, want A1 first", sum.TopVessels)
	}

	t.Run("defaults from clock", func(t *testing.T) {
		sum, err := svc.BuildSummary(reports.ReportMonthly, 0, 0, 0, "", 10, 2)
		if err != nil {
			t.Fatalf("BuildSummary() error = %v", err)
		}
		if len(sum.Observations) != 3 {
			t.Errorf("observations with defaulted year/month = %d, want 3", len(sum.Observations))
		}
	})

	t.Run("invalid report type", func(t *testing.T) {
		if _, err := svc.BuildSummary("quarterly", 2024, time.March, 0, "", 10, 2); !errors.Is(err, reports.ErrInvalidReportType) {
			t.Errorf("error = %v, want ErrInvalidReportType", err)
		}
	})
}

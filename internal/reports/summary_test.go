package reports

import (
	"testing"
	"time"

	"github.com/vigiamar/anp-sightings/internal/models"
)

func obs(reg, status string, ts time.Time) models.Observation {
	return models.Observation{Registration: reg, StatusID: status, Timestamp: ts}
}

func TestCountsByMonth(t *testing.T) {
	records := []models.Observation{
		obs("A", models.StatusInnocentPassage, date(2024, time.March, 10, 9, 0, 0, 0)),
		obs("B", models.StatusInnocentPassage, date(2024, time.March, 12, 9, 0, 0, 0)),
		obs("C", models.StatusInnocentPassage, date(2023, time.December, 1, 9, 0, 0, 0)),
		obs("D", models.StatusInnocentPassage, date(2024, time.January, 1, 9, 0, 0, 0)),
	}

	got := CountsByMonth(records)
	want := []PeriodCount{
		{Year: 2023, Month: time.December, Count: 1},
		{Year: 2024, Month: time.January, Count: 1},
		{Year: 2024, Month: time.March, Count: 2},
	}
	if len(got) != len(want) {
		t.Fatalf("CountsByMonth() returned %d buckets, want %d", len(got), len(want))
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("bucket %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestCountsByMonthEmpty(t *testing.T) {
	if got := CountsByMonth(nil); len(got) != 0 {
		t.Errorf("CountsByMonth(nil) = %v, want empty", got)
	}
}

func TestStatusDistribution(t *testing.T) {
	ts := date(2024, time.March, 10, 9, 0, 0, 0)
	records := []models.Observation{
		obs("A", models.StatusOutsideANP, ts),
		obs("B", models.StatusOutsideANP, ts),
		obs("C", models.StatusOutsideANP, ts),
		obs("D", models.StatusFisheriesIssue, ts),
		obs("E", models.StatusEnvironmentalCrime, ts),
	}

	got := StatusDistribution(records)
	if len(got) != 3 {
		t.Fatalf("StatusDistribution() returned %d entries, want 3", len(got))
	}
	if got[0].StatusID != models.StatusOutsideANP || got[0].Count != 3 {
		t.Errorf("top entry = %+v, want outside_anp x3", got[0])
	}
	// delito and pesca_lgpas_issue tie at 1; lexicographic id order breaks it.
	if got[1].StatusID != models.StatusEnvironmentalCrime || got[2].StatusID != models.StatusFisheriesIssue {
		t.Errorf("tie order = %q, %q; want delito then pesca_lgpas_issue", got[1].StatusID, got[2].StatusID)
	}
	if got[0].Description != "Fuera del Polígono ANP" {
		t.Errorf("description = %q", got[0].Description)
	}
}

func TestTopRecurrentVessels(t *testing.T) {
	ts := date(2024, time.March, 10, 9, 0, 0, 0)
	var records []models.Observation
	for i := 0; i < 5; i++ {
		records = append(records, obs("XW1200", models.StatusInnocentPassage, ts.Add(time.Duration(i)*time.Hour)))
	}
	for i := 0; i < 3; i++ {
		records = append(records, obs("PT0042", models.StatusInnocentPassage, ts.Add(time.Duration(i)*time.Hour)))
		records = append(records, obs("AB9001", models.StatusInnocentPassage, ts.Add(time.Duration(i)*time.Hour)))
	}
	records = append(records, obs("ZZ0001", models.StatusInnocentPassage, ts))

	got := TopRecurrentVessels(records, 3)
	if len(got) != 3 {
		t.Fatalf("TopRecurrentVessels() returned %d entries, want 3", len(got))
	}
	want := []VesselCount{
		{Registration: "XW1200", Count: 5},
		{Registration: "AB9001", Count: 3}, // ties break lexicographically
		{Registration: "PT0042", Count: 3},
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("entry %d = %+v, want %+v", i, got[i], want[i])
		}
	}
}

func TestTopRecurrentVesselsNoLimit(t *testing.T) {
	ts := date(2024, time.March, 10, 9, 0, 0, 0)
	records := []models.Observation{
		obs("A", models.StatusInnocentPassage, ts),
		obs("B", models.StatusInnocentPassage, ts),
	}
	if got := TopRecurrentVessels(records, 0); len(got) != 2 {
		t.Errorf("TopRecurrentVessels(limit 0) returned %d entries, want all", len(got))
	}
}

func TestRepeatedInfractions(t *testing.T) {
	// Vessel X: one fisheries infraction plus one environmental offense —
	// two infraction-class records of distinct categories still qualify.
	records := []models.Observation{
		obs("X", models.StatusFisheriesIssue, date(2024, time.March, 10, 9, 0, 0, 0)),
		obs("X", models.StatusEnvironmentalCrime, date(2024, time.April, 2, 14, 30, 0, 0)),
		// Vessel Y: three fisheries infractions.
		obs("Y", models.StatusFisheriesIssue, date(2024, time.January, 5, 8, 0, 0, 0)),
		obs("Y", models.StatusFisheriesIssue, date(2024, time.February, 5, 8, 0, 0, 0)),
		obs("Y", models.StatusFisheriesIssue, date(2024, time.March, 5, 8, 0, 0, 0)),
		// Vessel Z: a single infraction, below the threshold.
		obs("Z", models.StatusEnvironmentalCrime, date(2024, time.March, 1, 8, 0, 0, 0)),
		// Non-infraction statuses never count.
		obs("X", models.StatusInnocentPassage, date(2024, time.May, 1, 8, 0, 0, 0)),
		obs("Z", models.StatusOutsideANP, date(2024, time.May, 2, 8, 0, 0, 0)),
	}

	got := RepeatedInfractions(records, 2)
	if len(got) != 2 {
		t.Fatalf("RepeatedInfractions() returned %d vessels, want 2", len(got))
	}

	if got[0].Registration != "Y" || got[0].Count != 3 {
		t.Errorf("first = %+v, want Y with 3", got[0])
	}
	if !got[0].LastInfraction.Equal(date(2024, time.March, 5, 8, 0, 0, 0)) {
		t.Errorf("Y last infraction = %v", got[0].LastInfraction)
	}

	x := got[1]
	if x.Registration != "X" || x.Count != 2 {
		t.Fatalf("second = %+v, want X with 2", x)
	}
	if !x.LastInfraction.Equal(date(2024, time.April, 2, 14, 30, 0, 0)) {
		t.Errorf("X last infraction = %v", x.LastInfraction)
	}
	wantDescs := []string{"Delito Ambiental / Otro", "Infracción LGPAS (Pesca/Acuacultura)"}
	if len(x.Descriptions) != 2 || x.Descriptions[0] != wantDescs[0] || x.Descriptions[1] != wantDescs[1] {
		t.Errorf("X descriptions = %v, want %v", x.Descriptions, wantDescs)
	}
}

func TestRepeatedInfractionsEmpty(t *testing.T) {
	records := []models.Observation{
		obs("A", models.StatusInnocentPassage, date(2024, time.March, 10, 9, 0, 0, 0)),
	}
	if got := RepeatedInfractions(records, 2); len(got) != 0 {
		t.Errorf("RepeatedInfractions() = %v, want empty", got)
	}
}

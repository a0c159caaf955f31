package observations

import (
	"encoding/csv"
	"strings"
	"testing"
	"time"

	"github.com/vigiamar/anp-sightings/internal/models"
)

func TestWriteCSV(t *testing.T) {
	obs := []models.Observation{
		{
			Registration: "MX1234",
			VesselName:   "La Perla",
			CaptainName:  "J. Reyes",
			Timestamp:    time.Date(2024, time.March, 10, 9, 30, 0, 0, time.UTC),
			Latitude:     21.312317,
			Longitude:    -106.220983,
			VesselTypeID: models.VesselPanga,
			StatusID:     models.StatusFisheriesIssue,
			Notes:        "redes a bordo, sin permiso",
		},
	}

	var sb strings.Builder
	if err := WriteCSV(&sb, obs); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}

	rows, err := csv.NewReader(strings.NewReader(sb.String())).ReadAll()
	if err != nil {
		t.Fatalf("re-reading csv: %v", err)
	}
	if len(rows) != 2 {
		t.Fatalf("got %d rows, want header plus 1", len(rows))
	}
	if rows[0][0] != "matricula" {
		t.Errorf("header = %v", rows[0])
	}
	row := rows[1]
	if row[0] != "MX1234" || row[3] != "2024-03-10 09:30:00" {
		t.Errorf("row = %v", row)
	}
	if row[4] != "21.312317" || row[5] != "-106.220983" {
		t.Errorf("coordinates = %q, %q", row[4], row[5])
	}
	if row[7] != "Infracción LGPAS (Pesca/Acuacultura)" {
		t.Errorf("status = %q", row[7])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var sb strings.Builder
	if err := WriteCSV(&sb, nil); err != nil {
		t.Fatalf("WriteCSV() error = %v", err)
	}
	if !strings.HasPrefix(sb.String(), "matricula,") {
		t.Errorf("empty export should still carry the header, got %q", sb.String())
	}
}

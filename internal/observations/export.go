package observations

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/vigiamar/anp-sightings/internal/models"
)

// csvHeader matches the column layout of the ranger field sheets.
var csvHeader = []string{
	"matricula", "nombre", "capitan", "fecha_utc",
	"latitud", "longitud", "tipo", "estatus", "notas",
}

// WriteCSV writes observations as UTF-8 CSV with a header row.
func WriteCSV(w io.Writer, obs []models.Observation) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("writing csv header: %w", err)
	}
	for _, o := range obs {
		row := []string{
			o.Registration,
			o.VesselName,
			o.CaptainName,
			o.Timestamp.Format("2006-01-02 15:04:05"),
			strconv.FormatFloat(o.Latitude, 'f', 6, 64),
			strconv.FormatFloat(o.Longitude, 'f', 6, 64),
			o.VesselTypeDescription(),
			o.StatusDescription(),
			o.Notes,
		}
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("writing csv row for %s: %w", o.Registration, err)
		}
	}
	cw.Flush()
	return cw.Error()
}

// Package observations implements the sighting record store over sqlite
// and the service pipeline that turns raw sighting input into classified,
// persisted observations.
package observations

import (
	"database/sql"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/vigiamar/anp-sightings/internal/models"
	"github.com/vigiamar/anp-sightings/internal/reports"
	_ "modernc.org/sqlite"
)

// timeLayout stores timestamps as UTC text with microsecond precision.
// Trimmed fractional seconds still compare chronologically as text, which
// keeps BETWEEN filters and the uniqueness index correct.
const timeLayout = "2006-01-02 15:04:05.999999"

const observationColumns = "id, registration, vessel_name, captain_name, timestamp, latitude, longitude, vessel_type_id, status_category_id, notes"

// Repository handles persistence for vessel observations.
type Repository struct {
	db *sql.DB
}

// NewRepository creates a repository over an opened database.
func NewRepository(db *sql.DB) *Repository {
	return &Repository{db: db}
}

// Insert stores an observation. A record with the same (registration,
// timestamp) pair as an existing one is silently ignored and Insert
// reports inserted=false; this makes re-imports idempotent. On success the
// observation's ID is populated.
func (r *Repository) Insert(o *models.Observation) (inserted bool, err error) {
	res, err := r.db.Exec(`
		INSERT INTO observations
			(registration, vessel_name, captain_name, timestamp, latitude, longitude, vessel_type_id, status_category_id, notes)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)
		ON CONFLICT(registration, timestamp) DO NOTHING
	`,
		strings.ToUpper(o.Registration),
		o.VesselName,
		o.CaptainName,
		o.Timestamp.UTC().Format(timeLayout),
		o.Latitude,
		o.Longitude,
		o.VesselTypeID,
		o.StatusID,
		o.Notes,
	)
	if err != nil {
		return false, fmt.Errorf("inserting observation: %w", err)
	}

	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking insert result: %w", err)
	}
	if rows == 0 {
		return false, nil // duplicate (registration, timestamp), ignored
	}

	id, err := res.LastInsertId()
	if err != nil {
		return false, fmt.Errorf("getting last insert id: %w", err)
	}
	o.ID = id
	o.Registration = strings.ToUpper(o.Registration)
	return true, nil
}

// QueryFiltered returns observations within the window and, optionally,
// with the given status category, ordered ascending by timestamp for
// aggregation. An unrecognized status filter is ignored with a warning,
// matching the historical behavior of the reporting views.
func (r *Repository) QueryFiltered(window reports.Window, statusFilter string) ([]models.Observation, error) {
	query := "SELECT " + observationColumns + " FROM observations WHERE 1=1"
	var params []any

	if window.Start != nil && window.End != nil {
		query += " AND timestamp BETWEEN ? AND ?"
		params = append(params, window.Start.UTC().Format(timeLayout), window.End.UTC().Format(timeLayout))
	}

	if statusFilter != "" {
		if statusFilter == models.StatusOutsideANP || models.IsInsideStatus(statusFilter) {
			query += " AND status_category_id = ?"
			params = append(params, statusFilter)
		} else {
			slog.Warn("unrecognized status filter, ignoring", "filter", statusFilter)
		}
	}

	query += " ORDER BY timestamp ASC"
	return r.queryObservations(query, params...)
}

// History returns all observations for a registration, most recent first.
func (r *Repository) History(registration string) ([]models.Observation, error) {
	return r.queryObservations(
		"SELECT "+observationColumns+" FROM observations WHERE registration = ? ORDER BY timestamp DESC",
		strings.ToUpper(registration),
	)
}

// SearchByNameOrCaptain finds observations matching a partial vessel name
// and/or captain name, most recent first.
func (r *Repository) SearchByNameOrCaptain(vesselName, captainName string) ([]models.Observation, error) {
	query := "SELECT " + observationColumns + " FROM observations WHERE 1=1"
	var params []any
	if vesselName != "" {
		query += " AND LOWER(vessel_name) LIKE LOWER(?)"
		params = append(params, "%"+vesselName+"%")
	}
	if captainName != "" {
		query += " AND LOWER(captain_name) LIKE LOWER(?)"
		params = append(params, "%"+captainName+"%")
	}
	query += " ORDER BY timestamp DESC"
	return r.queryObservations(query, params...)
}

// GetByID returns one observation, or nil when the id is unknown.
func (r *Repository) GetByID(id int64) (*models.Observation, error) {
	obs, err := r.queryObservations(
		"SELECT "+observationColumns+" FROM observations WHERE id = ?", id)
	if err != nil {
		return nil, err
	}
	if len(obs) == 0 {
		return nil, nil
	}
	return &obs[0], nil
}

// Update replaces every field of an existing observation except its id.
// Returns false when the id does not exist.
func (r *Repository) Update(id int64, o *models.Observation) (bool, error) {
	res, err := r.db.Exec(`
		UPDATE observations
		SET registration = ?, vessel_name = ?, captain_name = ?, timestamp = ?,
			latitude = ?, longitude = ?, vessel_type_id = ?, status_category_id = ?, notes = ?
		WHERE id = ?
	`,
		strings.ToUpper(o.Registration),
		o.VesselName,
		o.CaptainName,
		o.Timestamp.UTC().Format(timeLayout),
		o.Latitude,
		o.Longitude,
		o.VesselTypeID,
		o.StatusID,
		o.Notes,
		id,
	)
	if err != nil {
		return false, fmt.Errorf("updating observation %d: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking update result: %w", err)
	}
	return rows > 0, nil
}

// Delete removes an observation by id. Returns false when nothing matched.
func (r *Repository) Delete(id int64) (bool, error) {
	res, err := r.db.Exec("DELETE FROM observations WHERE id = ?", id)
	if err != nil {
		return false, fmt.Errorf("deleting observation %d: %w", id, err)
	}
	rows, err := res.RowsAffected()
	if err != nil {
		return false, fmt.Errorf("checking delete result: %w", err)
	}
	return rows > 0, nil
}

func (r *Repository) queryObservations(query string, params ...any) ([]models.Observation, error) {
	rows, err := r.db.Query(query, params...)
	if err != nil {
		return nil, fmt.Errorf("querying observations: %w", err)
	}
	defer rows.Close()

	var out []models.Observation
	for rows.Next() {
		var o models.Observation
		var ts string
		var vesselName, captainName, vesselType, status, notes sql.NullString

		if err := rows.Scan(&o.ID, &o.Registration, &vesselName, &captainName, &ts,
			&o.Latitude, &o.Longitude, &vesselType, &status, &notes); err != nil {
			return nil, fmt.Errorf("scanning observation: %w", err)
		}
		o.VesselName = vesselName.String
		o.CaptainName = captainName.String
		o.VesselTypeID = vesselType.String
		o.StatusID = status.String
		o.Notes = notes.String

		o.Timestamp, err = time.ParseInLocation(timeLayout, ts, time.UTC)
		if err != nil {
			return nil, fmt.Errorf("parsing stored timestamp %q: %w", ts, err)
		}
		out = append(out, o)
	}
	return out, rows.Err()
}

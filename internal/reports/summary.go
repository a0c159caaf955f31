package reports

import (
	"sort"
	"time"

	"github.com/vigiamar/anp-sightings/internal/models"
)

// PeriodCount is an observation count for one calendar month.
type PeriodCount struct {
	Year  int
	Month time.Month
	Count int
}

// StatusCount is an observation count for one status category.
type StatusCount struct {
	StatusID    string
	Description string
	Count       int
}

// VesselCount is an observation count for one registration.
type VesselCount struct {
	Registration string
	Count        int
}

// InfractionRecord describes a vessel repeatedly sighted with an
// infraction-class status.
type InfractionRecord struct {
	Registration   string
	Count          int
	Descriptions   []string  // status descriptions, most recent first
	LastInfraction time.Time // timestamp of the most recent infraction
}

// CountsByMonth groups observations by (year, month) and returns buckets
// in ascending period order.
func CountsByMonth(obs []models.Observation) []PeriodCount {
	type period struct {
		year  int
		month time.Month
	}
	counts := make(map[period]int)
	for _, o := range obs {
		counts[period{o.Timestamp.Year(), o.Timestamp.Month()}]++
	}

	out := make([]PeriodCount, 0, len(counts))
	for p, n := range counts {
		out = append(out, PeriodCount{Year: p.year, Month: p.month, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Year != out[j].Year {
			return out[i].Year < out[j].Year
		}
		return out[i].Month < out[j].Month
	})
	return out
}

// StatusDistribution counts observations per status category, descending
// by count. Equal counts order lexicographically by status id so the
// result is deterministic.
func StatusDistribution(obs []models.Observation) []StatusCount {
	counts := make(map[string]int)
	for _, o := range obs {
		counts[o.StatusID]++
	}

	out := make([]StatusCount, 0, len(counts))
	for id, n := range counts {
		out = append(out, StatusCount{StatusID: id, Description: models.DescribeStatus(id), Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].StatusID < out[j].StatusID
	})
	return out
}

// TopRecurrentVessels returns the limit most frequently sighted
// registrations, descending by count with lexicographic tie-break.
func TopRecurrentVessels(obs []models.Observation, limit int) []VesselCount {
	counts := make(map[string]int)
	for _, o := range obs {
		counts[o.Registration]++
	}

	out := make([]VesselCount, 0, len(counts))
	for reg, n := range counts {
		out = append(out, VesselCount{Registration: reg, Count: n})
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Registration < out[j].Registration
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out
}

// RepeatedInfractions detects vessels sighted with an infraction-class
// status (fisheries or environmental) at least minInfractions times. Each
// qualifying vessel reports its infraction count, the status descriptions
// in most-recent-first order, and the latest infraction timestamp. Output
// is descending by count, lexicographic on ties.
func RepeatedInfractions(obs []models.Observation, minInfractions int) []InfractionRecord {
	if minInfractions < 1 {
		minInfractions = 1
	}

	byVessel := make(map[string][]models.Observation)
	for _, o := range obs {
		if models.IsInfractionStatus(o.StatusID) {
			byVessel[o.Registration] = append(byVessel[o.Registration], o)
		}
	}

	out := make([]InfractionRecord, 0, len(byVessel))
	for reg, infractions := range byVessel {
		if len(infractions) < minInfractions {
			continue
		}
		sort.Slice(infractions, func(i, j int) bool {
			return infractions[i].Timestamp.After(infractions[j].Timestamp)
		})
		rec := InfractionRecord{
			Registration:   reg,
			Count:          len(infractions),
			LastInfraction: infractions[0].Timestamp,
		}
		for _, inf := range infractions {
			rec.Descriptions = append(rec.Descriptions, models.DescribeStatus(inf.StatusID))
		}
		out = append(out, rec)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].Count != out[j].Count {
			return out[i].Count > out[j].Count
		}
		return out[i].Registration < out[j].Registration
	})
	return out
}

// Package classify reconciles the geometric boundary test with the
// caller-requested status category. Its Result is the single source of
// truth for an observation's stored status; nothing downstream may bypass
// it.
package classify

import (
	"errors"
	"fmt"

	"github.com/vigiamar/anp-sightings/internal/geo"
	"github.com/vigiamar/anp-sightings/internal/models"
)

// ErrInvalidCategory is returned when the requested category is not in the
// enumerated set valid for the point's inside/outside state.
var ErrInvalidCategory = errors.New("invalid status category")

// Result is the outcome of resolving a point against a requested category.
type Result struct {
	StatusID  string
	InsideANP bool
	// ManualOutside is set when the point is geometrically inside the
	// boundary but the caller explicitly requested the outside status.
	// The override is honored, matching long-standing recording practice,
	// but surfaced so callers can warn about it.
	ManualOutside bool
}

// Resolve determines the final status category for a sighting at
// (lon, lat) given the caller's requested category id.
//
// A point outside the maritime boundary is always StatusOutsideANP, no
// matter what was requested. For a point inside, the request must be one
// of the six inside categories — or the literal outside id, which is
// accepted as a manual override.
func Resolve(lon, lat float64, requested string) (Result, error) {
	inside := geo.Contains(lon, lat)

	if !inside {
		return Result{StatusID: models.StatusOutsideANP, InsideANP: false}, nil
	}

	switch {
	case models.IsInsideStatus(requested):
		return Result{StatusID: requested, InsideANP: true}, nil
	case requested == models.StatusOutsideANP:
		return Result{StatusID: models.StatusOutsideANP, InsideANP: true, ManualOutside: true}, nil
	default:
		return Result{}, fmt.Errorf("%w: %q", ErrInvalidCategory, requested)
	}
}

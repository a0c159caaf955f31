package ui

import (
	"github.com/vigiamar/anp-sightings/internal/models"
	"github.com/vigiamar/anp-sightings/internal/observations"
)

// Message types for async operations

// sightingRecordedMsg is sent when a sighting has been run through the
// classification pipeline and stored.
type sightingRecordedMsg struct {
	outcome observations.RecordOutcome
	err     error
}

// historyLoadedMsg is sent when a vessel's sighting history has been read.
type historyLoadedMsg struct {
	registration string
	records      []models.Observation
	err          error
}

// searchResultsMsg is sent when a name/captain search completes.
type searchResultsMsg struct {
	query   string
	records []models.Observation
	err     error
}

// summaryBuiltMsg is sent when the report aggregates for a window have
// been computed.
type summaryBuiltMsg struct {
	summary observations.Summary
	err     error
}

// errMsg is a message type for errors
type errMsg struct {
	err error
}

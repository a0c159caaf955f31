package ui

import (
	"fmt"

	"github.com/charmbracelet/bubbles/list"
	"github.com/vigiamar/anp-sightings/internal/coords"
	"github.com/vigiamar/anp-sightings/internal/models"
)

// observationItem wraps an Observation for use in a list
type observationItem struct {
	obs models.Observation
}

// FilterValue implements list.Item
func (o observationItem) FilterValue() string {
	return o.obs.Registration + " " + o.obs.VesselName + " " + o.obs.CaptainName
}

// Title implements list.DefaultItem
func (o observationItem) Title() string {
	return fmt.Sprintf("%s  %s — %s",
		o.obs.Timestamp.Format("2006-01-02 15:04"),
		o.obs.Registration,
		o.obs.StatusDescription())
}

// Description implements list.DefaultItem
func (o observationItem) Description() string {
	return fmt.Sprintf("%s · %s · %s, %s",
		o.obs.VesselName,
		o.obs.VesselTypeDescription(),
		coords.FormatGDM(o.obs.Latitude, true),
		coords.FormatGDM(o.obs.Longitude, false))
}

// createObservationList creates a list.Model from observations
func createObservationList(title string, records []models.Observation, width, height int) list.Model {
	items := make([]list.Item, len(records))
	for i, obs := range records {
		items[i] = observationItem{obs: obs}
	}

	l := list.New(items, list.NewDefaultDelegate(), width, height)
	l.Title = title
	l.SetShowHelp(true)
	l.SetFilteringEnabled(true)

	return l
}

package ui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/vigiamar/anp-sightings/internal/observations"
)

// recordSighting runs the normalize/classify/store pipeline off the UI loop.
func recordSighting(svc *observations.Service, in observations.SightingInput) tea.Cmd {
	return func() tea.Msg {
		outcome, err := svc.AddObservation(in)
		return sightingRecordedMsg{outcome: outcome, err: err}
	}
}

// loadHistory fetches the sighting history for a registration.
func loadHistory(svc *observations.Service, registration string) tea.Cmd {
	return func() tea.Msg {
		records, err := svc.History(registration)
		return historyLoadedMsg{registration: registration, records: records, err: err}
	}
}

// searchVessels finds sightings by partial vessel or captain name. The
// same term is matched against both columns.
func searchVessels(svc *observations.Service, query string) tea.Cmd {
	return func() tea.Msg {
		byName, err := svc.Search(query, "")
		if err != nil {
			return searchResultsMsg{query: query, err: err}
		}
		byCaptain, err := svc.Search("", query)
		if err != nil {
			return searchResultsMsg{query: query, err: err}
		}
		seen := make(map[int64]bool, len(byName))
		merged := byName
		for _, o := range byName {
			seen[o.ID] = true
		}
		for _, o := range byCaptain {
			if !seen[o.ID] {
				merged = append(merged, o)
			}
		}
		return searchResultsMsg{query: query, records: merged}
	}
}

// buildSummary computes the report aggregates for the requested window.
func buildSummary(svc *observations.Service, reportType string, year int, month time.Month, weekNumber int, statusFilter string, topLimit, minInfractions int) tea.Cmd {
	return func() tea.Msg {
		summary, err := svc.BuildSummary(reportType, year, month, weekNumber, statusFilter, topLimit, minInfractions)
		return summaryBuiltMsg{summary: summary, err: err}
	}
}

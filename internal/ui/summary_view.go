package ui

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/vigiamar/anp-sightings/internal/models"
	"github.com/vigiamar/anp-sightings/internal/observations"
)

const distributionBarWidth = 30

var monthNames = []string{"", "Ene", "Feb", "Mar", "Abr", "May", "Jun", "Jul", "Ago", "Sep", "Oct", "Nov", "Dic"}

// renderSummary renders the aggregates for one resolved report window.
func renderSummary(s observations.Summary) string {
	var sections []string

	sections = append(sections,
		sectionHeaderStyle.Render("Informe: "+s.Window.Label),
		fmt.Sprintf("  %s %s", labelStyle.Render("Avistamientos:"), valueStyle.Render(fmt.Sprintf("%d", len(s.Observations)))),
	)

	if len(s.MonthlyCounts) > 0 {
		sections = append(sections, sectionHeaderStyle.Render("Avistamientos por mes"))
		for _, pc := range s.MonthlyCounts {
			sections = append(sections, fmt.Sprintf("  %s %d: %s",
				monthNames[int(pc.Month)], pc.Year,
				valueStyle.Render(fmt.Sprintf("%d", pc.Count))))
		}
	}

	if len(s.Distribution) > 0 {
		sections = append(sections, sectionHeaderStyle.Render("Distribución por estatus"))
		max := s.Distribution[0].Count
		for _, sc := range s.Distribution {
			bar := distributionBar(sc.Count, max)
			sections = append(sections, fmt.Sprintf("  %s %s %d",
				statusStyle(sc.StatusID).Render(bar),
				sc.Description,
				sc.Count))
		}
	}

	if len(s.TopVessels) > 0 {
		sections = append(sections, sectionHeaderStyle.Render("Embarcaciones recurrentes"))
		for i, vc := range s.TopVessels {
			sections = append(sections, fmt.Sprintf("  %2d. %s — %d avistamientos",
				i+1, valueStyle.Render(vc.Registration), vc.Count))
		}
	}

	if len(s.Infractions) > 0 {
		sections = append(sections, sectionHeaderStyle.Render("Alertas: infracciones reincidentes"))
		for _, inf := range s.Infractions {
			sections = append(sections, errorStyle.Render(fmt.Sprintf("  ⚠ %s — %d infracciones (última: %s)",
				inf.Registration, inf.Count, inf.LastInfraction.Format("2006-01-02"))))
			sections = append(sections, mutedStyle.Render("     "+strings.Join(inf.Descriptions, "; ")))
		}
	} else {
		sections = append(sections, "", successStyle.Render("  Sin infracciones reincidentes en el período."))
	}

	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

// distributionBar scales a count against the largest bucket.
func distributionBar(count, max int) string {
	if max <= 0 {
		max = 1
	}
	width := count * distributionBarWidth / max
	if width < 1 && count > 0 {
		width = 1
	}
	return strings.Repeat("█", width)
}

// statusFilterChoices returns the report filter options: all categories
// preceded by a no-filter entry.
func statusFilterChoices() (options, values []string) {
	options = []string{"Todos"}
	values = []string{""}
	for _, cat := range models.AllStatusCategories() {
		options = append(options, cat.Description)
		values = append(values, cat.ID)
	}
	return options, values
}

// Package ui implements the terminal interface for registering and
// reviewing vessel sightings inside the ANP.
package ui

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vigiamar/anp-sightings/internal/coords"
	"github.com/vigiamar/anp-sightings/internal/observations"
	"github.com/vigiamar/anp-sightings/internal/reports"
)

// AppState represents the current state of the application
type AppState int

const (
	StateMenu    AppState = iota // Main menu
	StateEntry                   // Sighting entry form
	StateConfirm                 // Outcome of a recorded sighting
	StateLookup                  // Registration / name search input
	StateResults                 // Sighting list (history or search results)
	StateReport                  // Report parameter form
	StateSummary                 // Rendered report aggregates
	StateLoading                 // Waiting on the store
	StateError                   // Error state
)

// lookupMode distinguishes the two uses of the lookup input.
type lookupMode int

const (
	lookupHistory lookupMode = iota // by registration
	lookupSearch                    // by vessel or captain name
)

var menuEntries = []struct {
	label string
	state AppState
}{
	{"Registrar avistamiento", StateEntry},
	{"Historial por matrícula", StateLookup},
	{"Buscar por nombre o capitán", StateLookup},
	{"Informes y resumen", StateReport},
}

// Model represents the application's state
type Model struct {
	state  AppState
	width  int
	height int
	err    error

	svc            *observations.Service
	topLimit       int
	minInfractions int

	// Menu
	menuCursor int

	// Entry
	form    entryForm
	outcome observations.RecordOutcome

	// Lookup
	lookupInput textinput.Model
	mode        lookupMode

	// Results
	resultList  list.Model
	resultTitle string

	// Report
	report  entryForm
	summary observations.Summary
}

// NewModel creates the application model over the sighting service.
func NewModel(svc *observations.Service, topLimit, minInfractions int) Model {
	li := textinput.New()
	li.Placeholder = "MX-1234-A"
	li.CharLimit = 60
	li.Width = 40

	return Model{
		state:          StateMenu,
		svc:            svc,
		topLimit:       topLimit,
		minInfractions: minInfractions,
		form:           newEntryForm(),
		report:         newReportForm(),
		lookupInput:    li,
	}
}

// newReportForm builds the report parameter form. Zero year/month inputs
// fall back to the current calendar values downstream.
func newReportForm() entryForm {
	filterOptions, filterValues := statusFilterChoices()
	f := entryForm{
		fields: []formField{
			selectField("type", "Tipo de informe",
				[]string{"Semanal", "Mensual", "Anual", "Total"},
				[]string{reports.ReportWeekly, reports.ReportMonthly, reports.ReportAnnual, reports.ReportTotal}),
			textField("year", "Año", "(vacío: actual)", 8),
			textField("month", "Mes (1-12)", "(vacío: actual)", 8),
			textField("week", "Semana del mes (1-6)", "solo informe semanal", 8),
			selectField("filter", "Filtrar por estatus", filterOptions, filterValues),
		},
	}
	f.syncFocus()
	return f
}

// Init initializes the application
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles messages and updates the model
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	if msg, ok := msg.(tea.WindowSizeMsg); ok {
		m.width = msg.Width
		m.height = msg.Height
		if m.state == StateResults {
			m.resultList.SetSize(msg.Width-4, msg.Height-8)
		}
		return m, nil
	}

	switch msg := msg.(type) {
	case errMsg:
		m.err = msg.err
		m.state = StateError
		return m, nil

	case sightingRecordedMsg:
		if msg.err != nil {
			// Validation errors keep the form contents so the row can be
			// corrected in place.
			m.err = msg.err
			m.state = StateEntry
			return m, nil
		}
		m.err = nil
		m.outcome = msg.outcome
		m.state = StateConfirm
		return m, nil

	case historyLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.resultTitle = fmt.Sprintf("Historial de %s (%d avistamientos)", msg.registration, len(msg.records))
		m.resultList = createObservationList(m.resultTitle, msg.records, m.width-4, m.height-8)
		m.state = StateResults
		return m, nil

	case searchResultsMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateError
			return m, nil
		}
		m.resultTitle = fmt.Sprintf("Resultados para %q (%d)", msg.query, len(msg.records))
		m.resultList = createObservationList(m.resultTitle, msg.records, m.width-4, m.height-8)
		m.state = StateResults
		return m, nil

	case summaryBuiltMsg:
		if msg.err != nil {
			m.err = msg.err
			m.state = StateReport
			return m, nil
		}
		m.err = nil
		m.summary = msg.summary
		m.state = StateSummary
		return m, nil
	}

	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		if keyMsg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}

		switch m.state {
		case StateMenu:
			return m.handleMenu(keyMsg)
		case StateEntry:
			return m.handleEntry(keyMsg)
		case StateConfirm:
			return m.handleConfirm(keyMsg)
		case StateLookup:
			return m.handleLookup(keyMsg)
		case StateResults:
			return m.handleResults(msg)
		case StateReport:
			return m.handleReport(keyMsg)
		case StateSummary:
			if keyMsg.String() == "r" {
				m.state = StateReport
				return m, nil
			}
			return m.toMenuOrQuit(keyMsg)
		case StateError:
			m.state = StateMenu
			m.err = nil
			return m, nil
		}
	}

	var cmd tea.Cmd
	if m.state == StateResults {
		m.resultList, cmd = m.resultList.Update(msg)
	}
	return m, cmd
}

// toMenuOrQuit handles the shared escape keys of read-only views.
func (m Model) toMenuOrQuit(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	default:
		m.state = StateMenu
		return m, nil
	}
}

func (m Model) handleMenu(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "q":
		return m, tea.Quit
	case "up", "k":
		m.menuCursor = (m.menuCursor - 1 + len(menuEntries)) % len(menuEntries)
	case "down", "j":
		m.menuCursor = (m.menuCursor + 1) % len(menuEntries)
	case "enter":
		entry := menuEntries[m.menuCursor]
		m.state = entry.state
		m.err = nil
		switch entry.state {
		case StateEntry:
			m.form = newEntryForm()
		case StateLookup:
			if m.menuCursor == 1 {
				m.mode = lookupHistory
				m.lookupInput.Placeholder = "MX-1234-A"
			} else {
				m.mode = lookupSearch
				m.lookupInput.Placeholder = "nombre de embarcación o capitán"
			}
			m.lookupInput.SetValue("")
			m.lookupInput.Focus()
			return m, textinput.Blink
		}
	}
	return m, nil
}

func (m Model) handleEntry(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keyMsg.Type == tea.KeyEsc {
		m.state = StateMenu
		m.err = nil
		return m, nil
	}
	cmd, submitted := m.form.Update(keyMsg)
	if submitted {
		m.state = StateLoading
		return m, recordSighting(m.svc, m.form.ToInput())
	}
	return m, cmd
}

func (m Model) handleConfirm(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.String() {
	case "n":
		m.form = newEntryForm()
		m.state = StateEntry
		return m, textinput.Blink
	case "q":
		return m, tea.Quit
	default:
		m.state = StateMenu
		return m, nil
	}
}

func (m Model) handleLookup(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch keyMsg.Type {
	case tea.KeyEsc:
		m.state = StateMenu
		return m, nil
	case tea.KeyEnter:
		query := m.lookupInput.Value()
		if query == "" {
			return m, nil
		}
		m.state = StateLoading
		if m.mode == lookupHistory {
			return m, loadHistory(m.svc, query)
		}
		return m, searchVessels(m.svc, query)
	}
	var cmd tea.Cmd
	m.lookupInput, cmd = m.lookupInput.Update(keyMsg)
	return m, cmd
}

func (m Model) handleResults(msg tea.Msg) (tea.Model, tea.Cmd) {
	if keyMsg, ok := msg.(tea.KeyMsg); ok {
		// The list's own filter input may be active; only intercept keys
		// when it is not.
		if !m.resultList.SettingFilter() {
			switch keyMsg.String() {
			case "q":
				return m, tea.Quit
			case "esc", "m":
				m.state = StateMenu
				return m, nil
			}
		}
	}
	var cmd tea.Cmd
	m.resultList, cmd = m.resultList.Update(msg)
	return m, cmd
}

func (m Model) handleReport(keyMsg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if keyMsg.Type == tea.KeyEsc {
		m.state = StateMenu
		m.err = nil
		return m, nil
	}
	cmd, submitted := m.report.Update(keyMsg)
	if !submitted {
		return m, cmd
	}

	year, err := parseOptionalInt(m.report.get("year"))
	if err != nil {
		m.err = fmt.Errorf("año inválido: %q", m.report.get("year"))
		return m, nil
	}
	month, err := parseOptionalInt(m.report.get("month"))
	if err != nil || month > 12 {
		m.err = fmt.Errorf("mes inválido: %q", m.report.get("month"))
		return m, nil
	}
	week, err := parseOptionalInt(m.report.get("week"))
	if err != nil {
		m.err = fmt.Errorf("semana inválida: %q", m.report.get("week"))
		return m, nil
	}

	m.err = nil
	m.state = StateLoading
	return m, buildSummary(m.svc, m.report.get("type"), year, time.Month(month), week,
		m.report.get("filter"), m.topLimit, m.minInfractions)
}

func parseOptionalInt(s string) (int, error) {
	if s == "" {
		return 0, nil
	}
	v, err := strconv.Atoi(s)
	if err != nil || v < 0 {
		return 0, fmt.Errorf("not a positive number: %q", s)
	}
	return v, nil
}

// View renders the UI
func (m Model) View() string {
	if m.width == 0 {
		return "Cargando..."
	}

	switch m.state {
	case StateMenu:
		return m.viewMenu()
	case StateEntry:
		return m.viewEntry()
	case StateConfirm:
		return m.viewConfirm()
	case StateLookup:
		return m.viewLookup()
	case StateResults:
		return m.viewResults()
	case StateReport:
		return m.viewReport()
	case StateSummary:
		return m.viewSummary()
	case StateLoading:
		return "Consultando la base de datos..."
	case StateError:
		return m.viewError()
	}

	return ""
}

func (m Model) viewMenu() string {
	title := titleStyle.Render("⚓ VigiaMar — Avistamientos ANP Islas Marías")
	subtitle := mutedStyle.Render("Registro y clasificación de embarcaciones en el polígono marino")

	var rows []string
	for i, entry := range menuEntries {
		if i == m.menuCursor {
			rows = append(rows, focusedLabelStyle.Render("› "+entry.label))
		} else {
			rows = append(rows, "  "+entry.label)
		}
	}

	help := helpStyle.Render("↑/↓: Navegar • Enter: Seleccionar • Q: Salir")

	sections := []string{title, subtitle, ""}
	sections = append(sections, rows...)
	sections = append(sections, "", help)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewEntry() string {
	title := titleStyle.Render("⚓ Registrar avistamiento")

	var errorLine string
	if m.err != nil {
		errorLine = errorStyle.Render("✗ " + m.err.Error())
	}

	help := helpStyle.Render("Tab/↑↓: Campo • ←/→: Cambiar opción • Ctrl+S: Guardar • Esc: Menú")

	sections := []string{title, "", formBoxStyle.Render(m.form.View())}
	if errorLine != "" {
		sections = append(sections, "", errorLine)
	}
	sections = append(sections, help)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewConfirm() string {
	obs := m.outcome.Observation

	var headline string
	switch {
	case !m.outcome.Inserted:
		headline = warningStyle.Render("Avistamiento duplicado: ya existe un registro con esa matrícula y fecha.")
	case m.outcome.ManualOutside:
		headline = warningStyle.Render("Guardado. El punto está dentro del polígono pero se registró como fuera a petición.")
	default:
		headline = successStyle.Render("✓ Avistamiento guardado.")
	}

	detail := []string{
		fmt.Sprintf("%s %s", labelStyle.Render("Matrícula:"), valueStyle.Render(obs.Registration)),
		fmt.Sprintf("%s %s", labelStyle.Render("Embarcación:"), valueStyle.Render(obs.VesselName)),
		fmt.Sprintf("%s %s", labelStyle.Render("Fecha (UTC):"), valueStyle.Render(obs.Timestamp.Format("2006-01-02 15:04"))),
		fmt.Sprintf("%s %s, %s", labelStyle.Render("Posición:"),
			coords.FormatGDM(obs.Latitude, true), coords.FormatGDM(obs.Longitude, false)),
		fmt.Sprintf("%s %s", labelStyle.Render("Estatus:"), statusStyle(obs.StatusID).Render(obs.StatusDescription())),
	}

	help := helpStyle.Render("N: Nuevo avistamiento • Q: Salir • Otra tecla: Menú")

	sections := []string{titleStyle.Render("⚓ Resultado"), "", headline, ""}
	sections = append(sections, detail...)
	sections = append(sections, help)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewLookup() string {
	var title string
	if m.mode == lookupHistory {
		title = titleStyle.Render("⚓ Historial por matrícula")
	} else {
		title = titleStyle.Render("⚓ Buscar por nombre o capitán")
	}

	box := lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(colorBorder).
		Padding(1, 2).
		Width(48).
		Render(m.lookupInput.View())

	help := helpStyle.Render("Enter: Buscar • Esc: Menú")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", box, "", help)
}

func (m Model) viewResults() string {
	help := helpStyle.Render("↑/↓: Navegar • /: Filtrar • M/Esc: Menú • Q: Salir")
	return lipgloss.JoinVertical(lipgloss.Left, m.resultList.View(), help)
}

func (m Model) viewReport() string {
	title := titleStyle.Render("⚓ Informes")

	var errorLine string
	if m.err != nil {
		errorLine = errorStyle.Render("✗ " + m.err.Error())
	}

	help := helpStyle.Render("Tab/↑↓: Campo • ←/→: Cambiar opción • Ctrl+S: Generar • Esc: Menú")

	sections := []string{title, "", formBoxStyle.Render(m.report.View())}
	if errorLine != "" {
		sections = append(sections, "", errorLine)
	}
	sections = append(sections, help)
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m Model) viewSummary() string {
	help := helpStyle.Render("R: Nuevo informe • Q: Salir • Otra tecla: Menú")
	return lipgloss.JoinVertical(lipgloss.Left, renderSummary(m.summary), "", help)
}

// viewError renders the error view
func (m Model) viewError() string {
	title := errorStyle.Render("✗ Error")

	var errorText string
	if m.err != nil {
		errorText = m.err.Error()
	} else {
		errorText = "Error desconocido"
	}

	help := helpStyle.Render("Cualquier tecla: Menú")
	return lipgloss.JoinVertical(lipgloss.Left, title, "", errorText, "", help)
}

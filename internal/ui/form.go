package ui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/vigiamar/anp-sightings/internal/coords"
	"github.com/vigiamar/anp-sightings/internal/models"
	"github.com/vigiamar/anp-sightings/internal/observations"
)

type fieldKind int

const (
	fieldText fieldKind = iota
	fieldSelect
)

// formField is one row of the sighting entry form: either a free text
// input or a value cycled with the left/right keys.
type formField struct {
	key     string
	label   string
	kind    fieldKind
	input   textinput.Model
	options []string // display labels, selects only
	values  []string // stored values, parallel to options
	idx     int
}

func (f *formField) value() string {
	if f.kind == fieldSelect {
		return f.values[f.idx]
	}
	return strings.TrimSpace(f.input.Value())
}

func (f *formField) cycle(delta int) {
	n := len(f.values)
	f.idx = ((f.idx+delta)%n + n) % n
}

// entryForm captures one sighting. The coordinate rows are rebuilt when
// the format selector changes.
type entryForm struct {
	format string
	fields []formField
	focus  int
}

func textField(key, label, placeholder string, width int) formField {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 80
	ti.Width = width
	return formField{key: key, label: label, kind: fieldText, input: ti}
}

func selectField(key, label string, options, values []string) formField {
	return formField{key: key, label: label, kind: fieldSelect, options: options, values: values}
}

func hemisphereField(key, label string, options []string) formField {
	return selectField(key, label, options, options)
}

var formatOptions = []string{"GDM (grados y minutos decimales)", "GMS (grados, minutos, segundos)", "DD (grados decimales)", "UTM (zona 13N)"}
var formatValues = []string{coords.FormatGDMID, coords.FormatGMS, coords.FormatDD, coords.FormatUTM}

// newEntryForm builds the form with the degrees/decimal-minutes format
// preselected, matching the field sheets the rangers transcribe from.
func newEntryForm() entryForm {
	f := entryForm{format: coords.FormatGDMID}
	f.rebuild()
	return f
}

func coordinateFields(format string) []formField {
	switch format {
	case coords.FormatGMS:
		return []formField{
			textField("lat_deg", "Latitud: grados", "21", 8),
			textField("lat_min", "Latitud: minutos", "18", 8),
			textField("lat_sec", "Latitud: segundos", "44.3", 8),
			hemisphereField("lat_hem", "Latitud: hemisferio", []string{"N", "S"}),
			textField("lon_deg", "Longitud: grados", "106", 8),
			textField("lon_min", "Longitud: minutos", "13", 8),
			textField("lon_sec", "Longitud: segundos", "15.5", 8),
			hemisphereField("lon_hem", "Longitud: hemisferio", []string{"W", "E"}),
		}
	case coords.FormatDD:
		return []formField{
			textField("lat_dd", "Latitud (grados decimales)", "21.312317", 16),
			textField("lon_dd", "Longitud (grados decimales)", "-106.220983", 16),
		}
	case coords.FormatUTM:
		return []formField{
			textField("easting", "Este (m, zona 13N)", "581200", 12),
			textField("northing", "Norte (m, zona 13N)", "2357800", 12),
		}
	default: // gdm
		return []formField{
			textField("lat_gdm_deg", "Latitud: grados", "21", 8),
			textField("lat_gdm_min", "Latitud: minutos decimales", "18.739", 10),
			hemisphereField("lat_gdm_hem", "Latitud: hemisferio", []string{"N", "S"}),
			textField("lon_gdm_deg", "Longitud: grados", "106", 8),
			textField("lon_gdm_min", "Longitud: minutos decimales", "13.259", 10),
			hemisphereField("lon_gdm_hem", "Longitud: hemisferio", []string{"W", "E"}),
		}
	}
}

// rebuild regenerates the field list for the current coordinate format,
// preserving the vessel rows' contents where they already exist.
func (f *entryForm) rebuild() {
	preserved := make(map[string]formField)
	for _, fld := range f.fields {
		preserved[fld.key] = fld
	}

	statusOptions := make([]string, 0, 7)
	statusValues := make([]string, 0, 7)
	for _, cat := range models.AllStatusCategories() {
		statusOptions = append(statusOptions, cat.Description)
		statusValues = append(statusValues, cat.ID)
	}

	fields := []formField{selectField("format", "Formato de coordenadas", formatOptions, formatValues)}
	fields = append(fields, coordinateFields(f.format)...)
	fields = append(fields,
		textField("registration", "Matrícula", "MX-1234-A", 24),
		textField("vessel_name", "Nombre de la embarcación", "(vacío: Emb. <matrícula>)", 32),
		textField("captain_name", "Capitán / responsable", "(vacío: N/A)", 32),
		textField("timestamp", "Fecha y hora UTC", "AAAA-MM-DDTHH:MM (vacío: ahora)", 24),
		selectField("vessel_type", "Tipo de embarcación",
			[]string{"Panga / Emb. Menor", "Yate / Emb. Mayor", "Otra / No especificada"},
			[]string{models.VesselPanga, models.VesselYate, models.VesselOtra}),
		selectField("status", "Estatus observado", statusOptions, statusValues),
		textField("notes", "Notas", "", 48),
	)

	for i := range fields {
		if prev, ok := preserved[fields[i].key]; ok && prev.kind == fields[i].kind {
			if fields[i].kind == fieldText {
				fields[i].input.SetValue(prev.input.Value())
			} else {
				fields[i].idx = prev.idx
			}
		}
	}

	// Keep the format selector showing the current format.
	for i, v := range formatValues {
		if v == f.format {
			fields[0].idx = i
		}
	}

	f.fields = fields
	if f.focus >= len(f.fields) {
		f.focus = 0
	}
	f.syncFocus()
}

func (f *entryForm) syncFocus() {
	for i := range f.fields {
		if f.fields[i].kind != fieldText {
			continue
		}
		if i == f.focus {
			f.fields[i].input.Focus()
		} else {
			f.fields[i].input.Blur()
		}
	}
}

// Update handles one key press. It reports submitted=true when the form
// was accepted with Enter on the last row or Ctrl+S anywhere.
func (f *entryForm) Update(msg tea.KeyMsg) (cmd tea.Cmd, submitted bool) {
	switch msg.Type {
	case tea.KeyCtrlS:
		return nil, true
	case tea.KeyEnter:
		if f.focus == len(f.fields)-1 {
			return nil, true
		}
		f.focus++
		f.syncFocus()
		return nil, false
	case tea.KeyTab, tea.KeyDown:
		f.focus = (f.focus + 1) % len(f.fields)
		f.syncFocus()
		return nil, false
	case tea.KeyShiftTab, tea.KeyUp:
		f.focus = (f.focus - 1 + len(f.fields)) % len(f.fields)
		f.syncFocus()
		return nil, false
	}

	fld := &f.fields[f.focus]
	if fld.kind == fieldSelect {
		switch msg.Type {
		case tea.KeyLeft:
			fld.cycle(-1)
		case tea.KeyRight, tea.KeySpace:
			fld.cycle(1)
		}
		if fld.key == "format" && f.format != fld.value() {
			f.format = fld.value()
			f.rebuild()
		}
		return nil, false
	}

	fld.input, cmd = fld.input.Update(msg)
	return cmd, false
}

// get returns the current value of a field by key, empty when the key is
// not present under the current format.
func (f *entryForm) get(key string) string {
	for i := range f.fields {
		if f.fields[i].key == key {
			return f.fields[i].value()
		}
	}
	return ""
}

// ToInput assembles the pipeline input from the form's current contents.
func (f *entryForm) ToInput() observations.SightingInput {
	return observations.SightingInput{
		Registration: f.get("registration"),
		VesselName:   f.get("vessel_name"),
		CaptainName:  f.get("captain_name"),
		Timestamp:    f.get("timestamp"),
		VesselTypeID: f.get("vessel_type"),
		StatusID:     f.get("status"),
		Notes:        f.get("notes"),
		Coordinate: coords.Input{
			Format: f.format,

			LatDeg: f.get("lat_deg"), LatMin: f.get("lat_min"), LatSec: f.get("lat_sec"), LatHem: f.get("lat_hem"),
			LonDeg: f.get("lon_deg"), LonMin: f.get("lon_min"), LonSec: f.get("lon_sec"), LonHem: f.get("lon_hem"),

			LatDD: f.get("lat_dd"), LonDD: f.get("lon_dd"),

			Easting: f.get("easting"), Northing: f.get("northing"),

			LatGDMDeg: f.get("lat_gdm_deg"), LatGDMMin: f.get("lat_gdm_min"), LatGDMHem: f.get("lat_gdm_hem"),
			LonGDMDeg: f.get("lon_gdm_deg"), LonGDMMin: f.get("lon_gdm_min"), LonGDMHem: f.get("lon_gdm_hem"),
		},
	}
}

// View renders the form rows, highlighting the focused label.
func (f *entryForm) View() string {
	var rows []string
	for i := range f.fields {
		fld := &f.fields[i]
		label := labelStyle.Render(fld.label + ":")
		if i == f.focus {
			label = focusedLabelStyle.Render("› " + fld.label + ":")
		} else {
			label = "  " + label
		}

		var value string
		if fld.kind == fieldSelect {
			display := fld.options[fld.idx]
			if i == f.focus {
				value = valueStyle.Render("‹ " + display + " ›")
			} else {
				value = valueStyle.Render(display)
			}
		} else {
			value = fld.input.View()
		}
		rows = append(rows, lipgloss.JoinHorizontal(lipgloss.Top, label, " ", value))
	}
	return strings.Join(rows, "\n")
}

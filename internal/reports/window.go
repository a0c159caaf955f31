// Package reports resolves report time windows from calendar arithmetic
// and aggregates observation sequences into summary and anomaly results.
package reports

import (
	"errors"
	"fmt"
	"time"
)

// Report type ids.
const (
	ReportWeekly  = "weekly"
	ReportMonthly = "monthly"
	ReportAnnual  = "annual"
	ReportTotal   = "total"
)

var (
	// ErrInvalidReportType is returned for unrecognized report types.
	ErrInvalidReportType = errors.New("invalid report type")
	// ErrMissingWeekNumber is returned when a weekly report is requested
	// without a week number.
	ErrMissingWeekNumber = errors.New("week number is required for weekly reports")
)

// Window is a closed date-time interval for filtering observations. Nil
// Start and End mean unbounded (all-time).
type Window struct {
	Start *time.Time
	End   *time.Time
	Label string
}

// Unbounded reports whether the window covers all time.
func (w Window) Unbounded() bool {
	return w.Start == nil && w.End == nil
}

// Contains reports whether t falls within the window.
func (w Window) Contains(t time.Time) bool {
	if w.Start != nil && t.Before(*w.Start) {
		return false
	}
	if w.End != nil && t.After(*w.End) {
		return false
	}
	return true
}

// endOfDayMicros matches the stored timestamp precision: windows close at
// 23:59:59.999999.
const endOfDayMicros = 999999 * int(time.Microsecond)

// ResolveWindow computes the date window for a report. weekNumber is only
// consulted for weekly reports and must be >= 1; no upper bound is
// enforced, an out-of-range week simply yields a window past the month.
func ResolveWindow(reportType string, year int, month time.Month, weekNumber int) (Window, error) {
	switch reportType {
	case ReportTotal:
		return Window{Label: "Todas las Inspecciones (Neto)"}, nil

	case ReportAnnual:
		start := time.Date(year, time.January, 1, 0, 0, 0, 0, time.UTC)
		end := time.Date(year, time.December, 31, 23, 59, 59, endOfDayMicros, time.UTC)
		return Window{Start: &start, End: &end, Label: fmt.Sprintf("Año %d", year)}, nil

	case ReportMonthly:
		start := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		// day 0 of the next month normalizes to the month's last day,
		// leap-year aware.
		last := time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
		end := time.Date(year, month, last, 23, 59, 59, endOfDayMicros, time.UTC)
		return Window{Start: &start, End: &end, Label: fmt.Sprintf("%s %d", month, year)}, nil

	case ReportWeekly:
		if weekNumber < 1 {
			return Window{}, ErrMissingWeekNumber
		}
		firstOfMonth := time.Date(year, month, 1, 0, 0, 0, 0, time.UTC)
		// Anchor on the Sunday on or immediately before the 1st.
		anchor := firstOfMonth.AddDate(0, 0, -int(firstOfMonth.Weekday()))
		start := anchor.AddDate(0, 0, 7*(weekNumber-1))
		endDay := start.AddDate(0, 0, 6)
		end := time.Date(endDay.Year(), endDay.Month(), endDay.Day(), 23, 59, 59, endOfDayMicros, time.UTC)
		label := fmt.Sprintf("Semana %d de %s %d", weekNumber, month, year)
		return Window{Start: &start, End: &end, Label: label}, nil

	default:
		return Window{}, fmt.Errorf("%w: %q", ErrInvalidReportType, reportType)
	}
}

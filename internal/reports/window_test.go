package reports

import (
	"errors"
	"testing"
	"time"
)

func date(y int, m time.Month, d, hh, mm, ss, micros int) time.Time {
	return time.Date(y, m, d, hh, mm, ss, micros*int(time.Microsecond), time.UTC)
}

func TestResolveWindowWeekly(t *testing.T) {
	tests := []struct {
		name       string
		year       int
		month      time.Month
		week       int
		wantStart  time.Time
		wantEnd    time.Time
	}{
		{
			// March 1, 2024 is a Friday; the anchor Sunday is Feb 25.
			name: "march 2024 week 1 anchors in february",
			year: 2024, month: time.March, week: 1,
			wantStart: date(2024, time.February, 25, 0, 0, 0, 0),
			wantEnd:   date(2024, time.March, 2, 23, 59, 59, 999999),
		},
		{
			name: "march 2024 week 2",
			year: 2024, month: time.March, week: 2,
			wantStart: date(2024, time.March, 3, 0, 0, 0, 0),
			wantEnd:   date(2024, time.March, 9, 23, 59, 59, 999999),
		},
		{
			// September 1, 2024 is itself a Sunday; week 1 starts on it.
			name: "month starting on sunday",
			year: 2024, month: time.September, week: 1,
			wantStart: date(2024, time.September, 1, 0, 0, 0, 0),
			wantEnd:   date(2024, time.September, 7, 23, 59, 59, 999999),
		},
		{
			// No upper bound: week 6 of a 4-week span just runs past the month.
			name: "week past the month",
			year: 2024, month: time.March, week: 6,
			wantStart: date(2024, time.March, 31, 0, 0, 0, 0),
			wantEnd:   date(2024, time.April, 6, 23, 59, 59, 999999),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ResolveWindow(ReportWeekly, tt.year, tt.month, tt.week)
			if err != nil {
				t.Fatalf("ResolveWindow() error = %v", err)
			}
			if w.Start == nil || w.End == nil {
				t.Fatal("ResolveWindow() returned unbounded weekly window")
			}
			if !w.Start.Equal(tt.wantStart) {
				t.Errorf("start = %v, want %v", w.Start, tt.wantStart)
			}
			if !w.End.Equal(tt.wantEnd) {
				t.Errorf("end = %v, want %v", w.End, tt.wantEnd)
			}
		})
	}
}

func TestWeeklyWindowsTile(t *testing.T) {
	// Consecutive weekly windows are pairwise disjoint, each 7 days, and
	// each window's end is exactly 1µs before the next window's start.
	var prev Window
	for week := 1; week <= 5; week++ {
		w, err := ResolveWindow(ReportWeekly, 2025, time.June, week)
		if err != nil {
			t.Fatalf("ResolveWindow(week %d) error = %v", week, err)
		}
		if got := w.End.Sub(*w.Start); got != 7*24*time.Hour-time.Microsecond {
			t.Errorf("week %d spans %v, want %v", week, got, 7*24*time.Hour-time.Microsecond)
		}
		if week > 1 {
			if gap := w.Start.Sub(*prev.End); gap != time.Microsecond {
				t.Errorf("gap between week %d and %d = %v, want 1µs", week-1, week, gap)
			}
			if !prev.End.Before(*w.Start) {
				t.Errorf("week %d overlaps week %d", week, week-1)
			}
		}
		prev = w
	}
}

func TestResolveWindowMonthly(t *testing.T) {
	tests := []struct {
		name     string
		year     int
		month    time.Month
		wantLast int
	}{
		{"leap february", 2024, time.February, 29},
		{"non leap february", 2023, time.February, 28},
		{"december", 2024, time.December, 31},
		{"april", 2024, time.April, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			w, err := ResolveWindow(ReportMonthly, tt.year, tt.month, 0)
			if err != nil {
				t.Fatalf("ResolveWindow() error = %v", err)
			}
			wantStart := date(tt.year, tt.month, 1, 0, 0, 0, 0)
			wantEnd := date(tt.year, tt.month, tt.wantLast, 23, 59, 59, 999999)
			if !w.Start.Equal(wantStart) || !w.End.Equal(wantEnd) {
				t.Errorf("window = [%v, %v], want [%v, %v]", w.Start, w.End, wantStart, wantEnd)
			}
		})
	}
}

func TestResolveWindowAnnual(t *testing.T) {
	w, err := ResolveWindow(ReportAnnual, 2024, time.June, 0)
	if err != nil {
		t.Fatalf("ResolveWindow() error = %v", err)
	}
	if !w.Start.Equal(date(2024, time.January, 1, 0, 0, 0, 0)) {
		t.Errorf("start = %v", w.Start)
	}
	if !w.End.Equal(date(2024, time.December, 31, 23, 59, 59, 999999)) {
		t.Errorf("end = %v", w.End)
	}
}

func TestResolveWindowTotal(t *testing.T) {
	w, err := ResolveWindow(ReportTotal, 0, 0, 0)
	if err != nil {
		t.Fatalf("ResolveWindow() error = %v", err)
	}
	if !w.Unbounded() {
		t.Errorf("total window = [%v, %v], want unbounded", w.Start, w.End)
	}
	if !w.Contains(time.Now()) || !w.Contains(time.Time{}) {
		t.Error("unbounded window should contain every instant")
	}
}

func TestResolveWindowErrors(t *testing.T) {
	if _, err := ResolveWindow("quarterly", 2024, time.March, 0); !errors.Is(err, ErrInvalidReportType) {
		t.Errorf("error = %v, want ErrInvalidReportType", err)
	}
	if _, err := ResolveWindow(ReportWeekly, 2024, time.March, 0); !errors.Is(err, ErrMissingWeekNumber) {
		t.Errorf("error = %v, want ErrMissingWeekNumber", err)
	}
}

func TestWindowContains(t *testing.T) {
	w, err := ResolveWindow(ReportMonthly, 2024, time.March, 0)
	if err != nil {
		t.Fatalf("ResolveWindow() error = %v", err)
	}

	tests := []struct {
		name string
		at   time.Time
		want bool
	}{
		{"first instant", date(2024, time.March, 1, 0, 0, 0, 0), true},
		{"last instant", date(2024, time.March, 31, 23, 59, 59, 999999), true},
		{"middle", date(2024, time.March, 10, 9, 0, 0, 0), true},
		{"before", date(2024, time.February, 29, 23, 59, 59, 999999), false},
		{"after", date(2024, time.April, 1, 0, 0, 0, 0), false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := w.Contains(tt.at); got != tt.want {
				t.Errorf("Contains(%v) = %v, want %v", tt.at, got, tt.want)
			}
		})
	}
}

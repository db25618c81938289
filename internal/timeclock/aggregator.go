package timeclock

import (
	"sort"
	"time"

	"github.com/google/uuid"
)

// DateKey renders the civil date of a timestamp in its own offset. Punches
// are grouped by this local date, not by the UTC date.
func DateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// DayTotals is the per-day outcome of pairing one day's punches.
//
// Present is set as soon as an entry punch exists, so a day with an entry
// but no exit still counts as a worked day for day-counting purposes while
// contributing zero paid minutes.
type DayTotals struct {
	WorkedMinutes int
	Present       bool
}

// AggregateMonth groups an employee's punches into calendar days for one
// month and computes worked minutes per day. It is a pure function of the
// punch set: recomputing from the same input yields identical output.
func AggregateMonth(punches []Punch, employeeID uuid.UUID, year int, month time.Month) map[string]DayTotals {
	byDay := make(map[string][]Punch)
	for _, p := range punches {
		if p.EmployeeID != employeeID {
			continue
		}
		if p.PunchedAt.Year() != year || p.PunchedAt.Month() != month {
			continue
		}
		key := DateKey(p.PunchedAt)
		byDay[key] = append(byDay[key], p)
	}

	totals := make(map[string]DayTotals, len(byDay))
	for key, dayPunches := range byDay {
		totals[key] = aggregateDay(dayPunches)
	}
	return totals
}

// aggregateDay pairs one day's punches: sort by timestamp, take the first
// punch of each kind, then worked = (exit − entry) − (lunch in − lunch out).
// Out-of-order recordings produce negative intermediate durations, which
// contribute zero rather than corrupting the total.
func aggregateDay(punches []Punch) DayTotals {
	sorted := make([]Punch, len(punches))
	copy(sorted, punches)
	sort.Slice(sorted, func(i, j int) bool {
		return sorted[i].PunchedAt.Before(sorted[j].PunchedAt)
	})

	first := make(map[string]Punch, 4)
	for _, p := range sorted {
		if _, ok := first[p.Kind]; !ok {
			first[p.Kind] = p
		}
	}

	entry, hasEntry := first[KindEntry]
	exit, hasExit := first[KindExit]

	totals := DayTotals{Present: hasEntry}
	if !hasEntry || !hasExit {
		return totals
	}

	worked := exit.PunchedAt.Sub(entry.PunchedAt)
	if lunchOut, ok := first[KindLunchOut]; ok {
		if lunchIn, ok := first[KindLunchIn]; ok {
			lunch := lunchIn.PunchedAt.Sub(lunchOut.PunchedAt)
			if lunch > 0 {
				worked -= lunch
			}
		}
	}
	if worked < 0 {
		worked = 0
	}

	// Round to the nearest minute so second-level jitter in punch clocks
	// does not shave whole minutes off the day.
	totals.WorkedMinutes = int((worked + 30*time.Second) / time.Minute)
	return totals
}

// WorkedDaySet returns the dates on which the employee registered an entry
// punch within the month. Payroll counts worked days from entry presence
// alone; paid minutes still require a full entry/exit pair.
func WorkedDaySet(punches []Punch, employeeID uuid.UUID, year int, month time.Month) map[string]struct{} {
	set := make(map[string]struct{})
	for _, p := range punches {
		if p.EmployeeID != employeeID || p.Kind != KindEntry {
			continue
		}
		if p.PunchedAt.Year() != year || p.PunchedAt.Month() != month {
			continue
		}
		set[DateKey(p.PunchedAt)] = struct{}{}
	}
	return set
}

// TotalWorkedHours sums the month's paid minutes and converts to fractional
// hours, matching the payroll statement's "horas trabalhadas" counter.
func TotalWorkedHours(punches []Punch, employeeID uuid.UUID, year int, month time.Month) float64 {
	var minutes int
	for _, totals := range AggregateMonth(punches, employeeID, year, month) {
		minutes += totals.WorkedMinutes
	}
	return float64(minutes) / 60.0
}

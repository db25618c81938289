package justification

import (
	"time"

	"github.com/google/uuid"
)

// JustifiedDays expands an employee's approved justifications into the set
// of covered dates within one month, keyed "2006-01-02". Pending and
// rejected records contribute nothing. A record without an end date covers
// only its start date; a range covers every date from start through end
// inclusive, clipped to the month.
func JustifiedDays(justifications []Justification, employeeID uuid.UUID, year int, month time.Month) map[string]struct{} {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, -1)

	set := make(map[string]struct{})
	for _, j := range justifications {
		if j.EmployeeID != employeeID || j.Status != StatusApproved {
			continue
		}

		start := dateOnly(j.StartDate)
		end := start
		if j.EndDate != nil {
			end = dateOnly(*j.EndDate)
		}
		if end.Before(start) {
			continue
		}

		if start.Before(monthStart) {
			start = monthStart
		}
		if end.After(monthEnd) {
			end = monthEnd
		}

		for d := start; !d.After(end); d = d.AddDate(0, 0, 1) {
			set[d.Format("2006-01-02")] = struct{}{}
		}
	}
	return set
}

func dateOnly(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.Local)
}

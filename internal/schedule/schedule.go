package schedule

import (
	"strconv"
	"strings"
)

// WorkSchedule is a four-field daily work window with "HH:MM" values.
// Empty fields are legal: an empty window contributes zero expected minutes.
type WorkSchedule struct {
	WorkStart  string `json:"work_start"`
	LunchStart string `json:"lunch_start"`
	LunchEnd   string `json:"lunch_end"`
	WorkEnd    string `json:"work_end"`
}

// IsZero reports whether no field is set, which callers use as the
// "no override" sentinel for per-employee custom hours.
func (s WorkSchedule) IsZero() bool {
	return s.WorkStart == "" && s.LunchStart == "" && s.LunchEnd == "" && s.WorkEnd == ""
}

// ExpectedMinutes computes the schedule's daily expected working minutes:
// (work end − work start) − (lunch end − lunch start). Upstream does not
// enforce window ordering, so every negative intermediate duration is
// clamped to zero instead of failing.
func (s WorkSchedule) ExpectedMinutes() int {
	if s.WorkStart == "" || s.WorkEnd == "" {
		return 0
	}

	work := clampNonNegative(parseClock(s.WorkEnd) - parseClock(s.WorkStart))
	lunch := clampNonNegative(parseClock(s.LunchEnd) - parseClock(s.LunchStart))

	return clampNonNegative(work - lunch)
}

// parseClock converts "HH:MM" to minutes since midnight. Malformed or empty
// values resolve to 0 so a broken schedule degrades to zero expected time.
func parseClock(v string) int {
	if v == "" || !strings.Contains(v, ":") {
		return 0
	}

	parts := strings.SplitN(v, ":", 2)
	hours, err := strconv.Atoi(parts[0])
	if err != nil {
		return 0
	}
	minutes, err := strconv.Atoi(parts[1])
	if err != nil {
		return 0
	}

	return hours*60 + minutes
}

func clampNonNegative(v int) int {
	if v < 0 {
		return 0
	}
	return v
}

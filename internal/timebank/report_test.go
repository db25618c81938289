package timebank_test

import (
	"testing"
	"time"

	"go-ponto/internal/timebank"
	"go-ponto/internal/timeclock"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func punchAt(employeeID uuid.UUID, kind string, ts string) timeclock.Punch {
	t, err := time.Parse(time.RFC3339, ts)
	if err != nil {
		panic(err)
	}
	return timeclock.Punch{ID: uuid.New(), EmployeeID: employeeID, Kind: kind, PunchedAt: t}
}

func findDay(t *testing.T, report timebank.MonthReport, date string) timebank.DailyBalance {
	t.Helper()
	for _, d := range report.Days {
		if d.Date == date {
			return d
		}
	}
	t.Fatalf("day %s not in report", date)
	return timebank.DailyBalance{}
}

func TestBuildMonthReport_NormalWeekday(t *testing.T) {
	employeeID := uuid.New()
	report := timebank.BuildMonthReport(timebank.ReportInput{
		EmployeeID:      employeeID,
		Year:            2026,
		Month:           time.March,
		ExpectedMinutes: 480,
		Punches: []timeclock.Punch{
			punchAt(employeeID, timeclock.KindEntry, "2026-03-02T08:00:00-03:00"),
			punchAt(employeeID, timeclock.KindLunchOut, "2026-03-02T12:00:00-03:00"),
			punchAt(employeeID, timeclock.KindLunchIn, "2026-03-02T13:00:00-03:00"),
			punchAt(employeeID, timeclock.KindExit, "2026-03-02T17:30:00-03:00"),
		},
	})

	day := findDay(t, report, "02/03/2026")
	assert.Equal(t, "segunda-feira", day.Weekday)
	assert.Equal(t, 510, day.WorkedMinutes)
	assert.Equal(t, 480, day.ExpectedMinutes)
	assert.Equal(t, 30, day.BalanceMinutes)
	assert.Empty(t, day.Observation)
}

func TestBuildMonthReport_WeekendOvertime(t *testing.T) {
	employeeID := uuid.New()
	// 2026-03-07 is a Saturday.
	report := timebank.BuildMonthReport(timebank.ReportInput{
		EmployeeID:      employeeID,
		Year:            2026,
		Month:           time.March,
		ExpectedMinutes: 480,
		Punches: []timeclock.Punch{
			punchAt(employeeID, timeclock.KindEntry, "2026-03-07T08:00:00-03:00"),
			punchAt(employeeID, timeclock.KindExit, "2026-03-07T12:00:00-03:00"),
		},
	})

	day := findDay(t, report, "07/03/2026")
	assert.Equal(t, "sábado", day.Weekday)
	assert.Equal(t, 0, day.ExpectedMinutes)
	assert.Equal(t, 240, day.BalanceMinutes)
	assert.Equal(t, timebank.ObservationWeekendOvertime, day.Observation)
}

func TestBuildMonthReport_JustifiedDayZeroBalance(t *testing.T) {
	employeeID := uuid.New()
	report := timebank.BuildMonthReport(timebank.ReportInput{
		EmployeeID:      employeeID,
		Year:            2026,
		Month:           time.March,
		ExpectedMinutes: 480,
		JustifiedDays:   map[string]struct{}{"2026-03-03": {}},
	})

	day := findDay(t, report, "03/03/2026")
	assert.Equal(t, timebank.ObservationJustified, day.Observation)
	assert.Equal(t, 0, day.BalanceMinutes)
}

func TestBuildMonthReport_WeekdayAbsence(t *testing.T) {
	employeeID := uuid.New()
	report := timebank.BuildMonthReport(timebank.ReportInput{
		EmployeeID:      employeeID,
		Year:            2026,
		Month:           time.March,
		ExpectedMinutes: 480,
	})

	day := findDay(t, report, "04/03/2026")
	assert.Equal(t, timebank.ObservationAbsence, day.Observation)
	assert.Equal(t, -480, day.BalanceMinutes)
}

func TestBuildMonthReport_EmptyWeekendExcluded(t *testing.T) {
	employeeID := uuid.New()
	report := timebank.BuildMonthReport(timebank.ReportInput{
		EmployeeID:      employeeID,
		Year:            2026,
		Month:           time.March,
		ExpectedMinutes: 480,
	})

	for _, d := range report.Days {
		assert.NotEqual(t, "sábado", d.Weekday)
		assert.NotEqual(t, "domingo", d.Weekday)
	}
	// March 2026: 22 weekdays, 9 weekend days.
	assert.Len(t, report.Days, 22)
}

func TestBuildMonthReport_ZeroQuotaProducesNoAbsence(t *testing.T) {
	employeeID := uuid.New()
	report := timebank.BuildMonthReport(timebank.ReportInput{
		EmployeeID:      employeeID,
		Year:            2026,
		Month:           time.March,
		ExpectedMinutes: 0,
	})

	for _, d := range report.Days {
		assert.Empty(t, d.Observation)
		assert.Equal(t, 0, d.BalanceMinutes)
	}
	assert.Equal(t, 0, report.TotalBalanceMinutes)
}

func TestBuildMonthReport_Totals(t *testing.T) {
	employeeID := uuid.New()
	report := timebank.BuildMonthReport(timebank.ReportInput{
		EmployeeID:      employeeID,
		Year:            2026,
		Month:           time.March,
		ExpectedMinutes: 480,
		Punches: []timeclock.Punch{
			punchAt(employeeID, timeclock.KindEntry, "2026-03-02T08:00:00-03:00"),
			punchAt(employeeID, timeclock.KindExit, "2026-03-02T16:00:00-03:00"),
		},
	})

	var sum int
	for _, d := range report.Days {
		sum += d.BalanceMinutes
	}
	assert.Equal(t, sum, report.TotalBalanceMinutes)
	assert.Equal(t, 480, report.TotalWorkedMinutes)
}

func TestFormatMinutes(t *testing.T) {
	assert.Equal(t, "+8h30", timebank.FormatMinutes(510))
	assert.Equal(t, "-0h45", timebank.FormatMinutes(-45))
	assert.Equal(t, "+0h00", timebank.FormatMinutes(0))
}

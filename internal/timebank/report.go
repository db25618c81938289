package timebank

import (
	"fmt"
	"time"

	"go-ponto/internal/timeclock"

	"github.com/google/uuid"
)

// Day observations, in the wording the payslip and report screens print.
const (
	ObservationWeekendOvertime = "Hora Extra (Fim de Semana)"
	ObservationJustified       = "Dia Justificado"
	ObservationAbsence         = "Falta"
)

// DailyBalance is one row of the monthly time-bank statement.
type DailyBalance struct {
	Date            string `json:"date"`
	Weekday         string `json:"weekday"`
	WorkedMinutes   int    `json:"worked_minutes"`
	ExpectedMinutes int    `json:"expected_minutes"`
	BalanceMinutes  int    `json:"balance_minutes"`
	Observation     string `json:"observation,omitempty"`
}

type MonthReport struct {
	EmployeeID           string         `json:"employee_id"`
	EmployeeName         string         `json:"employee_name"`
	Month                string         `json:"month"`
	Days                 []DailyBalance `json:"days"`
	TotalWorkedMinutes   int            `json:"total_worked_minutes"`
	TotalExpectedMinutes int            `json:"total_expected_minutes"`
	TotalBalanceMinutes  int            `json:"total_balance_minutes"`
}

// ReportInput carries everything the calculator needs, already resolved.
// ExpectedMinutes is the weekday quota from the employee's effective
// schedule; weekends always expect zero.
type ReportInput struct {
	EmployeeID      uuid.UUID
	EmployeeName    string
	Year            int
	Month           time.Month
	ExpectedMinutes int
	Punches         []timeclock.Punch
	JustifiedDays   map[string]struct{}
}

// BuildMonthReport walks every calendar day of the month and classifies it.
//
// Classification order matters: weekend work is overtime even when the day
// is also justified; a justified day zeroes the balance regardless of the
// quota; only then does an empty weekday become an absence. Weekends with
// no work are left out of the statement entirely.
func BuildMonthReport(in ReportInput) MonthReport {
	totalsByDay := timeclock.AggregateMonth(in.Punches, in.EmployeeID, in.Year, in.Month)

	report := MonthReport{
		EmployeeID:   in.EmployeeID.String(),
		EmployeeName: in.EmployeeName,
		Month:        fmt.Sprintf("%04d-%02d", in.Year, in.Month),
	}

	monthStart := time.Date(in.Year, in.Month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	for day := 1; day <= daysInMonth; day++ {
		date := time.Date(in.Year, in.Month, day, 0, 0, 0, 0, time.Local)
		key := date.Format("2006-01-02")

		worked := totalsByDay[key].WorkedMinutes
		weekend := date.Weekday() == time.Saturday || date.Weekday() == time.Sunday

		expected := in.ExpectedMinutes
		if weekend {
			expected = 0
		}

		_, justified := in.JustifiedDays[key]

		balance := worked - expected
		observation := ""
		switch {
		case weekend && worked > 0:
			observation = ObservationWeekendOvertime
		case justified:
			observation = ObservationJustified
			balance = 0
		case !weekend && worked == 0 && expected > 0:
			observation = ObservationAbsence
			balance = -expected
		}

		if worked == 0 && weekend {
			continue
		}

		report.Days = append(report.Days, DailyBalance{
			Date:            date.Format("02/01/2006"),
			Weekday:         weekdayPTBR(date.Weekday()),
			WorkedMinutes:   worked,
			ExpectedMinutes: expected,
			BalanceMinutes:  balance,
			Observation:     observation,
		})
		report.TotalWorkedMinutes += worked
		report.TotalExpectedMinutes += expected
		report.TotalBalanceMinutes += balance
	}

	return report
}

// FormatMinutes renders a signed minute count as "+8h30" / "-0h45".
func FormatMinutes(minutes int) string {
	sign := "+"
	if minutes < 0 {
		sign = "-"
		minutes = -minutes
	}
	return fmt.Sprintf("%s%dh%02d", sign, minutes/60, minutes%60)
}

func weekdayPTBR(d time.Weekday) string {
	switch d {
	case time.Sunday:
		return "domingo"
	case time.Monday:
		return "segunda-feira"
	case time.Tuesday:
		return "terça-feira"
	case time.Wednesday:
		return "quarta-feira"
	case time.Thursday:
		return "quinta-feira"
	case time.Friday:
		return "sexta-feira"
	default:
		return "sábado"
	}
}

// MonthNamePTBR is shared with the payslip renderer.
func MonthNamePTBR(m time.Month) string {
	names := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return names[m-1]
}

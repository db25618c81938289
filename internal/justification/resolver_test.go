package justification_test

import (
	"testing"
	"time"

	"go-ponto/internal/justification"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func date(y int, m time.Month, d int) time.Time {
	return time.Date(y, m, d, 0, 0, 0, 0, time.Local)
}

func TestJustifiedDays_SingleDay(t *testing.T) {
	employeeID := uuid.New()
	justs := []justification.Justification{
		{EmployeeID: employeeID, Status: justification.StatusApproved, StartDate: date(2026, 3, 10)},
	}

	set := justification.JustifiedDays(justs, employeeID, 2026, time.March)

	assert.Len(t, set, 1)
	assert.Contains(t, set, "2026-03-10")
}

func TestJustifiedDays_RangeInclusive(t *testing.T) {
	employeeID := uuid.New()
	end := date(2026, 3, 12)
	justs := []justification.Justification{
		{EmployeeID: employeeID, Status: justification.StatusApproved, StartDate: date(2026, 3, 10), EndDate: &end},
	}

	set := justification.JustifiedDays(justs, employeeID, 2026, time.March)

	assert.Len(t, set, 3)
	assert.Contains(t, set, "2026-03-10")
	assert.Contains(t, set, "2026-03-11")
	assert.Contains(t, set, "2026-03-12")
}

func TestJustifiedDays_ClipsToMonth(t *testing.T) {
	employeeID := uuid.New()
	end := date(2026, 4, 3)
	justs := []justification.Justification{
		{EmployeeID: employeeID, Status: justification.StatusApproved, StartDate: date(2026, 3, 30), EndDate: &end},
	}

	set := justification.JustifiedDays(justs, employeeID, 2026, time.March)

	assert.Len(t, set, 2)
	assert.Contains(t, set, "2026-03-30")
	assert.Contains(t, set, "2026-03-31")
}

func TestJustifiedDays_IgnoresPendingAndRejected(t *testing.T) {
	employeeID := uuid.New()
	justs := []justification.Justification{
		{EmployeeID: employeeID, Status: justification.StatusPending, StartDate: date(2026, 3, 5)},
		{EmployeeID: employeeID, Status: justification.StatusRejected, StartDate: date(2026, 3, 6)},
	}

	set := justification.JustifiedDays(justs, employeeID, 2026, time.March)

	assert.Empty(t, set)
}

func TestJustifiedDays_IgnoresOtherEmployees(t *testing.T) {
	employeeID := uuid.New()
	justs := []justification.Justification{
		{EmployeeID: uuid.New(), Status: justification.StatusApproved, StartDate: date(2026, 3, 5)},
	}

	set := justification.JustifiedDays(justs, employeeID, 2026, time.March)

	assert.Empty(t, set)
}

func TestJustifiedDays_InvertedRangeContributesNothing(t *testing.T) {
	employeeID := uuid.New()
	end := date(2026, 3, 2)
	justs := []justification.Justification{
		{EmployeeID: employeeID, Status: justification.StatusApproved, StartDate: date(2026, 3, 9), EndDate: &end},
	}

	set := justification.JustifiedDays(justs, employeeID, 2026, time.March)

	assert.Empty(t, set)
}

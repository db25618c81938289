package payroll

import (
	"fmt"
	"math"
	"time"

	"go-ponto/internal/employee"
)

// Line is one payslip row. Amounts are always positive; the section the
// line sits in decides its sign.
type Line struct {
	Label  string  `json:"label"`
	Amount float64 `json:"amount"`
}

// Result is the computed payroll for one employee and month.
type Result struct {
	Earnings        []Line  `json:"earnings"`
	Deductions      []Line  `json:"deductions"`
	EmployerCharges []Line  `json:"employer_charges"`
	TotalEarnings   float64 `json:"total_earnings"`
	TotalDeductions float64 `json:"total_deductions"`
	NetPay          float64 `json:"net_pay"`
	INSSBase        float64 `json:"inss_base"`
	BusinessDays    int     `json:"business_days"`
	WorkedDays      int     `json:"worked_days"`
	JustifiedDays   int     `json:"justified_days"`
	AbsentDays      int     `json:"absent_days"`
}

// Input carries the attendance counts already settled for the month.
// WorkedDays counts days with an entry punch, excluding justified days;
// JustifiedDays counts approved justification days inside the period.
type Input struct {
	BaseSalary    float64
	AdmissionDate time.Time
	Benefits      employee.Benefits
	Year          int
	Month         time.Month
	WorkedDays    int
	JustifiedDays int
	// ConvenioDeduction is the health-plan amount charged this run. It is
	// entered per closing, not read from the registered benefits.
	ConvenioDeduction float64
}

// 2024 INSS progressive table with the simplified deduction per bracket.
const (
	inssBracket1Limit = 1412.00
	inssBracket2Limit = 2666.68
	inssBracket3Limit = 4000.03
	inssCeiling       = 7786.02

	inssBracket2Deduction = 21.18
	inssBracket3Deduction = 101.18
	inssBracket4Deduction = 181.18
)

const (
	fgtsRate        = 0.08
	vaDiscountRate  = 0.11
	vtDiscountRate  = 0.06
	payrollBaseDays = 30
)

// Compute runs the full monthly payroll for one employee.
//
// An admission date after the month yields an all-zero result. An admission
// inside the month prorates the base salary over the remaining contract
// days and shrinks the business-day window accordingly.
func Compute(in Input) Result {
	monthStart := time.Date(in.Year, in.Month, 1, 0, 0, 0, 0, time.Local)
	monthEnd := monthStart.AddDate(0, 1, -1)
	daysInMonth := monthEnd.Day()

	admission := time.Date(in.AdmissionDate.Year(), in.AdmissionDate.Month(), in.AdmissionDate.Day(), 0, 0, 0, 0, time.Local)
	if admission.After(monthEnd) {
		return Result{}
	}

	periodStartDay := 1
	salaryBase := in.BaseSalary
	salaryLabel := "Salário Base"
	if !admission.Before(monthStart) {
		periodStartDay = admission.Day()
		daysInContract := daysInMonth - periodStartDay + 1
		salaryBase = in.BaseSalary / payrollBaseDays * float64(daysInContract)
		salaryLabel = fmt.Sprintf("Salário Proporcional (%d dias)", daysInContract)
	}

	var r Result
	r.BusinessDays = businessDays(in.Year, in.Month, periodStartDay)
	r.WorkedDays = in.WorkedDays
	r.JustifiedDays = in.JustifiedDays
	r.AbsentDays = r.BusinessDays - in.WorkedDays - in.JustifiedDays
	if r.AbsentDays < 0 {
		r.AbsentDays = 0
	}

	addEarning := func(label string, amount float64) {
		r.Earnings = append(r.Earnings, Line{Label: label, Amount: amount})
		r.TotalEarnings += amount
	}
	addDeduction := func(label string, amount float64) {
		r.Deductions = append(r.Deductions, Line{Label: label, Amount: amount})
		r.TotalDeductions += amount
	}

	addEarning(salaryLabel, salaryBase)

	dailySalary := in.BaseSalary / payrollBaseDays
	var absenceDeduction float64
	if r.AbsentDays > 0 {
		absenceDeduction = dailySalary * float64(r.AbsentDays)
		addDeduction(fmt.Sprintf("Faltas (%d dias)", r.AbsentDays), absenceDeduction)

		// Unjustified absences also forfeit the paid weekly rest, capped
		// at the number of Sundays in the month.
		dsrDays := r.AbsentDays
		if sundays := sundaysInMonth(in.Year, in.Month); dsrDays > sundays {
			dsrDays = sundays
		}
		dsrDeduction := dailySalary * float64(dsrDays)
		addDeduction("Desconto DSR s/ Faltas", dsrDeduction)
		// The forfeited rest day reduces the salary actually earned, so it
		// joins the absence total used for the VT cap and the INSS base.
		absenceDeduction += dsrDeduction
	}

	if va := in.Benefits.VA; va != nil && va.DailyValue > 0 && in.WorkedDays > 0 {
		vaTotal := va.DailyValue * float64(in.WorkedDays)
		addEarning("Vale Alimentação (VA)", vaTotal)
		addDeduction("Desconto VA (11%)", vaTotal*vaDiscountRate)
	}

	if vt := in.Benefits.VT; vt != nil && vt.DailyValue > 0 && in.WorkedDays > 0 {
		vtTotal := vt.DailyValue * float64(in.WorkedDays)
		addEarning("Vale Transporte (VT)", vtTotal)

		vtDiscount := (salaryBase - absenceDeduction) * vtDiscountRate
		if vtDiscount > vtTotal {
			vtDiscount = vtTotal
		}
		if vtDiscount > 0 {
			addDeduction("Desconto VT (6%)", vtDiscount)
		}
	}

	var periculosidade, insalubridade float64
	if p := in.Benefits.Periculosidade; p != nil && p.Percentage > 0 {
		periculosidade = salaryBase * p.Percentage / 100
		addEarning("Periculosidade", periculosidade)
	}
	if i := in.Benefits.Insalubridade; i != nil && i.Percentage > 0 {
		insalubridade = salaryBase * i.Percentage / 100
		addEarning("Insalubridade", insalubridade)
	}

	if in.ConvenioDeduction > 0 {
		addDeduction("Desconto Convênio", in.ConvenioDeduction)
	}

	r.INSSBase = (salaryBase - absenceDeduction) + periculosidade + insalubridade
	if r.INSSBase < 0 {
		r.INSSBase = 0
	}
	if inss := CalculateINSS(r.INSSBase); inss > 0 {
		addDeduction("INSS", inss)
	}

	if fgts := r.INSSBase * fgtsRate; fgts > 0 {
		r.EmployerCharges = append(r.EmployerCharges, Line{Label: "FGTS (8%)", Amount: fgts})
	}

	r.NetPay = math.Max(0, r.TotalEarnings-r.TotalDeductions)
	return r
}

// CalculateINSS applies the progressive table using the per-bracket
// simplified deduction. Contributions cap at the ceiling salary.
func CalculateINSS(base float64) float64 {
	switch {
	case base <= 0:
		return 0
	case base <= inssBracket1Limit:
		return base * 0.075
	case base <= inssBracket2Limit:
		return base*0.09 - inssBracket2Deduction
	case base <= inssBracket3Limit:
		return base*0.12 - inssBracket3Deduction
	case base <= inssCeiling:
		return base*0.14 - inssBracket4Deduction
	default:
		return inssCeiling*0.14 - inssBracket4Deduction
	}
}

// businessDays counts Monday through Friday from the given day of the
// month to its end.
func businessDays(year int, month time.Month, fromDay int) int {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	count := 0
	for day := fromDay; day <= daysInMonth; day++ {
		wd := time.Date(year, month, day, 0, 0, 0, 0, time.Local).Weekday()
		if wd != time.Saturday && wd != time.Sunday {
			count++
		}
	}
	return count
}

func sundaysInMonth(year int, month time.Month) int {
	monthStart := time.Date(year, month, 1, 0, 0, 0, 0, time.Local)
	daysInMonth := monthStart.AddDate(0, 1, -1).Day()

	count := 0
	for day := 1; day <= daysInMonth; day++ {
		if time.Date(year, month, day, 0, 0, 0, 0, time.Local).Weekday() == time.Sunday {
			count++
		}
	}
	return count
}

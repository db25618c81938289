package payroll_test

import (
	"testing"
	"time"

	"go-ponto/internal/employee"
	"go-ponto/internal/payroll"

	"github.com/stretchr/testify/assert"
)

func findLine(t *testing.T, lines []payroll.Line, label string) payroll.Line {
	t.Helper()
	for _, l := range lines {
		if l.Label == label {
			return l
		}
	}
	t.Fatalf("line %q not found in %v", label, lines)
	return payroll.Line{}
}

func hasLine(lines []payroll.Line, label string) bool {
	for _, l := range lines {
		if l.Label == label {
			return true
		}
	}
	return false
}

func TestCalculateINSS_Brackets(t *testing.T) {
	tests := []struct {
		name string
		base float64
		want float64
	}{
		{"zero", 0, 0},
		{"first bracket", 1000, 75.00},
		{"first bracket upper bound", 1412.00, 105.90},
		{"second bracket lower edge", 1412.01, 1412.01*0.09 - 21.18},
		{"second bracket", 2000, 2000*0.09 - 21.18},
		{"third bracket", 3000, 3000*0.12 - 101.18},
		{"fourth bracket", 5000, 5000*0.14 - 181.18},
		{"ceiling", 7786.02, 7786.02*0.14 - 181.18},
		{"above ceiling capped", 20000, 7786.02*0.14 - 181.18},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.InDelta(t, tt.want, payroll.CalculateINSS(tt.base), 1e-9)
		})
	}
}

func TestCompute_FullMonthNoAbsences(t *testing.T) {
	// March 2026 has 22 business days and 5 Sundays.
	r := payroll.Compute(payroll.Input{
		BaseSalary:    3000,
		AdmissionDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		Year:          2026,
		Month:         time.March,
		WorkedDays:    22,
	})

	assert.Equal(t, 22, r.BusinessDays)
	assert.Equal(t, 0, r.AbsentDays)

	base := findLine(t, r.Earnings, "Salário Base")
	assert.InDelta(t, 3000, base.Amount, 1e-9)
	assert.False(t, hasLine(r.Deductions, "Desconto DSR s/ Faltas"))

	inss := findLine(t, r.Deductions, "INSS")
	assert.InDelta(t, 3000*0.12-101.18, inss.Amount, 1e-9)
	assert.InDelta(t, 3000, r.INSSBase, 1e-9)

	fgts := findLine(t, r.EmployerCharges, "FGTS (8%)")
	assert.InDelta(t, 240, fgts.Amount, 1e-9)

	assert.InDelta(t, r.TotalEarnings-r.TotalDeductions, r.NetPay, 1e-9)
}

func TestCompute_MidMonthAdmissionProration(t *testing.T) {
	// Admitted April 15th of a 30-day month: 16 contract days.
	r := payroll.Compute(payroll.Input{
		BaseSalary:    3000,
		AdmissionDate: time.Date(2026, 4, 15, 0, 0, 0, 0, time.Local),
		Year:          2026,
		Month:         time.April,
		WorkedDays:    12,
	})

	base := findLine(t, r.Earnings, "Salário Proporcional (16 dias)")
	assert.InDelta(t, 1600, base.Amount, 1e-9)

	// Business days count only from the admission day onward.
	assert.Equal(t, 12, r.BusinessDays)
	assert.Equal(t, 0, r.AbsentDays)
}

func TestCompute_AdmissionAfterMonthIsZero(t *testing.T) {
	r := payroll.Compute(payroll.Input{
		BaseSalary:    3000,
		AdmissionDate: time.Date(2026, 5, 1, 0, 0, 0, 0, time.Local),
		Year:          2026,
		Month:         time.April,
		WorkedDays:    10,
	})

	assert.Empty(t, r.Earnings)
	assert.Empty(t, r.Deductions)
	assert.Zero(t, r.NetPay)
	assert.Zero(t, r.TotalEarnings)
}

func TestCompute_AbsencesWithDSR(t *testing.T) {
	// 22 business days, 18 worked, 1 justified: 3 unjustified absences.
	r := payroll.Compute(payroll.Input{
		BaseSalary:    3000,
		AdmissionDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		Year:          2026,
		Month:         time.March,
		WorkedDays:    18,
		JustifiedDays: 1,
	})

	assert.Equal(t, 3, r.AbsentDays)

	daily := 3000.0 / 30
	faltas := findLine(t, r.Deductions, "Faltas (3 dias)")
	assert.InDelta(t, daily*3, faltas.Amount, 1e-9)

	dsr := findLine(t, r.Deductions, "Desconto DSR s/ Faltas")
	assert.InDelta(t, daily*3, dsr.Amount, 1e-9)

	// The DSR loss joins the absence total: both reduce the INSS base.
	assert.InDelta(t, 3000-daily*6, r.INSSBase, 1e-9)
}

func TestCompute_DSRReducesINSSBaseAndVTCap(t *testing.T) {
	// 22 business days, 18 worked: 4 absences plus 4 DSR days lost, so the
	// salary actually earned this month is 3000 - 8*100 = 2200.
	r := payroll.Compute(payroll.Input{
		BaseSalary:    3000,
		AdmissionDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		Benefits: employee.Benefits{
			VT: &employee.DailyBenefit{DailyValue: 20},
		},
		Year:       2026,
		Month:      time.March,
		WorkedDays: 18,
	})

	assert.Equal(t, 4, r.AbsentDays)
	assert.InDelta(t, 2200, r.INSSBase, 1e-9)

	vtDiscount := findLine(t, r.Deductions, "Desconto VT (6%)")
	assert.InDelta(t, 2200*0.06, vtDiscount.Amount, 1e-9)
}

func TestCompute_DSRCappedBySundays(t *testing.T) {
	// Nobody clocked in all month: 22 absences, but March 2026 has only 5
	// Sundays to lose.
	r := payroll.Compute(payroll.Input{
		BaseSalary:    3000,
		AdmissionDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		Year:          2026,
		Month:         time.March,
	})

	assert.Equal(t, 22, r.AbsentDays)

	daily := 3000.0 / 30
	dsr := findLine(t, r.Deductions, "Desconto DSR s/ Faltas")
	assert.InDelta(t, daily*5, dsr.Amount, 1e-9)
	assert.InDelta(t, 3000-daily*27, r.INSSBase, 1e-9)
	assert.GreaterOrEqual(t, r.NetPay, 0.0)
}

func TestCompute_MealAndTransportVouchers(t *testing.T) {
	r := payroll.Compute(payroll.Input{
		BaseSalary:    3000,
		AdmissionDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		Benefits: employee.Benefits{
			VA: &employee.DailyBenefit{DailyValue: 25},
			VT: &employee.DailyBenefit{DailyValue: 12},
		},
		Year:       2026,
		Month:      time.March,
		WorkedDays: 22,
	})

	va := findLine(t, r.Earnings, "Vale Alimentação (VA)")
	assert.InDelta(t, 550, va.Amount, 1e-9)
	vaDiscount := findLine(t, r.Deductions, "Desconto VA (11%)")
	assert.InDelta(t, 550*0.11, vaDiscount.Amount, 1e-9)

	vt := findLine(t, r.Earnings, "Vale Transporte (VT)")
	assert.InDelta(t, 264, vt.Amount, 1e-9)
	// 6% of the salary (180) stays below the voucher total (264), so the
	// salary share applies uncapped.
	vtDiscount := findLine(t, r.Deductions, "Desconto VT (6%)")
	assert.InDelta(t, 180, vtDiscount.Amount, 1e-9)
}

func TestCompute_VTDiscountCappedByVoucherTotal(t *testing.T) {
	r := payroll.Compute(payroll.Input{
		BaseSalary:    5000,
		AdmissionDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		Benefits: employee.Benefits{
			VT: &employee.DailyBenefit{DailyValue: 10},
		},
		Year:       2026,
		Month:      time.March,
		WorkedDays: 22,
	})

	// 6% of 5000 is 300, above the 220 voucher total: cap at the total.
	vtDiscount := findLine(t, r.Deductions, "Desconto VT (6%)")
	assert.InDelta(t, 220, vtDiscount.Amount, 1e-9)
}

func TestCompute_HazardPayEntersINSSBase(t *testing.T) {
	r := payroll.Compute(payroll.Input{
		BaseSalary:    3000,
		AdmissionDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		Benefits: employee.Benefits{
			Periculosidade: &employee.PercentBenefit{Percentage: 30},
		},
		Year:       2026,
		Month:      time.March,
		WorkedDays: 22,
	})

	pericul := findLine(t, r.Earnings, "Periculosidade")
	assert.InDelta(t, 900, pericul.Amount, 1e-9)
	assert.InDelta(t, 3900, r.INSSBase, 1e-9)

	fgts := findLine(t, r.EmployerCharges, "FGTS (8%)")
	assert.InDelta(t, 312, fgts.Amount, 1e-9)
}

func TestCompute_ConvenioDeduction(t *testing.T) {
	r := payroll.Compute(payroll.Input{
		BaseSalary:        3000,
		AdmissionDate:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		Year:              2026,
		Month:             time.March,
		WorkedDays:        22,
		ConvenioDeduction: 150,
	})

	convenio := findLine(t, r.Deductions, "Desconto Convênio")
	assert.InDelta(t, 150, convenio.Amount, 1e-9)
}

func TestCompute_NetPayNeverNegative(t *testing.T) {
	r := payroll.Compute(payroll.Input{
		BaseSalary:        1412,
		AdmissionDate:     time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		Year:              2026,
		Month:             time.March,
		ConvenioDeduction: 2000,
	})

	assert.GreaterOrEqual(t, r.NetPay, 0.0)
}

func TestCompute_NoFGTSLineOnZeroBase(t *testing.T) {
	r := payroll.Compute(payroll.Input{
		AdmissionDate: time.Date(2025, 1, 10, 0, 0, 0, 0, time.Local),
		Year:          2026,
		Month:         time.March,
		WorkedDays:    22,
	})

	assert.Zero(t, r.INSSBase)
	assert.False(t, hasLine(r.EmployerCharges, "FGTS (8%)"))
}

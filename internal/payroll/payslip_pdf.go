package payroll

import (
	"bytes"
	"fmt"
	"time"

	"github.com/jung-kurt/gofpdf"
)

// renderPayslipPDF lays out the classic two-section payslip: earnings,
// deductions, then net pay and the employer FGTS charge.
func renderPayslipPDF(c Closing) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Holerite"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Funcionário: %s", c.EmployeeName)))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Competência: %s", monthLabel(c.Month))))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Dias trabalhados: %d    Faltas: %d", c.WorkedDays, c.AbsentDays)))
	pdf.Ln(10)

	section := func(title string, lines []Line) {
		pdf.SetFont("Helvetica", "B", 11)
		pdf.CellFormat(140, 7, tr(title), "1", 0, "L", false, 0, "")
		pdf.CellFormat(50, 7, tr("Valor"), "1", 1, "R", false, 0, "")
		pdf.SetFont("Helvetica", "", 10)
		for _, l := range lines {
			pdf.CellFormat(140, 6, tr(l.Label), "1", 0, "L", false, 0, "")
			pdf.CellFormat(50, 6, tr(FormatBRL(l.Amount)), "1", 1, "R", false, 0, "")
		}
	}

	section("Vencimentos", c.Result.Earnings)
	pdf.Ln(4)
	section("Descontos", c.Result.Deductions)
	pdf.Ln(6)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Líquido a receber: %s", FormatBRL(c.NetPay))))
	pdf.Ln(8)

	pdf.SetFont("Helvetica", "", 10)
	for _, charge := range c.Result.EmployerCharges {
		pdf.Cell(0, 6, tr(fmt.Sprintf("%s (encargo do empregador): %s", charge.Label, FormatBRL(charge.Amount))))
		pdf.Ln(5)
	}

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// monthLabel turns "2026-03" into "Março/2026".
func monthLabel(month string) string {
	t, err := time.Parse("2006-01", month)
	if err != nil {
		return month
	}
	names := [...]string{
		"Janeiro", "Fevereiro", "Março", "Abril", "Maio", "Junho",
		"Julho", "Agosto", "Setembro", "Outubro", "Novembro", "Dezembro",
	}
	return fmt.Sprintf("%s/%d", names[t.Month()-1], t.Year())
}

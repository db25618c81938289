package timebank

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
)

// renderReportPDF lays the statement out as a simple table, one row per
// included day.
func renderReportPDF(report MonthReport) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	tr := pdf.UnicodeTranslatorFromDescriptor("")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(0, 10, tr("Banco de Horas"))
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Funcionário: %s", report.EmployeeName)))
	pdf.Ln(7)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Competência: %s", report.Month)))
	pdf.Ln(10)

	pdf.SetFont("Helvetica", "B", 10)
	pdf.CellFormat(25, 7, tr("Data"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(32, 7, tr("Dia"), "1", 0, "L", false, 0, "")
	pdf.CellFormat(25, 7, tr("Trabalhado"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(25, 7, tr("Previsto"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(20, 7, tr("Saldo"), "1", 0, "R", false, 0, "")
	pdf.CellFormat(63, 7, tr("Observação"), "1", 1, "L", false, 0, "")

	pdf.SetFont("Helvetica", "", 10)
	for _, day := range report.Days {
		pdf.CellFormat(25, 6, day.Date, "1", 0, "L", false, 0, "")
		pdf.CellFormat(32, 6, tr(day.Weekday), "1", 0, "L", false, 0, "")
		pdf.CellFormat(25, 6, formatClock(day.WorkedMinutes), "1", 0, "R", false, 0, "")
		pdf.CellFormat(25, 6, formatClock(day.ExpectedMinutes), "1", 0, "R", false, 0, "")
		pdf.CellFormat(20, 6, FormatMinutes(day.BalanceMinutes), "1", 0, "R", false, 0, "")
		pdf.CellFormat(63, 6, tr(day.Observation), "1", 1, "L", false, 0, "")
	}

	pdf.Ln(4)
	pdf.SetFont("Helvetica", "B", 11)
	pdf.Cell(0, 8, tr(fmt.Sprintf("Saldo do mês: %s", FormatMinutes(report.TotalBalanceMinutes))))

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func formatClock(minutes int) string {
	return fmt.Sprintf("%dh%02d", minutes/60, minutes%60)
}

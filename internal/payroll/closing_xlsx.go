package payroll

import (
	"bytes"
	"fmt"

	"github.com/xuri/excelize/v2"
)

// renderClosingXLSX exports one month's closing as a spreadsheet, one row
// per employee plus a totals row.
func renderClosingXLSX(month string, closings []Closing) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := "Fechamento"
	f.SetSheetName("Sheet1", sheet)

	headers := []string{
		"Funcionário", "Competência", "Status",
		"Dias Trabalhados", "Faltas",
		"Total Vencimentos", "Total Descontos", "Líquido",
	}
	for i, h := range headers {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, h); err != nil {
			return nil, err
		}
	}

	var totalEarnings, totalDeductions, totalNet float64
	for row, c := range closings {
		values := []interface{}{
			c.EmployeeName, c.Month, c.Status,
			c.WorkedDays, c.AbsentDays,
			c.TotalEarnings, c.TotalDeductions, c.NetPay,
		}
		for col, v := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return nil, err
			}
			if err := f.SetCellValue(sheet, cell, v); err != nil {
				return nil, err
			}
		}
		totalEarnings += c.TotalEarnings
		totalDeductions += c.TotalDeductions
		totalNet += c.NetPay
	}

	totalsRow := len(closings) + 2
	totals := map[int]interface{}{
		1: fmt.Sprintf("Total (%s)", month),
		6: totalEarnings,
		7: totalDeductions,
		8: totalNet,
	}
	for col, v := range totals {
		cell, err := excelize.CoordinatesToCellName(col, totalsRow)
		if err != nil {
			return nil, err
		}
		if err := f.SetCellValue(sheet, cell, v); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

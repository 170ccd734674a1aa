package report

import (
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/FACorreiaa/statement-parser/internal/domain/statement"
	"github.com/FACorreiaa/statement-parser/pkg/money"
)

const sheetName = "Statements"

var excelHeaders = []string{
	"Source File", "Issuer", "Cardholder Name", "Card Last 4",
	"Statement Date", "Payment Due Date", "Total Balance", "Minimum Due", "Error",
}

// WriteExcel writes the records as an XLSX workbook with one summary sheet.
// Amounts are rendered as INR display strings.
func WriteExcel(path string, records []statement.Record) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	f.DeleteSheet("Sheet1")

	for col, header := range excelHeaders {
		cell, err := excelize.CoordinatesToCellName(col+1, 1)
		if err != nil {
			return fmt.Errorf("failed to address header cell: %w", err)
		}
		if err := f.SetCellValue(sheetName, cell, header); err != nil {
			return fmt.Errorf("failed to write header: %w", err)
		}
	}

	for row, rec := range records {
		values := []interface{}{
			rec.SourceFile,
			rec.Issuer,
			rec.CardholderName,
			rec.CardLast4,
			rec.StatementDate,
			rec.PaymentDueDate,
			displayAmount(rec.TotalBalance),
			displayAmount(rec.MinimumDue),
			rec.Error,
		}
		for col, value := range values {
			cell, err := excelize.CoordinatesToCellName(col+1, row+2)
			if err != nil {
				return fmt.Errorf("failed to address cell: %w", err)
			}
			if err := f.SetCellValue(sheetName, cell, value); err != nil {
				return fmt.Errorf("failed to write row %d: %w", row+2, err)
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("failed to save XLSX report: %w", err)
	}
	return nil
}

func displayAmount(a *statement.Amount) string {
	if a == nil {
		return ""
	}
	m, err := money.NewFromString(a.Formatted, money.INR)
	if err != nil {
		return a.Formatted
	}
	return m.Display()
}

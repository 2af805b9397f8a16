package service

import (
	"fmt"

	"github.com/balihai/hoa-api/internal/domain/enum"
	"github.com/xuri/excelize/v2"
)

// ExportXLSX renders a report as an Excel workbook and returns the file
// contents
func (s *ReportService) ExportXLSX(report *Report) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)

	switch report.Type {
	case enum.ReportTypeFinancialSummary:
		writeFinancialSummarySheet(f, sheet, report)
	case enum.ReportTypeCollection:
		writeCollectionSheet(f, sheet, report)
	case enum.ReportTypeExpense:
		writeExpenseSheet(f, sheet, report)
	case enum.ReportTypeCustomerLedger:
		writeLedgerSheet(f, sheet, report)
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

func writeFinancialSummarySheet(f *excelize.File, sheet string, report *Report) {
	payload := report.FinancialSummary

	f.SetCellValue(sheet, "A1", "Financial Summary")
	f.SetCellValue(sheet, "A2", periodLabel(report))

	rows := [][2]interface{}{
		{"Total Billed", payload.TotalBilled},
		{"Total Collected", payload.TotalCollected},
		{"Total Penalties", payload.TotalPenalties},
		{"Total Expenses", payload.TotalExpenses},
		{"Net Income", payload.NetIncome},
	}
	for i, row := range rows {
		f.SetCellValue(sheet, fmt.Sprintf("A%d", i+4), row[0])
		f.SetCellValue(sheet, fmt.Sprintf("B%d", i+4), row[1])
	}
}

func writeCollectionSheet(f *excelize.File, sheet string, report *Report) {
	payload := report.Collection

	f.SetCellValue(sheet, "A1", "Collection Report")
	f.SetCellValue(sheet, "A2", periodLabel(report))

	headers := []string{"Date", "Resident", "Reference No", "Method", "Charge Type", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, header)
	}

	for i, row := range payload.Rows {
		rowNum := i + 5
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.PaymentDate.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.ResidentName)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.ReferenceNumber)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), row.PaymentMethod.String())
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), row.InvoiceType.String())
		f.SetCellValue(sheet, fmt.Sprintf("F%d", rowNum), row.Amount)
	}

	totalRow := len(payload.Rows) + 6
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("F%d", totalRow), payload.TotalCollected)
}

func writeExpenseSheet(f *excelize.File, sheet string, report *Report) {
	payload := report.Expense

	f.SetCellValue(sheet, "A1", "Expense Report")
	f.SetCellValue(sheet, "A2", periodLabel(report))

	headers := []string{"Date", "Category", "Description", "Paid To", "Amount"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, header)
	}

	for i, row := range payload.Rows {
		rowNum := i + 5
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.ExpenseDate.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.Category.String())
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.Description)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), row.PaidTo)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), row.Amount)
	}

	totalRow := len(payload.Rows) + 6
	f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), "Total")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), payload.TotalExpenses)
}

func writeLedgerSheet(f *excelize.File, sheet string, report *Report) {
	payload := report.CustomerLedger

	f.SetCellValue(sheet, "A1", "Customer Ledger")
	f.SetCellValue(sheet, "A2", payload.ResidentName)

	headers := []string{"Date", "Particulars", "Charge", "Payment", "Balance"}
	for i, header := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 4)
		f.SetCellValue(sheet, cell, header)
	}

	for i, row := range payload.Rows {
		rowNum := i + 5
		f.SetCellValue(sheet, fmt.Sprintf("A%d", rowNum), row.Date.Format("2006-01-02"))
		f.SetCellValue(sheet, fmt.Sprintf("B%d", rowNum), row.Particulars)
		f.SetCellValue(sheet, fmt.Sprintf("C%d", rowNum), row.Charge)
		f.SetCellValue(sheet, fmt.Sprintf("D%d", rowNum), row.Payment)
		f.SetCellValue(sheet, fmt.Sprintf("E%d", rowNum), row.Balance)
	}

	totalRow := len(payload.Rows) + 6
	f.SetCellValue(sheet, fmt.Sprintf("D%d", totalRow), "Ending Balance")
	f.SetCellValue(sheet, fmt.Sprintf("E%d", totalRow), payload.EndingBalance)
}

func periodLabel(report *Report) string {
	return report.From.Format("2006-01-02") + " to " + report.To.Format("2006-01-02")
}

package enum

// ReportType selects which report kind to generate. Reports are derived on
// demand and never persisted, so the type only travels on the wire.
type ReportType string

const (
	ReportTypeFinancialSummary ReportType = "financial_summary"
	ReportTypeCollection       ReportType = "collection_report"
	ReportTypeExpense          ReportType = "expense_report"
	ReportTypeCustomerLedger   ReportType = "customer_ledger"
)

// IsValid reports whether the value names a known report kind
func (t ReportType) IsValid() bool {
	switch t {
	case ReportTypeFinancialSummary, ReportTypeCollection, ReportTypeExpense, ReportTypeCustomerLedger:
		return true
	}
	return false
}

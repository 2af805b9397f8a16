package enum

// Parse helpers for query-string filters, where values arrive as bare
// strings rather than JSON.

// ParseResidentStatus maps a wire string to a ResidentStatus
func ParseResidentStatus(s string) (ResidentStatus, bool) {
	switch s {
	case "good_standing":
		return ResidentStatusGoodStanding, true
	case "delinquent":
		return ResidentStatusDelinquent, true
	}
	return ResidentStatusGoodStanding, false
}

// ParseResidentType maps a wire string to a ResidentType
func ParseResidentType(s string) (ResidentType, bool) {
	switch s {
	case "homeowner":
		return ResidentTypeHomeowner, true
	case "tenant":
		return ResidentTypeTenant, true
	case "lot_owner":
		return ResidentTypeLotOwner, true
	}
	return ResidentTypeHomeowner, false
}

// ParseInvoiceStatus maps a wire string to an InvoiceStatus
func ParseInvoiceStatus(s string) (InvoiceStatus, bool) {
	switch s {
	case "unpaid":
		return InvoiceStatusUnpaid, true
	case "partial":
		return InvoiceStatusPartial, true
	case "paid":
		return InvoiceStatusPaid, true
	case "overdue":
		return InvoiceStatusOverdue, true
	case "pending_approval":
		return InvoiceStatusPendingApproval, true
	}
	return InvoiceStatusUnpaid, false
}

// ParseTransactionStatus maps a wire string to a TransactionStatus
func ParseTransactionStatus(s string) (TransactionStatus, bool) {
	switch s {
	case "pending":
		return TransactionStatusPending, true
	case "completed":
		return TransactionStatusCompleted, true
	case "rejected":
		return TransactionStatusRejected, true
	}
	return TransactionStatusPending, false
}

// ParseExpenseCategory maps a wire string to an ExpenseCategory
func ParseExpenseCategory(s string) (ExpenseCategory, bool) {
	switch s {
	case "maintenance":
		return ExpenseCategoryMaintenance, true
	case "utilities":
		return ExpenseCategoryUtilities, true
	case "salaries":
		return ExpenseCategorySalaries, true
	case "supplies":
		return ExpenseCategorySupplies, true
	case "other":
		return ExpenseCategoryOther, true
	}
	return ExpenseCategoryOther, false
}

// ParseComplaintStatus maps a wire string to a ComplaintStatus
func ParseComplaintStatus(s string) (ComplaintStatus, bool) {
	switch s {
	case "pending":
		return ComplaintStatusPending, true
	case "in_progress":
		return ComplaintStatusInProgress, true
	case "resolved":
		return ComplaintStatusResolved, true
	case "rejected":
		return ComplaintStatusRejected, true
	}
	return ComplaintStatusPending, false
}

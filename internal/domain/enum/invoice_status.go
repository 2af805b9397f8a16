package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceStatus represents the lifecycle status of an invoice
type InvoiceStatus int

const (
	InvoiceStatusUnpaid InvoiceStatus = iota
	InvoiceStatusPartial
	InvoiceStatusPaid
	InvoiceStatusOverdue
	InvoiceStatusPendingApproval
)

func (s InvoiceStatus) String() string {
	return [...]string{"unpaid", "partial", "paid", "overdue", "pending_approval"}[s]
}

func (s InvoiceStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *InvoiceStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = InvoiceStatus(i)
		return nil
	}
	switch str {
	case "unpaid":
		*s = InvoiceStatusUnpaid
	case "partial":
		*s = InvoiceStatusPartial
	case "paid":
		*s = InvoiceStatusPaid
	case "overdue":
		*s = InvoiceStatusOverdue
	case "pending_approval":
		*s = InvoiceStatusPendingApproval
	}
	return nil
}

func (s InvoiceStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *InvoiceStatus) Scan(value interface{}) error {
	if value == nil {
		*s = InvoiceStatusUnpaid
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = InvoiceStatus(v)
	case int:
		*s = InvoiceStatus(v)
	}
	return nil
}

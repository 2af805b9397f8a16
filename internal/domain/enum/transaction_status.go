package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// TransactionStatus represents the review status of a payment transaction.
// A pending transaction transitions exactly once, to completed or rejected;
// both outcomes are terminal.
type TransactionStatus int

const (
	TransactionStatusPending TransactionStatus = iota
	TransactionStatusCompleted
	TransactionStatusRejected
)

func (s TransactionStatus) String() string {
	return [...]string{"pending", "completed", "rejected"}[s]
}

// IsTerminal reports whether no further status transition is allowed
func (s TransactionStatus) IsTerminal() bool {
	return s == TransactionStatusCompleted || s == TransactionStatusRejected
}

func (s TransactionStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *TransactionStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = TransactionStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = TransactionStatusPending
	case "completed":
		*s = TransactionStatusCompleted
	case "rejected":
		*s = TransactionStatusRejected
	}
	return nil
}

func (s TransactionStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *TransactionStatus) Scan(value interface{}) error {
	if value == nil {
		*s = TransactionStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = TransactionStatus(v)
	case int:
		*s = TransactionStatus(v)
	}
	return nil
}

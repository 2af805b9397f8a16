package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ComplaintStatus represents the handling status of a complaint ticket
type ComplaintStatus int

const (
	ComplaintStatusPending ComplaintStatus = iota
	ComplaintStatusInProgress
	ComplaintStatusResolved
	ComplaintStatusRejected
)

func (s ComplaintStatus) String() string {
	return [...]string{"pending", "in_progress", "resolved", "rejected"}[s]
}

func (s ComplaintStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ComplaintStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ComplaintStatus(i)
		return nil
	}
	switch str {
	case "pending":
		*s = ComplaintStatusPending
	case "in_progress":
		*s = ComplaintStatusInProgress
	case "resolved":
		*s = ComplaintStatusResolved
	case "rejected":
		*s = ComplaintStatusRejected
	}
	return nil
}

func (s ComplaintStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ComplaintStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ComplaintStatusPending
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ComplaintStatus(v)
	case int:
		*s = ComplaintStatus(v)
	}
	return nil
}

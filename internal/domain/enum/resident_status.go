package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ResidentStatus represents a resident's standing with the association.
// Delinquency drives penalty computation at invoice-creation time only.
type ResidentStatus int

const (
	ResidentStatusGoodStanding ResidentStatus = iota
	ResidentStatusDelinquent
)

func (s ResidentStatus) String() string {
	return [...]string{"good_standing", "delinquent"}[s]
}

func (s ResidentStatus) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

func (s *ResidentStatus) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*s = ResidentStatus(i)
		return nil
	}
	switch str {
	case "good_standing":
		*s = ResidentStatusGoodStanding
	case "delinquent":
		*s = ResidentStatusDelinquent
	}
	return nil
}

func (s ResidentStatus) Value() (driver.Value, error) {
	return int64(s), nil
}

func (s *ResidentStatus) Scan(value interface{}) error {
	if value == nil {
		*s = ResidentStatusGoodStanding
		return nil
	}
	switch v := value.(type) {
	case int64:
		*s = ResidentStatus(v)
	case int:
		*s = ResidentStatus(v)
	}
	return nil
}

package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ResidentType represents a resident's relationship to their unit
type ResidentType int

const (
	ResidentTypeHomeowner ResidentType = iota
	ResidentTypeTenant
	ResidentTypeLotOwner
)

func (t ResidentType) String() string {
	return [...]string{"homeowner", "tenant", "lot_owner"}[t]
}

func (t ResidentType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ResidentType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = ResidentType(i)
		return nil
	}
	switch str {
	case "homeowner":
		*t = ResidentTypeHomeowner
	case "tenant":
		*t = ResidentTypeTenant
	case "lot_owner":
		*t = ResidentTypeLotOwner
	}
	return nil
}

func (t ResidentType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *ResidentType) Scan(value interface{}) error {
	if value == nil {
		*t = ResidentTypeHomeowner
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = ResidentType(v)
	case int:
		*t = ResidentType(v)
	}
	return nil
}

package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ComplaintType distinguishes complaints from service requests and incidents
type ComplaintType int

const (
	ComplaintTypeComplaint ComplaintType = iota
	ComplaintTypeServiceRequest
	ComplaintTypeIncidentReport
)

func (t ComplaintType) String() string {
	return [...]string{"complaint", "service_request", "incident_report"}[t]
}

func (t ComplaintType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *ComplaintType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = ComplaintType(i)
		return nil
	}
	switch str {
	case "service_request":
		*t = ComplaintTypeServiceRequest
	case "incident_report":
		*t = ComplaintTypeIncidentReport
	default:
		*t = ComplaintTypeComplaint
	}
	return nil
}

func (t ComplaintType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *ComplaintType) Scan(value interface{}) error {
	if value == nil {
		*t = ComplaintTypeComplaint
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = ComplaintType(v)
	case int:
		*t = ComplaintType(v)
	}
	return nil
}

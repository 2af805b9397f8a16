package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// AnnouncementPriority represents how urgently an announcement is flagged
type AnnouncementPriority int

const (
	AnnouncementPriorityNormal AnnouncementPriority = iota
	AnnouncementPriorityHigh
	AnnouncementPriorityUrgent
)

func (p AnnouncementPriority) String() string {
	return [...]string{"normal", "high", "urgent"}[p]
}

func (p AnnouncementPriority) MarshalJSON() ([]byte, error) {
	return json.Marshal(p.String())
}

func (p *AnnouncementPriority) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*p = AnnouncementPriority(i)
		return nil
	}
	switch str {
	case "high":
		*p = AnnouncementPriorityHigh
	case "urgent":
		*p = AnnouncementPriorityUrgent
	default:
		*p = AnnouncementPriorityNormal
	}
	return nil
}

func (p AnnouncementPriority) Value() (driver.Value, error) {
	return int64(p), nil
}

func (p *AnnouncementPriority) Scan(value interface{}) error {
	if value == nil {
		*p = AnnouncementPriorityNormal
		return nil
	}
	switch v := value.(type) {
	case int64:
		*p = AnnouncementPriority(v)
	case int:
		*p = AnnouncementPriority(v)
	}
	return nil
}

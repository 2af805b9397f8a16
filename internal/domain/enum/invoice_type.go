package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// InvoiceType represents the kind of charge an invoice bills for
type InvoiceType int

const (
	InvoiceTypeMonthlyDues InvoiceType = iota
	InvoiceTypeStickerFee
	InvoiceTypeVenueRental
	InvoiceTypeOther
)

func (t InvoiceType) String() string {
	return [...]string{"monthly_dues", "sticker_fee", "venue_rental", "other"}[t]
}

func (t InvoiceType) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

func (t *InvoiceType) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*t = InvoiceType(i)
		return nil
	}
	switch str {
	case "monthly_dues":
		*t = InvoiceTypeMonthlyDues
	case "sticker_fee":
		*t = InvoiceTypeStickerFee
	case "venue_rental":
		*t = InvoiceTypeVenueRental
	case "other":
		*t = InvoiceTypeOther
	}
	return nil
}

func (t InvoiceType) Value() (driver.Value, error) {
	return int64(t), nil
}

func (t *InvoiceType) Scan(value interface{}) error {
	if value == nil {
		*t = InvoiceTypeMonthlyDues
		return nil
	}
	switch v := value.(type) {
	case int64:
		*t = InvoiceType(v)
	case int:
		*t = InvoiceType(v)
	}
	return nil
}

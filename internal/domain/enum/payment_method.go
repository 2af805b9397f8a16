package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaymentMethod represents how a payment was made
type PaymentMethod int

const (
	PaymentMethodCash PaymentMethod = iota
	PaymentMethodBankTransfer
	PaymentMethodGCash
	PaymentMethodOracleProcess
)

func (m PaymentMethod) String() string {
	return [...]string{"cash", "bank_transfer", "gcash", "oracle_process"}[m]
}

func (m PaymentMethod) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

func (m *PaymentMethod) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*m = PaymentMethod(i)
		return nil
	}
	*m = ParsePaymentMethod(str)
	return nil
}

// ParsePaymentMethod maps a wire string to a PaymentMethod, defaulting to cash
func ParsePaymentMethod(s string) PaymentMethod {
	switch s {
	case "bank_transfer":
		return PaymentMethodBankTransfer
	case "gcash":
		return PaymentMethodGCash
	case "oracle_process":
		return PaymentMethodOracleProcess
	default:
		return PaymentMethodCash
	}
}

func (m PaymentMethod) Value() (driver.Value, error) {
	return int64(m), nil
}

func (m *PaymentMethod) Scan(value interface{}) error {
	if value == nil {
		*m = PaymentMethodCash
		return nil
	}
	switch v := value.(type) {
	case int64:
		*m = PaymentMethod(v)
	case int:
		*m = PaymentMethod(v)
	}
	return nil
}

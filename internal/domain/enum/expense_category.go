package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// ExpenseCategory classifies an association expense
type ExpenseCategory int

const (
	ExpenseCategoryMaintenance ExpenseCategory = iota
	ExpenseCategoryUtilities
	ExpenseCategorySalaries
	ExpenseCategorySupplies
	ExpenseCategoryOther
)

func (c ExpenseCategory) String() string {
	return [...]string{"maintenance", "utilities", "salaries", "supplies", "other"}[c]
}

func (c ExpenseCategory) MarshalJSON() ([]byte, error) {
	return json.Marshal(c.String())
}

func (c *ExpenseCategory) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*c = ExpenseCategory(i)
		return nil
	}
	switch str {
	case "maintenance":
		*c = ExpenseCategoryMaintenance
	case "utilities":
		*c = ExpenseCategoryUtilities
	case "salaries":
		*c = ExpenseCategorySalaries
	case "supplies":
		*c = ExpenseCategorySupplies
	default:
		*c = ExpenseCategoryOther
	}
	return nil
}

func (c ExpenseCategory) Value() (driver.Value, error) {
	return int64(c), nil
}

func (c *ExpenseCategory) Scan(value interface{}) error {
	if value == nil {
		*c = ExpenseCategoryOther
		return nil
	}
	switch v := value.(type) {
	case int64:
		*c = ExpenseCategory(v)
	case int:
		*c = ExpenseCategory(v)
	}
	return nil
}

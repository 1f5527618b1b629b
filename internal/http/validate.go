package http

import (
	"fmt"
	"strconv"
	"strings"

	"khata/internal/core"
)

// FieldErrors maps a field name to the list of problems found with it.
type FieldErrors map[string][]string

func (fe FieldErrors) add(field, msg string) {
	fe[field] = append(fe[field], msg)
}

// stringField extracts a trimmed string value from the submitted data map.
func stringField(data map[string]any, key string) string {
	v, ok := data[key]
	if !ok || v == nil {
		return ""
	}
	switch s := v.(type) {
	case string:
		return strings.TrimSpace(s)
	case float64:
		return strconv.FormatFloat(s, 'f', -1, 64)
	default:
		return strings.TrimSpace(fmt.Sprintf("%v", s))
	}
}

// numberField coerces a submitted value to a float. Forms post numbers as
// strings, JSON clients post them as numbers; both are accepted.
func numberField(data map[string]any, key string) (float64, bool) {
	v, ok := data[key]
	if !ok || v == nil {
		return 0, false
	}
	switch n := v.(type) {
	case float64:
		return n, true
	case string:
		trimmed := strings.TrimSpace(n)
		if trimmed == "" {
			return 0, false
		}
		f, err := strconv.ParseFloat(trimmed, 64)
		if err != nil {
			return 0, false
		}
		return f, true
	default:
		return 0, false
	}
}

// validateExpense checks an expense submission and builds the stored row.
// Description is optional and defaults to a general bucket.
func validateExpense(data map[string]any) (core.ExpenseRow, FieldErrors) {
	errs := make(FieldErrors)

	date := stringField(data, "date")
	if date == "" {
		errs.add("date", "Date is required")
	}

	category := stringField(data, "category")
	if category == "" {
		errs.add("category", "Category is required")
	}

	amount, ok := numberField(data, "amount")
	if !ok {
		errs.add("amount", "Amount must be a number")
	} else if amount <= 0 {
		errs.add("amount", "Amount must be greater than zero")
	}

	if len(errs) > 0 {
		return core.ExpenseRow{}, errs
	}

	return core.ExpenseRow{
		Date:        date,
		Category:    category,
		Description: stringField(data, "description"),
		Amount:      strconv.FormatFloat(amount, 'f', -1, 64),
	}, nil
}

// validateSale checks a sales submission and builds the stored row.
// The posted totalAmount is stored as-is, consistency with
// quantity*unitPrice is not enforced.
func validateSale(data map[string]any) (core.SaleRow, FieldErrors) {
	errs := make(FieldErrors)

	date := stringField(data, "date")
	if date == "" {
		errs.add("date", "Date is required")
	}

	customer := stringField(data, "customer")
	if customer == "" {
		errs.add("customer", "Customer is required")
	}

	quantity, ok := numberField(data, "quantity")
	if !ok {
		errs.add("quantity", "Quantity must be a number")
	} else if quantity <= 0 {
		errs.add("quantity", "Quantity must be greater than zero")
	}

	unitPrice, ok := numberField(data, "unitPrice")
	if !ok {
		errs.add("unitPrice", "Unit price must be a number")
	} else if unitPrice <= 0 {
		errs.add("unitPrice", "Unit price must be greater than zero")
	}

	totalAmount, ok := numberField(data, "totalAmount")
	if !ok {
		errs.add("totalAmount", "Total amount must be a number")
	} else if totalAmount <= 0 {
		errs.add("totalAmount", "Total amount must be greater than zero")
	}

	if len(errs) > 0 {
		return core.SaleRow{}, errs
	}

	return core.SaleRow{
		Date:        date,
		Customer:    customer,
		Quantity:    strconv.FormatFloat(quantity, 'f', -1, 64),
		UnitPrice:   strconv.FormatFloat(unitPrice, 'f', -1, 64),
		TotalAmount: strconv.FormatFloat(totalAmount, 'f', -1, 64),
	}, nil
}

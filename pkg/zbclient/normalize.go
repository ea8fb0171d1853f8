// zbclient/normalize.go
package zbclient

import (
	"fmt"
	"math"
	"strconv"
	"strings"
	"time"
)

// Expense is the canonical expense shape this layer returns regardless of
// how the upstream record spells its fields.
type Expense struct {
	ExpenseID       string  `json:"expense_id"`
	VendorName      string  `json:"vendor_name"`
	Amount          float64 `json:"amount"`
	ExpenseDate     string  `json:"expense_date"`
	Status          string  `json:"status"`
	ReferenceNumber string  `json:"reference_number,omitempty"`
	CustomerName    string  `json:"customer_name,omitempty"`
	PaymentMethod   string  `json:"payment_method,omitempty"`
	AccountName     string  `json:"account_name,omitempty"`
	AccountID       string  `json:"account_id,omitempty"`
	CurrencyCode    string  `json:"currency_code,omitempty"`
}

// Field coalescing is expressed as ordered candidate lists, applied
// first-match-wins.
var (
	expenseIDFields  = []string{"expense_id", "id"}
	vendorNameFields = []string{"vendor_name", "vendor"}
	amountFields     = []string{"amount", "total"}
	dateFields       = []string{"date", "expense_date"}
	statusFields     = []string{"status", "expense_status"}
)

const (
	defaultVendorName    = "Unknown Vendor"
	defaultExpenseStatus = "nonbillable"
)

// NormalizeExpenses coerces a raw upstream expense list into the canonical
// shape. The transformation is total and order-preserving: it never fails,
// whatever the input records look like.
func NormalizeExpenses(raw []map[string]interface{}) []Expense {
	return normalizeExpensesAt(raw, time.Now())
}

func normalizeExpensesAt(raw []map[string]interface{}, now time.Time) []Expense {
	out := make([]Expense, 0, len(raw))
	for i, record := range raw {
		out = append(out, normalizeExpense(record, i, now))
	}
	return out
}

func normalizeExpense(raw map[string]interface{}, position int, now time.Time) Expense {
	e := Expense{
		ExpenseID:   firstString(raw, expenseIDFields),
		VendorName:  firstString(raw, vendorNameFields),
		Amount:      coalesceAmount(raw, amountFields),
		ExpenseDate: firstString(raw, dateFields),
		Status:      strings.ToLower(firstString(raw, statusFields)),
	}

	// Synthesized identifiers are unique but not stable across repeated
	// fetches; upstream records normally carry one of the id spellings.
	if e.ExpenseID == "" {
		e.ExpenseID = fmt.Sprintf("expense-%d-%d", position, now.UnixNano())
	}
	if e.VendorName == "" {
		e.VendorName = defaultVendorName
	}
	if e.ExpenseDate == "" {
		e.ExpenseDate = now.Format("2006-01-02")
	}
	if e.Status == "" {
		e.Status = defaultExpenseStatus
	}

	e.ReferenceNumber = stringField(raw, "reference_number")
	e.CustomerName = stringField(raw, "customer_name")
	e.PaymentMethod = stringField(raw, "payment_method")
	e.CurrencyCode = stringField(raw, "currency_code")

	// Account may arrive as a nested object or flat fields
	if account, ok := raw["account"].(map[string]interface{}); ok {
		e.AccountName = stringField(account, "account_name")
		e.AccountID = stringField(account, "account_id")
	}
	if e.AccountName == "" {
		e.AccountName = stringField(raw, "account_name")
	}
	if e.AccountID == "" {
		e.AccountID = stringField(raw, "account_id")
	}

	return e
}

// firstString returns the first non-blank string value among the candidate
// fields. Numeric values are rendered as strings so numeric ids survive.
func firstString(raw map[string]interface{}, fields []string) string {
	for _, field := range fields {
		switch v := raw[field].(type) {
		case string:
			if strings.TrimSpace(v) != "" {
				return strings.TrimSpace(v)
			}
		case float64:
			return strconv.FormatFloat(v, 'f', -1, 64)
		}
	}
	return ""
}

// coalesceAmount accepts a positive numeric value from the candidate
// fields, falls back to parsing a string value, and otherwise yields 0.
// The result is never negative and never NaN.
func coalesceAmount(raw map[string]interface{}, fields []string) float64 {
	for _, field := range fields {
		if v, ok := raw[field].(float64); ok && v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
			return v
		}
	}
	for _, field := range fields {
		if s, ok := raw[field].(string); ok {
			if v, err := strconv.ParseFloat(strings.TrimSpace(s), 64); err == nil && v > 0 && !math.IsNaN(v) && !math.IsInf(v, 0) {
				return v
			}
		}
	}
	return 0
}

func stringField(raw map[string]interface{}, field string) string {
	s, _ := raw[field].(string)
	return s
}

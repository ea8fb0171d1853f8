package zbclient

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestNormalizeExpenseTotality(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	expenses := normalizeExpensesAt([]map[string]interface{}{{}}, now)
	require.Len(t, expenses, 1)

	e := expenses[0]
	require.NotEmpty(t, e.ExpenseID)
	require.Equal(t, "Unknown Vendor", e.VendorName)
	require.Equal(t, 0.0, e.Amount)
	require.Equal(t, "2026-03-01", e.ExpenseDate)
	require.Equal(t, "nonbillable", e.Status)
}

func TestNormalizeExpenseScenario(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	raw := []map[string]interface{}{
		{"amount": "12.50", "vendor": "Acme", "date": "2024-01-05"},
	}

	expenses := normalizeExpensesAt(raw, now)
	require.Len(t, expenses, 1)

	e := expenses[0]
	require.Equal(t, 12.5, e.Amount)
	require.Equal(t, "Acme", e.VendorName)
	require.Equal(t, "2024-01-05", e.ExpenseDate)
	require.Equal(t, "nonbillable", e.Status)
}

func TestNormalizeAmountRules(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name string
		raw  map[string]interface{}
		want float64
	}{
		{"positive numeric amount", map[string]interface{}{"amount": 42.0}, 42.0},
		{"positive numeric total fallback", map[string]interface{}{"total": 19.99}, 19.99},
		{"negative numeric rejected", map[string]interface{}{"amount": -5.0}, 0},
		{"zero rejected", map[string]interface{}{"amount": 0.0}, 0},
		{"string parse", map[string]interface{}{"amount": "7.25"}, 7.25},
		{"negative string rejected", map[string]interface{}{"amount": "-7.25"}, 0},
		{"garbage string rejected", map[string]interface{}{"amount": "about ten"}, 0},
		{"numeric preferred over string total", map[string]interface{}{"amount": "3.50", "total": 8.0}, 8.0},
		{"missing entirely", map[string]interface{}{}, 0},
	}

	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			e := normalizeExpense(tt.raw, 0, now)
			require.Equal(t, tt.want, e.Amount)
			require.GreaterOrEqual(t, e.Amount, 0.0)
		})
	}
}

func TestNormalizeStatusAndVendorFallbacks(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	e := normalizeExpense(map[string]interface{}{
		"expense_status": "Billable",
		"vendor_name":    "Prime Supplies",
	}, 0, now)
	require.Equal(t, "billable", e.Status)
	require.Equal(t, "Prime Supplies", e.VendorName)

	e = normalizeExpense(map[string]interface{}{
		"status": "UNBILLED",
		"vendor": "Fallback Vendor",
	}, 0, now)
	require.Equal(t, "unbilled", e.Status)
	require.Equal(t, "Fallback Vendor", e.VendorName)
}

func TestNormalizeAccountShapes(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	nested := normalizeExpense(map[string]interface{}{
		"account": map[string]interface{}{
			"account_name": "Office Supplies",
			"account_id":   "acc-7",
		},
	}, 0, now)
	require.Equal(t, "Office Supplies", nested.AccountName)
	require.Equal(t, "acc-7", nested.AccountID)

	flat := normalizeExpense(map[string]interface{}{
		"account_name": "Travel",
		"account_id":   "acc-9",
	}, 0, now)
	require.Equal(t, "Travel", flat.AccountName)
	require.Equal(t, "acc-9", flat.AccountID)
}

// Synthesized identifiers are unique but not stable between fetches. The
// instability must stay confined to the id fallback branch.
func TestNormalizeSynthesizedIDInstability(t *testing.T) {
	t.Parallel()

	raw := []map[string]interface{}{
		{"amount": 10.0, "date": "2024-02-01", "status": "billable"},
	}

	first := normalizeExpensesAt(raw, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	second := normalizeExpensesAt(raw, time.Date(2026, 3, 1, 12, 0, 1, 0, time.UTC))

	require.NotEqual(t, first[0].ExpenseID, second[0].ExpenseID)
	require.Equal(t, first[0].Amount, second[0].Amount)
	require.Equal(t, first[0].Status, second[0].Status)
	require.Equal(t, first[0].ExpenseDate, second[0].ExpenseDate)
	require.Equal(t, first[0].VendorName, second[0].VendorName)
}

func TestNormalizeStableIDBranch(t *testing.T) {
	t.Parallel()

	raw := []map[string]interface{}{
		{"expense_id": "exp-1", "amount": 5.0},
		{"id": "exp-2", "amount": 6.0},
	}

	first := normalizeExpensesAt(raw, time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC))
	second := normalizeExpensesAt(raw, time.Date(2026, 3, 1, 12, 0, 5, 0, time.UTC))

	require.Equal(t, "exp-1", first[0].ExpenseID)
	require.Equal(t, "exp-2", first[1].ExpenseID)
	require.Equal(t, first[0].ExpenseID, second[0].ExpenseID)
	require.Equal(t, first[1].ExpenseID, second[1].ExpenseID)
}

func TestNormalizeOrderPreserving(t *testing.T) {
	t.Parallel()

	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
	raw := []map[string]interface{}{
		{"expense_id": "a"},
		{"expense_id": "b"},
		{"expense_id": "c"},
	}

	expenses := normalizeExpensesAt(raw, now)
	require.Equal(t, []string{"a", "b", "c"}, []string{
		expenses[0].ExpenseID, expenses[1].ExpenseID, expenses[2].ExpenseID,
	})
}

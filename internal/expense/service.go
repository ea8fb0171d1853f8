// expense/service.go
package expense

import (
	"context"
	"encoding/json"

	"github.com/ledgerbeam/zbserver/pkg/zbclient"
)

// Service exposes expense operations backed by the Zoho Books client.
// List results come back normalized into the canonical expense shape.
type Service struct {
	client *zbclient.Client
}

// NewService creates a new expense service
func NewService(client *zbclient.Client) *Service {
	return &Service{client: client}
}

// List fetches and normalizes expenses.
func (s *Service) List(ctx context.Context, opts zbclient.ListOptions) ([]zbclient.Expense, error) {
	return s.client.ListExpenses(ctx, opts)
}

// Get fetches a single expense.
func (s *Service) Get(ctx context.Context, expenseID string) (json.RawMessage, error) {
	return s.client.GetExpense(ctx, expenseID)
}

// Create creates an expense, defaulting the account when none is given.
func (s *Service) Create(ctx context.Context, payload zbclient.ExpenseCreate) (json.RawMessage, error) {
	return s.client.CreateExpense(ctx, payload)
}

// Update applies a partial update to an expense.
func (s *Service) Update(ctx context.Context, expenseID string, update zbclient.ExpenseUpdate) (json.RawMessage, error) {
	return s.client.UpdateExpense(ctx, expenseID, update)
}

// Delete removes an expense.
func (s *Service) Delete(ctx context.Context, expenseID string) error {
	return s.client.DeleteExpense(ctx, expenseID)
}

// ListAccounts fetches the chart of accounts.
func (s *Service) ListAccounts(ctx context.Context) ([]zbclient.Account, error) {
	return s.client.ListChartOfAccounts(ctx)
}

package query

import (
	"context"
	"fmt"

	"github.com/rpattn/txnimport/internal/domain"
	"github.com/rpattn/txnimport/internal/repository"
)

// Service answers read-side transaction queries. It is a thin filtered scan
// over the transaction store with no import-pipeline semantics.
type Service struct {
	transactions repository.TransactionRepository
}

// NewService creates a new query service.
func NewService(transactions repository.TransactionRepository) *Service {
	return &Service{transactions: transactions}
}

// TransactionView is the wire shape of one transaction: the amount and
// currency are folded into a single payment string.
type TransactionView struct {
	ID      string `json:"id"`
	Payment string `json:"payment"`
	Status  string `json:"status"`
}

// List returns transactions matching the filter, ordered by transaction date
// ascending.
func (s *Service) List(ctx context.Context, filter domain.TransactionFilter) ([]TransactionView, error) {
	transactions, err := s.transactions.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to query transactions: %w", err)
	}

	views := make([]TransactionView, len(transactions))
	for i, txn := range transactions {
		views[i] = TransactionView{
			ID:      txn.ID,
			Payment: fmt.Sprintf("%s %s", txn.Amount.StringFixed(2), txn.CurrencyCode),
			Status:  txn.StatusCode,
		}
	}
	return views, nil
}

package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// Transaction is a persisted transaction row. Every transaction belongs to
// exactly one Import; deleting an import cascades to its transactions.
type Transaction struct {
	ID              string
	Amount          decimal.Decimal
	CurrencyCode    string
	TransactionDate time.Time
	StatusCode      string
	SourceFormat    string
	ImportID        uuid.UUID
}

// TransactionFilter narrows the read-side transaction listing. Zero values
// mean "no constraint" for the corresponding column.
type TransactionFilter struct {
	Currency   string
	StatusCode string
	From       *time.Time
	To         *time.Time
}

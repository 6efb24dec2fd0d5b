package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// TransactionRecord is the parser-neutral representation of one transaction
// row as read from an uploaded file. It only lives for the duration of a
// single import; validated records are mapped to Transaction before being
// persisted.
type TransactionRecord struct {
	ID              string
	Amount          decimal.Decimal
	CurrencyCode    string
	TransactionDate time.Time
	Status          string
}

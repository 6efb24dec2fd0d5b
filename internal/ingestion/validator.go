package ingestion

import (
	"fmt"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/rpattn/txnimport/internal/domain"
)

// validCurrencyCodes is the fixed ISO-4217 allow-list. Comparison is
// case-insensitive.
var validCurrencyCodes = map[string]struct{}{
	"USD": {}, "EUR": {}, "GBP": {}, "JPY": {}, "CHF": {}, "CAD": {}, "AUD": {}, "NZD": {}, "CNY": {}, "INR": {},
	"KRW": {}, "SGD": {}, "HKD": {}, "NOK": {}, "SEK": {}, "DKK": {}, "PLN": {}, "CZK": {}, "HUF": {}, "RON": {},
	"BGN": {}, "HRK": {}, "RUB": {}, "TRY": {}, "BRL": {}, "ZAR": {}, "MXN": {}, "IDR": {}, "MYR": {}, "PHP": {},
	"THB": {}, "VND": {}, "EGP": {}, "NGN": {}, "AED": {}, "SAR": {}, "QAR": {}, "KWD": {}, "BHD": {}, "OMR": {},
}

const maxTransactionIDLength = 50

// Validator applies the fixed rule set to every parsed record. It never
// short-circuits: every field error of every record is collected so the
// caller can report the complete list in one pass.
type Validator struct {
	now func() time.Time
}

// NewValidator creates a validator using the wall clock.
func NewValidator() *Validator {
	return &Validator{now: func() time.Time { return time.Now().UTC() }}
}

// Validate checks all records in order and returns every field error found,
// tagged with the record's 1-based position. An empty result means the whole
// batch is acceptable; a non-empty result rejects the entire batch.
func (v *Validator) Validate(records []domain.TransactionRecord) []domain.ValidationError {
	var errs []domain.ValidationError
	futureCutoff := v.now().AddDate(0, 0, 1)

	for i, record := range records {
		row := i + 1

		if record.ID == "" {
			errs = append(errs, domain.ValidationError{Row: row, Field: "id", Message: "Transaction ID is required"})
		} else if len(record.ID) > maxTransactionIDLength {
			errs = append(errs, domain.ValidationError{
				Row: row, Field: "id",
				Message: fmt.Sprintf("Transaction ID must not exceed %d characters", maxTransactionIDLength),
			})
		}

		if !record.Amount.GreaterThan(decimal.Zero) {
			errs = append(errs, domain.ValidationError{Row: row, Field: "amount", Message: "Amount must be greater than 0"})
		}

		switch {
		case record.CurrencyCode == "":
			errs = append(errs, domain.ValidationError{Row: row, Field: "currencycode", Message: "Currency code is required"})
		case len(record.CurrencyCode) != 3:
			errs = append(errs, domain.ValidationError{Row: row, Field: "currencycode", Message: "Currency code must be 3 characters"})
		default:
			if _, ok := validCurrencyCodes[strings.ToUpper(record.CurrencyCode)]; !ok {
				errs = append(errs, domain.ValidationError{Row: row, Field: "currencycode", Message: "Invalid ISO4217 currency code"})
			}
		}

		if record.TransactionDate.IsZero() {
			errs = append(errs, domain.ValidationError{Row: row, Field: "transactiondate", Message: "Valid transaction date is required"})
		} else if record.TransactionDate.After(futureCutoff) {
			errs = append(errs, domain.ValidationError{Row: row, Field: "transactiondate", Message: "Transaction date cannot be in the future"})
		}

		if record.Status == "" {
			errs = append(errs, domain.ValidationError{Row: row, Field: "status", Message: "Status is required"})
		} else if !domain.KnownStatus(record.Status) {
			errs = append(errs, domain.ValidationError{
				Row: row, Field: "status",
				Message: "Invalid status. Must be one of: Approved, Failed, Finished, Rejected, Done",
			})
		}
	}

	return errs
}

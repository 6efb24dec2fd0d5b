package ingestion

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"
)

var (
	byteOrderMark = []byte{0xEF, 0xBB, 0xBF}

	// csvDateLayout is the fixed CSV date pattern (dd/MM/yyyy HH:mm:ss).
	csvDateLayout = "02/01/2006 15:04:05"

	// timeLayouts are tried in order for formats with free-form dates.
	timeLayouts = []string{
		time.RFC3339,
		time.RFC3339Nano,
		"2006-01-02T15:04:05",
		"2006-01-02",
		"2006-01-02 15:04:05",
		"2006-01-02 15:04:05.000",
		"2006/01/02",
		"01/02/2006",
		"02/01/2006",
		"02/01/2006 15:04:05",
	}
)

// cleanField strips surrounding whitespace and double quotes from a raw
// field value.
func cleanField(value string) string {
	return strings.Trim(strings.TrimSpace(value), `"`)
}

// parseAmount reads a decimal amount, tolerating thousands-separator commas.
// An unparsable amount yields zero rather than aborting the row; validation
// rejects the zero downstream.
func parseAmount(raw string) decimal.Decimal {
	raw = strings.ReplaceAll(cleanField(raw), ",", "")
	amount, err := decimal.NewFromString(raw)
	if err != nil {
		return decimal.Zero
	}
	return amount
}

// parseFixedDate parses the exact CSV layout. Mismatches yield the zero time,
// which validation rejects downstream.
func parseFixedDate(raw string) time.Time {
	ts, err := time.Parse(csvDateLayout, cleanField(raw))
	if err != nil {
		return time.Time{}
	}
	return ts
}

// parseFreeFormDate tries the known layouts in order. Unrecognized values
// yield the zero time.
func parseFreeFormDate(raw string) time.Time {
	raw = cleanField(raw)
	for _, layout := range timeLayouts {
		if ts, err := time.Parse(layout, raw); err == nil {
			return ts
		}
	}
	return time.Time{}
}

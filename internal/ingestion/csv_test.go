package ingestion

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestCSVParserParsesRecord(t *testing.T) {
	parser := NewCSVParser(false)

	data := `"INV001","100.00","USD","01/01/2019 12:00:00","Approved"`
	records, err := parser.Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	record := records[0]
	if record.ID != "INV001" {
		t.Fatalf("expected id INV001, got %q", record.ID)
	}
	if !record.Amount.Equal(decimal.RequireFromString("100.00")) {
		t.Fatalf("expected amount 100.00, got %s", record.Amount)
	}
	if record.CurrencyCode != "USD" {
		t.Fatalf("expected currency USD, got %q", record.CurrencyCode)
	}
	want := time.Date(2019, time.January, 1, 12, 0, 0, 0, time.UTC)
	if !record.TransactionDate.Equal(want) {
		t.Fatalf("expected date %s, got %s", want, record.TransactionDate)
	}
	if record.Status != "Approved" {
		t.Fatalf("expected status Approved, got %q", record.Status)
	}
}

func TestCSVParserNormalizesThousandsSeparators(t *testing.T) {
	parser := NewCSVParser(false)

	data := `"INV002","10,000.00","EUR","20/02/2019 12:33:16","Done"`
	records, err := parser.Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	if !records[0].Amount.Equal(decimal.RequireFromString("10000.00")) {
		t.Fatalf("expected amount 10000.00, got %s", records[0].Amount)
	}
	want := time.Date(2019, time.February, 20, 12, 33, 16, 0, time.UTC)
	if !records[0].TransactionDate.Equal(want) {
		t.Fatalf("expected date %s, got %s", want, records[0].TransactionDate)
	}
}

func TestCSVParserDefaultsUnparsableFields(t *testing.T) {
	parser := NewCSVParser(false)

	// Amount and date are lenient: bad values become zero values and are
	// left for validation to reject.
	data := `"INV003","not-a-number","USD","2019-01-01","Approved"`
	records, err := parser.Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if !records[0].Amount.IsZero() {
		t.Fatalf("expected zero amount, got %s", records[0].Amount)
	}
	if !records[0].TransactionDate.IsZero() {
		t.Fatalf("expected zero date, got %s", records[0].TransactionDate)
	}
}

func TestCSVParserRejectsWrongColumnCount(t *testing.T) {
	parser := NewCSVParser(false)

	data := `"INV001","100.00","USD"`
	if _, err := parser.Parse(strings.NewReader(data)); err == nil {
		t.Fatalf("expected structural error for 3-column row")
	}
}

func TestCSVParserWrongColumnCountAbortsWholeParse(t *testing.T) {
	parser := NewCSVParser(false)

	data := strings.Join([]string{
		`"INV001","100.00","USD","01/01/2019 12:00:00","Approved"`,
		`"INV002","50.00","EUR"`,
	}, "\n")
	records, err := parser.Parse(strings.NewReader(data))
	if err == nil {
		t.Fatalf("expected structural error, got %d records", len(records))
	}
}

func TestCSVParserEmptyInput(t *testing.T) {
	parser := NewCSVParser(false)

	records, err := parser.Parse(strings.NewReader(""))
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

func TestCSVParserSkipsHeaderRowWhenConfigured(t *testing.T) {
	parser := NewCSVParser(true)

	data := strings.Join([]string{
		`id,amount,currency,date,status`,
		`"INV001","100.00","USD","01/01/2019 12:00:00","Approved"`,
	}, "\n")
	records, err := parser.Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}
	if records[0].ID != "INV001" {
		t.Fatalf("expected header row to be skipped, got id %q", records[0].ID)
	}
}

func TestCSVParserStripsByteOrderMark(t *testing.T) {
	parser := NewCSVParser(false)

	data := "\xEF\xBB\xBF" + `"INV001","100.00","USD","01/01/2019 12:00:00","Approved"`
	records, err := parser.Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if records[0].ID != "INV001" {
		t.Fatalf("expected BOM to be stripped, got id %q", records[0].ID)
	}
}

package ingestion

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func TestXMLParserParsesTransactions(t *testing.T) {
	parser := NewXMLParser()

	data := `<Transactions>
		<Transaction id="INV001">
			<TransactionDate>2019-01-23T13:45:10</TransactionDate>
			<PaymentDetails>
				<Amount>200.00</Amount>
				<CurrencyCode>USD</CurrencyCode>
			</PaymentDetails>
			<Status>Done</Status>
		</Transaction>
		<Transaction id="INV002">
			<TransactionDate>2019-01-24T16:09:15</TransactionDate>
			<PaymentDetails>
				<Amount>10000.00</Amount>
				<CurrencyCode>EUR</CurrencyCode>
			</PaymentDetails>
			<Status>Rejected</Status>
		</Transaction>
	</Transactions>`

	records, err := parser.Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if len(records) != 2 {
		t.Fatalf("expected 2 records, got %d", len(records))
	}

	first := records[0]
	if first.ID != "INV001" {
		t.Fatalf("expected id INV001, got %q", first.ID)
	}
	if !first.Amount.Equal(decimal.RequireFromString("200.00")) {
		t.Fatalf("expected amount 200.00, got %s", first.Amount)
	}
	if first.CurrencyCode != "USD" {
		t.Fatalf("expected currency USD, got %q", first.CurrencyCode)
	}
	want := time.Date(2019, time.January, 23, 13, 45, 10, 0, time.UTC)
	if !first.TransactionDate.Equal(want) {
		t.Fatalf("expected date %s, got %s", want, first.TransactionDate)
	}
	if first.Status != "Done" {
		t.Fatalf("expected status Done, got %q", first.Status)
	}
}

func TestXMLParserFindsNestedTransactions(t *testing.T) {
	parser := NewXMLParser()

	data := `<Batch>
		<Group>
			<Transaction id="INV003">
				<TransactionDate>2019-02-01T09:00:00</TransactionDate>
				<PaymentDetails>
					<Amount>55.50</Amount>
					<CurrencyCode>GBP</CurrencyCode>
				</PaymentDetails>
				<Status>Approved</Status>
			</Transaction>
		</Group>
	</Batch>`

	records, err := parser.Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected nested transaction to be found, got %d records", len(records))
	}
	if records[0].ID != "INV003" {
		t.Fatalf("expected id INV003, got %q", records[0].ID)
	}
}

func TestXMLParserDefaultsMissingElements(t *testing.T) {
	parser := NewXMLParser()

	data := `<Transactions><Transaction id="INV004"><Status>Done</Status></Transaction></Transactions>`
	records, err := parser.Parse(strings.NewReader(data))
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("expected 1 record, got %d", len(records))
	}

	record := records[0]
	if !record.Amount.IsZero() {
		t.Fatalf("expected zero amount, got %s", record.Amount)
	}
	if record.CurrencyCode != "" {
		t.Fatalf("expected empty currency, got %q", record.CurrencyCode)
	}
	if !record.TransactionDate.IsZero() {
		t.Fatalf("expected zero date, got %s", record.TransactionDate)
	}
}

func TestXMLParserRejectsMalformedDocument(t *testing.T) {
	parser := NewXMLParser()

	data := `<Transactions><Transaction id="INV001">`
	if _, err := parser.Parse(strings.NewReader(data)); err == nil {
		t.Fatalf("expected structural error for malformed markup")
	}
}

func TestXMLParserEmptyDocumentYieldsNoRecords(t *testing.T) {
	parser := NewXMLParser()

	records, err := parser.Parse(strings.NewReader(`<Transactions></Transactions>`))
	if err != nil {
		t.Fatalf("parse returned error: %v", err)
	}
	if len(records) != 0 {
		t.Fatalf("expected no records, got %d", len(records))
	}
}

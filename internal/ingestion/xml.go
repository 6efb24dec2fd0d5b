package ingestion

import (
	"encoding/xml"
	"errors"
	"fmt"
	"io"

	"github.com/rpattn/txnimport/internal/domain"
)

// XMLParser reads XML transaction files. Every <Transaction> element is
// picked up regardless of nesting depth; missing child elements default to
// empty values and are left for validation to reject. Malformed markup aborts
// the whole parse.
type XMLParser struct{}

// NewXMLParser creates an XML parser.
func NewXMLParser() *XMLParser {
	return &XMLParser{}
}

// Format identifies the parser in the registry.
func (p *XMLParser) Format() string { return "XML" }

type xmlTransaction struct {
	ID              string `xml:"id,attr"`
	TransactionDate string `xml:"TransactionDate"`
	PaymentDetails  struct {
		Amount       string `xml:"Amount"`
		CurrencyCode string `xml:"CurrencyCode"`
	} `xml:"PaymentDetails"`
	Status string `xml:"Status"`
}

// Parse walks the document token by token and decodes each Transaction
// element into a canonical record. Dates are free-form here, unlike the fixed
// CSV layout.
func (p *XMLParser) Parse(r io.Reader) ([]domain.TransactionRecord, error) {
	decoder := xml.NewDecoder(r)
	records := []domain.TransactionRecord{}

	for {
		token, err := decoder.Token()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error parsing XML file: %w", err)
		}

		start, ok := token.(xml.StartElement)
		if !ok || start.Name.Local != "Transaction" {
			continue
		}

		var txn xmlTransaction
		if err := decoder.DecodeElement(&txn, &start); err != nil {
			return nil, fmt.Errorf("error parsing XML transaction: %w", err)
		}

		records = append(records, domain.TransactionRecord{
			ID:              cleanField(txn.ID),
			Amount:          parseAmount(txn.PaymentDetails.Amount),
			CurrencyCode:    cleanField(txn.PaymentDetails.CurrencyCode),
			TransactionDate: parseFreeFormDate(txn.TransactionDate),
			Status:          cleanField(txn.Status),
		})
	}

	return records, nil
}

package ingestion

import (
	"bufio"
	"bytes"
	"encoding/csv"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/rpattn/txnimport/internal/domain"
)

const csvColumnCount = 5

// CSVParser reads comma-separated transaction files with five positional
// columns: id, amount, currency, date, status. The header policy is fixed at
// construction: either the file has no header row (default) or the first
// non-empty row is skipped. One policy applies per deployment; the parser
// never guesses.
type CSVParser struct {
	headerRow bool
}

// NewCSVParser creates a CSV parser with the given header policy.
func NewCSVParser(headerRow bool) *CSVParser {
	return &CSVParser{headerRow: headerRow}
}

// Format identifies the parser in the registry.
func (p *CSVParser) Format() string { return "CSV" }

// Parse converts the stream into canonical records, one per non-empty row.
// A row without exactly five fields aborts the whole parse; an empty stream
// is a successful empty result.
func (p *CSVParser) Parse(r io.Reader) ([]domain.TransactionRecord, error) {
	buffered := bufio.NewReader(r)
	if prefix, err := buffered.Peek(len(byteOrderMark)); err == nil && bytes.Equal(prefix, byteOrderMark) {
		_, _ = buffered.Discard(len(byteOrderMark))
	}

	reader := csv.NewReader(buffered)
	reader.TrimLeadingSpace = true
	reader.FieldsPerRecord = -1

	records := []domain.TransactionRecord{}
	skippedHeader := false

	for {
		row, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("error parsing CSV file: %w", err)
		}

		if emptyRow(row) {
			continue
		}
		if p.headerRow && !skippedHeader {
			skippedHeader = true
			continue
		}

		if len(row) != csvColumnCount {
			return nil, fmt.Errorf("invalid CSV format - expected %d columns, got %d", csvColumnCount, len(row))
		}

		records = append(records, domain.TransactionRecord{
			ID:              cleanField(row[0]),
			Amount:          parseAmount(row[1]),
			CurrencyCode:    cleanField(row[2]),
			TransactionDate: parseFixedDate(row[3]),
			Status:          cleanField(row[4]),
		})
	}

	return records, nil
}

func emptyRow(row []string) bool {
	for _, cell := range row {
		if strings.TrimSpace(cell) != "" {
			return false
		}
	}
	return true
}

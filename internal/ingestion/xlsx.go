package ingestion

import (
	"errors"
	"fmt"
	"io"

	"github.com/xuri/excelize/v2"

	"github.com/rpattn/txnimport/internal/domain"
)

// XLSXParser reads spreadsheet uploads. The first sheet is used and rows
// follow the same five positional columns and lenient field rules as CSV.
type XLSXParser struct {
	headerRow bool
}

// NewXLSXParser creates a spreadsheet parser with the given header policy.
func NewXLSXParser(headerRow bool) *XLSXParser {
	return &XLSXParser{headerRow: headerRow}
}

// Format identifies the parser in the registry.
func (p *XLSXParser) Format() string { return "XLSX" }

// Parse opens the workbook and converts the first sheet into canonical
// records.
func (p *XLSXParser) Parse(r io.Reader) ([]domain.TransactionRecord, error) {
	f, err := excelize.OpenReader(r)
	if err != nil {
		return nil, fmt.Errorf("error parsing XLSX file: %w", err)
	}
	defer func() { _ = f.Close() }()

	sheets := f.GetSheetList()
	if len(sheets) == 0 {
		return nil, errors.New("XLSX file has no sheets")
	}

	rows, err := f.GetRows(sheets[0])
	if err != nil {
		return nil, fmt.Errorf("error reading XLSX rows: %w", err)
	}

	records := []domain.TransactionRecord{}
	skippedHeader := false

	for _, row := range rows {
		if emptyRow(row) {
			continue
		}
		if p.headerRow && !skippedHeader {
			skippedHeader = true
			continue
		}

		if len(row) != csvColumnCount {
			return nil, fmt.Errorf("invalid XLSX format - expected %d columns, got %d", csvColumnCount, len(row))
		}

		records = append(records, domain.TransactionRecord{
			ID:              cleanField(row[0]),
			Amount:          parseAmount(row[1]),
			CurrencyCode:    cleanField(row[2]),
			TransactionDate: parseFreeFormDate(row[3]),
			Status:          cleanField(row[4]),
		})
	}

	return records, nil
}

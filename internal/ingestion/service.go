package ingestion

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/rpattn/txnimport/internal/domain"
	"github.com/rpattn/txnimport/internal/repository"
)

// ImportStatusSuccess is recorded on every committed import.
const ImportStatusSuccess = "Success"

// Result reports the outcome of one import. Expected failures (unknown
// format, structural parse errors, validation errors) are carried here as
// data; only unexpected storage or I/O faults are returned as errors from
// Import.
type Result struct {
	Success          bool                     `json:"success"`
	ImportID         uuid.UUID                `json:"importId,omitempty"`
	RecordCount      int                      `json:"recordCount"`
	ErrorMessage     string                   `json:"errorMessage,omitempty"`
	ValidationErrors []domain.ValidationError `json:"validationErrors,omitempty"`
}

// Service orchestrates one import per invocation: dedup check, parse,
// validate, status mapping, atomic persistence. Collaborators are passed in
// explicitly at startup; the service holds no other state.
type Service struct {
	imports      repository.ImportRepository
	transactions repository.TransactionRepository
	registry     *Registry
	validator    *Validator
	logger       zerolog.Logger
}

// NewService creates a new import service.
func NewService(
	imports repository.ImportRepository,
	transactions repository.TransactionRepository,
	registry *Registry,
	validator *Validator,
	logger zerolog.Logger,
) *Service {
	return &Service{
		imports:      imports,
		transactions: transactions,
		registry:     registry,
		validator:    validator,
		logger:       logger.With().Str("component", "ingestion").Logger(),
	}
}

// Import runs the pipeline for one uploaded file. Identical content is never
// imported twice: a dedup hit returns the existing import's identity as
// success. A batch either validates and persists in full or not at all.
func (s *Service) Import(ctx context.Context, data io.Reader, fileName string) (Result, error) {
	if data == nil {
		return Result{}, errors.New("data reader is required")
	}

	payload, err := io.ReadAll(data)
	if err != nil {
		return Result{}, fmt.Errorf("failed to read upload: %w", err)
	}

	hash := ContentHash(payload)

	existing, err := s.imports.GetByHash(ctx, hash)
	if err != nil {
		return Result{}, fmt.Errorf("failed to look up import by hash: %w", err)
	}
	if existing != nil {
		s.logger.Info().
			Str("import_id", existing.ImportID.String()).
			Msg("file already imported")
		return Result{
			Success:     true,
			ImportID:    existing.ImportID,
			RecordCount: existing.RecordCount,
		}, nil
	}

	parser, ok := s.registry.Resolve(fileName)
	if !ok {
		return Result{ErrorMessage: "Unknown format"}, nil
	}

	records, err := parser.Parse(bytes.NewReader(payload))
	if err != nil {
		return Result{ErrorMessage: err.Error()}, nil
	}

	if validationErrors := s.validator.Validate(records); len(validationErrors) > 0 {
		return Result{ValidationErrors: validationErrors}, nil
	}

	imp := domain.Import{
		ImportID:     uuid.New(),
		ReceivedAt:   time.Now().UTC(),
		SourceFormat: parser.Format(),
		Sha256Hash:   hash,
		RecordCount:  len(records),
		Status:       ImportStatusSuccess,
	}

	transactions := make([]domain.Transaction, len(records))
	for i, record := range records {
		statusCode, err := domain.MapStatusCode(record.Status)
		if err != nil {
			// Validation restricts statuses to the mapped set; reaching this
			// is a broken invariant, not a user error.
			return Result{}, fmt.Errorf("status mapping invariant violated: %w", err)
		}
		transactions[i] = domain.Transaction{
			ID:              record.ID,
			Amount:          record.Amount,
			CurrencyCode:    record.CurrencyCode,
			TransactionDate: record.TransactionDate,
			StatusCode:      statusCode,
			SourceFormat:    parser.Format(),
			ImportID:        imp.ImportID,
		}
	}

	if err := s.transactions.AddBatch(ctx, imp, transactions); err != nil {
		if errors.Is(err, repository.ErrDuplicateImport) {
			return s.resolveDuplicate(ctx, hash)
		}
		return Result{}, fmt.Errorf("failed to persist import: %w", err)
	}

	s.logger.Info().
		Str("import_id", imp.ImportID.String()).
		Str("format", imp.SourceFormat).
		Int("records", imp.RecordCount).
		Msg("import committed")

	return Result{
		Success:     true,
		ImportID:    imp.ImportID,
		RecordCount: imp.RecordCount,
	}, nil
}

// resolveDuplicate handles the race where a concurrent upload of identical
// content committed first: the winning import is re-queried and returned as
// ordinary success.
func (s *Service) resolveDuplicate(ctx context.Context, hash string) (Result, error) {
	winner, err := s.imports.GetByHash(ctx, hash)
	if err != nil {
		return Result{}, fmt.Errorf("failed to resolve duplicate import: %w", err)
	}
	if winner == nil {
		return Result{}, errors.New("duplicate import reported but no import found for hash")
	}

	s.logger.Info().
		Str("import_id", winner.ImportID.String()).
		Msg("concurrent duplicate resolved to existing import")

	return Result{
		Success:     true,
		ImportID:    winner.ImportID,
		RecordCount: winner.RecordCount,
	}, nil
}

package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/rpattn/txnimport/internal/domain"
)

type importRepository struct {
	pool *pgxpool.Pool
}

// NewImportRepository wires a repository backed by pgxpool.
func NewImportRepository(pool *pgxpool.Pool) ImportRepository {
	return &importRepository{pool: pool}
}

const importColumns = "import_id, received_at, source_format, sha256, record_count, status"

func (r *importRepository) GetByHash(ctx context.Context, hash string) (*domain.Import, error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT `+importColumns+` FROM imports WHERE sha256 = $1`,
		hash,
	)
	return scanImport(row)
}

func (r *importRepository) GetByID(ctx context.Context, id uuid.UUID) (*domain.Import, error) {
	row := r.pool.QueryRow(
		ctx,
		`SELECT `+importColumns+` FROM imports WHERE import_id = $1`,
		id,
	)
	return scanImport(row)
}

func scanImport(row pgx.Row) (*domain.Import, error) {
	var (
		imp        domain.Import
		receivedAt pgtype.Timestamptz
	)
	err := row.Scan(
		&imp.ImportID,
		&receivedAt,
		&imp.SourceFormat,
		&imp.Sha256Hash,
		&imp.RecordCount,
		&imp.Status,
	)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to scan import: %w", err)
	}
	if receivedAt.Valid {
		imp.ReceivedAt = receivedAt.Time
	}
	return &imp, nil
}

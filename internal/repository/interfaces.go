package repository

import (
	"context"
	"errors"

	"github.com/google/uuid"

	"github.com/rpattn/txnimport/internal/domain"
)

// ErrDuplicateImport is returned by AddBatch when another import with the
// same content hash was committed first. Callers resolve it by re-querying
// the winning import rather than failing the request.
var ErrDuplicateImport = errors.New("import with identical content already exists")

// ImportRepository defines the interface for import lookups.
type ImportRepository interface {
	// GetByHash returns the import with the given content hash, or nil when
	// no such import exists.
	GetByHash(ctx context.Context, hash string) (*domain.Import, error)
	GetByID(ctx context.Context, id uuid.UUID) (*domain.Import, error)
}

// TransactionRepository defines the interface for transaction persistence and
// the read-side listing.
type TransactionRepository interface {
	// AddBatch writes the import record and all of its transactions in one
	// database transaction. Either everything commits or nothing does.
	AddBatch(ctx context.Context, imp domain.Import, transactions []domain.Transaction) error
	List(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error)
	GetByID(ctx context.Context, id string) (*domain.Transaction, error)
}

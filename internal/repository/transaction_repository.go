package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgtype"

	"github.com/rpattn/txnimport/internal/db"
	"github.com/rpattn/txnimport/internal/domain"
)

type transactionRepository struct {
	conn *db.Connection
}

// NewTransactionRepository wires a repository backed by the shared
// connection, which it also uses for transactional batch writes.
func NewTransactionRepository(conn *db.Connection) TransactionRepository {
	return &transactionRepository{conn: conn}
}

// AddBatch persists the import record plus all of its transactions inside a
// single database transaction. A unique violation on the content hash means a
// concurrent upload of the same bytes won the race; it surfaces as
// ErrDuplicateImport so the caller can resolve to the winning import.
func (r *transactionRepository) AddBatch(ctx context.Context, imp domain.Import, transactions []domain.Transaction) error {
	err := r.conn.WithTx(ctx, func(tx pgx.Tx) error {
		_, err := tx.Exec(
			ctx,
			`INSERT INTO imports (import_id, received_at, source_format, sha256, record_count, status)
			 VALUES ($1, $2, $3, $4, $5, $6)`,
			imp.ImportID,
			imp.ReceivedAt,
			imp.SourceFormat,
			imp.Sha256Hash,
			imp.RecordCount,
			imp.Status,
		)
		if err != nil {
			return fmt.Errorf("failed to insert import: %w", err)
		}

		batch := &pgx.Batch{}
		for _, txn := range transactions {
			batch.Queue(
				`INSERT INTO transactions (id, amount, currency_code, transaction_date, status_code, source_format, import_id)
				 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
				txn.ID,
				txn.Amount,
				txn.CurrencyCode,
				txn.TransactionDate,
				txn.StatusCode,
				txn.SourceFormat,
				txn.ImportID,
			)
		}

		results := tx.SendBatch(ctx, batch)
		defer func() { _ = results.Close() }()
		for range transactions {
			if _, err := results.Exec(); err != nil {
				return fmt.Errorf("failed to insert transaction: %w", err)
			}
		}
		return results.Close()
	})
	if err != nil {
		if isDuplicateHash(err) {
			return ErrDuplicateImport
		}
		return err
	}
	return nil
}

// isDuplicateHash reports whether the error is a unique violation on the
// imports content hash constraint.
func isDuplicateHash(err error) bool {
	var pgErr *pgconn.PgError
	if !errors.As(err, &pgErr) {
		return false
	}
	return pgErr.Code == "23505" && strings.Contains(pgErr.ConstraintName, "sha256")
}

func (r *transactionRepository) List(ctx context.Context, filter domain.TransactionFilter) ([]domain.Transaction, error) {
	query := strings.Builder{}
	query.WriteString(
		`SELECT id, amount, currency_code, transaction_date, status_code, source_format, import_id
		 FROM transactions`,
	)

	var (
		conditions []string
		args       []any
	)
	addCondition := func(clause string, value any) {
		args = append(args, value)
		conditions = append(conditions, fmt.Sprintf(clause, len(args)))
	}

	if filter.Currency != "" {
		addCondition("currency_code = $%d", strings.ToUpper(filter.Currency))
	}
	if filter.StatusCode != "" {
		addCondition("status_code = $%d", strings.ToUpper(filter.StatusCode))
	}
	if filter.From != nil {
		addCondition("transaction_date >= $%d", *filter.From)
	}
	if filter.To != nil {
		addCondition("transaction_date <= $%d", endOfDay(*filter.To))
	}

	if len(conditions) > 0 {
		query.WriteString(" WHERE " + strings.Join(conditions, " AND "))
	}
	query.WriteString(" ORDER BY transaction_date ASC")

	rows, err := r.conn.Pool.Query(ctx, query.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions := []domain.Transaction{}
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	if rowsErr := rows.Err(); rowsErr != nil {
		return nil, fmt.Errorf("failed to iterate transactions: %w", rowsErr)
	}

	return transactions, nil
}

func (r *transactionRepository) GetByID(ctx context.Context, id string) (*domain.Transaction, error) {
	row := r.conn.Pool.QueryRow(
		ctx,
		`SELECT id, amount, currency_code, transaction_date, status_code, source_format, import_id
		 FROM transactions WHERE id = $1`,
		id,
	)
	txn, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &txn, nil
}

func scanTransaction(row pgx.Row) (domain.Transaction, error) {
	var (
		txn             domain.Transaction
		transactionDate pgtype.Timestamptz
	)
	err := row.Scan(
		&txn.ID,
		&txn.Amount,
		&txn.CurrencyCode,
		&transactionDate,
		&txn.StatusCode,
		&txn.SourceFormat,
		&txn.ImportID,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return domain.Transaction{}, err
		}
		return domain.Transaction{}, fmt.Errorf("failed to scan transaction: %w", err)
	}
	if transactionDate.Valid {
		txn.TransactionDate = transactionDate.Time
	}
	return txn, nil
}

// endOfDay extends an inclusive "to" bound to the last instant of that day.
func endOfDay(ts time.Time) time.Time {
	year, month, day := ts.Date()
	return time.Date(year, month, day, 23, 59, 59, int(time.Second-time.Nanosecond), ts.Location())
}

package repository

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgconn"
)

func TestEndOfDayExtendsToLastInstant(t *testing.T) {
	ts := time.Date(2019, time.March, 15, 10, 30, 0, 0, time.UTC)
	got := endOfDay(ts)

	want := time.Date(2019, time.March, 15, 23, 59, 59, int(time.Second-time.Nanosecond), time.UTC)
	if !got.Equal(want) {
		t.Fatalf("endOfDay = %s, want %s", got, want)
	}
}

func TestIsDuplicateHashMatchesSha256Constraint(t *testing.T) {
	dup := &pgconn.PgError{Code: "23505", ConstraintName: "imports_sha256_key"}
	if !isDuplicateHash(fmt.Errorf("failed to insert import: %w", dup)) {
		t.Fatalf("expected sha256 unique violation to be a duplicate hash")
	}

	otherConstraint := &pgconn.PgError{Code: "23505", ConstraintName: "transactions_pkey"}
	if isDuplicateHash(otherConstraint) {
		t.Fatalf("a transaction id collision is not a duplicate import")
	}

	if isDuplicateHash(errors.New("connection reset")) {
		t.Fatalf("non-postgres errors are not duplicate hashes")
	}
}

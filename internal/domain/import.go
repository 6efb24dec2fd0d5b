package domain

import (
	"time"

	"github.com/google/uuid"
)

// Import records one successfully ingested file. The SHA-256 hash of the file
// content is unique across all imports and acts as the idempotency key: the
// same bytes are never imported twice. Imports are immutable after creation.
type Import struct {
	ImportID     uuid.UUID
	ReceivedAt   time.Time
	SourceFormat string
	Sha256Hash   string
	RecordCount  int
	Status       string
}

// ImportError is a rejected row retained for a given import.
type ImportError struct {
	ID        int
	ImportID  uuid.UUID
	RowNumber int
	Field     string
	Message   string
}

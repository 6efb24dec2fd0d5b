package ingestion

import (
	"crypto/sha256"
	"encoding/base64"
)

// ContentHash computes the idempotency key for an uploaded file: the SHA-256
// digest of the raw bytes, base64 encoded. The file name does not participate,
// so the same content always hashes identically regardless of how it was
// submitted.
func ContentHash(data []byte) string {
	sum := sha256.Sum256(data)
	return base64.StdEncoding.EncodeToString(sum[:])
}

package domain

import (
	"fmt"
	"strings"
)

// Persisted one-character status codes.
const (
	StatusCodeApproved = "A"
	StatusCodeRejected = "R"
	StatusCodeDone     = "D"
)

// statusCodes is the single source of truth for status normalization; both
// the validator and the import pipeline resolve statuses through it.
var statusCodes = map[string]string{
	"APPROVED": StatusCodeApproved,
	"FAILED":   StatusCodeRejected,
	"REJECTED": StatusCodeRejected,
	"FINISHED": StatusCodeDone,
	"DONE":     StatusCodeDone,
}

// MapStatusCode normalizes a free-text status into its persisted code.
// Validation restricts statuses to the mapped set before this runs, so an
// unmapped value is a broken invariant and is reported as an error rather
// than silently defaulted.
func MapStatusCode(status string) (string, error) {
	code, ok := statusCodes[strings.ToUpper(strings.TrimSpace(status))]
	if !ok {
		return "", fmt.Errorf("invalid status: %s", status)
	}
	return code, nil
}

// KnownStatus reports whether the status maps to a persisted code.
func KnownStatus(status string) bool {
	_, ok := statusCodes[strings.ToUpper(strings.TrimSpace(status))]
	return ok
}

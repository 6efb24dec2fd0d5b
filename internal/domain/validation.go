package domain

// ValidationError describes one field-level failure for a parsed record. Row
// is the 1-based position of the record in the uploaded file, not a database
// row.
type ValidationError struct {
	Row     int    `json:"row"`
	Field   string `json:"field"`
	Message string `json:"message"`
}

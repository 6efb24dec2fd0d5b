package ingestion

import (
	"fmt"
	"io"
	"path/filepath"
	"strings"

	"github.com/rpattn/txnimport/internal/domain"
)

// Parser converts an uploaded file into canonical transaction records. A
// returned error always means the file is structurally broken (wrong column
// count, unparsable markup); lenient field-level defaults never error.
type Parser interface {
	// Format returns the upper-case format identifier, e.g. "CSV".
	Format() string
	Parse(r io.Reader) ([]domain.TransactionRecord, error)
}

// Registry resolves a parser from a file name's extension. New formats are
// additive: register another Parser instead of editing a switch.
type Registry struct {
	parsers map[string]Parser
}

// NewRegistry builds a registry from the given parsers. Registering two
// parsers for the same format is a configuration error and fails at startup,
// not at request time.
func NewRegistry(parsers ...Parser) (*Registry, error) {
	reg := &Registry{parsers: make(map[string]Parser, len(parsers))}
	for _, p := range parsers {
		format := strings.ToUpper(p.Format())
		if _, exists := reg.parsers[format]; exists {
			return nil, fmt.Errorf("parser already registered for format %s", format)
		}
		reg.parsers[format] = p
	}
	return reg, nil
}

// Resolve returns the parser registered for the file's extension. A miss is a
// normal outcome, not an error; the caller surfaces it as an unknown format.
func (r *Registry) Resolve(fileName string) (Parser, bool) {
	ext := strings.ToUpper(strings.TrimPrefix(filepath.Ext(fileName), "."))
	parser, ok := r.parsers[ext]
	return parser, ok
}

// Formats lists the registered format identifiers.
func (r *Registry) Formats() []string {
	formats := make([]string, 0, len(r.parsers))
	for format := range r.parsers {
		formats = append(formats, format)
	}
	return formats
}

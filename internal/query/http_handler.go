package query

import (
	"encoding/json"
	"net/http"
	"strings"
	"time"

	"github.com/rs/zerolog"

	"github.com/rpattn/txnimport/internal/domain"
)

// Handler exposes the transaction listing as a GET endpoint with optional
// currency, status, and date-range filters.
type Handler struct {
	service *Service
	logger  zerolog.Logger
}

// NewHTTPHandler wraps the query service.
func NewHTTPHandler(service *Service, logger zerolog.Logger) http.Handler {
	return &Handler{
		service: service,
		logger:  logger.With().Str("component", "query").Logger(),
	}
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	filter := domain.TransactionFilter{
		Currency:   strings.TrimSpace(r.URL.Query().Get("currency")),
		StatusCode: strings.TrimSpace(r.URL.Query().Get("status")),
	}

	if raw := strings.TrimSpace(r.URL.Query().Get("from")); raw != "" {
		from, err := parseQueryDate(raw)
		if err != nil {
			http.Error(w, "invalid from date", http.StatusBadRequest)
			return
		}
		filter.From = &from
	}
	if raw := strings.TrimSpace(r.URL.Query().Get("to")); raw != "" {
		to, err := parseQueryDate(raw)
		if err != nil {
			http.Error(w, "invalid to date", http.StatusBadRequest)
			return
		}
		filter.To = &to
	}

	views, err := h.service.List(r.Context(), filter)
	if err != nil {
		h.logger.Error().Err(err).Msg("transaction query failed")
		http.Error(w, "An unexpected error occurred", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	_ = json.NewEncoder(w).Encode(views)
}

func parseQueryDate(raw string) (time.Time, error) {
	if ts, err := time.Parse(time.RFC3339, raw); err == nil {
		return ts, nil
	}
	return time.Parse("2006-01-02", raw)
}

package ingestion

import (
	"encoding/json"
	"net/http"

	"github.com/rs/zerolog"

	"github.com/rpattn/txnimport/internal/domain"
)

// Handler exposes the import pipeline as an HTTP upload endpoint.
type Handler struct {
	service  *Service
	maxBytes int64
	logger   zerolog.Logger
}

// NewHTTPHandler wraps the service with a POST endpoint capped at maxBytes.
func NewHTTPHandler(service *Service, maxBytes int64, logger zerolog.Logger) http.Handler {
	return &Handler{
		service:  service,
		maxBytes: maxBytes,
		logger:   logger.With().Str("component", "upload").Logger(),
	}
}

type uploadResponse struct {
	ImportID string `json:"importId"`
	Imported int    `json:"imported"`
}

type errorResponse struct {
	Error string `json:"error"`
}

type validationErrorResponse struct {
	Errors []domain.ValidationError `json:"errors"`
}

func (h *Handler) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodPost {
		http.Error(w, "method not allowed", http.StatusMethodNotAllowed)
		return
	}

	r.Body = http.MaxBytesReader(w, r.Body, h.maxBytes)
	if err := r.ParseMultipartForm(h.maxBytes); err != nil {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "File too large (max 1 MB)"})
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No file uploaded"})
		return
	}
	defer file.Close()

	if header.Size == 0 {
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "No file uploaded"})
		return
	}
	if header.Size > h.maxBytes {
		writeJSON(w, http.StatusRequestEntityTooLarge, errorResponse{Error: "File too large (max 1 MB)"})
		return
	}

	result, err := h.service.Import(r.Context(), file, header.Filename)
	if err != nil {
		h.logger.Error().Err(err).Str("file", header.Filename).Msg("import failed")
		writeJSON(w, http.StatusInternalServerError, errorResponse{Error: "An unexpected error occurred"})
		return
	}

	if !result.Success {
		if len(result.ValidationErrors) > 0 {
			writeJSON(w, http.StatusBadRequest, validationErrorResponse{Errors: result.ValidationErrors})
			return
		}
		message := result.ErrorMessage
		if message == "" {
			message = "An error occurred"
		}
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: message})
		return
	}

	writeJSON(w, http.StatusOK, uploadResponse{
		ImportID: result.ImportID.String(),
		Imported: result.RecordCount,
	})
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(payload)
}

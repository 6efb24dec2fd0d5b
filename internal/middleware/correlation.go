package middleware

import (
	"net/http"

	"github.com/google/uuid"
)

// CorrelationIDHeader carries the request correlation id end to end.
const CorrelationIDHeader = "X-Correlation-Id"

// CorrelationID accepts a caller-provided correlation id or mints one, and
// echoes it on the response so clients can reference the request in logs.
func CorrelationID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := r.Header.Get(CorrelationIDHeader)
		if id == "" {
			id = uuid.NewString()
			r.Header.Set(CorrelationIDHeader, id)
		}
		w.Header().Set(CorrelationIDHeader, id)
		next.ServeHTTP(w, r)
	})
}

// CorrelationIDFrom reads the correlation id assigned to the request.
func CorrelationIDFrom(r *http.Request) string {
	return r.Header.Get(CorrelationIDHeader)
}

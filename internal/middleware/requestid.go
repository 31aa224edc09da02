package middleware

import (
	"context"
	"net/http"

	"github.com/google/uuid"
)

// contextKey используется как ключ для значений в контексте
type contextKey string

// RequestIDKey используется как ключ для хранения ID запроса в контексте
const RequestIDKey contextKey = "request_id"

// requestIDHeader — заголовок, в котором ID запроса приходит и возвращается
const requestIDHeader = "X-Request-ID"

// WithRequestID присваивает каждому запросу уникальный идентификатор.
// Идентификатор из заголовка клиента сохраняется, иначе генерируется новый.
func WithRequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(requestIDHeader)
		if requestID == "" {
			requestID = uuid.New().String()
		}

		w.Header().Set(requestIDHeader, requestID)

		ctx := context.WithValue(r.Context(), RequestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// RequestIDFromContext извлекает ID запроса из контекста
func RequestIDFromContext(ctx context.Context) string {
	if requestID, ok := ctx.Value(RequestIDKey).(string); ok {
		return requestID
	}
	return ""
}

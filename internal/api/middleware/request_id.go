package middleware

import (
	"context"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/gorilla/mux"
)

// HeaderRequestID заголовок с идентификатором запроса
const HeaderRequestID = "X-Request-ID"

type contextKey string

const requestIDKey contextKey = "request_id"

// Logger интерфейс для логирования
type Logger interface {
	Info(format string, v ...interface{})
}

// RequestID берет X-Request-ID из запроса или генерирует новый и кладет его в контекст и ответ
func RequestID(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requestID := r.Header.Get(HeaderRequestID)
		if _, err := uuid.Parse(requestID); err != nil {
			requestID = uuid.NewString()
		}

		w.Header().Set(HeaderRequestID, requestID)
		ctx := context.WithValue(r.Context(), requestIDKey, requestID)
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetRequestID возвращает идентификатор запроса из контекста
func GetRequestID(ctx context.Context) (string, bool) {
	requestID, ok := ctx.Value(requestIDKey).(string)
	return requestID, ok
}

// RequestLogger пишет в лог каждый запрос с кодом ответа и длительностью
func RequestLogger(log Logger) mux.MiddlewareFunc {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()
			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK}

			next.ServeHTTP(rec, r)

			requestID, _ := GetRequestID(r.Context())
			log.Info("%s %s -> %d (%s) request_id=%s",
				r.Method, r.URL.RequestURI(), rec.status, time.Since(start), requestID)
		})
	}
}

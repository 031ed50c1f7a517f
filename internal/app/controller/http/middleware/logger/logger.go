package logger

import (
	"net/http"
	"time"

	"go.uber.org/zap"
)

const requestIDHeader = "X-Request-ID"

type responseData struct {
	statusCode int
	size       int
}

type logResponseWriter struct {
	http.ResponseWriter
	responseData *responseData
}

func (w *logResponseWriter) Write(b []byte) (int, error) {
	if w.responseData.statusCode == 0 {
		w.responseData.statusCode = http.StatusOK
	}

	size, err := w.ResponseWriter.Write(b)
	w.responseData.size += size

	return size, err
}

func (w *logResponseWriter) WriteHeader(statusCode int) {
	w.ResponseWriter.WriteHeader(statusCode)
	w.responseData.statusCode = statusCode
}

func LoggerMiddleware(h http.Handler) http.Handler {
	logFn := func(w http.ResponseWriter, r *http.Request) {
		start := time.Now()

		respData := &responseData{
			statusCode: 0,
			size:       0,
		}
		writer := logResponseWriter{
			ResponseWriter: w,
			responseData:   respData,
		}
		h.ServeHTTP(&writer, r)

		duration := time.Since(start)

		zap.L().Info(
			"got incoming HTTP request",
			zap.String("uri", r.RequestURI),
			zap.String("method", r.Method),
			zap.String("request_id", r.Header.Get(requestIDHeader)),
			zap.Duration("duration", duration),
			zap.Int("status", respData.statusCode),
			zap.Int("size", respData.size),
		)
	}

	return http.HandlerFunc(logFn)
}

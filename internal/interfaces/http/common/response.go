package common

import (
	"net/http"

	"go.uber.org/zap"
)

// WriteHTML writes a fully rendered page with status and logs on failure.
func WriteHTML(logger *zap.Logger, w http.ResponseWriter, status int, body []byte) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	if _, err := w.Write(body); err != nil && logger != nil {
		logger.Warn("レスポンスの書き込みに失敗", zap.Error(err))
	}
}

// WriteText is the fallback used when even the error page cannot be rendered.
func WriteText(logger *zap.Logger, w http.ResponseWriter, status int, message string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	if _, err := w.Write([]byte(message + "\n")); err != nil && logger != nil {
		logger.Warn("レスポンスの書き込みに失敗", zap.Error(err))
	}
}

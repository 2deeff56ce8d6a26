package middleware

import (
	"log/slog"
	"net/http"

	"github.com/dustin/go-humanize"
	"github.com/felixge/httpsnoop"
)

// Logging returns a middleware that logs every served asset via global slog.
// Log level is Info for 2xx/3xx, Warn for 4xx, Error for 5xx.
func Logging() func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			metrics := httpsnoop.CaptureMetrics(next, w, r)

			attrs := []any{
				slog.String("method", r.Method),
				slog.String("path", r.URL.Path),
				slog.Int("status", metrics.Code),
				slog.Int64("bytes", metrics.Written),
				slog.String("size", humanize.Bytes(uint64(max(metrics.Written, 0)))),
				slog.Duration("duration", metrics.Duration),
			}

			if reqID := GetRequestID(r.Context()); reqID != "" {
				attrs = append(attrs, slog.String("request_id", reqID))
			}

			msg := "asset request"

			switch {
			case metrics.Code >= http.StatusInternalServerError:
				slog.Error(msg, attrs...)
			case metrics.Code >= http.StatusBadRequest:
				slog.Warn(msg, attrs...)
			default:
				slog.Info(msg, attrs...)
			}
		})
	}
}

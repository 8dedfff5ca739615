package middleware

import (
	"bytes"
	"context"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5/middleware"
)

type logCtxKey struct{}

// maxLoggedBody を超えるボディは Debug ログで切り詰める
const maxLoggedBody = 4 << 10

// maskedHeaders の値はログに出さない (小文字)
var maskedHeaders = map[string]bool{
	"authorization": true,
	"cookie":        true,
	"set-cookie":    true,
	"x-api-key":     true,
}

// statusRecorder はステータスと書き込みバイト数を記録する。
// capture が true のときだけボディも保持する。
type statusRecorder struct {
	http.ResponseWriter
	status  int
	written int
	capture bool
	body    bytes.Buffer
}

func (sr *statusRecorder) WriteHeader(status int) {
	sr.status = status
	sr.ResponseWriter.WriteHeader(status)
}

func (sr *statusRecorder) Write(b []byte) (int, error) {
	n, err := sr.ResponseWriter.Write(b)
	sr.written += n
	if sr.capture && sr.body.Len() < maxLoggedBody {
		sr.body.Write(b[:n])
	}
	return n, err
}

// LoggingMiddleware はリクエスト単位のロガー (req_id 付き) をコンテキストに入れ、
// 完了時にステータスとレイテンシを1行で出す。Debug ではヘッダーとボディも出す。
func LoggingMiddleware(logger *slog.Logger) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			start := time.Now()

			reqLogger := logger.With("req_id", middleware.GetReqID(r.Context()))
			r = r.WithContext(WithLogger(r.Context(), reqLogger))
			debug := logger.Enabled(r.Context(), slog.LevelDebug)

			var reqBody []byte
			if debug && r.Body != nil {
				reqBody, _ = io.ReadAll(r.Body)
				r.Body = io.NopCloser(bytes.NewReader(reqBody))
			}

			rec := &statusRecorder{ResponseWriter: w, status: http.StatusOK, capture: debug}
			next.ServeHTTP(rec, r)

			level := slog.LevelInfo
			switch {
			case rec.status >= 500:
				level = slog.LevelError
			case rec.status >= 400:
				level = slog.LevelWarn
			}
			reqLogger.Log(r.Context(), level, "Request completed",
				"method", r.Method,
				"path", r.URL.Path,
				"status", rec.status,
				"latency_ms", float64(time.Since(start).Microseconds())/1000,
				"bytes_out", rec.written,
				"remote_addr", r.RemoteAddr,
			)

			if debug {
				reqLogger.Debug("Request detail",
					"headers", maskHeaders(r.Header),
					"query", r.URL.RawQuery,
					"body", truncate(reqBody),
				)
				reqLogger.Debug("Response detail",
					"headers", maskHeaders(rec.Header()),
					"body", truncate(rec.body.Bytes()),
				)
			}
		})
	}
}

// WithLogger はロガーを格納したコンテキストを返す
func WithLogger(ctx context.Context, logger *slog.Logger) context.Context {
	return context.WithValue(ctx, logCtxKey{}, logger)
}

// GetLogger はコンテキストから slog.Logger を取得する。なければ slog.Default()。
func GetLogger(ctx context.Context) *slog.Logger {
	if logger, ok := ctx.Value(logCtxKey{}).(*slog.Logger); ok {
		return logger
	}
	return slog.Default()
}

func maskHeaders(headers http.Header) map[string]string {
	out := make(map[string]string, len(headers))
	for key, values := range headers {
		if maskedHeaders[strings.ToLower(key)] {
			out[key] = "[SENSITIVE]"
			continue
		}
		out[key] = strings.Join(values, ", ")
	}
	return out
}

func truncate(b []byte) string {
	if len(b) > maxLoggedBody {
		return string(b[:maxLoggedBody]) + "...(truncated)"
	}
	return string(b)
}

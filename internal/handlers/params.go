// internal/handlers/params.go
package handlers

import (
	"log/slog"
	"net/http"
	"strconv"
	"strings"

	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/webutil"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

func handlerLogger(r *http.Request, name string) *slog.Logger {
	return middleware.GetLogger(r.Context()).With(slog.String("handler", name))
}

// learnerFromContext はコンテキストの学習者IDを取り出す。失敗時はレスポンスを書いて false を返す。
func learnerFromContext(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	id, err := middleware.GetLearnerIDFromContext(r.Context())
	if err != nil {
		logger.Error("Learner ID missing from context", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return uuid.Nil, false
	}
	return id, true
}

// wordIDParam は URL の {word_id} をパースする
func wordIDParam(w http.ResponseWriter, r *http.Request, logger *slog.Logger) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "word_id")
	id, err := uuid.Parse(raw)
	if err != nil {
		logger.Warn("Invalid word ID format in URL", slog.String("word_id_str", raw), slog.String("error", err.Error()))
		webutil.HandleError(w, logger, model.NewAppError("INVALID_URL_PARAM", "word_idの形式が正しくありません。", "word_id", model.ErrInvalidInput))
		return uuid.Nil, false
	}
	return id, true
}

// queryInt は整数のクエリパラメータを読む。未指定なら nil。0 も指定値として扱う。
func queryInt(r *http.Request, name string) (*int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.Atoi(raw)
	if err != nil {
		return nil, model.NewAppError("INVALID_QUERY_PARAM", name+"は整数で指定してください。", name, model.ErrInvalidInput)
	}
	return &v, nil
}

// queryIntList はカンマ区切りの整数を読む。未指定なら nil。
func queryIntList(r *http.Request, name string) ([]int, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	parts := strings.Split(raw, ",")
	values := make([]int, 0, len(parts))
	for _, p := range parts {
		v, err := strconv.Atoi(strings.TrimSpace(p))
		if err != nil {
			return nil, model.NewAppError("INVALID_QUERY_PARAM", name+"はカンマ区切りの整数で指定してください。", name, model.ErrInvalidInput)
		}
		values = append(values, v)
	}
	return values, nil
}

// queryBool は真偽値のクエリパラメータを読む。未指定なら nil。
func queryBool(r *http.Request, name string) (*bool, error) {
	raw := r.URL.Query().Get(name)
	if raw == "" {
		return nil, nil
	}
	v, err := strconv.ParseBool(raw)
	if err != nil {
		return nil, model.NewAppError("INVALID_QUERY_PARAM", name+"はtrueまたはfalseで指定してください。", name, model.ErrInvalidInput)
	}
	return &v, nil
}

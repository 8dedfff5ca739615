package webutil

import (
	"encoding/json"
	"errors"
	"io"
	"log/slog"
	"net/http"

	"go_4_vocab_srs/internal/model"
)

// maxBodyBytes はリクエストボディの上限
const maxBodyBytes = 1 << 20

// DecodeJSONBody はリクエストボディを dst にデコードし、バリデーションまで行う。
// 失敗時は INVALID_JSON または VALIDATION_ERROR の AppError を返す。
func DecodeJSONBody(r *http.Request, logger *slog.Logger, dst interface{}) error {
	if r.Body == nil {
		return model.NewAppError("INVALID_JSON", "リクエストボディが空です。", "", model.ErrInvalidInput)
	}
	defer r.Body.Close()

	decoder := json.NewDecoder(io.LimitReader(r.Body, maxBodyBytes))
	decoder.DisallowUnknownFields()

	if err := decoder.Decode(dst); err != nil {
		logger.Warn("Error decoding JSON body", "error", err)
		if errors.Is(err, io.EOF) {
			return model.NewAppError("INVALID_JSON", "リクエストボディが空です。", "", model.ErrInvalidInput)
		}
		return model.NewAppError("INVALID_JSON", "リクエストボディの形式が正しくありません。", "", model.ErrInvalidInput)
	}

	return ValidateStruct(dst)
}

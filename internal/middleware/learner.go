// internal/middleware/learner.go
package middleware

import (
	"context"
	"net/http"

	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/webutil"

	"github.com/google/uuid"
)

// LearnerIDHeader は学習者を識別するヘッダー
const LearnerIDHeader = "X-Learner-ID"

// LearnerContextMiddleware は X-Learner-ID ヘッダーのUUIDをコンテキストに設定する。
// 学習者の存在確認はしない。
func LearnerContextMiddleware(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		logger := GetLogger(r.Context())

		raw := r.Header.Get(LearnerIDHeader)
		if raw == "" {
			logger.Warn("Learner header missing")
			webutil.HandleError(w, logger, model.NewAppError("LEARNER_ID_REQUIRED", "X-Learner-IDヘッダーが必要です。", "X-Learner-ID", model.ErrForbidden))
			return
		}

		learnerID, err := uuid.Parse(raw)
		if err != nil || learnerID == uuid.Nil {
			logger.Warn("Invalid learner header", "value", raw)
			webutil.HandleError(w, logger, model.NewAppError("INVALID_LEARNER_ID", "X-Learner-IDの形式が正しくありません。", "X-Learner-ID", model.ErrForbidden))
			return
		}

		ctx := context.WithValue(r.Context(), model.LearnerIDKey, learnerID)
		ctx = WithLogger(ctx, logger.With("learner_id", learnerID))
		next.ServeHTTP(w, r.WithContext(ctx))
	})
}

// GetLearnerIDFromContext はコンテキストから学習者IDを取り出す
func GetLearnerIDFromContext(ctx context.Context) (uuid.UUID, error) {
	value, ok := ctx.Value(model.LearnerIDKey).(uuid.UUID)
	if !ok {
		// ミドルウェアを通っていない (ルーティングの設定ミス)
		return uuid.Nil, model.NewAppError("INTERNAL_SERVER_ERROR", "コンテキストから学習者情報を取得できませんでした。", "", model.ErrInternalServer)
	}
	return value, nil
}

// internal/handlers/review_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/service"
	"go_4_vocab_srs/internal/webutil"
)

type ReviewHandler struct {
	service service.ReviewService
}

func NewReviewHandler(s service.ReviewService) *ReviewHandler {
	return &ReviewHandler{service: s}
}

// SubmitReview は1回分の回答を記録し、更新後の進捗を返す
func (h *ReviewHandler) SubmitReview(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "SubmitReview")

	learnerID, ok := learnerFromContext(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDParam(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("word_id", wordID.String()))

	var req model.SubmitReviewRequest
	if err := webutil.DecodeJSONBody(r, logger, &req); err != nil {
		logger.Warn("Invalid review request", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	resp, err := h.service.SubmitReview(r.Context(), learnerID, wordID, &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Review submitted", slog.Int("grade", resp.Grade))
	webutil.RespondWithJSON(w, http.StatusOK, resp, logger)
}

// GetDueCount は今復習すべき単語の数を返す
func (h *ReviewHandler) GetDueCount(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetDueCount")

	learnerID, ok := learnerFromContext(w, r, logger)
	if !ok {
		return
	}

	count, err := h.service.CountDue(r.Context(), learnerID)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, model.DueCountResponse{Count: count}, logger)
}

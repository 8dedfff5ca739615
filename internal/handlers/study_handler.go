// internal/handlers/study_handler.go
package handlers

import (
	"log/slog"
	"net/http"

	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/service"
	"go_4_vocab_srs/internal/webutil"
)

type StudyHandler struct {
	service service.StudyService
}

func NewStudyHandler(s service.StudyService) *StudyHandler {
	return &StudyHandler{service: s}
}

// GetStudySession は ?mode=&limit=&shuffle= に従って学習セッションを組み立てる
func (h *StudyHandler) GetStudySession(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetStudySession")

	learnerID, ok := learnerFromContext(w, r, logger)
	if !ok {
		return
	}

	limit, err := queryInt(r, "limit")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	shuffle, err := queryBool(r, "shuffle")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	req := &model.StudyRequest{
		Mode:    r.URL.Query().Get("mode"),
		Limit:   limit,
		Shuffle: shuffle,
	}

	cards, err := h.service.GetStudySession(r.Context(), learnerID, req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if cards == nil {
		cards = []*model.StudyCard{}
	}
	logger.Info("Study session composed", slog.String("mode", req.Mode), slog.Int("count", len(cards)))
	webutil.RespondWithJSON(w, http.StatusOK, cards, logger)
}

// internal/handlers/word_handler.go
package handlers

import (
	"errors"
	"log/slog"
	"net/http"

	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/service"
	"go_4_vocab_srs/internal/webutil"
)

type WordHandler struct {
	service service.WordService
}

func NewWordHandler(s service.WordService) *WordHandler {
	return &WordHandler{service: s}
}

// PostWord は単語をカタログに登録する
func (h *WordHandler) PostWord(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "PostWord")

	var req model.PostWordRequest
	if err := webutil.DecodeJSONBody(r, logger, &req); err != nil {
		logger.Warn("Invalid request body", slog.Any("error", err))
		webutil.HandleError(w, logger, err)
		return
	}

	word, err := h.service.CreateWord(r.Context(), &req)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word posted successfully", slog.String("word_id", word.WordID.String()))
	webutil.RespondWithJSON(w, http.StatusCreated, word, logger)
}

// GetWords は ?search=&difficulty=1,2&learned=&starred=&page=&limit=&sort_by=&sort_order= で絞った一覧を返す
func (h *WordHandler) GetWords(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetWords")

	learnerID, ok := learnerFromContext(w, r, logger)
	if !ok {
		return
	}
	filter, err := wordFilterFromQuery(r)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	list, err := h.service.ListWords(r.Context(), learnerID, filter)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	if list.Items == nil {
		list.Items = []*model.WordListItem{}
	}
	logger.Info("Words listed successfully", slog.Int("count", len(list.Items)), slog.Int64("total", list.TotalCount))
	webutil.RespondWithJSON(w, http.StatusOK, list, logger)
}

func wordFilterFromQuery(r *http.Request) (*model.WordFilter, error) {
	q := r.URL.Query()
	filter := &model.WordFilter{
		Search:    q.Get("search"),
		SortBy:    q.Get("sort_by"),
		SortOrder: q.Get("sort_order"),
	}
	var err error
	if filter.Difficulty, err = queryIntList(r, "difficulty"); err != nil {
		return nil, err
	}
	if filter.Learned, err = queryBool(r, "learned"); err != nil {
		return nil, err
	}
	if filter.Starred, err = queryBool(r, "starred"); err != nil {
		return nil, err
	}
	if filter.Page, err = queryInt(r, "page"); err != nil {
		return nil, err
	}
	if filter.Limit, err = queryInt(r, "limit"); err != nil {
		return nil, err
	}
	return filter, nil
}

func (h *WordHandler) GetWord(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetWord")

	wordID, ok := wordIDParam(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("word_id", wordID.String()))

	word, err := h.service.GetWord(r.Context(), wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			logger.Info("Word not found")
		}
		webutil.HandleError(w, logger, err)
		return
	}

	webutil.RespondWithJSON(w, http.StatusOK, word, logger)
}

// DeleteWord は単語を論理削除する
func (h *WordHandler) DeleteWord(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "DeleteWord")

	wordID, ok := wordIDParam(w, r, logger)
	if !ok {
		return
	}
	logger = logger.With(slog.String("word_id", wordID.String()))

	if err := h.service.DeleteWord(r.Context(), wordID); err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	logger.Info("Word deleted successfully")
	w.WriteHeader(http.StatusNoContent)
}

// StarWord は単語にスターを付ける
func (h *WordHandler) StarWord(w http.ResponseWriter, r *http.Request) {
	h.setStar(w, r, "StarWord", true)
}

// UnstarWord はスターを外す
func (h *WordHandler) UnstarWord(w http.ResponseWriter, r *http.Request) {
	h.setStar(w, r, "UnstarWord", false)
}

func (h *WordHandler) setStar(w http.ResponseWriter, r *http.Request, name string, starred bool) {
	logger := handlerLogger(r, name)

	learnerID, ok := learnerFromContext(w, r, logger)
	if !ok {
		return
	}
	wordID, ok := wordIDParam(w, r, logger)
	if !ok {
		return
	}

	var (
		res *model.StarResponse
		err error
	)
	if starred {
		res, err = h.service.StarWord(r.Context(), learnerID, wordID)
	} else {
		res, err = h.service.UnstarWord(r.Context(), learnerID, wordID)
	}
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, res, logger)
}

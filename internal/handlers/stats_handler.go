// internal/handlers/stats_handler.go
package handlers

import (
	"net/http"

	"go_4_vocab_srs/internal/service"
	"go_4_vocab_srs/internal/webutil"
)

type StatsHandler struct {
	service service.StatsService
}

func NewStatsHandler(s service.StatsService) *StatsHandler {
	return &StatsHandler{service: s}
}

func (h *StatsHandler) GetStats(w http.ResponseWriter, r *http.Request) {
	logger := handlerLogger(r, "GetStats")

	learnerID, ok := learnerFromContext(w, r, logger)
	if !ok {
		return
	}
	days, err := queryInt(r, "days")
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}

	stats, err := h.service.GetStats(r.Context(), learnerID, days)
	if err != nil {
		webutil.HandleError(w, logger, err)
		return
	}
	webutil.RespondWithJSON(w, http.StatusOK, stats, logger)
}

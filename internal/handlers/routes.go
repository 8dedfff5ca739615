// internal/handlers/routes.go
package handlers

import (
	"go_4_vocab_srs/internal/middleware"

	"github.com/go-chi/chi/v5"
)

// Handlers は /api/v1 配下のハンドラ一式
type Handlers struct {
	Word   *WordHandler
	Review *ReviewHandler
	Study  *StudyHandler
	Stats  *StatsHandler
}

// Mount は /api/v1 のルートを登録する。すべて X-Learner-ID が必要。
func (hs *Handlers) Mount(r chi.Router) {
	r.Route("/api/v1", func(r chi.Router) {
		r.Use(middleware.LearnerContextMiddleware)

		r.Get("/study", hs.Study.GetStudySession)
		r.Get("/stats", hs.Stats.GetStats)

		r.Route("/reviews", func(r chi.Router) {
			r.Get("/due/count", hs.Review.GetDueCount)
			r.Post("/{word_id}", hs.Review.SubmitReview)
		})

		r.Route("/words", func(r chi.Router) {
			r.Post("/", hs.Word.PostWord)
			r.Get("/", hs.Word.GetWords)
			r.Get("/{word_id}", hs.Word.GetWord)
			r.Delete("/{word_id}", hs.Word.DeleteWord)
			r.Post("/{word_id}/star", hs.Word.StarWord)
			r.Delete("/{word_id}/star", hs.Word.UnstarWord)
		})
	})
}

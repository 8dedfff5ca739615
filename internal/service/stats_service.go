//go:generate mockery --name StatsService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"time"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const maxStatsDays = 365

type StatsService interface {
	GetStats(ctx context.Context, learnerID uuid.UUID, days *int) (*model.StatsResponse, error)
}

type statsService struct {
	db         *gorm.DB
	progRepo   repository.ProgressRepository
	reviewRepo repository.ReviewRepository
	cfg        *config.Config
	now        func() time.Time
}

func NewStatsService(db *gorm.DB, progRepo repository.ProgressRepository, reviewRepo repository.ReviewRepository, cfg *config.Config) StatsService {
	return &statsService{
		db:         db,
		progRepo:   progRepo,
		reviewRepo: reviewRepo,
		cfg:        cfg,
		now:        time.Now,
	}
}

// GetStats は days 日間 (nil なら設定値) の学習統計を返す
func (s *statsService) GetStats(ctx context.Context, learnerID uuid.UUID, daysParam *int) (*model.StatsResponse, error) {
	logger := middleware.GetLogger(ctx)

	days := s.cfg.App.StatsDays
	if daysParam != nil {
		days = *daysParam
	}
	if days < 1 || days > maxStatsDays {
		return nil, model.NewAppError("INVALID_DAYS", "daysは1から365の範囲で指定してください。", "days", model.ErrInvalidInput)
	}

	window := srs.Window{Now: s.now(), Days: days}

	progresses, err := s.progRepo.FindAllByLearner(ctx, s.db, learnerID)
	if err != nil {
		logger.Error("Failed to load progress for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}
	reviews, err := s.reviewRepo.FindByLearnerSince(ctx, s.db, learnerID, window.Start())
	if err != nil {
		logger.Error("Failed to load reviews for stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の取得に失敗しました。", "", err)
	}

	states := make([]srs.MemoryState, len(progresses))
	for i, p := range progresses {
		states[i] = p.ToState()
	}
	events := make([]srs.ReviewEvent, len(reviews))
	for i, r := range reviews {
		events[i] = r.ToEvent()
	}

	summary, err := srs.Aggregate(states, events, window)
	if err != nil {
		// days は検証済みなのでここには来ない想定
		logger.Error("Failed to aggregate stats", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "統計の集計に失敗しました。", "", err)
	}

	logger.Debug("Stats aggregated", "total", summary.TotalItems, "reviews", len(events))
	return model.NewStatsResponse(summary, s.cfg.App.DailyGoal, window.Now), nil
}

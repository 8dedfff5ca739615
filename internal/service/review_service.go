//go:generate mockery --name ReviewService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"time"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	messageCorrect   = "Great job!"
	messageIncorrect = "Keep practicing!"
)

type ReviewService interface {
	SubmitReview(ctx context.Context, learnerID, wordID uuid.UUID, req *model.SubmitReviewRequest) (*model.SubmitReviewResponse, error)
	CountDue(ctx context.Context, learnerID uuid.UUID) (int64, error)
}

type reviewService struct {
	db         *gorm.DB
	wordRepo   repository.WordRepository
	progRepo   repository.ProgressRepository
	reviewRepo repository.ReviewRepository
	cfg        *config.Config
	locks      *keyLocker
	now        func() time.Time
}

func NewReviewService(db *gorm.DB, wordRepo repository.WordRepository, progRepo repository.ProgressRepository, reviewRepo repository.ReviewRepository, cfg *config.Config) ReviewService {
	return &reviewService{
		db:         db,
		wordRepo:   wordRepo,
		progRepo:   progRepo,
		reviewRepo: reviewRepo,
		cfg:        cfg,
		locks:      newKeyLocker(),
		now:        time.Now,
	}
}

// SubmitReview は1回の回答を採点し、記憶状態の更新と復習ログの追記を1トランザクションで行う
func (s *reviewService) SubmitReview(ctx context.Context, learnerID, wordID uuid.UUID, req *model.SubmitReviewRequest) (*model.SubmitReviewResponse, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID)

	grade, responseTimeMs, err := s.resolveGrade(req)
	if err != nil {
		logger.Warn("Invalid review input", "error", err)
		return nil, model.NewAppError("INVALID_REVIEW", "復習結果の内容が正しくありません。", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}
	logger = logger.With("grade", int(grade))

	// 同じ (学習者, 単語) への採点は直列に処理する
	unlock := s.locks.Lock(learnerID.String() + ":" + wordID.String())
	defer unlock()

	progress, err := s.applyReview(ctx, logger, learnerID, wordID, grade, responseTimeMs)
	if errors.Is(err, model.ErrConflict) {
		// 別プロセスが同じ進捗を先に作成した。作成済みの行に対してもう一度だけ適用する。
		logger.Warn("Progress creation conflicted, retrying once", "error", err)
		progress, err = s.applyReview(ctx, logger, learnerID, wordID, grade, responseTimeMs)
	}
	if err != nil {
		var appErr *model.AppError
		if errors.As(err, &appErr) {
			return nil, err
		}
		logger.Error("Failed to apply review", "error", err)
		if errors.Is(err, model.ErrConflict) {
			return nil, model.NewAppError("CONFLICT", "同時に更新されたため復習結果を保存できませんでした。", "", err)
		}
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習結果の保存に失敗しました。", "", err)
	}

	state := progress.ToState()
	correct := grade.IsCorrect()
	message := messageIncorrect
	if correct {
		message = messageCorrect
	}

	logger.Info("Review applied",
		"interval", state.Interval,
		"ease_factor", state.EaseFactor,
		"is_learned", state.IsLearned,
	)
	return &model.SubmitReviewResponse{
		WordID:   wordID,
		Grade:    int(grade),
		Correct:  correct,
		Message:  message,
		Progress: model.NewProgressResponse(state),
	}, nil
}

// resolveGrade は明示されたグレードか、回答内容から導出したグレードを返す
func (s *reviewService) resolveGrade(req *model.SubmitReviewRequest) (srs.Grade, int, error) {
	if req == nil {
		return 0, 0, errors.New("empty request")
	}
	if req.Grade != nil {
		g := srs.Grade(*req.Grade)
		if !g.Valid() {
			return 0, 0, fmt.Errorf("%w: %d", srs.ErrInvalidGrade, *req.Grade)
		}
		responseTimeMs := 0
		if req.ResponseTimeMs != nil {
			responseTimeMs = *req.ResponseTimeMs
		}
		return g, responseTimeMs, nil
	}
	if req.IsCorrect == nil {
		return 0, 0, errors.New("is_correct or grade is required")
	}

	responseTimeMs := s.cfg.App.DefaultResponseTimeMs
	if req.ResponseTimeMs != nil {
		responseTimeMs = *req.ResponseTimeMs
	}
	g, err := srs.DeriveGrade(responseTimeMs, *req.IsCorrect, srs.Confidence(req.Confidence))
	if err != nil {
		return 0, 0, err
	}
	return g, responseTimeMs, nil
}

func (s *reviewService) applyReview(ctx context.Context, logger *slog.Logger, learnerID, wordID uuid.UUID, grade srs.Grade, responseTimeMs int) (*model.LearningProgress, error) {
	var saved *model.LearningProgress

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.wordRepo.FindByID(ctx, tx, wordID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
			}
			logger.Error("Error finding word in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の確認中にエラーが発生しました。", "", err)
		}

		progress, err := s.progRepo.FindByWordID(ctx, tx, learnerID, wordID, true)
		if err != nil && !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error finding progress in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の確認中にエラーが発生しました。", "", err)
		}
		isFound := err == nil

		var prior *srs.MemoryState
		if isFound {
			st := progress.ToState()
			prior = &st
		}

		now := s.now()
		next, err := srs.ApplyGrade(prior, grade, now)
		if err != nil {
			return model.NewAppError("INVALID_GRADE", "グレードが不正です。", "grade", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		}

		if !isFound {
			progress = &model.LearningProgress{
				ProgressID: uuid.New(),
				LearnerID:  learnerID,
				WordID:     wordID,
			}
			progress.ApplyState(next)
			if err := s.progRepo.Create(ctx, tx, progress); err != nil {
				if errors.Is(err, model.ErrConflict) {
					return err
				}
				logger.Error("Error creating new progress", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の作成に失敗しました。", "", err)
			}
			logger.Debug("New progress created", "progress_id", progress.ProgressID)
		} else {
			progress.ApplyState(next)
			if err := s.progRepo.Update(ctx, tx, progress); err != nil {
				logger.Error("Error updating existing progress", "error", err)
				return model.NewAppError("INTERNAL_SERVER_ERROR", "学習進捗の更新に失敗しました。", "", err)
			}
		}

		review := &model.Review{
			ReviewID:       uuid.New(),
			LearnerID:      learnerID,
			WordID:         wordID,
			Grade:          int(grade),
			ResponseTimeMs: responseTimeMs,
			IsCorrect:      grade.IsCorrect(),
			ReviewType:     model.ReviewTypeFlashcard,
			CreatedAt:      now,
		}
		if err := s.reviewRepo.Create(ctx, tx, review); err != nil {
			logger.Error("Error appending review log", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "復習ログの保存に失敗しました。", "", err)
		}

		saved = progress
		return nil
	})
	if err != nil {
		return nil, err
	}
	return saved, nil
}

func (s *reviewService) CountDue(ctx context.Context, learnerID uuid.UUID) (int64, error) {
	logger := middleware.GetLogger(ctx)

	count, err := s.progRepo.CountDueByLearner(ctx, s.db, learnerID, s.now())
	if err != nil {
		logger.Error("Failed to count due words", "error", err)
		return 0, model.NewAppError("INTERNAL_SERVER_ERROR", "復習単語数の取得に失敗しました。", "", err)
	}
	return count, nil
}

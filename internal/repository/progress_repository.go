//go:generate mockery --name ProgressRepository --output ./mocks --outpkg mocks --case=underscore
// internal/repository/progress_repository.go
package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_4_vocab_srs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ProgressRepository interface {
	Create(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error // トランザクション対応
	// forUpdate=true なら Postgres では行ロックを取る (SQLite はトランザクション自体が直列)
	FindByWordID(ctx context.Context, db *gorm.DB, learnerID, wordID uuid.UUID, forUpdate bool) (*model.LearningProgress, error)
	Update(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error // トランザクション対応
	FindDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time, limit int) ([]*model.LearningProgress, error) // WordはPreloadする
	FindAllByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.LearningProgress, error)
	FindByWordIDs(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, wordIDs []uuid.UUID) ([]*model.LearningProgress, error)
	CountDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time) (int64, error)
}

type gormProgressRepository struct {
	// DB接続はService層から渡される想定
}

func NewGormProgressRepository() ProgressRepository {
	return &gormProgressRepository{}
}

func (r *gormProgressRepository) Create(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error {
	// 同じ (learner, word) の同時作成は複合ユニーク制約で ErrConflict になる
	return translateError("gormProgressRepository.Create", tx.WithContext(ctx).Create(progress).Error)
}

func (r *gormProgressRepository) FindByWordID(ctx context.Context, db *gorm.DB, learnerID, wordID uuid.UUID, forUpdate bool) (*model.LearningProgress, error) {
	var progress model.LearningProgress
	q := db.WithContext(ctx)
	if forUpdate && isPostgres(db) {
		q = q.Clauses(clause.Locking{Strength: "UPDATE"})
	}
	result := q.Where("learner_id = ? AND word_id = ?", learnerID, wordID).First(&progress)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		return nil, fmt.Errorf("gormProgressRepository.FindByWordID: %w", result.Error)
	}
	return &progress, nil
}

func (r *gormProgressRepository) Update(ctx context.Context, tx *gorm.DB, progress *model.LearningProgress) error {
	// Streak=0 などのゼロ値も書き込むため Select("*")
	result := tx.WithContext(ctx).
		Model(progress).
		Select("*").
		Omit("ProgressID", "LearnerID", "WordID", "CreatedAt", clause.Associations).
		Updates(progress)
	if result.Error != nil {
		return fmt.Errorf("gormProgressRepository.Update: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

// dueScope は論理削除されていない単語に紐づく、期限切れ (または未設定) の進捗に絞る
func dueScope(learnerID uuid.UUID, now time.Time) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		return db.
			Joins("JOIN words ON words.word_id = learning_progress.word_id AND words.deleted_at IS NULL").
			Where("learning_progress.learner_id = ?", learnerID).
			Where("(learning_progress.next_review_date IS NULL OR learning_progress.next_review_date <= ?)", now)
	}
}

func (r *gormProgressRepository) FindDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time, limit int) ([]*model.LearningProgress, error) {
	var progresses []*model.LearningProgress

	// 優先度の支配項 (期限超過日数) の大きい順、同じ期限なら EF・反復回数の小さい順。
	// NULL は超過 0 扱いなので最後。limit で切った後の最終的な並びはスケジューラの優先度で決める。
	result := db.WithContext(ctx).
		Scopes(dueScope(learnerID, now)).
		Preload("Word").
		Order("learning_progress.next_review_date IS NULL").
		Order("learning_progress.next_review_date ASC").
		Order("learning_progress.ease_factor ASC").
		Order("learning_progress.repetitions ASC").
		Limit(limit).
		Find(&progresses)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgressRepository.FindDueByLearner: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormProgressRepository) FindAllByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID) ([]*model.LearningProgress, error) {
	var progresses []*model.LearningProgress
	result := db.WithContext(ctx).
		Joins("JOIN words ON words.word_id = learning_progress.word_id AND words.deleted_at IS NULL").
		Where("learning_progress.learner_id = ?", learnerID).
		Find(&progresses)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgressRepository.FindAllByLearner: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormProgressRepository) FindByWordIDs(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, wordIDs []uuid.UUID) ([]*model.LearningProgress, error) {
	if len(wordIDs) == 0 {
		return nil, nil
	}
	var progresses []*model.LearningProgress
	result := db.WithContext(ctx).
		Where("learner_id = ? AND word_id IN ?", learnerID, wordIDs).
		Find(&progresses)
	if result.Error != nil {
		return nil, fmt.Errorf("gormProgressRepository.FindByWordIDs: %w", result.Error)
	}
	return progresses, nil
}

func (r *gormProgressRepository) CountDueByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, now time.Time) (int64, error) {
	var count int64
	result := db.WithContext(ctx).
		Model(&model.LearningProgress{}).
		Scopes(dueScope(learnerID, now)).
		Count(&count)
	if result.Error != nil {
		return 0, fmt.Errorf("gormProgressRepository.CountDueByLearner: %w", result.Error)
	}
	return count, nil
}

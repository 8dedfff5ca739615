//go:generate mockery --name StarredWordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"

	"go_4_vocab_srs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// StarredWordRepository は学習者ごとのスター。付け外しはどちらも冪等。
type StarredWordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, star *model.StarredWord) error
	Delete(ctx context.Context, tx *gorm.DB, learnerID, wordID uuid.UUID) error
	// FindStarredWordIDs は wordIDs のうちスター付きのものを返す
	FindStarredWordIDs(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, wordIDs []uuid.UUID) (map[uuid.UUID]bool, error)
}

type gormStarredWordRepository struct{}

func NewGormStarredWordRepository() StarredWordRepository {
	return &gormStarredWordRepository{}
}

func (r *gormStarredWordRepository) Create(ctx context.Context, tx *gorm.DB, star *model.StarredWord) error {
	result := tx.WithContext(ctx).Clauses(clause.OnConflict{DoNothing: true}).Create(star)
	if result.Error != nil {
		return fmt.Errorf("gormStarredWordRepository.Create: %w", result.Error)
	}
	return nil
}

func (r *gormStarredWordRepository) Delete(ctx context.Context, tx *gorm.DB, learnerID, wordID uuid.UUID) error {
	result := tx.WithContext(ctx).
		Where("learner_id = ? AND word_id = ?", learnerID, wordID).
		Delete(&model.StarredWord{})
	if result.Error != nil {
		return fmt.Errorf("gormStarredWordRepository.Delete: %w", result.Error)
	}
	return nil
}

func (r *gormStarredWordRepository) FindStarredWordIDs(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, wordIDs []uuid.UUID) (map[uuid.UUID]bool, error) {
	starred := make(map[uuid.UUID]bool)
	if len(wordIDs) == 0 {
		return starred, nil
	}
	var ids []uuid.UUID
	result := db.WithContext(ctx).
		Model(&model.StarredWord{}).
		Where("learner_id = ? AND word_id IN ?", learnerID, wordIDs).
		Pluck("word_id", &ids)
	if result.Error != nil {
		return nil, fmt.Errorf("gormStarredWordRepository.FindStarredWordIDs: %w", result.Error)
	}
	for _, id := range ids {
		starred[id] = true
	}
	return starred, nil
}

//go:generate mockery --name ReviewRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"fmt"
	"time"

	"go_4_vocab_srs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ReviewRepository は追記専用の復習ログ。更新・削除は持たない。
type ReviewRepository interface {
	Create(ctx context.Context, tx *gorm.DB, review *model.Review) error
	FindByLearnerSince(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, since time.Time) ([]*model.Review, error)
}

type gormReviewRepository struct{}

func NewGormReviewRepository() ReviewRepository {
	return &gormReviewRepository{}
}

func (r *gormReviewRepository) Create(ctx context.Context, tx *gorm.DB, review *model.Review) error {
	return translateError("gormReviewRepository.Create", tx.WithContext(ctx).Create(review).Error)
}

func (r *gormReviewRepository) FindByLearnerSince(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, since time.Time) ([]*model.Review, error) {
	var reviews []*model.Review
	result := db.WithContext(ctx).
		Where("learner_id = ? AND created_at >= ?", learnerID, since).
		Order("created_at ASC").
		Find(&reviews)
	if result.Error != nil {
		return nil, fmt.Errorf("gormReviewRepository.FindByLearnerSince: %w", result.Error)
	}
	return reviews, nil
}

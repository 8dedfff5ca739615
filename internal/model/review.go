// internal/model/review.go
package model

import (
	"time"

	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
)

const ReviewTypeFlashcard = "flashcard"

// Review は追記専用の復習ログ
type Review struct {
	ReviewID       uuid.UUID `gorm:"type:uuid;primaryKey"`
	LearnerID      uuid.UUID `gorm:"type:uuid;not null;index:idx_review_learner_created"`
	WordID         uuid.UUID `gorm:"type:uuid;not null;index"`
	Grade          int       `gorm:"not null"`
	ResponseTimeMs int       `gorm:"not null;default:0"`
	IsCorrect      bool      `gorm:"not null"`
	ReviewType     string    `gorm:"not null;default:'flashcard'"`
	CreatedAt      time.Time `gorm:"not null;index:idx_review_learner_created"`
}

func (Review) TableName() string {
	return "reviews"
}

func (r *Review) ToEvent() srs.ReviewEvent {
	return srs.ReviewEvent{
		LearnerID:      r.LearnerID,
		ItemID:         r.WordID,
		Grade:          srs.Grade(r.Grade),
		ResponseTimeMs: r.ResponseTimeMs,
		WasCorrect:     r.IsCorrect,
		ReviewedAt:     r.CreatedAt,
	}
}

// SubmitReviewRequest は復習結果送信リクエストのDTO
// grade を直接指定しない場合は is_correct / response_time_ms / confidence から導出する
type SubmitReviewRequest struct {
	Grade          *int   `json:"grade,omitempty" validate:"omitempty,min=0,max=5"`
	IsCorrect      *bool  `json:"is_correct,omitempty" validate:"required_without=Grade"`
	ResponseTimeMs *int   `json:"response_time_ms,omitempty" validate:"omitempty,min=0"`
	Confidence     string `json:"confidence,omitempty" validate:"omitempty,oneof=low medium high"`
}

// SubmitReviewResponse は採点後の状態
type SubmitReviewResponse struct {
	WordID   uuid.UUID         `json:"word_id"`
	Grade    int               `json:"grade"`
	Correct  bool              `json:"correct"`
	Message  string            `json:"message"`
	Progress *ProgressResponse `json:"progress"`
}

// DueCountResponse は復習待ち件数
type DueCountResponse struct {
	Count int64 `json:"count"`
}

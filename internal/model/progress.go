// internal/model/progress.go
package model

import (
	"time"

	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
)

// LearningProgress は (学習者, 単語) ごとの記憶状態を表します
type LearningProgress struct {
	ProgressID     uuid.UUID  `gorm:"type:uuid;primaryKey"`
	LearnerID      uuid.UUID  `gorm:"type:uuid;not null;index:idx_learner_word,unique"` // 複合ユニークインデックスの一部
	WordID         uuid.UUID  `gorm:"type:uuid;not null;index:idx_learner_word,unique"` // 複合ユニークインデックスの一部
	EaseFactor     float64    `gorm:"not null;default:2.5"`
	Interval       int        `gorm:"not null;default:1"`
	Repetitions    int        `gorm:"not null;default:0"`
	TotalReviews   int        `gorm:"not null;default:0"`
	CorrectReviews int        `gorm:"not null;default:0"`
	Streak         int        `gorm:"not null;default:0"`
	IsLearned      bool       `gorm:"not null;default:false"`
	NextReviewDate *time.Time `gorm:"index"`
	LastReviewedAt *time.Time
	CreatedAt      time.Time
	UpdatedAt      time.Time

	// 関連 (Preload用)
	Word *Word `gorm:"foreignKey:WordID;references:WordID" json:"-"`
}

func (LearningProgress) TableName() string {
	return "learning_progress"
}

// ToState は永続化された進捗をスケジューラの状態に変換する
func (p *LearningProgress) ToState() srs.MemoryState {
	return srs.MemoryState{
		EaseFactor:     p.EaseFactor,
		Interval:       p.Interval,
		Repetitions:    p.Repetitions,
		LastReviewed:   p.LastReviewedAt,
		NextReview:     p.NextReviewDate,
		TotalReviews:   p.TotalReviews,
		CorrectReviews: p.CorrectReviews,
		Streak:         p.Streak,
		IsLearned:      p.IsLearned,
	}
}

// ApplyState は計算済みの状態を書き戻す。ID類は変更しない。
func (p *LearningProgress) ApplyState(s srs.MemoryState) {
	p.EaseFactor = s.EaseFactor
	p.Interval = s.Interval
	p.Repetitions = s.Repetitions
	p.LastReviewedAt = s.LastReviewed
	p.NextReviewDate = s.NextReview
	p.TotalReviews = s.TotalReviews
	p.CorrectReviews = s.CorrectReviews
	p.Streak = s.Streak
	p.IsLearned = s.IsLearned
}

// ProgressResponse はクライアントに返す記憶状態
type ProgressResponse struct {
	EaseFactor     float64    `json:"ease_factor"`
	Interval       int        `json:"interval"`
	Repetitions    int        `json:"repetitions"`
	NextReview     *time.Time `json:"next_review,omitempty"`
	LastReviewed   *time.Time `json:"last_reviewed,omitempty"`
	TotalReviews   int        `json:"total_reviews"`
	CorrectReviews int        `json:"correct_reviews"`
	Streak         int        `json:"streak"`
	IsLearned      bool       `json:"is_learned"`
}

// NewProgressResponse は状態からレスポンスDTOを作る
func NewProgressResponse(s srs.MemoryState) *ProgressResponse {
	return &ProgressResponse{
		EaseFactor:     s.EaseFactor,
		Interval:       s.Interval,
		Repetitions:    s.Repetitions,
		NextReview:     s.NextReview,
		LastReviewed:   s.LastReviewed,
		TotalReviews:   s.TotalReviews,
		CorrectReviews: s.CorrectReviews,
		Streak:         s.Streak,
		IsLearned:      s.IsLearned,
	}
}

// internal/model/study.go
package model

import (
	"time"

	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
)

// StudyRequest は学習セッションの取得条件
type StudyRequest struct {
	Mode    string
	Limit   *int  // nil なら設定のデフォルト
	Shuffle *bool // nil なら mixed のみシャッフル
}

// StudyCard はセッション内の1枚のカード
type StudyCard struct {
	WordID       uuid.UUID         `json:"word_id"`
	Term         string            `json:"term"`
	Definition   string            `json:"definition"` // 正解表示用に含める
	Example      string            `json:"example,omitempty"`
	PartOfSpeech string            `json:"part_of_speech,omitempty"`
	Difficulty   int               `json:"difficulty"`
	IsNew        bool              `json:"is_new"`
	IsStarred    bool              `json:"is_starred"`
	Progress     *ProgressResponse `json:"progress,omitempty"`
}

// StatsResponse は学習統計
type StatsResponse struct {
	TotalWords            int              `json:"total_words"`
	LearnedWords          int              `json:"learned_words"`
	DueWords              int              `json:"due_words"`
	Accuracy              float64          `json:"accuracy"`
	LongestStreak         int              `json:"longest_streak"`
	AverageEaseFactor     float64          `json:"average_ease_factor"`
	RetentionRate         float64          `json:"retention_rate"`
	AverageResponseTimeMs int              `json:"average_response_time_ms"`
	TodayReviews          int              `json:"today_reviews"`
	DailyGoal             int              `json:"daily_goal"`
	Daily                 []srs.DailyCount `json:"daily"`
	GeneratedAt           time.Time        `json:"generated_at"`
}

// NewStatsResponse は集計結果をレスポンスに変換する
func NewStatsResponse(s srs.Summary, dailyGoal int, now time.Time) *StatsResponse {
	return &StatsResponse{
		TotalWords:            s.TotalItems,
		LearnedWords:          s.LearnedItems,
		DueWords:              s.DueItems,
		Accuracy:              s.Accuracy,
		LongestStreak:         s.LongestStreak,
		AverageEaseFactor:     s.AverageEaseFactor,
		RetentionRate:         s.RetentionRate,
		AverageResponseTimeMs: s.AverageResponseTimeMs,
		TodayReviews:          s.TodayReviews,
		DailyGoal:             dailyGoal,
		Daily:                 s.Daily,
		GeneratedAt:           now,
	}
}

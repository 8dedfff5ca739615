// internal/model/word.go
package model

import (
	"time"

	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// Word は単語カタログの1件 (全学習者で共有)
type Word struct {
	WordID       uuid.UUID      `gorm:"type:uuid;primaryKey" json:"word_id"`
	Term         string         `gorm:"not null;index" json:"term"` // 単語
	Definition   string         `gorm:"not null" json:"definition"` // 単語の定義
	Example      string         `json:"example,omitempty"`
	PartOfSpeech string         `json:"part_of_speech,omitempty"`
	Difficulty   int            `gorm:"not null;default:1;index" json:"difficulty"` // 1-5
	CreatedAt    time.Time      `gorm:"index" json:"created_at"`
	UpdatedAt    time.Time      `json:"updated_at"`
	DeletedAt    gorm.DeletedAt `gorm:"index" json:"-"` // 論理削除用
}

func (Word) TableName() string {
	return "words"
}

// ToItem はスケジューラに渡す形に変換する
func (w *Word) ToItem() srs.Item {
	return srs.Item{
		ID:           w.WordID,
		Text:         w.Term,
		Definition:   w.Definition,
		Example:      w.Example,
		PartOfSpeech: w.PartOfSpeech,
		Difficulty:   w.Difficulty,
		CreatedAt:    w.CreatedAt,
	}
}

// 単語作成リクエストDTO
type PostWordRequest struct {
	Term         string `json:"term" validate:"required,max=100"`
	Definition   string `json:"definition" validate:"required"`
	Example      string `json:"example,omitempty" validate:"omitempty,max=500"`
	PartOfSpeech string `json:"part_of_speech,omitempty" validate:"omitempty,max=30"`
	Difficulty   int    `json:"difficulty,omitempty" validate:"omitempty,min=1,max=5"`
}

// 単語一覧の並び替えキー
const (
	WordSortTerm         = "term"
	WordSortDifficulty   = "difficulty"
	WordSortCreatedAt    = "created_at"
	WordSortLastReviewed = "last_reviewed"
)

// WordFilter は単語一覧の検索条件。nil のフィールドは既定値。
type WordFilter struct {
	Search     string // 単語または意味の部分一致 (大文字小文字を区別しない)
	Difficulty []int
	Learned    *bool
	Starred    *bool
	Page       *int
	Limit      *int
	SortBy     string
	SortOrder  string // asc or desc
}

// WordListItem は一覧の1件。学習者ごとの進捗とスターを含む。
type WordListItem struct {
	*Word
	IsStarred bool              `json:"is_starred"`
	Progress  *ProgressResponse `json:"progress,omitempty"`
}

type WordListResponse struct {
	Items           []*WordListItem `json:"items"`
	TotalCount      int64           `json:"total_count"`
	PageSize        int             `json:"page_size"`
	CurrentPage     int             `json:"current_page"`
	TotalPages      int             `json:"total_pages"`
	HasNextPage     bool            `json:"has_next_page"`
	HasPreviousPage bool            `json:"has_previous_page"`
}

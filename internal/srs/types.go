// internal/srs/types.go
package srs

import (
	"time"

	"github.com/google/uuid"
)

// SM-2 の初期値と下限
const (
	DefaultEaseFactor = 2.5
	MinEaseFactor     = 1.3
	DefaultInterval   = 1
)

// Grade は1回の復習に対する想起の質 (0-5)
type Grade int

const (
	GradeBlackout            Grade = iota // 0: 全く思い出せない
	GradeIncorrect                        // 1: 不正解だが答えを見て思い出した
	GradeIncorrectFamiliar                // 2: 不正解だが見覚えはあった
	GradeCorrectDifficult                 // 3: 正解だがかなり苦労した
	GradeCorrectHesitation                // 4: 少し迷って正解
	GradePerfect                          // 5: 完璧
)

// Valid は 0-5 の範囲内かどうかを返します。
func (g Grade) Valid() bool {
	return g >= GradeBlackout && g <= GradePerfect
}

// IsCorrect は正解扱い (3以上) かどうかを返します。
func (g Grade) IsCorrect() bool {
	return g >= GradeCorrectDifficult
}

// Confidence は学習者の自己申告の自信度
type Confidence string

const (
	ConfidenceLow    Confidence = "low"
	ConfidenceMedium Confidence = "medium"
	ConfidenceHigh   Confidence = "high"
)

// Item は学習対象の単語 (カタログ側が所有し、コアは読み取りのみ)
type Item struct {
	ID           uuid.UUID
	Text         string
	Definition   string
	Example      string
	PartOfSpeech string
	Difficulty   int // 1-5
	CreatedAt    time.Time
}

// MemoryState は (学習者, 単語) ごとの記憶状態
type MemoryState struct {
	EaseFactor     float64
	Interval       int // 日数
	Repetitions    int
	LastReviewed   *time.Time
	NextReview     *time.Time
	TotalReviews   int
	CorrectReviews int
	Streak         int
	IsLearned      bool
}

// NewMemoryState は初回復習前のデフォルト状態を返します。
func NewMemoryState() MemoryState {
	return MemoryState{
		EaseFactor:  DefaultEaseFactor,
		Interval:    DefaultInterval,
		Repetitions: 0,
	}
}

// Schedule は SM-2 の計算結果。カウンタ類は含まない。
type Schedule struct {
	EaseFactor  float64
	Interval    int
	Repetitions int
	NextReview  time.Time
}

// ReviewEvent は追記専用の復習ログ1件
type ReviewEvent struct {
	LearnerID      uuid.UUID
	ItemID         uuid.UUID
	Grade          Grade
	ResponseTimeMs int
	WasCorrect     bool
	ReviewedAt     time.Time
}

// Candidate は復習プールの要素 (単語と現在の記憶状態)
type Candidate struct {
	Item  Item
	State MemoryState
}

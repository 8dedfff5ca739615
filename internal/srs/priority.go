// internal/srs/priority.go
package srs

import (
	"math"
	"time"
)

const day = 24 * time.Hour

// Priority は復習の緊急度を返す (大きいほど優先)。
//
//	10 × 超過日数 + 5 × (3.0 − EF) + max(0, 5 − 連続正解回数)
//
// NextReview が未設定の場合、超過日数は 0 として扱う。
func Priority(state MemoryState, now time.Time) float64 {
	daysOverdue := 0.0
	if state.NextReview != nil {
		daysOverdue = math.Max(0, float64(now.Sub(*state.NextReview))/float64(day))
	}

	overduePriority := daysOverdue * 10
	easePriority := (3.0 - state.EaseFactor) * 5
	repetitionPriority := math.Max(0, float64(5-state.Repetitions))

	return overduePriority + easePriority + repetitionPriority
}

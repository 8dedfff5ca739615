// internal/srs/stats_test.go
package srs

import (
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAggregate_Empty(t *testing.T) {
	s, err := Aggregate(nil, nil, Window{Now: t0, Days: 7})
	require.NoError(t, err)

	assert.Equal(t, 0, s.TotalItems)
	assert.Equal(t, 0, s.LearnedItems)
	assert.Equal(t, 0, s.DueItems)
	assert.Equal(t, 0.0, s.Accuracy)
	assert.Equal(t, 0.0, s.RetentionRate)
	assert.Equal(t, DefaultEaseFactor, s.AverageEaseFactor)
	assert.Equal(t, 0, s.AverageResponseTimeMs)
	assert.Equal(t, 0, s.TodayReviews)
	require.Len(t, s.Daily, 7)
	assert.Equal(t, "2025-06-09", s.Daily[0].Date)
	assert.Equal(t, "2025-06-15", s.Daily[6].Date)
	for _, d := range s.Daily {
		assert.Zero(t, d.Reviews)
		assert.Zero(t, d.Correct)
	}
}

func TestAggregate_Counts(t *testing.T) {
	past := t0.Add(-time.Hour)
	future := t0.Add(48 * time.Hour)
	states := []MemoryState{
		// 習得済み (期限は未来)
		{EaseFactor: 2.6, Interval: 15, Repetitions: 3, TotalReviews: 3, CorrectReviews: 3, Streak: 3, NextReview: &future},
		// 期限切れ
		{EaseFactor: 1.8, Interval: 1, Repetitions: 0, TotalReviews: 4, CorrectReviews: 1, Streak: 0, NextReview: &past},
		// 未復習 (NextReview なし) も期限扱い
		{EaseFactor: 2.5, Interval: 1},
	}

	learner := uuid.New()
	events := []ReviewEvent{
		{LearnerID: learner, ItemID: itemID(1), Grade: 4, WasCorrect: true, ResponseTimeMs: 2000, ReviewedAt: t0.Add(-time.Hour)},
		{LearnerID: learner, ItemID: itemID(2), Grade: 1, WasCorrect: false, ResponseTimeMs: 4000, ReviewedAt: t0.Add(-2 * time.Hour)},
		{LearnerID: learner, ItemID: itemID(1), Grade: 5, WasCorrect: true, ResponseTimeMs: 3000, ReviewedAt: t0.AddDate(0, 0, -2)},
		// 期間外
		{LearnerID: learner, ItemID: itemID(2), Grade: 0, WasCorrect: false, ResponseTimeMs: 9000, ReviewedAt: t0.AddDate(0, 0, -14)},
		// 回答時間なしは平均から除外
		{LearnerID: learner, ItemID: itemID(3), Grade: 3, WasCorrect: true, ReviewedAt: t0.AddDate(0, 0, -6)},
	}

	s, err := Aggregate(states, events, Window{Now: t0, Days: 7})
	require.NoError(t, err)

	assert.Equal(t, 3, s.TotalItems)
	assert.Equal(t, 1, s.LearnedItems)
	assert.Equal(t, 2, s.DueItems)
	assert.InDelta(t, 57.14, s.Accuracy, 1e-9) // 4 / 7
	assert.Equal(t, 3, s.LongestStreak)
	assert.InDelta(t, 2.3, s.AverageEaseFactor, 1e-9)
	assert.InDelta(t, 33.33, s.RetentionRate, 1e-9)
	assert.Equal(t, 3000, s.AverageResponseTimeMs)
	assert.Equal(t, 2, s.TodayReviews)

	require.Len(t, s.Daily, 7)
	assert.Equal(t, DailyCount{Date: "2025-06-09", Reviews: 1, Correct: 1}, s.Daily[0])
	assert.Equal(t, DailyCount{Date: "2025-06-13", Reviews: 1, Correct: 1}, s.Daily[4])
	assert.Equal(t, DailyCount{Date: "2025-06-15", Reviews: 2, Correct: 1}, s.Daily[6])
}

func TestAggregate_BucketsInWindowLocation(t *testing.T) {
	jst := time.FixedZone("JST", 9*60*60)
	now := time.Date(2025, 6, 15, 8, 0, 0, 0, jst)
	// UTC では 6/14 だが JST では 6/15
	ev := ReviewEvent{WasCorrect: true, ReviewedAt: time.Date(2025, 6, 14, 22, 0, 0, 0, time.UTC)}

	s, err := Aggregate(nil, []ReviewEvent{ev}, Window{Now: now, Days: 2})
	require.NoError(t, err)
	assert.Equal(t, "2025-06-15", s.Daily[1].Date)
	assert.Equal(t, 1, s.Daily[1].Reviews)
	assert.Equal(t, 1, s.TodayReviews)
}

func TestAggregate_InvalidWindow(t *testing.T) {
	_, err := Aggregate(nil, nil, Window{Now: t0, Days: 0})
	assert.ErrorIs(t, err, ErrInvalidWindow)
}

func TestWindow_Start(t *testing.T) {
	w := Window{Now: time.Date(2025, 3, 2, 23, 59, 0, 0, time.UTC), Days: 3}
	assert.Equal(t, time.Date(2025, 2, 28, 0, 0, 0, 0, time.UTC), w.Start())
}

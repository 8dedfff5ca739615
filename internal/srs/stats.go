// internal/srs/stats.go
package srs

import (
	"fmt"
	"math"
	"time"
)

const dateLayout = "2006-01-02"

// Window は集計対象期間。Now の日付を最終日とする Days 日間。
type Window struct {
	Now  time.Time
	Days int
}

// Start は期間の初日 0 時 (Now のロケーション) を返す。
func (w Window) Start() time.Time {
	y, m, d := w.Now.Date()
	return time.Date(y, m, d-(w.Days-1), 0, 0, 0, 0, w.Now.Location())
}

// DailyCount は1日分の復習数と正解数
type DailyCount struct {
	Date    string `json:"date"`
	Reviews int    `json:"reviews"`
	Correct int    `json:"correct"`
}

// Summary は記憶状態と復習ログから導出した統計
type Summary struct {
	TotalItems            int
	LearnedItems          int
	DueItems              int
	Accuracy              float64 // %
	LongestStreak         int
	AverageEaseFactor     float64
	RetentionRate         float64 // 習得済み / 全体 (%)
	AverageResponseTimeMs int
	TodayReviews          int
	Daily                 []DailyCount // 古い日付から順に、復習のない日も 0 で埋める
}

// Aggregate は統計を計算する。入力は変更しない。
func Aggregate(states []MemoryState, events []ReviewEvent, w Window) (Summary, error) {
	if w.Days <= 0 {
		return Summary{}, fmt.Errorf("%w: %d", ErrInvalidWindow, w.Days)
	}

	var s Summary
	s.TotalItems = len(states)

	var totalReviews, correctReviews int
	var easeSum float64
	for _, st := range states {
		if IsLearned(st) {
			s.LearnedItems++
		}
		if st.NextReview == nil || !st.NextReview.After(w.Now) {
			s.DueItems++
		}
		totalReviews += st.TotalReviews
		correctReviews += st.CorrectReviews
		if st.Streak > s.LongestStreak {
			s.LongestStreak = st.Streak
		}
		easeSum += st.EaseFactor
	}

	if totalReviews > 0 {
		s.Accuracy = round2(float64(correctReviews) / float64(totalReviews) * 100)
	}
	s.AverageEaseFactor = DefaultEaseFactor
	if len(states) > 0 {
		s.AverageEaseFactor = round2(easeSum / float64(len(states)))
	}
	if s.LearnedItems > 0 {
		s.RetentionRate = round2(float64(s.LearnedItems) / float64(s.TotalItems) * 100)
	}

	start := w.Start()
	s.Daily = make([]DailyCount, w.Days)
	index := make(map[string]int, w.Days)
	for i := 0; i < w.Days; i++ {
		date := start.AddDate(0, 0, i).Format(dateLayout)
		s.Daily[i] = DailyCount{Date: date}
		index[date] = i
	}

	loc := w.Now.Location()
	var responseSum, responseCount int
	for _, ev := range events {
		i, ok := index[ev.ReviewedAt.In(loc).Format(dateLayout)]
		if !ok {
			continue
		}
		s.Daily[i].Reviews++
		if ev.WasCorrect {
			s.Daily[i].Correct++
		}
		if ev.ResponseTimeMs > 0 {
			responseSum += ev.ResponseTimeMs
			responseCount++
		}
	}
	if responseCount > 0 {
		s.AverageResponseTimeMs = int(math.Round(float64(responseSum) / float64(responseCount)))
	}
	s.TodayReviews = s.Daily[w.Days-1].Reviews

	return s, nil
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}

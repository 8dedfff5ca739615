// internal/srs/sm2.go
package srs

import (
	"fmt"
	"math"
	"time"
)

// Update は SuperMemo-2 に従って次の間隔・EF・連続正解回数を計算する。
// prior が nil (初回) またはゼロ値のフィールドはデフォルト値で補う。
// totalReviews / correctReviews / streak はここでは扱わない (ApplyGrade を参照)。
func Update(grade Grade, prior *MemoryState, now time.Time) (Schedule, error) {
	if !grade.Valid() {
		return Schedule{}, fmt.Errorf("%w: %d", ErrInvalidGrade, grade)
	}

	easeFactor := DefaultEaseFactor
	interval := DefaultInterval
	repetitions := 0
	if prior != nil {
		if prior.EaseFactor != 0 {
			easeFactor = prior.EaseFactor
		}
		if prior.Interval != 0 {
			interval = prior.Interval
		}
		repetitions = prior.Repetitions
	}

	if grade.IsCorrect() {
		switch repetitions {
		case 0:
			interval = 1
		case 1:
			interval = 6
		default:
			// 更新前の EF を使う
			interval = int(math.Round(float64(interval) * easeFactor))
		}
		repetitions++
	} else {
		repetitions = 0
		interval = 1
	}

	q := float64(GradePerfect - grade)
	easeFactor += 0.1 - q*(0.08+q*0.02)
	if easeFactor < MinEaseFactor {
		easeFactor = MinEaseFactor
	}
	easeFactor = math.Round(easeFactor*100) / 100

	if interval < 1 {
		interval = 1
	}

	return Schedule{
		EaseFactor:  easeFactor,
		Interval:    interval,
		Repetitions: repetitions,
		NextReview:  now.AddDate(0, 0, interval),
	}, nil
}

// ApplyGrade は1回の採点結果をまとめて反映した新しい状態を返す。
// SM-2 の結果、最終復習日時、カウンタ類、習得フラグを同時に更新するので、
// 呼び出し側がカウンタを別経路で増減させる必要はない。prior は変更しない。
func ApplyGrade(prior *MemoryState, grade Grade, now time.Time) (MemoryState, error) {
	sched, err := Update(grade, prior, now)
	if err != nil {
		return MemoryState{}, err
	}

	next := NewMemoryState()
	if prior != nil {
		next = *prior
	}

	reviewedAt := now
	nextReview := sched.NextReview
	next.EaseFactor = sched.EaseFactor
	next.Interval = sched.Interval
	next.Repetitions = sched.Repetitions
	next.LastReviewed = &reviewedAt
	next.NextReview = &nextReview

	next.TotalReviews++
	if grade.IsCorrect() {
		next.CorrectReviews++
		next.Streak++
	} else {
		next.Streak = 0
	}
	next.IsLearned = IsLearned(next)

	return next, nil
}

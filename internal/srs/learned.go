// internal/srs/learned.go
package srs

// 習得判定の閾値
const (
	learnedMinRepetitions   = 3
	learnedMinInterval      = 7
	learnedMinEaseFactor    = 2.0
	learnedMinCorrectReview = 3
)

// IsLearned は単語を「習得済み」とみなせるかを判定する。
func IsLearned(state MemoryState) bool {
	return state.Repetitions >= learnedMinRepetitions &&
		state.Interval >= learnedMinInterval &&
		state.EaseFactor >= learnedMinEaseFactor &&
		state.CorrectReviews >= learnedMinCorrectReview
}

// internal/srs/grade.go
package srs

import "fmt"

// 回答時間の閾値 (ミリ秒)
const (
	quickWrongThresholdMs  = 3000
	slowCorrectThresholdMs = 8000
	hesitationThresholdMs  = 4000
)

// DeriveGrade は回答時間・正誤・自信度から 0-5 のグレードを決める。
// 不正解は速ければ 1 (惜しい)、遅ければ 0 (当て推量) になる。
// 空の confidence は medium として扱う。
func DeriveGrade(responseTimeMs int, wasCorrect bool, confidence Confidence) (Grade, error) {
	if responseTimeMs < 0 {
		return 0, fmt.Errorf("%w: %d", ErrInvalidResponseTime, responseTimeMs)
	}
	if confidence == "" {
		confidence = ConfidenceMedium
	}
	switch confidence {
	case ConfidenceLow, ConfidenceMedium, ConfidenceHigh:
	default:
		return 0, fmt.Errorf("%w: %q", ErrInvalidConfidence, confidence)
	}

	if !wasCorrect {
		if responseTimeMs < quickWrongThresholdMs {
			return GradeIncorrect, nil
		}
		return GradeBlackout, nil
	}

	if confidence == ConfidenceLow || responseTimeMs > slowCorrectThresholdMs {
		return GradeCorrectDifficult, nil
	}
	if confidence == ConfidenceMedium || responseTimeMs > hesitationThresholdMs {
		return GradeCorrectHesitation, nil
	}
	return GradePerfect, nil
}

// internal/srs/errors.go
package srs

import "errors"

// 呼び出し側の契約違反を表すエラー。
// コアは値を勝手に補正せず、これらを返して失敗させる。
var (
	ErrInvalidGrade        = errors.New("srs: grade must be between 0 and 5")
	ErrInvalidResponseTime = errors.New("srs: response time must not be negative")
	ErrInvalidConfidence   = errors.New("srs: unknown confidence")
	ErrInvalidLimit        = errors.New("srs: limit must be positive")
	ErrInvalidMode         = errors.New("srs: unknown study mode")
	ErrInvalidWindow       = errors.New("srs: stats window must cover at least one day")
)

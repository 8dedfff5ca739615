// internal/model/learner.go
package model

type ContextKey string

const (
	// LearnerIDKey はリクエストコンテキストに学習者IDを格納するキー
	LearnerIDKey ContextKey = "learnerID"
)

package model

import (
	"time"

	"github.com/google/uuid"
)

// StarredWord は学習者が星を付けた単語
type StarredWord struct {
	LearnerID uuid.UUID `gorm:"type:uuid;primaryKey"`
	WordID    uuid.UUID `gorm:"type:uuid;primaryKey;index"`
	CreatedAt time.Time
}

func (StarredWord) TableName() string {
	return "starred_words"
}

type StarResponse struct {
	WordID  uuid.UUID `json:"word_id"`
	Starred bool      `json:"starred"`
}

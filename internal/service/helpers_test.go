package service

import (
	"fmt"
	"testing"
	"time"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"

	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var fixedNow = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

// setupTestDB はテストごとに独立したインメモリSQLiteを用意する
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	// サブテスト名には URI に使えない文字が入るので UUID で名前を付ける
	name := uuid.NewString()
	db, err := gorm.Open(sqlite.Open(fmt.Sprintf("file:%s?mode=memory&cache=shared", name)), &gorm.Config{
		Logger:         logger.Default.LogMode(logger.Silent), // テスト中はログを抑制
		TranslateError: true,
	})
	require.NoError(t, err, "failed to connect database for testing")

	sqlDB, err := db.DB()
	require.NoError(t, err)
	sqlDB.SetMaxOpenConns(1)
	t.Cleanup(func() { sqlDB.Close() })

	require.NoError(t, repository.Migrate(db), "failed to migrate database for testing")
	return db
}

func testConfig() *config.Config {
	cfg := config.Default()
	return &cfg
}

func seedWord(t *testing.T, db *gorm.DB, term string, difficulty int, createdAt time.Time) *model.Word {
	t.Helper()
	w := &model.Word{
		WordID:     uuid.New(),
		Term:       term,
		Definition: term + " の意味",
		Difficulty: difficulty,
		CreatedAt:  createdAt,
	}
	require.NoError(t, db.Create(w).Error)
	return w
}

func seedProgress(t *testing.T, db *gorm.DB, learnerID uuid.UUID, word *model.Word, next time.Time, ease float64, reps int) *model.LearningProgress {
	t.Helper()
	p := &model.LearningProgress{
		ProgressID:     uuid.New(),
		LearnerID:      learnerID,
		WordID:         word.WordID,
		EaseFactor:     ease,
		Interval:       1,
		Repetitions:    reps,
		TotalReviews:   reps,
		CorrectReviews: reps,
		Streak:         reps,
		NextReviewDate: &next,
	}
	require.NoError(t, db.Create(p).Error)
	return p
}

func intPtr(v int) *int    { return &v }
func boolPtr(v bool) *bool { return &v }

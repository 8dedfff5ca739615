package repository

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"testing"
	"time"

	"go_4_vocab_srs/internal/model"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

var baseTime = time.Date(2025, 6, 15, 10, 0, 0, 0, time.UTC)

func setupDB(t *testing.T) *gorm.DB {
	t.Helper()
	// サブテスト名には URI に使えない文字が入るので UUID で名前を付ける
	name := uuid.NewString()
	db, err := NewDB(fmt.Sprintf("file:%s?mode=memory&cache=shared", name), slog.New(slog.NewTextHandler(io.Discard, nil)))
	require.NoError(t, err)
	t.Cleanup(func() {
		sqlDB, _ := db.DB()
		sqlDB.Close()
	})
	require.NoError(t, Migrate(db))
	return db
}

func createWord(t *testing.T, db *gorm.DB, term string, difficulty int, createdAt time.Time) *model.Word {
	t.Helper()
	w := &model.Word{WordID: uuid.New(), Term: term, Definition: term, Difficulty: difficulty, CreatedAt: createdAt}
	require.NoError(t, NewGormWordRepository().Create(context.Background(), db, w))
	return w
}

func createProgress(t *testing.T, db *gorm.DB, learnerID, wordID uuid.UUID, next *time.Time) *model.LearningProgress {
	t.Helper()
	p := &model.LearningProgress{
		ProgressID:     uuid.New(),
		LearnerID:      learnerID,
		WordID:         wordID,
		EaseFactor:     2.5,
		Interval:       1,
		Repetitions:    1,
		NextReviewDate: next,
	}
	require.NoError(t, NewGormProgressRepository().Create(context.Background(), db, p))
	return p
}

func timePtr(t time.Time) *time.Time { return &t }

func TestOpenDialector(t *testing.T) {
	tests := []struct {
		url  string
		want string
	}{
		{"postgres://user:pw@localhost:5432/vocab?sslmode=disable", "postgres"},
		{"postgresql://localhost/vocab", "postgres"},
		{"host=localhost user=u dbname=vocab sslmode=disable", "postgres"},
		{"vocab_srs.db", "sqlite"},
		{"file::memory:?cache=shared", "sqlite"},
	}
	for _, tt := range tests {
		t.Run(tt.url, func(t *testing.T) {
			assert.Equal(t, tt.want, openDialector(tt.url).Name())
		})
	}
}

func TestTranslateError(t *testing.T) {
	assert.NoError(t, translateError("op", nil))
	assert.ErrorIs(t, translateError("op", gorm.ErrDuplicatedKey), model.ErrConflict)
	assert.ErrorIs(t, translateError("op", &pgconn.PgError{Code: "23505"}), model.ErrConflict)

	other := errors.New("disk full")
	err := translateError("op", other)
	assert.ErrorIs(t, err, other)
	assert.NotErrorIs(t, err, model.ErrConflict)
}

func TestWordRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewGormWordRepository()

	apple := createWord(t, db, "apple", 1, baseTime)
	createWord(t, db, "berry", 2, baseTime.Add(time.Second))

	got, err := repo.FindByID(ctx, db, apple.WordID)
	require.NoError(t, err)
	assert.Equal(t, "apple", got.Term)

	_, err = repo.FindByID(ctx, db, uuid.New())
	assert.ErrorIs(t, err, model.ErrNotFound)

	exists, err := repo.CheckTermExists(ctx, db, "apple")
	require.NoError(t, err)
	assert.True(t, exists)

	count, err := repo.Count(ctx, db)
	require.NoError(t, err)
	assert.EqualValues(t, 2, count)

	require.NoError(t, repo.Delete(ctx, db, apple.WordID))
	assert.ErrorIs(t, repo.Delete(ctx, db, apple.WordID), model.ErrNotFound)

	_, err = repo.FindByID(ctx, db, apple.WordID)
	assert.ErrorIs(t, err, model.ErrNotFound)
	exists, err = repo.CheckTermExists(ctx, db, "apple")
	require.NoError(t, err)
	assert.False(t, exists, "論理削除した単語は重複扱いしない")

	all, total, err := repo.List(ctx, db, uuid.New(), WordQuery{Limit: 10, SortBy: model.WordSortTerm})
	require.NoError(t, err)
	assert.Len(t, all, 1)
	assert.EqualValues(t, 1, total)
}

func TestWordRepository_ListPaging(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewGormWordRepository()
	for i, term := range []string{"delta", "alpha", "charlie", "bravo"} {
		createWord(t, db, term, 1, baseTime.Add(time.Duration(i)*time.Second))
	}

	words, total, err := repo.List(ctx, db, uuid.New(), WordQuery{Offset: 1, Limit: 2, SortBy: model.WordSortTerm})
	require.NoError(t, err)
	assert.EqualValues(t, 4, total, "総件数はページングの影響を受けない")
	require.Len(t, words, 2)
	assert.Equal(t, "bravo", words[0].Term)
	assert.Equal(t, "charlie", words[1].Term)

	words, _, err = repo.List(ctx, db, uuid.New(), WordQuery{Limit: 10, SortBy: model.WordSortTerm, Desc: true})
	require.NoError(t, err)
	require.Len(t, words, 4)
	assert.Equal(t, "delta", words[0].Term)
}

func TestStarredWordRepository(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewGormStarredWordRepository()
	learnerID := uuid.New()
	apple := createWord(t, db, "apple", 1, baseTime)
	berry := createWord(t, db, "berry", 1, baseTime)

	require.NoError(t, repo.Create(ctx, db, &model.StarredWord{LearnerID: learnerID, WordID: apple.WordID}))
	require.NoError(t, repo.Create(ctx, db, &model.StarredWord{LearnerID: learnerID, WordID: apple.WordID}), "二重登録は無視する")

	starred, err := repo.FindStarredWordIDs(ctx, db, learnerID, []uuid.UUID{apple.WordID, berry.WordID})
	require.NoError(t, err)
	assert.Equal(t, map[uuid.UUID]bool{apple.WordID: true}, starred)

	starred, err = repo.FindStarredWordIDs(ctx, db, learnerID, nil)
	require.NoError(t, err)
	assert.Empty(t, starred)

	require.NoError(t, repo.Delete(ctx, db, learnerID, apple.WordID))
	require.NoError(t, repo.Delete(ctx, db, learnerID, apple.WordID), "付いていなくてもエラーにしない")
	starred, err = repo.FindStarredWordIDs(ctx, db, learnerID, []uuid.UUID{apple.WordID})
	require.NoError(t, err)
	assert.Empty(t, starred)
}

func TestWordRepository_FindUnseenByLearner(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewGormWordRepository()
	learnerID := uuid.New()

	hard := createWord(t, db, "hard", 4, baseTime)
	easyLate := createWord(t, db, "easy-late", 1, baseTime.Add(2*time.Second))
	easyEarly := createWord(t, db, "easy-early", 1, baseTime.Add(time.Second))
	seen := createWord(t, db, "seen", 1, baseTime)
	createProgress(t, db, learnerID, seen.WordID, timePtr(baseTime))
	// 他の学習者の進捗は影響しない
	createProgress(t, db, uuid.New(), hard.WordID, timePtr(baseTime))

	words, err := repo.FindUnseenByLearner(ctx, db, learnerID, 10)
	require.NoError(t, err)
	require.Len(t, words, 3)
	assert.Equal(t, easyEarly.WordID, words[0].WordID)
	assert.Equal(t, easyLate.WordID, words[1].WordID)
	assert.Equal(t, hard.WordID, words[2].WordID)

	words, err = repo.FindUnseenByLearner(ctx, db, learnerID, 1)
	require.NoError(t, err)
	assert.Len(t, words, 1)
}

func TestReviewRepository_FindByLearnerSince(t *testing.T) {
	ctx := context.Background()
	db := setupDB(t)
	repo := NewGormReviewRepository()
	learnerID := uuid.New()
	w := createWord(t, db, "apple", 1, baseTime)

	for i, at := range []time.Time{baseTime.AddDate(0, 0, -10), baseTime.AddDate(0, 0, -1), baseTime} {
		require.NoError(t, repo.Create(ctx, db, &model.Review{
			ReviewID:       uuid.New(),
			LearnerID:      learnerID,
			WordID:         w.WordID,
			Grade:          4,
			ResponseTimeMs: 1000 * (i + 1),
			IsCorrect:      true,
			ReviewType:     model.ReviewTypeFlashcard,
			CreatedAt:      at,
		}))
	}

	reviews, err := repo.FindByLearnerSince(ctx, db, learnerID, baseTime.AddDate(0, 0, -6))
	require.NoError(t, err)
	require.Len(t, reviews, 2)
	assert.Equal(t, 2000, reviews[0].ResponseTimeMs)
	assert.Equal(t, 3000, reviews[1].ResponseTimeMs)
}

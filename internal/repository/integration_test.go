// integration_test.go
package repository_test

import (
	"context"
	"database/sql"
	"fmt"
	"log/slog"
	"os"
	"sync"
	"testing"
	"time"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/service"

	"github.com/google/uuid"
	_ "github.com/lib/pq" // 起動待ちの疎通確認用
	"github.com/ory/dockertest/v3"
	"github.com/ory/dockertest/v3/docker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

// startPostgres は使い捨ての Postgres コンテナを起動して接続を返す。
// INTEGRATION=1 のときだけ実行する。
func startPostgres(t *testing.T) *gorm.DB {
	t.Helper()
	if os.Getenv("INTEGRATION") != "1" {
		t.Skip("set INTEGRATION=1 to run Postgres integration tests")
	}
	logger := slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: slog.LevelWarn}))

	pool, err := dockertest.NewPool("")
	require.NoError(t, err, "Could not construct pool")
	pool.MaxWait = 120 * time.Second

	resource, err := pool.RunWithOptions(&dockertest.RunOptions{
		Repository: "postgres",
		Tag:        "15-alpine",
		Env: []string{
			"POSTGRES_USER=user",
			"POSTGRES_PASSWORD=secret",
			"POSTGRES_DB=vocab_srs",
		},
	}, func(config *docker.HostConfig) {
		config.AutoRemove = true
		config.RestartPolicy = docker.RestartPolicy{Name: "no"}
	})
	require.NoError(t, err, "Could not start PostgreSQL resource")
	t.Cleanup(func() {
		if err := pool.Purge(resource); err != nil {
			t.Logf("Could not purge resource: %s", err)
		}
	})

	host := os.Getenv("INTEGRATION_DB_HOST")
	if host == "" {
		host = "localhost"
	}
	url := fmt.Sprintf("postgres://user:secret@%s:%s/vocab_srs?sslmode=disable", host, resource.GetPort("5432/tcp"))

	err = pool.Retry(func() error {
		sqlDB, err := sql.Open("postgres", url)
		if err != nil {
			return err
		}
		defer sqlDB.Close()
		return sqlDB.Ping()
	})
	require.NoError(t, err, "Could not connect to PostgreSQL")

	db, err := repository.NewDB(url, logger)
	require.NoError(t, err)
	require.NoError(t, repository.Migrate(db))
	return db
}

func TestPostgres_ConcurrentReviewsOnOneWord(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()
	cfg := config.Default()

	wordRepo := repository.NewGormWordRepository()
	word := &model.Word{WordID: uuid.New(), Term: "harbor", Definition: "港", Difficulty: 1}
	require.NoError(t, wordRepo.Create(ctx, db, word))

	// サービスを別インスタンスにしてプロセス内ロックを共有させない (複数プロセス相当)
	newService := func() service.ReviewService {
		return service.NewReviewService(db, wordRepo, repository.NewGormProgressRepository(), repository.NewGormReviewRepository(), &cfg)
	}
	services := []service.ReviewService{newService(), newService()}

	learnerID := uuid.New()
	const perService = 5
	var wg sync.WaitGroup
	errs := make(chan error, perService*len(services))
	for _, svc := range services {
		for i := 0; i < perService; i++ {
			wg.Add(1)
			go func(svc service.ReviewService) {
				defer wg.Done()
				grade := 4
				_, err := svc.SubmitReview(ctx, learnerID, word.WordID, &model.SubmitReviewRequest{Grade: &grade})
				errs <- err
			}(svc)
		}
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		assert.NoError(t, err)
	}

	progress, err := repository.NewGormProgressRepository().FindByWordID(ctx, db, learnerID, word.WordID, false)
	require.NoError(t, err)
	assert.Equal(t, perService*len(services), progress.TotalReviews, "更新が失われていない")
	assert.Equal(t, perService*len(services), progress.Repetitions)

	reviews, err := repository.NewGormReviewRepository().FindByLearnerSince(ctx, db, learnerID, time.Time{})
	require.NoError(t, err)
	assert.Len(t, reviews, perService*len(services))
}

func TestPostgres_DuplicateProgressIsConflict(t *testing.T) {
	db := startPostgres(t)
	ctx := context.Background()

	word := &model.Word{WordID: uuid.New(), Term: "anchor", Definition: "錨", Difficulty: 1}
	require.NoError(t, repository.NewGormWordRepository().Create(ctx, db, word))

	progRepo := repository.NewGormProgressRepository()
	learnerID := uuid.New()
	first := &model.LearningProgress{ProgressID: uuid.New(), LearnerID: learnerID, WordID: word.WordID, EaseFactor: 2.5}
	require.NoError(t, progRepo.Create(ctx, db, first))

	dup := &model.LearningProgress{ProgressID: uuid.New(), LearnerID: learnerID, WordID: word.WordID, EaseFactor: 2.5}
	assert.ErrorIs(t, progRepo.Create(ctx, db, dup), model.ErrConflict)
}

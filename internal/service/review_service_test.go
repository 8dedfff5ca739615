// internal/service/review_service_test.go
package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/repository/mocks" // モックリポジトリのパス

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func newTestReviewService(db *gorm.DB) *reviewService {
	s := NewReviewService(db,
		repository.NewGormWordRepository(),
		repository.NewGormProgressRepository(),
		repository.NewGormReviewRepository(),
		testConfig(),
	).(*reviewService)
	s.now = func() time.Time { return fixedNow }
	return s
}

func Test_reviewService_SubmitReview(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name         string
		req          *model.SubmitReviewRequest
		wantErr      error
		wantGrade    int
		wantCorrect  bool
		wantInterval int
		wantReps     int
		wantMessage  string
	}{
		{
			name:         "正常系: グレード指定の初回正解",
			req:          &model.SubmitReviewRequest{Grade: intPtr(4)},
			wantGrade:    4,
			wantCorrect:  true,
			wantInterval: 1,
			wantReps:     1,
			wantMessage:  "Great job!",
		},
		{
			name:         "正常系: 回答時間なしは 5000ms 扱いで grade 4",
			req:          &model.SubmitReviewRequest{IsCorrect: boolPtr(true)},
			wantGrade:    4,
			wantCorrect:  true,
			wantInterval: 1,
			wantReps:     1,
			wantMessage:  "Great job!",
		},
		{
			name:         "正常系: 自信ありの素早い正解は grade 5",
			req:          &model.SubmitReviewRequest{IsCorrect: boolPtr(true), ResponseTimeMs: intPtr(1500), Confidence: "high"},
			wantGrade:    5,
			wantCorrect:  true,
			wantInterval: 1,
			wantReps:     1,
			wantMessage:  "Great job!",
		},
		{
			name:         "正常系: 素早い誤答は grade 1",
			req:          &model.SubmitReviewRequest{IsCorrect: boolPtr(false), ResponseTimeMs: intPtr(2500)},
			wantGrade:    1,
			wantCorrect:  false,
			wantInterval: 1,
			wantReps:     0,
			wantMessage:  "Keep practicing!",
		},
		{
			name:    "異常系: グレードが範囲外",
			req:     &model.SubmitReviewRequest{Grade: intPtr(6)},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "異常系: 正誤もグレードもない",
			req:     &model.SubmitReviewRequest{},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "異常系: 未知の自信度",
			req:     &model.SubmitReviewRequest{IsCorrect: boolPtr(true), Confidence: "certain"},
			wantErr: model.ErrInvalidInput,
		},
		{
			name:    "異常系: 負の回答時間",
			req:     &model.SubmitReviewRequest{IsCorrect: boolPtr(true), ResponseTimeMs: intPtr(-5)},
			wantErr: model.ErrInvalidInput,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			db := setupTestDB(t)
			s := newTestReviewService(db)
			learnerID := uuid.New()
			word := seedWord(t, db, "apple", 1, fixedNow)

			resp, err := s.SubmitReview(ctx, learnerID, word.WordID, tt.req)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
				assert.Nil(t, resp)

				var count int64
				require.NoError(t, db.Model(&model.Review{}).Count(&count).Error)
				assert.Zero(t, count, "エラー時はログを残さない")
				return
			}

			require.NoError(t, err)
			require.NotNil(t, resp)
			assert.Equal(t, word.WordID, resp.WordID)
			assert.Equal(t, tt.wantGrade, resp.Grade)
			assert.Equal(t, tt.wantCorrect, resp.Correct)
			assert.Equal(t, tt.wantMessage, resp.Message)
			assert.Equal(t, tt.wantInterval, resp.Progress.Interval)
			assert.Equal(t, tt.wantReps, resp.Progress.Repetitions)
			assert.Equal(t, 1, resp.Progress.TotalReviews)
			require.NotNil(t, resp.Progress.NextReview)
			assert.True(t, resp.Progress.NextReview.Equal(fixedNow.AddDate(0, 0, tt.wantInterval)))

			var reviews []model.Review
			require.NoError(t, db.Find(&reviews).Error)
			require.Len(t, reviews, 1)
			assert.Equal(t, tt.wantGrade, reviews[0].Grade)
			assert.Equal(t, tt.wantCorrect, reviews[0].IsCorrect)
			assert.Equal(t, learnerID, reviews[0].LearnerID)
			assert.Equal(t, model.ReviewTypeFlashcard, reviews[0].ReviewType)
		})
	}
}

func Test_reviewService_SubmitReview_Sequence(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	s := newTestReviewService(db)
	learnerID := uuid.New()
	word := seedWord(t, db, "river", 2, fixedNow)

	now := fixedNow
	s.now = func() time.Time { return now }

	wantIntervals := []int{1, 6, 15}
	var last *model.SubmitReviewResponse
	for i, want := range wantIntervals {
		resp, err := s.SubmitReview(ctx, learnerID, word.WordID, &model.SubmitReviewRequest{Grade: intPtr(4)})
		require.NoError(t, err)
		assert.Equal(t, want, resp.Progress.Interval, "review #%d", i+1)
		assert.Equal(t, i+1, resp.Progress.Repetitions)
		now = now.AddDate(0, 0, want)
		last = resp
	}
	assert.True(t, last.Progress.IsLearned)
	assert.Equal(t, 3, last.Progress.Streak)

	// 不正解でリセット
	resp, err := s.SubmitReview(ctx, learnerID, word.WordID, &model.SubmitReviewRequest{Grade: intPtr(0)})
	require.NoError(t, err)
	assert.Equal(t, 0, resp.Progress.Repetitions)
	assert.Equal(t, 1, resp.Progress.Interval)
	assert.Equal(t, 0, resp.Progress.Streak)
	assert.Equal(t, 4, resp.Progress.TotalReviews)
	assert.Equal(t, 3, resp.Progress.CorrectReviews)
	assert.InDelta(t, 1.7, resp.Progress.EaseFactor, 1e-9)
	assert.False(t, resp.Progress.IsLearned)

	// DB 上の状態も同じ (Streak=0 などゼロ値も書き込まれている)
	var stored model.LearningProgress
	require.NoError(t, db.Where("learner_id = ? AND word_id = ?", learnerID, word.WordID).First(&stored).Error)
	assert.Equal(t, 0, stored.Streak)
	assert.Equal(t, 0, stored.Repetitions)
	assert.False(t, stored.IsLearned)

	var count int64
	require.NoError(t, db.Model(&model.Review{}).Count(&count).Error)
	assert.Equal(t, int64(4), count)
}

func Test_reviewService_SubmitReview_WordNotFound(t *testing.T) {
	db := setupTestDB(t)
	s := newTestReviewService(db)

	_, err := s.SubmitReview(context.Background(), uuid.New(), uuid.New(), &model.SubmitReviewRequest{Grade: intPtr(3)})
	assert.ErrorIs(t, err, model.ErrNotFound)

	var appErr *model.AppError
	require.True(t, errors.As(err, &appErr))
	assert.Equal(t, "WORD_NOT_FOUND", appErr.Detail.Code)
}

func Test_reviewService_SubmitReview_LearnersAreIndependent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	s := newTestReviewService(db)
	word := seedWord(t, db, "cloud", 1, fixedNow)
	alice, bob := uuid.New(), uuid.New()

	_, err := s.SubmitReview(ctx, alice, word.WordID, &model.SubmitReviewRequest{Grade: intPtr(5)})
	require.NoError(t, err)
	_, err = s.SubmitReview(ctx, alice, word.WordID, &model.SubmitReviewRequest{Grade: intPtr(5)})
	require.NoError(t, err)

	resp, err := s.SubmitReview(ctx, bob, word.WordID, &model.SubmitReviewRequest{Grade: intPtr(5)})
	require.NoError(t, err)
	assert.Equal(t, 1, resp.Progress.TotalReviews)
	assert.Equal(t, 1, resp.Progress.Interval)
}

func Test_reviewService_SubmitReview_Concurrent(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	s := newTestReviewService(db)
	learnerID := uuid.New()
	word := seedWord(t, db, "storm", 1, fixedNow)

	const n = 10
	var wg sync.WaitGroup
	errs := make(chan error, n)
	for i := 0; i < n; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := s.SubmitReview(ctx, learnerID, word.WordID, &model.SubmitReviewRequest{Grade: intPtr(4)})
			errs <- err
		}()
	}
	wg.Wait()
	close(errs)
	for err := range errs {
		require.NoError(t, err)
	}

	// 更新が失われていない
	var stored model.LearningProgress
	require.NoError(t, db.Where("learner_id = ? AND word_id = ?", learnerID, word.WordID).First(&stored).Error)
	assert.Equal(t, n, stored.TotalReviews)
	assert.Equal(t, n, stored.Repetitions)

	var progressCount, reviewCount int64
	require.NoError(t, db.Model(&model.LearningProgress{}).Count(&progressCount).Error)
	require.NoError(t, db.Model(&model.Review{}).Count(&reviewCount).Error)
	assert.Equal(t, int64(1), progressCount)
	assert.Equal(t, int64(n), reviewCount)
}

func Test_reviewService_SubmitReview_RetryOnConflict(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	learnerID := uuid.New()
	wordID := uuid.New()
	word := &model.Word{WordID: wordID, Term: "race", Definition: "競争"}

	tests := []struct {
		name      string
		setupMock func(w *mocks.WordRepository, p *mocks.ProgressRepository, r *mocks.ReviewRepository)
		wantErr   error
		wantTotal int
	}{
		{
			name: "正常系: 初回作成が競合したら既存行を更新する",
			setupMock: func(w *mocks.WordRepository, p *mocks.ProgressRepository, r *mocks.ReviewRepository) {
				w.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), wordID).Return(word, nil).Twice()
				// 1回目: 進捗なし → 作成で競合
				p.On("FindByWordID", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, wordID, true).
					Return(nil, model.ErrNotFound).Once()
				p.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.LearningProgress")).
					Return(fmt.Errorf("gormProgressRepository.Create: %w", model.ErrConflict)).Once()
				// 2回目: 他方が作成した行が見える
				existing := &model.LearningProgress{
					ProgressID: uuid.New(), LearnerID: learnerID, WordID: wordID,
					EaseFactor: 2.5, Interval: 1, Repetitions: 1, TotalReviews: 1, CorrectReviews: 1, Streak: 1,
				}
				p.On("FindByWordID", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, wordID, true).
					Return(existing, nil).Once()
				p.On("Update", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.LearningProgress")).
					Return(nil).Once()
				r.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Review")).
					Return(nil).Once()
			},
			wantTotal: 2,
		},
		{
			name: "異常系: 2回続けて競合したら CONFLICT",
			setupMock: func(w *mocks.WordRepository, p *mocks.ProgressRepository, r *mocks.ReviewRepository) {
				w.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), wordID).Return(word, nil).Twice()
				p.On("FindByWordID", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, wordID, true).
					Return(nil, model.ErrNotFound).Twice()
				p.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.LearningProgress")).
					Return(model.ErrConflict).Twice()
			},
			wantErr: model.ErrConflict,
		},
		{
			name: "異常系: 復習ログの保存失敗はロールバック",
			setupMock: func(w *mocks.WordRepository, p *mocks.ProgressRepository, r *mocks.ReviewRepository) {
				w.On("FindByID", ctx, mock.AnythingOfType("*gorm.DB"), wordID).Return(word, nil).Once()
				p.On("FindByWordID", ctx, mock.AnythingOfType("*gorm.DB"), learnerID, wordID, true).
					Return(nil, model.ErrNotFound).Once()
				p.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.LearningProgress")).
					Return(nil).Once()
				r.On("Create", ctx, mock.AnythingOfType("*gorm.DB"), mock.AnythingOfType("*model.Review")).
					Return(errors.New("disk full")).Once()
			},
			wantErr: model.ErrInternalServer,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			wordRepo := mocks.NewWordRepository(t)
			progRepo := mocks.NewProgressRepository(t)
			reviewRepo := mocks.NewReviewRepository(t)
			tt.setupMock(wordRepo, progRepo, reviewRepo)

			s := NewReviewService(db, wordRepo, progRepo, reviewRepo, testConfig()).(*reviewService)
			s.now = func() time.Time { return fixedNow }

			resp, err := s.SubmitReview(ctx, learnerID, wordID, &model.SubmitReviewRequest{Grade: intPtr(4)})
			if tt.wantErr != nil {
				require.Error(t, err)
				if tt.wantErr == model.ErrInternalServer {
					var appErr *model.AppError
					require.True(t, errors.As(err, &appErr))
					assert.Equal(t, "INTERNAL_SERVER_ERROR", appErr.Detail.Code)
				} else {
					assert.ErrorIs(t, err, tt.wantErr)
				}
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.wantTotal, resp.Progress.TotalReviews)
			assert.Equal(t, 6, resp.Progress.Interval)
		})
	}
}

func Test_reviewService_CountDue(t *testing.T) {
	ctx := context.Background()
	db := setupTestDB(t)
	s := newTestReviewService(db)
	learnerID := uuid.New()

	w1 := seedWord(t, db, "one", 1, fixedNow)
	w2 := seedWord(t, db, "two", 1, fixedNow)
	w3 := seedWord(t, db, "three", 1, fixedNow)
	w4 := seedWord(t, db, "four", 1, fixedNow)
	seedProgress(t, db, learnerID, w1, fixedNow.Add(-48*time.Hour), 2.5, 2)
	seedProgress(t, db, learnerID, w2, fixedNow.Add(-time.Minute), 2.5, 2)
	seedProgress(t, db, learnerID, w3, fixedNow.Add(72*time.Hour), 2.5, 2)
	seedProgress(t, db, learnerID, w4, fixedNow.Add(-time.Hour), 2.5, 2)
	// 別の学習者
	seedProgress(t, db, uuid.New(), w1, fixedNow.Add(-time.Hour), 2.5, 2)
	// 削除済みの単語は数えない
	require.NoError(t, db.Delete(&model.Word{}, "word_id = ?", w4.WordID).Error)

	count, err := s.CountDue(ctx, learnerID)
	require.NoError(t, err)
	assert.Equal(t, int64(2), count)
}

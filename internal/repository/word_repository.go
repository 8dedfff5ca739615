//go:generate mockery --name WordRepository --output ./mocks --outpkg mocks --case=underscore
package repository

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type WordRepository interface {
	Create(ctx context.Context, tx *gorm.DB, word *model.Word) error
	FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error)
	// List は条件に合う単語の1ページ分と、ページングしない場合の総件数を返す
	List(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, q WordQuery) ([]*model.Word, int64, error)
	FindUnseenByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, limit int) ([]*model.Word, error)
	Count(ctx context.Context, db *gorm.DB) (int64, error)
	Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error
	CheckTermExists(ctx context.Context, db *gorm.DB, term string) (bool, error)
}

type gormWordRepository struct{}

func NewGormWordRepository() WordRepository {
	return &gormWordRepository{}
}

func (r *gormWordRepository) Create(ctx context.Context, tx *gorm.DB, word *model.Word) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Create(word)
	if result.Error != nil {
		logger.Error("Error creating word in DB",
			"error", result.Error,
			"term", word.Term,
		)
		return translateError("gormWordRepository.Create", result.Error)
	}
	return nil
}

func (r *gormWordRepository) FindByID(ctx context.Context, db *gorm.DB, wordID uuid.UUID) (*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var word model.Word
	result := db.WithContext(ctx).Where("word_id = ?", wordID).First(&word)
	if result.Error != nil {
		if errors.Is(result.Error, gorm.ErrRecordNotFound) {
			return nil, model.ErrNotFound
		}
		logger.Error("Error finding word by ID in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindByID: %w", result.Error)
	}
	return &word, nil
}

// WordQuery は検証済みの一覧条件
type WordQuery struct {
	Search       string
	Difficulties []int
	Learned      *bool
	Starred      *bool
	Offset       int
	Limit        int
	SortBy       string
	Desc         bool
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

func searchScope(search string) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if search == "" {
			return db
		}
		pattern := "%" + likeEscaper.Replace(strings.ToLower(search)) + "%"
		return db.Where(`(LOWER(words.term) LIKE ? ESCAPE '\' OR LOWER(words.definition) LIKE ? ESCAPE '\')`, pattern, pattern)
	}
}

func difficultyScope(difficulties []int) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if len(difficulties) == 0 {
			return db
		}
		return db.Where("words.difficulty IN ?", difficulties)
	}
}

// learnedScope は学習者の習得済みフラグで絞る。進捗のない単語は未習得扱い。
func learnedScope(learnerID uuid.UUID, learned *bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if learned == nil {
			return db
		}
		cond := "EXISTS (SELECT 1 FROM learning_progress lp WHERE lp.word_id = words.word_id AND lp.learner_id = ? AND lp.is_learned = ?)"
		if !*learned {
			cond = "NOT " + cond
		}
		return db.Where(cond, learnerID, true)
	}
}

func starredScope(learnerID uuid.UUID, starred *bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if starred == nil {
			return db
		}
		cond := "EXISTS (SELECT 1 FROM starred_words sw WHERE sw.word_id = words.word_id AND sw.learner_id = ?)"
		if !*starred {
			cond = "NOT " + cond
		}
		return db.Where(cond, learnerID)
	}
}

var sortColumns = map[string]string{
	model.WordSortTerm:       "term",
	model.WordSortDifficulty: "difficulty",
	model.WordSortCreatedAt:  "created_at",
}

// wordOrder は並び替え条件を付ける。last_reviewed では未復習の単語が向きに関係なく最後になる。
func wordOrder(learnerID uuid.UUID, sortBy string, desc bool) func(*gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		if sortBy == model.WordSortLastReviewed {
			dir := "ASC"
			if desc {
				dir = "DESC"
			}
			lastReviewed := "(SELECT lp.last_reviewed_at FROM learning_progress lp WHERE lp.word_id = words.word_id AND lp.learner_id = ?)"
			return db.Order(clause.OrderBy{Expression: clause.Expr{
				SQL:  lastReviewed + " IS NULL, " + lastReviewed + " " + dir + ", words.term ASC",
				Vars: []interface{}{learnerID, learnerID},
			}})
		}
		column, ok := sortColumns[sortBy]
		if !ok {
			column = "term"
		}
		return db.
			Order(clause.OrderByColumn{Column: clause.Column{Table: "words", Name: column}, Desc: desc}).
			Order(clause.OrderByColumn{Column: clause.Column{Table: "words", Name: "word_id"}})
	}
}

func (r *gormWordRepository) List(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, q WordQuery) ([]*model.Word, int64, error) {
	logger := middleware.GetLogger(ctx)
	filtered := func() *gorm.DB {
		return db.WithContext(ctx).
			Model(&model.Word{}).
			Scopes(
				searchScope(q.Search),
				difficultyScope(q.Difficulties),
				learnedScope(learnerID, q.Learned),
				starredScope(learnerID, q.Starred),
			)
	}

	var total int64
	if err := filtered().Count(&total).Error; err != nil {
		logger.Error("Error counting words in DB", "error", err)
		return nil, 0, fmt.Errorf("gormWordRepository.List: %w", err)
	}

	var words []*model.Word
	result := filtered().
		Scopes(wordOrder(learnerID, q.SortBy, q.Desc)).
		Offset(q.Offset).
		Limit(q.Limit).
		Find(&words)
	if result.Error != nil {
		logger.Error("Error listing words in DB", "error", result.Error)
		return nil, 0, fmt.Errorf("gormWordRepository.List: %w", result.Error)
	}
	return words, total, nil
}

// FindUnseenByLearner は学習者がまだ一度も復習していない単語を易しい順に返す
func (r *gormWordRepository) FindUnseenByLearner(ctx context.Context, db *gorm.DB, learnerID uuid.UUID, limit int) ([]*model.Word, error) {
	logger := middleware.GetLogger(ctx)
	var words []*model.Word
	result := db.WithContext(ctx).
		Where("NOT EXISTS (SELECT 1 FROM learning_progress lp WHERE lp.word_id = words.word_id AND lp.learner_id = ?)", learnerID).
		Order("difficulty ASC, created_at ASC").
		Limit(limit).
		Find(&words)
	if result.Error != nil {
		logger.Error("Error finding unseen words in DB",
			"error", result.Error,
			"learner_id", learnerID.String(),
		)
		return nil, fmt.Errorf("gormWordRepository.FindUnseenByLearner: %w", result.Error)
	}
	return words, nil
}

func (r *gormWordRepository) Count(ctx context.Context, db *gorm.DB) (int64, error) {
	var count int64
	if err := db.WithContext(ctx).Model(&model.Word{}).Count(&count).Error; err != nil {
		return 0, fmt.Errorf("gormWordRepository.Count: %w", err)
	}
	return count, nil
}

func (r *gormWordRepository) Delete(ctx context.Context, tx *gorm.DB, wordID uuid.UUID) error {
	logger := middleware.GetLogger(ctx)
	result := tx.WithContext(ctx).Where("word_id = ?", wordID).Delete(&model.Word{})
	if result.Error != nil {
		logger.Error("Error deleting word in DB",
			"error", result.Error,
			"word_id", wordID.String(),
		)
		return fmt.Errorf("gormWordRepository.Delete: %w", result.Error)
	}
	if result.RowsAffected == 0 {
		return model.ErrNotFound
	}
	return nil
}

func (r *gormWordRepository) CheckTermExists(ctx context.Context, db *gorm.DB, term string) (bool, error) {
	logger := middleware.GetLogger(ctx)
	var count int64
	result := db.WithContext(ctx).Model(&model.Word{}).Where("term = ?", term).Count(&count)
	if result.Error != nil {
		logger.Error("Error checking term existence in DB",
			"error", result.Error,
			"term", term,
		)
		return false, fmt.Errorf("gormWordRepository.CheckTermExists: %w", result.Error)
	}
	return count > 0, nil
}

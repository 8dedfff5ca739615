//go:generate mockery --name WordService --output ./mocks --outpkg mocks --case=underscore
// internal/service/word_service.go
package service

import (
	"context"
	"errors"
	"strings"

	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	defaultDifficulty   = 1
	defaultWordPageSize = 20
	maxWordPageSize     = 100
)

type WordService interface {
	CreateWord(ctx context.Context, req *model.PostWordRequest) (*model.Word, error)
	GetWord(ctx context.Context, wordID uuid.UUID) (*model.Word, error)
	ListWords(ctx context.Context, learnerID uuid.UUID, filter *model.WordFilter) (*model.WordListResponse, error)
	DeleteWord(ctx context.Context, wordID uuid.UUID) error
	StarWord(ctx context.Context, learnerID, wordID uuid.UUID) (*model.StarResponse, error)
	UnstarWord(ctx context.Context, learnerID, wordID uuid.UUID) (*model.StarResponse, error)
}

type wordService struct {
	db       *gorm.DB // トランザクション用にDB接続を持つ
	wordRepo repository.WordRepository
	progRepo repository.ProgressRepository
	starRepo repository.StarredWordRepository
}

func NewWordService(db *gorm.DB, wordRepo repository.WordRepository, progRepo repository.ProgressRepository, starRepo repository.StarredWordRepository) WordService {
	return &wordService{
		db:       db,
		wordRepo: wordRepo,
		progRepo: progRepo,
		starRepo: starRepo,
	}
}

func (s *wordService) CreateWord(ctx context.Context, req *model.PostWordRequest) (*model.Word, error) {
	logger := middleware.GetLogger(ctx).With("term", req.Term)

	if req.Term == "" || req.Definition == "" {
		return nil, model.NewAppError("VALIDATION_ERROR", "単語と意味は必須です。", "", model.ErrInvalidInput)
	}

	var createdWord *model.Word
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		// 1. 重複チェック
		exists, err := s.wordRepo.CheckTermExists(ctx, tx, req.Term)
		if err != nil {
			logger.Error("Error checking term existence in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の重複確認に失敗しました。", "", err)
		}
		if exists {
			return model.NewAppError("DUPLICATE_TERM", "この単語は既に登録されています。", "term", model.ErrConflict)
		}

		// 2. 単語を作成 (進捗は初回の復習時に作る)
		difficulty := req.Difficulty
		if difficulty == 0 {
			difficulty = defaultDifficulty
		}
		word := &model.Word{
			WordID:       uuid.New(),
			Term:         req.Term,
			Definition:   req.Definition,
			Example:      req.Example,
			PartOfSpeech: req.PartOfSpeech,
			Difficulty:   difficulty,
		}
		if err := s.wordRepo.Create(ctx, tx, word); err != nil {
			if errors.Is(err, model.ErrConflict) {
				return model.NewAppError("DUPLICATE_TERM", "この単語は既に登録されています。", "term", err)
			}
			logger.Error("Error creating word in transaction", "error", err)
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の登録に失敗しました。", "", err)
		}

		createdWord = word
		return nil // コミット
	})
	if err != nil {
		return nil, err
	}

	logger.Info("Word created", "word_id", createdWord.WordID)
	return createdWord, nil
}

func (s *wordService) GetWord(ctx context.Context, wordID uuid.UUID) (*model.Word, error) {
	word, err := s.wordRepo.FindByID(ctx, s.db, wordID)
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return nil, model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Error getting word", "error", err, "word_id", wordID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
	}
	return word, nil
}

// ListWords は条件に合う単語を1ページ分、学習者の進捗とスター付きで返す
func (s *wordService) ListWords(ctx context.Context, learnerID uuid.UUID, filter *model.WordFilter) (*model.WordListResponse, error) {
	logger := middleware.GetLogger(ctx)

	q, page, err := resolveWordQuery(filter)
	if err != nil {
		return nil, err
	}

	words, total, err := s.wordRepo.List(ctx, s.db, learnerID, q)
	if err != nil {
		logger.Error("Error listing words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}

	ids := make([]uuid.UUID, len(words))
	for i, w := range words {
		ids[i] = w.WordID
	}
	progresses, err := s.progRepo.FindByWordIDs(ctx, s.db, learnerID, ids)
	if err != nil {
		logger.Error("Error loading progress for word list", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}
	starred, err := s.starRepo.FindStarredWordIDs(ctx, s.db, learnerID, ids)
	if err != nil {
		logger.Error("Error loading stars for word list", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "単語一覧の取得に失敗しました。", "", err)
	}
	byWord := make(map[uuid.UUID]*model.LearningProgress, len(progresses))
	for _, p := range progresses {
		byWord[p.WordID] = p
	}

	items := make([]*model.WordListItem, len(words))
	for i, w := range words {
		item := &model.WordListItem{Word: w, IsStarred: starred[w.WordID]}
		if p, ok := byWord[w.WordID]; ok {
			item.Progress = model.NewProgressResponse(p.ToState())
		}
		items[i] = item
	}

	totalPages := int((total + int64(q.Limit) - 1) / int64(q.Limit))
	return &model.WordListResponse{
		Items:           items,
		TotalCount:      total,
		PageSize:        q.Limit,
		CurrentPage:     page,
		TotalPages:      totalPages,
		HasNextPage:     page < totalPages,
		HasPreviousPage: page > 1,
	}, nil
}

// resolveWordQuery は既定値を埋めて検証する。limit は上限で頭打ち、0 以下は拒否。
func resolveWordQuery(f *model.WordFilter) (repository.WordQuery, int, error) {
	if f == nil {
		f = &model.WordFilter{}
	}
	page := 1
	if f.Page != nil {
		page = *f.Page
	}
	if page < 1 {
		return repository.WordQuery{}, 0, model.NewAppError("INVALID_PAGE", "pageは1以上を指定してください。", "page", model.ErrInvalidInput)
	}
	limit := defaultWordPageSize
	if f.Limit != nil {
		limit = *f.Limit
	}
	if limit <= 0 {
		return repository.WordQuery{}, 0, model.NewAppError("INVALID_LIMIT", "limitは1以上を指定してください。", "limit", model.ErrInvalidInput)
	}
	if limit > maxWordPageSize {
		limit = maxWordPageSize
	}
	for _, d := range f.Difficulty {
		if d < 1 || d > 5 {
			return repository.WordQuery{}, 0, model.NewAppError("INVALID_DIFFICULTY", "difficultyは1から5の範囲で指定してください。", "difficulty", model.ErrInvalidInput)
		}
	}

	sortBy := f.SortBy
	switch sortBy {
	case "":
		sortBy = model.WordSortTerm
	case model.WordSortTerm, model.WordSortDifficulty, model.WordSortCreatedAt, model.WordSortLastReviewed:
	default:
		return repository.WordQuery{}, 0, model.NewAppError("INVALID_SORT", "sort_byは term, difficulty, created_at, last_reviewed のいずれかを指定してください。", "sort_by", model.ErrInvalidInput)
	}
	var desc bool
	switch f.SortOrder {
	case "", "asc":
	case "desc":
		desc = true
	default:
		return repository.WordQuery{}, 0, model.NewAppError("INVALID_SORT", "sort_orderは asc または desc を指定してください。", "sort_order", model.ErrInvalidInput)
	}

	return repository.WordQuery{
		Search:       strings.TrimSpace(f.Search),
		Difficulties: f.Difficulty,
		Learned:      f.Learned,
		Starred:      f.Starred,
		Offset:       (page - 1) * limit,
		Limit:        limit,
		SortBy:       sortBy,
		Desc:         desc,
	}, page, nil
}

// DeleteWord は単語を論理削除する。進捗と復習ログは残すが、以後のセッション・統計には現れない。
func (s *wordService) DeleteWord(ctx context.Context, wordID uuid.UUID) error {
	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return s.wordRepo.Delete(ctx, tx, wordID)
	})
	if err != nil {
		if errors.Is(err, model.ErrNotFound) {
			return model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
		}
		middleware.GetLogger(ctx).Error("Error deleting word", "error", err, "word_id", wordID)
		return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の削除に失敗しました。", "", err)
	}
	return nil
}

// StarWord は単語にスターを付ける。付いていれば何もしない。
func (s *wordService) StarWord(ctx context.Context, learnerID, wordID uuid.UUID) (*model.StarResponse, error) {
	logger := middleware.GetLogger(ctx).With("word_id", wordID)

	err := s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if _, err := s.wordRepo.FindByID(ctx, tx, wordID); err != nil {
			if errors.Is(err, model.ErrNotFound) {
				return model.NewAppError("WORD_NOT_FOUND", "指定された単語が見つかりません。", "word_id", model.ErrNotFound)
			}
			return model.NewAppError("INTERNAL_SERVER_ERROR", "単語の取得に失敗しました。", "", err)
		}
		if err := s.starRepo.Create(ctx, tx, &model.StarredWord{LearnerID: learnerID, WordID: wordID}); err != nil {
			return model.NewAppError("INTERNAL_SERVER_ERROR", "スターの登録に失敗しました。", "", err)
		}
		return nil
	})
	if err != nil {
		if !errors.Is(err, model.ErrNotFound) {
			logger.Error("Error starring word", "error", err)
		}
		return nil, err
	}
	logger.Info("Word starred")
	return &model.StarResponse{WordID: wordID, Starred: true}, nil
}

// UnstarWord はスターを外す。付いていなくても成功。
func (s *wordService) UnstarWord(ctx context.Context, learnerID, wordID uuid.UUID) (*model.StarResponse, error) {
	if err := s.starRepo.Delete(ctx, s.db, learnerID, wordID); err != nil {
		middleware.GetLogger(ctx).Error("Error unstarring word", "error", err, "word_id", wordID)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "スターの解除に失敗しました。", "", err)
	}
	return &model.StarResponse{WordID: wordID, Starred: false}, nil
}

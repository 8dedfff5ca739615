//go:generate mockery --name StudyService --output ./mocks --outpkg mocks --case=underscore
package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go_4_vocab_srs/internal/config"
	"go_4_vocab_srs/internal/middleware"
	"go_4_vocab_srs/internal/model"
	"go_4_vocab_srs/internal/repository"
	"go_4_vocab_srs/internal/srs"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

type StudyService interface {
	GetStudySession(ctx context.Context, learnerID uuid.UUID, req *model.StudyRequest) ([]*model.StudyCard, error)
}

type studyService struct {
	db       *gorm.DB
	wordRepo repository.WordRepository
	progRepo repository.ProgressRepository
	starRepo repository.StarredWordRepository
	cfg      *config.Config
	composer *srs.Composer
	now      func() time.Time
}

// NewStudyService は StudyService を作成する。composer が nil ならグローバルな乱数源を使う。
func NewStudyService(db *gorm.DB, wordRepo repository.WordRepository, progRepo repository.ProgressRepository, starRepo repository.StarredWordRepository, cfg *config.Config, composer *srs.Composer) StudyService {
	if composer == nil {
		composer = srs.NewComposer(nil)
	}
	return &studyService{
		db:       db,
		wordRepo: wordRepo,
		progRepo: progRepo,
		starRepo: starRepo,
		cfg:      cfg,
		composer: composer,
		now:      time.Now,
	}
}

func (s *studyService) GetStudySession(ctx context.Context, learnerID uuid.UUID, req *model.StudyRequest) ([]*model.StudyCard, error) {
	logger := middleware.GetLogger(ctx)

	mode, err := srs.ParseMode(req.Mode)
	if err != nil {
		return nil, model.NewAppError("INVALID_MODE", "modeは mixed, review, new のいずれかを指定してください。", "mode", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
	}

	limit := s.cfg.App.DefaultStudyLimit
	if req.Limit != nil {
		limit = *req.Limit
	}
	if limit <= 0 {
		return nil, model.NewAppError("INVALID_LIMIT", "limitは1以上を指定してください。", "limit", model.ErrInvalidInput)
	}
	if limit > s.cfg.App.MaxStudyLimit {
		limit = s.cfg.App.MaxStudyLimit
	}

	shuffle := mode == srs.ModeMixed
	if req.Shuffle != nil {
		shuffle = *req.Shuffle
	}
	logger = logger.With("mode", string(mode), "limit", limit)

	now := s.now()

	var dueProgress []*model.LearningProgress
	if mode != srs.ModeNew {
		dueProgress, err = s.progRepo.FindDueByLearner(ctx, s.db, learnerID, now, s.cfg.App.DuePoolLimit)
		if err != nil {
			logger.Error("Failed to find due words", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "復習単語の取得に失敗しました。", "", err)
		}
	}

	var unseen []*model.Word
	if mode != srs.ModeReview {
		// mixed でも新規は最大 limit 件しか選ばれない
		unseen, err = s.wordRepo.FindUnseenByLearner(ctx, s.db, learnerID, limit)
		if err != nil {
			logger.Error("Failed to find unseen words", "error", err)
			return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "新規単語の取得に失敗しました。", "", err)
		}
	}

	words := make(map[uuid.UUID]*model.Word, len(dueProgress)+len(unseen))
	states := make(map[uuid.UUID]srs.MemoryState, len(dueProgress))
	due := make([]srs.Candidate, 0, len(dueProgress))
	for _, p := range dueProgress {
		if p.Word == nil {
			logger.Warn("Found progress with nil Word during session generation, skipping", "progress_id", p.ProgressID)
			continue
		}
		st := p.ToState()
		words[p.WordID] = p.Word
		states[p.WordID] = st
		due = append(due, srs.Candidate{Item: p.Word.ToItem(), State: st})
	}
	fresh := make([]srs.Item, 0, len(unseen))
	for _, w := range unseen {
		words[w.WordID] = w
		fresh = append(fresh, w.ToItem())
	}

	items, err := s.composer.Compose(due, fresh, srs.ComposeOptions{
		Mode:    mode,
		Limit:   limit,
		Shuffle: shuffle,
		Now:     now,
	})
	if err != nil {
		if errors.Is(err, srs.ErrInvalidLimit) || errors.Is(err, srs.ErrInvalidMode) {
			return nil, model.NewAppError("INVALID_STUDY_REQUEST", "学習セッションの条件が正しくありません。", "", fmt.Errorf("%w: %v", model.ErrInvalidInput, err))
		}
		logger.Error("Failed to compose study session", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習セッションの作成に失敗しました。", "", err)
	}

	ids := make([]uuid.UUID, len(items))
	for i, it := range items {
		ids[i] = it.ID
	}
	starred, err := s.starRepo.FindStarredWordIDs(ctx, s.db, learnerID, ids)
	if err != nil {
		logger.Error("Failed to load starred words", "error", err)
		return nil, model.NewAppError("INTERNAL_SERVER_ERROR", "学習セッションの作成に失敗しました。", "", err)
	}

	cards := make([]*model.StudyCard, 0, len(items))
	for _, it := range items {
		card := &model.StudyCard{
			WordID:       it.ID,
			Term:         it.Text,
			Definition:   it.Definition,
			Example:      it.Example,
			PartOfSpeech: it.PartOfSpeech,
			Difficulty:   it.Difficulty,
			IsNew:        true,
			IsStarred:    starred[it.ID],
		}
		if st, ok := states[it.ID]; ok {
			card.IsNew = false
			card.Progress = model.NewProgressResponse(st)
		}
		cards = append(cards, card)
	}

	logger.Info("Study session composed",
		"count", len(cards),
		"due_pool", len(due),
		"new_pool", len(fresh),
		"shuffle", shuffle,
	)
	return cards, nil
}

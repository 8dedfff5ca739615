// internal/srs/queue.go
package srs

import (
	"bytes"
	"fmt"
	"math"
	"math/rand"
	"sort"
	"time"

	"github.com/google/uuid"
)

// Mode は学習セッションの種類
type Mode string

const (
	ModeMixed  Mode = "mixed"
	ModeReview Mode = "review"
	ModeNew    Mode = "new"
)

// mixed モードで復習対象に割り当てる枠の割合
const reviewShare = 0.7

// ParseMode は文字列を Mode に変換する。空文字は mixed。
func ParseMode(s string) (Mode, error) {
	switch Mode(s) {
	case "", ModeMixed:
		return ModeMixed, nil
	case ModeReview, ModeNew:
		return Mode(s), nil
	}
	return "", fmt.Errorf("%w: %q", ErrInvalidMode, s)
}

// Shuffler は並べ替えに使う乱数源。*rand.Rand がそのまま使える。
type Shuffler interface {
	Shuffle(n int, swap func(i, j int))
}

// globalShuffler はパッケージレベルの math/rand を使う (goroutine セーフ)
type globalShuffler struct{}

func (globalShuffler) Shuffle(n int, swap func(i, j int)) { rand.Shuffle(n, swap) }

// ComposeOptions はセッション組み立ての指定
type ComposeOptions struct {
	Mode    Mode
	Limit   int
	Shuffle bool      // false なら順位順 (復習ブロック → 新規ブロック)
	Now     time.Time // 優先度計算の基準時刻。ゼロ値なら time.Now()
}

// Composer は復習プールと新規プールから学習セッションを組み立てる。
type Composer struct {
	shuffler Shuffler
}

// NewComposer は Composer を作成する。s が nil ならグローバルな乱数源を使う。
func NewComposer(s Shuffler) *Composer {
	if s == nil {
		s = globalShuffler{}
	}
	return &Composer{shuffler: s}
}

// Compose は最大 opts.Limit 件の単語を選んで並べて返す。
// 選択は常に順位 (復習は優先度降順、新規は難易度昇順) で決まり、
// Shuffle は選ばれた集合の並び順だけを変える。
func (c *Composer) Compose(due []Candidate, fresh []Item, opts ComposeOptions) ([]Item, error) {
	if opts.Limit <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidLimit, opts.Limit)
	}
	mode, err := ParseMode(string(opts.Mode))
	if err != nil {
		return nil, err
	}
	now := opts.Now
	if now.IsZero() {
		now = time.Now()
	}

	rankedDue := rankDue(due, now)
	rankedNew := rankNew(fresh)

	var dueTake, newTake int
	switch mode {
	case ModeReview:
		dueTake = minInt(len(rankedDue), opts.Limit)
	case ModeNew:
		newTake = minInt(len(rankedNew), opts.Limit)
	default:
		reserved := int(math.Floor(float64(opts.Limit) * reviewShare))
		dueTake = minInt(len(rankedDue), reserved)
		// 余った枠は相互に融通する
		newTake = minInt(len(rankedNew), opts.Limit-dueTake)
		dueTake = minInt(len(rankedDue), opts.Limit-newTake)
	}

	selected := make([]Item, 0, dueTake+newTake)
	seen := make(map[uuid.UUID]struct{}, dueTake+newTake)
	pick := func(items []Item, n int) {
		for _, it := range items {
			if n == 0 {
				return
			}
			if _, dup := seen[it.ID]; dup {
				continue
			}
			seen[it.ID] = struct{}{}
			selected = append(selected, it)
			n--
		}
	}
	pick(rankedDue, dueTake)
	pick(rankedNew, newTake)

	if opts.Shuffle {
		c.shuffler.Shuffle(len(selected), func(i, j int) {
			selected[i], selected[j] = selected[j], selected[i]
		})
	}
	return selected, nil
}

// rankDue は優先度の降順、同点なら ID の昇順に並べる。
func rankDue(due []Candidate, now time.Time) []Item {
	type scored struct {
		item     Item
		priority float64
	}
	list := make([]scored, len(due))
	for i, cand := range due {
		list[i] = scored{item: cand.Item, priority: Priority(cand.State, now)}
	}
	sort.SliceStable(list, func(i, j int) bool {
		if list[i].priority != list[j].priority {
			return list[i].priority > list[j].priority
		}
		return bytes.Compare(list[i].item.ID[:], list[j].item.ID[:]) < 0
	})

	items := make([]Item, len(list))
	for i, s := range list {
		items[i] = s.item
	}
	return items
}

// rankNew は難易度の昇順、次にカタログへの登録順に並べる。
func rankNew(fresh []Item) []Item {
	items := make([]Item, len(fresh))
	copy(items, fresh)
	sort.SliceStable(items, func(i, j int) bool {
		if items[i].Difficulty != items[j].Difficulty {
			return items[i].Difficulty < items[j].Difficulty
		}
		return items[i].CreatedAt.Before(items[j].CreatedAt)
	})
	return items
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package repository

import (
	"errors"
	"fmt"

	"go_4_vocab_srs/internal/model"

	"github.com/jackc/pgx/v5/pgconn"
	"gorm.io/gorm"
)

const pgUniqueViolation = "23505"

// translateError は一意制約違反を model.ErrConflict にまとめる
func translateError(op string, err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return fmt.Errorf("%s: %w: %v", op, model.ErrConflict, err)
	}
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
		return fmt.Errorf("%s: %w: %v", op, model.ErrConflict, err)
	}
	return fmt.Errorf("%s: %w", op, err)
}

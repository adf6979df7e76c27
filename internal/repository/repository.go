package repository

import (
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"
	"github.com/mattn/go-sqlite3"
	"gorm.io/gorm"
)

const (
	DefaultLimit = 100
	MaxLimit     = 100
)

var (
	ErrNotFound         = errors.New("record not found")
	ErrInvalidReference = errors.New("referenced record does not exist")
)

const pgForeignKeyViolation = "23503"

// ListParams selects a window of rows ordered by id.
type ListParams struct {
	Offset int
	Limit  int
}

func (p ListParams) normalize() ListParams {
	if p.Offset < 0 {
		p.Offset = 0
	}
	if p.Limit <= 0 || p.Limit > MaxLimit {
		p.Limit = MaxLimit
	}
	return p
}

func paginate(p ListParams) func(*gorm.DB) *gorm.DB {
	p = p.normalize()
	return func(db *gorm.DB) *gorm.DB {
		return db.Order("id ASC").Offset(p.Offset).Limit(p.Limit)
	}
}

func orderByID(db *gorm.DB) *gorm.DB {
	return db.Order("id ASC")
}

// translate maps gorm and raw driver errors onto the package sentinels.
func translate(err error) error {
	switch {
	case err == nil:
		return nil
	case errors.Is(err, gorm.ErrRecordNotFound):
		return ErrNotFound
	case isForeignKeyViolation(err):
		return fmt.Errorf("%w: %w", ErrInvalidReference, err)
	}
	return err
}

func isForeignKeyViolation(err error) bool {
	var pgErr *pgconn.PgError
	if errors.As(err, &pgErr) {
		return pgErr.Code == pgForeignKeyViolation
	}

	var sqliteErr sqlite3.Error
	if errors.As(err, &sqliteErr) {
		return sqliteErr.ExtendedCode == sqlite3.ErrConstraintForeignKey
	}

	return false
}

// deleteByID removes one row and reports ErrRecordNotFound when nothing matched.
func deleteByID(tx *gorm.DB, value any, id uint) error {
	result := tx.Delete(value, id)
	if result.Error != nil {
		return result.Error
	}
	if result.RowsAffected == 0 {
		return gorm.ErrRecordNotFound
	}
	return nil
}

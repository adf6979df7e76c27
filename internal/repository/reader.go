package repository

import (
	"context"
	"fmt"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	_ "github.com/doug-martin/goqu/v9/dialect/sqlite3"
	"github.com/snnyvrz/library-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const (
	tableReaderBooks = "reader_books"
	colReaderID      = "reader_id"
	colReaderStatus  = "reader_status"
	aliasCount       = "n"
)

type ReaderRepository interface {
	Create(ctx context.Context, reader *model.Reader) error
	FindByID(ctx context.Context, id uint) (*model.Reader, error)
	List(ctx context.Context, params ListParams) ([]model.Reader, error)
	Update(ctx context.Context, id uint, patch model.ReaderPatch) (*model.Reader, error)
	Delete(ctx context.Context, id uint) error
	Summary(ctx context.Context, id uint) (*model.ReaderSummary, error)
}

type GormReaderRepository struct {
	db      *gorm.DB
	dialect goqu.DialectWrapper
}

func NewReaderRepository(db *gorm.DB) *GormReaderRepository {
	return &GormReaderRepository{
		db:      db,
		dialect: goqu.Dialect(goquDialect(db)),
	}
}

// goquDialect maps the gorm dialector onto goqu's dialect names.
func goquDialect(db *gorm.DB) string {
	switch db.Dialector.Name() {
	case "sqlite":
		return "sqlite3"
	default:
		return "postgres"
	}
}

func (r *GormReaderRepository) Create(ctx context.Context, reader *model.Reader) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(reader).Error)
}

// FindByID loads the reader together with its reading entries.
func (r *GormReaderRepository) FindByID(ctx context.Context, id uint) (*model.Reader, error) {
	var reader model.Reader
	if err := r.db.WithContext(ctx).
		Preload("ReaderBooks", orderByID).
		First(&reader, id).Error; err != nil {

		return nil, translate(err)
	}
	return &reader, nil
}

func (r *GormReaderRepository) List(ctx context.Context, params ListParams) ([]model.Reader, error) {
	readers := make([]model.Reader, 0)
	if err := r.db.WithContext(ctx).
		Scopes(paginate(params)).
		Find(&readers).Error; err != nil {

		return nil, translate(err)
	}
	return readers, nil
}

func (r *GormReaderRepository) Update(ctx context.Context, id uint, patch model.ReaderPatch) (*model.Reader, error) {
	var reader model.Reader

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&reader, id).Error; err != nil {
			return err
		}
		patch.Apply(&reader)
		return tx.Omit(clause.Associations).Save(&reader).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &reader, nil
}

// Delete removes the reader and all of its reading entries.
func (r *GormReaderRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("reader_id = ?", id).Delete(&model.ReaderBook{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &model.Reader{}, id)
	}))
}

type statusCount struct {
	ReaderStatus model.ReaderStatus
	N            int64
}

// Summary counts the reader's entries per status. Statuses without entries
// are reported as zero.
func (r *GormReaderRepository) Summary(ctx context.Context, id uint) (*model.ReaderSummary, error) {
	query, _, err := r.dialect.
		From(tableReaderBooks).
		Select(goqu.C(colReaderStatus), goqu.COUNT(goqu.Star()).As(aliasCount)).
		Where(goqu.C(colReaderID).Eq(id)).
		GroupBy(goqu.C(colReaderStatus)).
		ToSQL()
	if err != nil {
		return nil, fmt.Errorf("build summary query: %w", err)
	}

	var rows []statusCount
	err = r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Select("id").First(&model.Reader{}, id).Error; err != nil {
			return err
		}
		return tx.Raw(query).Scan(&rows).Error
	})
	if err != nil {
		return nil, translate(err)
	}

	summary := model.NewReaderSummary(id)
	for _, row := range rows {
		summary.Add(row.ReaderStatus, row.N)
	}
	return summary, nil
}

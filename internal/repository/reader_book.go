package repository

import (
	"context"

	"github.com/snnyvrz/library-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type ReaderBookRepository interface {
	Create(ctx context.Context, rb *model.ReaderBook) error
	FindByID(ctx context.Context, id uint) (*model.ReaderBook, error)
	List(ctx context.Context, params ListParams) ([]model.ReaderBook, error)
	Update(ctx context.Context, id uint, patch model.ReaderBookPatch) (*model.ReaderBook, error)
	Delete(ctx context.Context, id uint) error
}

type GormReaderBookRepository struct {
	db *gorm.DB
}

func NewReaderBookRepository(db *gorm.DB) *GormReaderBookRepository {
	return &GormReaderBookRepository{db: db}
}

func (r *GormReaderBookRepository) Create(ctx context.Context, rb *model.ReaderBook) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(rb).Error)
}

// FindByID loads the entry together with its reader and book.
func (r *GormReaderBookRepository) FindByID(ctx context.Context, id uint) (*model.ReaderBook, error) {
	var rb model.ReaderBook
	if err := r.db.WithContext(ctx).
		Preload("Reader").
		Preload("Book").
		First(&rb, id).Error; err != nil {

		return nil, translate(err)
	}
	return &rb, nil
}

func (r *GormReaderBookRepository) List(ctx context.Context, params ListParams) ([]model.ReaderBook, error) {
	rbs := make([]model.ReaderBook, 0)
	if err := r.db.WithContext(ctx).
		Scopes(paginate(params)).
		Find(&rbs).Error; err != nil {

		return nil, translate(err)
	}
	return rbs, nil
}

func (r *GormReaderBookRepository) Update(ctx context.Context, id uint, patch model.ReaderBookPatch) (*model.ReaderBook, error) {
	var rb model.ReaderBook

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&rb, id).Error; err != nil {
			return err
		}
		patch.Apply(&rb)
		return tx.Omit(clause.Associations).Save(&rb).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &rb, nil
}

func (r *GormReaderBookRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return deleteByID(tx, &model.ReaderBook{}, id)
	}))
}

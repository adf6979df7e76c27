package repository

import (
	"context"

	"github.com/snnyvrz/library-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type BookRepository interface {
	CreateMany(ctx context.Context, books []model.Book) (int64, error)
	FindByID(ctx context.Context, id uint) (*model.Book, error)
	List(ctx context.Context, params ListParams) ([]model.Book, error)
	Update(ctx context.Context, id uint, patch model.BookPatch) (*model.Book, error)
	Delete(ctx context.Context, id uint) error
}

type GormBookRepository struct {
	db *gorm.DB
}

func NewBookRepository(db *gorm.DB) *GormBookRepository {
	return &GormBookRepository{db: db}
}

// CreateMany inserts the whole batch or nothing. IDs are written back into
// books.
func (r *GormBookRepository) CreateMany(ctx context.Context, books []model.Book) (int64, error) {
	if len(books) == 0 {
		return 0, nil
	}

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return tx.Omit(clause.Associations).Create(&books).Error
	})
	if err != nil {
		return 0, translate(err)
	}
	return int64(len(books)), nil
}

// FindByID loads the book together with its author, if any.
func (r *GormBookRepository) FindByID(ctx context.Context, id uint) (*model.Book, error) {
	var book model.Book
	if err := r.db.WithContext(ctx).
		Preload("Author").
		First(&book, id).Error; err != nil {

		return nil, translate(err)
	}
	return &book, nil
}

func (r *GormBookRepository) List(ctx context.Context, params ListParams) ([]model.Book, error) {
	books := make([]model.Book, 0)
	if err := r.db.WithContext(ctx).
		Scopes(paginate(params)).
		Find(&books).Error; err != nil {

		return nil, translate(err)
	}
	return books, nil
}

func (r *GormBookRepository) Update(ctx context.Context, id uint, patch model.BookPatch) (*model.Book, error) {
	var book model.Book

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&book, id).Error; err != nil {
			return err
		}
		patch.Apply(&book)
		return tx.Omit(clause.Associations).Save(&book).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &book, nil
}

// Delete removes the book and every reading entry that points at it.
func (r *GormBookRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("book_id = ?", id).Delete(&model.ReaderBook{}).Error; err != nil {
			return err
		}
		return deleteByID(tx, &model.Book{}, id)
	}))
}

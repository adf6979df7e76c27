package repository

import (
	"context"

	"github.com/snnyvrz/library-api/internal/model"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

type AuthorRepository interface {
	Create(ctx context.Context, author *model.Author) error
	FindByID(ctx context.Context, id uint) (*model.Author, error)
	List(ctx context.Context, params ListParams) ([]model.Author, error)
	Update(ctx context.Context, id uint, patch model.AuthorPatch) (*model.Author, error)
	Delete(ctx context.Context, id uint) error
}

type GormAuthorRepository struct {
	db *gorm.DB
}

func NewAuthorRepository(db *gorm.DB) *GormAuthorRepository {
	return &GormAuthorRepository{db: db}
}

func (r *GormAuthorRepository) Create(ctx context.Context, author *model.Author) error {
	return translate(r.db.WithContext(ctx).Omit(clause.Associations).Create(author).Error)
}

// FindByID loads the author together with its books.
func (r *GormAuthorRepository) FindByID(ctx context.Context, id uint) (*model.Author, error) {
	var author model.Author
	if err := r.db.WithContext(ctx).
		Preload("Books", orderByID).
		First(&author, id).Error; err != nil {

		return nil, translate(err)
	}
	return &author, nil
}

func (r *GormAuthorRepository) List(ctx context.Context, params ListParams) ([]model.Author, error) {
	authors := make([]model.Author, 0)
	if err := r.db.WithContext(ctx).
		Scopes(paginate(params)).
		Find(&authors).Error; err != nil {

		return nil, translate(err)
	}
	return authors, nil
}

func (r *GormAuthorRepository) Update(ctx context.Context, id uint, patch model.AuthorPatch) (*model.Author, error) {
	var author model.Author

	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&author, id).Error; err != nil {
			return err
		}
		patch.Apply(&author)
		return tx.Omit(clause.Associations).Save(&author).Error
	})
	if err != nil {
		return nil, translate(err)
	}
	return &author, nil
}

// Delete removes the author; its books stay and lose their author.
func (r *GormAuthorRepository) Delete(ctx context.Context, id uint) error {
	return translate(r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&model.Book{}).
			Where("author_id = ?", id).
			Update("author_id", nil).Error; err != nil {

			return err
		}
		return deleteByID(tx, &model.Author{}, id)
	}))
}

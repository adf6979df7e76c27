package handler

import (
	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/repository"
	"gorm.io/gorm"
)

// Repositories bundles the stores the API handlers talk to.
type Repositories struct {
	Authors     repository.AuthorRepository
	Books       repository.BookRepository
	Readers     repository.ReaderRepository
	ReaderBooks repository.ReaderBookRepository
}

func NewRepositories(db *gorm.DB) Repositories {
	return Repositories{
		Authors:     repository.NewAuthorRepository(db),
		Books:       repository.NewBookRepository(db),
		Readers:     repository.NewReaderRepository(db),
		ReaderBooks: repository.NewReaderBookRepository(db),
	}
}

// RegisterRoutes mounts every entity handler on r.
func RegisterRoutes(r *gin.RouterGroup, repos Repositories) {
	NewAuthorHandler(repos.Authors).RegisterRoutes(r)
	NewBookHandler(repos.Books).RegisterRoutes(r)
	NewReaderHandler(repos.Readers).RegisterRoutes(r)
	NewReaderBookHandler(repos.ReaderBooks).RegisterRoutes(r)
}

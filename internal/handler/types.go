package handler

import (
	"time"

	"github.com/snnyvrz/library-api/internal/model"
)

type CountResponse struct {
	Count int64 `json:"count" example:"1"`
}

type DeleteResponse struct {
	OK bool `json:"ok" example:"true"`
}

// Authors

type CreateAuthorRequest struct {
	Name    string `json:"name" binding:"required,min=1,max=255" example:"Jane Austen"`
	Country string `json:"country" binding:"required,min=1,max=100" example:"UK"`
}

type UpdateAuthorRequest struct {
	Name    *string `json:"name" binding:"omitempty,min=1,max=255"`
	Country *string `json:"country" binding:"omitempty,min=1,max=100"`
}

func (r UpdateAuthorRequest) patch() model.AuthorPatch {
	return model.AuthorPatch{Name: r.Name, Country: r.Country}
}

type Author struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Country   string    `json:"country"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type AuthorWithBooks struct {
	Author
	Books []Book `json:"books"`
}

// Books

type BookBase struct {
	Title    string `json:"title" binding:"required,min=1,max=255" example:"Dune"`
	Genre    string `json:"genre" binding:"required,min=1,max=100" example:"SciFi"`
	Copies   *int   `json:"copies" binding:"omitempty,min=0" example:"3"`
	AuthorID *uint  `json:"author_id" binding:"omitempty,min=1" example:"1"`
}

type CreateBooksRequest struct {
	Data []BookBase `json:"data" binding:"required,min=1,dive"`
}

// UpdateBookRequest sends null for copies or author_id to clear them.
type UpdateBookRequest struct {
	Title    *string              `json:"title" binding:"omitempty,min=1,max=255"`
	Genre    *string              `json:"genre" binding:"omitempty,min=1,max=100"`
	Copies   model.Nullable[int]  `json:"copies" binding:"omitempty,min=0" swaggertype:"integer"`
	AuthorID model.Nullable[uint] `json:"author_id" binding:"omitempty,min=1" swaggertype:"integer"`
}

func (r UpdateBookRequest) patch() model.BookPatch {
	return model.BookPatch{
		Title:    r.Title,
		Genre:    r.Genre,
		Copies:   r.Copies,
		AuthorID: r.AuthorID,
	}
}

type Book struct {
	ID        uint      `json:"id"`
	Title     string    `json:"title"`
	Genre     string    `json:"genre"`
	Copies    *int      `json:"copies"`
	AuthorID  *uint     `json:"author_id"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type BookWithAuthor struct {
	Book
	Author *Author `json:"author"`
}

// Readers

type CreateReaderRequest struct {
	Name  string `json:"name" binding:"required,min=1,max=255" example:"Ann"`
	Email string `json:"email" binding:"required,email,max=255" example:"ann@example.com"`
}

type UpdateReaderRequest struct {
	Name  *string `json:"name" binding:"omitempty,min=1,max=255"`
	Email *string `json:"email" binding:"omitempty,email,max=255"`
}

func (r UpdateReaderRequest) patch() model.ReaderPatch {
	return model.ReaderPatch{Name: r.Name, Email: r.Email}
}

type Reader struct {
	ID        uint      `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type ReaderWithReaderBooks struct {
	Reader
	ReaderBooks []ReaderBook `json:"readerbooks"`
}

type ReaderSummary struct {
	ReaderID uint             `json:"reader_id"`
	Total    int64            `json:"total"`
	Counts   map[string]int64 `json:"counts"`
}

// Reader books

type CreateReaderBookRequest struct {
	BookID       uint               `json:"book_id" binding:"required" example:"1"`
	ReaderID     uint               `json:"reader_id" binding:"required" example:"1"`
	ReaderStatus model.ReaderStatus `json:"reader_status" binding:"required,oneof=FINISHED_READING READING WILL_READ" enums:"FINISHED_READING,READING,WILL_READ"`
}

type UpdateReaderBookRequest struct {
	BookID       *uint               `json:"book_id" binding:"omitempty,min=1"`
	ReaderID     *uint               `json:"reader_id" binding:"omitempty,min=1"`
	ReaderStatus *model.ReaderStatus `json:"reader_status" binding:"omitempty,oneof=FINISHED_READING READING WILL_READ" enums:"FINISHED_READING,READING,WILL_READ"`
}

func (r UpdateReaderBookRequest) patch() model.ReaderBookPatch {
	return model.ReaderBookPatch{
		BookID:       r.BookID,
		ReaderID:     r.ReaderID,
		ReaderStatus: r.ReaderStatus,
	}
}

type ReaderBook struct {
	ID           uint               `json:"id"`
	BookID       uint               `json:"book_id"`
	ReaderID     uint               `json:"reader_id"`
	ReaderStatus model.ReaderStatus `json:"reader_status"`
	CreatedAt    time.Time          `json:"created_at"`
	UpdatedAt    time.Time          `json:"updated_at"`
}

type ReaderBookWithRelations struct {
	ReaderBook
	Reader *Reader `json:"reader"`
	Book   *Book   `json:"book"`
}

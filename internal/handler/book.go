package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/model"
	"github.com/snnyvrz/library-api/internal/repository"
	"github.com/snnyvrz/library-api/internal/validation"
)

type BookHandler struct {
	repo repository.BookRepository
}

func NewBookHandler(repo repository.BookRepository) *BookHandler {
	return &BookHandler{repo: repo}
}

func (h *BookHandler) RegisterRoutes(r *gin.RouterGroup) {
	books := r.Group("/books")
	{
		books.GET("", h.ListBooks)
		books.GET("/", h.ListBooks)
		books.GET("/:id", h.GetBookByID)
		books.PATCH("/:id", h.UpdateBook)
		books.DELETE("/:id", h.DeleteBook)
		books.POST("", h.CreateBooks)
		books.POST("/", h.CreateBooks)
	}
}

// CreateBooks godoc
// @Summary      Create books
// @Description  Insert a batch of books in one transaction; either all are stored or none
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateBooksRequest         true  "Books to create"
// @Success      201      {object}  CountResponse
// @Failure      400      {object}  validation.ErrorResponse   "Validation error or unknown author"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [post]
func (h *BookHandler) CreateBooks(c *gin.Context) {
	var req CreateBooksRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	books := make([]model.Book, 0, len(req.Data))
	for _, b := range req.Data {
		books = append(books, model.Book{
			Title:    b.Title,
			Genre:    b.Genre,
			Copies:   b.Copies,
			AuthorID: b.AuthorID,
		})
	}

	count, err := h.repo.CreateMany(c.Request.Context(), books)
	if err != nil {
		writeRepoError(c, err, bookResource, "create")
		return
	}

	c.JSON(http.StatusCreated, CountResponse{Count: count})
}

// ListBooks godoc
// @Summary      List books
// @Description  Get a window of books ordered by id
// @Tags         books
// @Produce      json
// @Param        offset  query     int  false  "Rows to skip"  default(0) minimum(0)
// @Param        limit   query     int  false  "Rows to return, clamped to 100"  default(100)
// @Success      200     {array}   Book
// @Failure      400     {object}  validation.ErrorResponse   "Invalid query parameters"
// @Failure      500     {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books [get]
func (h *BookHandler) ListBooks(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	books, err := h.repo.List(c.Request.Context(), params)
	if err != nil {
		writeRepoError(c, err, bookResource, "list")
		return
	}

	c.JSON(http.StatusOK, mapSlice(books, toBook))
}

// GetBookByID godoc
// @Summary      Get a book by ID
// @Description  Get a single book together with its author
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  BookWithAuthor
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [get]
func (h *BookHandler) GetBookByID(c *gin.Context) {
	id, ok := parseID(c, bookResource)
	if !ok {
		return
	}

	book, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, bookResource, "fetch")
		return
	}

	c.JSON(http.StatusOK, toBookWithAuthor(*book))
}

// UpdateBook godoc
// @Summary      Update a book
// @Description  Partially update a book; send null for copies or author_id to clear them
// @Tags         books
// @Accept       json
// @Produce      json
// @Param        id       path      int                 true  "Book ID"
// @Param        payload  body      UpdateBookRequest   true  "Fields to update"
// @Success      200      {object}  Book
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID, payload or unknown author"
// @Failure      404      {object}  validation.ErrorResponse   "Book not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [patch]
func (h *BookHandler) UpdateBook(c *gin.Context) {
	id, ok := parseID(c, bookResource)
	if !ok {
		return
	}

	var req UpdateBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	book, err := h.repo.Update(c.Request.Context(), id, req.patch())
	if err != nil {
		writeRepoError(c, err, bookResource, "update")
		return
	}

	c.JSON(http.StatusOK, toBook(*book))
}

// DeleteBook godoc
// @Summary      Delete a book
// @Description  Delete a book and the reading entries that point at it
// @Tags         books
// @Produce      json
// @Param        id   path      int  true  "Book ID"
// @Success      200  {object}  DeleteResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Book not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /books/{id} [delete]
func (h *BookHandler) DeleteBook(c *gin.Context) {
	id, ok := parseID(c, bookResource)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, bookResource, "delete")
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{OK: true})
}

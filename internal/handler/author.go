package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/model"
	"github.com/snnyvrz/library-api/internal/repository"
	"github.com/snnyvrz/library-api/internal/validation"
)

type AuthorHandler struct {
	repo repository.AuthorRepository
}

func NewAuthorHandler(repo repository.AuthorRepository) *AuthorHandler {
	return &AuthorHandler{repo: repo}
}

func (h *AuthorHandler) RegisterRoutes(r *gin.RouterGroup) {
	authors := r.Group("/authors")
	{
		authors.POST("", h.CreateAuthor)
		authors.POST("/", h.CreateAuthor)
		authors.GET("", h.ListAuthors)
		authors.GET("/", h.ListAuthors)
		authors.GET("/:id", h.GetAuthorByID)
		authors.PATCH("/:id", h.UpdateAuthor)
		authors.DELETE("/:id", h.DeleteAuthor)
	}
}

// CreateAuthor godoc
// @Summary      Create an author
// @Description  Create a new author with name and country
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateAuthorRequest        true  "Author to create"
// @Success      201      {object}  Author
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /authors [post]
func (h *AuthorHandler) CreateAuthor(c *gin.Context) {
	var req CreateAuthorRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	author := model.Author{
		Name:    req.Name,
		Country: req.Country,
	}

	if err := h.repo.Create(c.Request.Context(), &author); err != nil {
		writeRepoError(c, err, authorResource, "create")
		return
	}

	c.JSON(http.StatusCreated, toAuthor(author))
}

// ListAuthors godoc
// @Summary      List authors
// @Description  Get a window of authors ordered by id
// @Tags         authors
// @Produce      json
// @Param        offset  query     int  false  "Rows to skip"  default(0) minimum(0)
// @Param        limit   query     int  false  "Rows to return, clamped to 100"  default(100)
// @Success      200     {array}   Author
// @Failure      400     {object}  validation.ErrorResponse   "Invalid query parameters"
// @Failure      500     {object}  validation.ErrorResponse   "Internal server error"
// @Router       /authors [get]
func (h *AuthorHandler) ListAuthors(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	authors, err := h.repo.List(c.Request.Context(), params)
	if err != nil {
		writeRepoError(c, err, authorResource, "list")
		return
	}

	c.JSON(http.StatusOK, mapSlice(authors, toAuthor))
}

// GetAuthorByID godoc
// @Summary      Get author by ID
// @Description  Get a single author together with its books
// @Tags         authors
// @Produce      json
// @Param        id   path      int                       true  "Author ID"
// @Success      200  {object}  AuthorWithBooks
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [get]
func (h *AuthorHandler) GetAuthorByID(c *gin.Context) {
	id, ok := parseID(c, authorResource)
	if !ok {
		return
	}

	author, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, authorResource, "fetch")
		return
	}

	c.JSON(http.StatusOK, toAuthorWithBooks(*author))
}

// UpdateAuthor godoc
// @Summary      Update an author
// @Description  Partially update an existing author; absent fields are left unchanged
// @Tags         authors
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Author ID"
// @Param        payload  body      UpdateAuthorRequest  true  "Author fields to update"
// @Success      200      {object}  Author
// @Failure      400      {object}  validation.ErrorResponse  "Invalid ID or validation error"
// @Failure      404      {object}  validation.ErrorResponse  "Author not found"
// @Failure      500      {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [patch]
func (h *AuthorHandler) UpdateAuthor(c *gin.Context) {
	id, ok := parseID(c, authorResource)
	if !ok {
		return
	}

	var req UpdateAuthorRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	author, err := h.repo.Update(c.Request.Context(), id, req.patch())
	if err != nil {
		writeRepoError(c, err, authorResource, "update")
		return
	}

	c.JSON(http.StatusOK, toAuthor(*author))
}

// DeleteAuthor godoc
// @Summary      Delete an author
// @Description  Delete an author by ID; its books are kept with author_id set to null
// @Tags         authors
// @Produce      json
// @Param        id   path      int                       true  "Author ID"
// @Success      200  {object}  DeleteResponse
// @Failure      400  {object}  validation.ErrorResponse  "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse  "Author not found"
// @Failure      500  {object}  validation.ErrorResponse  "Internal server error"
// @Router       /authors/{id} [delete]
func (h *AuthorHandler) DeleteAuthor(c *gin.Context) {
	id, ok := parseID(c, authorResource)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, authorResource, "delete")
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{OK: true})
}

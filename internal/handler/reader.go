package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/model"
	"github.com/snnyvrz/library-api/internal/repository"
	"github.com/snnyvrz/library-api/internal/validation"
)

type ReaderHandler struct {
	repo repository.ReaderRepository
}

func NewReaderHandler(repo repository.ReaderRepository) *ReaderHandler {
	return &ReaderHandler{repo: repo}
}

func (h *ReaderHandler) RegisterRoutes(r *gin.RouterGroup) {
	readers := r.Group("/readers")
	{
		readers.POST("", h.CreateReader)
		readers.POST("/", h.CreateReader)
		readers.GET("", h.ListReaders)
		readers.GET("/", h.ListReaders)
		readers.GET("/:id", h.GetReaderByID)
		readers.GET("/:id/summary", h.GetReaderSummary)
		readers.PATCH("/:id", h.UpdateReader)
		readers.DELETE("/:id", h.DeleteReader)
	}
}

// CreateReader godoc
// @Summary      Create a reader
// @Tags         readers
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateReaderRequest        true  "Reader to create"
// @Success      201      {object}  Reader
// @Failure      400      {object}  validation.ErrorResponse   "Validation error"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /readers [post]
func (h *ReaderHandler) CreateReader(c *gin.Context) {
	var req CreateReaderRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	reader := model.Reader{
		Name:  req.Name,
		Email: req.Email,
	}

	if err := h.repo.Create(c.Request.Context(), &reader); err != nil {
		writeRepoError(c, err, readerResource, "create")
		return
	}

	c.JSON(http.StatusCreated, toReader(reader))
}

// ListReaders godoc
// @Summary      List readers
// @Tags         readers
// @Produce      json
// @Param        offset  query     int  false  "Rows to skip"  default(0) minimum(0)
// @Param        limit   query     int  false  "Rows to return, clamped to 100"  default(100)
// @Success      200     {array}   Reader
// @Failure      400     {object}  validation.ErrorResponse   "Invalid query parameters"
// @Failure      500     {object}  validation.ErrorResponse   "Internal server error"
// @Router       /readers [get]
func (h *ReaderHandler) ListReaders(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	readers, err := h.repo.List(c.Request.Context(), params)
	if err != nil {
		writeRepoError(c, err, readerResource, "list")
		return
	}

	c.JSON(http.StatusOK, mapSlice(readers, toReader))
}

// GetReaderByID godoc
// @Summary      Get a reader by ID
// @Description  Get a single reader together with its reading entries
// @Tags         readers
// @Produce      json
// @Param        id   path      int  true  "Reader ID"
// @Success      200  {object}  ReaderWithReaderBooks
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Reader not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /readers/{id} [get]
func (h *ReaderHandler) GetReaderByID(c *gin.Context) {
	id, ok := parseID(c, readerResource)
	if !ok {
		return
	}

	reader, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, readerResource, "fetch")
		return
	}

	c.JSON(http.StatusOK, toReaderWithReaderBooks(*reader))
}

// GetReaderSummary godoc
// @Summary      Reading summary
// @Description  Count the reader's books per reading status; every status is present
// @Tags         readers
// @Produce      json
// @Param        id   path      int  true  "Reader ID"
// @Success      200  {object}  ReaderSummary
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Reader not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /readers/{id}/summary [get]
func (h *ReaderHandler) GetReaderSummary(c *gin.Context) {
	id, ok := parseID(c, readerResource)
	if !ok {
		return
	}

	summary, err := h.repo.Summary(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, readerResource, "summarize")
		return
	}

	c.JSON(http.StatusOK, toReaderSummary(*summary))
}

// UpdateReader godoc
// @Summary      Update a reader
// @Tags         readers
// @Accept       json
// @Produce      json
// @Param        id       path      int                  true  "Reader ID"
// @Param        payload  body      UpdateReaderRequest  true  "Fields to update"
// @Success      200      {object}  Reader
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID or payload"
// @Failure      404      {object}  validation.ErrorResponse   "Reader not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /readers/{id} [patch]
func (h *ReaderHandler) UpdateReader(c *gin.Context) {
	id, ok := parseID(c, readerResource)
	if !ok {
		return
	}

	var req UpdateReaderRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	reader, err := h.repo.Update(c.Request.Context(), id, req.patch())
	if err != nil {
		writeRepoError(c, err, readerResource, "update")
		return
	}

	c.JSON(http.StatusOK, toReader(*reader))
}

// DeleteReader godoc
// @Summary      Delete a reader
// @Description  Delete a reader and all of its reading entries
// @Tags         readers
// @Produce      json
// @Param        id   path      int  true  "Reader ID"
// @Success      200  {object}  DeleteResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Reader not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /readers/{id} [delete]
func (h *ReaderHandler) DeleteReader(c *gin.Context) {
	id, ok := parseID(c, readerResource)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, readerResource, "delete")
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{OK: true})
}

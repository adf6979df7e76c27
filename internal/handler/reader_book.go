package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/model"
	"github.com/snnyvrz/library-api/internal/repository"
	"github.com/snnyvrz/library-api/internal/validation"
)

type ReaderBookHandler struct {
	repo repository.ReaderBookRepository
}

func NewReaderBookHandler(repo repository.ReaderBookRepository) *ReaderBookHandler {
	return &ReaderBookHandler{repo: repo}
}

func (h *ReaderBookHandler) RegisterRoutes(r *gin.RouterGroup) {
	rbs := r.Group("/readerbooks")
	{
		rbs.POST("", h.CreateReaderBook)
		rbs.POST("/", h.CreateReaderBook)
		rbs.GET("", h.ListReaderBooks)
		rbs.GET("/", h.ListReaderBooks)
		rbs.GET("/:id", h.GetReaderBookByID)
		rbs.PATCH("/:id", h.UpdateReaderBook)
		rbs.DELETE("/:id", h.DeleteReaderBook)
	}
}

// CreateReaderBook godoc
// @Summary      Record a reading status
// @Description  Link a reader to a book with FINISHED_READING, READING or WILL_READ
// @Tags         readerbooks
// @Accept       json
// @Produce      json
// @Param        payload  body      CreateReaderBookRequest    true  "Reading entry to create"
// @Success      201      {object}  ReaderBook
// @Failure      400      {object}  validation.ErrorResponse   "Validation error or unknown reader/book"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /readerbooks [post]
func (h *ReaderBookHandler) CreateReaderBook(c *gin.Context) {
	var req CreateReaderBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	rb := model.ReaderBook{
		BookID:       req.BookID,
		ReaderID:     req.ReaderID,
		ReaderStatus: req.ReaderStatus,
	}

	if err := h.repo.Create(c.Request.Context(), &rb); err != nil {
		writeRepoError(c, err, readerBookResource, "create")
		return
	}

	c.JSON(http.StatusCreated, toReaderBook(rb))
}

// ListReaderBooks godoc
// @Summary      List reading entries
// @Tags         readerbooks
// @Produce      json
// @Param        offset  query     int  false  "Rows to skip"  default(0) minimum(0)
// @Param        limit   query     int  false  "Rows to return, clamped to 100"  default(100)
// @Success      200     {array}   ReaderBook
// @Failure      400     {object}  validation.ErrorResponse   "Invalid query parameters"
// @Failure      500     {object}  validation.ErrorResponse   "Internal server error"
// @Router       /readerbooks [get]
func (h *ReaderBookHandler) ListReaderBooks(c *gin.Context) {
	params, ok := bindListParams(c)
	if !ok {
		return
	}

	rbs, err := h.repo.List(c.Request.Context(), params)
	if err != nil {
		writeRepoError(c, err, readerBookResource, "list")
		return
	}

	c.JSON(http.StatusOK, mapSlice(rbs, toReaderBook))
}

// GetReaderBookByID godoc
// @Summary      Get a reading entry by ID
// @Description  Get a single entry together with its reader and book
// @Tags         readerbooks
// @Produce      json
// @Param        id   path      int  true  "Reading entry ID"
// @Success      200  {object}  ReaderBookWithRelations
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Reading entry not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /readerbooks/{id} [get]
func (h *ReaderBookHandler) GetReaderBookByID(c *gin.Context) {
	id, ok := parseID(c, readerBookResource)
	if !ok {
		return
	}

	rb, err := h.repo.FindByID(c.Request.Context(), id)
	if err != nil {
		writeRepoError(c, err, readerBookResource, "fetch")
		return
	}

	c.JSON(http.StatusOK, toReaderBookWithRelations(*rb))
}

// UpdateReaderBook godoc
// @Summary      Update a reading entry
// @Tags         readerbooks
// @Accept       json
// @Produce      json
// @Param        id       path      int                      true  "Reading entry ID"
// @Param        payload  body      UpdateReaderBookRequest  true  "Fields to update"
// @Success      200      {object}  ReaderBook
// @Failure      400      {object}  validation.ErrorResponse   "Invalid ID, payload or unknown reader/book"
// @Failure      404      {object}  validation.ErrorResponse   "Reading entry not found"
// @Failure      500      {object}  validation.ErrorResponse   "Internal server error"
// @Router       /readerbooks/{id} [patch]
func (h *ReaderBookHandler) UpdateReaderBook(c *gin.Context) {
	id, ok := parseID(c, readerBookResource)
	if !ok {
		return
	}

	var req UpdateReaderBookRequest
	if !validation.BindAndValidateJSON(c, &req) {
		return
	}

	rb, err := h.repo.Update(c.Request.Context(), id, req.patch())
	if err != nil {
		writeRepoError(c, err, readerBookResource, "update")
		return
	}

	c.JSON(http.StatusOK, toReaderBook(*rb))
}

// DeleteReaderBook godoc
// @Summary      Delete a reading entry
// @Tags         readerbooks
// @Produce      json
// @Param        id   path      int  true  "Reading entry ID"
// @Success      200  {object}  DeleteResponse
// @Failure      400  {object}  validation.ErrorResponse   "Invalid ID"
// @Failure      404  {object}  validation.ErrorResponse   "Reading entry not found"
// @Failure      500  {object}  validation.ErrorResponse   "Internal server error"
// @Router       /readerbooks/{id} [delete]
func (h *ReaderBookHandler) DeleteReaderBook(c *gin.Context) {
	id, ok := parseID(c, readerBookResource)
	if !ok {
		return
	}

	if err := h.repo.Delete(c.Request.Context(), id); err != nil {
		writeRepoError(c, err, readerBookResource, "delete")
		return
	}

	c.JSON(http.StatusOK, DeleteResponse{OK: true})
}

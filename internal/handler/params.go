package handler

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/repository"
	"github.com/snnyvrz/library-api/internal/validation"
)

// ListQuery is the offset/limit window shared by every list endpoint. A
// limit above 100 is clamped, not rejected.
type ListQuery struct {
	Offset int `form:"offset" binding:"min=0"`
	Limit  int `form:"limit" binding:"omitempty,min=1"`
}

func bindListParams(c *gin.Context) (repository.ListParams, bool) {
	var q ListQuery
	if !validation.BindAndValidateQuery(c, &q) {
		return repository.ListParams{}, false
	}

	limit := q.Limit
	if limit == 0 {
		limit = repository.DefaultLimit
	}
	if limit > repository.MaxLimit {
		limit = repository.MaxLimit
	}

	return repository.ListParams{Offset: q.Offset, Limit: limit}, true
}

// parseID reads the :id path parameter, writing a 400 for res when it is not
// a positive integer.
func parseID(c *gin.Context, res resource) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 0)
	if err != nil || id == 0 {
		writeError(c, http.StatusBadRequest,
			"INVALID_"+res.code+"_ID",
			"invalid "+res.name+" id",
		)
		return 0, false
	}
	return uint(id), true
}

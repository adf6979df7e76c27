package handler

import (
	"errors"
	"log/slog"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/middleware"
	"github.com/snnyvrz/library-api/internal/repository"
	"github.com/snnyvrz/library-api/internal/validation"
)

// resource names an entity in error codes and messages.
type resource struct {
	code string
	name string
}

var (
	authorResource     = resource{code: "AUTHOR", name: "author"}
	bookResource       = resource{code: "BOOK", name: "book"}
	readerResource     = resource{code: "READER", name: "reader"}
	readerBookResource = resource{code: "READER_BOOK", name: "reader book"}
)

func writeError(c *gin.Context, status int, code, message string) {
	c.AbortWithStatusJSON(status, validation.ErrorResponse{
		Code:    code,
		Message: message,
		Errors:  nil,
	})
}

// writeRepoError maps a repository error for res onto a response. action is
// the verb used in the 5xx code and message, e.g. "fetch".
func writeRepoError(c *gin.Context, err error, res resource, action string) {
	switch {
	case errors.Is(err, repository.ErrNotFound):
		writeError(c, http.StatusNotFound,
			res.code+"_NOT_FOUND",
			res.name+" not found",
		)
	case errors.Is(err, repository.ErrInvalidReference):
		writeError(c, http.StatusBadRequest,
			res.code+"_INVALID_REFERENCE",
			"referenced author, book or reader does not exist",
		)
	default:
		slog.ErrorContext(c.Request.Context(), "repository call failed",
			"resource", res.name,
			"action", action,
			"request_id", middleware.RequestIDFrom(c),
			"error", err,
		)
		writeError(c, http.StatusInternalServerError,
			res.code+"_"+strings.ToUpper(action)+"_FAILED",
			"failed to "+action+" "+res.name,
		)
	}
}

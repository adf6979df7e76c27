package handler

import (
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/snnyvrz/library-api/internal/testutil"
	"github.com/snnyvrz/library-api/internal/validation"
	"gorm.io/gorm"
)

func setupTestRouter(db *gorm.DB) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	RegisterRoutes(r.Group(""), NewRepositories(db))

	return r
}

func setupRouterWithRepos(repos Repositories) *gin.Engine {
	gin.SetMode(gin.TestMode)
	r := gin.New()

	RegisterRoutes(r.Group(""), repos)

	return r
}

// expectError asserts the status and error code of a failed request.
func expectError(t *testing.T, w *httptest.ResponseRecorder, status int, code string) validation.ErrorResponse {
	t.Helper()

	if w.Code != status {
		t.Fatalf("expected status %d, got %d, body=%s", status, w.Code, w.Body.String())
	}

	var resp validation.ErrorResponse
	testutil.DecodeJSON(t, w, &resp)

	if resp.Code != code {
		t.Errorf("expected code %q, got %q", code, resp.Code)
	}
	return resp
}

func hasFieldError(resp validation.ErrorResponse, field string) bool {
	for _, fe := range resp.Errors {
		if fe.Field == field {
			return true
		}
	}
	return false
}

package server

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/snnyvrz/library-api/internal/config"
	"github.com/snnyvrz/library-api/internal/middleware"
	"github.com/snnyvrz/library-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		GinMode:        "test",
		Addr:           "127.0.0.1:0",
		DBDriver:       config.DriverSQLite,
		RateLimitRPS:   100,
		RateLimitBurst: 100,
	}
}

func newTestServer(t *testing.T, cfg *config.Config) *Server {
	t.Helper()

	log := slog.New(slog.NewTextHandler(io.Discard, nil))
	return New(cfg, log, testutil.NewTestDB(t), time.Now(), "test")
}

func get(h http.Handler, path string) *httptest.ResponseRecorder {
	req := httptest.NewRequest(http.MethodGet, path, nil)
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

func TestNew_RoutesAndMiddleware(t *testing.T) {
	h := newTestServer(t, testConfig()).Handler()

	w := get(h, "/health")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.NotEmpty(t, w.Header().Get(middleware.RequestIDHeader))

	w = get(h, "/ready")
	assert.Equal(t, http.StatusOK, w.Code)

	w = get(h, "/authors")
	assert.Equal(t, http.StatusOK, w.Code)
	assert.JSONEq(t, "[]", w.Body.String())

	w = get(h, "/nope")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestNew_SwaggerDoc(t *testing.T) {
	h := newTestServer(t, testConfig()).Handler()

	w := get(h, "/swagger/doc.json")
	require.Equal(t, http.StatusOK, w.Code)

	var doc struct {
		BasePath string                     `json:"basePath"`
		Info     struct{ Version string }   `json:"info"`
		Paths    map[string]json.RawMessage `json:"paths"`
	}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &doc))

	assert.Equal(t, "/", doc.BasePath)
	assert.Equal(t, "test", doc.Info.Version)
	for _, p := range []string{"/authors", "/books/{id}", "/readers/{id}/summary", "/readerbooks"} {
		assert.Contains(t, doc.Paths, p)
	}
}

func TestNew_RateLimitSkipsHealth(t *testing.T) {
	cfg := testConfig()
	cfg.RateLimitRPS = 0.001
	cfg.RateLimitBurst = 1

	h := newTestServer(t, cfg).Handler()

	assert.Equal(t, http.StatusOK, get(h, "/books").Code)
	assert.Equal(t, http.StatusTooManyRequests, get(h, "/books").Code)

	for range 3 {
		assert.Equal(t, http.StatusOK, get(h, "/health").Code)
	}
}

func TestRun_StopsOnContextCancel(t *testing.T) {
	srv := newTestServer(t, testConfig())

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() {
		done <- srv.Run(ctx)
	}()

	time.Sleep(50 * time.Millisecond)
	cancel()

	select {
	case err := <-done:
		assert.NoError(t, err)
	case <-time.After(shutdownTimeout + time.Second):
		t.Fatal("server did not shut down")
	}
}

func TestRun_ListenError(t *testing.T) {
	cfg := testConfig()
	cfg.Addr = "127.0.0.1:99999"

	// Run must also stop the limiter sweeper although ctx is never cancelled.
	done := make(chan error, 1)
	go func() {
		done <- newTestServer(t, cfg).Run(context.Background())
	}()

	select {
	case err := <-done:
		assert.Error(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("Run did not return after a listen error")
	}
}

func TestNew_TrailingSlashServedDirectly(t *testing.T) {
	h := newTestServer(t, testConfig()).Handler()

	req := httptest.NewRequest(http.MethodPost, "/books/", strings.NewReader(`{"data":[{"title":"Dune","genre":"SciFi"}]}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)

	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())
	assert.JSONEq(t, `{"count":1}`, w.Body.String())

	w = get(h, "/books/?limit=1")
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())
	assert.Empty(t, w.Header().Get("Location"))

	var books []map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &books))
	require.Len(t, books, 1)
	assert.Equal(t, "Dune", books[0]["title"])
	assert.Nil(t, books[0]["copies"])
}

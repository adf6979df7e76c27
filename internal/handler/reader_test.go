package handler

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"testing"

	"github.com/snnyvrz/library-api/internal/model"
	"github.com/snnyvrz/library-api/internal/repository"
	"github.com/snnyvrz/library-api/internal/testutil"
)

type fakeReaderRepo struct {
	CreateFn   func(ctx context.Context, r *model.Reader) error
	FindByIDFn func(ctx context.Context, id uint) (*model.Reader, error)
	ListFn     func(ctx context.Context, params repository.ListParams) ([]model.Reader, error)
	UpdateFn   func(ctx context.Context, id uint, patch model.ReaderPatch) (*model.Reader, error)
	DeleteFn   func(ctx context.Context, id uint) error
	SummaryFn  func(ctx context.Context, id uint) (*model.ReaderSummary, error)
}

func (f *fakeReaderRepo) Create(ctx context.Context, r *model.Reader) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, r)
	}
	return nil
}

func (f *fakeReaderRepo) FindByID(ctx context.Context, id uint) (*model.Reader, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeReaderRepo) List(ctx context.Context, params repository.ListParams) ([]model.Reader, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, params)
	}
	return nil, nil
}

func (f *fakeReaderRepo) Update(ctx context.Context, id uint, patch model.ReaderPatch) (*model.Reader, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, patch)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeReaderRepo) Delete(ctx context.Context, id uint) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func (f *fakeReaderRepo) Summary(ctx context.Context, id uint) (*model.ReaderSummary, error) {
	if f.SummaryFn != nil {
		return f.SummaryFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func TestCreateReader_Success(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := testutil.DoJSON(t, router, http.MethodPost, "/readers", CreateReaderRequest{
		Name:  "Ann",
		Email: "ann@example.com",
	})
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp Reader
	testutil.DecodeJSON(t, w, &resp)

	if resp.ID == 0 || resp.Email != "ann@example.com" {
		t.Errorf("unexpected reader %+v", resp)
	}
}

func TestCreateReader_InvalidEmail(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := testutil.DoJSON(t, router, http.MethodPost, "/readers", map[string]any{
		"name":  "Ann",
		"email": "not-an-email",
	})

	resp := expectError(t, w, http.StatusBadRequest, "VALIDATION_FAILED")
	if !hasFieldError(resp, "email") {
		t.Errorf("expected a field error for email, got %+v", resp.Errors)
	}
}

func TestListReaders(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	testutil.SeedReader(t, db, "Ann", "ann@example.com")
	testutil.SeedReader(t, db, "Bob", "bob@example.com")

	w := testutil.DoJSON(t, router, http.MethodGet, "/readers", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp []Reader
	testutil.DecodeJSON(t, w, &resp)

	if len(resp) != 2 || resp[0].Name != "Ann" || resp[1].Name != "Bob" {
		t.Errorf("expected Ann then Bob, got %+v", resp)
	}
}

func TestGetReader_WithReaderBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	reader := testutil.SeedReader(t, db, "Ann", "ann@example.com")
	book := testutil.SeedBook(t, db, "Dune", "SciFi", nil, nil)
	testutil.SeedReaderBook(t, db, reader.ID, book.ID, model.StatusWillRead)

	w := testutil.DoJSON(t, router, http.MethodGet, fmt.Sprintf("/readers/%d", reader.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp ReaderWithReaderBooks
	testutil.DecodeJSON(t, w, &resp)

	if len(resp.ReaderBooks) != 1 {
		t.Fatalf("expected one reader book, got %d", len(resp.ReaderBooks))
	}
	if rb := resp.ReaderBooks[0]; rb.BookID != book.ID || rb.ReaderStatus != model.StatusWillRead {
		t.Errorf("unexpected reader book %+v", rb)
	}
}

func TestGetReaderSummary(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	reader := testutil.SeedReader(t, db, "Ann", "ann@example.com")
	for i, status := range []model.ReaderStatus{model.StatusReading, model.StatusReading, model.StatusWillRead} {
		book := testutil.SeedBook(t, db, fmt.Sprintf("Book %d", i), "Drama", nil, nil)
		testutil.SeedReaderBook(t, db, reader.ID, book.ID, status)
	}

	w := testutil.DoJSON(t, router, http.MethodGet, fmt.Sprintf("/readers/%d/summary", reader.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp ReaderSummary
	testutil.DecodeJSON(t, w, &resp)

	if resp.ReaderID != reader.ID || resp.Total != 3 {
		t.Errorf("unexpected summary header %+v", resp)
	}

	want := map[string]int64{
		"FINISHED_READING": 0,
		"READING":          2,
		"WILL_READ":        1,
	}
	for status, n := range want {
		got, ok := resp.Counts[status]
		if !ok || got != n {
			t.Errorf("expected %s=%d, got %d (present=%v)", status, n, got, ok)
		}
	}
}

func TestGetReaderSummary_NotFound(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := testutil.DoJSON(t, router, http.MethodGet, "/readers/5/summary", nil)

	expectError(t, w, http.StatusNotFound, "READER_NOT_FOUND")
}

func TestGetReaderSummary_RepoError(t *testing.T) {
	router := setupRouterWithRepos(Repositories{
		Authors: &fakeAuthorRepo{},
		Books:   &fakeBookRepo{},
		Readers: &fakeReaderRepo{
			SummaryFn: func(ctx context.Context, id uint) (*model.ReaderSummary, error) {
				return nil, errors.New("timeout")
			},
		},
		ReaderBooks: &fakeReaderBookRepo{},
	})

	w := testutil.DoJSON(t, router, http.MethodGet, "/readers/1/summary", nil)

	expectError(t, w, http.StatusInternalServerError, "READER_SUMMARIZE_FAILED")
}

func TestUpdateReader_Email(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	reader := testutil.SeedReader(t, db, "Ann", "ann@example.com")

	w := testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/readers/%d", reader.ID), map[string]any{
		"email": "ann@library.org",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp Reader
	testutil.DecodeJSON(t, w, &resp)

	if resp.Name != "Ann" || resp.Email != "ann@library.org" {
		t.Errorf("unexpected reader after patch %+v", resp)
	}
}

func TestDeleteReader_RemovesReaderBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	reader := testutil.SeedReader(t, db, "Ann", "ann@example.com")
	book := testutil.SeedBook(t, db, "Dune", "SciFi", nil, nil)
	testutil.SeedReaderBook(t, db, reader.ID, book.ID, model.StatusFinishedReading)

	w := testutil.DoJSON(t, router, http.MethodDelete, fmt.Sprintf("/readers/%d", reader.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	w = testutil.DoJSON(t, router, http.MethodGet, fmt.Sprintf("/readers/%d", reader.ID), nil)
	expectError(t, w, http.StatusNotFound, "READER_NOT_FOUND")

	var remaining int64
	if err := db.Model(&model.ReaderBook{}).Count(&remaining).Error; err != nil {
		t.Fatalf("failed to count reader books: %v", err)
	}
	if remaining != 0 {
		t.Errorf("expected reader books removed with the reader, got %d", remaining)
	}

	// the book itself is untouched
	w = testutil.DoJSON(t, router, http.MethodGet, fmt.Sprintf("/books/%d", book.ID), nil)
	if w.Code != http.StatusOK {
		t.Errorf("expected book to survive, got status %d", w.Code)
	}
}

func TestDeleteReader_InvalidID(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := testutil.DoJSON(t, router, http.MethodDelete, "/readers/x", nil)

	expectError(t, w, http.StatusBadRequest, "INVALID_READER_ID")
}

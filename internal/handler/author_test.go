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

type fakeAuthorRepo struct {
	CreateFn   func(ctx context.Context, a *model.Author) error
	FindByIDFn func(ctx context.Context, id uint) (*model.Author, error)
	ListFn     func(ctx context.Context, params repository.ListParams) ([]model.Author, error)
	UpdateFn   func(ctx context.Context, id uint, patch model.AuthorPatch) (*model.Author, error)
	DeleteFn   func(ctx context.Context, id uint) error
}

func (f *fakeAuthorRepo) Create(ctx context.Context, a *model.Author) error {
	if f.CreateFn != nil {
		return f.CreateFn(ctx, a)
	}
	return nil
}

func (f *fakeAuthorRepo) FindByID(ctx context.Context, id uint) (*model.Author, error) {
	if f.FindByIDFn != nil {
		return f.FindByIDFn(ctx, id)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAuthorRepo) List(ctx context.Context, params repository.ListParams) ([]model.Author, error) {
	if f.ListFn != nil {
		return f.ListFn(ctx, params)
	}
	return nil, nil
}

func (f *fakeAuthorRepo) Update(ctx context.Context, id uint, patch model.AuthorPatch) (*model.Author, error) {
	if f.UpdateFn != nil {
		return f.UpdateFn(ctx, id, patch)
	}
	return nil, repository.ErrNotFound
}

func (f *fakeAuthorRepo) Delete(ctx context.Context, id uint) error {
	if f.DeleteFn != nil {
		return f.DeleteFn(ctx, id)
	}
	return nil
}

func TestCreateAuthor_Success(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	body := CreateAuthorRequest{Name: "Jane Austen", Country: "UK"}

	w := testutil.DoJSON(t, router, http.MethodPost, "/authors", body)
	if w.Code != http.StatusCreated {
		t.Fatalf("expected status 201, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp Author
	testutil.DecodeJSON(t, w, &resp)

	if resp.ID == 0 {
		t.Errorf("expected an assigned id")
	}
	if resp.Name != body.Name || resp.Country != body.Country {
		t.Errorf("unexpected author in response: %+v", resp)
	}

	var stored model.Author
	if err := db.First(&stored, resp.ID).Error; err != nil {
		t.Fatalf("expected author in db, got error: %v", err)
	}
	if stored.Name != body.Name {
		t.Errorf("expected stored name %q, got %q", body.Name, stored.Name)
	}
}

func TestCreateAuthor_ValidationError_MissingName(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := testutil.DoJSON(t, router, http.MethodPost, "/authors", map[string]any{"country": "UK"})

	resp := expectError(t, w, http.StatusBadRequest, "VALIDATION_FAILED")
	if !hasFieldError(resp, "name") {
		t.Errorf("expected a field error for name, got %+v", resp.Errors)
	}
}

func TestCreateAuthor_MalformedJSON(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := testutil.DoJSON(t, router, http.MethodPost, "/authors", `{"name":`)

	expectError(t, w, http.StatusBadRequest, "INVALID_REQUEST")
}

func TestCreateAuthor_RepoError(t *testing.T) {
	router := setupRouterWithRepos(Repositories{
		Authors: &fakeAuthorRepo{
			CreateFn: func(ctx context.Context, a *model.Author) error {
				return errors.New("connection reset")
			},
		},
		Books:       &fakeBookRepo{},
		Readers:     &fakeReaderRepo{},
		ReaderBooks: &fakeReaderBookRepo{},
	})

	w := testutil.DoJSON(t, router, http.MethodPost, "/authors", CreateAuthorRequest{Name: "A", Country: "B"})

	expectError(t, w, http.StatusInternalServerError, "AUTHOR_CREATE_FAILED")
}

func TestListAuthors_OrderedWindow(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	for _, name := range []string{"A", "B", "C"} {
		testutil.SeedAuthor(t, db, name, "X")
	}

	w := testutil.DoJSON(t, router, http.MethodGet, "/authors?offset=1&limit=1", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp []Author
	testutil.DecodeJSON(t, w, &resp)

	if len(resp) != 1 || resp[0].Name != "B" {
		t.Fatalf("expected only author B, got %+v", resp)
	}
}

func TestListAuthors_EmptyIsArray(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := testutil.DoJSON(t, router, http.MethodGet, "/authors", nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d", w.Code)
	}
	if got := w.Body.String(); got != "[]" {
		t.Errorf("expected empty array, got %s", got)
	}
}

func TestListAuthors_DBError(t *testing.T) {
	router := setupTestRouter(testutil.NewErrorDB(t))

	w := testutil.DoJSON(t, router, http.MethodGet, "/authors", nil)

	expectError(t, w, http.StatusInternalServerError, "AUTHOR_LIST_FAILED")
}

func TestGetAuthor_WithBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := testutil.SeedAuthor(t, db, "Jane Austen", "UK")
	testutil.SeedBook(t, db, "Emma", "Romance", nil, &author.ID)
	testutil.SeedBook(t, db, "Persuasion", "Romance", nil, &author.ID)

	w := testutil.DoJSON(t, router, http.MethodGet, fmt.Sprintf("/authors/%d", author.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp AuthorWithBooks
	testutil.DecodeJSON(t, w, &resp)

	if resp.Name != "Jane Austen" {
		t.Errorf("expected name Jane Austen, got %q", resp.Name)
	}
	if len(resp.Books) != 2 || resp.Books[0].Title != "Emma" {
		t.Errorf("expected two books starting with Emma, got %+v", resp.Books)
	}
}

func TestGetAuthor_NotFound(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := testutil.DoJSON(t, router, http.MethodGet, "/authors/42", nil)

	resp := expectError(t, w, http.StatusNotFound, "AUTHOR_NOT_FOUND")
	if resp.Message != "author not found" {
		t.Errorf("unexpected message %q", resp.Message)
	}
}

func TestGetAuthor_InvalidID(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	for _, id := range []string{"abc", "0", "-3"} {
		w := testutil.DoJSON(t, router, http.MethodGet, "/authors/"+id, nil)
		expectError(t, w, http.StatusBadRequest, "INVALID_AUTHOR_ID")
	}
}

func TestUpdateAuthor_PartialMerge(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := testutil.SeedAuthor(t, db, "Jane Austen", "UK")

	w := testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/authors/%d", author.ID), map[string]any{
		"country": "England",
	})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp Author
	testutil.DecodeJSON(t, w, &resp)

	if resp.Name != "Jane Austen" || resp.Country != "England" {
		t.Errorf("unexpected author after patch: %+v", resp)
	}
}

func TestUpdateAuthor_EmptyPatchKeepsRecord(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := testutil.SeedAuthor(t, db, "Jane Austen", "UK")

	w := testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/authors/%d", author.ID), map[string]any{})
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var stored model.Author
	if err := db.First(&stored, author.ID).Error; err != nil {
		t.Fatalf("failed to reload author: %v", err)
	}
	if stored.Name != "Jane Austen" || stored.Country != "UK" {
		t.Errorf("expected author unchanged, got %+v", stored)
	}
}

func TestUpdateAuthor_EmptyName(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := testutil.SeedAuthor(t, db, "Jane Austen", "UK")

	w := testutil.DoJSON(t, router, http.MethodPatch, fmt.Sprintf("/authors/%d", author.ID), map[string]any{"name": ""})

	expectError(t, w, http.StatusBadRequest, "VALIDATION_FAILED")
}

func TestUpdateAuthor_NotFound(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := testutil.DoJSON(t, router, http.MethodPatch, "/authors/7", map[string]any{"name": "X"})

	expectError(t, w, http.StatusNotFound, "AUTHOR_NOT_FOUND")
}

func TestDeleteAuthor_KeepsBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	router := setupTestRouter(db)

	author := testutil.SeedAuthor(t, db, "Jane Austen", "UK")
	book := testutil.SeedBook(t, db, "Emma", "Romance", nil, &author.ID)

	w := testutil.DoJSON(t, router, http.MethodDelete, fmt.Sprintf("/authors/%d", author.ID), nil)
	if w.Code != http.StatusOK {
		t.Fatalf("expected status 200, got %d, body=%s", w.Code, w.Body.String())
	}

	var resp DeleteResponse
	testutil.DecodeJSON(t, w, &resp)
	if !resp.OK {
		t.Errorf("expected ok=true")
	}

	w = testutil.DoJSON(t, router, http.MethodGet, fmt.Sprintf("/authors/%d", author.ID), nil)
	expectError(t, w, http.StatusNotFound, "AUTHOR_NOT_FOUND")

	var stored model.Book
	if err := db.First(&stored, book.ID).Error; err != nil {
		t.Fatalf("expected book to survive, got error: %v", err)
	}
	if stored.AuthorID != nil {
		t.Errorf("expected author_id cleared, got %d", *stored.AuthorID)
	}
}

func TestDeleteAuthor_NotFound(t *testing.T) {
	router := setupTestRouter(testutil.NewTestDB(t))

	w := testutil.DoJSON(t, router, http.MethodDelete, "/authors/99", nil)

	expectError(t, w, http.StatusNotFound, "AUTHOR_NOT_FOUND")
}

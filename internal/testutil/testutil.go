package testutil

import (
	"bytes"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/snnyvrz/library-api/internal/db"
	"github.com/snnyvrz/library-api/internal/model"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// NewTestDB opens a private, migrated in-memory SQLite database with
// foreign keys enforced.
func NewTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:testdb_" + uuid.New().String() + "?mode=memory&cache=shared&_foreign_keys=on"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to test database: %v", err)
	}

	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

// NewErrorDB opens an in-memory database without any tables, so every query
// fails.
func NewErrorDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := "file:errdb_" + uuid.New().String() + "?mode=memory&cache=shared"

	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to connect to error test database: %v", err)
	}

	sqlDB, err := gdb.DB()
	if err != nil {
		t.Fatalf("failed to get sql.DB from gorm: %v", err)
	}

	t.Cleanup(func() {
		_ = sqlDB.Close()
	})

	return gdb
}

func SeedAuthor(t *testing.T, gdb *gorm.DB, name, country string) model.Author {
	t.Helper()

	author := model.Author{Name: name, Country: country}
	if err := gdb.Create(&author).Error; err != nil {
		t.Fatalf("failed to seed author %q: %v", name, err)
	}

	return author
}

func SeedBook(t *testing.T, gdb *gorm.DB, title, genre string, copies *int, authorID *uint) model.Book {
	t.Helper()

	book := model.Book{
		Title:    title,
		Genre:    genre,
		Copies:   copies,
		AuthorID: authorID,
	}
	if err := gdb.Omit("Author").Create(&book).Error; err != nil {
		t.Fatalf("failed to seed book %q: %v", title, err)
	}

	return book
}

func SeedReader(t *testing.T, gdb *gorm.DB, name, email string) model.Reader {
	t.Helper()

	reader := model.Reader{Name: name, Email: email}
	if err := gdb.Create(&reader).Error; err != nil {
		t.Fatalf("failed to seed reader %q: %v", name, err)
	}

	return reader
}

func SeedReaderBook(t *testing.T, gdb *gorm.DB, readerID, bookID uint, status model.ReaderStatus) model.ReaderBook {
	t.Helper()

	rb := model.ReaderBook{
		ReaderID:     readerID,
		BookID:       bookID,
		ReaderStatus: status,
	}
	if err := gdb.Omit("Reader", "Book").Create(&rb).Error; err != nil {
		t.Fatalf("failed to seed reader book: %v", err)
	}

	return rb
}

// DoJSON sends body (when non-nil) as JSON through h and returns the recorder.
func DoJSON(t *testing.T, h http.Handler, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		var raw []byte
		switch b := body.(type) {
		case string:
			raw = []byte(b)
		default:
			var err error
			raw, err = json.Marshal(body)
			if err != nil {
				t.Fatalf("failed to marshal body: %v", err)
			}
		}
		reader = bytes.NewReader(raw)
	} else {
		reader = bytes.NewReader(nil)
	}

	req := httptest.NewRequest(method, path, reader)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}

	w := httptest.NewRecorder()
	h.ServeHTTP(w, req)
	return w
}

// DecodeJSON unmarshals the recorded body into dst.
func DecodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst any) {
	t.Helper()

	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to unmarshal response %q: %v", w.Body.String(), err)
	}
}

func Ptr[T any](v T) *T {
	return &v
}

package repository

import (
	"context"
	"testing"

	"github.com/snnyvrz/library-api/internal/model"
	"github.com/snnyvrz/library-api/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReaderRepository_CreateFindUpdate(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewReaderRepository(db)
	ctx := context.Background()

	reader := model.Reader{Name: "Ann", Email: "ann@example.com"}
	require.NoError(t, repo.Create(ctx, &reader))
	require.NotZero(t, reader.ID)

	book := testutil.SeedBook(t, db, "Dune", "SciFi", nil, nil)
	testutil.SeedReaderBook(t, db, reader.ID, book.ID, model.StatusReading)

	got, err := repo.FindByID(ctx, reader.ID)
	require.NoError(t, err)
	assert.Equal(t, "ann@example.com", got.Email)
	require.Len(t, got.ReaderBooks, 1)
	assert.Equal(t, model.StatusReading, got.ReaderBooks[0].ReaderStatus)

	updated, err := repo.Update(ctx, reader.ID, model.ReaderPatch{Name: testutil.Ptr("Annie")})
	require.NoError(t, err)
	assert.Equal(t, "Annie", updated.Name)
	assert.Equal(t, "ann@example.com", updated.Email)
}

func TestReaderRepository_Delete_CascadesReaderBooks(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewReaderRepository(db)
	ctx := context.Background()

	reader := testutil.SeedReader(t, db, "Ann", "ann@example.com")
	book := testutil.SeedBook(t, db, "Dune", "SciFi", nil, nil)
	testutil.SeedReaderBook(t, db, reader.ID, book.ID, model.StatusFinishedReading)

	require.NoError(t, repo.Delete(ctx, reader.ID))

	var n int64
	require.NoError(t, db.Model(&model.ReaderBook{}).Count(&n).Error)
	assert.Zero(t, n)

	var books int64
	require.NoError(t, db.Model(&model.Book{}).Count(&books).Error)
	assert.EqualValues(t, 1, books)

	assert.ErrorIs(t, repo.Delete(ctx, reader.ID), ErrNotFound)
}

func TestReaderRepository_Summary(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewReaderRepository(db)
	ctx := context.Background()

	ann := testutil.SeedReader(t, db, "Ann", "ann@example.com")
	bob := testutil.SeedReader(t, db, "Bob", "bob@example.com")

	b1 := testutil.SeedBook(t, db, "Dune", "SciFi", nil, nil)
	b2 := testutil.SeedBook(t, db, "Emma", "Romance", nil, nil)
	b3 := testutil.SeedBook(t, db, "Aliens", "Thriller", nil, nil)

	testutil.SeedReaderBook(t, db, ann.ID, b1.ID, model.StatusReading)
	testutil.SeedReaderBook(t, db, ann.ID, b2.ID, model.StatusReading)
	testutil.SeedReaderBook(t, db, ann.ID, b3.ID, model.StatusFinishedReading)
	testutil.SeedReaderBook(t, db, bob.ID, b1.ID, model.StatusWillRead)

	summary, err := repo.Summary(ctx, ann.ID)
	require.NoError(t, err)

	assert.Equal(t, ann.ID, summary.ReaderID)
	assert.EqualValues(t, 3, summary.Total)
	assert.Equal(t, map[model.ReaderStatus]int64{
		model.StatusFinishedReading: 1,
		model.StatusReading:         2,
		model.StatusWillRead:        0,
	}, summary.Counts)
}

func TestReaderRepository_Summary_Empty(t *testing.T) {
	db := testutil.NewTestDB(t)
	repo := NewReaderRepository(db)

	reader := testutil.SeedReader(t, db, "Ann", "ann@example.com")

	summary, err := repo.Summary(context.Background(), reader.ID)
	require.NoError(t, err)
	assert.Zero(t, summary.Total)
	assert.Len(t, summary.Counts, len(model.ReaderStatuses))
}

func TestReaderRepository_Summary_NotFound(t *testing.T) {
	repo := NewReaderRepository(testutil.NewTestDB(t))

	_, err := repo.Summary(context.Background(), 7)
	assert.ErrorIs(t, err, ErrNotFound)
}

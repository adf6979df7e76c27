package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"time"

	"github.com/snnyvrz/library-api/internal/config"
	"github.com/snnyvrz/library-api/internal/db"
	"github.com/snnyvrz/library-api/internal/model"
	"gorm.io/gorm"
)

type seedBook struct {
	title  string
	genre  string
	copies *int
	author string
}

var seedAuthors = []model.Author{
	{Name: "J.D. Salinger", Country: "USA"},
	{Name: "Jane Austen", Country: "UK"},
	{Name: "Scott Hanselman", Country: "UK"},
	{Name: "Pranav Rastogi", Country: "India"},
}

var seedBooks = []seedBook{
	{title: "Aliens", genre: "Thriller", author: "J.D. Salinger"},
	{title: "Nine Stories", genre: "Romance", copies: intPtr(3521), author: "Scott Hanselman"},
	{title: "Deliverance", genre: "Drama", author: "Jane Austen"},
}

func main() {
	log := slog.New(slog.NewTextHandler(os.Stdout, nil))

	cfg, err := config.Load()
	if err != nil {
		log.Error("failed to load config", "error", err)
		os.Exit(1)
	}

	ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
	defer cancel()

	database, err := db.ConnectWithRetry(ctx, cfg, log)
	if err != nil {
		log.Error("failed to connect to database", "error", err)
		os.Exit(1)
	}

	if err := db.Migrate(database); err != nil {
		log.Error("failed to migrate database", "error", err)
		os.Exit(1)
	}

	if err := seed(ctx, database); err != nil {
		log.Error("failed to seed database", "error", err)
		os.Exit(1)
	}

	log.Info("seed complete", "authors", len(seedAuthors), "books", len(seedBooks))
}

// seed is idempotent: rows are matched by author name and book title.
func seed(ctx context.Context, gdb *gorm.DB) error {
	return gdb.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		authorIDs := make(map[string]uint, len(seedAuthors))

		for _, a := range seedAuthors {
			author := a
			if err := tx.Where(model.Author{Name: a.Name}).
				Attrs(model.Author{Country: a.Country}).
				FirstOrCreate(&author).Error; err != nil {
				return fmt.Errorf("author %q: %w", a.Name, err)
			}
			authorIDs[a.Name] = author.ID
		}

		for _, b := range seedBooks {
			authorID := authorIDs[b.author]
			book := model.Book{}
			if err := tx.Where(model.Book{Title: b.title}).
				Attrs(model.Book{Genre: b.genre, Copies: b.copies, AuthorID: &authorID}).
				FirstOrCreate(&book).Error; err != nil {
				return fmt.Errorf("book %q: %w", b.title, err)
			}
		}

		return nil
	})
}

func intPtr(v int) *int {
	return &v
}

package model

import (
	"time"
)

type Book struct {
	ID        uint   `gorm:"primaryKey"`
	Title     string `gorm:"not null"`
	Genre     string `gorm:"not null"`
	Copies    *int
	AuthorID  *uint `gorm:"index"`
	Author    *Author
	CreatedAt time.Time
	UpdatedAt time.Time
}

// BookPatch carries the fields of a partial book update. Copies and AuthorID
// may be cleared with an explicit null.
type BookPatch struct {
	Title    *string
	Genre    *string
	Copies   Nullable[int]
	AuthorID Nullable[uint]
}

func (p BookPatch) Apply(b *Book) {
	if p.Title != nil {
		b.Title = *p.Title
	}
	if p.Genre != nil {
		b.Genre = *p.Genre
	}
	p.Copies.apply(&b.Copies)

	if p.AuthorID.Set {
		p.AuthorID.apply(&b.AuthorID)
		// the preloaded author no longer matches the key
		b.Author = nil
	}
}

package handler

import (
	"github.com/snnyvrz/library-api/internal/model"
)

func toAuthor(a model.Author) Author {
	return Author{
		ID:        a.ID,
		Name:      a.Name,
		Country:   a.Country,
		CreatedAt: a.CreatedAt,
		UpdatedAt: a.UpdatedAt,
	}
}

func toAuthorWithBooks(a model.Author) AuthorWithBooks {
	books := make([]Book, 0, len(a.Books))
	for _, b := range a.Books {
		books = append(books, toBook(b))
	}

	return AuthorWithBooks{
		Author: toAuthor(a),
		Books:  books,
	}
}

func toBook(b model.Book) Book {
	return Book{
		ID:        b.ID,
		Title:     b.Title,
		Genre:     b.Genre,
		Copies:    b.Copies,
		AuthorID:  b.AuthorID,
		CreatedAt: b.CreatedAt,
		UpdatedAt: b.UpdatedAt,
	}
}

func toBookWithAuthor(b model.Book) BookWithAuthor {
	res := BookWithAuthor{Book: toBook(b)}
	if b.Author != nil {
		a := toAuthor(*b.Author)
		res.Author = &a
	}
	return res
}

func toReader(r model.Reader) Reader {
	return Reader{
		ID:        r.ID,
		Name:      r.Name,
		Email:     r.Email,
		CreatedAt: r.CreatedAt,
		UpdatedAt: r.UpdatedAt,
	}
}

func toReaderWithReaderBooks(r model.Reader) ReaderWithReaderBooks {
	rbs := make([]ReaderBook, 0, len(r.ReaderBooks))
	for _, rb := range r.ReaderBooks {
		rbs = append(rbs, toReaderBook(rb))
	}

	return ReaderWithReaderBooks{
		Reader:      toReader(r),
		ReaderBooks: rbs,
	}
}

func toReaderSummary(s model.ReaderSummary) ReaderSummary {
	counts := make(map[string]int64, len(s.Counts))
	for status, n := range s.Counts {
		counts[string(status)] = n
	}

	return ReaderSummary{
		ReaderID: s.ReaderID,
		Total:    s.Total,
		Counts:   counts,
	}
}

func toReaderBook(rb model.ReaderBook) ReaderBook {
	return ReaderBook{
		ID:           rb.ID,
		BookID:       rb.BookID,
		ReaderID:     rb.ReaderID,
		ReaderStatus: rb.ReaderStatus,
		CreatedAt:    rb.CreatedAt,
		UpdatedAt:    rb.UpdatedAt,
	}
}

func toReaderBookWithRelations(rb model.ReaderBook) ReaderBookWithRelations {
	res := ReaderBookWithRelations{ReaderBook: toReaderBook(rb)}
	if rb.Reader != nil {
		r := toReader(*rb.Reader)
		res.Reader = &r
	}
	if rb.Book != nil {
		b := toBook(*rb.Book)
		res.Book = &b
	}
	return res
}

func mapSlice[T, R any](in []T, f func(T) R) []R {
	out := make([]R, 0, len(in))
	for _, v := range in {
		out = append(out, f(v))
	}
	return out
}

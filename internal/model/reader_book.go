package model

import (
	"time"
)

type ReaderStatus string

const (
	StatusFinishedReading ReaderStatus = "FINISHED_READING"
	StatusReading         ReaderStatus = "READING"
	StatusWillRead        ReaderStatus = "WILL_READ"
)

// ReaderStatuses lists every status in display order.
var ReaderStatuses = []ReaderStatus{
	StatusFinishedReading,
	StatusReading,
	StatusWillRead,
}

func (s ReaderStatus) Valid() bool {
	switch s {
	case StatusFinishedReading, StatusReading, StatusWillRead:
		return true
	}
	return false
}

// ReaderBook links a reader to a book together with how far they got.
type ReaderBook struct {
	ID           uint         `gorm:"primaryKey"`
	BookID       uint         `gorm:"not null;index"`
	Book         *Book        `gorm:"constraint:OnDelete:CASCADE"`
	ReaderID     uint         `gorm:"not null;index"`
	Reader       *Reader
	ReaderStatus ReaderStatus `gorm:"type:varchar(32);not null;index;check:chk_reader_books_status,reader_status IN ('FINISHED_READING','READING','WILL_READ')"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

type ReaderBookPatch struct {
	BookID       *uint
	ReaderID     *uint
	ReaderStatus *ReaderStatus
}

func (p ReaderBookPatch) Apply(rb *ReaderBook) {
	if p.BookID != nil {
		rb.BookID = *p.BookID
		rb.Book = nil
	}
	if p.ReaderID != nil {
		rb.ReaderID = *p.ReaderID
		rb.Reader = nil
	}
	if p.ReaderStatus != nil {
		rb.ReaderStatus = *p.ReaderStatus
	}
}

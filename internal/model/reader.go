package model

import (
	"time"
)

type Reader struct {
	ID          uint         `gorm:"primaryKey"`
	Name        string       `gorm:"not null"`
	Email       string       `gorm:"not null;index"`
	ReaderBooks []ReaderBook `gorm:"foreignKey:ReaderID;constraint:OnDelete:CASCADE"`
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

type ReaderPatch struct {
	Name  *string
	Email *string
}

func (p ReaderPatch) Apply(r *Reader) {
	if p.Name != nil {
		r.Name = *p.Name
	}
	if p.Email != nil {
		r.Email = *p.Email
	}
}

// ReaderSummary counts a reader's books per reading status.
type ReaderSummary struct {
	ReaderID uint
	Total    int64
	Counts   map[ReaderStatus]int64
}

// NewReaderSummary returns a summary with every status present and zeroed.
func NewReaderSummary(readerID uint) *ReaderSummary {
	counts := make(map[ReaderStatus]int64, len(ReaderStatuses))
	for _, s := range ReaderStatuses {
		counts[s] = 0
	}
	return &ReaderSummary{ReaderID: readerID, Counts: counts}
}

// Add records n books in status s. Unknown statuses are ignored.
func (s *ReaderSummary) Add(status ReaderStatus, n int64) {
	if !status.Valid() {
		return
	}
	s.Counts[status] += n
	s.Total += n
}

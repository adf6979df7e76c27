package model

import (
	"time"
)

type Author struct {
	ID        uint   `gorm:"primaryKey"`
	Name      string `gorm:"not null;index"`
	Country   string `gorm:"not null"`
	Books     []Book `gorm:"foreignKey:AuthorID;constraint:OnDelete:SET NULL"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

type AuthorPatch struct {
	Name    *string
	Country *string
}

func (p AuthorPatch) Apply(a *Author) {
	if p.Name != nil {
		a.Name = *p.Name
	}
	if p.Country != nil {
		a.Country = *p.Country
	}
}

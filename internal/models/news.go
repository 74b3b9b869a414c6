package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	NewsStatusDraft     = "draft"
	NewsStatusPublished = "published"
)

type NewsPost struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Slug          string    `gorm:"unique;not null;index"`
	Title         string    `gorm:"not null"`
	Excerpt       string    `gorm:"type:text"`
	Content       string    `gorm:"type:text"`
	CoverImageURL string
	PublishedAt   *time.Time `gorm:"index"`
	Status        string     `gorm:"not null;default:'draft';index"`
	AuthorID      *uuid.UUID `gorm:"type:uuid"`
	Author        *User      `gorm:"foreignKey:AuthorID"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (post *NewsPost) BeforeCreate(tx *gorm.DB) (err error) {
	if post.ID == uuid.Nil {
		post.ID = uuid.New()
	}
	return
}

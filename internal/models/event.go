package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	EventStatusDraft     = "draft"
	EventStatusPublished = "published"
	EventStatusArchived  = "archived"
)

type Event struct {
	ID            uuid.UUID `gorm:"type:uuid;primary_key"`
	Slug          string    `gorm:"unique;not null;index"`
	Title         string    `gorm:"not null"`
	Subtitle      string
	Description   string `gorm:"type:text"`
	Venue         string
	Address       string
	City          string
	State         string
	Zip           string
	StartDatetime time.Time `gorm:"not null;index"`
	EndDatetime   *time.Time
	CoverImageURL string
	Status        string `gorm:"not null;default:'draft';index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time

	TicketTypes []TicketType `gorm:"constraint:OnDelete:CASCADE"`
}

func (event *Event) BeforeCreate(tx *gorm.DB) (err error) {
	if event.ID == uuid.Nil {
		event.ID = uuid.New()
	}
	return
}

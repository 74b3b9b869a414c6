package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	ContactStatusNew       = "new"
	ContactStatusRead      = "read"
	ContactStatusResponded = "responded"
)

type ContactMessage struct {
	ID        uuid.UUID `gorm:"type:uuid;primary_key"`
	Name      string    `gorm:"not null"`
	Email     string    `gorm:"not null"`
	Subject   string
	Message   string    `gorm:"type:text;not null"`
	Status    string    `gorm:"not null;default:'new';index"`
	CreatedAt time.Time `gorm:"index"`
}

func (msg *ContactMessage) BeforeCreate(tx *gorm.DB) (err error) {
	if msg.ID == uuid.Nil {
		msg.ID = uuid.New()
	}
	return
}

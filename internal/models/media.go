package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

const (
	MediaTypeImage = "image"
	MediaTypeVideo = "video"
)

type MediaAsset struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	Title       string
	Description string `gorm:"type:text"`
	URL         string `gorm:"not null"`
	AltText     string
	Type        string    `gorm:"default:'image';index"`
	CreatedAt   time.Time `gorm:"index"`
}

func (asset *MediaAsset) BeforeCreate(tx *gorm.DB) (err error) {
	if asset.ID == uuid.Nil {
		asset.ID = uuid.New()
	}
	return
}

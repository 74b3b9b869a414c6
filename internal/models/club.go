package models

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// ClubInfo is a singleton row: the first record wins, created on demand.
type ClubInfo struct {
	ID             uuid.UUID `gorm:"type:uuid;primary_key"`
	Name           string
	Mission        string `gorm:"type:text"`
	About          string `gorm:"type:text"`
	Email          string
	Phone          string
	Address        string
	InstagramURL   string
	TiktokURL      string
	BannerImageURL string
	UpdatedAt      time.Time
}

func (club *ClubInfo) BeforeCreate(tx *gorm.DB) (err error) {
	if club.ID == uuid.Nil {
		club.ID = uuid.New()
	}
	return
}

func GetClubInfo(db *gorm.DB) (*ClubInfo, error) {
	var club ClubInfo
	if err := db.First(&club).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, err
		}
		if err := db.Create(&club).Error; err != nil {
			return nil, err
		}
	}
	return &club, nil
}

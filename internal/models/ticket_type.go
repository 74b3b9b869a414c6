package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type TicketType struct {
	ID            uuid.UUID       `gorm:"type:uuid;primary_key"`
	EventID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	Event         Event           `gorm:"foreignKey:EventID"`
	Name          string          `gorm:"not null"`
	Description   string          `gorm:"type:text"`
	Price         decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Currency      string          `gorm:"default:'USD'"`
	QuantityTotal int             `gorm:"not null"`
	QuantitySold  int             `gorm:"not null;default:0"`
	SalesStart    *time.Time
	SalesEnd      *time.Time
	IsActive      bool `gorm:"default:true;index"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

func (tt *TicketType) BeforeCreate(tx *gorm.DB) (err error) {
	if tt.ID == uuid.Nil {
		tt.ID = uuid.New()
	}
	return
}

func (tt *TicketType) AvailableQuantity() int {
	remaining := tt.QuantityTotal - tt.QuantitySold
	if remaining < 0 {
		return 0
	}
	return remaining
}

// IsAvailable is recomputed on every read; sales windows are time-dependent.
func (tt *TicketType) IsAvailable() bool {
	if !tt.IsActive {
		return false
	}
	if tt.AvailableQuantity() <= 0 {
		return false
	}
	now := time.Now().UTC()
	if tt.SalesStart != nil && now.Before(*tt.SalesStart) {
		return false
	}
	if tt.SalesEnd != nil && now.After(*tt.SalesEnd) {
		return false
	}
	return true
}

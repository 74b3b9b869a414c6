package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Cart struct {
	ID        uuid.UUID  `gorm:"type:uuid;primary_key"`
	UserID    *uuid.UUID `gorm:"type:uuid;index"`
	SessionID *string    `gorm:"uniqueIndex"`
	CreatedAt time.Time
	UpdatedAt time.Time

	Items []CartItem `gorm:"constraint:OnDelete:CASCADE"`
}

func (cart *Cart) BeforeCreate(tx *gorm.DB) (err error) {
	if cart.ID == uuid.Nil {
		cart.ID = uuid.New()
	}
	if cart.SessionID == nil {
		sessionID := uuid.NewString()
		cart.SessionID = &sessionID
	}
	return
}

func (cart *Cart) Subtotal() decimal.Decimal {
	total := decimal.Zero
	for _, item := range cart.Items {
		total = total.Add(item.Subtotal())
	}
	return total
}

type CartItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	CartID       uuid.UUID       `gorm:"type:uuid;not null;index"`
	TicketTypeID uuid.UUID       `gorm:"type:uuid;not null;index"`
	TicketType   TicketType      `gorm:"foreignKey:TicketTypeID"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	CreatedAt    time.Time
}

func (item *CartItem) BeforeCreate(tx *gorm.DB) (err error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return
}

func (item *CartItem) Subtotal() decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

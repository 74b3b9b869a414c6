package models

import (
	"encoding/hex"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	OrderStatusPending  = "pending"
	OrderStatusPaid     = "paid"
	OrderStatusCanceled = "canceled"
	OrderStatusRefunded = "refunded"
)

type Order struct {
	ID              uuid.UUID  `gorm:"type:uuid;primary_key"`
	OrderNumber     string     `gorm:"unique;not null;index"`
	UserID          *uuid.UUID `gorm:"type:uuid;index"`
	Email           string     `gorm:"not null"`
	Subtotal        decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Fees            decimal.Decimal `gorm:"type:numeric(10,2);default:0"`
	Total           decimal.Decimal `gorm:"type:numeric(10,2);not null"`
	Currency        string          `gorm:"default:'USD'"`
	Status          string          `gorm:"not null;default:'pending';index"`
	PaymentProvider string
	PaymentIntentID string
	CreatedAt       time.Time
	UpdatedAt       time.Time

	Items []OrderItem `gorm:"constraint:OnDelete:CASCADE"`
}

func (order *Order) BeforeCreate(tx *gorm.DB) (err error) {
	if order.ID == uuid.Nil {
		order.ID = uuid.New()
	}
	if order.OrderNumber == "" {
		order.OrderNumber = NewOrderNumber()
	}
	return
}

func NewOrderNumber() string {
	u := uuid.New()
	return "ORD-" + strings.ToUpper(hex.EncodeToString(u[:4]))
}

type OrderItem struct {
	ID           uuid.UUID       `gorm:"type:uuid;primary_key"`
	OrderID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	EventID      uuid.UUID       `gorm:"type:uuid;not null;index"`
	Event        Event           `gorm:"foreignKey:EventID"`
	TicketTypeID uuid.UUID       `gorm:"type:uuid;not null"`
	TicketType   TicketType      `gorm:"foreignKey:TicketTypeID"`
	Quantity     int             `gorm:"not null"`
	UnitPrice    decimal.Decimal `gorm:"type:numeric(10,2);not null"`

	Tickets []Ticket `gorm:"constraint:OnDelete:CASCADE"`
}

func (item *OrderItem) BeforeCreate(tx *gorm.DB) (err error) {
	if item.ID == uuid.Nil {
		item.ID = uuid.New()
	}
	return
}

func (item *OrderItem) Subtotal() decimal.Decimal {
	return item.UnitPrice.Mul(decimal.NewFromInt(int64(item.Quantity)))
}

type Ticket struct {
	ID          uuid.UUID `gorm:"type:uuid;primary_key"`
	OrderItemID uuid.UUID `gorm:"type:uuid;not null;index"`
	TicketCode  string    `gorm:"unique;not null;index"`
	HolderName  string
	HolderEmail string
	CheckedIn   bool `gorm:"default:false;index"`
	QRCodeURL   string
}

func (ticket *Ticket) BeforeCreate(tx *gorm.DB) (err error) {
	if ticket.ID == uuid.Nil {
		ticket.ID = uuid.New()
	}
	if ticket.TicketCode == "" {
		ticket.TicketCode = NewTicketCode()
	}
	return
}

func NewTicketCode() string {
	u := uuid.New()
	return "TKT-" + strings.ToUpper(hex.EncodeToString(u[:6]))
}

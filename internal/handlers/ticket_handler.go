package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"clubtix/internal/helpers"
	"clubtix/internal/models"
)

type TicketTypeCreateRequest struct {
	Name          string     `json:"name" binding:"required"`
	Description   string     `json:"description"`
	Price         float64    `json:"price" binding:"required,gte=0"`
	Currency      string     `json:"currency"`
	QuantityTotal int        `json:"quantity_total" binding:"required,gte=1"`
	SalesStart    *time.Time `json:"sales_start"`
	SalesEnd      *time.Time `json:"sales_end"`
	IsActive      *bool      `json:"is_active"`
}

type TicketTypeUpdateRequest struct {
	Name          *string    `json:"name"`
	Description   *string    `json:"description"`
	Price         *float64   `json:"price" binding:"omitempty,gte=0"`
	Currency      *string    `json:"currency"`
	QuantityTotal *int       `json:"quantity_total" binding:"omitempty,gte=1"`
	SalesStart    *time.Time `json:"sales_start"`
	SalesEnd      *time.Time `json:"sales_end"`
	IsActive      *bool      `json:"is_active"`
}

// ListEventTickets accepts either an event ID or a slug in the path.
func ListEventTickets(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	param := c.Param("slug")
	eventID, err := uuid.Parse(param)
	if err != nil {
		var event models.Event
		if err := gormDB.Where("slug = ?", param).First(&event).Error; err != nil {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
			return
		}
		eventID = event.ID
	}

	var ticketTypes []models.TicketType
	err = gormDB.Where("event_id = ? AND is_active = ?", eventID, true).
		Find(&ticketTypes).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving ticket types.")
		return
	}

	results := make([]gin.H, 0, len(ticketTypes))
	for i := range ticketTypes {
		results = append(results, ticketTypeResponse(&ticketTypes[i]))
	}

	c.JSON(http.StatusOK, results)
}

func CreateTicketType(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var req TicketTypeCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithValidationError(c, err)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	if err := gormDB.Where("id = ?", eventID).First(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
		return
	}

	currency := req.Currency
	if currency == "" {
		currency = "USD"
	}
	isActive := true
	if req.IsActive != nil {
		isActive = *req.IsActive
	}

	ticketType := models.TicketType{
		EventID:       event.ID,
		Name:          req.Name,
		Description:   req.Description,
		Price:         decimal.NewFromFloat(req.Price),
		Currency:      currency,
		QuantityTotal: req.QuantityTotal,
		SalesStart:    req.SalesStart,
		SalesEnd:      req.SalesEnd,
		IsActive:      isActive,
	}

	if err := gormDB.Create(&ticketType).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create ticket type.")
		return
	}

	c.JSON(http.StatusCreated, ticketTypeResponse(&ticketType))
}

func UpdateTicketType(c *gin.Context) {
	ticketTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket type ID")
		return
	}

	var req TicketTypeUpdateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithValidationError(c, err)
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var ticketType models.TicketType
	if err := gormDB.Where("id = ?", ticketTypeID).First(&ticketType).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Ticket type not found")
		return
	}

	if req.Name != nil {
		ticketType.Name = *req.Name
	}
	if req.Description != nil {
		ticketType.Description = *req.Description
	}
	if req.Price != nil {
		ticketType.Price = decimal.NewFromFloat(*req.Price)
	}
	if req.Currency != nil {
		ticketType.Currency = *req.Currency
	}
	if req.QuantityTotal != nil {
		ticketType.QuantityTotal = *req.QuantityTotal
	}
	if req.SalesStart != nil {
		ticketType.SalesStart = req.SalesStart
	}
	if req.SalesEnd != nil {
		ticketType.SalesEnd = req.SalesEnd
	}
	if req.IsActive != nil {
		ticketType.IsActive = *req.IsActive
	}

	if err := gormDB.Save(&ticketType).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update ticket type.")
		return
	}

	c.JSON(http.StatusOK, ticketTypeResponse(&ticketType))
}

func DeleteTicketType(c *gin.Context) {
	ticketTypeID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid ticket type ID")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var ticketType models.TicketType
	if err := gormDB.Where("id = ?", ticketTypeID).First(&ticketType).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Ticket type not found")
		return
	}

	if err := gormDB.Delete(&ticketType).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete ticket type.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Ticket type deleted"})
}

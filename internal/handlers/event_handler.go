package handlers

import (
	"net/http"
	"strconv"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"clubtix/internal/helpers"
	"clubtix/internal/middleware"
	"clubtix/internal/models"
)

type EventCreateRequest struct {
	Slug          string     `json:"slug"`
	Title         string     `json:"title" binding:"required"`
	Subtitle      string     `json:"subtitle"`
	Description   string     `json:"description"`
	Venue         string     `json:"venue"`
	Address       string     `json:"address"`
	City          string     `json:"city"`
	State         string     `json:"state"`
	Zip           string     `json:"zip"`
	StartDatetime time.Time  `json:"start_datetime" binding:"required"`
	EndDatetime   *time.Time `json:"end_datetime"`
	CoverImageURL string     `json:"cover_image_url"`
	Status        string     `json:"status" binding:"omitempty,oneof=draft published archived"`
}

type EventUpdateRequest struct {
	Slug          *string    `json:"slug"`
	Title         *string    `json:"title"`
	Subtitle      *string    `json:"subtitle"`
	Description   *string    `json:"description"`
	Venue         *string    `json:"venue"`
	Address       *string    `json:"address"`
	City          *string    `json:"city"`
	State         *string    `json:"state"`
	Zip           *string    `json:"zip"`
	StartDatetime *time.Time `json:"start_datetime"`
	EndDatetime   *time.Time `json:"end_datetime"`
	CoverImageURL *string    `json:"cover_image_url"`
	Status        *string    `json:"status" binding:"omitempty,oneof=draft published archived"`
}

func ListEvents(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	query := gormDB.Model(&models.Event{})

	if q := c.Query("q"); q != "" {
		pattern := "%" + q + "%"
		query = query.Where("title LIKE ? OR description LIKE ?", pattern, pattern)
	}

	if dateFrom := c.Query("date_from"); dateFrom != "" {
		if t, err := time.Parse(time.RFC3339, dateFrom); err == nil {
			query = query.Where("start_datetime >= ?", t)
		}
	}
	if dateTo := c.Query("date_to"); dateTo != "" {
		if t, err := time.Parse(time.RFC3339, dateTo); err == nil {
			query = query.Where("start_datetime <= ?", t)
		}
	}

	if venue := c.Query("venue"); venue != "" {
		query = query.Where("venue LIKE ?", "%"+venue+"%")
	}

	minPrice := c.Query("min_price")
	maxPrice := c.Query("max_price")
	if minPrice != "" || maxPrice != "" {
		sub := gormDB.Model(&models.TicketType{}).Select("event_id")
		if minPrice != "" {
			if v, err := strconv.ParseFloat(minPrice, 64); err == nil {
				sub = sub.Where("price >= ?", v)
			}
		}
		if maxPrice != "" {
			if v, err := strconv.ParseFloat(maxPrice, 64); err == nil {
				sub = sub.Where("price <= ?", v)
			}
		}
		query = query.Where("id IN (?)", sub)
	}

	user := middleware.CurrentUser(c)
	if user == nil || !user.IsAdmin() {
		query = query.Where("status = ?", models.EventStatusPublished)
	}

	pagination := helpers.ParsePagination(c)

	var totalCount int64
	query.Count(&totalCount)

	var events []models.Event
	err := query.Order("start_datetime ASC").
		Offset(pagination.Offset()).Limit(pagination.PerPage).
		Find(&events).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving events.")
		return
	}

	results := make([]gin.H, 0, len(events))
	for i := range events {
		results = append(results, eventResponse(&events[i], false))
	}

	c.JSON(http.StatusOK, gin.H{
		"events":     results,
		"pagination": helpers.PaginationMeta(pagination, totalCount),
	})
}

func GetEvent(c *gin.Context) {
	eventSlug := c.Param("slug")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var event models.Event
	err := gormDB.Preload("TicketTypes", "is_active = ?", true).
		Where("slug = ?", eventSlug).First(&event).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving event.")
		return
	}

	user := middleware.CurrentUser(c)
	if event.Status != models.EventStatusPublished && (user == nil || !user.IsAdmin()) {
		helpers.RespondWithError(c, http.StatusNotFound, "Event not found")
		return
	}

	c.JSON(http.StatusOK, eventResponse(&event, true))
}

func CreateEvent(c *gin.Context) {
	var req EventCreateRequest
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

	eventSlug := req.Slug
	if eventSlug == "" {
		eventSlug = slug.Make(req.Title)
	}

	var existing models.Event
	if result := gormDB.Where("slug = ?", eventSlug).First(&existing); result.Error == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Event slug already exists")
		return
	}

	status := req.Status
	if status == "" {
		status = models.EventStatusDraft
	}

	event := models.Event{
		Slug:          eventSlug,
		Title:         req.Title,
		Subtitle:      req.Subtitle,
		Description:   req.Description,
		Venue:         req.Venue,
		Address:       req.Address,
		City:          req.City,
		State:         req.State,
		Zip:           req.Zip,
		StartDatetime: req.StartDatetime,
		EndDatetime:   req.EndDatetime,
		CoverImageURL: req.CoverImageURL,
		Status:        status,
	}

	if err := gormDB.Create(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create event.")
		return
	}

	c.JSON(http.StatusCreated, eventResponse(&event, false))
}

func UpdateEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID")
		return
	}

	var req EventUpdateRequest
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

	if req.Slug != nil {
		event.Slug = *req.Slug
	}
	if req.Title != nil {
		event.Title = *req.Title
	}
	if req.Subtitle != nil {
		event.Subtitle = *req.Subtitle
	}
	if req.Description != nil {
		event.Description = *req.Description
	}
	if req.Venue != nil {
		event.Venue = *req.Venue
	}
	if req.Address != nil {
		event.Address = *req.Address
	}
	if req.City != nil {
		event.City = *req.City
	}
	if req.State != nil {
		event.State = *req.State
	}
	if req.Zip != nil {
		event.Zip = *req.Zip
	}
	if req.StartDatetime != nil {
		event.StartDatetime = *req.StartDatetime
	}
	if req.EndDatetime != nil {
		event.EndDatetime = req.EndDatetime
	}
	if req.CoverImageURL != nil {
		event.CoverImageURL = *req.CoverImageURL
	}
	if req.Status != nil {
		event.Status = *req.Status
	}

	if err := gormDB.Save(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update event.")
		return
	}

	c.JSON(http.StatusOK, eventResponse(&event, false))
}

func DeleteEvent(c *gin.Context) {
	eventID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid event ID")
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

	if err := gormDB.Delete(&event).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete event.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Event deleted"})
}

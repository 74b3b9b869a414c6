package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubtix/internal/helpers"
	"clubtix/internal/models"
)

type ContactRequest struct {
	Name    string `json:"name" binding:"required,max=255"`
	Email   string `json:"email" binding:"required,email"`
	Subject string `json:"subject" binding:"omitempty,max=255"`
	Message string `json:"message" binding:"required"`
}

type ContactStatusRequest struct {
	Status string `json:"status" binding:"required,oneof=new read responded"`
}

func SubmitContact(c *gin.Context) {
	var req ContactRequest
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

	message := models.ContactMessage{
		Name:    req.Name,
		Email:   req.Email,
		Subject: req.Subject,
		Message: req.Message,
		Status:  models.ContactStatusNew,
	}

	if err := gormDB.Create(&message).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to submit message.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"message": "Thank you for your message. We will get back to you soon.",
		"id":      message.ID,
	})
}

func ListContactMessages(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	pagination := helpers.ParsePagination(c)

	var totalCount int64
	gormDB.Model(&models.ContactMessage{}).Count(&totalCount)

	var messages []models.ContactMessage
	err := gormDB.Order("created_at DESC").
		Offset(pagination.Offset()).Limit(pagination.PerPage).
		Find(&messages).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving messages.")
		return
	}

	results := make([]gin.H, 0, len(messages))
	for i := range messages {
		results = append(results, contactResponse(&messages[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"messages":   results,
		"pagination": helpers.PaginationMeta(pagination, totalCount),
	})
}

func UpdateContactMessage(c *gin.Context) {
	messageID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid message ID")
		return
	}

	var req ContactStatusRequest
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

	var message models.ContactMessage
	if err := gormDB.Where("id = ?", messageID).First(&message).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Message not found")
		return
	}

	message.Status = req.Status
	if err := gormDB.Save(&message).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update message.")
		return
	}

	c.JSON(http.StatusOK, contactResponse(&message))
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubtix/internal/helpers"
	"clubtix/internal/models"
)

type MediaCreateRequest struct {
	Title       string `json:"title"`
	Description string `json:"description"`
	URL         string `json:"url" binding:"required"`
	AltText     string `json:"alt_text"`
	Type        string `json:"type" binding:"omitempty,oneof=image video"`
}

func GetGallery(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var assets []models.MediaAsset
	err := gormDB.Where("type = ?", models.MediaTypeImage).
		Order("created_at DESC").Find(&assets).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving gallery.")
		return
	}

	results := make([]gin.H, 0, len(assets))
	for i := range assets {
		results = append(results, mediaResponse(&assets[i]))
	}

	c.JSON(http.StatusOK, results)
}

func UploadMedia(c *gin.Context) {
	var req MediaCreateRequest
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

	mediaType := req.Type
	if mediaType == "" {
		mediaType = models.MediaTypeImage
	}

	asset := models.MediaAsset{
		Title:       req.Title,
		Description: req.Description,
		URL:         req.URL,
		AltText:     req.AltText,
		Type:        mediaType,
	}

	if err := gormDB.Create(&asset).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create media asset.")
		return
	}

	c.JSON(http.StatusCreated, mediaResponse(&asset))
}

func DeleteMedia(c *gin.Context) {
	assetID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid media ID")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var asset models.MediaAsset
	if err := gormDB.Where("id = ?", assetID).First(&asset).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Media not found")
		return
	}

	if err := gormDB.Delete(&asset).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete media.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Media deleted"})
}

package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clubtix/internal/helpers"
	"clubtix/internal/models"
)

type ClubUpdateRequest struct {
	Name           *string `json:"name"`
	Mission        *string `json:"mission"`
	About          *string `json:"about"`
	Email          *string `json:"email" binding:"omitempty,email"`
	Phone          *string `json:"phone"`
	Address        *string `json:"address"`
	InstagramURL   *string `json:"instagram_url"`
	TiktokURL      *string `json:"tiktok_url"`
	BannerImageURL *string `json:"banner_image_url"`
}

func GetClub(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	club, err := models.GetClubInfo(gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving club info.")
		return
	}

	c.JSON(http.StatusOK, clubResponse(club))
}

func UpdateClub(c *gin.Context) {
	var req ClubUpdateRequest
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

	club, err := models.GetClubInfo(gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving club info.")
		return
	}

	if req.Name != nil {
		club.Name = *req.Name
	}
	if req.Mission != nil {
		club.Mission = *req.Mission
	}
	if req.About != nil {
		club.About = *req.About
	}
	if req.Email != nil {
		club.Email = *req.Email
	}
	if req.Phone != nil {
		club.Phone = *req.Phone
	}
	if req.Address != nil {
		club.Address = *req.Address
	}
	if req.InstagramURL != nil {
		club.InstagramURL = *req.InstagramURL
	}
	if req.TiktokURL != nil {
		club.TiktokURL = *req.TiktokURL
	}
	if req.BannerImageURL != nil {
		club.BannerImageURL = *req.BannerImageURL
	}

	if err := gormDB.Save(club).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update club info.")
		return
	}

	c.JSON(http.StatusOK, clubResponse(club))
}

func GetInstagram(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	club, err := models.GetClubInfo(gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving club info.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":       club.InstagramURL,
		"embed_url": club.InstagramURL,
	})
}

func GetTiktok(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	club, err := models.GetClubInfo(gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving club info.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"url":       club.TiktokURL,
		"embed_url": club.TiktokURL,
	})
}

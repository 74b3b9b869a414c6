package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"clubtix/internal/auth"
	"clubtix/internal/helpers"
	"clubtix/internal/middleware"
	"clubtix/internal/models"
)

type RegisterRequest struct {
	Email     string `json:"email" binding:"required,email"`
	Password  string `json:"password" binding:"required,min=8"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Role      string `json:"role" binding:"omitempty,oneof=user admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type RefreshRequest struct {
	RefreshToken string `json:"refresh_token" binding:"required"`
}

func Register(c *gin.Context) {
	var req RegisterRequest
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

	var existingUser models.User
	if result := gormDB.Where("email = ?", req.Email).First(&existingUser); result.Error == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Email already registered")
		return
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to hash the password.")
		return
	}

	role := req.Role
	if role == "" {
		role = models.RoleUser
	}

	user := models.User{
		Email:        req.Email,
		PasswordHash: string(hashedPassword),
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		Role:         role,
	}

	if err := gormDB.Create(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create user.")
		return
	}

	accessToken, refreshToken, err := issueTokenPair(c, &user)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(http.StatusCreated, gin.H{
		"user":          userResponse(&user),
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func Login(c *gin.Context) {
	var req LoginRequest
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

	var user models.User
	if err := gormDB.Where("email = ?", req.Email).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid credentials")
		return
	}

	accessToken, refreshToken, err := issueTokenPair(c, &user)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"user":          userResponse(&user),
		"access_token":  accessToken,
		"refresh_token": refreshToken,
	})
}

func Refresh(c *gin.Context) {
	var req RefreshRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		helpers.RespondWithValidationError(c, err)
		return
	}

	cfg := middleware.GetConfig(c)
	if cfg == nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Configuration not found.")
		return
	}

	claims, err := auth.VerifyToken(cfg.JWTSecret, req.RefreshToken)
	if err != nil || claims.Kind != auth.TokenKindRefresh {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Invalid refresh token")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var user models.User
	if err := gormDB.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "User not found")
		return
	}

	accessToken, err := auth.GenerateToken(cfg.JWTSecret, user.ID, auth.TokenKindAccess, cfg.AccessTokenTTL)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to generate token.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"access_token": accessToken})
}

func Me(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}
	c.JSON(http.StatusOK, gin.H{"user": userResponse(user)})
}

func issueTokenPair(c *gin.Context, user *models.User) (string, string, error) {
	cfg := middleware.GetConfig(c)
	if cfg == nil {
		return "", "", errors.New("configuration not found")
	}

	accessToken, err := auth.GenerateToken(cfg.JWTSecret, user.ID, auth.TokenKindAccess, cfg.AccessTokenTTL)
	if err != nil {
		return "", "", err
	}
	refreshToken, err := auth.GenerateToken(cfg.JWTSecret, user.ID, auth.TokenKindRefresh, cfg.RefreshTokenTTL)
	if err != nil {
		return "", "", err
	}
	return accessToken, refreshToken, nil
}

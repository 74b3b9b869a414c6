package middleware

import (
	"net/http"
	"strings"

	"clubtix/internal/auth"
	"clubtix/internal/helpers"
	"clubtix/internal/models"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// OptionalAuth resolves the caller from a bearer access token when one is
// present. Anything short of a valid access token leaves the request anonymous.
func OptionalAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		if header == "" {
			c.Next()
			return
		}

		parts := strings.SplitN(header, " ", 2)
		if len(parts) != 2 || !strings.EqualFold(parts[0], "Bearer") {
			c.Next()
			return
		}

		cfg := GetConfig(c)
		if cfg == nil {
			c.Next()
			return
		}

		claims, err := auth.VerifyToken(cfg.JWTSecret, parts[1])
		if err != nil || claims.Kind != auth.TokenKindAccess {
			c.Next()
			return
		}

		db, exists := c.Get("db")
		if !exists {
			c.Next()
			return
		}
		gormDB := db.(*gorm.DB)

		var user models.User
		if err := gormDB.Where("id = ?", claims.UserID).First(&user).Error; err != nil {
			c.Next()
			return
		}

		c.Set("current_user", &user)
		c.Next()
	}
}

func RequireAuth() gin.HandlerFunc {
	return func(c *gin.Context) {
		if CurrentUser(c) == nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		c.Next()
	}
}

func RequireAdmin() gin.HandlerFunc {
	return func(c *gin.Context) {
		user := CurrentUser(c)
		if user == nil {
			helpers.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
			c.Abort()
			return
		}
		if !user.IsAdmin() {
			helpers.RespondWithError(c, http.StatusForbidden, "Admin access required")
			c.Abort()
			return
		}
		c.Next()
	}
}

// CurrentUser returns the resolved caller, or nil for anonymous requests.
func CurrentUser(c *gin.Context) *models.User {
	user, exists := c.Get("current_user")
	if !exists {
		return nil
	}
	return user.(*models.User)
}

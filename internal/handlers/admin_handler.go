package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"clubtix/internal/helpers"
	"clubtix/internal/models"
)

func GetStats(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	last30Days := time.Now().UTC().AddDate(0, 0, -30)

	var totalOrders, recentOrders int64
	gormDB.Model(&models.Order{}).Count(&totalOrders)
	gormDB.Model(&models.Order{}).Where("created_at >= ?", last30Days).Count(&recentOrders)

	var totalRevenue float64
	gormDB.Model(&models.Order{}).
		Where("status = ?", models.OrderStatusPaid).
		Select("COALESCE(SUM(total), 0)").
		Scan(&totalRevenue)

	var totalEvents, publishedEvents int64
	gormDB.Model(&models.Event{}).Count(&totalEvents)
	gormDB.Model(&models.Event{}).Where("status = ?", models.EventStatusPublished).Count(&publishedEvents)

	var totalPosts, publishedPosts int64
	gormDB.Model(&models.NewsPost{}).Count(&totalPosts)
	gormDB.Model(&models.NewsPost{}).Where("status = ?", models.NewsStatusPublished).Count(&publishedPosts)

	var totalUsers int64
	gormDB.Model(&models.User{}).Count(&totalUsers)

	c.JSON(http.StatusOK, gin.H{
		"orders": gin.H{
			"total":          totalOrders,
			"recent_30_days": recentOrders,
		},
		"revenue": gin.H{
			"total": totalRevenue,
		},
		"events": gin.H{
			"total":     totalEvents,
			"published": publishedEvents,
		},
		"news": gin.H{
			"total":     totalPosts,
			"published": publishedPosts,
		},
		"users": gin.H{
			"total": totalUsers,
		},
	})
}

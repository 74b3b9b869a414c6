package handlers

import (
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gorm.io/gorm"

	"clubtix/internal/helpers"
	"clubtix/internal/middleware"
	"clubtix/internal/models"
)

type NewsCreateRequest struct {
	Slug          string     `json:"slug"`
	Title         string     `json:"title" binding:"required"`
	Excerpt       string     `json:"excerpt"`
	Content       string     `json:"content"`
	CoverImageURL string     `json:"cover_image_url"`
	PublishedAt   *time.Time `json:"published_at"`
	Status        string     `json:"status" binding:"omitempty,oneof=draft published"`
}

type NewsUpdateRequest struct {
	Slug          *string    `json:"slug"`
	Title         *string    `json:"title"`
	Excerpt       *string    `json:"excerpt"`
	Content       *string    `json:"content"`
	CoverImageURL *string    `json:"cover_image_url"`
	PublishedAt   *time.Time `json:"published_at"`
	Status        *string    `json:"status" binding:"omitempty,oneof=draft published"`
}

func ListNews(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	query := gormDB.Model(&models.NewsPost{})

	user := middleware.CurrentUser(c)
	if user == nil || !user.IsAdmin() {
		query = query.Where("status = ?", models.NewsStatusPublished)
	}

	pagination := helpers.ParsePagination(c)

	var totalCount int64
	query.Count(&totalCount)

	var posts []models.NewsPost
	err := query.Preload("Author").
		Order("published_at DESC").Order("created_at DESC").
		Offset(pagination.Offset()).Limit(pagination.PerPage).
		Find(&posts).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving posts.")
		return
	}

	results := make([]gin.H, 0, len(posts))
	for i := range posts {
		results = append(results, newsResponse(&posts[i]))
	}

	c.JSON(http.StatusOK, gin.H{
		"posts":      results,
		"pagination": helpers.PaginationMeta(pagination, totalCount),
	})
}

func GetNews(c *gin.Context) {
	postSlug := c.Param("slug")

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var post models.NewsPost
	if err := gormDB.Preload("Author").Where("slug = ?", postSlug).First(&post).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Post not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving post.")
		return
	}

	user := middleware.CurrentUser(c)
	if post.Status != models.NewsStatusPublished && (user == nil || !user.IsAdmin()) {
		helpers.RespondWithError(c, http.StatusNotFound, "Post not found")
		return
	}

	c.JSON(http.StatusOK, newsResponse(&post))
}

func CreateNews(c *gin.Context) {
	var req NewsCreateRequest
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

	postSlug := req.Slug
	if postSlug == "" {
		postSlug = slug.Make(req.Title)
	}

	var existing models.NewsPost
	if result := gormDB.Where("slug = ?", postSlug).First(&existing); result.Error == nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Post slug already exists")
		return
	}

	status := req.Status
	if status == "" {
		status = models.NewsStatusDraft
	}

	post := models.NewsPost{
		Slug:          postSlug,
		Title:         req.Title,
		Excerpt:       req.Excerpt,
		Content:       req.Content,
		CoverImageURL: req.CoverImageURL,
		PublishedAt:   req.PublishedAt,
		Status:        status,
	}
	if user := middleware.CurrentUser(c); user != nil {
		post.AuthorID = &user.ID
	}

	if err := gormDB.Create(&post).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create post.")
		return
	}

	c.JSON(http.StatusCreated, newsResponse(&post))
}

func UpdateNews(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	var req NewsUpdateRequest
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

	var post models.NewsPost
	if err := gormDB.Where("id = ?", postID).First(&post).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Post not found")
		return
	}

	if req.Slug != nil {
		post.Slug = *req.Slug
	}
	if req.Title != nil {
		post.Title = *req.Title
	}
	if req.Excerpt != nil {
		post.Excerpt = *req.Excerpt
	}
	if req.Content != nil {
		post.Content = *req.Content
	}
	if req.CoverImageURL != nil {
		post.CoverImageURL = *req.CoverImageURL
	}
	if req.PublishedAt != nil {
		post.PublishedAt = req.PublishedAt
	}
	if req.Status != nil {
		post.Status = *req.Status
	}

	if err := gormDB.Save(&post).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update post.")
		return
	}

	c.JSON(http.StatusOK, newsResponse(&post))
}

func DeleteNews(c *gin.Context) {
	postID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid post ID")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var post models.NewsPost
	if err := gormDB.Where("id = ?", postID).First(&post).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Post not found")
		return
	}

	if err := gormDB.Delete(&post).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to delete post.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Post deleted"})
}

package handlers_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"clubtix/config"
	"clubtix/internal/auth"
	"clubtix/internal/models"
	"clubtix/internal/server"
)

const testPassword = "password123"

func setupTest(t *testing.T) (*gin.Engine, *gorm.DB, *config.Config) {
	t.Helper()
	gin.SetMode(gin.TestMode)

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", strings.ReplaceAll(t.Name(), "/", "_"))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{})
	require.NoError(t, err)

	err = db.AutoMigrate(
		&models.User{},
		&models.Event{},
		&models.TicketType{},
		&models.Cart{},
		&models.CartItem{},
		&models.Order{},
		&models.OrderItem{},
		&models.Ticket{},
		&models.NewsPost{},
		&models.ClubInfo{},
		&models.MediaAsset{},
		&models.ContactMessage{},
	)
	require.NoError(t, err)

	cfg := &config.Config{
		JWTSecret:       "test-secret",
		AccessTokenTTL:  time.Hour,
		RefreshTokenTTL: 7 * 24 * time.Hour,
	}

	r := gin.New()
	server.SetupRoutes(r, db, cfg)
	return r, db, cfg
}

func createUser(t *testing.T, db *gorm.DB, email, role string) *models.User {
	t.Helper()
	hash, err := bcrypt.GenerateFromPassword([]byte(testPassword), bcrypt.MinCost)
	require.NoError(t, err)
	user := models.User{
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    "Test",
		LastName:     "User",
		Role:         role,
	}
	require.NoError(t, db.Create(&user).Error)
	return &user
}

func authHeader(t *testing.T, cfg *config.Config, user *models.User) string {
	t.Helper()
	token, err := auth.GenerateToken(cfg.JWTSecret, user.ID, auth.TokenKindAccess, cfg.AccessTokenTTL)
	require.NoError(t, err)
	return "Bearer " + token
}

func createEvent(t *testing.T, db *gorm.DB, slug, status string) *models.Event {
	t.Helper()
	event := models.Event{
		Slug:          slug,
		Title:         "Event " + slug,
		Venue:         "Main Hall",
		StartDatetime: time.Now().UTC().Add(30 * 24 * time.Hour),
		Status:        status,
	}
	require.NoError(t, db.Create(&event).Error)
	return &event
}

func createTicketType(t *testing.T, db *gorm.DB, event *models.Event, price float64, total, sold int) *models.TicketType {
	t.Helper()
	tt := models.TicketType{
		EventID:       event.ID,
		Name:          "General Admission",
		Price:         decimal.NewFromFloat(price),
		Currency:      "USD",
		QuantityTotal: total,
		QuantitySold:  sold,
		IsActive:      true,
	}
	require.NoError(t, db.Create(&tt).Error)
	return &tt
}

func performRequest(r http.Handler, method, path string, body any, headers map[string]string) *httptest.ResponseRecorder {
	var reader io.Reader
	if body != nil {
		data, _ := json.Marshal(body)
		reader = bytes.NewBuffer(data)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	for k, v := range headers {
		req.Header.Set(k, v)
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func parseBody(t *testing.T, w *httptest.ResponseRecorder) map[string]any {
	t.Helper()
	var body map[string]any
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

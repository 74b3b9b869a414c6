package handlers_test

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"clubtix/internal/models"
)

func seedCart(t *testing.T, db *gorm.DB, user *models.User, lines map[*models.TicketType]int) *models.Cart {
	t.Helper()
	cart := models.Cart{}
	if user != nil {
		cart.UserID = &user.ID
	}
	require.NoError(t, db.Create(&cart).Error)
	for tt, qty := range lines {
		item := models.CartItem{
			CartID:       cart.ID,
			TicketTypeID: tt.ID,
			Quantity:     qty,
			UnitPrice:    tt.Price,
		}
		require.NoError(t, db.Create(&item).Error)
	}
	return &cart
}

func TestPreviewOrder(t *testing.T) {
	r, db, cfg := setupTest(t)
	event := createEvent(t, db, "gala", models.EventStatusPublished)
	tt := createTicketType(t, db, event, 20.00, 10, 0)
	user := createUser(t, db, "preview@x.com", models.RoleUser)
	seedCart(t, db, user, map[*models.TicketType]int{tt: 3})

	headers := map[string]string{"Authorization": authHeader(t, cfg, user)}

	w := performRequest(r, "POST", "/api/v1/orders/preview", nil, headers)

	require.Equal(t, http.StatusOK, w.Code)
	body := parseBody(t, w)
	assert.Equal(t, 60.0, body["subtotal"])
	assert.Equal(t, 0.0, body["fees"])
	assert.Equal(t, 60.0, body["total"])
	assert.Equal(t, "USD", body["currency"])

	// Preview mutates nothing.
	var orders int64
	db.Model(&models.Order{}).Count(&orders)
	assert.Equal(t, int64(0), orders)
	assert.Equal(t, int64(1), cartCount(t, db))
}

func TestPreviewOrderEmptyCart(t *testing.T) {
	r, _, _ := setupTest(t)
	w := performRequest(r, "POST", "/api/v1/orders/preview", nil, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cart is empty", parseBody(t, w)["error"])
}

func TestCheckoutSuccess(t *testing.T) {
	r, db, cfg := setupTest(t)
	event := createEvent(t, db, "summer-fest", models.EventStatusPublished)
	ttA := createTicketType(t, db, event, 30.00, 50, 0)
	ttB := createTicketType(t, db, event, 12.50, 20, 5)
	user := createUser(t, db, "checkout@x.com", models.RoleUser)
	seedCart(t, db, user, map[*models.TicketType]int{ttA: 2, ttB: 1})

	w := performRequest(r, "POST", "/api/v1/orders/checkout", map[string]any{
		"email": "checkout@x.com",
	}, map[string]string{"Authorization": authHeader(t, cfg, user)})

	require.Equal(t, http.StatusCreated, w.Code)
	body := parseBody(t, w)
	assert.True(t, strings.HasPrefix(body["order_number"].(string), "ORD-"))
	assert.Equal(t, "pending", body["status"])
	assert.Equal(t, 72.5, body["subtotal"])
	assert.Equal(t, 0.0, body["fees"])
	assert.Equal(t, 72.5, body["total"])

	// N line items make N order items and Q tickets in total.
	var orderItems, tickets int64
	db.Model(&models.OrderItem{}).Count(&orderItems)
	db.Model(&models.Ticket{}).Count(&tickets)
	assert.Equal(t, int64(2), orderItems)
	assert.Equal(t, int64(3), tickets)

	var ticketRows []models.Ticket
	db.Find(&ticketRows)
	codes := make(map[string]bool)
	for _, tk := range ticketRows {
		assert.True(t, strings.HasPrefix(tk.TicketCode, "TKT-"))
		assert.Equal(t, "Test User", tk.HolderName)
		assert.Equal(t, "checkout@x.com", tk.HolderEmail)
		codes[tk.TicketCode] = true
	}
	assert.Len(t, codes, 3)

	// Sold counts moved by exactly the purchased quantities.
	var freshA, freshB models.TicketType
	db.First(&freshA, "id = ?", ttA.ID)
	db.First(&freshB, "id = ?", ttB.ID)
	assert.Equal(t, 2, freshA.QuantitySold)
	assert.Equal(t, 6, freshB.QuantitySold)

	// Cart and items are gone.
	assert.Equal(t, int64(0), cartCount(t, db))
	var items int64
	db.Model(&models.CartItem{}).Count(&items)
	assert.Equal(t, int64(0), items)
}

func TestCheckoutExhaustsAvailability(t *testing.T) {
	r, db, cfg := setupTest(t)
	event := createEvent(t, db, "last-seats", models.EventStatusPublished)
	tt := createTicketType(t, db, event, 10.00, 10, 8)
	user := createUser(t, db, "edge@x.com", models.RoleUser)
	seedCart(t, db, user, map[*models.TicketType]int{tt: 2})

	w := performRequest(r, "POST", "/api/v1/orders/checkout", map[string]any{
		"email": "edge@x.com",
	}, map[string]string{"Authorization": authHeader(t, cfg, user)})

	require.Equal(t, http.StatusCreated, w.Code)

	var fresh models.TicketType
	db.First(&fresh, "id = ?", tt.ID)
	assert.Equal(t, 10, fresh.QuantitySold)
	assert.False(t, fresh.IsAvailable())
}

func TestCheckoutInsufficientInventory(t *testing.T) {
	r, db, cfg := setupTest(t)
	event := createEvent(t, db, "scarce", models.EventStatusPublished)
	tt := createTicketType(t, db, event, 10.00, 10, 8)
	user := createUser(t, db, "greedy@x.com", models.RoleUser)
	seedCart(t, db, user, map[*models.TicketType]int{tt: 3})

	w := performRequest(r, "POST", "/api/v1/orders/checkout", map[string]any{
		"email": "greedy@x.com",
	}, map[string]string{"Authorization": authHeader(t, cfg, user)})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, parseBody(t, w)["error"], "Insufficient tickets")

	// The failed attempt leaves no trace: no order rows, sold unchanged,
	// cart still intact.
	var orders, orderItems, tickets int64
	db.Model(&models.Order{}).Count(&orders)
	db.Model(&models.OrderItem{}).Count(&orderItems)
	db.Model(&models.Ticket{}).Count(&tickets)
	assert.Equal(t, int64(0), orders)
	assert.Equal(t, int64(0), orderItems)
	assert.Equal(t, int64(0), tickets)

	var fresh models.TicketType
	db.First(&fresh, "id = ?", tt.ID)
	assert.Equal(t, 8, fresh.QuantitySold)

	assert.Equal(t, int64(1), cartCount(t, db))
	var items int64
	db.Model(&models.CartItem{}).Count(&items)
	assert.Equal(t, int64(1), items)
}

func TestCheckoutInactiveTicketType(t *testing.T) {
	r, db, cfg := setupTest(t)
	event := createEvent(t, db, "pulled", models.EventStatusPublished)
	tt := createTicketType(t, db, event, 10.00, 10, 0)
	user := createUser(t, db, "late@x.com", models.RoleUser)
	seedCart(t, db, user, map[*models.TicketType]int{tt: 1})

	// Deactivated after the item entered the cart.
	require.NoError(t, db.Model(tt).Update("is_active", false).Error)

	w := performRequest(r, "POST", "/api/v1/orders/checkout", map[string]any{
		"email": "late@x.com",
	}, map[string]string{"Authorization": authHeader(t, cfg, user)})

	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, parseBody(t, w)["error"], "no longer available")
}

func TestCheckoutEmptyCart(t *testing.T) {
	r, _, _ := setupTest(t)
	w := performRequest(r, "POST", "/api/v1/orders/checkout", map[string]any{
		"email": "nobody@x.com",
	}, nil)
	require.Equal(t, http.StatusBadRequest, w.Code)
	assert.Equal(t, "Cart is empty", parseBody(t, w)["error"])
}

func TestCheckoutChargesCapturedPrice(t *testing.T) {
	r, db, cfg := setupTest(t)
	event := createEvent(t, db, "price-hike", models.EventStatusPublished)
	tt := createTicketType(t, db, event, 10.00, 10, 0)
	user := createUser(t, db, "bargain@x.com", models.RoleUser)
	seedCart(t, db, user, map[*models.TicketType]int{tt: 2})

	// Catalog price goes up after the add; the captured price must win.
	require.NoError(t, db.Model(tt).Update("price", decimal.NewFromFloat(99.00)).Error)

	w := performRequest(r, "POST", "/api/v1/orders/checkout", map[string]any{
		"email": "bargain@x.com",
	}, map[string]string{"Authorization": authHeader(t, cfg, user)})

	require.Equal(t, http.StatusCreated, w.Code)
	assert.Equal(t, 20.0, parseBody(t, w)["total"])
}

func TestCheckoutAnonymousSession(t *testing.T) {
	r, db, _ := setupTest(t)
	event := createEvent(t, db, "walk-up", models.EventStatusPublished)
	tt := createTicketType(t, db, event, 5.00, 10, 0)

	w := performRequest(r, "POST", "/api/v1/cart", map[string]any{
		"event_id":       event.ID,
		"ticket_type_id": tt.ID,
		"quantity":       1,
	}, nil)
	require.Equal(t, http.StatusCreated, w.Code)
	sessionID := parseBody(t, w)["session_id"].(string)

	w = performRequest(r, "POST", "/api/v1/orders/checkout", map[string]any{
		"email":        "guest@x.com",
		"holder_name":  "Walk Up",
		"holder_email": "holder@x.com",
	}, map[string]string{"X-Session-ID": sessionID})

	require.Equal(t, http.StatusCreated, w.Code)
	body := parseBody(t, w)
	assert.Nil(t, body["user_id"])
	assert.Equal(t, "guest@x.com", body["email"])

	var ticket models.Ticket
	require.NoError(t, db.First(&ticket).Error)
	assert.Equal(t, "Walk Up", ticket.HolderName)
	assert.Equal(t, "holder@x.com", ticket.HolderEmail)
}

func TestListAndGetOrders(t *testing.T) {
	r, db, cfg := setupTest(t)
	event := createEvent(t, db, "retro", models.EventStatusPublished)
	tt := createTicketType(t, db, event, 10.00, 10, 0)
	owner := createUser(t, db, "owner@x.com", models.RoleUser)
	other := createUser(t, db, "other@x.com", models.RoleUser)
	admin := createUser(t, db, "admin@x.com", models.RoleAdmin)
	seedCart(t, db, owner, map[*models.TicketType]int{tt: 1})

	w := performRequest(r, "POST", "/api/v1/orders/checkout", map[string]any{
		"email": "owner@x.com",
	}, map[string]string{"Authorization": authHeader(t, cfg, owner)})
	require.Equal(t, http.StatusCreated, w.Code)
	orderID := parseBody(t, w)["id"].(string)

	t.Run("owner lists own orders", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/orders", nil, map[string]string{
			"Authorization": authHeader(t, cfg, owner),
		})
		require.Equal(t, http.StatusOK, w.Code)
		var list []any
		require.NoError(t, json.Unmarshal(w.Body.Bytes(), &list))
		assert.Len(t, list, 1)
	})

	t.Run("anonymous cannot list", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/orders", nil, nil)
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})

	t.Run("stranger cannot fetch someone else's order", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/orders/"+orderID, nil, map[string]string{
			"Authorization": authHeader(t, cfg, other),
		})
		require.Equal(t, http.StatusForbidden, w.Code)
	})

	t.Run("admin can fetch any order", func(t *testing.T) {
		w := performRequest(r, "GET", "/api/v1/orders/"+orderID, nil, map[string]string{
			"Authorization": authHeader(t, cfg, admin),
		})
		require.Equal(t, http.StatusOK, w.Code)
	})
}

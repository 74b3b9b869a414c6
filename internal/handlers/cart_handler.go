package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"gorm.io/gorm"

	"clubtix/internal/helpers"
	"clubtix/internal/middleware"
	"clubtix/internal/models"
)

type AddToCartRequest struct {
	EventID      uuid.UUID `json:"event_id" binding:"required"`
	TicketTypeID uuid.UUID `json:"ticket_type_id" binding:"required"`
	Quantity     int       `json:"quantity" binding:"required,min=1"`
}

// sessionIDFromRequest reads the anonymous session identifier: X-Session-ID
// header first, session_id cookie as fallback.
func sessionIDFromRequest(c *gin.Context) string {
	if sessionID := c.GetHeader("X-Session-ID"); sessionID != "" {
		return sessionID
	}
	if sessionID, err := c.Cookie("session_id"); err == nil {
		return sessionID
	}
	return ""
}

// resolveCart finds the caller's cart: the authenticated user's cart wins,
// otherwise the session cart. Returns nil without error when there is none.
func resolveCart(c *gin.Context, gormDB *gorm.DB) (*models.Cart, error) {
	var cart models.Cart
	query := gormDB.Preload("Items.TicketType")

	if user := middleware.CurrentUser(c); user != nil {
		err := query.Where("user_id = ?", user.ID).First(&cart).Error
		if err == gorm.ErrRecordNotFound {
			return nil, nil
		}
		return &cart, err
	}

	sessionID := sessionIDFromRequest(c)
	if sessionID == "" {
		return nil, nil
	}
	err := query.Where("session_id = ?", sessionID).First(&cart).Error
	if err == gorm.ErrRecordNotFound {
		return nil, nil
	}
	return &cart, err
}

func AddToCart(c *gin.Context) {
	var req AddToCartRequest
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

	var ticketType models.TicketType
	if err := gormDB.Where("id = ?", req.TicketTypeID).First(&ticketType).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Ticket type not found")
		return
	}

	if !ticketType.IsAvailable() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Ticket type not available")
		return
	}
	if req.Quantity > ticketType.AvailableQuantity() {
		helpers.RespondWithError(c, http.StatusBadRequest, "Insufficient tickets available")
		return
	}

	cart, err := resolveCart(c, gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving cart.")
		return
	}

	if cart == nil {
		cart = &models.Cart{}
		if user := middleware.CurrentUser(c); user != nil {
			cart.UserID = &user.ID
		} else if sessionID := sessionIDFromRequest(c); sessionID != "" {
			cart.SessionID = &sessionID
		}
		if err := gormDB.Create(cart).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create cart.")
			return
		}
	}

	var existingItem models.CartItem
	err = gormDB.Where("cart_id = ? AND ticket_type_id = ?", cart.ID, ticketType.ID).
		First(&existingItem).Error
	if err == nil {
		newQuantity := existingItem.Quantity + req.Quantity
		if newQuantity > ticketType.AvailableQuantity() {
			helpers.RespondWithError(c, http.StatusBadRequest, "Insufficient tickets available")
			return
		}
		existingItem.Quantity = newQuantity
		if err := gormDB.Save(&existingItem).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to update cart.")
			return
		}
	} else {
		// Price is captured at add time; checkout charges this, not the live price.
		cartItem := models.CartItem{
			CartID:       cart.ID,
			TicketTypeID: ticketType.ID,
			Quantity:     req.Quantity,
			UnitPrice:    ticketType.Price,
		}
		if err := gormDB.Create(&cartItem).Error; err != nil {
			helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to add to cart.")
			return
		}
	}

	var fresh models.Cart
	if err := gormDB.Preload("Items.TicketType").Where("id = ?", cart.ID).First(&fresh).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving cart.")
		return
	}

	c.JSON(http.StatusCreated, cartResponse(&fresh))
}

func GetCart(c *gin.Context) {
	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	cart, err := resolveCart(c, gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving cart.")
		return
	}

	if cart == nil {
		c.JSON(http.StatusOK, gin.H{"items": []gin.H{}, "subtotal": 0})
		return
	}

	c.JSON(http.StatusOK, cartResponse(cart))
}

func RemoveFromCart(c *gin.Context) {
	itemID, err := uuid.Parse(c.Param("item_id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid cart item ID")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var cartItem models.CartItem
	if err := gormDB.Where("id = ?", itemID).First(&cartItem).Error; err != nil {
		helpers.RespondWithError(c, http.StatusNotFound, "Cart item not found")
		return
	}

	var cart models.Cart
	if err := gormDB.Where("id = ?", cartItem.CartID).First(&cart).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving cart.")
		return
	}

	if user := middleware.CurrentUser(c); user != nil {
		if cart.UserID == nil || *cart.UserID != user.ID {
			helpers.RespondWithError(c, http.StatusForbidden, "Unauthorized")
			return
		}
	} else {
		sessionID := sessionIDFromRequest(c)
		if cart.SessionID == nil || sessionID == "" || *cart.SessionID != sessionID {
			helpers.RespondWithError(c, http.StatusForbidden, "Unauthorized")
			return
		}
	}

	if err := gormDB.Delete(&cartItem).Error; err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to remove item.")
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Item removed from cart"})
}

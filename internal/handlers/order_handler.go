package handlers

import (
	"errors"
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"clubtix/internal/helpers"
	"clubtix/internal/logger"
	"clubtix/internal/middleware"
	"clubtix/internal/models"
)

type CheckoutRequest struct {
	Email       string `json:"email" binding:"required,email"`
	HolderName  string `json:"holder_name"`
	HolderEmail string `json:"holder_email" binding:"omitempty,email"`
}

// checkoutError marks business-rule failures inside the checkout transaction
// so the boundary can answer 400 instead of 500.
type checkoutError struct {
	message string
}

func (e *checkoutError) Error() string {
	return e.message
}

func PreviewOrder(c *gin.Context) {
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
	if cart == nil || len(cart.Items) == 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Cart is empty")
		return
	}

	subtotal := cart.Subtotal()
	fees := decimal.Zero
	total := subtotal.Add(fees)

	c.JSON(http.StatusOK, gin.H{
		"subtotal": subtotal.InexactFloat64(),
		"fees":     fees.InexactFloat64(),
		"total":    total.InexactFloat64(),
		"currency": "USD",
	})
}

// Checkout converts the resolved cart into an order, its items and one ticket
// per purchased unit, increments sold counts and deletes the cart, all inside
// a single transaction.
//
// The availability re-check and the sold-count increment are not guarded by
// row locks; two concurrent checkouts against the same scarce ticket type can
// both pass the check and jointly oversell.
func Checkout(c *gin.Context) {
	var req CheckoutRequest
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

	cart, err := resolveCart(c, gormDB)
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving cart.")
		return
	}
	if cart == nil || len(cart.Items) == 0 {
		helpers.RespondWithError(c, http.StatusBadRequest, "Cart is empty")
		return
	}

	user := middleware.CurrentUser(c)

	holderName := req.HolderName
	if holderName == "" && user != nil {
		holderName = user.FullName()
	}
	holderEmail := req.HolderEmail
	if holderEmail == "" {
		holderEmail = req.Email
	}

	var order models.Order
	err = gormDB.Transaction(func(tx *gorm.DB) error {
		for _, item := range cart.Items {
			var ticketType models.TicketType
			if err := tx.Where("id = ?", item.TicketTypeID).First(&ticketType).Error; err != nil {
				return err
			}
			if !ticketType.IsAvailable() {
				return &checkoutError{fmt.Sprintf("Ticket type %s is no longer available", ticketType.Name)}
			}
			if item.Quantity > ticketType.AvailableQuantity() {
				return &checkoutError{fmt.Sprintf("Insufficient tickets for %s", ticketType.Name)}
			}
		}

		subtotal := cart.Subtotal()
		fees := decimal.Zero
		total := subtotal.Add(fees)

		order = models.Order{
			Email:    req.Email,
			Subtotal: subtotal,
			Fees:     fees,
			Total:    total,
			Currency: "USD",
			Status:   models.OrderStatusPending,
		}
		if user != nil {
			order.UserID = &user.ID
		}
		if err := tx.Create(&order).Error; err != nil {
			return err
		}

		for _, item := range cart.Items {
			orderItem := models.OrderItem{
				OrderID:      order.ID,
				EventID:      item.TicketType.EventID,
				TicketTypeID: item.TicketTypeID,
				Quantity:     item.Quantity,
				UnitPrice:    item.UnitPrice,
			}
			if err := tx.Create(&orderItem).Error; err != nil {
				return err
			}

			for i := 0; i < item.Quantity; i++ {
				ticket := models.Ticket{
					OrderItemID: orderItem.ID,
					HolderName:  holderName,
					HolderEmail: holderEmail,
				}
				if err := tx.Create(&ticket).Error; err != nil {
					return err
				}
			}

			err := tx.Model(&models.TicketType{}).
				Where("id = ?", item.TicketTypeID).
				Update("quantity_sold", gorm.Expr("quantity_sold + ?", item.Quantity)).Error
			if err != nil {
				return err
			}
		}

		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return tx.Delete(cart).Error
	})
	if err != nil {
		var ce *checkoutError
		if errors.As(err, &ce) {
			helpers.RespondWithError(c, http.StatusBadRequest, ce.message)
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Failed to create order.")
		return
	}

	var created models.Order
	err = gormDB.Preload("Items.Event").Preload("Items.TicketType").Preload("Items.Tickets").
		Where("id = ?", order.ID).First(&created).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving order.")
		return
	}

	logger.WithComponent("checkout").Info("order created",
		zap.String("order_number", created.OrderNumber),
		zap.Float64("total", created.Total.InexactFloat64()),
		zap.Int("items", len(created.Items)),
	)

	c.JSON(http.StatusCreated, orderResponse(&created))
}

func ListOrders(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var orders []models.Order
	err := gormDB.Preload("Items.Event").Preload("Items.TicketType").Preload("Items.Tickets").
		Where("user_id = ?", user.ID).
		Order("created_at DESC").
		Find(&orders).Error
	if err != nil {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving orders.")
		return
	}

	results := make([]gin.H, 0, len(orders))
	for i := range orders {
		results = append(results, orderResponse(&orders[i]))
	}

	c.JSON(http.StatusOK, results)
}

func GetOrder(c *gin.Context) {
	user := middleware.CurrentUser(c)
	if user == nil {
		helpers.RespondWithError(c, http.StatusUnauthorized, "Authentication required")
		return
	}

	orderID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		helpers.RespondWithError(c, http.StatusBadRequest, "Invalid order ID")
		return
	}

	db, exists := c.Get("db")
	if !exists {
		helpers.RespondWithError(c, http.StatusInternalServerError, "Database connection not found.")
		return
	}
	gormDB := db.(*gorm.DB)

	var order models.Order
	err = gormDB.Preload("Items.Event").Preload("Items.TicketType").Preload("Items.Tickets").
		Where("id = ?", orderID).First(&order).Error
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			helpers.RespondWithError(c, http.StatusNotFound, "Order not found")
			return
		}
		helpers.RespondWithError(c, http.StatusInternalServerError, "Error retrieving order.")
		return
	}

	if !user.IsAdmin() && (order.UserID == nil || *order.UserID != user.ID) {
		helpers.RespondWithError(c, http.StatusForbidden, "Unauthorized")
		return
	}

	c.JSON(http.StatusOK, orderResponse(&order))
}

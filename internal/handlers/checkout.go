package handlers

import (
	"context"
	"net/http"

	"book-commerce-platform/internal/middleware"
	"book-commerce-platform/internal/models"
	"book-commerce-platform/internal/services"

	"github.com/gin-gonic/gin"
)

// CheckoutHandler handles checkout and order-history requests.
type CheckoutHandler struct {
	checkoutService *services.CheckoutService
}

// NewCheckoutHandler creates a new checkout handler.
func NewCheckoutHandler(checkoutService *services.CheckoutService) *CheckoutHandler {
	return &CheckoutHandler{checkoutService: checkoutService}
}

// Checkout handles POST /checkout (protected).
func (h *CheckoutHandler) Checkout(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid cart data"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	orderID, err := h.checkoutService.Checkout(ctx, identity, req.Items, req.Total, req.IdempotencyKey)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Order placed", "orderId": orderID})
}

// Orders handles GET /orders (protected).
func (h *CheckoutHandler) Orders(c *gin.Context) {
	identity := middleware.IdentityFromContext(c)
	if identity == nil {
		c.JSON(http.StatusUnauthorized, gin.H{"error": "No token provided"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	orders, err := h.checkoutService.OrdersForUser(ctx, identity.UserID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, orders)
}

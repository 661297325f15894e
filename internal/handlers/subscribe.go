package handlers

import (
	"context"
	"net/http"

	"book-commerce-platform/internal/services"

	"github.com/gin-gonic/gin"
)

// SubscribeHandler handles newsletter signups.
type SubscribeHandler struct {
	subscriptionService *services.SubscriptionService
}

// NewSubscribeHandler creates a new subscribe handler.
func NewSubscribeHandler(subscriptionService *services.SubscriptionService) *SubscribeHandler {
	return &SubscribeHandler{subscriptionService: subscriptionService}
}

type subscribeRequest struct {
	Email string `json:"email"`
}

// Subscribe handles POST /subscribe.
func (h *SubscribeHandler) Subscribe(c *gin.Context) {
	var req subscribeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	if err := h.subscriptionService.Subscribe(ctx, req.Email); err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Subscribed successfully"})
}

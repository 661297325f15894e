package handlers

import (
	"context"
	"net/http"

	"book-commerce-platform/internal/models"
	"book-commerce-platform/internal/services"

	"github.com/gin-gonic/gin"
)

// BookHandler handles catalog requests.
type BookHandler struct {
	catalogService *services.CatalogService
}

// NewBookHandler creates a new book handler.
func NewBookHandler(catalogService *services.CatalogService) *BookHandler {
	return &BookHandler{catalogService: catalogService}
}

// AddBook handles POST /add-book (protected).
func (h *BookHandler) AddBook(c *gin.Context) {
	var req models.BookCreateRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
		return
	}

	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	id, err := h.catalogService.AddBook(ctx, &req)
	if err != nil {
		if err == models.ErrMissingField {
			c.JSON(http.StatusBadRequest, gin.H{"error": "All fields are required"})
			return
		}
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Book added successfully", "id": id})
}

// ListBooks handles GET /books.
func (h *BookHandler) ListBooks(c *gin.Context) {
	ctx, cancel := context.WithTimeout(c.Request.Context(), requestTimeout)
	defer cancel()

	books, err := h.catalogService.ListBooks(ctx)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, books)
}

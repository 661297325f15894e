package services

import (
	"context"

	"book-commerce-platform/internal/models"
)

// CatalogService handles book listing and insertion.
type CatalogService struct {
	bookRepo BookRepository
}

// NewCatalogService creates a new catalog service.
func NewCatalogService(bookRepo BookRepository) *CatalogService {
	return &CatalogService{bookRepo: bookRepo}
}

// AddBook validates the request and persists a book, returning the
// generated id.
func (s *CatalogService) AddBook(ctx context.Context, req *models.BookCreateRequest) (string, error) {
	if err := req.Validate(); err != nil {
		return "", err
	}

	book := &models.Book{
		Title:  req.Title,
		Author: req.Author,
		Genre:  req.Genre,
		Price:  req.Price,
		Rating: req.Rating,
		Image:  req.Image,
	}
	return s.bookRepo.Insert(ctx, book)
}

// ListBooks returns every book, newest first. Result size is unbounded.
func (s *CatalogService) ListBooks(ctx context.Context) ([]*models.Book, error) {
	return s.bookRepo.ListAll(ctx)
}

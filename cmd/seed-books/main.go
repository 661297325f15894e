package main

import (
	"context"
	"log"
	"time"

	"book-commerce-platform/internal/config"
	"book-commerce-platform/internal/database"
	"book-commerce-platform/internal/models"
	"book-commerce-platform/internal/repositories"
	"book-commerce-platform/internal/services"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		log.Fatal("Failed to load configuration:", err)
	}

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	db, err := database.NewConnection(ctx, cfg.Mongo.URI, cfg.Mongo.Database)
	if err != nil {
		log.Fatal("Failed to connect to database:", err)
	}
	defer db.Close(context.Background())

	catalog := services.NewCatalogService(repositories.NewBookRepository(db.DB))

	books := []models.BookCreateRequest{
		{Title: "The Great Gatsby", Author: "F. Scott Fitzgerald", Genre: "Classic", Price: 10.99, Rating: 4.4, Image: "https://covers.openlibrary.org/b/id/7222246-L.jpg"},
		{Title: "Dune", Author: "Frank Herbert", Genre: "Science Fiction", Price: 12.50, Rating: 4.7, Image: "https://covers.openlibrary.org/b/id/11481354-L.jpg"},
		{Title: "Pride and Prejudice", Author: "Jane Austen", Genre: "Romance", Price: 8.25, Rating: 4.6, Image: "https://covers.openlibrary.org/b/id/14348537-L.jpg"},
		{Title: "The Hobbit", Author: "J.R.R. Tolkien", Genre: "Fantasy", Price: 11.75, Rating: 4.8, Image: "https://covers.openlibrary.org/b/id/14627509-L.jpg"},
		{Title: "The Name of the Rose", Author: "Umberto Eco", Genre: "Mystery", Price: 13.00, Rating: 4.3, Image: "https://covers.openlibrary.org/b/id/12725042-L.jpg"},
	}

	for _, book := range books {
		id, err := catalog.AddBook(ctx, &book)
		if err != nil {
			log.Fatalf("Failed to seed %q: %v", book.Title, err)
		}
		log.Printf("Seeded %q (%s)", book.Title, id)
	}

	log.Printf("Seeded %d books", len(books))
}

package repositories

import (
	"context"
	"fmt"
	"time"

	"book-commerce-platform/internal/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

// BookRepository handles catalog persistence in the "books" collection.
type BookRepository struct {
	collection *mongo.Collection
}

// NewBookRepository creates a new book repository.
func NewBookRepository(db *mongo.Database) *BookRepository {
	return &BookRepository{collection: db.Collection("books")}
}

// Insert persists a book with a server-assigned creation timestamp and
// returns the generated id.
func (r *BookRepository) Insert(ctx context.Context, book *models.Book) (string, error) {
	book.CreatedAt = time.Now()

	res, err := r.collection.InsertOne(ctx, book)
	if err != nil {
		return "", fmt.Errorf("failed to insert book: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// ListAll returns every book ordered by creation time, newest first.
func (r *BookRepository) ListAll(ctx context.Context) ([]*models.Book, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list books: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []struct {
		ID        primitive.ObjectID `bson:"_id"`
		Title     string             `bson:"title"`
		Author    string             `bson:"author"`
		Genre     string             `bson:"genre"`
		Price     float64            `bson:"price"`
		Rating    float64            `bson:"rating"`
		Image     string             `bson:"image"`
		CreatedAt time.Time          `bson:"createdAt"`
	}
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode books: %w", err)
	}

	books := make([]*models.Book, 0, len(docs))
	for _, d := range docs {
		books = append(books, &models.Book{
			ID:        d.ID.Hex(),
			Title:     d.Title,
			Author:    d.Author,
			Genre:     d.Genre,
			Price:     d.Price,
			Rating:    d.Rating,
			Image:     d.Image,
			CreatedAt: d.CreatedAt,
		})
	}
	return books, nil
}

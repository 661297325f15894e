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

// OrderRepository handles order persistence in the "orders" collection.
type OrderRepository struct {
	collection *mongo.Collection
}

// NewOrderRepository creates a new order repository.
func NewOrderRepository(db *mongo.Database) *OrderRepository {
	return &OrderRepository{collection: db.Collection("orders")}
}

type orderDoc struct {
	ID             primitive.ObjectID `bson:"_id,omitempty"`
	UserID         string             `bson:"user_id"`
	Username       string             `bson:"username"`
	Items          []models.CartLine  `bson:"items"`
	Total          float64            `bson:"total"`
	IdempotencyKey string             `bson:"idempotency_key,omitempty"`
	CreatedAt      time.Time          `bson:"createdAt"`
}

func (d orderDoc) toModel() *models.Order {
	return &models.Order{
		ID:             d.ID.Hex(),
		UserID:         d.UserID,
		Username:       d.Username,
		Items:          d.Items,
		Total:          d.Total,
		IdempotencyKey: d.IdempotencyKey,
		CreatedAt:      d.CreatedAt,
	}
}

// Insert persists an order with a server-assigned creation timestamp and
// returns the generated id.
func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) (string, error) {
	doc := orderDoc{
		UserID:         order.UserID,
		Username:       order.Username,
		Items:          order.Items,
		Total:          order.Total,
		IdempotencyKey: order.IdempotencyKey,
		CreatedAt:      time.Now(),
	}

	res, err := r.collection.InsertOne(ctx, doc)
	if err != nil {
		return "", fmt.Errorf("failed to insert order: %w", err)
	}

	oid, ok := res.InsertedID.(primitive.ObjectID)
	if !ok {
		return "", fmt.Errorf("unexpected inserted id type %T", res.InsertedID)
	}
	return oid.Hex(), nil
}

// FindByUser returns the user's orders ordered by creation time, newest first.
func (r *OrderRepository) FindByUser(ctx context.Context, userID string) ([]*models.Order, error) {
	opts := options.Find().SetSort(bson.D{{Key: "createdAt", Value: -1}})

	cursor, err := r.collection.Find(ctx, bson.M{"user_id": userID}, opts)
	if err != nil {
		return nil, fmt.Errorf("failed to list orders: %w", err)
	}
	defer cursor.Close(ctx)

	var docs []orderDoc
	if err := cursor.All(ctx, &docs); err != nil {
		return nil, fmt.Errorf("failed to decode orders: %w", err)
	}

	orders := make([]*models.Order, 0, len(docs))
	for _, d := range docs {
		orders = append(orders, d.toModel())
	}
	return orders, nil
}

// FindByIdempotencyKey returns the user's order carrying the given key, or
// nil when no such order exists.
func (r *OrderRepository) FindByIdempotencyKey(ctx context.Context, userID, key string) (*models.Order, error) {
	var doc orderDoc
	err := r.collection.FindOne(ctx, bson.M{"user_id": userID, "idempotency_key": key}).Decode(&doc)
	if err != nil {
		if err == mongo.ErrNoDocuments {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to find order by idempotency key: %w", err)
	}
	return doc.toModel(), nil
}

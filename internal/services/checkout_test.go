package services

import (
	"context"
	"math"
	"testing"

	"book-commerce-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

var testIdentity = &models.Identity{UserID: "u1", Username: "alice"}

func TestCheckoutSuccess(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := NewCheckoutService(orderRepo)

	lines := []models.CartLine{
		{Name: "Dune", UnitPrice: 10, Quantity: 2},
		{Name: "Hyperion", UnitPrice: 7.5, Quantity: 1},
	}

	orderRepo.On("Insert", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
		return o.UserID == "u1" && o.Username == "alice" &&
			len(o.Items) == 2 && o.Items[0].Name == "Dune" && o.Total == 27.5
	})).Return("order-1", nil)

	id, err := service.Checkout(context.Background(), testIdentity, lines, 27.5, "")
	require.NoError(t, err)
	assert.Equal(t, "order-1", id)
	orderRepo.AssertExpectations(t)
}

func TestCheckoutUnauthenticated(t *testing.T) {
	service := NewCheckoutService(new(MockOrderRepository))

	lines := []models.CartLine{{Name: "Dune", UnitPrice: 10, Quantity: 1}}

	_, err := service.Checkout(context.Background(), nil, lines, 10, "")
	assert.ErrorIs(t, err, models.ErrMissingToken)

	_, err = service.Checkout(context.Background(), &models.Identity{}, lines, 10, "")
	assert.ErrorIs(t, err, models.ErrMissingToken)
}

func TestCheckoutEmptyCart(t *testing.T) {
	service := NewCheckoutService(new(MockOrderRepository))

	_, err := service.Checkout(context.Background(), testIdentity, nil, 0, "")
	assert.ErrorIs(t, err, models.ErrEmptyCart)

	_, err = service.Checkout(context.Background(), testIdentity, []models.CartLine{}, 0, "")
	assert.ErrorIs(t, err, models.ErrEmptyCart)
}

func TestCheckoutMalformedLines(t *testing.T) {
	service := NewCheckoutService(new(MockOrderRepository))

	cases := []struct {
		name  string
		lines []models.CartLine
		total float64
	}{
		{"empty name", []models.CartLine{{Name: "", UnitPrice: 10, Quantity: 1}}, 10},
		{"zero quantity", []models.CartLine{{Name: "Dune", UnitPrice: 10, Quantity: 0}}, 0},
		{"negative price", []models.CartLine{{Name: "Dune", UnitPrice: -1, Quantity: 1}}, -1},
		{"nan price", []models.CartLine{{Name: "Dune", UnitPrice: math.NaN(), Quantity: 1}}, 0},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := service.Checkout(context.Background(), testIdentity, tc.lines, tc.total, "")
			assert.ErrorIs(t, err, models.ErrInvalidPayload)
		})
	}
}

func TestCheckoutNonNumericTotal(t *testing.T) {
	service := NewCheckoutService(new(MockOrderRepository))

	lines := []models.CartLine{{Name: "Dune", UnitPrice: 10, Quantity: 1}}

	_, err := service.Checkout(context.Background(), testIdentity, lines, math.NaN(), "")
	assert.ErrorIs(t, err, models.ErrInvalidPayload)

	_, err = service.Checkout(context.Background(), testIdentity, lines, math.Inf(1), "")
	assert.ErrorIs(t, err, models.ErrInvalidPayload)
}

func TestCheckoutTotalMismatch(t *testing.T) {
	service := NewCheckoutService(new(MockOrderRepository))

	lines := []models.CartLine{{Name: "Dune", UnitPrice: 10, Quantity: 2}}

	// Claimed total disagrees with the recomputed 20.00.
	_, err := service.Checkout(context.Background(), testIdentity, lines, 5, "")
	assert.ErrorIs(t, err, models.ErrTotalMismatch)
}

func TestCheckoutTotalWithinTolerance(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := NewCheckoutService(orderRepo)

	lines := []models.CartLine{{Name: "Dune", UnitPrice: 10.004, Quantity: 1}}
	orderRepo.On("Insert", mock.Anything, mock.Anything).Return("order-1", nil)

	_, err := service.Checkout(context.Background(), testIdentity, lines, 10.0, "")
	assert.NoError(t, err)
}

func TestCheckoutIdempotencyReplay(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := NewCheckoutService(orderRepo)

	lines := []models.CartLine{{Name: "Dune", UnitPrice: 10, Quantity: 1}}

	orderRepo.On("FindByIdempotencyKey", mock.Anything, "u1", "key-1").
		Return(&models.Order{ID: "order-1", UserID: "u1"}, nil)

	id, err := service.Checkout(context.Background(), testIdentity, lines, 10, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "order-1", id)
	orderRepo.AssertNotCalled(t, "Insert", mock.Anything, mock.Anything)
}

func TestCheckoutIdempotencyFirstUse(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := NewCheckoutService(orderRepo)

	lines := []models.CartLine{{Name: "Dune", UnitPrice: 10, Quantity: 1}}

	orderRepo.On("FindByIdempotencyKey", mock.Anything, "u1", "key-1").Return(nil, nil)
	orderRepo.On("Insert", mock.Anything, mock.MatchedBy(func(o *models.Order) bool {
		return o.IdempotencyKey == "key-1"
	})).Return("order-2", nil)

	id, err := service.Checkout(context.Background(), testIdentity, lines, 10, "key-1")
	require.NoError(t, err)
	assert.Equal(t, "order-2", id)
}

func TestOrdersForUser(t *testing.T) {
	orderRepo := new(MockOrderRepository)
	service := NewCheckoutService(orderRepo)

	orders := []*models.Order{{ID: "o2"}, {ID: "o1"}}
	orderRepo.On("FindByUser", mock.Anything, "u1").Return(orders, nil)

	got, err := service.OrdersForUser(context.Background(), "u1")
	require.NoError(t, err)
	assert.Equal(t, orders, got)

	_, err = service.OrdersForUser(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrMissingToken)
}

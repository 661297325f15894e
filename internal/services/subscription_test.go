package services

import (
	"context"
	"testing"

	"book-commerce-platform/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
)

func TestSubscribeSuccess(t *testing.T) {
	subscriberRepo := new(MockSubscriberRepository)
	service := NewSubscriptionService(subscriberRepo)

	subscriberRepo.On("Insert", mock.Anything, "reader@example.com").Return(nil)

	err := service.Subscribe(context.Background(), "reader@example.com")
	assert.NoError(t, err)
	subscriberRepo.AssertExpectations(t)
}

func TestSubscribeMissingEmail(t *testing.T) {
	service := NewSubscriptionService(new(MockSubscriberRepository))

	err := service.Subscribe(context.Background(), "")
	assert.ErrorIs(t, err, models.ErrMissingField)

	err = service.Subscribe(context.Background(), "   ")
	assert.ErrorIs(t, err, models.ErrMissingField)
}

func TestSubscribeDuplicatesAllowed(t *testing.T) {
	subscriberRepo := new(MockSubscriberRepository)
	service := NewSubscriptionService(subscriberRepo)

	subscriberRepo.On("Insert", mock.Anything, "reader@example.com").Return(nil).Twice()

	assert.NoError(t, service.Subscribe(context.Background(), "reader@example.com"))
	assert.NoError(t, service.Subscribe(context.Background(), "reader@example.com"))
	subscriberRepo.AssertExpectations(t)
}

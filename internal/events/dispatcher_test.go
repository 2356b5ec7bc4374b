package events

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

func TestPublishFillsIDAndTimestamp(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var received Event
	dispatcher.Subscribe(EventTicketPurchased, func(_ context.Context, e Event) error {
		received = e
		return nil
	})

	err := dispatcher.Publish(context.Background(), Event{
		Type:  EventTicketPurchased,
		Actor: Actor{Role: domain.RoleCustomer, Email: "jane@example.com"},
	})
	require.NoError(t, err)

	assert.NotEmpty(t, received.ID)
	assert.False(t, received.Timestamp.IsZero())
	assert.Equal(t, "jane@example.com", received.Actor.Email)
}

func TestPublishOnlyReachesMatchingSubscribers(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var purchased, created int
	dispatcher.Subscribe(EventTicketPurchased, func(context.Context, Event) error {
		purchased++
		return nil
	})
	dispatcher.Subscribe(EventFlightCreated, func(context.Context, Event) error {
		created++
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventTicketPurchased}))

	assert.Equal(t, 1, purchased)
	assert.Equal(t, 0, created)
}

func TestHandlerErrorDoesNotStopDelivery(t *testing.T) {
	dispatcher := NewInMemoryDispatcher()

	var second bool
	dispatcher.Subscribe(EventReviewSaved, func(context.Context, Event) error {
		return errors.New("boom")
	})
	dispatcher.Subscribe(EventReviewSaved, func(context.Context, Event) error {
		second = true
		return nil
	})

	require.NoError(t, dispatcher.Publish(context.Background(), Event{Type: EventReviewSaved}))
	assert.True(t, second)
}

package service

import (
	"context"

	"go.uber.org/zap"

	"github.com/spec-kit/airline-reservation/internal/events"
)

// NotificationService logs notifications for domain events.
type NotificationService struct {
	dispatcher events.Dispatcher
	logger     *zap.Logger
}

// NewNotificationService creates the service.
func NewNotificationService(dispatcher events.Dispatcher, logger *zap.Logger) *NotificationService {
	return &NotificationService{
		dispatcher: dispatcher,
		logger:     logger,
	}
}

// RegisterHandlers subscribes to events.
func (n *NotificationService) RegisterHandlers() {
	if n.dispatcher == nil {
		return
	}
	n.dispatcher.Subscribe(events.EventTicketPurchased, n.handleTicketPurchased)
	n.dispatcher.Subscribe(events.EventFlightCreated, n.handleFlightCreated)
	n.dispatcher.Subscribe(events.EventFlightStatusChanged, n.handleFlightStatusChanged)
	n.dispatcher.Subscribe(events.EventReviewSaved, n.handleReviewSaved)
}

func (n *NotificationService) handleTicketPurchased(_ context.Context, event events.Event) error {
	n.logger.Info("TicketPurchased", zap.String("email", event.Actor.Email), zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleFlightCreated(_ context.Context, event events.Event) error {
	n.logger.Info("FlightCreated", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleFlightStatusChanged(_ context.Context, event events.Event) error {
	n.logger.Info("FlightStatusChanged", zap.Any("payload", event.Payload))
	return nil
}

func (n *NotificationService) handleReviewSaved(_ context.Context, event events.Event) error {
	n.logger.Info("ReviewSaved", zap.String("email", event.Actor.Email), zap.Any("payload", event.Payload))
	return nil
}

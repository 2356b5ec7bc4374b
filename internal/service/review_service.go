package service

import (
	"context"
	"strings"
	"time"

	"github.com/spec-kit/airline-reservation/internal/domain"
	"github.com/spec-kit/airline-reservation/internal/events"
	"github.com/spec-kit/airline-reservation/internal/repository"
	apperrors "github.com/spec-kit/airline-reservation/pkg/util"
)

// ReviewSaveInput describes a review save request.
type ReviewSaveInput struct {
	AirlineName   string
	FlightNumber  string
	DepartureTime time.Time
	Rating        int
	Comment       string
}

// AirlineRatings bundles the staff ratings view: per-flight aggregates plus
// all review comments, newest first.
type AirlineRatings struct {
	Summary  []domain.FlightRating
	Comments []domain.Review
}

// ReviewDependencies bundles repositories for the review service.
type ReviewDependencies struct {
	ReviewRepo repository.ReviewRepository
	Dispatcher events.Dispatcher
}

// ReviewService coordinates customer reviews and staff rating views.
type ReviewService struct {
	reviews    repository.ReviewRepository
	dispatcher events.Dispatcher
}

// NewReviewService constructs the service.
func NewReviewService(deps ReviewDependencies) *ReviewService {
	return &ReviewService{
		reviews:    deps.ReviewRepo,
		dispatcher: deps.Dispatcher,
	}
}

// Save records a review, replacing any earlier review the customer left for
// the same flight instance.
func (s *ReviewService) Save(ctx context.Context, customerEmail string, input ReviewSaveInput) (*domain.Review, error) {
	if input.Rating < 1 || input.Rating > 5 {
		return nil, apperrors.NewValidationError("rating must be between 1 and 5", map[string]any{"rating": input.Rating})
	}
	airline := strings.TrimSpace(input.AirlineName)
	flightNumber := strings.TrimSpace(input.FlightNumber)
	if airline == "" || flightNumber == "" || input.DepartureTime.IsZero() {
		return nil, apperrors.NewValidationError("airline, flight number and departure time required", nil)
	}

	review := &domain.Review{
		CustomerEmail: customerEmail,
		AirlineName:   airline,
		FlightNumber:  flightNumber,
		DepartureTime: input.DepartureTime,
		Rating:        input.Rating,
		Comment:       strings.TrimSpace(input.Comment),
	}
	if err := s.reviews.Upsert(ctx, review); err != nil {
		return nil, err
	}

	if s.dispatcher != nil {
		_ = s.dispatcher.Publish(ctx, events.Event{
			Type:  events.EventReviewSaved,
			Actor: events.Actor{Role: domain.RoleCustomer, Email: customerEmail},
			Payload: events.ReviewSavedPayload{
				AirlineName:   review.AirlineName,
				FlightNumber:  review.FlightNumber,
				DepartureTime: review.DepartureTime,
				Rating:        review.Rating,
			},
		})
	}
	return review, nil
}

// Delete removes the customer's review of a flight instance.
func (s *ReviewService) Delete(ctx context.Context, customerEmail string, key domain.FlightKey) error {
	if key.AirlineName == "" || key.FlightNumber == "" || key.DepartureTime.IsZero() {
		return apperrors.NewValidationError("airline, flight number and departure time required", nil)
	}
	return s.reviews.Delete(ctx, customerEmail, key)
}

// ListOwn returns the customer's reviews, newest first.
func (s *ReviewService) ListOwn(ctx context.Context, customerEmail string) ([]domain.Review, error) {
	return s.reviews.ListByCustomer(ctx, customerEmail)
}

// Ratings returns the staff ratings view for the airline.
func (s *ReviewService) Ratings(ctx context.Context, airline string) (*AirlineRatings, error) {
	summary, err := s.reviews.RatingsByAirline(ctx, airline)
	if err != nil {
		return nil, err
	}
	comments, err := s.reviews.ListByAirline(ctx, airline)
	if err != nil {
		return nil, err
	}
	return &AirlineRatings{Summary: summary, Comments: comments}, nil
}

package handlers

import (
	"net/http"

	"github.com/gofiber/fiber/v2"

	"github.com/spec-kit/airline-reservation/internal/api/dto"
	"github.com/spec-kit/airline-reservation/internal/auth"
	"github.com/spec-kit/airline-reservation/internal/domain"
	"github.com/spec-kit/airline-reservation/internal/service"
)

// ReviewsHandler exposes customer reviews and staff rating views.
type ReviewsHandler struct {
	reviews *service.ReviewService
}

// NewReviewsHandler constructs handler.
func NewReviewsHandler(reviewService *service.ReviewService) *ReviewsHandler {
	return &ReviewsHandler{reviews: reviewService}
}

// Save handles POST /customer/reviews.
func (h *ReviewsHandler) Save(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.ReviewSaveRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	departure, err := dto.ParseDateTime(req.DepartureDateTime)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	review, err := h.reviews.Save(c.UserContext(), principal.Email, service.ReviewSaveInput{
		AirlineName:   req.AirlineName,
		FlightNumber:  req.FlightNumber,
		DepartureTime: departure,
		Rating:        req.Rating,
		Comment:       req.Comment,
	})
	if err != nil {
		return err
	}
	return c.Status(http.StatusCreated).JSON(fiber.Map{
		"data": fiber.Map{
			"airline_name":  review.AirlineName,
			"flight_number": review.FlightNumber,
			"rating":        review.Rating,
		},
	})
}

// Delete handles DELETE /customer/reviews.
func (h *ReviewsHandler) Delete(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	var req dto.ReviewDeleteRequest
	if err := c.BodyParser(&req); err != nil {
		return fiber.NewError(http.StatusBadRequest, "invalid payload")
	}

	departure, err := dto.ParseDateTime(req.DepartureDateTime)
	if err != nil {
		return fiber.NewError(http.StatusBadRequest, err.Error())
	}

	if err := h.reviews.Delete(c.UserContext(), principal.Email, domain.FlightKey{
		AirlineName:   req.AirlineName,
		FlightNumber:  req.FlightNumber,
		DepartureTime: departure,
	}); err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": fiber.Map{"deleted": true}})
}

// ListOwn handles GET /customer/reviews.
func (h *ReviewsHandler) ListOwn(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	reviews, err := h.reviews.ListOwn(c.UserContext(), principal.Email)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{"data": dto.NewReviewResponses(reviews)})
}

// Ratings handles GET /staff/ratings.
func (h *ReviewsHandler) Ratings(c *fiber.Ctx) error {
	principal, _ := auth.PrincipalFromContext(c)

	ratings, err := h.reviews.Ratings(c.UserContext(), principal.AirlineName)
	if err != nil {
		return err
	}
	return c.JSON(fiber.Map{
		"data": fiber.Map{
			"summary":  dto.NewFlightRatingResponses(ratings.Summary),
			"comments": dto.NewReviewResponses(ratings.Comments),
		},
	})
}

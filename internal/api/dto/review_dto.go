package dto

import (
	"time"

	"github.com/spec-kit/airline-reservation/internal/domain"
)

// ReviewSaveRequest payload for saving a review.
type ReviewSaveRequest struct {
	AirlineName       string `json:"airline_name"`
	FlightNumber      string `json:"flight_number"`
	DepartureDateTime string `json:"departure_date_time"`
	Rating            int    `json:"rating"`
	Comment           string `json:"comment"`
}

// ReviewDeleteRequest payload for deleting a review.
type ReviewDeleteRequest struct {
	AirlineName       string `json:"airline_name"`
	FlightNumber      string `json:"flight_number"`
	DepartureDateTime string `json:"departure_date_time"`
}

// ReviewResponse is the wire representation of a review.
type ReviewResponse struct {
	CustomerEmail string    `json:"customer_email"`
	AirlineName   string    `json:"airline_name"`
	FlightNumber  string    `json:"flight_number"`
	DepartureTime time.Time `json:"departure_date_time"`
	Rating        int       `json:"rating"`
	Comment       string    `json:"comment"`
	CreatedAt     time.Time `json:"created_at"`
}

// NewReviewResponses maps reviews.
func NewReviewResponses(reviews []domain.Review) []ReviewResponse {
	result := make([]ReviewResponse, 0, len(reviews))
	for _, r := range reviews {
		result = append(result, ReviewResponse{
			CustomerEmail: r.CustomerEmail,
			AirlineName:   r.AirlineName,
			FlightNumber:  r.FlightNumber,
			DepartureTime: r.DepartureTime,
			Rating:        r.Rating,
			Comment:       r.Comment,
			CreatedAt:     r.CreatedAt,
		})
	}
	return result
}

// FlightRatingResponse is one aggregated rating row.
type FlightRatingResponse struct {
	AirlineName   string    `json:"airline_name"`
	FlightNumber  string    `json:"flight_number"`
	DepartureTime time.Time `json:"departure_date_time"`
	AvgRating     *float64  `json:"avg_rating"`
	ReviewCount   int       `json:"review_count"`
}

// NewFlightRatingResponses maps rating aggregates.
func NewFlightRatingResponses(ratings []domain.FlightRating) []FlightRatingResponse {
	result := make([]FlightRatingResponse, 0, len(ratings))
	for _, r := range ratings {
		result = append(result, FlightRatingResponse{
			AirlineName:   r.AirlineName,
			FlightNumber:  r.FlightNumber,
			DepartureTime: r.DepartureTime,
			AvgRating:     r.AvgRating,
			ReviewCount:   r.ReviewCount,
		})
	}
	return result
}

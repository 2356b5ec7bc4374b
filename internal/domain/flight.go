package domain

import "time"

// FlightStatus enumerates operational states for a scheduled flight.
type FlightStatus string

const (
	FlightStatusOnTime    FlightStatus = "ON_TIME"
	FlightStatusDelayed   FlightStatus = "DELAYED"
	FlightStatusCancelled FlightStatus = "CANCELLED"
)

// ValidFlightStatus reports whether s is a known status value.
func ValidFlightStatus(s FlightStatus) bool {
	switch s {
	case FlightStatusOnTime, FlightStatusDelayed, FlightStatusCancelled:
		return true
	}
	return false
}

// FlightKey identifies one flight instance. The same flight number may
// recur on different departure dates.
type FlightKey struct {
	AirlineName   string
	FlightNumber  string
	DepartureTime time.Time
}

// Flight is a scheduled flight operated by one airline.
type Flight struct {
	AirlineName      string
	FlightNumber     string
	DepartureTime    time.Time
	ArrivalTime      time.Time
	BasePriceCents   int64
	DepartureAirport string
	ArrivalAirport   string
	AirplaneID       string
	Status           FlightStatus
	CreatedAt        time.Time
}

// Key returns the composite identifier for the flight instance.
func (f *Flight) Key() FlightKey {
	return FlightKey{
		AirlineName:   f.AirlineName,
		FlightNumber:  f.FlightNumber,
		DepartureTime: f.DepartureTime,
	}
}

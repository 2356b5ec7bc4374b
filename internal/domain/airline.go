package domain

// Airline is a carrier operating flights.
type Airline struct {
	Name string
}

// Airport is a station referenced by flights, keyed by IATA-style code.
type Airport struct {
	Code string
	City string
}

// Airplane belongs to exactly one airline; flights reference it by
// (airline_name, id_number).
type Airplane struct {
	AirlineName  string
	IDNumber     string
	Seats        int
	Manufacturer string
	Age          *int
}

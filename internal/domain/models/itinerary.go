package models

// Ticket is one bookable departure returned by the booking backend for a
// (origin, destination, date) query. Times are local "HH:MM" strings as the
// backend reports them.
type Ticket struct {
	Carrier   string  `json:"carrier"`
	Departure string  `json:"departure"`
	Arrival   string  `json:"arrival"`
	Price     float64 `json:"price"`
	Seats     int     `json:"seats"`
}

// TripType tags how an itinerary reaches its destination.
type TripType string

const (
	TripDirect        TripType = "direct"
	TripTransfer      TripType = "transfer"
	TripMultiTransfer TripType = "multi-transfer"
)

// Leg is one priced, scheduled segment of a journey.
type Leg struct {
	Origin      string  `json:"origin"`
	Destination string  `json:"destination"`
	Date        string  `json:"date"`
	Carrier     string  `json:"carrier"`
	Departure   string  `json:"departure"`
	Arrival     string  `json:"arrival"`
	Price       float64 `json:"price"`
	Seats       int     `json:"seats"`
}

// Itinerary is an ordered chain of legs from origin to destination.
// Consecutive legs share a city endpoint and honor the minimum connection
// gap enforced by the search service.
type Itinerary struct {
	ID         string   `json:"id"`
	Type       TripType `json:"type"`
	Legs       []Leg    `json:"legs"`
	Hubs       []string `json:"hubs,omitempty"`
	HubScore   int      `json:"hub_score,omitempty"`
	TotalPrice float64  `json:"total_price"`
}

// Origin returns the first leg's origin city, or "" for an empty itinerary.
func (i Itinerary) Origin() string {
	if len(i.Legs) == 0 {
		return ""
	}
	return i.Legs[0].Origin
}

// Destination returns the last leg's destination city, or "".
func (i Itinerary) Destination() string {
	if len(i.Legs) == 0 {
		return ""
	}
	return i.Legs[len(i.Legs)-1].Destination
}

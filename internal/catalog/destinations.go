package catalog

import "strings"

// Destination is a curated entry on the globe. The set is static reference
// data shipped with the binary; activities in the database point at these ids.
type Destination struct {
	ID      string  `json:"id"`
	Name    string  `json:"name"`
	Country string  `json:"country"`
	Lat     float64 `json:"lat"`
	Lng     float64 `json:"lng"`
	IATA    string  `json:"iata"`
	Image   string  `json:"image"`
}

// Label returns the display form used across the wizard and stored on trip
// requests ("Dubai, UAE").
func (d Destination) Label() string {
	return d.Name + ", " + d.Country
}

var Destinations = []Destination{
	{ID: "dubai", Name: "Dubai", Country: "UAE", Lat: 25.2048, Lng: 55.2708, IATA: "DXB", Image: "/images/destinations/dubai.jpg"},
	{ID: "singapore", Name: "Singapore", Country: "Singapore", Lat: 1.3521, Lng: 103.8198, IATA: "SIN", Image: "/images/destinations/singapore.jpg"},
	{ID: "bali", Name: "Bali", Country: "Indonesia", Lat: -8.3405, Lng: 115.0920, IATA: "DPS", Image: "/images/destinations/bali.jpg"},
	{ID: "bangkok", Name: "Bangkok", Country: "Thailand", Lat: 13.7563, Lng: 100.5018, IATA: "BKK", Image: "/images/destinations/bangkok.jpg"},
	{ID: "maldives", Name: "Maldives", Country: "Maldives", Lat: 3.2028, Lng: 73.2207, IATA: "MLE", Image: "/images/destinations/maldives.jpg"},
	{ID: "paris", Name: "Paris", Country: "France", Lat: 48.8566, Lng: 2.3522, IATA: "CDG", Image: "/images/destinations/paris.jpg"},
	{ID: "london", Name: "London", Country: "UK", Lat: 51.5074, Lng: -0.1278, IATA: "LHR", Image: "/images/destinations/london.jpg"},
	{ID: "istanbul", Name: "Istanbul", Country: "Turkey", Lat: 41.0082, Lng: 28.9784, IATA: "IST", Image: "/images/destinations/istanbul.jpg"},
	{ID: "tokyo", Name: "Tokyo", Country: "Japan", Lat: 35.6762, Lng: 139.6503, IATA: "HND", Image: "/images/destinations/tokyo.jpg"},
	{ID: "newyork", Name: "New York", Country: "USA", Lat: 40.7128, Lng: -74.0060, IATA: "JFK", Image: "/images/destinations/newyork.jpg"},
}

// DefaultDestination backs the confirmation page when a stored label no
// longer resolves (e.g. a destination was renamed after submission).
var DefaultDestination = Destinations[0]

// Resolve maps a free-text destination label to a canonical destination.
// Precedence: exact id, then case-insensitive name, then case-insensitive
// "Name, Country". This is the single resolver used everywhere a label
// needs normalizing.
func Resolve(label string) (Destination, bool) {
	trimmed := strings.TrimSpace(label)
	if trimmed == "" {
		return Destination{}, false
	}
	for _, d := range Destinations {
		if d.ID == trimmed {
			return d, true
		}
	}
	lower := strings.ToLower(trimmed)
	for _, d := range Destinations {
		if strings.ToLower(d.Name) == lower {
			return d, true
		}
	}
	for _, d := range Destinations {
		if strings.ToLower(d.Label()) == lower {
			return d, true
		}
	}
	return Destination{}, false
}

func ByID(id string) (Destination, bool) {
	for _, d := range Destinations {
		if d.ID == id {
			return d, true
		}
	}
	return Destination{}, false
}

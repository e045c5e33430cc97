package response_models

import "time"

type TripRequestCreated struct {
	ID        string    `json:"id"`
	CreatedAt time.Time `json:"created_at"`
}

// TripRequestDetail feeds the confirmation page and the admin list rows.
type TripRequestDetail struct {
	ID               string             `json:"id"`
	Origin           string             `json:"origin"`
	Destination      string             `json:"destination"`
	DestinationID    string             `json:"destination_id"`
	DestinationImage string             `json:"destination_image,omitempty"`
	Nationality      string             `json:"nationality"`
	StartDate        string             `json:"start_date"`
	EndDate          string             `json:"end_date"`
	StartDisplay     string             `json:"start_display"`
	EndDisplay       string             `json:"end_display"`
	Days             int                `json:"days"`
	Nights           int                `json:"nights"`
	Adults           int                `json:"adults"`
	Kids             int                `json:"kids"`
	PassengerName    string             `json:"passenger_name"`
	Phone            string             `json:"phone"`
	Email            string             `json:"email"`
	AirlinePref      string             `json:"airline_pref"`
	HotelPref        string             `json:"hotel_pref"`
	FlightClass      string             `json:"flight_class"`
	VisaStatus       string             `json:"visa_status"`
	Status           string             `json:"status"`
	CreatedAt        time.Time          `json:"created_at"`
	Activities       []ActivitySummary  `json:"activities"`
}

type ActivityAttached struct {
	TripRequestID string `json:"trip_request_id"`
	ActivityID    string `json:"activity_id"`
}

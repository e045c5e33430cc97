package request_models

// SubmitTripRequest is the flat fifteen-field submission payload. Presence
// and shape are validated in the service so rejections can name the field.
type SubmitTripRequest struct {
	Origin           string `json:"origin"`
	Destination      string `json:"destination"`
	Nationality      string `json:"nationality"`
	StartDate        string `json:"start_date"`
	EndDate          string `json:"end_date"`
	Adults           int    `json:"adults"`
	Kids             int    `json:"kids"`
	PassengerName    string `json:"passenger_name"`
	PhoneCountryCode string `json:"phone_country_code"`
	PhoneNumber      string `json:"phone_number"`
	Email            string `json:"email"`
	AirlinePref      string `json:"airline_pref"`
	HotelPref        string `json:"hotel_pref"`
	FlightClass      string `json:"flight_class"`
	VisaStatus       string `json:"visa_status"`

	// SessionID, when present, identifies the wizard session whose draft
	// should be discarded once the submission succeeds.
	SessionID string `json:"session_id,omitempty"`
}

type AttachActivityRequest struct {
	ActivityID string `json:"activity_id" binding:"required"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

package wizard

import (
	"tripwise/pkg/utils"
)

// TripDraft accumulates the wizard's answers for one session. Dates travel
// as "2006-01-02" strings to mirror the form inputs; Days and Nights are
// derived and never set directly.
type TripDraft struct {
	Origin           string `json:"origin,omitempty"`
	Destination      string `json:"destination,omitempty"`
	Nationality      string `json:"nationality,omitempty"`
	StartDate        string `json:"start_date,omitempty"`
	EndDate          string `json:"end_date,omitempty"`
	Days             int    `json:"days,omitempty"`
	Nights           int    `json:"nights,omitempty"`
	Adults           int    `json:"adults,omitempty"`
	Kids             int    `json:"kids,omitempty"`
	PassengerName    string `json:"passenger_name,omitempty"`
	PhoneCountryCode string `json:"phone_country_code,omitempty"`
	PhoneNumber      string `json:"phone_number,omitempty"`
	Email            string `json:"email,omitempty"`
	AirlinePref      string `json:"airline_pref,omitempty"`
	HotelPref        string `json:"hotel_pref,omitempty"`
	FlightClass      string `json:"flight_class,omitempty"`
	VisaStatus       string `json:"visa_status,omitempty"`
}

// merge copies every populated field of other into d. Zero-valued fields of
// other are skipped, so merging never clears an answer already collected.
func (d *TripDraft) merge(other TripDraft) {
	if other.Origin != "" {
		d.Origin = other.Origin
	}
	if other.Destination != "" {
		d.Destination = other.Destination
	}
	if other.Nationality != "" {
		d.Nationality = other.Nationality
	}
	if other.StartDate != "" {
		d.StartDate = other.StartDate
	}
	if other.EndDate != "" {
		d.EndDate = other.EndDate
	}
	if other.Adults != 0 {
		d.Adults = other.Adults
	}
	if other.Kids != 0 {
		d.Kids = other.Kids
	}
	if other.PassengerName != "" {
		d.PassengerName = other.PassengerName
	}
	if other.PhoneCountryCode != "" {
		d.PhoneCountryCode = other.PhoneCountryCode
	}
	if other.PhoneNumber != "" {
		d.PhoneNumber = other.PhoneNumber
	}
	if other.Email != "" {
		d.Email = other.Email
	}
	if other.AirlinePref != "" {
		d.AirlinePref = other.AirlinePref
	}
	if other.HotelPref != "" {
		d.HotelPref = other.HotelPref
	}
	if other.FlightClass != "" {
		d.FlightClass = other.FlightClass
	}
	if other.VisaStatus != "" {
		d.VisaStatus = other.VisaStatus
	}
	d.deriveLength()
}

// deriveLength recomputes Days and Nights whenever both dates parse. It is
// the only writer of those fields.
func (d *TripDraft) deriveLength() {
	if d.StartDate == "" || d.EndDate == "" {
		return
	}
	start, err := utils.ParseCalendarDate(d.StartDate)
	if err != nil {
		return
	}
	end, err := utils.ParseCalendarDate(d.EndDate)
	if err != nil {
		return
	}
	d.Days, d.Nights = utils.TripLength(start, end)
}

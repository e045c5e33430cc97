package db_models

import (
	"time"

	"gorm.io/datatypes"
)

// TripStatus is the back-office pipeline stage of a trip request.
type TripStatus string

const (
	StatusNew       TripStatus = "new"
	StatusContacted TripStatus = "contacted"
	StatusQuoted    TripStatus = "quoted"
	StatusClosed    TripStatus = "closed"
	StatusArchived  TripStatus = "archived"
)

// AllStatuses lists every stage in pipeline order, for dashboard totals and
// status-change validation.
var AllStatuses = []TripStatus{
	StatusNew,
	StatusContacted,
	StatusQuoted,
	StatusClosed,
	StatusArchived,
}

func (s TripStatus) Valid() bool {
	for _, st := range AllStatuses {
		if s == st {
			return true
		}
	}
	return false
}

// TripRequest is the durable record written once at submission. Rows are
// never deleted; back-office actions only move Status.
type TripRequest struct {
	BaseModel
	Origin           string `gorm:"not null"`
	Destination      string `gorm:"not null"`      // display label, e.g. "Dubai, UAE"
	DestinationID    string `gorm:"index"`         // resolved canonical id, e.g. "dubai"
	Nationality      string
	StartDate        time.Time `gorm:"type:date;not null"`
	EndDate          time.Time `gorm:"type:date;not null"`
	Days             int
	Nights           int
	Adults           int `gorm:"not null"`
	Kids             int
	PassengerName    string `gorm:"not null"`
	PhoneCountryCode string
	PhoneNumber      string
	Email            string     `gorm:"index"`
	AirlinePref      string
	HotelPref        string
	FlightClass      string
	VisaStatus       string
	Status           TripStatus     `gorm:"type:varchar(16);default:'new';index"`
	RawPayload       datatypes.JSON // submission body as received, for audits

	Activities []TripRequestActivity
}

package db_models

import (
	"github.com/google/uuid"
	"github.com/lib/pq"
)

// Activity is a bookable catalog item curated per destination. The wizard
// never writes these; they are attached to trip requests by id.
type Activity struct {
	BaseModel
	DestinationID string `gorm:"index;not null"` // canonical catalog id
	Name          string `gorm:"not null"`
	Description   string
	PriceMinor    int64  // minor units of Currency
	Currency      string `gorm:"type:varchar(3);default:'USD'"`
	ReviewCount   int
	IsActive      bool           `gorm:"default:true;index"`
	Image         string
	Tags          pq.StringArray `gorm:"type:text[]"`
}

// TripRequestActivity joins a trip request to a chosen activity. The pair is
// unique; a duplicate attach is swallowed by ON CONFLICT DO NOTHING.
type TripRequestActivity struct {
	BaseModel
	TripRequestID uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trip_activity"`
	ActivityID    uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:idx_trip_activity"`

	Activity Activity `gorm:"foreignKey:ActivityID"`
}

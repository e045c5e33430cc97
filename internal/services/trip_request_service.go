package services

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"github.com/google/uuid"

	"tripwise/internal/catalog"
	"tripwise/internal/models/db_models"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type TripRequestServiceInterface interface {
	Submit(ctx context.Context, req request_models.SubmitTripRequest) (*response_models.TripRequestCreated, error)
	GetByID(ctx context.Context, id string) (*response_models.TripRequestDetail, error)
	UpdateStatus(ctx context.Context, id string, status string) error
}

type TripRequestService struct {
	tripRepo repositories.TripRequestRepository
}

func NewTripRequestService(tripRepo repositories.TripRequestRepository) TripRequestServiceInterface {
	return &TripRequestService{tripRepo: tripRepo}
}

var nonDigits = regexp.MustCompile(`[^0-9]`)

// Submit validates and normalizes a completed draft and writes exactly one
// trip request. Any rejection happens before the insert; there are no
// partial writes.
func (t *TripRequestService) Submit(ctx context.Context, req request_models.SubmitTripRequest) (*response_models.TripRequestCreated, error) {
	if err := validateSubmission(req); err != nil {
		return nil, err
	}

	start, err := utils.ParseCalendarDate(req.StartDate)
	if err != nil {
		return nil, fmt.Errorf("%w: start_date must be a calendar date", utils.ErrInvalidInput)
	}
	end, err := utils.ParseCalendarDate(req.EndDate)
	if err != nil {
		return nil, fmt.Errorf("%w: end_date must be a calendar date", utils.ErrInvalidInput)
	}
	if end.Before(start) {
		return nil, fmt.Errorf("%w: end_date is before start_date", utils.ErrInvalidInput)
	}

	days, nights := utils.TripLength(start, end)

	destination := strings.TrimSpace(req.Destination)
	destinationID := ""
	if d, ok := catalog.Resolve(destination); ok {
		destination = d.Label()
		destinationID = d.ID
	}

	raw, err := json.Marshal(req)
	if err != nil {
		return nil, utils.ErrInvalidInput
	}

	record := &db_models.TripRequest{
		Origin:           strings.TrimSpace(req.Origin),
		Destination:      destination,
		DestinationID:    destinationID,
		Nationality:      strings.TrimSpace(req.Nationality),
		StartDate:        start,
		EndDate:          end,
		Days:             days,
		Nights:           nights,
		Adults:           req.Adults,
		Kids:             req.Kids,
		PassengerName:    strings.TrimSpace(req.PassengerName),
		PhoneCountryCode: strings.TrimSpace(req.PhoneCountryCode),
		PhoneNumber:      nonDigits.ReplaceAllString(req.PhoneNumber, ""),
		Email:            strings.ToLower(strings.TrimSpace(req.Email)),
		AirlinePref:      strings.TrimSpace(req.AirlinePref),
		HotelPref:        strings.TrimSpace(req.HotelPref),
		FlightClass:      strings.TrimSpace(req.FlightClass),
		VisaStatus:       strings.TrimSpace(req.VisaStatus),
		Status:           db_models.StatusNew,
		RawPayload:       raw,
	}

	if err := t.tripRepo.Insert(ctx, record); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.TripRequestCreated{
		ID:        record.ID.String(),
		CreatedAt: record.CreatedAt,
	}, nil
}

func (t *TripRequestService) GetByID(ctx context.Context, id string) (*response_models.TripRequestDetail, error) {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return nil, utils.ErrTripRequestNotFound
	}

	record, err := t.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if record == nil {
		return nil, utils.ErrTripRequestNotFound
	}

	return BuildTripRequestDetail(record), nil
}

func (t *TripRequestService) UpdateStatus(ctx context.Context, id string, status string) error {
	tripID, err := uuid.Parse(id)
	if err != nil {
		return utils.ErrTripRequestNotFound
	}

	next := db_models.TripStatus(strings.ToLower(strings.TrimSpace(status)))
	if !next.Valid() {
		return utils.ErrInvalidStatus
	}

	record, err := t.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return utils.ErrDatabaseError
	}
	if record == nil {
		return utils.ErrTripRequestNotFound
	}

	if err := t.tripRepo.UpdateStatus(ctx, tripID, next); err != nil {
		return utils.ErrDatabaseError
	}
	return nil
}

func validateSubmission(req request_models.SubmitTripRequest) error {
	required := []struct {
		name  string
		value string
	}{
		{"origin", req.Origin},
		{"destination", req.Destination},
		{"nationality", req.Nationality},
		{"start_date", req.StartDate},
		{"end_date", req.EndDate},
		{"passenger_name", req.PassengerName},
		{"phone_country_code", req.PhoneCountryCode},
		{"phone_number", req.PhoneNumber},
		{"email", req.Email},
		{"airline_pref", req.AirlinePref},
		{"hotel_pref", req.HotelPref},
		{"flight_class", req.FlightClass},
		{"visa_status", req.VisaStatus},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return fmt.Errorf("%w: %s is required", utils.ErrInvalidInput, f.name)
		}
	}
	if req.Adults < 1 {
		return fmt.Errorf("%w: at least one adult is required", utils.ErrInvalidInput)
	}
	if req.Kids < 0 {
		return fmt.Errorf("%w: kids can't be negative", utils.ErrInvalidInput)
	}
	return nil
}

// BuildTripRequestDetail shapes a stored row for the confirmation page and
// admin lists. An unresolvable destination label falls back to the default
// placeholder destination instead of erroring.
func BuildTripRequestDetail(record *db_models.TripRequest) *response_models.TripRequestDetail {
	dest, ok := catalog.Resolve(record.Destination)
	if !ok {
		dest = catalog.DefaultDestination
	}

	activities := make([]response_models.ActivitySummary, 0, len(record.Activities))
	for _, join := range record.Activities {
		activities = append(activities, BuildActivitySummary(&join.Activity))
	}

	return &response_models.TripRequestDetail{
		ID:               record.ID.String(),
		Origin:           record.Origin,
		Destination:      record.Destination,
		DestinationID:    dest.ID,
		DestinationImage: dest.Image,
		Nationality:      record.Nationality,
		StartDate:        utils.FormatCalendarDate(record.StartDate),
		EndDate:          utils.FormatCalendarDate(record.EndDate),
		StartDisplay:     utils.FormatDisplayDate(record.StartDate),
		EndDisplay:       utils.FormatDisplayDate(record.EndDate),
		Days:             record.Days,
		Nights:           record.Nights,
		Adults:           record.Adults,
		Kids:             record.Kids,
		PassengerName:    record.PassengerName,
		Phone:            strings.TrimSpace(record.PhoneCountryCode + " " + record.PhoneNumber),
		Email:            record.Email,
		AirlinePref:      record.AirlinePref,
		HotelPref:        record.HotelPref,
		FlightClass:      record.FlightClass,
		VisaStatus:       record.VisaStatus,
		Status:           string(record.Status),
		CreatedAt:        record.CreatedAt,
		Activities:       activities,
	}
}

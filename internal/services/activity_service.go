package services

import (
	"context"

	"github.com/google/uuid"

	"tripwise/internal/catalog"
	"tripwise/internal/models/db_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type ActivityServiceInterface interface {
	ListByDestination(ctx context.Context, destinationID string) ([]response_models.ActivitySummary, error)
	// Attach links an activity to a submitted trip request. Attaching the
	// same pair twice succeeds both times and leaves one join row.
	Attach(ctx context.Context, tripRequestID string, activityID string) (*response_models.ActivityAttached, error)
}

type ActivityService struct {
	activityRepo repositories.ActivityRepository
	tripRepo     repositories.TripRequestRepository
}

func NewActivityService(activityRepo repositories.ActivityRepository, tripRepo repositories.TripRequestRepository) ActivityServiceInterface {
	return &ActivityService{
		activityRepo: activityRepo,
		tripRepo:     tripRepo,
	}
}

func (a *ActivityService) ListByDestination(ctx context.Context, destinationID string) ([]response_models.ActivitySummary, error) {
	dest, ok := catalog.Resolve(destinationID)
	if !ok {
		return nil, utils.ErrDestinationNotFound
	}

	activities, err := a.activityRepo.ListActiveByDestination(ctx, dest.ID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	out := make([]response_models.ActivitySummary, 0, len(activities))
	for i := range activities {
		out = append(out, BuildActivitySummary(&activities[i]))
	}
	return out, nil
}

func (a *ActivityService) Attach(ctx context.Context, tripRequestID string, activityID string) (*response_models.ActivityAttached, error) {
	tripID, err := uuid.Parse(tripRequestID)
	if err != nil {
		return nil, utils.ErrTripRequestNotFound
	}
	actID, err := uuid.Parse(activityID)
	if err != nil {
		return nil, utils.ErrActivityNotFound
	}

	trip, err := a.tripRepo.GetByID(ctx, tripID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if trip == nil {
		return nil, utils.ErrTripRequestNotFound
	}

	activity, err := a.activityRepo.GetByID(ctx, actID)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	if activity == nil || !activity.IsActive {
		return nil, utils.ErrActivityNotFound
	}

	tripDest, ok := catalog.Resolve(trip.Destination)
	if !ok {
		return nil, utils.ErrDestinationMismatch
	}
	if tripDest.ID != activity.DestinationID {
		return nil, utils.ErrDestinationMismatch
	}

	if err := a.tripRepo.AttachActivity(ctx, tripID, actID); err != nil {
		return nil, utils.ErrDatabaseError
	}

	return &response_models.ActivityAttached{
		TripRequestID: tripID.String(),
		ActivityID:    actID.String(),
	}, nil
}

func BuildActivitySummary(activity *db_models.Activity) response_models.ActivitySummary {
	return response_models.ActivitySummary{
		ID:            activity.ID.String(),
		DestinationID: activity.DestinationID,
		Name:          activity.Name,
		Description:   activity.Description,
		PriceMinor:    activity.PriceMinor,
		Currency:      activity.Currency,
		ReviewCount:   activity.ReviewCount,
		Image:         activity.Image,
		Tags:          activity.Tags,
	}
}

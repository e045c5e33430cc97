package services_test

import (
	"context"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/models/db_models"
	"tripwise/internal/services"
	"tripwise/pkg/utils"
)

func tripTo(destination string) *db_models.TripRequest {
	return &db_models.TripRequest{
		BaseModel:   db_models.BaseModel{ID: uuid.New()},
		Destination: destination,
		Status:      db_models.StatusNew,
	}
}

func dubaiActivity(active bool) *db_models.Activity {
	return &db_models.Activity{
		BaseModel:     db_models.BaseModel{ID: uuid.New()},
		DestinationID: "dubai",
		Name:          "Desert Safari",
		PriceMinor:    25000,
		Currency:      "USD",
		IsActive:      active,
	}
}

func TestAttach_Success(t *testing.T) {
	trip := tripTo("Dubai, UAE")
	activity := dubaiActivity(true)

	tripRepo := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (*db_models.TripRequest, error) {
			return trip, nil
		},
	}
	activityRepo := &mockActivityRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (*db_models.Activity, error) {
			return activity, nil
		},
	}
	svc := services.NewActivityService(activityRepo, tripRepo)

	attached, err := svc.Attach(context.Background(), trip.ID.String(), activity.ID.String())

	require.NoError(t, err)
	assert.Equal(t, trip.ID.String(), attached.TripRequestID)
	assert.Equal(t, activity.ID.String(), attached.ActivityID)
	assert.Equal(t, 1, tripRepo.attaches)
}

func TestAttach_IsIdempotent(t *testing.T) {
	trip := tripTo("Dubai, UAE")
	activity := dubaiActivity(true)

	// The repo swallows the duplicate via ON CONFLICT DO NOTHING, so from the
	// service's view a second attach is just another success.
	tripRepo := &mockTripRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (*db_models.TripRequest, error) {
			return trip, nil
		},
	}
	activityRepo := &mockActivityRepo{
		getByID: func(_ context.Context, _ uuid.UUID) (*db_models.Activity, error) {
			return activity, nil
		},
	}
	svc := services.NewActivityService(activityRepo, tripRepo)

	_, err := svc.Attach(context.Background(), trip.ID.String(), activity.ID.String())
	require.NoError(t, err)
	_, err = svc.Attach(context.Background(), trip.ID.String(), activity.ID.String())
	require.NoError(t, err)
}

func TestAttach_DestinationMismatch(t *testing.T) {
	// Trip resolved to singapore, activity belongs to dubai.
	labels := []string{"singapore", "Singapore", "Singapore, Singapore"}
	for _, label := range labels {
		t.Run(label, func(t *testing.T) {
			trip := tripTo(label)
			activity := dubaiActivity(true)

			tripRepo := &mockTripRepo{
				getByID: func(_ context.Context, _ uuid.UUID) (*db_models.TripRequest, error) {
					return trip, nil
				},
			}
			activityRepo := &mockActivityRepo{
				getByID: func(_ context.Context, _ uuid.UUID) (*db_models.Activity, error) {
					return activity, nil
				},
			}
			svc := services.NewActivityService(activityRepo, tripRepo)

			_, err := svc.Attach(context.Background(), trip.ID.String(), activity.ID.String())

			assert.ErrorIs(t, err, utils.ErrDestinationMismatch)
			assert.Zero(t, tripRepo.attaches)
		})
	}
}

func TestAttach_NotFoundCases(t *testing.T) {
	trip := tripTo("Dubai, UAE")
	activity := dubaiActivity(true)

	t.Run("trip request missing", func(t *testing.T) {
		tripRepo := &mockTripRepo{
			getByID: func(_ context.Context, _ uuid.UUID) (*db_models.TripRequest, error) {
				return nil, nil
			},
		}
		svc := services.NewActivityService(&mockActivityRepo{}, tripRepo)

		_, err := svc.Attach(context.Background(), uuid.New().String(), activity.ID.String())
		assert.ErrorIs(t, err, utils.ErrTripRequestNotFound)
	})

	t.Run("activity missing", func(t *testing.T) {
		tripRepo := &mockTripRepo{
			getByID: func(_ context.Context, _ uuid.UUID) (*db_models.TripRequest, error) {
				return trip, nil
			},
		}
		activityRepo := &mockActivityRepo{
			getByID: func(_ context.Context, _ uuid.UUID) (*db_models.Activity, error) {
				return nil, nil
			},
		}
		svc := services.NewActivityService(activityRepo, tripRepo)

		_, err := svc.Attach(context.Background(), trip.ID.String(), uuid.New().String())
		assert.ErrorIs(t, err, utils.ErrActivityNotFound)
	})

	t.Run("inactive activity treated as missing", func(t *testing.T) {
		inactive := dubaiActivity(false)
		tripRepo := &mockTripRepo{
			getByID: func(_ context.Context, _ uuid.UUID) (*db_models.TripRequest, error) {
				return trip, nil
			},
		}
		activityRepo := &mockActivityRepo{
			getByID: func(_ context.Context, _ uuid.UUID) (*db_models.Activity, error) {
				return inactive, nil
			},
		}
		svc := services.NewActivityService(activityRepo, tripRepo)

		_, err := svc.Attach(context.Background(), trip.ID.String(), inactive.ID.String())
		assert.ErrorIs(t, err, utils.ErrActivityNotFound)
	})

	t.Run("malformed ids", func(t *testing.T) {
		svc := services.NewActivityService(&mockActivityRepo{}, &mockTripRepo{})

		_, err := svc.Attach(context.Background(), "nope", activity.ID.String())
		assert.ErrorIs(t, err, utils.ErrTripRequestNotFound)

		_, err = svc.Attach(context.Background(), trip.ID.String(), "nope")
		assert.ErrorIs(t, err, utils.ErrActivityNotFound)
	})
}

func TestListByDestination(t *testing.T) {
	t.Run("unknown destination", func(t *testing.T) {
		svc := services.NewActivityService(&mockActivityRepo{}, &mockTripRepo{})
		_, err := svc.ListByDestination(context.Background(), "atlantis")
		assert.ErrorIs(t, err, utils.ErrDestinationNotFound)
	})

	t.Run("label variants resolve to the same catalog id", func(t *testing.T) {
		var asked string
		activityRepo := &mockActivityRepo{
			listActive: func(_ context.Context, destinationID string) ([]db_models.Activity, error) {
				asked = destinationID
				return []db_models.Activity{*dubaiActivity(true)}, nil
			},
		}
		svc := services.NewActivityService(activityRepo, &mockTripRepo{})

		for _, label := range []string{"dubai", "Dubai", "Dubai, UAE"} {
			out, err := svc.ListByDestination(context.Background(), label)
			require.NoError(t, err)
			require.Len(t, out, 1)
			assert.Equal(t, "dubai", asked)
			assert.Equal(t, "Desert Safari", out[0].Name)
		}
	})
}

package services_test

import (
	"context"

	"github.com/google/uuid"

	"tripwise/internal/models/db_models"
	"tripwise/internal/repositories"
)

// Hand-written doubles with function fields, set per test. A nil field means
// the test does not expect that call.

type mockTripRepo struct {
	inserts        int
	attaches       int
	insert         func(ctx context.Context, req *db_models.TripRequest) error
	getByID        func(ctx context.Context, id uuid.UUID) (*db_models.TripRequest, error)
	updateStatus   func(ctx context.Context, id uuid.UUID, status db_models.TripStatus) error
	listRecent     func(ctx context.Context, limit int) ([]db_models.TripRequest, error)
	attachActivity func(ctx context.Context, tripRequestID, activityID uuid.UUID) error
}

func (m *mockTripRepo) Insert(ctx context.Context, req *db_models.TripRequest) error {
	m.inserts++
	if m.insert != nil {
		return m.insert(ctx, req)
	}
	req.ID = uuid.New()
	return nil
}

func (m *mockTripRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.TripRequest, error) {
	return m.getByID(ctx, id)
}

func (m *mockTripRepo) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.TripStatus) error {
	return m.updateStatus(ctx, id, status)
}

func (m *mockTripRepo) ListRecent(ctx context.Context, limit int) ([]db_models.TripRequest, error) {
	return m.listRecent(ctx, limit)
}

func (m *mockTripRepo) AttachActivity(ctx context.Context, tripRequestID, activityID uuid.UUID) error {
	m.attaches++
	if m.attachActivity != nil {
		return m.attachActivity(ctx, tripRequestID, activityID)
	}
	return nil
}

var _ repositories.TripRequestRepository = (*mockTripRepo)(nil)

type mockActivityRepo struct {
	getByID       func(ctx context.Context, id uuid.UUID) (*db_models.Activity, error)
	listActive    func(ctx context.Context, destinationID string) ([]db_models.Activity, error)
	countTotal    func(ctx context.Context) (int64, error)
}

func (m *mockActivityRepo) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Activity, error) {
	return m.getByID(ctx, id)
}

func (m *mockActivityRepo) ListActiveByDestination(ctx context.Context, destinationID string) ([]db_models.Activity, error) {
	return m.listActive(ctx, destinationID)
}

func (m *mockActivityRepo) CountTotal(ctx context.Context) (int64, error) {
	return m.countTotal(ctx)
}

var _ repositories.ActivityRepository = (*mockActivityRepo)(nil)

type mockDashboardRepo struct {
	countTotal       func(ctx context.Context) (int64, error)
	countByStatus    func(ctx context.Context) ([]repositories.StatusCountRow, error)
	countByDest      func(ctx context.Context, limit int) ([]repositories.DestinationCountRow, error)
}

func (m *mockDashboardRepo) CountTotalRequests(ctx context.Context) (int64, error) {
	return m.countTotal(ctx)
}

func (m *mockDashboardRepo) CountByStatus(ctx context.Context) ([]repositories.StatusCountRow, error) {
	return m.countByStatus(ctx)
}

func (m *mockDashboardRepo) CountByDestination(ctx context.Context, limit int) ([]repositories.DestinationCountRow, error) {
	return m.countByDest(ctx, limit)
}

var _ repositories.DashboardRepository = (*mockDashboardRepo)(nil)

package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"tripwise/internal/models/db_models"
)

type TripRequestRepository interface {
	Insert(ctx context.Context, req *db_models.TripRequest) error
	// GetByID returns nil without error when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.TripRequest, error)
	UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.TripStatus) error
	ListRecent(ctx context.Context, limit int) ([]db_models.TripRequest, error)
	// AttachActivity inserts the join row; the duplicate pair is a no-op.
	AttachActivity(ctx context.Context, tripRequestID, activityID uuid.UUID) error
}

type tripRequestRepository struct {
	db *gorm.DB
}

func NewTripRequestRepository(db *gorm.DB) TripRequestRepository {
	return &tripRequestRepository{db: db}
}

func (r *tripRequestRepository) Insert(ctx context.Context, req *db_models.TripRequest) error {
	return r.db.WithContext(ctx).Create(req).Error
}

func (r *tripRequestRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.TripRequest, error) {
	var req db_models.TripRequest
	err := r.db.WithContext(ctx).
		Preload("Activities.Activity").
		First(&req, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &req, nil
}

func (r *tripRequestRepository) UpdateStatus(ctx context.Context, id uuid.UUID, status db_models.TripStatus) error {
	return r.db.WithContext(ctx).
		Model(&db_models.TripRequest{}).
		Where("id = ?", id).
		Update("status", status).Error
}

func (r *tripRequestRepository) ListRecent(ctx context.Context, limit int) ([]db_models.TripRequest, error) {
	var reqs []db_models.TripRequest
	err := r.db.WithContext(ctx).
		Order("created_at DESC").
		Limit(limit).
		Find(&reqs).Error
	return reqs, err
}

func (r *tripRequestRepository) AttachActivity(ctx context.Context, tripRequestID, activityID uuid.UUID) error {
	join := db_models.TripRequestActivity{
		TripRequestID: tripRequestID,
		ActivityID:    activityID,
	}
	return r.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "trip_request_id"}, {Name: "activity_id"}},
			DoNothing: true,
		}).
		Create(&join).Error
}

package repositories

import (
	"context"
	"errors"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"tripwise/internal/models/db_models"
)

type ActivityRepository interface {
	// GetByID returns nil without error when no row matches.
	GetByID(ctx context.Context, id uuid.UUID) (*db_models.Activity, error)
	ListActiveByDestination(ctx context.Context, destinationID string) ([]db_models.Activity, error)
	CountTotal(ctx context.Context) (int64, error)
}

type activityRepository struct {
	db *gorm.DB
}

func NewActivityRepository(db *gorm.DB) ActivityRepository {
	return &activityRepository{db: db}
}

func (r *activityRepository) GetByID(ctx context.Context, id uuid.UUID) (*db_models.Activity, error) {
	var activity db_models.Activity
	err := r.db.WithContext(ctx).First(&activity, "id = ?", id).Error
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &activity, nil
}

func (r *activityRepository) ListActiveByDestination(ctx context.Context, destinationID string) ([]db_models.Activity, error) {
	var activities []db_models.Activity
	err := r.db.WithContext(ctx).
		Where("destination_id = ? AND is_active = ?", destinationID, true).
		Order("name ASC").
		Find(&activities).Error
	return activities, err
}

func (r *activityRepository) CountTotal(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.Activity{}).
		Where("is_active = ?", true).
		Count(&count).Error
	return count, err
}

package repositories

import (
	"context"

	"gorm.io/gorm"

	"tripwise/internal/models/db_models"
)

type DashboardRepository interface {
	CountTotalRequests(ctx context.Context) (int64, error)
	CountByStatus(ctx context.Context) ([]StatusCountRow, error)
	CountByDestination(ctx context.Context, limit int) ([]DestinationCountRow, error)
}

type dashboardRepository struct {
	db *gorm.DB
}

func NewDashboardRepository(db *gorm.DB) DashboardRepository {
	return &dashboardRepository{db: db}
}

// ---------- Row helpers ----------

type StatusCountRow struct {
	Status string `gorm:"column:status"`
	Count  int64  `gorm:"column:count"`
}

type DestinationCountRow struct {
	DestinationID string `gorm:"column:destination_id"`
	Destination   string `gorm:"column:destination"`
	Count         int64  `gorm:"column:count"`
}

func (r *dashboardRepository) CountTotalRequests(ctx context.Context) (int64, error) {
	var count int64
	err := r.db.WithContext(ctx).
		Model(&db_models.TripRequest{}).
		Count(&count).Error
	return count, err
}

func (r *dashboardRepository) CountByStatus(ctx context.Context) ([]StatusCountRow, error) {
	var rows []StatusCountRow
	err := r.db.WithContext(ctx).
		Model(&db_models.TripRequest{}).
		Select("status, COUNT(*) AS count").
		Group("status").
		Scan(&rows).Error
	return rows, err
}

func (r *dashboardRepository) CountByDestination(ctx context.Context, limit int) ([]DestinationCountRow, error) {
	var rows []DestinationCountRow
	err := r.db.WithContext(ctx).
		Model(&db_models.TripRequest{}).
		Select("destination_id, destination, COUNT(*) AS count").
		Group("destination_id, destination").
		Order("count DESC").
		Limit(limit).
		Scan(&rows).Error
	return rows, err
}

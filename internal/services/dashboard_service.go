package services

import (
	"context"

	"tripwise/internal/models/response_models"
	"tripwise/internal/repositories"
	"tripwise/pkg/utils"
)

type DashboardServiceInterface interface {
	BuildDashboard(ctx context.Context) (*response_models.DashboardReport, error)
}

type dashboardService struct {
	dashRepo     repositories.DashboardRepository
	tripRepo     repositories.TripRequestRepository
	activityRepo repositories.ActivityRepository
}

func NewDashboardService(
	dashRepo repositories.DashboardRepository,
	tripRepo repositories.TripRequestRepository,
	activityRepo repositories.ActivityRepository,
) DashboardServiceInterface {
	return &dashboardService{
		dashRepo:     dashRepo,
		tripRepo:     tripRepo,
		activityRepo: activityRepo,
	}
}

const (
	topDestinationsLimit = 10
	recentRequestsLimit  = 10
)

func (s *dashboardService) BuildDashboard(ctx context.Context) (*response_models.DashboardReport, error) {
	total, err := s.dashRepo.CountTotalRequests(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	totalActivities, err := s.activityRepo.CountTotal(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}

	// ---------- Pipeline share ----------
	statusRows, err := s.dashRepo.CountByStatus(ctx)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	pipeline := make([]response_models.StatusCount, 0, len(statusRows))
	for _, row := range statusRows {
		var pct float64
		if total > 0 {
			pct = float64(row.Count) * 100.0 / float64(total)
		}
		pipeline = append(pipeline, response_models.StatusCount{
			Status:  row.Status,
			Count:   row.Count,
			Percent: pct,
		})
	}

	// ---------- Per-destination totals ----------
	destRows, err := s.dashRepo.CountByDestination(ctx, topDestinationsLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	topDestinations := make([]response_models.DestinationCount, 0, len(destRows))
	for _, row := range destRows {
		topDestinations = append(topDestinations, response_models.DestinationCount{
			DestinationID: row.DestinationID,
			Destination:   row.Destination,
			Count:         row.Count,
		})
	}

	// ---------- Recent requests ----------
	recentRows, err := s.tripRepo.ListRecent(ctx, recentRequestsLimit)
	if err != nil {
		return nil, utils.ErrDatabaseError
	}
	recent := make([]response_models.TripRequestDetail, 0, len(recentRows))
	for i := range recentRows {
		recent = append(recent, *BuildTripRequestDetail(&recentRows[i]))
	}

	return &response_models.DashboardReport{
		TotalRequests:   total,
		TotalActivities: totalActivities,
		Pipeline:        pipeline,
		TopDestinations: topDestinations,
		Recent:          recent,
	}, nil
}

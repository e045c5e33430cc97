package dashboardfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripwise/internal/repositories"
	"tripwise/internal/services"
)

var Module = fx.Provide(
	NewDashboardService, NewDashboardRepo)

func NewDashboardService(
	dashRepo repositories.DashboardRepository,
	tripRepo repositories.TripRequestRepository,
	activityRepo repositories.ActivityRepository,
) services.DashboardServiceInterface {
	return services.NewDashboardService(dashRepo, tripRepo, activityRepo)
}

func NewDashboardRepo(db *gorm.DB) repositories.DashboardRepository {
	return repositories.NewDashboardRepository(db)
}

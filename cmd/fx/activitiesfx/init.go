package activitiesfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripwise/internal/repositories"
	"tripwise/internal/services"
)

var Module = fx.Provide(
	NewActivityService, NewActivityRepo)

func NewActivityService(
	activityRepo repositories.ActivityRepository,
	tripRepo repositories.TripRequestRepository,
) services.ActivityServiceInterface {
	return services.NewActivityService(activityRepo, tripRepo)
}

func NewActivityRepo(db *gorm.DB) repositories.ActivityRepository {
	return repositories.NewActivityRepository(db)
}

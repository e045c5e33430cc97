package tripsfx

import (
	"go.uber.org/fx"
	"gorm.io/gorm"

	"tripwise/internal/repositories"
	"tripwise/internal/services"
)

var Module = fx.Provide(
	NewTripRequestService, NewTripRequestRepo)

func NewTripRequestService(repo repositories.TripRequestRepository) services.TripRequestServiceInterface {
	return services.NewTripRequestService(repo)
}

func NewTripRequestRepo(db *gorm.DB) repositories.TripRequestRepository {
	return repositories.NewTripRequestRepository(db)
}

package controllersfx

import (
	"go.uber.org/fx"

	"tripwise/internal/api/controllers"
)

var Module = fx.Options(
	fx.Provide(controllers.NewWizardController),
	fx.Provide(controllers.NewTripRequestController),
	fx.Provide(controllers.NewDestinationController),
	fx.Provide(controllers.NewDashboardController),
	fx.Provide(controllers.NewAuthController))

package authfx

import (
	"go.uber.org/fx"

	"tripwise/internal/services"
)

var Module = fx.Provide(
	services.NewAuthService)

package wizardfx

import (
	"time"

	"go.uber.org/fx"

	"tripwise/internal/services"
	"tripwise/internal/wizard"
)

var Module = fx.Provide(
	NewWizardService)

func NewWizardService(store wizard.DraftStore) services.WizardServiceInterface {
	return services.NewWizardService(store, 2*time.Hour)
}

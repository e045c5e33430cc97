package response_models

import "tripwise/internal/wizard"

// WizardState is the full view of one session after any operation. On a
// failed answer, Error carries the inline message and Step is unchanged.
type WizardState struct {
	SessionID string            `json:"session_id"`
	Step      string            `json:"step"`
	Prompt    string            `json:"prompt"`
	Options   []string          `json:"options,omitempty"`
	Draft     wizard.TripDraft  `json:"draft"`
	Log       []wizard.Exchange `json:"log"`
	Error     string            `json:"error,omitempty"`
}

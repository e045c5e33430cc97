package request_models

// SeedDraft carries externally supplied draft fields — a globe selection or
// a restored snapshot. Every field is optional; absent fields never
// overwrite collected answers.
type SeedDraft struct {
	Origin      string `json:"origin,omitempty"`
	Destination string `json:"destination,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
}

type StartWizardRequest struct {
	// SessionID resumes an earlier session; empty starts a fresh one.
	SessionID string     `json:"session_id,omitempty"`
	Seed      *SeedDraft `json:"seed,omitempty"`
}

type AnswerRequest struct {
	Step        string `json:"step" binding:"required"`
	Value       string `json:"value,omitempty"`
	Keep        bool   `json:"keep,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Adults      int    `json:"adults,omitempty"`
	Kids        int    `json:"kids,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Number      string `json:"number,omitempty"`
}

package wizard

import "context"

// DraftStore is the persistence port for in-progress drafts. Only the draft
// crosses this boundary — never the step or the transcript — so a restored
// session re-enters the flow through Seed.
type DraftStore interface {
	Save(ctx context.Context, sessionID string, draft TripDraft) error
	// Load returns the stored draft and whether one existed.
	Load(ctx context.Context, sessionID string) (TripDraft, bool, error)
	Clear(ctx context.Context, sessionID string) error
}

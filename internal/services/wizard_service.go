package services

import (
	"context"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"tripwise/internal/catalog"
	"tripwise/internal/models/request_models"
	"tripwise/internal/models/response_models"
	"tripwise/internal/wizard"
	"tripwise/pkg/utils"
)

type WizardServiceInterface interface {
	Start(ctx context.Context, req request_models.StartWizardRequest) (*response_models.WizardState, error)
	Get(ctx context.Context, sessionID string) (*response_models.WizardState, error)
	Answer(ctx context.Context, sessionID string, req request_models.AnswerRequest) (*response_models.WizardState, error)
	Back(ctx context.Context, sessionID string) (*response_models.WizardState, error)
	Reset(ctx context.Context, sessionID string) (*response_models.WizardState, error)
	Seed(ctx context.Context, sessionID string, seed request_models.SeedDraft) (*response_models.WizardState, error)
	// Complete drops the session and its persisted draft after a successful
	// submission.
	Complete(ctx context.Context, sessionID string)
}

type session struct {
	mu       sync.Mutex
	machine  *wizard.Machine
	lastSeen time.Time
}

// WizardService owns the live wizard sessions. Each machine is mutated under
// its session mutex, so the state machine itself stays single-threaded.
type WizardService struct {
	mu         sync.RWMutex
	sessions   map[string]*session
	drafts     wizard.DraftStore
	sessionTTL time.Duration
}

func NewWizardService(drafts wizard.DraftStore, sessionTTL time.Duration) WizardServiceInterface {
	return &WizardService{
		sessions:   make(map[string]*session),
		drafts:     drafts,
		sessionTTL: sessionTTL,
	}
}

func (w *WizardService) Start(ctx context.Context, req request_models.StartWizardRequest) (*response_models.WizardState, error) {
	sessionID := req.SessionID

	if sessionID != "" {
		if s := w.lookup(sessionID); s != nil {
			s.mu.Lock()
			defer s.mu.Unlock()
			return w.toState(sessionID, s.machine), nil
		}
	} else {
		sessionID = uuid.New().String()
	}

	machine := wizard.NewMachine()

	// A returning session with no live machine restores its persisted draft
	// through Seed, the same path a globe pick takes.
	if req.SessionID != "" {
		stored, found, err := w.drafts.Load(ctx, sessionID)
		if err != nil {
			log.Printf("Draft restore failed for session %s: %v", sessionID, err)
		} else if found {
			machine.Seed(stored)
		}
	}
	if req.Seed != nil {
		machine.Seed(seedToDraft(*req.Seed))
	}

	s := &session{machine: machine, lastSeen: time.Now()}
	w.mu.Lock()
	w.sessions[sessionID] = s
	w.mu.Unlock()

	s.mu.Lock()
	defer s.mu.Unlock()
	w.persist(ctx, sessionID, machine)
	return w.toState(sessionID, machine), nil
}

func (w *WizardService) Get(_ context.Context, sessionID string) (*response_models.WizardState, error) {
	s := w.lookup(sessionID)
	if s == nil {
		return nil, utils.ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	return w.toState(sessionID, s.machine), nil
}

func (w *WizardService) Answer(ctx context.Context, sessionID string, req request_models.AnswerRequest) (*response_models.WizardState, error) {
	step, ok := wizard.ParseStep(req.Step)
	if !ok {
		return nil, utils.ErrInvalidInput
	}
	s := w.lookup(sessionID)
	if s == nil {
		return nil, utils.ErrSessionNotFound
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	ans := wizard.Answer{
		Value:       req.Value,
		Keep:        req.Keep,
		StartDate:   req.StartDate,
		EndDate:     req.EndDate,
		Adults:      req.Adults,
		Kids:        req.Kids,
		CountryCode: req.CountryCode,
		Number:      req.Number,
	}

	if err := s.machine.Answer(step, ans); err != nil {
		// Stay on step, surface the message inline; not a transport error.
		state := w.toState(sessionID, s.machine)
		state.Error = err.Error()
		return state, nil
	}

	w.persist(ctx, sessionID, s.machine)
	return w.toState(sessionID, s.machine), nil
}

func (w *WizardService) Back(ctx context.Context, sessionID string) (*response_models.WizardState, error) {
	s := w.lookup(sessionID)
	if s == nil {
		return nil, utils.ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine.Back()
	return w.toState(sessionID, s.machine), nil
}

func (w *WizardService) Reset(ctx context.Context, sessionID string) (*response_models.WizardState, error) {
	s := w.lookup(sessionID)
	if s == nil {
		return nil, utils.ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine.Reset()
	if err := w.drafts.Clear(ctx, sessionID); err != nil {
		log.Printf("Draft clear failed for session %s: %v", sessionID, err)
	}
	return w.toState(sessionID, s.machine), nil
}

func (w *WizardService) Seed(ctx context.Context, sessionID string, seed request_models.SeedDraft) (*response_models.WizardState, error) {
	s := w.lookup(sessionID)
	if s == nil {
		return nil, utils.ErrSessionNotFound
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.machine.Seed(seedToDraft(seed))
	w.persist(ctx, sessionID, s.machine)
	return w.toState(sessionID, s.machine), nil
}

func (w *WizardService) Complete(ctx context.Context, sessionID string) {
	if sessionID == "" {
		return
	}
	w.mu.Lock()
	delete(w.sessions, sessionID)
	w.mu.Unlock()
	if err := w.drafts.Clear(ctx, sessionID); err != nil {
		log.Printf("Draft clear failed for session %s: %v", sessionID, err)
	}
}

// lookup returns the live session, refreshing its TTL, or nil when the
// session is unknown or expired.
func (w *WizardService) lookup(sessionID string) *session {
	w.mu.Lock()
	defer w.mu.Unlock()
	s, ok := w.sessions[sessionID]
	if !ok {
		return nil
	}
	if time.Since(s.lastSeen) > w.sessionTTL {
		delete(w.sessions, sessionID)
		return nil
	}
	s.lastSeen = time.Now()
	return s
}

func (w *WizardService) persist(ctx context.Context, sessionID string, m *wizard.Machine) {
	if err := w.drafts.Save(ctx, sessionID, m.Draft); err != nil {
		// A failed snapshot never blocks the wizard; the session keeps going.
		log.Printf("Draft save failed for session %s: %v", sessionID, err)
	}
}

func (w *WizardService) toState(sessionID string, m *wizard.Machine) *response_models.WizardState {
	return &response_models.WizardState{
		SessionID: sessionID,
		Step:      m.Current.String(),
		Prompt:    wizard.Prompt(m.Current),
		Options:   stepOptions(m.Current),
		Draft:     m.Draft,
		Log:       m.Log,
	}
}

func stepOptions(step wizard.Step) []string {
	switch step {
	case wizard.StepOrigin:
		return catalog.OriginCities
	case wizard.StepDestinationConfirm:
		return []string{"Keep it", "Pick another"}
	case wizard.StepDestinationPick:
		labels := make([]string, 0, len(catalog.Destinations))
		for _, d := range catalog.Destinations {
			labels = append(labels, d.Label())
		}
		return labels
	case wizard.StepNationality:
		return catalog.Nationalities
	case wizard.StepAirline:
		return catalog.Airlines
	case wizard.StepHotel:
		return catalog.HotelTiers
	case wizard.StepFlightClass:
		return catalog.FlightClasses
	case wizard.StepVisa:
		return catalog.VisaStatuses
	default:
		return nil
	}
}

func seedToDraft(seed request_models.SeedDraft) wizard.TripDraft {
	return wizard.TripDraft{
		Origin:      seed.Origin,
		Destination: seed.Destination,
		StartDate:   seed.StartDate,
		EndDate:     seed.EndDate,
	}
}

package wizard_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"tripwise/internal/wizard"
)

func answerThrough(t *testing.T, m *wizard.Machine, upTo wizard.Step) {
	t.Helper()
	steps := []struct {
		step wizard.Step
		ans  wizard.Answer
	}{
		{wizard.StepOrigin, wizard.Answer{Value: "Mumbai, India"}},
		{wizard.StepDestinationConfirm, wizard.Answer{Keep: false}},
		{wizard.StepDestinationPick, wizard.Answer{Value: "Dubai, UAE"}},
		{wizard.StepDates, wizard.Answer{StartDate: "2025-03-01", EndDate: "2025-03-05"}},
		{wizard.StepTravelers, wizard.Answer{Adults: 2, Kids: 0}},
		{wizard.StepName, wizard.Answer{Value: "Asha Rao"}},
		{wizard.StepPhone, wizard.Answer{CountryCode: "+91", Number: "9876543210"}},
		{wizard.StepEmail, wizard.Answer{Value: "asha@example.com"}},
		{wizard.StepNationality, wizard.Answer{Value: "Indian"}},
		{wizard.StepAirline, wizard.Answer{Value: "Any"}},
		{wizard.StepHotel, wizard.Answer{Value: "3 Star"}},
		{wizard.StepFlightClass, wizard.Answer{Value: "Economy"}},
		{wizard.StepVisa, wizard.Answer{Value: "N/A"}},
	}
	for _, s := range steps {
		if m.Current != s.step {
			continue
		}
		require.NoError(t, m.Answer(s.step, s.ans))
		if m.Current > upTo || m.Current == wizard.StepSummary {
			return
		}
	}
}

func TestMachine_StartsAtOrigin(t *testing.T) {
	m := wizard.NewMachine()

	assert.Equal(t, wizard.StepOrigin, m.Current)
	require.NotEmpty(t, m.Log)
	assert.Equal(t, "bot", m.Log[0].Role)
}

func TestMachine_LinearAdvance(t *testing.T) {
	m := wizard.NewMachine()

	require.NoError(t, m.Answer(wizard.StepOrigin, wizard.Answer{Value: "Mumbai, India"}))
	assert.Equal(t, wizard.StepDestinationConfirm, m.Current)
	assert.Equal(t, "Mumbai, India", m.Draft.Origin)
}

func TestMachine_DestinationConfirmBranches(t *testing.T) {
	t.Run("change goes to the picker", func(t *testing.T) {
		m := wizard.NewMachine()
		require.NoError(t, m.Answer(wizard.StepOrigin, wizard.Answer{Value: "Mumbai, India"}))

		require.NoError(t, m.Answer(wizard.StepDestinationConfirm, wizard.Answer{Keep: false}))
		assert.Equal(t, wizard.StepDestinationPick, m.Current)
	})

	t.Run("keep skips the picker when a destination exists", func(t *testing.T) {
		m := wizard.NewMachine()
		m.Seed(wizard.TripDraft{Destination: "Dubai, UAE"})
		require.Equal(t, wizard.StepDestinationConfirm, m.Current)

		require.NoError(t, m.Answer(wizard.StepDestinationConfirm, wizard.Answer{Keep: true}))
		assert.Equal(t, wizard.StepDates, m.Current)
		assert.Equal(t, "Dubai, UAE", m.Draft.Destination)
	})

	t.Run("keep with no destination stays put", func(t *testing.T) {
		m := wizard.NewMachine()
		require.NoError(t, m.Answer(wizard.StepOrigin, wizard.Answer{Value: "Mumbai, India"}))

		err := m.Answer(wizard.StepDestinationConfirm, wizard.Answer{Keep: true})
		assert.Error(t, err)
		assert.Equal(t, wizard.StepDestinationConfirm, m.Current)
	})
}

func TestMachine_ValidationFailureDoesNotAdvance(t *testing.T) {
	cases := []struct {
		name string
		step wizard.Step
		ans  wizard.Answer
	}{
		{"empty origin", wizard.StepOrigin, wizard.Answer{Value: "  "}},
		{"unlisted origin", wizard.StepOrigin, wizard.Answer{Value: "Atlantis"}},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := wizard.NewMachine()
			before := m.Draft

			err := m.Answer(tc.step, tc.ans)

			assert.Error(t, err)
			assert.Equal(t, wizard.StepOrigin, m.Current)
			assert.Equal(t, before, m.Draft)
		})
	}
}

func TestMachine_DatesValidation(t *testing.T) {
	m := wizard.NewMachine()
	m.Seed(wizard.TripDraft{Destination: "Dubai, UAE"})
	require.NoError(t, m.Answer(wizard.StepDestinationConfirm, wizard.Answer{Keep: true}))

	err := m.Answer(wizard.StepDates, wizard.Answer{StartDate: "2025-03-05", EndDate: "2025-03-01"})
	assert.Error(t, err)
	assert.Equal(t, wizard.StepDates, m.Current)

	require.NoError(t, m.Answer(wizard.StepDates, wizard.Answer{StartDate: "2025-03-01", EndDate: "2025-03-05"}))
	assert.Equal(t, 5, m.Draft.Days)
	assert.Equal(t, 4, m.Draft.Nights)
}

func TestMachine_TravelersValidation(t *testing.T) {
	m := wizard.NewMachine()
	m.Seed(wizard.TripDraft{Destination: "Dubai, UAE"})
	require.NoError(t, m.Answer(wizard.StepDestinationConfirm, wizard.Answer{Keep: true}))
	require.NoError(t, m.Answer(wizard.StepDates, wizard.Answer{StartDate: "2025-03-01", EndDate: "2025-03-05"}))

	assert.Error(t, m.Answer(wizard.StepTravelers, wizard.Answer{Adults: 0, Kids: 2}))
	assert.Error(t, m.Answer(wizard.StepTravelers, wizard.Answer{Adults: 1, Kids: -1}))

	require.NoError(t, m.Answer(wizard.StepTravelers, wizard.Answer{Adults: 2, Kids: 1}))
	assert.Equal(t, wizard.StepName, m.Current)
}

func TestMachine_PhoneAndEmailPredicates(t *testing.T) {
	m := wizard.NewMachine()
	m.Seed(wizard.TripDraft{Destination: "Dubai, UAE"})
	require.NoError(t, m.Answer(wizard.StepDestinationConfirm, wizard.Answer{Keep: true}))
	require.NoError(t, m.Answer(wizard.StepDates, wizard.Answer{StartDate: "2025-03-01", EndDate: "2025-03-05"}))
	require.NoError(t, m.Answer(wizard.StepTravelers, wizard.Answer{Adults: 2}))
	require.NoError(t, m.Answer(wizard.StepName, wizard.Answer{Value: "Asha Rao"}))

	assert.Error(t, m.Answer(wizard.StepPhone, wizard.Answer{CountryCode: "", Number: "9876543210"}))
	assert.Error(t, m.Answer(wizard.StepPhone, wizard.Answer{CountryCode: "+91", Number: "12345"}))
	assert.Error(t, m.Answer(wizard.StepPhone, wizard.Answer{CountryCode: "+91", Number: "98-76-54"}))
	require.NoError(t, m.Answer(wizard.StepPhone, wizard.Answer{CountryCode: "+91", Number: "9876543210"}))

	assert.Error(t, m.Answer(wizard.StepEmail, wizard.Answer{Value: "not-an-email"}))
	assert.Error(t, m.Answer(wizard.StepEmail, wizard.Answer{Value: "asha@nodot"}))
	require.NoError(t, m.Answer(wizard.StepEmail, wizard.Answer{Value: "asha@example.com"}))
}

func TestMachine_BackThenAnswerRoundTrip(t *testing.T) {
	m := wizard.NewMachine()
	m.Seed(wizard.TripDraft{Destination: "Dubai, UAE"})
	require.NoError(t, m.Answer(wizard.StepDestinationConfirm, wizard.Answer{Keep: true}))
	require.NoError(t, m.Answer(wizard.StepDates, wizard.Answer{StartDate: "2025-03-01", EndDate: "2025-03-05"}))
	require.Equal(t, wizard.StepTravelers, m.Current)

	m.Back()
	assert.Equal(t, wizard.StepDates, m.Current)
	// Backing out never clears what was collected.
	assert.Equal(t, "2025-03-01", m.Draft.StartDate)

	require.NoError(t, m.Answer(wizard.StepDates, wizard.Answer{StartDate: "2025-03-01", EndDate: "2025-03-05"}))
	assert.Equal(t, wizard.StepTravelers, m.Current)
	assert.Equal(t, "2025-03-05", m.Draft.EndDate)
}

func TestMachine_BackAtFirstStepIsNoop(t *testing.T) {
	m := wizard.NewMachine()
	m.Back()
	assert.Equal(t, wizard.StepOrigin, m.Current)
}

func TestMachine_Reset(t *testing.T) {
	m := wizard.NewMachine()
	m.Seed(wizard.TripDraft{Destination: "Dubai, UAE", Origin: "Mumbai, India"})
	require.NoError(t, m.Answer(wizard.StepDestinationConfirm, wizard.Answer{Keep: true}))

	m.Reset()

	assert.Equal(t, wizard.StepOrigin, m.Current)
	assert.Equal(t, wizard.TripDraft{}, m.Draft)
	require.Len(t, m.Log, 1) // just the opening prompt
}

func TestMachine_SeedMergeDoesNotOverwrite(t *testing.T) {
	m := wizard.NewMachine()
	require.NoError(t, m.Answer(wizard.StepOrigin, wizard.Answer{Value: "Delhi, India"}))

	m.Seed(wizard.TripDraft{Destination: "Bali, Indonesia"})

	assert.Equal(t, "Delhi, India", m.Draft.Origin)
	assert.Equal(t, "Bali, Indonesia", m.Draft.Destination)
	assert.Equal(t, wizard.StepDestinationConfirm, m.Current)
}

func TestMachine_SeedWithoutDestinationKeepsStep(t *testing.T) {
	m := wizard.NewMachine()
	m.Seed(wizard.TripDraft{Origin: "Mumbai, India"})
	assert.Equal(t, wizard.StepOrigin, m.Current)
}

func TestMachine_FullFlowReachesSummary(t *testing.T) {
	m := wizard.NewMachine()
	answerThrough(t, m, wizard.StepVisa)
	assert.Equal(t, wizard.StepSummary, m.Current)

	draft := m.Draft
	assert.Equal(t, "Dubai, UAE", draft.Destination)
	assert.Equal(t, 5, draft.Days)
	assert.Equal(t, 4, draft.Nights)
	assert.Equal(t, "Asha Rao", draft.PassengerName)

	// The summary step takes no answers.
	assert.Error(t, m.Answer(wizard.StepSummary, wizard.Answer{Value: "yes"}))
}

func TestMachine_AnswerForWrongStepRejected(t *testing.T) {
	m := wizard.NewMachine()
	err := m.Answer(wizard.StepEmail, wizard.Answer{Value: "asha@example.com"})
	assert.Error(t, err)
	assert.Equal(t, wizard.StepOrigin, m.Current)
}

func TestParseStep(t *testing.T) {
	s, ok := wizard.ParseStep("destination-confirm")
	require.True(t, ok)
	assert.Equal(t, wizard.StepDestinationConfirm, s)

	_, ok = wizard.ParseStep("no-such-step")
	assert.False(t, ok)
}

package wizard

import "strconv"

// Exchange is one line of the chat transcript. The log is display-only and
// never consulted for control flow.
type Exchange struct {
	Role string `json:"role"` // "bot" or "user"
	Text string `json:"text"`
}

// Machine drives one wizard session. It is not safe for concurrent use; the
// owning service serializes access per session.
type Machine struct {
	Current Step
	Draft   TripDraft
	Log     []Exchange
}

func NewMachine() *Machine {
	m := &Machine{Current: StepOrigin}
	m.logBot(Prompt(StepOrigin))
	return m
}

// Seed merges externally supplied fields into the draft (a globe pick, a
// restored snapshot). Fields absent from partial are never overwritten. If a
// destination arrived, the session jumps to the confirm step; otherwise the
// current step is unchanged.
func (m *Machine) Seed(partial TripDraft) {
	m.Draft.merge(partial)
	if partial.Destination != "" {
		m.Current = StepDestinationConfirm
		m.logBot("You picked " + m.Draft.Destination + ". " + Prompt(StepDestinationConfirm))
	}
}

// Answer validates the response for step and, on success, applies it and
// advances. Validation failure leaves the machine exactly where it was and
// returns the inline message; nothing ever panics or throws.
func (m *Machine) Answer(step Step, ans Answer) error {
	if step != m.Current {
		return errStepMismatch(step, m.Current)
	}
	if err := validate(step, ans, &m.Draft); err != nil {
		return err
	}

	apply(step, ans, &m.Draft)
	m.logUser(echo(step, ans))

	switch step {
	case StepDestinationConfirm:
		if ans.Keep {
			m.Current = StepDates
		} else {
			m.Current = StepDestinationPick
		}
	default:
		if next, ok := linearNext[step]; ok {
			m.Current = next
		}
	}
	m.logBot(Prompt(m.Current))
	return nil
}

// Back moves one position earlier in the fixed sequence without clearing the
// field collected at the step being left. At the first step it is a no-op.
func (m *Machine) Back() {
	if m.Current == StepOrigin {
		return
	}
	m.Current = prev(m.Current)
	m.logBot(Prompt(m.Current))
}

// Reset returns the machine to a pristine state: empty draft, empty log,
// first step. Clearing any persisted snapshot is the caller's job.
func (m *Machine) Reset() {
	*m = *NewMachine()
}

func (m *Machine) logBot(text string) {
	if text != "" {
		m.Log = append(m.Log, Exchange{Role: "bot", Text: text})
	}
}

func (m *Machine) logUser(text string) {
	if text != "" {
		m.Log = append(m.Log, Exchange{Role: "user", Text: text})
	}
}

func pluralize(n int, noun string) string {
	s := strconv.Itoa(n) + " " + noun
	if n == 1 {
		return s
	}
	if noun == "child" {
		return strconv.Itoa(n) + " children"
	}
	return s + "s"
}

package wizard

import "fmt"

// Step is a position in the trip-builder questionnaire. The zero value is
// the first question.
type Step int

const (
	StepOrigin Step = iota
	StepDestinationConfirm
	StepDestinationPick
	StepDates
	StepTravelers
	StepName
	StepPhone
	StepEmail
	StepNationality
	StepAirline
	StepHotel
	StepFlightClass
	StepVisa
	StepSummary
)

var stepNames = map[Step]string{
	StepOrigin:             "origin",
	StepDestinationConfirm: "destination-confirm",
	StepDestinationPick:    "destination-pick",
	StepDates:              "dates",
	StepTravelers:          "travelers",
	StepName:               "name",
	StepPhone:              "phone",
	StepEmail:              "email",
	StepNationality:        "nationality",
	StepAirline:            "airline",
	StepHotel:              "hotel",
	StepFlightClass:        "flight-class",
	StepVisa:               "visa",
	StepSummary:            "summary",
}

func (s Step) String() string {
	if name, ok := stepNames[s]; ok {
		return name
	}
	return fmt.Sprintf("step(%d)", int(s))
}

// ParseStep maps the wire name back to a Step.
func ParseStep(name string) (Step, bool) {
	for s, n := range stepNames {
		if n == name {
			return s, true
		}
	}
	return 0, false
}

// linearNext is the transition table for every step whose successor does not
// depend on the answer. StepDestinationConfirm is the one branching step and
// is resolved in Machine.Answer; StepSummary is terminal.
var linearNext = map[Step]Step{
	StepOrigin:          StepDestinationConfirm,
	StepDestinationPick: StepDates,
	StepDates:           StepTravelers,
	StepTravelers:       StepName,
	StepName:            StepPhone,
	StepPhone:           StepEmail,
	StepEmail:           StepNationality,
	StepNationality:     StepAirline,
	StepAirline:         StepHotel,
	StepHotel:           StepFlightClass,
	StepFlightClass:     StepVisa,
	StepVisa:            StepSummary,
}

// prev moves exactly one position earlier in the fixed ordering.
func prev(s Step) Step {
	if s <= StepOrigin {
		return StepOrigin
	}
	return s - 1
}

var stepPrompts = map[Step]string{
	StepOrigin:             "Which city are you flying from?",
	StepDestinationConfirm: "Happy with this destination, or want to pick another?",
	StepDestinationPick:    "Where would you like to go?",
	StepDates:              "When does the trip start and end?",
	StepTravelers:          "How many adults and children are travelling?",
	StepName:               "What's the lead passenger's full name?",
	StepPhone:              "What's the best phone number to reach you on?",
	StepEmail:              "And your email address?",
	StepNationality:        "What's your nationality?",
	StepAirline:            "Any airline preference?",
	StepHotel:              "What hotel category would you like?",
	StepFlightClass:        "Which cabin class?",
	StepVisa:               "What's your visa status for the destination?",
	StepSummary:            "Here's your trip summary. Ready to submit?",
}

// Prompt returns the bot-side question shown when entering a step.
func Prompt(s Step) string {
	return stepPrompts[s]
}

func errStepMismatch(got, want Step) error {
	return fmt.Errorf("answer targets step %q but the wizard is at %q", got, want)
}

package wizard

import (
	"errors"
	"regexp"
	"strings"

	"tripwise/internal/catalog"
	"tripwise/pkg/utils"
)

// Answer carries the user's response for one step. Only the fields relevant
// to the step being answered are read.
type Answer struct {
	Value       string `json:"value,omitempty"`
	Keep        bool   `json:"keep,omitempty"`
	StartDate   string `json:"start_date,omitempty"`
	EndDate     string `json:"end_date,omitempty"`
	Adults      int    `json:"adults,omitempty"`
	Kids        int    `json:"kids,omitempty"`
	CountryCode string `json:"country_code,omitempty"`
	Number      string `json:"number,omitempty"`
}

var (
	emailPattern = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	digitsOnly   = regexp.MustCompile(`^[0-9]+$`)
)

// validate checks an answer against its step's predicate. A nil return means
// the answer may be applied; a non-nil return carries the inline message to
// show the user. Validation never mutates the draft.
func validate(step Step, ans Answer, draft *TripDraft) error {
	switch step {
	case StepOrigin:
		if strings.TrimSpace(ans.Value) == "" {
			return errors.New("please pick an origin city")
		}
		if !catalog.InSet(catalog.OriginCities, ans.Value) {
			return errors.New("please pick an origin city from the list")
		}
	case StepDestinationConfirm:
		if ans.Keep && strings.TrimSpace(draft.Destination) == "" {
			return errors.New("no destination selected yet")
		}
	case StepDestinationPick:
		if strings.TrimSpace(ans.Value) == "" {
			return errors.New("please pick a destination")
		}
		if _, ok := catalog.Resolve(ans.Value); !ok {
			return errors.New("we don't cover that destination yet")
		}
	case StepDates:
		start, err := utils.ParseCalendarDate(ans.StartDate)
		if err != nil {
			return errors.New("start date must look like 2025-03-01")
		}
		end, err := utils.ParseCalendarDate(ans.EndDate)
		if err != nil {
			return errors.New("end date must look like 2025-03-05")
		}
		if end.Before(start) {
			return errors.New("the end date can't be before the start date")
		}
	case StepTravelers:
		if ans.Adults < 1 {
			return errors.New("at least one adult is required")
		}
		if ans.Kids < 0 {
			return errors.New("children count can't be negative")
		}
	case StepName:
		if strings.TrimSpace(ans.Value) == "" {
			return errors.New("please enter the passenger's full name")
		}
	case StepPhone:
		if strings.TrimSpace(ans.CountryCode) == "" {
			return errors.New("please pick a country code")
		}
		if !digitsOnly.MatchString(ans.Number) || len(ans.Number) < 6 {
			return errors.New("phone number must be at least 6 digits")
		}
	case StepEmail:
		if !emailPattern.MatchString(strings.TrimSpace(ans.Value)) {
			return errors.New("that doesn't look like an email address")
		}
	case StepNationality:
		if !catalog.InSet(catalog.Nationalities, ans.Value) {
			return errors.New("please pick a nationality from the list")
		}
	case StepAirline:
		if !catalog.InSet(catalog.Airlines, ans.Value) {
			return errors.New("please pick an airline from the list")
		}
	case StepHotel:
		if !catalog.InSet(catalog.HotelTiers, ans.Value) {
			return errors.New("please pick a hotel category from the list")
		}
	case StepFlightClass:
		if !catalog.InSet(catalog.FlightClasses, ans.Value) {
			return errors.New("please pick a cabin class from the list")
		}
	case StepVisa:
		if !catalog.InSet(catalog.VisaStatuses, ans.Value) {
			return errors.New("please pick a visa status from the list")
		}
	case StepSummary:
		// Terminal step; submission happens through the trip-request endpoint.
		return errors.New("the summary step takes no answers")
	}
	return nil
}

// apply writes a validated answer's fields into the draft.
func apply(step Step, ans Answer, draft *TripDraft) {
	switch step {
	case StepOrigin:
		draft.Origin = strings.TrimSpace(ans.Value)
	case StepDestinationConfirm:
		// Keep/change only steers the branch; the draft is untouched.
	case StepDestinationPick:
		if d, ok := catalog.Resolve(ans.Value); ok {
			draft.Destination = d.Label()
		}
	case StepDates:
		draft.StartDate = ans.StartDate
		draft.EndDate = ans.EndDate
		draft.deriveLength()
	case StepTravelers:
		draft.Adults = ans.Adults
		draft.Kids = ans.Kids
	case StepName:
		draft.PassengerName = strings.TrimSpace(ans.Value)
	case StepPhone:
		draft.PhoneCountryCode = strings.TrimSpace(ans.CountryCode)
		draft.PhoneNumber = ans.Number
	case StepEmail:
		draft.Email = strings.TrimSpace(ans.Value)
	case StepNationality:
		draft.Nationality = strings.TrimSpace(ans.Value)
	case StepAirline:
		draft.AirlinePref = strings.TrimSpace(ans.Value)
	case StepHotel:
		draft.HotelPref = strings.TrimSpace(ans.Value)
	case StepFlightClass:
		draft.FlightClass = strings.TrimSpace(ans.Value)
	case StepVisa:
		draft.VisaStatus = strings.TrimSpace(ans.Value)
	}
}

// echo renders the user side of the transcript for a step's answer.
func echo(step Step, ans Answer) string {
	switch step {
	case StepDestinationConfirm:
		if ans.Keep {
			return "Keep it"
		}
		return "Pick another"
	case StepDates:
		return ans.StartDate + " to " + ans.EndDate
	case StepTravelers:
		return pluralize(ans.Adults, "adult") + ", " + pluralize(ans.Kids, "child")
	case StepPhone:
		return ans.CountryCode + " " + ans.Number
	default:
		return ans.Value
	}
}

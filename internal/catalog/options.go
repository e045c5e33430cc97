package catalog

import "strings"

// Fixed option sets offered by the trip-builder wizard. Membership is
// enforced at the steps that pick from them.

var OriginCities = []string{
	"Mumbai, India",
	"Delhi, India",
	"Bengaluru, India",
	"Chennai, India",
	"Hyderabad, India",
	"Kolkata, India",
	"Ahmedabad, India",
	"Pune, India",
}

var Nationalities = []string{
	"Indian",
	"American",
	"British",
	"Emirati",
	"Singaporean",
	"Australian",
	"Canadian",
	"Other",
}

var Airlines = []string{
	"Any",
	"Emirates",
	"Singapore Airlines",
	"Air India",
	"IndiGo",
	"Qatar Airways",
	"Vistara",
}

var HotelTiers = []string{
	"3 Star",
	"4 Star",
	"5 Star",
	"Luxury",
}

var FlightClasses = []string{
	"Economy",
	"Premium Economy",
	"Business",
	"First",
}

var VisaStatuses = []string{
	"N/A",
	"Have Visa",
	"Need Visa",
	"Visa on Arrival",
}

// InSet reports whether value matches an option, ignoring case and
// surrounding whitespace.
func InSet(options []string, value string) bool {
	v := strings.ToLower(strings.TrimSpace(value))
	for _, o := range options {
		if strings.ToLower(o) == v {
			return true
		}
	}
	return false
}

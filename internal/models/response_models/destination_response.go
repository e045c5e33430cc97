package response_models

import "tripwise/internal/geo"

// RouteResponse is the sampled great-circle path the client globe animates.
type RouteResponse struct {
	From    geo.LatLng   `json:"from"`
	To      geo.LatLng   `json:"to"`
	Samples int          `json:"samples"`
	Points  []geo.LatLng `json:"points"`
}

type OptionsResponse struct {
	OriginCities  []string `json:"origin_cities"`
	Nationalities []string `json:"nationalities"`
	Airlines      []string `json:"airlines"`
	HotelTiers    []string `json:"hotel_tiers"`
	FlightClasses []string `json:"flight_classes"`
	VisaStatuses  []string `json:"visa_statuses"`
}

package response_models

// StatusCount is one pipeline stage's slice of the funnel. Percent is the
// stage's share of all trip requests.
type StatusCount struct {
	Status  string  `json:"status"`
	Count   int64   `json:"count"`
	Percent float64 `json:"percent"`
}

type DestinationCount struct {
	DestinationID string `json:"destination_id"`
	Destination   string `json:"destination"`
	Count         int64  `json:"count"`
}

type DashboardReport struct {
	TotalRequests   int64               `json:"total_requests"`
	TotalActivities int64               `json:"total_activities"`
	Pipeline        []StatusCount       `json:"pipeline"`
	TopDestinations []DestinationCount  `json:"top_destinations"`
	Recent          []TripRequestDetail `json:"recent"`
}

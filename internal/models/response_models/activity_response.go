package response_models

type ActivitySummary struct {
	ID            string   `json:"id"`
	DestinationID string   `json:"destination_id"`
	Name          string   `json:"name"`
	Description   string   `json:"description,omitempty"`
	PriceMinor    int64    `json:"price_minor"`
	Currency      string   `json:"currency"`
	ReviewCount   int      `json:"review_count"`
	Image         string   `json:"image,omitempty"`
	Tags          []string `json:"tags,omitempty"`
}

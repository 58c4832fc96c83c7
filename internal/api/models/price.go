package models

// PriceRequest is the POST body of the price endpoint.
type PriceRequest struct {
	Crop  string `json:"crop"`
	State string `json:"state"`
}

// PriceResponse is the price endpoint response. RawResponse carries the
// generated text when the inferred tier produced the price; Message notes
// degraded service when the fallback tier did.
type PriceResponse struct {
	Price       string `json:"price"`
	Source      string `json:"source"`
	RawResponse string `json:"rawResponse,omitempty"`
	Message     string `json:"message,omitempty"`
}

package models

// YieldResponse is the yield-prediction endpoint response. Field names
// follow the hosted model's contract; Source says which tier produced the
// prediction.
type YieldResponse struct {
	Model                   string `json:"model"`
	PredictedYield          string `json:"predicted_yield"`
	TotalExpectedProduction string `json:"total_expected_production"`
	Assessment              string `json:"assessment"`
	Source                  string `json:"source"`
}

package classifier

import "cloud-advisor-chat/internal/model"

// Result is the outcome of a classification. Confidence is always present,
// even when the classifier fell back (fallback carries 0.5).
type Result struct {
	Intent     model.Intent
	Confidence float64
}

// wireResult is the constrained JSON shape the model is asked to return.
type wireResult struct {
	Intent     string  `json:"intent"`
	Confidence float64 `json:"confidence"`
}

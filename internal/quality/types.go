package quality

// Metrics is the full score sheet for one evaluated response. A fresh
// value is produced per evaluation and never reused across responses.
type Metrics struct {
	OverallScore        float64 `json:"overall_score"`
	SpecificityScore    float64 `json:"specificity_score"`
	ActionabilityScore  float64 `json:"actionability_score"`
	QuantificationScore float64 `json:"quantification_score"`
	RelevanceScore      float64 `json:"relevance_score"`
	CompletenessScore   float64 `json:"completeness_score"`
	ClarityScore        float64 `json:"clarity_score"`
	NoveltyScore        float64 `json:"novelty_score"`

	GenericPhraseCount        int     `json:"generic_phrase_count"`
	CircularReasoningDetected bool    `json:"circular_reasoning_detected"`
	HallucinationRisk         float64 `json:"hallucination_risk"`
	RedundancyRatio           float64 `json:"redundancy_ratio"`

	Issues []string `json:"issues,omitempty"`
}

// Criteria tunes an evaluation.
type Criteria struct {
	// ContentType scales actionability expectations
	// ("advice", "analysis", or empty for general chat).
	ContentType string

	// DisableLLM skips the auxiliary model phase; rule-based scores stand.
	DisableLLM bool
}

// llmScores is the JSON shape requested from the auxiliary model.
type llmScores struct {
	Specificity    float64  `json:"specificity"`
	Actionability  float64  `json:"actionability"`
	Quantification float64  `json:"quantification"`
	Novelty        float64  `json:"novelty"`
	Issues         []string `json:"issues"`
}

package model

// Intent is the classified purpose of a user request. It is assigned once
// per request by the classifier and is immutable afterwards.
type Intent string

const (
	IntentOptimizationAdvice Intent = "optimization_advice"
	IntentTCOAnalysis        Intent = "tco_analysis"
	IntentPricingInquiry     Intent = "pricing_inquiry"
	IntentTechnicalQuestion  Intent = "technical_question"
	IntentGeneralInquiry     Intent = "general_inquiry"
	IntentBenchmarking       Intent = "benchmarking"
	IntentMarketResearch     Intent = "market_research"
)

// AllIntents lists every recognized intent.
var AllIntents = []Intent{
	IntentOptimizationAdvice,
	IntentTCOAnalysis,
	IntentPricingInquiry,
	IntentTechnicalQuestion,
	IntentGeneralInquiry,
	IntentBenchmarking,
	IntentMarketResearch,
}

// ParseIntent maps a wire string to an Intent. The second return value is
// false when the string is not a recognized intent.
func ParseIntent(s string) (Intent, bool) {
	for _, it := range AllIntents {
		if string(it) == s {
			return it, true
		}
	}
	return "", false
}

// String implements fmt.Stringer.
func (i Intent) String() string {
	return string(i)
}

package classifier

// Log prefixes
const (
	LogPrefixClassify = "internal.classifier.Classify"
)

// Classifier prompt. The model must answer with bare JSON so the reply can
// be parsed without free-text heuristics.
const (
	PromptClassify = `You are an intent classifier for a cloud cost advisory service.
Classify the user request below into exactly one intent.

Request: %q

Possible intents:
1. optimization_advice: how to reduce or restructure cloud spend
2. tco_analysis: total cost of ownership, cloud vs on-prem comparisons
3. pricing_inquiry: current prices, rates, billing questions
4. technical_question: how a service or feature works
5. benchmarking: performance or cost comparisons between providers
6. market_research: vendor landscape, adoption trends, market data
7. general_inquiry: greetings, capabilities, anything else

Return JSON only, no prose:
{"intent": "<one of the intents above>", "confidence": <0.0-1.0>}`
)

// Generation settings
const (
	ClassifyTemperature = 0.1
	ClassifyMaxTokens   = 256
)

const (
	// FallbackConfidence is reported when the reply cannot be parsed.
	FallbackConfidence = 0.5
)

// Log messages
const (
	LogMsgEmptyRequest    = "empty request, using fallback intent"
	LogMsgJSONParseFailed = "failed to parse classifier reply, using fallback intent"
	LogMsgUnknownIntent   = "classifier returned unknown intent %q, using fallback"
	LogMsgClassified      = "classified as %s (confidence %.2f)"
)

package confidence

import "time"

const (
	// ThresholdHigh is the confidence bar for revenue-critical intents.
	ThresholdHigh = 0.85

	// ThresholdLow is the confidence bar for conversational intents.
	ThresholdLow = 0.60

	// DefaultCacheTTL is the conservative TTL for unknown intents.
	DefaultCacheTTL = 5 * time.Minute
)

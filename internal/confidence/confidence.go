package confidence

import (
	"time"

	"cloud-advisor-chat/internal/model"
)

// Manager is a pure decision table over classification confidence.
// It has no I/O and no mutable state after construction, so a single
// instance is safe for concurrent use.
type Manager struct {
	thresholds map[model.Intent]float64
	cacheTTLs  map[model.Intent]time.Duration
}

// New builds the decision tables.
func New() *Manager {
	return &Manager{
		thresholds: map[model.Intent]float64{
			// Revenue-critical intents get the high bar: wrong numbers in
			// a TCO or benchmark answer cost more than extra verification.
			model.IntentTCOAnalysis:        ThresholdHigh,
			model.IntentBenchmarking:       ThresholdHigh,
			model.IntentOptimizationAdvice: ThresholdHigh,
			model.IntentPricingInquiry:     ThresholdHigh,
			model.IntentMarketResearch:     ThresholdHigh,
			model.IntentTechnicalQuestion:  ThresholdLow,
			model.IntentGeneralInquiry:     ThresholdLow,
		},
		cacheTTLs: map[model.Intent]time.Duration{
			model.IntentPricingInquiry:     15 * time.Minute,
			model.IntentBenchmarking:       15 * time.Minute,
			model.IntentOptimizationAdvice: 30 * time.Minute,
			model.IntentTCOAnalysis:        30 * time.Minute,
			model.IntentTechnicalQuestion:  time.Hour,
			model.IntentGeneralInquiry:     time.Hour,
			model.IntentMarketResearch:     2 * time.Hour,
		},
	}
}

// Threshold returns the minimum confidence bar for the intent.
// Unknown intents fail safe toward the high bar (more verification).
func (m *Manager) Threshold(intent model.Intent) float64 {
	if t, ok := m.thresholds[intent]; ok {
		return t
	}
	return ThresholdHigh
}

// CacheTTL returns how long a cached answer for the intent stays valid.
// The values track real-world data volatility: pricing changes within
// minutes, market research survives hours. Unknown intents get a
// conservative short TTL.
func (m *Manager) CacheTTL(intent model.Intent) time.Duration {
	if ttl, ok := m.cacheTTLs[intent]; ok {
		return ttl
	}
	return DefaultCacheTTL
}

// ShouldEscalate reports whether the plan needs extra verification and
// research steps. This is the single decision point gating escalation.
func (m *Manager) ShouldEscalate(conf float64, intent model.Intent) bool {
	return conf < m.Threshold(intent)
}

// ShouldUseCache reports whether a cached answer may be served for the
// intent at the given classification confidence. The bar is the same one
// escalation uses: a classification too uncertain to skip verification
// is too uncertain to key a shared cache entry.
func (m *Manager) ShouldUseCache(intent model.Intent, conf float64) bool {
	return conf >= m.Threshold(intent)
}

package confidence

import (
	"testing"

	"cloud-advisor-chat/internal/model"
)

func TestThresholds(t *testing.T) {
	m := New()

	tests := []struct {
		intent model.Intent
		want   float64
	}{
		{model.IntentTCOAnalysis, ThresholdHigh},
		{model.IntentBenchmarking, ThresholdHigh},
		{model.IntentOptimizationAdvice, ThresholdHigh},
		{model.IntentGeneralInquiry, ThresholdLow},
		{model.IntentTechnicalQuestion, ThresholdLow},
		{model.Intent("unheard_of"), ThresholdHigh}, // unknown defaults high
	}

	for _, tt := range tests {
		t.Run(string(tt.intent), func(t *testing.T) {
			got := m.Threshold(tt.intent)
			if got != tt.want {
				t.Errorf("Threshold(%s) = %v, want %v", tt.intent, got, tt.want)
			}
			// Deterministic across calls.
			if again := m.Threshold(tt.intent); again != got {
				t.Errorf("Threshold(%s) not deterministic: %v then %v", tt.intent, got, again)
			}
		})
	}
}

func TestCacheTTL_AlwaysPositive(t *testing.T) {
	m := New()

	intents := append([]model.Intent{model.Intent("unknown")}, model.AllIntents...)
	for _, intent := range intents {
		if ttl := m.CacheTTL(intent); ttl <= 0 {
			t.Errorf("CacheTTL(%s) = %v, want > 0", intent, ttl)
		}
	}
}

func TestCacheTTL_Volatility(t *testing.T) {
	m := New()

	pricing := m.CacheTTL(model.IntentPricingInquiry)
	technical := m.CacheTTL(model.IntentTechnicalQuestion)
	market := m.CacheTTL(model.IntentMarketResearch)

	if pricing.Seconds() != 900 {
		t.Errorf("pricing TTL = %v, want 900s", pricing)
	}
	if technical.Seconds() != 3600 {
		t.Errorf("technical TTL = %v, want 3600s", technical)
	}
	if market.Seconds() != 7200 {
		t.Errorf("market research TTL = %v, want 7200s", market)
	}
}

func TestShouldEscalate(t *testing.T) {
	m := New()

	confidences := []float64{0, 0.3, 0.59, 0.6, 0.75, 0.85, 0.99, 1}
	for _, intent := range model.AllIntents {
		for _, c := range confidences {
			want := c < m.Threshold(intent)
			if got := m.ShouldEscalate(c, intent); got != want {
				t.Errorf("ShouldEscalate(%v, %s) = %v, want %v", c, intent, got, want)
			}
		}
	}
}

func TestShouldUseCache(t *testing.T) {
	m := New()

	if m.ShouldUseCache(model.IntentGeneralInquiry, 0.4) {
		t.Error("low confidence should bypass the cache")
	}
	if !m.ShouldUseCache(model.IntentTechnicalQuestion, 0.9) {
		t.Error("high confidence stable intent should allow the cache")
	}
	if m.ShouldUseCache(model.IntentPricingInquiry, 0.7) {
		t.Error("volatile intent below the high bar should bypass the cache")
	}
	if !m.ShouldUseCache(model.IntentPricingInquiry, 0.9) {
		t.Error("volatile intent above the high bar should allow the cache")
	}
}

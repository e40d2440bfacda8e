package planner

import (
	"cloud-advisor-chat/internal/agent/agents"
	"cloud-advisor-chat/internal/confidence"
	"cloud-advisor-chat/internal/model"
)

// Planner turns a classified intent into an ordered list of plan steps.
// It is pure: the same (intent, confidence) pair always yields the same plan.
type Planner struct {
	confidence *confidence.Manager
}

// New creates a planner over the given confidence tables.
func New(cm *confidence.Manager) *Planner {
	return &Planner{confidence: cm}
}

// volatileIntents are intents whose underlying facts change frequently.
// They force fresh research regardless of classification confidence.
var volatileIntents = map[model.Intent]bool{
	model.IntentPricingInquiry: true,
	model.IntentMarketResearch: true,
	model.IntentBenchmarking:   true,
}

// IsVolatile reports whether the intent requires fresh data every time.
func IsVolatile(intent model.Intent) bool {
	return volatileIntents[intent]
}

// GeneratePlan builds the execution plan for an intent at the given
// classification confidence.
//
// Step order is research, then domain-specific steps, then analysis, then
// validation. Order matters: later steps read data accumulated by earlier
// ones.
func (p *Planner) GeneratePlan(intent model.Intent, conf float64) []Step {
	var steps []Step

	// Low confidence or volatile facts both force a research pass with
	// attributed findings.
	if p.confidence.ShouldEscalate(conf, intent) || IsVolatile(intent) {
		steps = append(steps, Step{
			Agent:  agents.NameResearcher,
			Action: "deep_research",
			Params: map[string]interface{}{"require_citations": true},
		})
	}

	switch intent {
	case model.IntentTCOAnalysis:
		// Financial claims always get domain review and a full analysis,
		// regardless of confidence.
		steps = append(steps,
			Step{
				Agent:  agents.NameDomainExpert,
				Action: "consult",
				Params: map[string]interface{}{"domain": "finance"},
			},
			Step{
				Agent:  agents.NameAnalyst,
				Action: "analyze",
				Params: map[string]interface{}{"analysis_type": "tco_analysis"},
			},
		)
	case model.IntentBenchmarking:
		steps = append(steps, Step{
			Agent:  agents.NameAnalyst,
			Action: "analyze",
			Params: map[string]interface{}{"analysis_type": "benchmark_comparison"},
		})
	case model.IntentOptimizationAdvice:
		steps = append(steps, Step{
			Agent:  agents.NameAnalyst,
			Action: "analyze",
			Params: map[string]interface{}{"analysis_type": "cost_optimization"},
		})
	}

	// Validation is trimmed only when confidence clears the high bar and
	// the facts are stable; that is the latency/cost fast path.
	if !(conf >= confidence.ThresholdHigh && !IsVolatile(intent)) {
		steps = append(steps, validateStep())
	}

	// A plan is never empty: with everything trimmed the response still
	// goes through validation.
	if len(steps) == 0 {
		steps = []Step{validateStep()}
	}

	return steps
}

func validateStep() Step {
	return Step{
		Agent:  agents.NameValidator,
		Action: "validate_response",
	}
}

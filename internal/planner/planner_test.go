package planner

import (
	"testing"

	"cloud-advisor-chat/internal/confidence"
	"cloud-advisor-chat/internal/model"
)

func countAgent(steps []Step, agent string) int {
	n := 0
	for _, s := range steps {
		if s.Agent == agent {
			n++
		}
	}
	return n
}

func findStep(steps []Step, agent string) (Step, bool) {
	for _, s := range steps {
		if s.Agent == agent {
			return s, true
		}
	}
	return Step{}, false
}

func TestGeneratePlan_TCOAnalysisMidConfidence(t *testing.T) {
	p := New(confidence.New())

	steps := p.GeneratePlan(model.IntentTCOAnalysis, 0.75)

	if len(steps) < 3 {
		t.Fatalf("expected at least 3 steps, got %d: %+v", len(steps), steps)
	}

	research, ok := findStep(steps, "researcher")
	if !ok {
		t.Fatal("expected a researcher step below the high confidence bar")
	}
	if research.Params["require_citations"] != true {
		t.Error("research step must require citations")
	}

	expert, ok := findStep(steps, "domain_expert")
	if !ok {
		t.Fatal("TCO analysis must include a domain expert step")
	}
	if expert.Params["domain"] != "finance" {
		t.Errorf("domain = %v, want finance", expert.Params["domain"])
	}

	analyst, ok := findStep(steps, "analyst")
	if !ok {
		t.Fatal("TCO analysis must include an analyst step")
	}
	if analyst.Params["analysis_type"] != "tco_analysis" {
		t.Errorf("analysis_type = %v, want tco_analysis", analyst.Params["analysis_type"])
	}
}

func TestGeneratePlan_GeneralInquiryHighConfidence(t *testing.T) {
	p := New(confidence.New())

	steps := p.GeneratePlan(model.IntentGeneralInquiry, 0.95)

	if countAgent(steps, "researcher") != 0 {
		t.Error("high-confidence general inquiry must not research")
	}
	if countAgent(steps, "validator") == 0 {
		t.Error("plan must never be empty: a validator step is the minimum")
	}
}

func TestGeneratePlan_VolatilityOverridesConfidence(t *testing.T) {
	p := New(confidence.New())

	steps := p.GeneratePlan(model.IntentPricingInquiry, 0.9)

	research, ok := findStep(steps, "researcher")
	if !ok {
		t.Fatal("pricing is volatile: research is required even at high confidence")
	}
	if research.Params["require_citations"] != true {
		t.Error("volatile research must require citations")
	}
	if countAgent(steps, "validator") == 0 {
		t.Error("volatile intents keep their validation step")
	}
}

func TestGeneratePlan_StepOrdering(t *testing.T) {
	p := New(confidence.New())

	steps := p.GeneratePlan(model.IntentTCOAnalysis, 0.5)

	order := map[string]int{}
	for i, s := range steps {
		if _, seen := order[s.Agent]; !seen {
			order[s.Agent] = i
		}
	}

	if order["researcher"] > order["domain_expert"] {
		t.Error("research must precede domain steps")
	}
	if order["domain_expert"] > order["analyst"] {
		t.Error("domain steps must precede analysis")
	}
	if v, ok := order["validator"]; !ok || v != len(steps)-1 {
		t.Error("validation must be the final step")
	}
}

func TestGeneratePlan_UnknownIntentMinimalPlan(t *testing.T) {
	p := New(confidence.New())

	// No plan is ever empty: worst case collapses to a lone validator.
	steps := p.GeneratePlan(model.Intent("mystery"), 1.0)
	if len(steps) == 0 {
		t.Fatal("plan must never be empty")
	}
	if steps[len(steps)-1].Agent != "validator" && countAgent(steps, "validator") == 0 {
		t.Error("minimal plan must contain validation")
	}
}

func TestGeneratePlan_Deterministic(t *testing.T) {
	p := New(confidence.New())

	a := p.GeneratePlan(model.IntentBenchmarking, 0.7)
	b := p.GeneratePlan(model.IntentBenchmarking, 0.7)

	if len(a) != len(b) {
		t.Fatalf("plan lengths differ: %d vs %d", len(a), len(b))
	}
	for i := range a {
		if a[i].Agent != b[i].Agent || a[i].Action != b[i].Action {
			t.Errorf("step %d differs: %+v vs %+v", i, a[i], b[i])
		}
	}
}

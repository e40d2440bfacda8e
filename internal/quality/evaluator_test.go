package quality

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud-advisor-chat/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

type scriptedProvider struct {
	reply string
	err   error
	calls int
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{
		Text:         p.reply,
		ProviderName: "scripted",
		ModelName:    "scripted-model",
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-model" }

func auxManager(p llmprovider.Provider) *llmprovider.Manager {
	return llmprovider.NewManager([]llmprovider.Provider{p}, &llmprovider.Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
		RetryDelay:      time.Millisecond,
	}, &mockLogger{})
}

func TestEvaluate_GenericHeavyScoresLow(t *testing.T) {
	e := New(&mockLogger{}, nil)

	text := "It depends on many things. In general, best practices matter. " +
		"It is important to review various options. As you may know, " +
		"at the end of the day there are many factors."
	m := e.Evaluate(context.Background(), text, "how do I cut my AWS bill", Criteria{})

	if m.GenericPhraseCount < 4 {
		t.Fatalf("GenericPhraseCount = %d, want >= 4", m.GenericPhraseCount)
	}
	if m.ActionabilityScore > 0.3 {
		t.Errorf("ActionabilityScore = %.3f, want <= 0.3 for generic-heavy text", m.ActionabilityScore)
	}
	if m.OverallScore >= 0.5 {
		t.Errorf("OverallScore = %.3f, want < 0.5", m.OverallScore)
	}
}

func TestEvaluate_UnattributedClaimsRaiseRisk(t *testing.T) {
	e := New(&mockLogger{}, nil)

	text := "AWS definitely guarantees the lowest price. In 2023 the rate was " +
		"$0.096 per hour and savings always reach 37%. This will never change."
	m := e.Evaluate(context.Background(), text, "is AWS cheaper", Criteria{})

	if m.HallucinationRisk < 0.3 {
		t.Errorf("HallucinationRisk = %.3f, want >= 0.3", m.HallucinationRisk)
	}
	if m.OverallScore >= 0.7 {
		t.Errorf("OverallScore = %.3f, want < 0.7", m.OverallScore)
	}

	found := false
	for _, issue := range m.Issues {
		if strings.Contains(issue, "unattributed") {
			found = true
		}
	}
	if !found {
		t.Errorf("Issues = %v, want an unattributed-claims entry", m.Issues)
	}
}

func TestEvaluate_AttributionLowersRisk(t *testing.T) {
	e := New(&mockLogger{}, nil)

	text := "According to the published price list, the 2023 rate was $0.096 per hour."
	m := e.Evaluate(context.Background(), text, "what was the rate", Criteria{})

	if m.HallucinationRisk != 0 {
		t.Errorf("HallucinationRisk = %.3f, want 0 for attributed claims", m.HallucinationRisk)
	}
}

func TestEvaluate_ModelPhaseFailureKeepsRuleScores(t *testing.T) {
	p := &scriptedProvider{err: errors.New("model down")}
	e := New(&mockLogger{}, auxManager(p))

	text := "Reserved instances lower long-term costs for stable workloads."
	m := e.Evaluate(context.Background(), text, "do reserved instances reduce costs", Criteria{})

	if p.calls == 0 {
		t.Fatal("auxiliary model was never called")
	}
	if m.SpecificityScore != neutralScore || m.NoveltyScore != neutralScore {
		t.Errorf("LLM dimensions = (%.2f, %.2f), want neutral %.2f after failure",
			m.SpecificityScore, m.NoveltyScore, neutralScore)
	}
	if m.OverallScore < 0.4 || m.OverallScore > 0.6 {
		t.Errorf("OverallScore = %.3f, want moderate [0.4, 0.6]", m.OverallScore)
	}
}

func TestEvaluate_ModelPhaseMergesScores(t *testing.T) {
	p := &scriptedProvider{reply: "```json\n" +
		`{"specificity": 0.9, "actionability": 0.8, "quantification": 0.7, "novelty": 0.6, "issues": ["no pricing source cited"]}` +
		"\n```"}
	e := New(&mockLogger{}, auxManager(p))

	text := "Switch your steady workloads to 3-year reserved instances and " +
		"enable rightsizing recommendations to reduce the monthly bill."
	m := e.Evaluate(context.Background(), text, "reduce my cloud bill", Criteria{ContentType: "advice"})

	if m.SpecificityScore != 0.9 || m.QuantificationScore != 0.7 || m.NoveltyScore != 0.6 {
		t.Errorf("merged scores = (%.2f, %.2f, %.2f), want (0.90, 0.70, 0.60)",
			m.SpecificityScore, m.QuantificationScore, m.NoveltyScore)
	}
	if m.ActionabilityScore != 0.8 {
		t.Errorf("ActionabilityScore = %.2f, want 0.8 from model", m.ActionabilityScore)
	}

	found := false
	for _, issue := range m.Issues {
		if issue == "no pricing source cited" {
			found = true
		}
	}
	if !found {
		t.Errorf("Issues = %v, want the model's issue carried over", m.Issues)
	}
}

func TestEvaluate_DisableLLMSkipsModel(t *testing.T) {
	p := &scriptedProvider{reply: `{"specificity": 0.9}`}
	e := New(&mockLogger{}, auxManager(p))

	e.Evaluate(context.Background(), "some answer text here for scoring", "a query", Criteria{DisableLLM: true})

	if p.calls != 0 {
		t.Errorf("model called %d times, want 0 with DisableLLM", p.calls)
	}
}

func TestEvaluate_MemoCache(t *testing.T) {
	p := &scriptedProvider{reply: `{"specificity": 0.9, "actionability": 0.8, "quantification": 0.7, "novelty": 0.6}`}
	e := New(&mockLogger{}, auxManager(p))

	text := "Enable the compute savings plan to reduce spend."
	query := "reduce spend"
	first := e.Evaluate(context.Background(), text, query, Criteria{})
	second := e.Evaluate(context.Background(), text, query, Criteria{})

	if p.calls != 1 {
		t.Errorf("model called %d times, want 1 for identical inputs", p.calls)
	}
	if first.OverallScore != second.OverallScore {
		t.Errorf("cached score %.3f differs from first %.3f", second.OverallScore, first.OverallScore)
	}
}

func TestCompletenessScore(t *testing.T) {
	tests := []struct {
		name    string
		content string
		want    float64
	}{
		{"near_empty", "ok", 0.1},
		{"one_liner", "Use spot instances.", 0.5},
		{"full", strings.Repeat("word ", 50), 1.0},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := completenessScore(tt.content); got != tt.want {
				t.Errorf("completenessScore(%q) = %.3f, want %.3f", tt.content, got, tt.want)
			}
		})
	}
}

func TestRelevanceScore(t *testing.T) {
	got := relevanceScore(
		"Reserved instances reduce costs for predictable workloads.",
		"do reserved instances reduce costs",
	)
	if got != 1.0 {
		t.Errorf("relevanceScore = %.3f, want 1.0 for full overlap", got)
	}

	if got := relevanceScore("green eggs and ham", "kubernetes autoscaling policy"); got != 0 {
		t.Errorf("relevanceScore = %.3f, want 0 for no overlap", got)
	}

	if got := relevanceScore("anything", "a an"); got != neutralScore {
		t.Errorf("relevanceScore = %.3f, want neutral for an empty query", got)
	}
}

func TestRedundancyRatio(t *testing.T) {
	if got := redundancyRatio("cost cost cost cost"); got != 0.75 {
		t.Errorf("redundancyRatio = %.3f, want 0.75", got)
	}
	if got := redundancyRatio("hi"); got != 0 {
		t.Errorf("redundancyRatio = %.3f, want 0 for trivially short text", got)
	}
}

func TestCircularReasoning(t *testing.T) {
	if !circularReasoning("It is cheaper because it is cheaper.") {
		t.Error("circular pattern not detected")
	}
	if circularReasoning("Spot capacity is cheaper than on-demand.") {
		t.Error("false positive on plain statement")
	}
}

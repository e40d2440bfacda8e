package agents

import (
	"context"
	"fmt"

	"cloud-advisor-chat/pkg/llmprovider"
	"cloud-advisor-chat/pkg/log"
)

// Analyst performs quantitative analysis (TCO, benchmarks, comparisons).
type Analyst struct {
	llm *llmprovider.Manager
	l   log.Logger
}

// NewAnalyst creates the analyst agent.
func NewAnalyst(llm *llmprovider.Manager, l log.Logger) *Analyst {
	return &Analyst{llm: llm, l: l}
}

// Name implements agent.Handler.
func (a *Analyst) Name() string {
	return NameAnalyst
}

// Execute runs an analyze action; analysis_type selects the flavor
// (tco_analysis, benchmark_comparison, cost_comparison).
func (a *Analyst) Execute(ctx context.Context, action string, params map[string]interface{}, state map[string]interface{}) (interface{}, error) {
	if action != "analyze" {
		return nil, fmt.Errorf("analyst: unsupported action %q", action)
	}

	analysisType := stringParam(params, "analysis_type", "cost analysis")
	prompt := fmt.Sprintf(promptAnalysis, analysisType, stateContext(state), requestText(state))

	analysis, err := a.llm.Ask(ctx, prompt, agentTemperature, agentMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("analyst: %w", err)
	}

	return map[string]interface{}{
		"analysis_type": analysisType,
		"analysis":      analysis,
	}, nil
}

package agents

import (
	"context"
	"fmt"

	"cloud-advisor-chat/pkg/llmprovider"
	"cloud-advisor-chat/pkg/log"
)

// Researcher gathers fresh facts for volatile or low-confidence requests.
type Researcher struct {
	llm *llmprovider.Manager
	l   log.Logger
}

// NewResearcher creates the researcher agent.
func NewResearcher(llm *llmprovider.Manager, l log.Logger) *Researcher {
	return &Researcher{llm: llm, l: l}
}

// Name implements agent.Handler.
func (a *Researcher) Name() string {
	return NameResearcher
}

// Execute runs a research action. The only supported action is
// "deep_research"; require_citations=true tightens the prompt.
func (a *Researcher) Execute(ctx context.Context, action string, params map[string]interface{}, state map[string]interface{}) (interface{}, error) {
	if action != "deep_research" {
		return nil, fmt.Errorf("researcher: unsupported action %q", action)
	}

	citations := ""
	if boolParam(params, "require_citations") {
		citations = requireCitationsNote
	}

	prompt := fmt.Sprintf(promptResearch, citations+stateContext(state), requestText(state))

	findings, err := a.llm.Ask(ctx, prompt, agentTemperature, agentMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("researcher: %w", err)
	}

	return map[string]interface{}{
		"findings":           findings,
		"citations_required": boolParam(params, "require_citations"),
	}, nil
}

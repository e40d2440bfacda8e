package agents

import (
	"context"
	"fmt"

	"cloud-advisor-chat/pkg/llmprovider"
	"cloud-advisor-chat/pkg/log"
)

// DomainExpert contributes domain-specific guidance (finance, networking, ...).
type DomainExpert struct {
	llm *llmprovider.Manager
	l   log.Logger
}

// NewDomainExpert creates the domain expert agent.
func NewDomainExpert(llm *llmprovider.Manager, l log.Logger) *DomainExpert {
	return &DomainExpert{llm: llm, l: l}
}

// Name implements agent.Handler.
func (a *DomainExpert) Name() string {
	return NameDomainExpert
}

// Execute runs a consult action for the domain named in params.
func (a *DomainExpert) Execute(ctx context.Context, action string, params map[string]interface{}, state map[string]interface{}) (interface{}, error) {
	if action != "consult" {
		return nil, fmt.Errorf("domain_expert: unsupported action %q", action)
	}

	domain := stringParam(params, "domain", "cloud infrastructure")
	prompt := fmt.Sprintf(promptDomainExpert, domain, stateContext(state), requestText(state))

	guidance, err := a.llm.Ask(ctx, prompt, agentTemperature, agentMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("domain_expert: %w", err)
	}

	return map[string]interface{}{
		"domain":   domain,
		"guidance": guidance,
	}, nil
}

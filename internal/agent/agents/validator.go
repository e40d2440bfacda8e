package agents

import (
	"context"
	"fmt"

	"cloud-advisor-chat/pkg/llmprovider"
	"cloud-advisor-chat/pkg/log"
)

// Validator assembles and checks the final user-facing answer from the
// material accumulated by earlier steps.
type Validator struct {
	llm *llmprovider.Manager
	l   log.Logger
}

// NewValidator creates the validator agent.
func NewValidator(llm *llmprovider.Manager, l log.Logger) *Validator {
	return &Validator{llm: llm, l: l}
}

// Name implements agent.Handler.
func (a *Validator) Name() string {
	return NameValidator
}

// Execute runs validate_response.
func (a *Validator) Execute(ctx context.Context, action string, params map[string]interface{}, state map[string]interface{}) (interface{}, error) {
	if action != "validate_response" {
		return nil, fmt.Errorf("validator: unsupported action %q", action)
	}

	prompt := fmt.Sprintf(promptValidate, stateContext(state), requestText(state))

	answer, err := a.llm.Ask(ctx, prompt, agentTemperature, agentMaxTokens)
	if err != nil {
		return nil, fmt.Errorf("validator: %w", err)
	}

	return map[string]interface{}{
		"response":  answer,
		"validated": true,
	}, nil
}

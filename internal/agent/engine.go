package agent

import (
	"context"
	"fmt"

	"cloud-advisor-chat/pkg/log"
)

// ExecutionEngine dispatches a single plan step to its agent.
type ExecutionEngine interface {
	ExecuteAgent(ctx context.Context, agent, action string, params map[string]interface{}, state map[string]interface{}) (interface{}, error)
}

// Engine is the registry-backed ExecutionEngine.
type Engine struct {
	registry *Registry
	l        log.Logger
}

var _ ExecutionEngine = (*Engine)(nil)

// NewEngine creates an engine over the given registry.
func NewEngine(registry *Registry, l log.Logger) *Engine {
	return &Engine{
		registry: registry,
		l:        l,
	}
}

// ExecuteAgent looks up the agent and runs the requested action.
func (e *Engine) ExecuteAgent(ctx context.Context, agent, action string, params map[string]interface{}, state map[string]interface{}) (interface{}, error) {
	h, ok := e.registry.Get(agent)
	if !ok {
		return nil, fmt.Errorf("agent %s not registered", agent)
	}

	e.l.Debugf(ctx, "engine: dispatching %s.%s", agent, action)
	return h.Execute(ctx, action, params, state)
}

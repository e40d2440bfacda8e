package executor

import (
	"time"

	"cloud-advisor-chat/internal/agent"
	"cloud-advisor-chat/pkg/log"
)

// Executor walks an execution plan step by step, accumulating results.
type Executor struct {
	registry    *agent.Registry
	engine      agent.ExecutionEngine
	stepTimeout time.Duration
	l           log.Logger
}

// New creates a pipeline executor. stepTimeout <= 0 uses the default.
func New(registry *agent.Registry, engine agent.ExecutionEngine, stepTimeout time.Duration, l log.Logger) *Executor {
	if stepTimeout <= 0 {
		stepTimeout = DefaultStepTimeout
	}
	return &Executor{
		registry:    registry,
		engine:      engine,
		stepTimeout: stepTimeout,
		l:           l,
	}
}

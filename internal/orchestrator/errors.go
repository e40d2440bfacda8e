package orchestrator

import "errors"

// Domain-specific errors for the orchestrator package.
var (
	ErrEmptyRequest = errors.New("request text is empty")
)

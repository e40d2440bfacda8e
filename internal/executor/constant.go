package executor

import "time"

// Log prefixes
const (
	LogPrefixExecute = "internal.executor.Execute"
)

const (
	// DefaultStepTimeout bounds a single agent invocation. A step that
	// exceeds it becomes a step-level error, never a pipeline abort.
	DefaultStepTimeout = 45 * time.Second

	// MsgPending is the placeholder message for unregistered agents.
	MsgPending = "implementation pending"

	// StatusProcessing is the pipeline-level status of a completed run.
	StatusProcessing = "processing"
)

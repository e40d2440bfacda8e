package orchestrator

// Source values in the response envelope.
const (
	SourceCache    = "cache"
	SourcePipeline = "pipeline"
)

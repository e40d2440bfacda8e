package orchestrator

// ChatInput is one user request.
type ChatInput struct {
	RequestText string
}

// ChatOutput is the response envelope. Exactly one of the success shape
// (Source/Confidence/Data) or Error is populated; Trace is present on
// both paths so partial progress stays visible after a failure.
type ChatOutput struct {
	RequestID  string                 `json:"request_id"`
	Source     string                 `json:"source,omitempty"`
	Intent     string                 `json:"intent,omitempty"`
	Confidence float64                `json:"confidence,omitempty"`
	Data       map[string]interface{} `json:"data,omitempty"`
	Error      string                 `json:"error,omitempty"`
	Trace      []string               `json:"trace,omitempty"`
}

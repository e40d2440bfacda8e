package planner

// Step is one planned agent invocation. Steps are created once by the
// planner and never mutated afterwards; execution produces results, not
// modified steps.
type Step struct {
	Agent  string                 `json:"agent"`
	Action string                 `json:"action"`
	Params map[string]interface{} `json:"params,omitempty"`
}

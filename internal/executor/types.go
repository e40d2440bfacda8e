package executor

// StepStatus is the terminal state of one executed plan step.
type StepStatus string

const (
	StatusSuccess StepStatus = "success"
	StatusPending StepStatus = "pending"
	StatusError   StepStatus = "error"
)

// StepResult records the outcome of one plan step. A "pending" result means
// the target agent is not registered; it is a placeholder, not a failure.
type StepResult struct {
	Agent  string      `json:"agent"`
	Action string      `json:"action"`
	Result interface{} `json:"result,omitempty"`
	Status StepStatus  `json:"status"`
}

// Result is the terminal output of one pipeline run.
type Result struct {
	Intent string                 `json:"intent"`
	Status string                 `json:"status"`
	Steps  []StepResult           `json:"steps"`
	Data   map[string]interface{} `json:"data"`
}

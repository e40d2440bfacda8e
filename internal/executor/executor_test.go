package executor

import (
	"context"
	"errors"
	"strings"
	"testing"
	"time"

	"cloud-advisor-chat/internal/agent"
	"cloud-advisor-chat/internal/model"
	"cloud-advisor-chat/internal/planner"
	"cloud-advisor-chat/internal/trace"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// stubAgent is a scriptable agent handler.
type stubAgent struct {
	name   string
	result interface{}
	err    error
	panics bool
	// seenState records the state passed in, to verify accumulation.
	seenState map[string]interface{}
}

func (a *stubAgent) Name() string { return a.name }

func (a *stubAgent) Execute(ctx context.Context, action string, params map[string]interface{}, state map[string]interface{}) (interface{}, error) {
	a.seenState = make(map[string]interface{}, len(state))
	for k, v := range state {
		a.seenState[k] = v
	}
	if a.panics {
		panic("agent exploded")
	}
	return a.result, a.err
}

func newExecutor(handlers ...agent.Handler) *Executor {
	registry := agent.NewRegistry()
	for _, h := range handlers {
		registry.Register(h)
	}
	l := &mockLogger{}
	return New(registry, agent.NewEngine(registry, l), time.Second, l)
}

func newTrace() *trace.Logger {
	return trace.New(nil, &mockLogger{})
}

func TestExecute_UnregisteredAgentIsPending(t *testing.T) {
	e := newExecutor() // empty registry

	plan := []planner.Step{{Agent: "researcher", Action: "deep_research"}}
	result := e.Execute(context.Background(), plan, model.IntentPricingInquiry, nil, newTrace())

	if len(result.Steps) != 1 {
		t.Fatalf("expected 1 step, got %d", len(result.Steps))
	}
	step := result.Steps[0]
	if step.Status != StatusPending {
		t.Errorf("status = %s, want pending", step.Status)
	}
	m, ok := step.Result.(map[string]interface{})
	if !ok {
		t.Fatalf("expected map result, got %T", step.Result)
	}
	msg, _ := m["message"].(string)
	if !strings.Contains(msg, "implementation pending") {
		t.Errorf("message = %q, want it to mention implementation pending", msg)
	}
	if result.Status != StatusProcessing {
		t.Errorf("pipeline status = %s, want processing", result.Status)
	}
}

func TestExecute_StepErrorDoesNotAbortPipeline(t *testing.T) {
	failing := &stubAgent{name: "researcher", err: errors.New("upstream timeout")}
	succeeding := &stubAgent{name: "validator", result: map[string]interface{}{"response": "final"}}
	e := newExecutor(failing, succeeding)

	plan := []planner.Step{
		{Agent: "researcher", Action: "deep_research"},
		{Agent: "validator", Action: "validate_response"},
	}
	result := e.Execute(context.Background(), plan, model.IntentGeneralInquiry, nil, newTrace())

	if len(result.Steps) != 2 {
		t.Fatalf("expected 2 steps, got %d", len(result.Steps))
	}
	if result.Steps[0].Status != StatusError {
		t.Errorf("first step status = %s, want error", result.Steps[0].Status)
	}
	if result.Steps[1].Status != StatusSuccess {
		t.Errorf("second step status = %s, want success", result.Steps[1].Status)
	}
}

func TestExecute_PanicIsIsolated(t *testing.T) {
	exploding := &stubAgent{name: "analyst", panics: true}
	e := newExecutor(exploding)

	plan := []planner.Step{{Agent: "analyst", Action: "analyze"}}
	result := e.Execute(context.Background(), plan, model.IntentTCOAnalysis, nil, newTrace())

	if result.Steps[0].Status != StatusError {
		t.Errorf("status = %s, want error after panic", result.Steps[0].Status)
	}
}

func TestExecute_AccumulatesDataAcrossSteps(t *testing.T) {
	first := &stubAgent{name: "researcher", result: map[string]interface{}{"findings": "spot prices"}}
	second := &stubAgent{name: "validator", result: "done"}
	e := newExecutor(first, second)

	state := map[string]interface{}{"request": "original question"}
	plan := []planner.Step{
		{Agent: "researcher", Action: "deep_research"},
		{Agent: "validator", Action: "validate_response"},
	}
	result := e.Execute(context.Background(), plan, model.IntentPricingInquiry, state, newTrace())

	if _, ok := second.seenState["researcher_result"]; !ok {
		t.Error("second step must see the first step's result in state")
	}
	if second.seenState["request"] != "original question" {
		t.Error("second step must see the original request")
	}
	if _, ok := result.Data["validator_result"]; !ok {
		t.Error("final data must contain every step's result")
	}
}

func TestExecute_TracesEveryStepInOrder(t *testing.T) {
	e := newExecutor() // all steps pending, still traced
	tr := newTrace()

	plan := []planner.Step{
		{Agent: "researcher", Action: "deep_research"},
		{Agent: "domain_expert", Action: "consult"},
		{Agent: "validator", Action: "validate_response"},
	}
	e.Execute(context.Background(), plan, model.IntentTCOAnalysis, nil, tr)

	entries := tr.Entries()
	if len(entries) != 3 {
		t.Fatalf("expected 3 trace entries, got %d", len(entries))
	}
	wants := []string{
		"Executing researcher.deep_research",
		"Executing domain_expert.consult",
		"Executing validator.validate_response",
	}
	for i, want := range wants {
		if entries[i].Action != want {
			t.Errorf("entry %d = %q, want %q", i, entries[i].Action, want)
		}
	}
}

func TestExecute_IntentStringInResult(t *testing.T) {
	e := newExecutor()

	result := e.Execute(context.Background(), nil, model.IntentBenchmarking, nil, newTrace())
	if result.Intent != "benchmarking" {
		t.Errorf("intent = %s, want benchmarking", result.Intent)
	}
}

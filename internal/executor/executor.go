package executor

import (
	"context"
	"fmt"

	"cloud-advisor-chat/internal/model"
	"cloud-advisor-chat/internal/planner"
	"cloud-advisor-chat/internal/trace"
)

// Execute runs the plan in order. Steps execute sequentially because later
// steps read the data earlier steps accumulated into state. One failing or
// unavailable step never aborts the pipeline: it is recorded per step and
// execution continues.
//
// state is owned by this single in-flight execution; callers must not share
// it across requests. Steps only add keys, never delete.
func (e *Executor) Execute(ctx context.Context, plan []planner.Step, intent model.Intent, state map[string]interface{}, tr *trace.Logger) Result {
	if state == nil {
		state = make(map[string]interface{})
	}

	steps := make([]StepResult, 0, len(plan))

	for _, step := range plan {
		// Trace before invocation so progress is observable even while a
		// long-running step is still in flight.
		tr.Log(fmt.Sprintf("Executing %s.%s", step.Agent, step.Action), map[string]interface{}{
			"agent":  step.Agent,
			"action": step.Action,
		})

		sr := e.executeStep(ctx, step, state)
		steps = append(steps, sr)

		// Later steps see this step's result under a key derived from
		// the agent name.
		state[step.Agent+"_result"] = sr.Result
	}

	return Result{
		Intent: intent.String(),
		Status: StatusProcessing,
		Steps:  steps,
		Data:   state,
	}
}

// executeStep runs one step with a bounded timeout and panic isolation.
func (e *Executor) executeStep(ctx context.Context, step planner.Step, state map[string]interface{}) (sr StepResult) {
	sr = StepResult{Agent: step.Agent, Action: step.Action}

	if !e.registry.Has(step.Agent) {
		sr.Status = StatusPending
		sr.Result = map[string]interface{}{
			"agent":   step.Agent,
			"message": MsgPending,
		}
		e.l.Infof(ctx, "%s: agent %s not registered, recorded as pending", LogPrefixExecute, step.Agent)
		return sr
	}

	stepCtx, cancel := context.WithTimeout(ctx, e.stepTimeout)
	defer cancel()

	defer func() {
		if r := recover(); r != nil {
			e.l.Errorf(ctx, "%s: step %s.%s panicked: %v", LogPrefixExecute, step.Agent, step.Action, r)
			sr.Status = StatusError
			sr.Result = map[string]interface{}{"error": fmt.Sprintf("panic: %v", r)}
		}
	}()

	result, err := e.engine.ExecuteAgent(stepCtx, step.Agent, step.Action, step.Params, state)
	if err != nil {
		e.l.Warnf(ctx, "%s: step %s.%s failed: %v", LogPrefixExecute, step.Agent, step.Action, err)
		sr.Status = StatusError
		sr.Result = map[string]interface{}{"error": err.Error()}
		return sr
	}

	sr.Status = StatusSuccess
	sr.Result = result
	return sr
}

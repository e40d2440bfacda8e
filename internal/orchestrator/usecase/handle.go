package usecase

import (
	"context"
	"encoding/json"
	"strings"

	"github.com/google/uuid"

	"cloud-advisor-chat/internal/executor"
	"cloud-advisor-chat/internal/model"
	"cloud-advisor-chat/internal/orchestrator"
	"cloud-advisor-chat/internal/quality"
	"cloud-advisor-chat/internal/trace"
)

// Handle drives one request through cache check, classification,
// planning, execution and evaluation. Failures anywhere become an error
// envelope carrying the trace collected so far; nothing escapes to the
// caller.
func (uc *implUseCase) Handle(ctx context.Context, sc model.Scope, input orchestrator.ChatInput) (out orchestrator.ChatOutput) {
	requestID := uuid.NewString()
	tr := trace.New(uc.transport, uc.l)

	defer func() {
		if r := recover(); r != nil {
			uc.l.Errorf(ctx, "Handle: request=%s recovered: %v", requestID, r)
			out = uc.errorOutput(requestID, "internal pipeline failure", tr)
		}
	}()

	tr.Log("Received request", map[string]interface{}{
		"request_id": requestID,
		"user_id":    sc.UserID,
	})

	if strings.TrimSpace(input.RequestText) == "" {
		return uc.errorOutput(requestID, orchestrator.ErrEmptyRequest.Error(), tr)
	}

	key := fingerprint(input.RequestText)
	if cached, ok := uc.cacheLookup(ctx, key); ok {
		tr.Log("Cache hit", map[string]interface{}{"intent": cached.Intent})
		return orchestrator.ChatOutput{
			RequestID:  requestID,
			Source:     orchestrator.SourceCache,
			Intent:     cached.Intent,
			Confidence: 1.0,
			Data:       cached.Data,
			Trace:      tr.Compressed(trace.MaxEntries),
		}
	}

	tr.Log("Classifying request", nil)
	cls, err := uc.classifier.Classify(ctx, input.RequestText)
	if err != nil {
		uc.l.Errorf(ctx, "Handle: request=%s classification failed: %v", requestID, err)
		return uc.errorOutput(requestID, err.Error(), tr)
	}
	tr.Log("Classified intent", map[string]interface{}{
		"intent":     cls.Intent.String(),
		"confidence": cls.Confidence,
	})

	var data map[string]interface{}
	var responseText string
	if uc.advancedPlanning {
		data, responseText = uc.runPipeline(ctx, sc, input.RequestText, cls.Intent, cls.Confidence, tr)
	} else {
		data, responseText, err = uc.runDirect(ctx, input.RequestText, tr)
		if err != nil {
			uc.l.Errorf(ctx, "Handle: request=%s direct answer failed: %v", requestID, err)
			return uc.errorOutput(requestID, err.Error(), tr)
		}
	}

	metrics := uc.evaluator.Evaluate(ctx, responseText, input.RequestText, quality.Criteria{
		ContentType: contentTypeFor(cls.Intent),
	})
	tr.Log("Evaluated response quality", map[string]interface{}{
		"overall_score": metrics.OverallScore,
	})
	data["quality_score"] = metrics.OverallScore
	if len(metrics.Issues) > 0 {
		data["quality_issues"] = metrics.Issues
	}

	if uc.confidence.ShouldUseCache(cls.Intent, cls.Confidence) {
		uc.cacheStore(ctx, key, cls.Intent, data, tr)
	}

	return orchestrator.ChatOutput{
		RequestID:  requestID,
		Source:     orchestrator.SourcePipeline,
		Intent:     cls.Intent.String(),
		Confidence: cls.Confidence,
		Data:       data,
		Trace:      tr.Compressed(trace.MaxEntries),
	}
}

// runPipeline is the full plan-and-execute path.
func (uc *implUseCase) runPipeline(ctx context.Context, sc model.Scope, requestText string, intent model.Intent, conf float64, tr *trace.Logger) (map[string]interface{}, string) {
	plan := uc.planner.GeneratePlan(intent, conf)
	tr.Log("Generated plan", map[string]interface{}{"steps": len(plan)})

	state := map[string]interface{}{
		"request": requestText,
		"intent":  intent.String(),
		"user_id": sc.UserID,
	}
	res := uc.executor.Execute(ctx, plan, intent, state, tr)

	return res.Data, responseTextFrom(res)
}

// runDirect answers with a single model call, used when advanced
// planning is switched off.
func (uc *implUseCase) runDirect(ctx context.Context, requestText string, tr *trace.Logger) (map[string]interface{}, string, error) {
	tr.Log("Answering directly", nil)

	text, err := uc.llm.Ask(ctx, requestText, directTemperature, directMaxTokens)
	if err != nil {
		return nil, "", err
	}
	return map[string]interface{}{"response": text}, text, nil
}

func (uc *implUseCase) cacheLookup(ctx context.Context, key string) (cachedPayload, bool) {
	var payload cachedPayload

	raw, ok, err := uc.store.Get(ctx, key)
	if err != nil {
		uc.l.Warnf(ctx, "Handle: cache read failed, treating as miss: %v", err)
		return payload, false
	}
	if !ok {
		return payload, false
	}
	if err := json.Unmarshal([]byte(raw), &payload); err != nil {
		uc.l.Warnf(ctx, "Handle: corrupt cache entry, treating as miss: %v", err)
		return payload, false
	}
	return payload, true
}

func (uc *implUseCase) cacheStore(ctx context.Context, key string, intent model.Intent, data map[string]interface{}, tr *trace.Logger) {
	raw, err := json.Marshal(cachedPayload{Intent: intent.String(), Data: data})
	if err != nil {
		uc.l.Warnf(ctx, "Handle: cache payload marshal failed: %v", err)
		return
	}

	ttl := uc.confidence.CacheTTL(intent)
	if err := uc.store.Set(ctx, key, string(raw), ttl); err != nil {
		uc.l.Warnf(ctx, "Handle: cache write failed: %v", err)
		return
	}
	tr.Log("Cached response", map[string]interface{}{"ttl_seconds": ttl.Seconds()})
}

func (uc *implUseCase) errorOutput(requestID, message string, tr *trace.Logger) orchestrator.ChatOutput {
	return orchestrator.ChatOutput{
		RequestID: requestID,
		Error:     message,
		Trace:     tr.Compressed(trace.MaxEntries),
	}
}

// responseTextFrom picks the user-facing text out of a pipeline result:
// the latest successful step that produced text.
func responseTextFrom(res executor.Result) string {
	for i := len(res.Steps) - 1; i >= 0; i-- {
		step := res.Steps[i]
		if step.Status != executor.StatusSuccess {
			continue
		}
		if text := stepText(step.Result); text != "" {
			return text
		}
	}
	return ""
}

// stepText extracts the textual payload of one step result. Agents
// return maps keyed by their output name; the validator's assembled
// "response" outranks intermediate material.
func stepText(result interface{}) string {
	switch v := result.(type) {
	case string:
		return v
	case map[string]interface{}:
		for _, key := range []string{"response", "analysis", "guidance", "findings"} {
			if text, ok := v[key].(string); ok && text != "" {
				return text
			}
		}
	}
	return ""
}

// contentTypeFor maps intents onto evaluation content types.
func contentTypeFor(intent model.Intent) string {
	switch intent {
	case model.IntentOptimizationAdvice:
		return "advice"
	case model.IntentTCOAnalysis, model.IntentBenchmarking:
		return "analysis"
	default:
		return ""
	}
}

package quality

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"
)

// llmPhase asks the auxiliary model for the dimensions rules cannot
// measure. Any failure returns an error; the caller keeps the neutral
// rule-based scores in that case.
func (e *Evaluator) llmPhase(ctx context.Context, responseText, query string) (llmScores, error) {
	var scores llmScores

	ctx, cancel := context.WithTimeout(ctx, DefaultLLMTimeout)
	defer cancel()

	prompt := fmt.Sprintf(evalPrompt, query, responseText)
	reply, err := e.aux.Ask(ctx, prompt, evalTemperature, evalMaxTokens)
	if err != nil {
		return scores, err
	}

	payload := extractJSON(reply)
	if payload == "" {
		return scores, fmt.Errorf("no JSON object in evaluation reply")
	}
	if err := json.Unmarshal([]byte(payload), &scores); err != nil {
		return scores, fmt.Errorf("parse evaluation reply: %w", err)
	}

	scores.Specificity = clamp01(scores.Specificity)
	scores.Actionability = clamp01(scores.Actionability)
	scores.Quantification = clamp01(scores.Quantification)
	scores.Novelty = clamp01(scores.Novelty)
	return scores, nil
}

// extractJSON takes the widest {...} span, tolerating markdown fences
// and prose around the object.
func extractJSON(reply string) string {
	start := strings.Index(reply, "{")
	end := strings.LastIndex(reply, "}")
	if start < 0 || end <= start {
		return ""
	}
	return reply[start : end+1]
}

func clamp01(v float64) float64 {
	return min(1.0, max(0.0, v))
}

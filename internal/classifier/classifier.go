package classifier

import (
	"context"
	"encoding/json"
	"fmt"
	"regexp"
	"strings"

	"cloud-advisor-chat/internal/model"
)

// fallbackResult is returned whenever the reply cannot be turned into a
// recognized intent. It is a safe default, not an error condition.
func fallbackResult() Result {
	return Result{
		Intent:     model.IntentGeneralInquiry,
		Confidence: FallbackConfidence,
	}
}

// Classify determines the user intent from the request text.
//
// Parse problems (malformed JSON, unknown intent strings, empty input)
// resolve to the fallback intent without an error. Transport failures from
// the provider chain propagate so the caller can treat them as
// pipeline-level failures.
func (c *semanticClassifier) Classify(ctx context.Context, requestText string) (Result, error) {
	if strings.TrimSpace(requestText) == "" {
		c.l.Infof(ctx, "%s: %s", LogPrefixClassify, LogMsgEmptyRequest)
		return fallbackResult(), nil
	}

	prompt := fmt.Sprintf(PromptClassify, requestText)

	reply, err := c.llm.Ask(ctx, prompt, ClassifyTemperature, ClassifyMaxTokens)
	if err != nil {
		return Result{}, fmt.Errorf("%s: LLM call failed: %w", LogPrefixClassify, err)
	}

	var wire wireResult
	if err := json.Unmarshal([]byte(sanitizeJSONReply(reply)), &wire); err != nil {
		c.l.Warnf(ctx, "%s: %s: %v", LogPrefixClassify, LogMsgJSONParseFailed, err)
		return fallbackResult(), nil
	}

	intent, ok := model.ParseIntent(wire.Intent)
	if !ok {
		c.l.Warnf(ctx, "%s: "+LogMsgUnknownIntent, LogPrefixClassify, wire.Intent)
		return fallbackResult(), nil
	}

	result := Result{
		Intent:     intent,
		Confidence: clamp01(wire.Confidence),
	}
	c.l.Infof(ctx, "%s: "+LogMsgClassified, LogPrefixClassify, result.Intent, result.Confidence)
	return result, nil
}

var codeFenceRe = regexp.MustCompile("(?s)```(?:json)?\\s*(.+?)\\s*```")

// sanitizeJSONReply strips markdown code fences and surrounding prose that
// models often add around JSON output.
func sanitizeJSONReply(text string) string {
	if m := codeFenceRe.FindStringSubmatch(text); len(m) > 1 {
		return strings.TrimSpace(m[1])
	}

	start := strings.IndexByte(text, '{')
	if start == -1 {
		return text
	}
	end := strings.LastIndexByte(text, '}')
	if end == -1 || end < start {
		return text
	}
	return strings.TrimSpace(text[start : end+1])
}

func clamp01(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

package quality

import (
	"context"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
)

// Evaluate scores responseText as an answer to query. It always returns
// a usable Metrics: if anything inside panics, the fallback score sheet
// comes back instead.
func (e *Evaluator) Evaluate(ctx context.Context, responseText, query string, criteria Criteria) (m Metrics) {
	defer func() {
		if r := recover(); r != nil {
			e.l.Errorf(ctx, "%s: recovered: %v", LogPrefixEvaluate, r)
			m = Metrics{
				OverallScore:        FallbackOverall,
				SpecificityScore:    neutralScore,
				ActionabilityScore:  neutralScore,
				QuantificationScore: neutralScore,
				RelevanceScore:      neutralScore,
				CompletenessScore:   neutralScore,
				ClarityScore:        neutralScore,
				NoveltyScore:        neutralScore,
			}
		}
	}()

	key := memoKey(responseText, query, criteria.ContentType)
	if cached, ok := e.memo.Get(key); ok {
		return cached
	}

	m = e.ruleBased(responseText, query, criteria)

	if !criteria.DisableLLM && e.aux != nil {
		scores, err := e.llmPhase(ctx, responseText, query)
		if err != nil {
			e.l.Warnf(ctx, "%s: model phase failed, keeping rule scores: %v", LogPrefixEvaluate, err)
		} else {
			m.SpecificityScore = scores.Specificity
			m.QuantificationScore = scores.Quantification
			m.NoveltyScore = scores.Novelty
			// The model's actionability replaces the keyword count,
			// but generic-heavy text stays capped.
			m.ActionabilityScore = scores.Actionability
			if m.GenericPhraseCount >= 3 {
				m.ActionabilityScore = min(m.ActionabilityScore, 0.3)
			}
			m.Issues = append(m.Issues, scores.Issues...)
		}
	}

	m.OverallScore = e.aggregate(m)

	e.memo.Add(key, m)
	return m
}

// ruleBased runs the deterministic phase. LLM-only dimensions start
// neutral so the aggregate stays meaningful when the model phase is off.
func (e *Evaluator) ruleBased(responseText, query string, criteria Criteria) Metrics {
	m := Metrics{
		SpecificityScore:    neutralScore,
		QuantificationScore: neutralScore,
		NoveltyScore:        neutralScore,
	}

	m.GenericPhraseCount = genericPhraseCount(responseText)
	m.CompletenessScore = completenessScore(responseText)
	m.ClarityScore = clarityScore(responseText)
	m.RelevanceScore = relevanceScore(responseText, query)
	m.ActionabilityScore = actionabilityScore(responseText, criteria.ContentType, m.GenericPhraseCount)
	m.RedundancyRatio = redundancyRatio(responseText)
	m.CircularReasoningDetected = circularReasoning(responseText)
	m.HallucinationRisk = hallucinationRisk(responseText)

	if m.GenericPhraseCount > 2 {
		m.Issues = append(m.Issues, fmt.Sprintf("%d generic filler phrases", m.GenericPhraseCount))
	}
	if m.CircularReasoningDetected {
		m.Issues = append(m.Issues, "circular reasoning pattern")
	}
	if m.HallucinationRisk >= 0.3 {
		m.Issues = append(m.Issues, "unattributed specific claims")
	}
	return m
}

// aggregate folds the dimensions into the weighted overall score, then
// applies the penalty stack. Result is clamped to [0, 1].
func (e *Evaluator) aggregate(m Metrics) float64 {
	score := weightCompleteness*m.CompletenessScore +
		weightClarity*m.ClarityScore +
		weightRelevance*m.RelevanceScore +
		weightActionability*m.ActionabilityScore +
		weightSpecificity*m.SpecificityScore +
		weightNovelty*m.NoveltyScore +
		weightQuantification*m.QuantificationScore

	if m.GenericPhraseCount > 2 {
		score -= min(0.2, float64(m.GenericPhraseCount-2)*0.05)
	}
	if m.RedundancyRatio > 0.3 {
		score -= min(0.15, (m.RedundancyRatio-0.3)*0.5)
	}
	if m.CircularReasoningDetected {
		score -= 0.1
	}
	score -= m.HallucinationRisk * 0.2

	return clamp01(score)
}

func memoKey(responseText, query, contentType string) string {
	sum := sha256.Sum256([]byte(responseText + "\x00" + query + "\x00" + contentType))
	return hex.EncodeToString(sum[:])
}

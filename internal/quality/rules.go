package quality

import (
	"regexp"
	"strings"
)

var (
	sentenceSplitRe = regexp.MustCompile(`[.!?]+`)
	yearRe          = regexp.MustCompile(`\b(19|20)\d{2}\b`)
	priceRe         = regexp.MustCompile(`\$\d+(?:\.\d+)?`)
	percentRe       = regexp.MustCompile(`\b\d+(?:\.\d+)?%`)
	tokenTrimRe     = regexp.MustCompile(`^[^a-z0-9$]+|[^a-z0-9%]+$`)
)

// tokenize lowercases and splits content into punctuation-trimmed words.
func tokenize(content string) []string {
	fields := strings.Fields(strings.ToLower(content))
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		if t := tokenTrimRe.ReplaceAllString(f, ""); t != "" {
			tokens = append(tokens, t)
		}
	}
	return tokens
}

// completenessScore buckets by raw length: a ten-character reply answers
// nothing regardless of its content.
func completenessScore(content string) float64 {
	n := len(content)
	switch {
	case n < 10:
		return 0.1
	case n < 50:
		return 0.5
	default:
		return min(1.0, float64(n)/200.0)
	}
}

// clarityScore rates average sentence length. The optimal band is 14-25
// words; shorter reads choppy, longer reads dense. Discourse connectives
// each shave a little off.
func clarityScore(content string) float64 {
	sentences := sentenceSplitRe.Split(content, -1)

	var sentenceCount, wordCount int
	for _, s := range sentences {
		words := strings.Fields(s)
		if len(words) == 0 {
			continue
		}
		sentenceCount++
		wordCount += len(words)
	}
	if sentenceCount == 0 {
		return 0.1
	}

	avg := float64(wordCount) / float64(sentenceCount)

	var score float64
	switch {
	case avg >= 14 && avg <= 25:
		score = 1.0
	case avg < 14:
		score = 0.5 + 0.5*avg/14
	default:
		score = max(0.3, 1.0-(avg-25)*0.03)
	}

	lower := strings.ToLower(content)
	for _, conn := range discourseConnectives {
		score -= 0.05 * float64(strings.Count(lower, conn))
	}
	return max(0.1, score)
}

// genericPhraseCount counts distinct filler phrases present.
func genericPhraseCount(content string) int {
	lower := strings.ToLower(content)
	count := 0
	for _, p := range genericPhrases {
		if strings.Contains(lower, p) {
			count++
		}
	}
	return count
}

// actionabilityScore counts action keyword tokens, scaled by content
// type. Generic-heavy responses are capped: filler is not actionable.
func actionabilityScore(content, contentType string, genericCount int) float64 {
	tokens := tokenize(content)
	present := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		present[t] = true
	}

	hits := 0
	for _, kw := range actionKeywords {
		if present[kw] {
			hits++
		}
	}

	score := min(1.0, float64(hits)*0.15)
	switch contentType {
	case "advice", "recommendation":
		// full weight
	case "analysis":
		score *= 0.9
	default:
		score *= 0.8
	}

	if genericCount >= 3 {
		score = min(score, 0.3)
	}
	return score
}

// relevanceScore is query/response word overlap, scaled 2x and capped.
func relevanceScore(content, query string) float64 {
	queryWords := significantTokens(query)
	if len(queryWords) == 0 {
		return neutralScore
	}

	contentSet := make(map[string]bool)
	for _, t := range significantTokens(content) {
		contentSet[t] = true
	}

	overlap := 0
	for _, qw := range queryWords {
		if contentSet[qw] {
			overlap++
		}
	}
	return min(1.0, 2.0*float64(overlap)/float64(len(queryWords)))
}

// significantTokens drops words too short to carry meaning.
func significantTokens(text string) []string {
	var out []string
	for _, t := range tokenize(text) {
		if len(t) > 2 {
			out = append(out, t)
		}
	}
	return out
}

// redundancyRatio is 1 - unique/total words; 0 for trivially short text.
func redundancyRatio(content string) float64 {
	tokens := tokenize(content)
	if len(tokens) < 3 {
		return 0
	}
	unique := make(map[string]bool, len(tokens))
	for _, t := range tokens {
		unique[t] = true
	}
	return 1.0 - float64(len(unique))/float64(len(tokens))
}

// circularReasoning flags self-referential justification patterns.
func circularReasoning(content string) bool {
	lower := strings.ToLower(content)
	for _, p := range circularPatterns {
		if strings.Contains(lower, p) {
			return true
		}
	}
	return false
}

// hallucinationRisk accumulates from specific-looking claims (years,
// exact prices, exact percentages) with no attribution, and from
// unqualified absolute language. Capped at 1.0.
func hallucinationRisk(content string) float64 {
	lower := strings.ToLower(content)

	risk := 0.0

	specifics := len(yearRe.FindAllString(content, -1)) +
		len(priceRe.FindAllString(content, -1)) +
		len(percentRe.FindAllString(content, -1))
	if specifics > 0 && !hasAttribution(lower) {
		risk += min(0.6, 0.1*float64(specifics))
	}

	for _, t := range tokenize(content) {
		for _, abs := range absoluteWords {
			if t == abs || strings.HasPrefix(t, "guarante") && abs == "guarante" {
				risk += 0.15
				break
			}
		}
	}

	return min(1.0, risk)
}

func hasAttribution(lower string) bool {
	for _, m := range attributionMarkers {
		if strings.Contains(lower, m) {
			return true
		}
	}
	return false
}

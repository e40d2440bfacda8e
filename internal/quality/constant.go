package quality

import "time"

// Log prefixes
const (
	LogPrefixEvaluate = "internal.quality.Evaluate"
)

// Aggregation weights. They sum to 1.0.
const (
	weightCompleteness   = 0.25
	weightClarity        = 0.20
	weightRelevance      = 0.20
	weightActionability  = 0.15
	weightSpecificity    = 0.10
	weightNovelty        = 0.05
	weightQuantification = 0.05
)

const (
	// FallbackOverall is reported when the whole evaluation fails.
	// Scoring must never block the pipeline.
	FallbackOverall = 0.5

	// neutralScore fills LLM-phase dimensions when that phase is
	// skipped or fails.
	neutralScore = 0.5

	// DefaultLLMTimeout bounds the auxiliary model call.
	DefaultLLMTimeout = 15 * time.Second

	evalTemperature = 0.0
	evalMaxTokens   = 512

	// evalCacheSize / evalCacheTTL bound the evaluation memo cache.
	// The cache is purely an optimization for identical re-evaluations.
	evalCacheSize = 256
	evalCacheTTL  = 10 * time.Minute
)

// genericPhrases are filler phrases that signal a non-answer.
var genericPhrases = []string{
	"it depends",
	"best practices",
	"it is important to",
	"there are many factors",
	"in general",
	"as you may know",
	"at the end of the day",
	"various options",
	"it is worth noting",
	"in today's world",
}

// actionKeywords signal concrete, executable advice. Matched as whole
// tokens so "because" does not count as "use".
var actionKeywords = []string{
	"should", "recommend", "consider", "configure", "enable",
	"migrate", "reduce", "implement", "upgrade", "switch", "use",
}

// discourseConnectives inflate sentences without adding content; each
// occurrence slightly lowers the clarity score.
var discourseConnectives = []string{
	"however", "moreover", "furthermore", "nevertheless", "consequently",
}

// circularPatterns flag self-referential reasoning.
var circularPatterns = []string{
	"because it is",
	"due to the fact that",
	"is because it is",
	"the reason is that it is",
}

// attributionMarkers qualify specific-looking claims.
var attributionMarkers = []string{
	"according to", "based on", "as reported", "source:", "per the",
}

// absoluteWords are unqualified absolute language; "guarante" is a prefix
// covering guarantee/guaranteed/guarantees.
var absoluteWords = []string{
	"definitely", "certainly", "undoubtedly", "always", "never", "guarante",
}

// evalPrompt is sent to the auxiliary model. A different, cheaper model
// than the one that produced the response scores it, to reduce
// self-grading bias.
const evalPrompt = `You are a strict response quality auditor.

Rate the RESPONSE below as an answer to the QUERY. Score each dimension
from 0.0 (worst) to 1.0 (best) and list concrete issues.

QUERY: %q

RESPONSE:
%s

Return JSON only:
{"specificity": <float>, "actionability": <float>, "quantification": <float>, "novelty": <float>, "issues": ["..."]}`

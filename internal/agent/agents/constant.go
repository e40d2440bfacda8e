package agents

// Agent names as referenced by plan steps.
const (
	NameResearcher   = "researcher"
	NameDomainExpert = "domain_expert"
	NameAnalyst      = "analyst"
	NameValidator    = "validator"
)

// Generation settings. Agents favor low temperature: their output feeds
// downstream steps that expect stable, factual text.
const (
	agentTemperature = 0.3
	agentMaxTokens   = 2048
)

// Prompts
const (
	promptResearch = `You are a cloud infrastructure research specialist.

Research the following request and produce a concise set of findings.
%s
Request: %q

Rules:
- Report current, concrete facts (prices, instance types, regions, benchmarks).
- Mark every specific figure with its source ("according to ...").
- If a fact cannot be verified, say so instead of guessing.`

	promptDomainExpert = `You are a senior %s expert advising on cloud infrastructure decisions.

Review the request below and contribute domain-specific guidance.
%s
Request: %q

Keep the guidance concrete and tied to the request. Flag any assumption
the final answer must state explicitly.`

	promptAnalysis = `You are a cloud cost analyst. Perform a %s.

%s
Request: %q

Structure the output as: key inputs, calculation or comparison, result,
and caveats. Quantify wherever the inputs allow it.`

	promptValidate = `You are a response validator for a cloud advisory service.

Draft material assembled so far:
%s
Original request: %q

Produce the final user-facing answer. Correct factual inconsistencies,
remove unsupported absolute claims, and keep citations that the research
provided. Answer directly; do not mention this validation step.`

	// requireCitationsNote is appended to research prompts when the plan
	// demands attributed findings.
	requireCitationsNote = "Citations are mandatory: every claim needs an explicit source.\n"
)

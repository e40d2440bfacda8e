package usecase

import (
	"cloud-advisor-chat/internal/cache"
	"cloud-advisor-chat/internal/classifier"
	"cloud-advisor-chat/internal/confidence"
	"cloud-advisor-chat/internal/executor"
	"cloud-advisor-chat/internal/planner"
	"cloud-advisor-chat/internal/quality"
	"cloud-advisor-chat/internal/trace"
	"cloud-advisor-chat/pkg/llmprovider"
	pkgLog "cloud-advisor-chat/pkg/log"
)

type implUseCase struct {
	l          pkgLog.Logger
	llm        *llmprovider.Manager
	classifier classifier.Classifier
	confidence *confidence.Manager
	planner    *planner.Planner
	executor   *executor.Executor
	evaluator  *quality.Evaluator
	store      cache.Store
	transport  trace.Transport

	// advancedPlanning gates the full plan/escalate path. When off the
	// pipeline still answers, with a single direct model step.
	advancedPlanning bool
}

// Options carries the orchestrator's behavior switches.
type Options struct {
	AdvancedPlanning bool
}

// New creates a new chat orchestration UseCase instance.
func New(
	l pkgLog.Logger,
	llm *llmprovider.Manager,
	cls classifier.Classifier,
	cm *confidence.Manager,
	pl *planner.Planner,
	ex *executor.Executor,
	ev *quality.Evaluator,
	store cache.Store,
	transport trace.Transport,
	opts Options,
) *implUseCase {
	return &implUseCase{
		l:                l,
		llm:              llm,
		classifier:       cls,
		confidence:       cm,
		planner:          pl,
		executor:         ex,
		evaluator:        ev,
		store:            store,
		transport:        transport,
		advancedPlanning: opts.AdvancedPlanning,
	}
}

package quality

import (
	"github.com/hashicorp/golang-lru/v2/expirable"

	"cloud-advisor-chat/pkg/llmprovider"
	"cloud-advisor-chat/pkg/log"
)

// Evaluator scores responses in two phases: deterministic rules, then an
// auxiliary model for the subjective dimensions. Evaluation is advisory;
// it never fails the request it scores.
type Evaluator struct {
	l    log.Logger
	aux  *llmprovider.Manager
	memo *expirable.LRU[string, Metrics]
}

// New builds an Evaluator. aux may be nil, in which case the model phase
// is skipped and its dimensions stay neutral.
func New(l log.Logger, aux *llmprovider.Manager) *Evaluator {
	return &Evaluator{
		l:    l,
		aux:  aux,
		memo: expirable.NewLRU[string, Metrics](evalCacheSize, nil, evalCacheTTL),
	}
}

package classifier

import (
	"context"

	"cloud-advisor-chat/pkg/llmprovider"
	"cloud-advisor-chat/pkg/log"
)

// Classifier maps raw user text to an intent with a confidence score.
type Classifier interface {
	Classify(ctx context.Context, requestText string) (Result, error)
}

// semanticClassifier classifies user intent using an LLM.
type semanticClassifier struct {
	llm *llmprovider.Manager
	l   log.Logger
}

var _ Classifier = (*semanticClassifier)(nil)

// New creates a new semantic classifier.
func New(llm *llmprovider.Manager, l log.Logger) *semanticClassifier {
	return &semanticClassifier{
		llm: llm,
		l:   l,
	}
}

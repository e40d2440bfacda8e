package orchestrator

import (
	"context"

	"cloud-advisor-chat/internal/model"
)

// UseCase is the single entry point of the advisory pipeline.
type UseCase interface {
	// Handle runs one request end to end. It never returns an error:
	// every failure mode is folded into the output envelope so the
	// caller always gets a well-formed response with whatever trace
	// was collected.
	Handle(ctx context.Context, sc model.Scope, input ChatInput) ChatOutput
}

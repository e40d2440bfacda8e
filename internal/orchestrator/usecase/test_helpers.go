package usecase

import (
	"context"
	"time"

	"cloud-advisor-chat/internal/agent"
	"cloud-advisor-chat/internal/agent/agents"
	"cloud-advisor-chat/internal/cache"
	"cloud-advisor-chat/internal/classifier"
	"cloud-advisor-chat/internal/confidence"
	"cloud-advisor-chat/internal/executor"
	"cloud-advisor-chat/internal/planner"
	"cloud-advisor-chat/internal/quality"
	"cloud-advisor-chat/pkg/llmprovider"
)

type mockLogger struct{}

func (m *mockLogger) Debug(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Debugf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Info(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Infof(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Warn(ctx context.Context, arg ...any)                     {}
func (m *mockLogger) Warnf(ctx context.Context, template string, arg ...any)   {}
func (m *mockLogger) Error(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Errorf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) Fatal(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Fatalf(ctx context.Context, template string, arg ...any)  {}
func (m *mockLogger) DPanic(ctx context.Context, arg ...any)                   {}
func (m *mockLogger) DPanicf(ctx context.Context, template string, arg ...any) {}
func (m *mockLogger) Panic(ctx context.Context, arg ...any)                    {}
func (m *mockLogger) Panicf(ctx context.Context, template string, arg ...any)  {}

// scriptedClassifier returns a fixed result, error, or panics.
type scriptedClassifier struct {
	result   classifier.Result
	err      error
	panicMsg string
	calls    int
}

func (c *scriptedClassifier) Classify(ctx context.Context, requestText string) (classifier.Result, error) {
	c.calls++
	if c.panicMsg != "" {
		panic(c.panicMsg)
	}
	if c.err != nil {
		return classifier.Result{}, c.err
	}
	return c.result, nil
}

// stubAgent answers every action with a fixed string.
type stubAgent struct {
	name  string
	reply string
}

func (a *stubAgent) Name() string { return a.name }

func (a *stubAgent) Execute(ctx context.Context, action string, params map[string]interface{}, state map[string]interface{}) (interface{}, error) {
	return a.reply, nil
}

// scriptedProvider is a canned LLM provider for the direct-answer path.
type scriptedProvider struct {
	reply string
	err   error
}

func (p *scriptedProvider) GenerateContent(ctx context.Context, req *llmprovider.Request) (*llmprovider.Response, error) {
	if p.err != nil {
		return nil, p.err
	}
	return &llmprovider.Response{
		Text:         p.reply,
		ProviderName: "scripted",
		ModelName:    "scripted-model",
		Usage:        &llmprovider.Usage{},
	}, nil
}

func (p *scriptedProvider) Name() string  { return "scripted" }
func (p *scriptedProvider) Model() string { return "scripted-model" }

type useCaseParams struct {
	classifier classifier.Classifier
	store      cache.Store
	agents     []agent.Handler
	realAgents bool
	llmReply   string
	advanced   bool
}

func newTestUseCase(p useCaseParams) *implUseCase {
	l := &mockLogger{}

	llm := llmprovider.NewManager(
		[]llmprovider.Provider{&scriptedProvider{reply: p.llmReply}},
		&llmprovider.Config{FallbackEnabled: false, RetryAttempts: 1, RetryDelay: time.Millisecond},
		l,
	)

	registry := agent.NewRegistry()
	for _, h := range p.agents {
		registry.Register(h)
	}
	if p.realAgents {
		registry.Register(agents.NewResearcher(llm, l))
		registry.Register(agents.NewDomainExpert(llm, l))
		registry.Register(agents.NewAnalyst(llm, l))
		registry.Register(agents.NewValidator(llm, l))
	}
	engine := agent.NewEngine(registry, l)

	cm := confidence.New()
	store := p.store
	if store == nil {
		store = cache.NewMemory()
	}

	return New(
		l,
		llm,
		p.classifier,
		cm,
		planner.New(cm),
		executor.New(registry, engine, time.Second, l),
		quality.New(l, nil),
		store,
		nil,
		Options{AdvancedPlanning: p.advanced},
	)
}

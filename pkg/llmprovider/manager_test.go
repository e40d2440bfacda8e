package llmprovider

import (
	"context"
	"errors"
	"testing"
	"time"
)

// mockLogger satisfies log.Logger for tests.
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

// mockProvider is a scriptable Provider implementation.
type mockProvider struct {
	name     string
	failures int // fail this many calls before succeeding
	calls    int
	text     string
	err      error
}

func (p *mockProvider) GenerateContent(ctx context.Context, req *Request) (*Response, error) {
	p.calls++
	if p.err != nil {
		return nil, p.err
	}
	if p.calls <= p.failures {
		return nil, errors.New("transient failure")
	}
	return &Response{
		Text:         p.text,
		ProviderName: p.name,
		ModelName:    "test-model",
		Usage:        &Usage{},
	}, nil
}

func (p *mockProvider) Name() string  { return p.name }
func (p *mockProvider) Model() string { return "test-model" }

func newTestManager(providers []Provider) *Manager {
	return NewManager(providers, &Config{
		FallbackEnabled: true,
		RetryAttempts:   2,
		RetryDelay:      time.Millisecond,
	}, &mockLogger{})
}

func TestManager_Ask(t *testing.T) {
	m := newTestManager([]Provider{&mockProvider{name: "gemini", text: "hello"}})

	text, err := m.Ask(context.Background(), "hi", 0.1, 256)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if text != "hello" {
		t.Errorf("expected %q, got %q", "hello", text)
	}
}

func TestManager_RetryThenSuccess(t *testing.T) {
	p := &mockProvider{name: "gemini", failures: 1, text: "ok"}
	m := newTestManager([]Provider{p})

	resp, err := m.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Text: "hi"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "ok" {
		t.Errorf("expected ok, got %q", resp.Text)
	}
	if p.calls != 2 {
		t.Errorf("expected 2 calls (1 failure + 1 success), got %d", p.calls)
	}
}

func TestManager_FallbackToSecondProvider(t *testing.T) {
	primary := &mockProvider{name: "gemini", err: errors.New("quota exceeded")}
	secondary := &mockProvider{name: "deepseek", text: "fallback answer"}
	m := newTestManager([]Provider{primary, secondary})

	resp, err := m.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Text: "hi"}},
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if resp.Text != "fallback answer" {
		t.Errorf("expected fallback answer, got %q", resp.Text)
	}
	if resp.ProviderName != "deepseek" {
		t.Errorf("expected deepseek, got %s", resp.ProviderName)
	}
}

func TestManager_AllProvidersFail(t *testing.T) {
	m := newTestManager([]Provider{
		&mockProvider{name: "gemini", err: errors.New("down")},
		&mockProvider{name: "deepseek", err: errors.New("also down")},
	})

	_, err := m.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Text: "hi"}},
	})
	if !errors.Is(err, ErrAllProvidersFailed) {
		t.Errorf("expected ErrAllProvidersFailed, got %v", err)
	}
}

func TestManager_NoProviders(t *testing.T) {
	m := newTestManager(nil)

	_, err := m.GenerateContent(context.Background(), &Request{})
	if !errors.Is(err, ErrNoProvidersConfigured) {
		t.Errorf("expected ErrNoProvidersConfigured, got %v", err)
	}
}

func TestManager_FallbackDisabled(t *testing.T) {
	primary := &mockProvider{name: "gemini", err: errors.New("down")}
	secondary := &mockProvider{name: "deepseek", text: "never reached"}
	m := NewManager([]Provider{primary, secondary}, &Config{
		FallbackEnabled: false,
		RetryAttempts:   1,
	}, &mockLogger{})

	_, err := m.GenerateContent(context.Background(), &Request{
		Messages: []Message{{Role: "user", Text: "hi"}},
	})
	if err == nil {
		t.Fatal("expected error when fallback disabled and primary fails")
	}
	if secondary.calls != 0 {
		t.Errorf("secondary should not be called, got %d calls", secondary.calls)
	}
}

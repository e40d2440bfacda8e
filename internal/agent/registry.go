package agent

import "context"

// Handler executes actions on behalf of a named agent.
type Handler interface {
	// Name returns the agent name used in plan steps.
	Name() string

	// Execute runs one action. state carries data accumulated by earlier
	// pipeline steps; handlers read it but must not delete from it.
	Execute(ctx context.Context, action string, params map[string]interface{}, state map[string]interface{}) (interface{}, error)
}

// Registry manages available agents. It is populated once at startup and
// read-only afterwards, so lookups need no locking.
type Registry struct {
	handlers map[string]Handler
}

// NewRegistry creates a new agent registry.
func NewRegistry() *Registry {
	return &Registry{
		handlers: make(map[string]Handler),
	}
}

// Register adds an agent to the registry.
func (r *Registry) Register(h Handler) {
	r.handlers[h.Name()] = h
}

// Get retrieves an agent by name.
func (r *Registry) Get(name string) (Handler, bool) {
	h, ok := r.handlers[name]
	return h, ok
}

// Has reports whether an agent is currently registered.
func (r *Registry) Has(name string) bool {
	_, ok := r.handlers[name]
	return ok
}

// Names returns the names of all registered agents.
func (r *Registry) Names() []string {
	names := make([]string, 0, len(r.handlers))
	for name := range r.handlers {
		names = append(names, name)
	}
	return names
}

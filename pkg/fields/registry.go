// Package fields maps field-type tags to renderers. A renderer collects one
// field's answer through a Prompter, the minimal prompt surface the terminal
// driver (or any host-supplied implementation) provides. Hosts can override
// any built-in and register renderers for custom types.
package fields

import (
	"context"
	"sync"

	"github.com/goliatone/go-gravity/pkg/answers"
	"github.com/goliatone/go-gravity/pkg/schema"
)

// Prompter is the prompt surface renderers draw on. The tui package ships a
// survey-backed implementation; tests use a scripted stub.
type Prompter interface {
	Input(ctx context.Context, message, def, help string) (string, error)
	Confirm(ctx context.Context, message string, def bool) (bool, error)
	Select(ctx context.Context, message string, options []string, defaultIndex int) (int, error)
	MultiSelect(ctx context.Context, message string, options []string, defaults []int) ([]int, error)
	TextArea(ctx context.Context, message, def string) (string, error)
	Info(ctx context.Context, message string) error
}

// Renderer collects an answer for a single field. current is the field's
// present value and errMsg any server-side validation message from the last
// submit attempt.
type Renderer func(ctx context.Context, p Prompter, field *schema.Field, current answers.Value, errMsg string) (answers.Value, error)

// Registry resolves renderers by field-type tag. Built-ins are installed
// first and caller overrides merged on top, so an override always wins.
type Registry struct {
	mu        sync.RWMutex
	renderers map[string]Renderer
}

// NewRegistry builds a registry with the built-in renderers plus any
// overrides.
func NewRegistry(overrides map[string]Renderer) *Registry {
	r := &Registry{renderers: make(map[string]Renderer)}
	registerBuiltins(r)
	for typeTag, renderer := range overrides {
		r.Register(typeTag, renderer)
	}
	return r
}

// Register installs or replaces the renderer for a type tag.
func (r *Registry) Register(typeTag string, renderer Renderer) {
	if typeTag == "" || renderer == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	r.renderers[typeTag] = renderer
}

// Resolve returns the renderer for a type tag. Unknown tags fall back to the
// plain text renderer; presentational tags without an explicit override
// resolve to nothing and are excluded from answer collection.
func (r *Registry) Resolve(typeTag string) (Renderer, bool) {
	r.mu.RLock()
	renderer, ok := r.renderers[typeTag]
	r.mu.RUnlock()
	if ok {
		return renderer, true
	}
	if schema.IsPresentationalType(typeTag) || typeTag == "hidden" {
		return nil, false
	}
	return renderText, true
}

// Package tui renders a form session as a sequence of terminal prompts. It
// is the reference renderer: field prompts resolve through the fields
// registry, answers flow through the controller, and server-side validation
// drives the re-prompt loop.
package tui

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/goliatone/go-gravity/internal/htmltext"
	"github.com/goliatone/go-gravity/pkg/controller"
	"github.com/goliatone/go-gravity/pkg/fields"
)

// Option customises the renderer.
type Option func(*Renderer)

// WithPrompter swaps the prompt implementation, mainly for tests.
func WithPrompter(p fields.Prompter) Option {
	return func(r *Renderer) {
		if p != nil {
			r.prompter = p
		}
	}
}

// WithRegistry injects a renderer registry; the built-in defaults are used
// when omitted.
func WithRegistry(registry *fields.Registry) Option {
	return func(r *Renderer) {
		if registry != nil {
			r.registry = registry
		}
	}
}

// WithOutput redirects the renderer's own output (titles, banners, summary).
func WithOutput(out io.Writer) Option {
	return func(r *Renderer) {
		if out != nil {
			r.out = out
		}
	}
}

// Renderer walks a form session interactively.
type Renderer struct {
	prompter fields.Prompter
	registry *fields.Registry
	out      io.Writer
}

// New builds a Renderer with the survey prompter and default registry.
func New(opts ...Option) *Renderer {
	r := &Renderer{
		prompter: NewPrompter(),
		registry: fields.NewRegistry(nil),
		out:      os.Stdout,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(r)
		}
	}
	return r
}

// Run loads the form, collects answers for every visible field in schema
// order, submits, and on server-side validation failures offers to re-edit
// the rejected fields. It returns nil after a confirmed submission or a
// declined retry.
func (r *Renderer) Run(ctx context.Context, ctrl *controller.Controller) error {
	if state := ctrl.Load(ctx); state == controller.StateLoadError {
		return fmt.Errorf("tui: %s", ctrl.FormError())
	}

	form := ctrl.Form()
	fmt.Fprintln(r.out, form.Title)
	if form.Description != "" {
		fmt.Fprintln(r.out, htmltext.Flatten(form.Description))
	}

	if err := r.collect(ctx, ctrl, false); err != nil {
		return err
	}

	for {
		switch ctrl.Submit(ctx) {
		case controller.StateConfirmed:
			r.printConfirmation(ctrl)
			return nil
		case controller.StateReady:
			fmt.Fprintln(r.out, ctrl.FormError())
			if len(ctrl.Errors()) == 0 {
				// Transport failure: nothing field-level to fix.
				retry, err := r.prompter.Confirm(ctx, "Try again?", true)
				if err != nil || !retry {
					return err
				}
				continue
			}
			retry, err := r.prompter.Confirm(ctx, "Fix the highlighted answers and resubmit?", true)
			if err != nil || !retry {
				return err
			}
			if err := r.collect(ctx, ctrl, true); err != nil {
				return err
			}
		default:
			return nil
		}
	}
}

// collect prompts the currently visible fields. When onlyErrors is set it
// revisits just the fields the server rejected.
func (r *Renderer) collect(ctx context.Context, ctrl *controller.Controller, onlyErrors bool) error {
	form := ctrl.Form()
	for i := range form.Fields {
		field := form.Fields[i]
		// Visibility is re-checked per field so answers given earlier in
		// this pass can reveal or hide what follows.
		if !ctrl.IsVisible(field.Key()) {
			continue
		}
		errMsg := ctrl.FieldError(field.Key())
		if onlyErrors && errMsg == "" {
			continue
		}
		renderer, ok := r.registry.Resolve(field.Type)
		if !ok {
			continue
		}
		value, err := renderer(ctx, r.prompter, &field, ctrl.Value(field.Key()), htmltext.Flatten(errMsg))
		if err != nil {
			return err
		}
		ctrl.SetValue(field.Key(), value)
	}
	return nil
}

func (r *Renderer) printConfirmation(ctrl *controller.Controller) {
	fmt.Fprintln(r.out)
	fmt.Fprintln(r.out, htmltext.Flatten(ctrl.ConfirmationMessage()))

	summary := ctrl.Summary()
	if len(summary) == 0 {
		return
	}
	fmt.Fprintln(r.out)
	for _, entry := range summary {
		fmt.Fprintf(r.out, "%s: %s\n", entry.Name, entry.Value)
	}
}

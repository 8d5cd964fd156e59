package controller

import (
	"github.com/rs/zerolog"

	"github.com/goliatone/go-gravity/pkg/answers"
	"github.com/goliatone/go-gravity/pkg/submission"
	"github.com/goliatone/go-gravity/pkg/visibility"
)

// Option customises a Controller before first use.
type Option func(*Controller)

// WithInitialValues seeds answer state for specific field ids. These win over
// schema defaults during initialisation.
func WithInitialValues(values answers.State) Option {
	return func(c *Controller) {
		c.initial = values.Clone()
	}
}

// WithHandlers registers custom submission handlers keyed by field type.
// Handled types bypass the built-in formatting table entirely.
func WithHandlers(handlers map[string]submission.Handler) Option {
	return func(c *Controller) {
		c.handlers = handlers
	}
}

// WithEvaluator injects a visibility evaluator; the default one is used when
// omitted.
func WithEvaluator(eval *visibility.Evaluator) Option {
	return func(c *Controller) {
		if eval != nil {
			c.eval = eval
		}
	}
}

// WithOnSubmit registers a hook fired once after a confirmed submission, with
// the computed summary, the raw answer state, and the server-assigned entry
// id.
func WithOnSubmit(fn func(summary []submission.SummaryEntry, state answers.State, entryID int)) Option {
	return func(c *Controller) {
		c.onSubmit = fn
	}
}

// WithOnValidationError registers a hook fired whenever the server rejects a
// payload, with the raw validation messages.
func WithOnValidationError(fn func(messages map[string]string)) Option {
	return func(c *Controller) {
		c.onValidationError = fn
	}
}

// WithLogger attaches a structured logger; the default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Controller) {
		c.log = logger
	}
}

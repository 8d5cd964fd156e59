// Package controller drives one form session: load the schema, hold answer
// state, and run the validate-then-submit flow. All failures are absorbed
// into user-visible state; nothing escapes except through the explicit
// callback hooks.
package controller

import (
	"context"
	"sort"
	"strings"
	"sync"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-gravity/pkg/answers"
	"github.com/goliatone/go-gravity/pkg/schema"
	"github.com/goliatone/go-gravity/pkg/submission"
	"github.com/goliatone/go-gravity/pkg/visibility"
)

// User-facing messages for the generic failure paths.
const (
	msgCorrectErrors = "Please correct the errors below and try again."
	msgSubmitFailed  = "An error occurred while submitting the form. Please try again."
	msgLoadFailed    = "Error loading form. Please try again later."
	msgSubmitSuccess = "Form submitted successfully!"
	msgPaymentFields = "This form contains payment fields, which are not supported."
	msgPostFields    = "This form contains post fields, which are not supported."
)

// API is the client surface the controller consumes. *client.Client satisfies
// it; tests substitute fakes.
type API interface {
	FetchForm(ctx context.Context, formID int) (*schema.Form, error)
	Validate(ctx context.Context, formID int, payload submission.Payload) (*schema.SubmissionResult, error)
	Submit(ctx context.Context, formID int, payload submission.Payload) (*schema.SubmissionResult, error)
}

// Controller owns all mutable session state. Methods are safe for concurrent
// use; the state machine itself guarantees at most one submit in flight.
type Controller struct {
	mu sync.Mutex

	api    API
	formID int

	state        State
	loadStarted  bool
	form         *schema.Form
	values       answers.State
	fieldErrors  map[string]string
	formError    string
	confirmation string
	summary      []submission.SummaryEntry
	entryID      int

	eval      *visibility.Evaluator
	formatter *submission.Formatter
	handlers  map[string]submission.Handler
	initial   answers.State

	onSubmit          func([]submission.SummaryEntry, answers.State, int)
	onValidationError func(map[string]string)
	log               zerolog.Logger
}

// New builds a Controller in StateLoading. Call Load to fetch the schema.
func New(api API, formID int, opts ...Option) *Controller {
	c := &Controller{
		api:         api,
		formID:      formID,
		state:       StateLoading,
		fieldErrors: make(map[string]string),
		eval:        visibility.New(),
		log:         zerolog.Nop(),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(c)
		}
	}
	c.formatter = submission.NewFormatter(c.eval, c.handlers)
	return c
}

// Load fetches the form schema and initialises answer state. Schemas carrying
// payment or post fields never reach StateReady. Load is a no-op once the
// controller has left StateLoading, and a second concurrent Load does not
// fetch twice.
func (c *Controller) Load(ctx context.Context) State {
	c.mu.Lock()
	if c.state != StateLoading || c.loadStarted {
		state := c.state
		c.mu.Unlock()
		return state
	}
	c.loadStarted = true
	c.mu.Unlock()

	form, err := c.api.FetchForm(ctx, c.formID)

	c.mu.Lock()
	defer c.mu.Unlock()

	if err != nil {
		c.log.Warn().Int("form_id", c.formID).Err(err).Msg("form load failed")
		c.state = StateLoadError
		c.formError = msgLoadFailed
		return c.state
	}

	if unsupported := form.UnsupportedField(); unsupported != nil {
		message := msgPostFields
		if schema.IsPaymentType(unsupported.Type) {
			message = msgPaymentFields
		}
		c.log.Warn().
			Int("form_id", c.formID).
			Str("field_type", unsupported.Type).
			Msg("form contains unsupported fields")
		c.state = StateLoadError
		c.formError = message
		return c.state
	}

	c.form = form
	c.values = answers.Init(form, c.initial)
	c.state = StateReady
	return c.state
}

// SetValue records an edit and clears any standing validation error for that
// field. Errors are only recomputed wholesale on the next submit.
func (c *Controller) SetValue(fieldID string, value answers.Value) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != StateReady || c.values == nil {
		return
	}
	c.values.Set(fieldID, value)
	delete(c.fieldErrors, fieldID)
}

// Submit runs the validate-then-submit pair. It is a no-op unless the session
// is Ready, which also makes rapid double submits issue at most one request
// pair. The returned value is the state after the attempt resolves.
func (c *Controller) Submit(ctx context.Context) State {
	c.mu.Lock()
	if c.state != StateReady {
		state := c.state
		c.mu.Unlock()
		return state
	}
	c.state = StateSubmitting
	c.fieldErrors = make(map[string]string)
	c.formError = ""
	form := c.form
	snapshot := c.values.Clone()
	c.mu.Unlock()

	payload, summary := c.formatter.Format(form, snapshot)

	validation, err := c.api.Validate(ctx, c.formID, payload)
	if err != nil {
		return c.failSubmit(err)
	}
	if !validation.IsValid {
		return c.rejectSubmit(validation.ValidationMessages)
	}

	result, err := c.api.Submit(ctx, c.formID, payload)
	if err != nil {
		return c.failSubmit(err)
	}
	if !result.IsValid {
		return c.rejectSubmit(result.ValidationMessages)
	}

	c.mu.Lock()
	c.state = StateConfirmed
	c.confirmation = resolveConfirmation(form, result)
	c.summary = summary
	c.entryID = result.EntryID
	onSubmit := c.onSubmit
	state := c.values.Clone()
	entryID := c.entryID
	c.mu.Unlock()

	c.log.Info().Int("form_id", c.formID).Int("entry_id", entryID).Msg("form submitted")
	if onSubmit != nil {
		onSubmit(summary, state, entryID)
	}
	return StateConfirmed
}

// failSubmit handles transport failures: back to Ready with a generic
// top-level message and answer state untouched.
func (c *Controller) failSubmit(err error) State {
	c.log.Warn().Int("form_id", c.formID).Err(err).Msg("submit attempt failed")
	c.mu.Lock()
	c.state = StateReady
	c.formError = msgSubmitFailed
	c.mu.Unlock()
	return StateReady
}

// rejectSubmit handles server-reported validation failures from either
// endpoint: errors are keyed back to their root field ids, unrecognised keys
// surface as form-level messages, and the hook fires with the raw payload.
func (c *Controller) rejectSubmit(messages schema.Messages) State {
	c.mu.Lock()
	fieldErrors, extra := normalizeErrors(c.form, messages)
	c.fieldErrors = fieldErrors
	c.formError = msgCorrectErrors
	if extra != "" {
		c.formError += " " + extra
	}
	c.state = StateReady
	hook := c.onValidationError
	c.mu.Unlock()

	if hook != nil {
		hook(map[string]string(messages))
	}
	return StateReady
}

// normalizeErrors folds wire-shaped keys (input_4_1, 4.3) down to the owning
// field id. Keys that match no field become form-level text so messages are
// never dropped.
func normalizeErrors(form *schema.Form, messages schema.Messages) (map[string]string, string) {
	fieldErrors := make(map[string]string, len(messages))
	var orphans []string

	keys := make([]string, 0, len(messages))
	for key := range messages {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	for _, key := range keys {
		message := strings.TrimSpace(messages[key])
		if message == "" {
			continue
		}
		root := fieldKeyRoot(key)
		if form != nil && form.FieldByID(root) != nil {
			if _, taken := fieldErrors[root]; !taken {
				fieldErrors[root] = message
			}
			continue
		}
		orphans = append(orphans, message)
	}
	return fieldErrors, strings.Join(orphans, " ")
}

// fieldKeyRoot extracts the field id from a message key in any of its
// observed spellings: "4", "4.3", "input_4", "input_4_1".
func fieldKeyRoot(key string) string {
	key = strings.TrimPrefix(key, "input_")
	if i := strings.IndexAny(key, "._"); i >= 0 {
		return key[:i]
	}
	return key
}

// resolveConfirmation picks the schema's default confirmation when it is a
// message, preferring any message the server resolved for this entry.
func resolveConfirmation(form *schema.Form, result *schema.SubmissionResult) string {
	if result.ConfirmationType == "message" && result.ConfirmationMessage != "" {
		return result.ConfirmationMessage
	}
	if confirmation := form.DefaultConfirmation(); confirmation != nil && confirmation.Type == "message" && confirmation.Message != "" {
		return confirmation.Message
	}
	return msgSubmitSuccess
}

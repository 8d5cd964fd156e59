// Package gravity is the convenience facade over the engine packages: build
// a client, open a form session, and drive it with a renderer. Hosts needing
// finer control import pkg/... directly.
package gravity

import (
	"github.com/goliatone/go-gravity/pkg/answers"
	"github.com/goliatone/go-gravity/pkg/client"
	"github.com/goliatone/go-gravity/pkg/controller"
	"github.com/goliatone/go-gravity/pkg/submission"
)

// Re-exported core types so simple integrations need a single import.
type (
	ClientConfig = client.Config
	Client       = client.Client
	Controller   = controller.Controller
	State        = controller.State
	Value        = answers.Value
	AnswerState  = answers.State
	Payload      = submission.Payload
	SummaryEntry = submission.SummaryEntry
	Handler      = submission.Handler
)

// Session states.
const (
	StateLoading    = controller.StateLoading
	StateReady      = controller.StateReady
	StateSubmitting = controller.StateSubmitting
	StateConfirmed  = controller.StateConfirmed
	StateLoadError  = controller.StateLoadError
)

// NewClient builds an API client from explicit configuration.
func NewClient(cfg ClientConfig) (*Client, error) {
	return client.New(cfg)
}

// NewController opens a form session against the given client.
func NewController(api controller.API, formID int, opts ...controller.Option) *Controller {
	return controller.New(api, formID, opts...)
}

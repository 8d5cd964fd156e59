package controller

import (
	"github.com/goliatone/go-gravity/pkg/answers"
	"github.com/goliatone/go-gravity/pkg/schema"
	"github.com/goliatone/go-gravity/pkg/submission"
)

// State returns the current lifecycle state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Form returns the loaded schema, or nil before a successful Load.
func (c *Controller) Form() *schema.Form {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.form
}

// Values returns a copy of the current answer state.
func (c *Controller) Values() answers.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.values == nil {
		return nil
	}
	return c.values.Clone()
}

// Value returns the current value for one field.
func (c *Controller) Value(fieldID string) answers.Value {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.values[fieldID]
}

// FieldError returns the standing validation message for a field, if any.
func (c *Controller) FieldError(fieldID string) string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.fieldErrors[fieldID]
}

// Errors returns a copy of all standing field errors.
func (c *Controller) Errors() map[string]string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make(map[string]string, len(c.fieldErrors))
	for id, message := range c.fieldErrors {
		out[id] = message
	}
	return out
}

// FormError returns the top-level error banner text, empty when none.
func (c *Controller) FormError() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.formError
}

// ConfirmationMessage returns the resolved confirmation text after a
// confirmed submission.
func (c *Controller) ConfirmationMessage() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.confirmation
}

// Summary returns the summary computed by the confirmed submission attempt.
func (c *Controller) Summary() []submission.SummaryEntry {
	c.mu.Lock()
	defer c.mu.Unlock()
	return append([]submission.SummaryEntry(nil), c.summary...)
}

// EntryID returns the server-assigned entry id after a confirmed submission.
func (c *Controller) EntryID() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.entryID
}

// IsVisible reports whether a single field should currently be shown,
// combining the visibility setting and conditional logic against live answer
// state. Renderers walking the schema use this so earlier answers can reveal
// or hide later fields mid-pass.
func (c *Controller) IsVisible(fieldID string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.form == nil {
		return false
	}
	field := c.form.FieldByID(fieldID)
	if field == nil || field.Hidden() {
		return false
	}
	return c.eval.Visible(field, c.values)
}

// VisibleFields returns the fields a renderer should show, in schema order:
// visibility-visible fields whose conditional logic currently passes.
func (c *Controller) VisibleFields() []schema.Field {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.form == nil {
		return nil
	}
	visible := make([]schema.Field, 0, len(c.form.Fields))
	for i := range c.form.Fields {
		field := c.form.Fields[i]
		if field.Hidden() {
			continue
		}
		if !c.eval.Visible(&field, c.values) {
			continue
		}
		visible = append(visible, field)
	}
	return visible
}

// Package submission turns answer state into the wire payload the forms API
// expects, plus a human-readable summary for confirmation screens. Formatting
// is deterministic: identical schema and state produce identical output.
package submission

import (
	"fmt"
	"strings"

	"github.com/goliatone/go-gravity/pkg/answers"
	"github.com/goliatone/go-gravity/pkg/schema"
	"github.com/goliatone/go-gravity/pkg/visibility"
)

// NoAnswer is the summary placeholder for fields left empty.
const NoAnswer = "No Answer"

// Payload maps wire keys (input_<id>, input_<id>_<sub>) to submission values.
// Values are strings or []string depending on the field type.
type Payload map[string]any

// SummaryEntry is one label/value pair of the confirmation summary.
type SummaryEntry struct {
	Input string `json:"input"`
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Handler lets hosts take over formatting for a custom field type. Value
// produces the wire-shaped value; a map result is merged directly so one
// logical field can emit several wire keys. Display produces the summary
// string.
type Handler struct {
	Value   func(value answers.Value, field *schema.Field) any
	Display func(value answers.Value, field *schema.Field) string
}

// Formatter builds payloads and summaries. It applies the same visibility
// filter as rendering: conditionally hidden fields contribute nothing.
type Formatter struct {
	eval     *visibility.Evaluator
	handlers map[string]Handler
}

// NewFormatter builds a Formatter. A nil evaluator gets the default one;
// handlers may be nil.
func NewFormatter(eval *visibility.Evaluator, handlers map[string]Handler) *Formatter {
	if eval == nil {
		eval = visibility.New()
	}
	cloned := make(map[string]Handler, len(handlers))
	for typeTag, handler := range handlers {
		cloned[typeTag] = handler
	}
	return &Formatter{eval: eval, handlers: cloned}
}

// Format walks the form's fields in declared order and produces the wire
// payload and summary. Fields that are conditionally hidden, visibility
// hidden or administrative, or purely presentational are skipped entirely.
func (f *Formatter) Format(form *schema.Form, state answers.State) (Payload, []SummaryEntry) {
	payload := make(Payload)
	summary := make([]SummaryEntry, 0, len(form.Fields))

	for i := range form.Fields {
		field := &form.Fields[i]
		if field.Hidden() || schema.IsPresentationalType(field.Type) {
			continue
		}
		if !f.eval.Visible(field, state) {
			continue
		}

		value := state[field.Key()]
		wireKey := "input_" + field.Key()

		if handler, ok := f.handlers[field.Type]; ok {
			display := formatWithHandler(payload, wireKey, field, value, handler)
			summary = append(summary, SummaryEntry{Input: wireKey, Name: field.Label, Value: display})
			continue
		}

		display := f.formatField(payload, wireKey, field, value)
		summary = append(summary, SummaryEntry{Input: wireKey, Name: field.Label, Value: display})
	}

	return payload, summary
}

func formatWithHandler(payload Payload, wireKey string, field *schema.Field, value answers.Value, handler Handler) string {
	if handler.Value != nil {
		switch formatted := handler.Value(value, field).(type) {
		case nil:
		case map[string]any:
			for key, sub := range formatted {
				payload["input_"+key] = sub
			}
		case map[string]string:
			for key, sub := range formatted {
				payload["input_"+key] = sub
			}
		default:
			payload[wireKey] = formatted
		}
	}
	if handler.Display != nil {
		return handler.Display(value, field)
	}
	return orNoAnswer(value.String())
}

func (f *Formatter) formatField(payload Payload, wireKey string, field *schema.Field, value answers.Value) string {
	switch field.Type {
	case "checkbox":
		return formatCheckbox(payload, wireKey, field, value)
	case "radio", "select":
		scalar := value.String()
		if scalar != "" {
			payload[wireKey] = scalar
		}
		return orNoAnswer(field.ChoiceLabel(scalar))
	case "multiselect":
		return formatMultiselect(payload, wireKey, field, value)
	case "name", "address":
		return formatComposite(payload, wireKey, field, value)
	case "consent":
		return formatConsent(payload, wireKey, field, value)
	case "date":
		return formatDate(payload, wireKey, field, value)
	case "list":
		return formatList(payload, wireKey, field, value)
	default:
		scalar := value.String()
		if scalar != "" {
			payload[wireKey] = scalar
		}
		return orNoAnswer(scalar)
	}
}

// formatCheckbox emits one input_<id>_<n> key per selected choice, n being
// the 1-based index over the declared choice order. A scalar value (single
// checkbox) goes out under the bare key.
func formatCheckbox(payload Payload, wireKey string, field *schema.Field, value answers.Value) string {
	if scalar, ok := value.AsScalar(); ok {
		if scalar != "" {
			payload[wireKey] = scalar
		}
		return orNoAnswer(scalar)
	}

	selected, _ := value.AsMulti()
	labels := make([]string, 0, len(selected))
	for index, choice := range field.Choices {
		if !contains(selected, choice.Value) {
			continue
		}
		payload[fmt.Sprintf("%s_%d", wireKey, index+1)] = choice.Value
		labels = append(labels, field.ChoiceLabel(choice.Value))
	}
	return orNoAnswer(strings.Join(labels, ", "))
}

func formatMultiselect(payload Payload, wireKey string, field *schema.Field, value answers.Value) string {
	if selected, ok := value.AsMulti(); ok {
		if len(selected) > 0 {
			payload[wireKey] = append([]string(nil), selected...)
		}
		labels := make([]string, len(selected))
		for i, item := range selected {
			labels[i] = field.ChoiceLabel(item)
		}
		return orNoAnswer(strings.Join(labels, ", "))
	}
	scalar := value.String()
	if scalar != "" {
		payload[wireKey] = scalar
	}
	return orNoAnswer(scalar)
}

// formatComposite emits one input_<id>_<sub> key per sub-input present in
// the answer map, iterating declared sub-inputs so output order and summary
// order are stable.
func formatComposite(payload Payload, wireKey string, field *schema.Field, value answers.Value) string {
	parts, ok := value.AsComposite()
	if !ok {
		scalar := value.String()
		if scalar != "" {
			payload[wireKey] = scalar
		}
		return orNoAnswer(scalar)
	}

	display := make([]string, 0, len(field.Inputs))
	for _, input := range field.Inputs {
		subKey := input.ID.SubKey(field.ID)
		part := parts[input.ID.String()]
		if part == "" {
			part = parts[subKey]
		}
		if part == "" {
			continue
		}
		payload[wireKey+"_"+strings.ReplaceAll(subKey, ".", "_")] = part
		if !input.IsHidden {
			display = append(display, part)
		}
	}
	return orNoAnswer(strings.Join(display, " "))
}

// formatConsent always emits both wire keys: the checked flag and the consent
// label text the user agreed to.
func formatConsent(payload Payload, wireKey string, field *schema.Field, value answers.Value) string {
	label := field.CheckboxLabel
	if label == "" && len(field.Choices) > 0 {
		label = field.Choices[0].Text
	}

	checked := consentChecked(value)
	if checked {
		payload[wireKey+"_1"] = "1"
	} else {
		payload[wireKey+"_1"] = ""
	}
	payload[wireKey+"_2"] = label

	if checked {
		return "Consented to: " + label
	}
	return NoAnswer
}

func consentChecked(value answers.Value) bool {
	switch value.Kind() {
	case answers.KindMulti:
		return !value.IsZero()
	default:
		switch strings.ToLower(value.String()) {
		case "", "0", "false":
			return false
		}
		return true
	}
}

func formatDate(payload Payload, wireKey string, field *schema.Field, value answers.Value) string {
	raw := value.String()
	if raw == "" {
		return NoAnswer
	}
	canonical := relayoutDate(raw, field.DateFormat)
	payload[wireKey] = canonical
	return canonical
}

// formatList emits the row values. Without columns each row is one value;
// with columns the rows are flattened, len(field.Choices) cells per row.
func formatList(payload Payload, wireKey string, field *schema.Field, value answers.Value) string {
	rows, ok := value.AsMulti()
	if !ok {
		scalar := value.String()
		if scalar != "" {
			payload[wireKey] = scalar
		}
		return orNoAnswer(scalar)
	}
	if len(rows) == 0 {
		return NoAnswer
	}

	payload[wireKey] = append([]string(nil), rows...)

	columns := len(field.Choices)
	if !field.EnableColumns || columns <= 1 {
		return strings.Join(rows, "\n")
	}

	lines := make([]string, 0, (len(rows)+columns-1)/columns)
	for start := 0; start < len(rows); start += columns {
		end := start + columns
		if end > len(rows) {
			end = len(rows)
		}
		lines = append(lines, strings.Join(rows[start:end], ", "))
	}
	return strings.Join(lines, "\n")
}

func orNoAnswer(s string) string {
	if s == "" {
		return NoAnswer
	}
	return s
}

func contains(items []string, s string) bool {
	for _, item := range items {
		if item == s {
			return true
		}
	}
	return false
}

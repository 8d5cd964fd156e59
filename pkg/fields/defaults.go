package fields

import (
	"context"
	"strconv"
	"strings"

	"github.com/goliatone/go-gravity/pkg/answers"
	"github.com/goliatone/go-gravity/pkg/schema"
	"github.com/goliatone/go-gravity/pkg/submission"
)

func registerBuiltins(r *Registry) {
	r.renderers["text"] = renderText
	r.renderers["phone"] = renderText
	r.renderers["email"] = renderText
	r.renderers["website"] = renderText
	r.renderers["time"] = renderText
	r.renderers["textarea"] = renderTextarea
	r.renderers["number"] = renderNumber
	r.renderers["date"] = renderDate
	r.renderers["select"] = renderSelect
	r.renderers["radio"] = renderSelect
	r.renderers["checkbox"] = renderCheckbox
	r.renderers["multiselect"] = renderCheckbox
	r.renderers["consent"] = renderConsent
	r.renderers["name"] = renderComposite
	r.renderers["address"] = renderComposite
	r.renderers["list"] = renderList
	r.renderers["section"] = renderSection
}

func promptMessage(field *schema.Field, errMsg string) string {
	msg := field.Label
	if field.IsRequired {
		msg += " *"
	}
	if errMsg != "" {
		msg += " (" + errMsg + ")"
	}
	return msg
}

func renderText(ctx context.Context, p Prompter, field *schema.Field, current answers.Value, errMsg string) (answers.Value, error) {
	out, err := p.Input(ctx, promptMessage(field, errMsg), current.String(), field.Description)
	if err != nil {
		return current, err
	}
	return answers.Scalar(out), nil
}

func renderTextarea(ctx context.Context, p Prompter, field *schema.Field, current answers.Value, errMsg string) (answers.Value, error) {
	out, err := p.TextArea(ctx, promptMessage(field, errMsg), current.String())
	if err != nil {
		return current, err
	}
	return answers.Scalar(out), nil
}

// renderNumber re-prompts until the input is numeric (or empty). Range
// violations are left for the server so its message text is authoritative.
func renderNumber(ctx context.Context, p Prompter, field *schema.Field, current answers.Value, errMsg string) (answers.Value, error) {
	help := field.Description
	if field.RangeMin != "" || field.RangeMax != "" {
		help = strings.TrimSpace(help + " [" + field.RangeMin + ".." + field.RangeMax + "]")
	}
	def := current.String()
	for {
		out, err := p.Input(ctx, promptMessage(field, errMsg), def, help)
		if err != nil {
			return current, err
		}
		if out == "" {
			return answers.Scalar(""), nil
		}
		if _, err := strconv.ParseFloat(out, 64); err == nil {
			return answers.Scalar(out), nil
		}
		if err := p.Info(ctx, "Please enter a number."); err != nil {
			return current, err
		}
		def = out
	}
}

func renderDate(ctx context.Context, p Prompter, field *schema.Field, current answers.Value, errMsg string) (answers.Value, error) {
	layout := submission.DisplayDateLayout(field.DateFormat)
	help := strings.TrimSpace(field.Description + " (" + strings.ToLower(layout) + ")")
	out, err := p.Input(ctx, promptMessage(field, errMsg), current.String(), help)
	if err != nil {
		return current, err
	}
	return answers.Scalar(out), nil
}

func renderSelect(ctx context.Context, p Prompter, field *schema.Field, current answers.Value, errMsg string) (answers.Value, error) {
	options := make([]string, len(field.Choices))
	defaultIndex := 0
	for i, choice := range field.Choices {
		options[i] = field.ChoiceLabel(choice.Value)
		if choice.Value == current.String() || (current.IsZero() && choice.IsSelected) {
			defaultIndex = i
		}
	}
	if len(options) == 0 {
		return renderText(ctx, p, field, current, errMsg)
	}
	picked, err := p.Select(ctx, promptMessage(field, errMsg), options, defaultIndex)
	if err != nil {
		return current, err
	}
	if picked < 0 || picked >= len(field.Choices) {
		return current, nil
	}
	return answers.Scalar(field.Choices[picked].Value), nil
}

func renderCheckbox(ctx context.Context, p Prompter, field *schema.Field, current answers.Value, errMsg string) (answers.Value, error) {
	options := make([]string, len(field.Choices))
	var defaults []int
	selected, _ := current.AsMulti()
	for i, choice := range field.Choices {
		options[i] = field.ChoiceLabel(choice.Value)
		for _, item := range selected {
			if item == choice.Value {
				defaults = append(defaults, i)
			}
		}
	}
	if len(options) == 0 {
		return renderText(ctx, p, field, current, errMsg)
	}
	picked, err := p.MultiSelect(ctx, promptMessage(field, errMsg), options, defaults)
	if err != nil {
		return current, err
	}
	values := make([]string, 0, len(picked))
	for _, index := range picked {
		if index >= 0 && index < len(field.Choices) {
			values = append(values, field.Choices[index].Value)
		}
	}
	return answers.Multi(values...), nil
}

func renderConsent(ctx context.Context, p Prompter, field *schema.Field, current answers.Value, errMsg string) (answers.Value, error) {
	label := field.CheckboxLabel
	if label == "" {
		label = field.Label
	}
	if errMsg != "" {
		label += " (" + errMsg + ")"
	}
	checked, err := p.Confirm(ctx, label, !current.IsZero())
	if err != nil {
		return current, err
	}
	if checked {
		return answers.Scalar("1"), nil
	}
	return answers.Scalar(""), nil
}

// renderComposite prompts each visible sub-input in declared order. The
// answer map is keyed by the full sub-input id; the formatter derives wire
// suffixes from it.
func renderComposite(ctx context.Context, p Prompter, field *schema.Field, current answers.Value, errMsg string) (answers.Value, error) {
	parts, _ := current.AsComposite()
	if parts == nil {
		parts = make(map[string]string)
	}
	if errMsg != "" {
		if err := p.Info(ctx, field.Label+": "+errMsg); err != nil {
			return current, err
		}
	}
	for _, input := range field.VisibleInputs() {
		key := input.ID.String()
		out, err := p.Input(ctx, field.Label+": "+input.Label, parts[key], "")
		if err != nil {
			return current, err
		}
		parts[key] = out
	}
	return answers.Composite(parts), nil
}

// renderList collects rows until the user enters an empty line. With columns
// enabled each row prompts one cell per column, flattened in column order.
func renderList(ctx context.Context, p Prompter, field *schema.Field, current answers.Value, errMsg string) (answers.Value, error) {
	if err := p.Info(ctx, promptMessage(field, errMsg)+" (empty entry finishes)"); err != nil {
		return current, err
	}

	columns := field.Choices
	var rows []string
	for row := 1; field.MaxRows == 0 || row <= field.MaxRows; row++ {
		if field.EnableColumns && len(columns) > 1 {
			first, err := p.Input(ctx, columns[0].Text, "", "")
			if err != nil {
				return current, err
			}
			if first == "" {
				break
			}
			cells := []string{first}
			for _, column := range columns[1:] {
				cell, err := p.Input(ctx, column.Text, "", "")
				if err != nil {
					return current, err
				}
				cells = append(cells, cell)
			}
			rows = append(rows, cells...)
			continue
		}

		out, err := p.Input(ctx, field.Label, "", "")
		if err != nil {
			return current, err
		}
		if out == "" {
			break
		}
		rows = append(rows, out)
	}
	return answers.Multi(rows...), nil
}

func renderSection(ctx context.Context, p Prompter, field *schema.Field, current answers.Value, _ string) (answers.Value, error) {
	message := field.Label
	if field.Description != "" {
		message += ": " + field.Description
	}
	if err := p.Info(ctx, message); err != nil {
		return current, err
	}
	return current, nil
}

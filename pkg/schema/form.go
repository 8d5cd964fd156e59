package schema

// Field types the engine refuses to load. Payment and post-creation flows
// cannot be represented by a headless submission client.
var paymentTypes = map[string]struct{}{
	"product":    {},
	"total":      {},
	"creditcard": {},
}

var postTypes = map[string]struct{}{
	"post_title":    {},
	"post_content":  {},
	"post_excerpt":  {},
	"post_tags":     {},
	"post_category": {},
	"post_image":    {},
}

// Presentational types carry no answer data and are excluded from answer
// collection and submission formatting.
var presentationalTypes = map[string]struct{}{
	"section":    {},
	"html":       {},
	"captcha":    {},
	"page":       {},
	"fileupload": {},
}

// IsPaymentType reports whether the type tag belongs to the payment family.
func IsPaymentType(typeTag string) bool {
	_, ok := paymentTypes[typeTag]
	return ok
}

// IsPostType reports whether the type tag creates post content on submission.
func IsPostType(typeTag string) bool {
	_, ok := postTypes[typeTag]
	return ok
}

// IsPresentationalType reports whether the type tag is display-only.
func IsPresentationalType(typeTag string) bool {
	_, ok := presentationalTypes[typeTag]
	return ok
}

// Key returns the answer-state key for the field.
func (f *Field) Key() string { return f.ID.String() }

// Hidden reports whether the field is excluded from rendering by its
// visibility setting. Conditional logic is a separate check.
func (f *Field) Hidden() bool {
	return f.Visibility == VisibilityHidden || f.Visibility == VisibilityAdministrative
}

// MultiValued reports whether the field stores an array of strings rather
// than a single scalar.
func (f *Field) MultiValued() bool {
	switch f.Type {
	case "checkbox", "multiselect", "list":
		return true
	}
	return false
}

// Composite reports whether the field stores a keyed map of sub-values.
func (f *Field) Composite() bool {
	switch f.Type {
	case "name", "address":
		return true
	}
	return len(f.Inputs) > 0 && f.Type != "checkbox" && f.Type != "consent"
}

// ChoiceValues returns the declared choice values in order.
func (f *Field) ChoiceValues() []string {
	if len(f.Choices) == 0 {
		return nil
	}
	values := make([]string, len(f.Choices))
	for i, choice := range f.Choices {
		values[i] = choice.Value
	}
	return values
}

// ChoiceLabel returns the display text for a choice value, falling back to
// the value itself when the choice is not declared.
func (f *Field) ChoiceLabel(value string) string {
	for _, choice := range f.Choices {
		if choice.Value == value {
			if choice.Text != "" {
				return choice.Text
			}
			return choice.Value
		}
	}
	return value
}

// VisibleInputs returns the field's sub-inputs with hidden entries removed.
func (f *Field) VisibleInputs() []Input {
	if len(f.Inputs) == 0 {
		return nil
	}
	visible := make([]Input, 0, len(f.Inputs))
	for _, input := range f.Inputs {
		if input.IsHidden {
			continue
		}
		visible = append(visible, input)
	}
	return visible
}

// FieldByID returns the field with the given answer-state key, or nil.
func (form *Form) FieldByID(id string) *Field {
	for i := range form.Fields {
		if form.Fields[i].Key() == id {
			return &form.Fields[i]
		}
	}
	return nil
}

// UnsupportedField returns the first payment or post field in the form, or
// nil when the form is loadable.
func (form *Form) UnsupportedField() *Field {
	for i := range form.Fields {
		if IsPaymentType(form.Fields[i].Type) || IsPostType(form.Fields[i].Type) {
			return &form.Fields[i]
		}
	}
	return nil
}

// DefaultConfirmation returns the confirmation marked as default. When none
// is marked, the first one in key order wins so the result is deterministic.
func (form *Form) DefaultConfirmation() *Confirmation {
	var fallback *Confirmation
	var fallbackKey string
	for key := range form.Confirmations {
		confirmation := form.Confirmations[key]
		if confirmation.IsDefault {
			return &confirmation
		}
		if fallback == nil || key < fallbackKey {
			c := confirmation
			fallback, fallbackKey = &c, key
		}
	}
	return fallback
}

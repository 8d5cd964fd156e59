package schema

import (
	"encoding/json"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestFieldID_AcceptsStringsAndNumbers(t *testing.T) {
	var field Field
	if err := json.Unmarshal([]byte(`{"id": 4, "type": "text", "label": "A"}`), &field); err != nil {
		t.Fatalf("numeric id: %v", err)
	}
	if field.ID != "4" {
		t.Fatalf("expected id %q, got %q", "4", field.ID)
	}

	if err := json.Unmarshal([]byte(`{"id": "4.3", "type": "text", "label": "A"}`), &field); err != nil {
		t.Fatalf("string id: %v", err)
	}
	if field.ID != "4.3" {
		t.Fatalf("expected id %q, got %q", "4.3", field.ID)
	}
}

func TestFieldID_SubKey(t *testing.T) {
	cases := []struct {
		id, field, want string
	}{
		{"4.3", "4", "3"},
		{"first", "4", "first"},
		{"12.6", "12", "6"},
	}
	for _, tc := range cases {
		if got := FieldID(tc.id).SubKey(FieldID(tc.field)); got != tc.want {
			t.Fatalf("SubKey(%q, %q) = %q, want %q", tc.id, tc.field, got, tc.want)
		}
	}
	if got := FieldID("4.3").Root(); got != "4" {
		t.Fatalf("Root() = %q, want %q", got, "4")
	}
}

func TestFlexBool(t *testing.T) {
	var form Form
	doc := `{"id": 1, "title": "T", "is_active": "1", "is_trash": "0", "fields": [{"id": 1, "type": "text", "label": "A"}]}`
	if err := json.Unmarshal([]byte(doc), &form); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	if !form.IsActive.Bool() || form.IsTrash.Bool() {
		t.Fatalf("expected active and not trashed, got active=%v trash=%v", form.IsActive, form.IsTrash)
	}
}

func TestMessages_FlattensNestedMaps(t *testing.T) {
	var result SubmissionResult
	doc := `{"is_valid": false, "validation_messages": {"1": "Required.", "4": {"4.3": "First name is required."}}}`
	if err := json.Unmarshal([]byte(doc), &result); err != nil {
		t.Fatalf("unmarshal: %v", err)
	}
	want := Messages{
		"1":   "Required.",
		"4.3": "First name is required.",
	}
	if diff := cmp.Diff(want, result.ValidationMessages); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}

func TestUnsupportedField(t *testing.T) {
	form := Form{Fields: []Field{
		{ID: "1", Type: "text"},
		{ID: "2", Type: "creditcard"},
	}}
	if got := form.UnsupportedField(); got == nil || got.Type != "creditcard" {
		t.Fatalf("expected the payment field, got %+v", got)
	}

	clean := Form{Fields: []Field{{ID: "1", Type: "text"}}}
	if got := clean.UnsupportedField(); got != nil {
		t.Fatalf("expected nil for a supported form, got %+v", got)
	}
}

func TestDefaultConfirmation(t *testing.T) {
	form := Form{Confirmations: map[string]Confirmation{
		"b": {ID: "b", Type: "message", Message: "other"},
		"a": {ID: "a", IsDefault: true, Type: "message", Message: "Thanks!"},
	}}
	if got := form.DefaultConfirmation(); got == nil || got.Message != "Thanks!" {
		t.Fatalf("expected the default confirmation, got %+v", got)
	}

	noDefault := Form{Confirmations: map[string]Confirmation{
		"b": {ID: "b", Message: "bee"},
		"a": {ID: "a", Message: "ay"},
	}}
	if got := noDefault.DefaultConfirmation(); got == nil || got.Message != "ay" {
		t.Fatalf("expected deterministic first-by-key fallback, got %+v", got)
	}
}

func TestParseForm_JSONAndYAML(t *testing.T) {
	jsonDoc := `{"id": 5, "title": "Survey", "fields": [{"id": 1, "type": "text", "label": "Name", "isRequired": true}]}`
	form, err := ParseForm([]byte(jsonDoc))
	if err != nil {
		t.Fatalf("json: %v", err)
	}
	if form.Fields[0].Label != "Name" || !form.Fields[0].IsRequired {
		t.Fatalf("unexpected json decode: %+v", form.Fields[0])
	}

	yamlDoc := `
id: 5
title: Survey
fields:
  - id: 1
    type: text
    label: Name
    isRequired: true
  - id: 2
    type: checkbox
    label: Topics
    choices:
      - {text: A, value: a}
      - {text: B, value: b}
`
	form, err = ParseForm([]byte(yamlDoc))
	if err != nil {
		t.Fatalf("yaml: %v", err)
	}
	if len(form.Fields) != 2 || form.Fields[1].Choices[1].Value != "b" {
		t.Fatalf("unexpected yaml decode: %+v", form.Fields)
	}
}

func TestParseForm_RejectsEmpty(t *testing.T) {
	if _, err := ParseForm([]byte(`{"id": 1, "title": "x", "fields": []}`)); err == nil {
		t.Fatalf("expected an error for a form without fields")
	}
	if _, err := ParseForm(nil); err == nil {
		t.Fatalf("expected an error for empty input")
	}
}

package visibility

import (
	"testing"

	"github.com/goliatone/go-gravity/pkg/answers"
	"github.com/goliatone/go-gravity/pkg/schema"
)

func logicField(logicType string, rules ...schema.Rule) *schema.Field {
	return &schema.Field{
		ID:   "10",
		Type: "text",
		Conditional: &schema.ConditionalLogic{
			Enabled:   true,
			LogicType: logicType,
			Rules:     rules,
		},
	}
}

func TestVisible_NoLogicAlwaysTrue(t *testing.T) {
	eval := New()
	states := []answers.State{
		nil,
		{},
		{"1": answers.Scalar("anything")},
	}

	plain := &schema.Field{ID: "10", Type: "text"}
	disabled := &schema.Field{
		ID:   "11",
		Type: "text",
		Conditional: &schema.ConditionalLogic{
			Enabled:   false,
			LogicType: schema.LogicTypeAll,
			Rules:     []schema.Rule{{FieldID: "1", Operator: schema.OperatorIs, Value: "x"}},
		},
	}

	for _, state := range states {
		if !eval.Visible(plain, state) {
			t.Fatalf("field without conditional logic should always be visible")
		}
		if !eval.Visible(disabled, state) {
			t.Fatalf("field with disabled conditional logic should always be visible")
		}
	}
}

func TestVisible_SingleIsRule(t *testing.T) {
	eval := New()
	field := logicField(schema.LogicTypeAll, schema.Rule{FieldID: "1", Operator: schema.OperatorIs, Value: "yes"})

	if !eval.Visible(field, answers.State{"1": answers.Scalar("yes")}) {
		t.Fatalf("expected visible when referenced value matches exactly")
	}
	if eval.Visible(field, answers.State{"1": answers.Scalar("no")}) {
		t.Fatalf("expected hidden when referenced value differs")
	}
	if eval.Visible(field, answers.State{}) {
		t.Fatalf("expected hidden when referenced field has no value")
	}
}

func TestVisible_Operators(t *testing.T) {
	eval := New()

	cases := []struct {
		name     string
		operator string
		rule     string
		value    answers.Value
		expect   bool
	}{
		{"isnot differs", schema.OperatorIsNot, "a", answers.Scalar("b"), true},
		{"isnot equal", schema.OperatorIsNot, "a", answers.Scalar("a"), false},
		{"greater_than numeric", schema.OperatorGreaterThan, "5", answers.Scalar("7"), true},
		{"greater_than equal", schema.OperatorGreaterThan, "5", answers.Scalar("5"), false},
		{"greater_than non-numeric value", schema.OperatorGreaterThan, "5", answers.Scalar("abc"), false},
		{"greater_than non-numeric rule", schema.OperatorGreaterThan, "abc", answers.Scalar("7"), false},
		{"less_than numeric", schema.OperatorLessThan, "5", answers.Scalar("3"), true},
		{"less_than non-numeric both", schema.OperatorLessThan, "x", answers.Scalar("y"), false},
		{"contains substring", schema.OperatorContains, "ell", answers.Scalar("hello"), true},
		{"contains miss", schema.OperatorContains, "xyz", answers.Scalar("hello"), false},
		{"contains stringified list", schema.OperatorContains, "b", answers.Multi("ab", "c"), true},
		{"contains spans list join", schema.OperatorContains, "b,c", answers.Multi("ab", "c"), true},
		{"contains stringified miss", schema.OperatorContains, "x", answers.Multi("ab", "c"), false},
		{"starts_with hit", schema.OperatorStartsWith, "he", answers.Scalar("hello"), true},
		{"starts_with miss", schema.OperatorStartsWith, "lo", answers.Scalar("hello"), false},
		{"ends_with hit", schema.OperatorEndsWith, "lo", answers.Scalar("hello"), true},
		{"ends_with miss", schema.OperatorEndsWith, "he", answers.Scalar("hello"), false},
		{"unknown operator fails closed", "matches", "hello", answers.Scalar("hello"), false},
		{"is against list never matches", schema.OperatorIs, "a", answers.Multi("a"), false},
		{"isnot against list always true", schema.OperatorIsNot, "a", answers.Multi("a"), true},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			field := logicField(schema.LogicTypeAll, schema.Rule{FieldID: "1", Operator: tc.operator, Value: tc.rule})
			state := answers.State{"1": tc.value}
			if got := eval.Visible(field, state); got != tc.expect {
				t.Fatalf("operator %s: expected %v, got %v", tc.operator, tc.expect, got)
			}
		})
	}
}

func TestVisible_Combination(t *testing.T) {
	eval := New()
	hit := schema.Rule{FieldID: "1", Operator: schema.OperatorIs, Value: "yes"}
	miss := schema.Rule{FieldID: "1", Operator: schema.OperatorIs, Value: "no"}
	state := answers.State{"1": answers.Scalar("yes")}

	if eval.Visible(logicField(schema.LogicTypeAll, hit, miss), state) {
		t.Fatalf("all: one failing rule should hide the field")
	}
	if !eval.Visible(logicField(schema.LogicTypeAll, hit, hit), state) {
		t.Fatalf("all: every rule passing should show the field")
	}
	if !eval.Visible(logicField(schema.LogicTypeAny, hit, miss), state) {
		t.Fatalf("any: one passing rule should show the field")
	}
	if eval.Visible(logicField(schema.LogicTypeAny, miss, miss), state) {
		t.Fatalf("any: no passing rule should hide the field")
	}
}

func TestVisible_EmptyRuleList(t *testing.T) {
	eval := New()
	state := answers.State{}

	if !eval.Visible(logicField(schema.LogicTypeAll), state) {
		t.Fatalf("enabled all-logic with zero rules should be vacuously true")
	}
	if eval.Visible(logicField(schema.LogicTypeAny), state) {
		t.Fatalf("enabled any-logic with zero rules should be false")
	}
}

func TestVisible_HideActionInverts(t *testing.T) {
	eval := New()
	field := logicField(schema.LogicTypeAll, schema.Rule{FieldID: "1", Operator: schema.OperatorIs, Value: "yes"})
	field.Conditional.ActionType = schema.ActionTypeHide

	if eval.Visible(field, answers.State{"1": answers.Scalar("yes")}) {
		t.Fatalf("hide action: matching rules should hide the field")
	}
	if !eval.Visible(field, answers.State{"1": answers.Scalar("no")}) {
		t.Fatalf("hide action: non-matching rules should show the field")
	}
}

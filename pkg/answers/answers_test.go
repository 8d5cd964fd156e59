package answers

import (
	"testing"

	"github.com/goliatone/go-gravity/pkg/schema"
)

func TestValue_Shapes(t *testing.T) {
	scalar := Scalar("hi")
	if s, ok := scalar.AsScalar(); !ok || s != "hi" {
		t.Fatalf("scalar accessor broken: %q %v", s, ok)
	}
	if _, ok := scalar.AsMulti(); ok {
		t.Fatalf("scalar must not read as a list")
	}

	multi := Multi("a", "b")
	if multi.String() != "a,b" {
		t.Fatalf("list stringify should comma-join, got %q", multi.String())
	}
	composite := Composite(map[string]string{"last": "Lovelace", "first": "Ada"})
	if composite.String() != "Ada Lovelace" {
		t.Fatalf("composite stringify should space-join sorted parts, got %q", composite.String())
	}
	if composite.Sub("first") != "Ada" {
		t.Fatalf("sub accessor broken")
	}
}

func TestValue_IsZero(t *testing.T) {
	cases := []struct {
		value Value
		want  bool
	}{
		{Scalar(""), true},
		{Scalar("x"), false},
		{Multi(), true},
		{Multi("a"), false},
		{Composite(nil), true},
		{Composite(map[string]string{"a": ""}), true},
		{Composite(map[string]string{"a": "x"}), false},
	}
	for i, tc := range cases {
		if got := tc.value.IsZero(); got != tc.want {
			t.Fatalf("case %d: IsZero = %v, want %v", i, got, tc.want)
		}
	}
}

func TestInit_DefaultsAndPrecedence(t *testing.T) {
	form := &schema.Form{Fields: []schema.Field{
		{ID: "1", Type: "text", DefaultValue: "hello"},
		{ID: "2", Type: "checkbox", Choices: []schema.Choice{{Value: "a"}}},
		{ID: "3", Type: "multiselect"},
		{ID: "4", Type: "name", Inputs: []schema.Input{{ID: "4.3"}}},
		{ID: "5", Type: "text"},
		{ID: "6", Type: "section"},
	}}

	state := Init(form, State{"5": Scalar("prefilled")})

	if got := state["1"].String(); got != "hello" {
		t.Fatalf("expected declared default, got %q", got)
	}
	if list, ok := state["2"].AsMulti(); !ok || len(list) != 0 {
		t.Fatalf("checkbox should start as an empty list")
	}
	if _, ok := state["3"].AsMulti(); !ok {
		t.Fatalf("multiselect should start as an empty list")
	}
	if _, ok := state["4"].AsComposite(); !ok {
		t.Fatalf("composite field should start as an empty map")
	}
	if got := state["5"].String(); got != "prefilled" {
		t.Fatalf("initial values must win, got %q", got)
	}
	if _, present := state["6"]; present {
		t.Fatalf("presentational fields carry no answer state")
	}
}

func TestClone_IsDeep(t *testing.T) {
	original := State{
		"1": Multi("a"),
		"2": Composite(map[string]string{"k": "v"}),
	}
	cloned := original.Clone()
	cloned.Set("1", Multi("a", "b"))
	cloned.Set("2", Composite(map[string]string{"k": "changed"}))

	if original["1"].String() != "a" || original["2"].Sub("k") != "v" {
		t.Fatalf("mutating a clone leaked into the original: %v", original)
	}
	if !original["1"].Equal(Multi("a")) {
		t.Fatalf("Equal should match identical lists")
	}
	if original["1"].Equal(Multi("a", "b")) {
		t.Fatalf("Equal should reject differing lists")
	}
}

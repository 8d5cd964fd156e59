// Package answers holds the mutable per-field input state of a form session.
// A value is one of three shapes: a scalar string, an array of strings
// (checkbox/multiselect/list), or a keyed map of sub-values (name/address).
package answers

import (
	"sort"
	"strings"

	"github.com/goliatone/go-gravity/pkg/schema"
)

// Kind discriminates the three value shapes.
type Kind int

const (
	KindScalar Kind = iota
	KindMulti
	KindComposite
)

// Value is a tagged union over the three answer shapes. The zero Value is an
// empty scalar.
type Value struct {
	kind      Kind
	scalar    string
	multi     []string
	composite map[string]string
}

// Scalar wraps a plain string answer.
func Scalar(s string) Value { return Value{kind: KindScalar, scalar: s} }

// Multi wraps an ordered list of selected values or rows.
func Multi(values ...string) Value {
	return Value{kind: KindMulti, multi: append([]string(nil), values...)}
}

// Composite wraps a keyed map of sub-values.
func Composite(parts map[string]string) Value {
	cloned := make(map[string]string, len(parts))
	for key, part := range parts {
		cloned[key] = part
	}
	return Value{kind: KindComposite, composite: cloned}
}

// Kind returns the value's shape tag.
func (v Value) Kind() Kind { return v.kind }

// AsScalar returns the scalar string; ok is false for other shapes.
func (v Value) AsScalar() (string, bool) {
	return v.scalar, v.kind == KindScalar
}

// AsMulti returns a copy of the list; ok is false for other shapes.
func (v Value) AsMulti() ([]string, bool) {
	if v.kind != KindMulti {
		return nil, false
	}
	return append([]string(nil), v.multi...), true
}

// AsComposite returns a copy of the sub-value map; ok is false for other
// shapes.
func (v Value) AsComposite() (map[string]string, bool) {
	if v.kind != KindComposite {
		return nil, false
	}
	cloned := make(map[string]string, len(v.composite))
	for key, part := range v.composite {
		cloned[key] = part
	}
	return cloned, true
}

// Sub returns the named sub-value of a composite.
func (v Value) Sub(key string) string {
	if v.kind != KindComposite {
		return ""
	}
	return v.composite[key]
}

// IsZero reports whether the value carries no answer data.
func (v Value) IsZero() bool {
	switch v.kind {
	case KindMulti:
		return len(v.multi) == 0
	case KindComposite:
		for _, part := range v.composite {
			if part != "" {
				return false
			}
		}
		return true
	default:
		return v.scalar == ""
	}
}

// String flattens the value for rule comparison and display fallbacks:
// scalars pass through, lists comma-join, composites space-join their
// non-empty parts in sorted key order.
func (v Value) String() string {
	switch v.kind {
	case KindMulti:
		return strings.Join(v.multi, ",")
	case KindComposite:
		keys := make([]string, 0, len(v.composite))
		for key := range v.composite {
			keys = append(keys, key)
		}
		sort.Strings(keys)
		parts := make([]string, 0, len(keys))
		for _, key := range keys {
			if part := v.composite[key]; part != "" {
				parts = append(parts, part)
			}
		}
		return strings.Join(parts, " ")
	default:
		return v.scalar
	}
}

// Equal compares two values structurally.
func (v Value) Equal(other Value) bool {
	if v.kind != other.kind {
		return false
	}
	switch v.kind {
	case KindMulti:
		if len(v.multi) != len(other.multi) {
			return false
		}
		for i := range v.multi {
			if v.multi[i] != other.multi[i] {
				return false
			}
		}
		return true
	case KindComposite:
		if len(v.composite) != len(other.composite) {
			return false
		}
		for key, part := range v.composite {
			if other.composite[key] != part {
				return false
			}
		}
		return true
	default:
		return v.scalar == other.scalar
	}
}

// State maps field ids to their current values. The controller is the only
// writer after initialisation.
type State map[string]Value

// Init builds the initial state for a form: declared default value, else an
// empty list for multi-valued types, else an empty scalar. Caller-supplied
// initial values take precedence over schema defaults. Hidden fields still
// receive defaults; filtering happens at format time, not here.
func Init(form *schema.Form, initial State) State {
	state := make(State, len(form.Fields))
	for i := range form.Fields {
		field := &form.Fields[i]
		if schema.IsPresentationalType(field.Type) {
			continue
		}
		key := field.Key()
		if value, ok := initial[key]; ok {
			state[key] = value
			continue
		}
		switch {
		case field.DefaultValue != "":
			state[key] = Scalar(field.DefaultValue)
		case field.MultiValued():
			state[key] = Multi()
		case field.Composite():
			state[key] = Composite(nil)
		default:
			state[key] = Scalar("")
		}
	}
	return state
}

// Get returns the value for a field id.
func (s State) Get(id string) (Value, bool) {
	value, ok := s[id]
	return value, ok
}

// Set stores a value. It is the single mutation entry point.
func (s State) Set(id string, value Value) {
	s[id] = value
}

// Clone returns a deep copy of the state.
func (s State) Clone() State {
	cloned := make(State, len(s))
	for id, value := range s {
		cloned[id] = value.clone()
	}
	return cloned
}

func (v Value) clone() Value {
	switch v.kind {
	case KindMulti:
		return Multi(v.multi...)
	case KindComposite:
		return Composite(v.composite)
	default:
		return v
	}
}

// Package visibility evaluates conditional-logic blocks against current
// answer state. The evaluator is pure: the same field and state always
// produce the same answer, and nothing is mutated.
package visibility

import (
	"strconv"
	"strings"

	"github.com/goliatone/go-gravity/pkg/answers"
	"github.com/goliatone/go-gravity/pkg/schema"
)

// Evaluator decides field visibility. The zero value is ready to use.
type Evaluator struct{}

// New returns an Evaluator.
func New() *Evaluator { return &Evaluator{} }

// Visible reports whether the field should be shown given the current answer
// state. Fields without an enabled conditional-logic block are always
// visible.
//
// An enabled block with zero rules is vacuously true under "all" semantics
// and false under any other logic type, matching the AND/OR identity
// elements.
func (e *Evaluator) Visible(field *schema.Field, state answers.State) bool {
	logic := field.Conditional
	if logic == nil || !logic.Enabled {
		return true
	}

	matched := e.matches(logic, state)
	if logic.ActionType == schema.ActionTypeHide {
		return !matched
	}
	return matched
}

func (e *Evaluator) matches(logic *schema.ConditionalLogic, state answers.State) bool {
	all := logic.LogicType == schema.LogicTypeAll
	if len(logic.Rules) == 0 {
		return all
	}
	for _, rule := range logic.Rules {
		ok := evalRule(rule, state)
		if all && !ok {
			return false
		}
		if !all && ok {
			return true
		}
	}
	return all
}

// evalRule compares one rule against the referenced field's current value.
// Unknown operators fail closed.
func evalRule(rule schema.Rule, state answers.State) bool {
	value := state[rule.FieldID.String()]

	switch rule.Operator {
	case schema.OperatorIs:
		if value.Kind() == answers.KindMulti {
			// An array never equals a scalar comparison value.
			return false
		}
		return value.String() == rule.Value
	case schema.OperatorIsNot:
		if value.Kind() == answers.KindMulti {
			return true
		}
		return value.String() != rule.Value
	case schema.OperatorGreaterThan:
		left, right, ok := numericPair(value.String(), rule.Value)
		return ok && left > right
	case schema.OperatorLessThan:
		left, right, ok := numericPair(value.String(), rule.Value)
		return ok && left < right
	case schema.OperatorContains:
		return strings.Contains(value.String(), rule.Value)
	case schema.OperatorStartsWith:
		return strings.HasPrefix(value.String(), rule.Value)
	case schema.OperatorEndsWith:
		return strings.HasSuffix(value.String(), rule.Value)
	default:
		return false
	}
}

// numericPair coerces both sides to float64. Either side failing to parse
// poisons the comparison, so the rule is false.
func numericPair(left, right string) (float64, float64, bool) {
	l, err := strconv.ParseFloat(left, 64)
	if err != nil {
		return 0, 0, false
	}
	r, err := strconv.ParseFloat(right, 64)
	if err != nil {
		return 0, 0, false
	}
	return l, r, true
}

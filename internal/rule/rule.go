package rule

import (
	"fmt"
	"strconv"
	"strings"
)

// Rule is a single typed filter condition over one test property.
// Rules are immutable once built.
type Rule struct {
	property  string
	valueType ValueType
	builtIn   bool
	kind      ConditionKind
	expected  Value
}

// New builds a rule from a property name, a condition symbol and a raw value.
// Container aliases (tag, bugs, env, ...) produce set rules.
func New(property, symbol string, raw any) (Rule, error) {
	property = strings.TrimSpace(property)
	if property == "" {
		return Rule{}, fmt.Errorf("%w: empty property name", ErrInvalidSelectionRule)
	}

	r := Rule{property: property, valueType: TypeString}
	switch {
	case IsContainer(property):
		r.property, _ = NormalizeContainer(property)
		r.valueType = TypeSet
	case IsBuiltIn(property):
		r.property = strings.ToLower(property)
		r.valueType, _ = BuiltInType(property)
		r.builtIn = true
	}

	kind, err := Condition(r.property, r.valueType, symbol)
	if err != nil {
		return Rule{}, err
	}
	expected, err := Convert(r.property, r.valueType, raw)
	if err != nil {
		return Rule{}, err
	}
	if r.valueType == TypeSet && len(expected.Set) == 0 {
		return Rule{}, fmt.Errorf("%w: no values given for container [%s]", ErrInvalidSelectionRule, r.property)
	}
	r.kind = kind
	r.expected = expected
	return r, nil
}

// NewContainer builds a set rule over a tag container.
func NewContainer(name string, kind ConditionKind, items ...string) (Rule, error) {
	c, err := NormalizeContainer(name)
	if err != nil {
		return Rule{}, err
	}
	if err := checkCondition(c, TypeSet, kind); err != nil {
		return Rule{}, err
	}
	v := SetValue(items...)
	if len(v.Set) == 0 {
		return Rule{}, fmt.Errorf("%w: no values given for container [%s]", ErrInvalidSelectionRule, c)
	}
	return Rule{property: c, valueType: TypeSet, kind: kind, expected: v}, nil
}

// Property returns the canonical property name the rule targets.
func (r Rule) Property() string { return r.property }

// Type returns the declared value type of the targeted property.
func (r Rule) Type() ValueType { return r.valueType }

// Kind returns the rule's condition.
func (r Rule) Kind() ConditionKind { return r.kind }

// Expected returns a copy of the rule's comparison value.
func (r Rule) Expected() Value { return r.expected.clone() }

// BuiltIn reports whether the rule targets a built-in property.
func (r Rule) BuiltIn() bool { return r.builtIn }

// Matches evaluates the rule against a metadata snapshot. Missing or
// unconvertible values never match; a missing container is an empty set.
func (r Rule) Matches(m Metadata) bool {
	raw, ok := m.Lookup(r.property)
	if r.valueType == TypeSet && (!ok || raw == nil) {
		return Evaluate(r.kind, r.expected, SetValue())
	}
	if !ok || raw == nil {
		return false
	}
	actual, err := coerce(r.valueType, raw)
	if err != nil {
		return false
	}
	actual.Versioned = r.expected.Versioned
	return Evaluate(r.kind, r.expected, actual)
}

// String renders the rule in canonical form, e.g. "priority GREATER_THAN 2".
func (r Rule) String() string {
	value := r.expected.String()
	if r.expected.Type == TypeString {
		value = strconv.Quote(value)
	}
	return fmt.Sprintf("%s %s %s", r.property, r.kind, value)
}

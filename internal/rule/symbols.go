package rule

import (
	"fmt"
	"slices"
	"strings"
)

// symbols lists every recognized condition symbol in display order.
var symbols = []string{
	"is", "not", "eq", "=", "==", "!=", "ne",
	"~=", "matches", "*=",
	"lt", "<", "le", "<=", "gt", ">", "ge", ">=",
}

var (
	equalitySymbols = []string{"is", "not", "=", "==", "eq", "!=", "ne"}
	numberSymbols   = []string{
		"is", "not", "eq", "ne", "=", "==", "!=",
		"lt", "<", "le", "<=", "gt", ">", "ge", ">=",
	}
	stringSymbols = append(slices.Clone(numberSymbols), "matches", "~=", "*=")
)

var (
	numberConditions = []ConditionKind{
		Equal, NotEqual, LessThan, LessOrEqual, GreaterThan, GreaterOrEqual,
	}
	stringConditions = append(slices.Clone(numberConditions),
		Matches, PartiallyMatches, Contains)
	boolConditions = []ConditionKind{Equal, NotEqual}
	setConditions  = []ConditionKind{Contains, IsSubset, HasIntersection, NoIntersection}
)

// Resolve maps a condition symbol to its ConditionKind.
func Resolve(symbol string) (ConditionKind, error) {
	switch strings.ToLower(strings.TrimSpace(symbol)) {
	case "is", "eq", "=", "==":
		return Equal, nil
	case "not", "ne", "!=":
		return NotEqual, nil
	case "~=", "matches":
		return Matches, nil
	case "*=":
		return PartiallyMatches, nil
	case "lt", "<":
		return LessThan, nil
	case "le", "<=":
		return LessOrEqual, nil
	case "gt", ">":
		return GreaterThan, nil
	case "ge", ">=":
		return GreaterOrEqual, nil
	default:
		return 0, fmt.Errorf("%w: invalid condition symbol >>%s<< used, allowed: %s",
			ErrInvalidSelectionRule, symbol, formatList(symbols))
	}
}

// AllSymbols returns every recognized condition symbol.
func AllSymbols() []string {
	return slices.Clone(symbols)
}

// AllowedSymbols returns the symbols legal for properties of type t.
func AllowedSymbols(t ValueType) []string {
	switch t {
	case TypeString:
		return slices.Clone(stringSymbols)
	case TypeInt, TypeFloat:
		return slices.Clone(numberSymbols)
	case TypeBool, TypeSet:
		return slices.Clone(equalitySymbols)
	default:
		return nil
	}
}

// AllowedConditions returns the condition kinds legal for properties of type t.
func AllowedConditions(t ValueType) []ConditionKind {
	switch t {
	case TypeString:
		return slices.Clone(stringConditions)
	case TypeInt, TypeFloat:
		return slices.Clone(numberConditions)
	case TypeBool:
		return slices.Clone(boolConditions)
	case TypeSet:
		return slices.Clone(setConditions)
	default:
		return nil
	}
}

// Validate checks that symbol may be used with a property of type t.
func Validate(property string, t ValueType, symbol string) error {
	symbol = strings.ToLower(strings.TrimSpace(symbol))
	allowed := AllowedSymbols(t)
	if !slices.Contains(allowed, symbol) {
		return fmt.Errorf("%w: [%s] property is of type [%s], unexpected condition [%s] used, allowed: %s",
			ErrInvalidSelectionRule, property, t, symbol, formatList(allowed))
	}
	return nil
}

// Condition resolves and validates symbol for property in one step.
func Condition(property string, t ValueType, symbol string) (ConditionKind, error) {
	kind, err := Resolve(symbol)
	if err != nil {
		return 0, err
	}
	if err := Validate(property, t, symbol); err != nil {
		return 0, err
	}
	if t == TypeSet {
		kind = setCondition(kind)
	}
	if err := checkCondition(property, t, kind); err != nil {
		return 0, err
	}
	return kind, nil
}

// setCondition maps equality-class kinds onto their container meaning.
func setCondition(kind ConditionKind) ConditionKind {
	switch kind {
	case Equal:
		return IsSubset
	case NotEqual:
		return NoIntersection
	default:
		return kind
	}
}

func checkCondition(property string, t ValueType, kind ConditionKind) error {
	allowed := AllowedConditions(t)
	if slices.Contains(allowed, kind) {
		return nil
	}
	names := make([]string, len(allowed))
	for i, k := range allowed {
		names[i] = k.String()
	}
	return fmt.Errorf("%w: [%s] property is of type [%s], condition %s not allowed, allowed: %s",
		ErrInvalidSelectionRule, property, t, kind, formatList(names))
}

func formatList(items []string) string {
	return "[" + strings.Join(items, " ") + "]"
}

package rule

import (
	"slices"
	"strings"

	"github.com/ivoronin/testsel/internal/version"
)

// Checker compares the expected rule value against the actual test value.
// Checkers are total: values of unexpected types yield false.
type Checker func(expected, actual Value) bool

// checkers maps every condition kind to its comparison function.
var checkers = map[ConditionKind]Checker{
	Equal:            areEqual,
	NotEqual:         areNotEqual,
	LessThan:         ordered(func(c int) bool { return c < 0 }),
	LessOrEqual:      ordered(func(c int) bool { return c <= 0 }),
	GreaterThan:      ordered(func(c int) bool { return c > 0 }),
	GreaterOrEqual:   ordered(func(c int) bool { return c >= 0 }),
	Matches:          matchIgnoreCase,
	PartiallyMatches: partiallyMatchIgnoreCase,
	Contains:         contains,
	IsSubset:         isSubset,
	HasIntersection:  hasIntersection,
	NoIntersection:   hasNoIntersection,
}

// Evaluate applies the checker registered for kind.
func Evaluate(kind ConditionKind, expected, actual Value) bool {
	check, ok := checkers[kind]
	if !ok {
		return false
	}
	return check(expected, actual)
}

func areEqual(expected, actual Value) bool {
	if isNumber(expected) && isNumber(actual) {
		return number(actual) == number(expected)
	}
	if expected.Type != actual.Type {
		return false
	}
	switch expected.Type {
	case TypeString:
		if expected.Versioned {
			return version.Compare(actual.Str, expected.Str) == 0
		}
		return actual.Str == expected.Str
	case TypeBool:
		return actual.Bool == expected.Bool
	case TypeSet:
		return isSubset(expected, actual) && isSubset(actual, expected)
	default:
		return false
	}
}

func areNotEqual(expected, actual Value) bool {
	if !sameDomain(expected, actual) {
		return false
	}
	return !areEqual(expected, actual)
}

// ordered builds an ordering checker from a predicate over compare(actual, expected).
// Strings compare lexically unless the expected value is versioned.
func ordered(pred func(cmp int) bool) Checker {
	return func(expected, actual Value) bool {
		switch {
		case isNumber(expected) && isNumber(actual):
			a, e := number(actual), number(expected)
			switch {
			case a < e:
				return pred(-1)
			case a > e:
				return pred(1)
			default:
				return pred(0)
			}
		case expected.Type == TypeString && actual.Type == TypeString:
			if expected.Versioned {
				return pred(version.Compare(actual.Str, expected.Str))
			}
			return pred(strings.Compare(actual.Str, expected.Str))
		default:
			return false
		}
	}
}

func matchIgnoreCase(expected, actual Value) bool {
	if expected.Type != TypeString || actual.Type != TypeString {
		return false
	}
	return strings.EqualFold(actual.Str, expected.Str)
}

func partiallyMatchIgnoreCase(expected, actual Value) bool {
	if expected.Type != TypeString || actual.Type != TypeString {
		return false
	}
	return strings.Contains(strings.ToLower(actual.Str), strings.ToLower(expected.Str))
}

func contains(expected, actual Value) bool {
	switch actual.Type {
	case TypeString:
		return expected.Type == TypeString && strings.Contains(actual.Str, expected.Str)
	case TypeSet:
		return isSubset(expected, actual)
	default:
		return false
	}
}

// isSubset reports whether every item of expected is present in actual.
// A string expected value is treated as a single-item set.
func isSubset(expected, actual Value) bool {
	items, ok := setItems(expected)
	if !ok || actual.Type != TypeSet {
		return false
	}
	for _, item := range items {
		if !slices.Contains(actual.Set, item) {
			return false
		}
	}
	return true
}

func hasIntersection(expected, actual Value) bool {
	items, ok := setItems(expected)
	if !ok || actual.Type != TypeSet {
		return false
	}
	for _, item := range items {
		if slices.Contains(actual.Set, item) {
			return true
		}
	}
	return false
}

func hasNoIntersection(expected, actual Value) bool {
	if _, ok := setItems(expected); !ok || actual.Type != TypeSet {
		return false
	}
	return !hasIntersection(expected, actual)
}

func setItems(v Value) ([]string, bool) {
	switch v.Type {
	case TypeSet:
		return v.Set, true
	case TypeString:
		return SetValue(v.Str).Set, true
	default:
		return nil, false
	}
}

func sameDomain(a, b Value) bool {
	return a.Type == b.Type || (isNumber(a) && isNumber(b))
}

func isNumber(v Value) bool {
	return v.Type == TypeInt || v.Type == TypeFloat
}

func number(v Value) float64 {
	if v.Type == TypeInt {
		return float64(v.Int)
	}
	return v.Float
}

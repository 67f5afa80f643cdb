// Package rule provides parsing, validation and evaluation of test selection rules.
package rule

import (
	"errors"
	"strconv"
	"strings"
)

// ErrInvalidSelectionRule is wrapped by every error produced while building a rule.
var ErrInvalidSelectionRule = errors.New("invalid selection rule")

// ValueType is the declared type of a property value.
type ValueType int

const (
	TypeString ValueType = iota
	TypeBool
	TypeInt
	TypeFloat
	TypeSet // tag-like containers: tags, bugs, envs
)

func (t ValueType) String() string {
	switch t {
	case TypeString:
		return "str"
	case TypeBool:
		return "bool"
	case TypeInt:
		return "int"
	case TypeFloat:
		return "float"
	case TypeSet:
		return "set"
	default:
		return "unknown"
	}
}

// ConditionKind is the canonical comparison a symbol resolves to.
type ConditionKind int

const (
	Equal ConditionKind = iota
	NotEqual
	LessThan
	LessOrEqual
	GreaterThan
	GreaterOrEqual
	Matches
	PartiallyMatches
	Contains
	IsSubset
	HasIntersection
	NoIntersection
)

var conditionNames = [...]string{
	Equal:            "EQUAL",
	NotEqual:         "NOT_EQUAL",
	LessThan:         "LESS_THAN",
	LessOrEqual:      "LESS_OR_EQUAL",
	GreaterThan:      "GREATER_THAN",
	GreaterOrEqual:   "GREATER_OR_EQUAL",
	Matches:          "MATCHES",
	PartiallyMatches: "PARTIALLY_MATCHES",
	Contains:         "CONTAINS",
	IsSubset:         "IS_SUBSET",
	HasIntersection:  "HAS_INTERSECTION",
	NoIntersection:   "NO_INTERSECTION",
}

func (k ConditionKind) String() string {
	if k < 0 || int(k) >= len(conditionNames) {
		return "UNKNOWN"
	}
	return conditionNames[k]
}

// Value is a typed comparison value. Exactly one payload field is meaningful,
// selected by Type. Versioned string values compare as versions, other
// strings compare lexically.
type Value struct {
	Type      ValueType
	Str       string
	Bool      bool
	Int       int64
	Float     float64
	Set       []string
	Versioned bool
}

func StringValue(s string) Value { return Value{Type: TypeString, Str: s} }

// VersionValue builds a string value ordered by version.Compare.
func VersionValue(s string) Value { return Value{Type: TypeString, Str: s, Versioned: true} }
func BoolValue(b bool) Value     { return Value{Type: TypeBool, Bool: b} }
func IntValue(i int64) Value     { return Value{Type: TypeInt, Int: i} }
func FloatValue(f float64) Value { return Value{Type: TypeFloat, Float: f} }

// SetValue builds a set value. Items are trimmed and lowercased, empty items
// and duplicates are dropped.
func SetValue(items ...string) Value {
	set := make([]string, 0, len(items))
	seen := make(map[string]struct{}, len(items))
	for _, item := range items {
		item = strings.ToLower(strings.TrimSpace(item))
		if item == "" {
			continue
		}
		if _, ok := seen[item]; ok {
			continue
		}
		seen[item] = struct{}{}
		set = append(set, item)
	}
	return Value{Type: TypeSet, Set: set}
}

func (v Value) String() string {
	switch v.Type {
	case TypeBool:
		return strconv.FormatBool(v.Bool)
	case TypeInt:
		return strconv.FormatInt(v.Int, 10)
	case TypeFloat:
		return strconv.FormatFloat(v.Float, 'g', -1, 64)
	case TypeSet:
		return strings.Join(v.Set, ",")
	default:
		return v.Str
	}
}

// clone returns a copy that shares no memory with v.
func (v Value) clone() Value {
	if v.Set != nil {
		v.Set = append([]string(nil), v.Set...)
	}
	return v
}

// Metadata is a snapshot of one test's properties.
type Metadata map[string]any

// Lookup returns the value stored under name. Exact keys win over
// case-insensitive matches; among several of those the key sorting first wins.
func (m Metadata) Lookup(name string) (any, bool) {
	if v, ok := m[name]; ok {
		return v, true
	}
	found := ""
	ok := false
	for k := range m {
		if strings.EqualFold(k, name) && (!ok || k < found) {
			found, ok = k, true
		}
	}
	if !ok {
		return nil, false
	}
	return m[found], true
}

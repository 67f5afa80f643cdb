// Package selection decides which tests run by combining selection rules.
package selection

import (
	"fmt"
	"strings"

	"github.com/ivoronin/testsel/internal/rule"
)

// Combinator folds the results of several rules into one decision.
type Combinator interface {
	Name() string
	// Match reports whether m satisfies rules. It is only called with a
	// non-empty rule list.
	Match(rules []rule.Rule, m rule.Metadata) bool
}

var (
	// Any matches when at least one rule matches (OR).
	Any Combinator = anyCombinator{}
	// All matches when every rule matches (AND).
	All Combinator = allCombinator{}
)

type anyCombinator struct{}

func (anyCombinator) Name() string { return "any" }

func (anyCombinator) Match(rules []rule.Rule, m rule.Metadata) bool {
	_, ok := firstMatch(rules, m)
	return ok
}

type allCombinator struct{}

func (allCombinator) Name() string { return "all" }

func (allCombinator) Match(rules []rule.Rule, m rule.Metadata) bool {
	for _, r := range rules {
		if !r.Matches(m) {
			return false
		}
	}
	return true
}

// CombinatorByName returns the combinator registered under name ("any"/"or", "all"/"and").
func CombinatorByName(name string) (Combinator, error) {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "any", "or":
		return Any, nil
	case "all", "and":
		return All, nil
	default:
		return nil, fmt.Errorf("unknown combinator %q, allowed: any, all", name)
	}
}

func firstMatch(rules []rule.Rule, m rule.Metadata) (rule.Rule, bool) {
	for _, r := range rules {
		if r.Matches(m) {
			return r, true
		}
	}
	return rule.Rule{}, false
}

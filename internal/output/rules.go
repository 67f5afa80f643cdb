package output

import "github.com/ivoronin/testsel/internal/rule"

// RuleEntry describes one parsed rule.
type RuleEntry struct {
	Expression string `json:"expression" yaml:"expression"`
	Property   string `json:"property" yaml:"property"`
	Type       string `json:"type" yaml:"type"`
	BuiltIn    bool   `json:"built_in" yaml:"built_in"`
	Condition  string `json:"condition" yaml:"condition"`
	Value      string `json:"value" yaml:"value"`
}

// RuleList renders parsed rules.
type RuleList struct {
	Entries []RuleEntry
}

// NewRuleList pairs each expression with the rule parsed from it.
func NewRuleList(exprs []string, rules []rule.Rule) *RuleList {
	l := &RuleList{Entries: make([]RuleEntry, 0, len(rules))}
	for i, r := range rules {
		e := RuleEntry{
			Property:  r.Property(),
			Type:      r.Type().String(),
			BuiltIn:   r.BuiltIn(),
			Condition: r.Kind().String(),
			Value:     r.Expected().String(),
		}
		if i < len(exprs) {
			e.Expression = exprs[i]
		}
		l.Entries = append(l.Entries, e)
	}
	return l
}

// FormatText returns an EXPRESSION, PROPERTY, TYPE, CONDITION, VALUE table.
func (l *RuleList) FormatText() string {
	tw := NewTableWriter("EXPRESSION", "PROPERTY", "TYPE", "CONDITION", "VALUE")
	for _, e := range l.Entries {
		typ := e.Type
		if !e.BuiltIn && e.Type != rule.TypeSet.String() {
			typ += " (user)"
		}
		tw.Row(e.Expression, e.Property, typ, e.Condition, e.Value)
	}
	return tw.String()
}

// Data returns the rule entries.
func (l *RuleList) Data() any {
	return l.Entries
}

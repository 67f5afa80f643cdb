package rule

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/alecthomas/participle/v2"
	"github.com/alecthomas/participle/v2/lexer"
)

// AST types for Participle grammar

// ruleExpr covers every rule form:
//
//	priority gt 2
//	name = "login page"
//	tags is smoke, fast
//	with tags smoke, fast
//	without bugs b-12
//	unstable
//	not unstable
type ruleExpr struct {
	Subject string   `parser:"@Word"`
	Symbol  string   `parser:"( @Operator | @Word )?"`
	Values  []string `parser:"( @( String | Word ) ( ',' @( String | Word ) )* )?"`
}

// Word excludes operator characters so that "priority>=2" lexes as three tokens.
var ruleLexer = lexer.MustSimple([]lexer.SimpleRule{
	{Name: "Whitespace", Pattern: `\s+`},
	{Name: "String", Pattern: `"(?:\\.|[^"\\])*"|'[^']*'`},
	{Name: "Comma", Pattern: `,`},
	{Name: "Operator", Pattern: `==|!=|~=|\*=|<=|>=|=|<|>`},
	{Name: "Word", Pattern: `[^\s,'"=!~*<>]+`},
})

var ruleParser = participle.MustBuild[ruleExpr](
	participle.Lexer(ruleLexer),
	participle.Elide("Whitespace"),
)

// Parse parses a single rule expression like "priority gt 2" or "with tags smoke".
func Parse(expr string) (Rule, error) {
	expr = strings.TrimSpace(expr)
	if expr == "" {
		return Rule{}, fmt.Errorf("%w: empty rule expression", ErrInvalidSelectionRule)
	}

	ast, err := ruleParser.ParseString("", expr)
	if err != nil {
		return Rule{}, fmt.Errorf("%w: invalid rule %q: %v", ErrInvalidSelectionRule, expr, err)
	}

	r, err := convertRule(ast)
	if err != nil {
		return Rule{}, fmt.Errorf("rule %q: %w", expr, err)
	}
	return r, nil
}

// ParseAll parses every expression, stopping at the first invalid one.
func ParseAll(exprs []string) ([]Rule, error) {
	rules := make([]Rule, 0, len(exprs))
	for _, expr := range exprs {
		r, err := Parse(expr)
		if err != nil {
			return nil, err
		}
		rules = append(rules, r)
	}
	return rules, nil
}

// convertRule converts the AST to a validated Rule
func convertRule(e *ruleExpr) (Rule, error) {
	values := make([]string, len(e.Values))
	for i, v := range e.Values {
		values[i] = unquote(v)
	}
	subject := strings.ToLower(e.Subject)

	switch {
	// with/without <container> a, b
	case (subject == "with" || subject == "without") && e.Symbol != "" && len(values) > 0:
		kind := HasIntersection
		if subject == "without" {
			kind = NoIntersection
		}
		return NewContainer(e.Symbol, kind, values...)

	// bare property
	case e.Symbol == "" && len(values) == 0:
		return newFlag(e.Subject, true)

	// not <property>
	case subject == "not" && e.Symbol != "" && len(values) == 0:
		return newFlag(e.Symbol, false)

	case e.Symbol != "" && len(values) > 0:
		if len(values) == 1 {
			return New(e.Subject, e.Symbol, values[0])
		}
		if !IsContainer(e.Subject) {
			return Rule{}, fmt.Errorf("%w: multiple values are only allowed for containers %s",
				ErrInvalidSelectionRule, formatList(containerAliases))
		}
		return New(e.Subject, e.Symbol, values)
	}

	return Rule{}, fmt.Errorf("%w: expected <property> <symbol> <value>", ErrInvalidSelectionRule)
}

// newFlag builds "property is true/false" for the bare and negated forms.
func newFlag(property string, want bool) (Rule, error) {
	if IsContainer(property) {
		return Rule{}, fmt.Errorf("%w: container [%s] needs values", ErrInvalidSelectionRule, property)
	}
	return New(property, "is", want)
}

func unquote(s string) string {
	switch {
	case len(s) >= 2 && s[0] == '"':
		if u, err := strconv.Unquote(s); err == nil {
			return u
		}
		return s[1 : len(s)-1]
	case len(s) >= 2 && s[0] == '\'':
		return s[1 : len(s)-1]
	default:
		return s
	}
}

package selection

import (
	"context"
	"fmt"
	"log/slog"
	"runtime"

	"golang.org/x/sync/errgroup"

	"github.com/ivoronin/testsel/internal/catalog"
	"github.com/ivoronin/testsel/internal/rule"
)

// Selector holds include and exclude rules.
// A test is selected when the include rules pass Combine (no include rules
// selects everything) and no exclude rule matches.
type Selector struct {
	Include []rule.Rule
	Exclude []rule.Rule
	Combine Combinator // nil means Any
	Logger  *slog.Logger
}

// Decision is the outcome of evaluating a Selector against one test.
type Decision struct {
	ID       string `json:"id"`
	Selected bool   `json:"selected"`
	Reason   string `json:"reason"`
}

// Decide evaluates the selector against a single metadata snapshot.
func (s *Selector) Decide(m rule.Metadata) (bool, string) {
	if s == nil {
		return true, "no rules"
	}

	if r, ok := firstMatch(s.Exclude, m); ok {
		return false, "excluded by " + r.String()
	}

	if len(s.Include) == 0 {
		return true, "no include rules"
	}

	c := s.combinator()
	if c == Any {
		if r, ok := firstMatch(s.Include, m); ok {
			return true, "included by " + r.String()
		}
		return false, "no include rule matched"
	}
	if c.Match(s.Include, m) {
		return true, fmt.Sprintf("included by %s of %d rules", c.Name(), len(s.Include))
	}
	return false, fmt.Sprintf("include rules not satisfied (%s)", c.Name())
}

// Match reports whether the test is selected.
func (s *Selector) Match(t catalog.Test) bool {
	ok, _ := s.Decide(t.Meta)
	return ok
}

// SelectAll evaluates every test with at most workers goroutines
// (workers <= 0 uses GOMAXPROCS). Decisions keep the order of tests.
func (s *Selector) SelectAll(ctx context.Context, tests []catalog.Test, workers int) ([]Decision, error) {
	if workers <= 0 {
		workers = runtime.GOMAXPROCS(0)
	}

	decisions := make([]Decision, len(tests))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)

	for i, t := range tests {
		if gctx.Err() != nil {
			break
		}
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			ok, reason := s.Decide(t.Meta)
			decisions[i] = Decision{ID: t.ID, Selected: ok, Reason: reason}
			s.logger().Debug("evaluated test", "id", t.ID, "selected", ok, "reason", reason)
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return decisions, nil
}

// Selected returns the tests that match the selector.
func Selected(tests []catalog.Test, s *Selector) []catalog.Test {
	if s == nil {
		return tests
	}

	var result []catalog.Test
	for _, t := range tests {
		if s.Match(t) {
			result = append(result, t)
		}
	}
	return result
}

func (s *Selector) combinator() Combinator {
	if s.Combine == nil {
		return Any
	}
	return s.Combine
}

func (s *Selector) logger() *slog.Logger {
	if s == nil || s.Logger == nil {
		return slog.New(slog.DiscardHandler)
	}
	return s.Logger
}

package output

import (
	"strconv"

	"github.com/ivoronin/testsel/internal/selection"
)

// DecisionList renders selection decisions. Unless All is set only
// selected tests are shown.
type DecisionList struct {
	Decisions []selection.Decision
	All       bool
}

func (l *DecisionList) visible() []selection.Decision {
	if l.All {
		return l.Decisions
	}
	shown := make([]selection.Decision, 0, len(l.Decisions))
	for _, d := range l.Decisions {
		if d.Selected {
			shown = append(shown, d)
		}
	}
	return shown
}

// FormatText returns a TEST, SELECTED, REASON table, or an empty string
// when nothing is shown.
func (l *DecisionList) FormatText() string {
	shown := l.visible()
	if len(shown) == 0 {
		return ""
	}

	tw := NewTableWriter("TEST", "SELECTED", "REASON")
	for _, d := range shown {
		tw.Row(d.ID, strconv.FormatBool(d.Selected), d.Reason)
	}
	return tw.String()
}

// Data returns the shown decisions.
func (l *DecisionList) Data() any {
	return l.visible()
}

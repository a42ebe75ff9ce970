// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 NamedLoot Contributors

package rule

// Outcome classifies how a group fared against a query.
type Outcome int

// Group outcomes.
const (
	OutcomeDisabled Outcome = iota
	OutcomeOrphan
	OutcomeFailed
	OutcomeMatched
)

func (o Outcome) String() string {
	switch o {
	case OutcomeDisabled:
		return "disabled"
	case OutcomeOrphan:
		return "orphan"
	case OutcomeFailed:
		return "failed"
	case OutcomeMatched:
		return "matched"
	default:
		return "unknown"
	}
}

// Trace records the evaluation of one group.
type Trace struct {
	Group   int
	Leader  int
	Outcome Outcome

	// FailedAt is the index of the first failing condition for
	// OutcomeFailed, otherwise -1.
	FailedAt int

	// Selected is true for the group Select would return.
	Selected bool
}

// Explain evaluates every group against q and reports why each one did or
// did not match. Unlike Select it does not stop at the first match.
func (s Set) Explain(q Query) []Trace {
	traces := make([]Trace, 0, len(s.groups))
	selected := false

	for i, g := range s.groups {
		t := Trace{Group: i, Leader: g.Leader, FailedAt: -1}

		switch {
		case g.Orphan:
			t.Outcome = OutcomeOrphan
		case !g.Enabled:
			t.Outcome = OutcomeDisabled
		default:
			if idx, ok := g.firstFailure(q); ok {
				t.Outcome = OutcomeMatched
				if !selected {
					t.Selected = true
					selected = true
				}
			} else {
				t.Outcome = OutcomeFailed
				t.FailedAt = idx
			}
		}

		traces = append(traces, t)
	}

	return traces
}

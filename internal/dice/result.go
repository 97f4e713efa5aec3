package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// TermResult is the resolved outcome of a single term: the raw face
// values in draw order and the signed contribution to the total.
type TermResult struct {
	// Term that produced this result
	Term DiceTerm `json:"term"`

	// Outcomes holds the raw face values in draw order; empty for
	// constant terms
	Outcomes []int `json:"outcomes,omitempty"`

	// Subtotal is the signed contribution to the total. For d66 terms
	// this is the composed two-digit value, not a sum.
	Subtotal int `json:"subtotal"`

	// Sorted is set when unordered d66 composition reordered the draws
	Sorted bool `json:"sorted,omitempty"`
}

// Attempt is one complete evaluation of an expression. Advantage and
// disadvantage produce two.
type Attempt struct {
	Terms []TermResult `json:"terms"`
	Total int          `json:"total"`
}

// RollResult is the outcome of evaluating an expression. The total is
// fully determined by the expression, the mode, and the raw outcomes,
// so a stored result can be recomputed and verified later. Results are
// never mutated after evaluation.
type RollResult struct {
	// Expression is the text that was rolled: the original input on
	// the Roll path, the canonical form on the Evaluate path
	Expression string `json:"expression"`

	// Mode the expression was evaluated under
	Mode RollMode `json:"mode"`

	// Terms is the per-term breakdown of the evaluation that produced
	// Total, in input order
	Terms []TermResult `json:"terms"`

	// Total is the final value; for d66 modes it is the composed
	// two-digit value
	Total int `json:"total"`

	// Attempts holds both complete evaluations, in draw order, when the
	// mode is advantage or disadvantage; nil otherwise
	Attempts []Attempt `json:"attempts,omitempty"`

	// Kept is the index into Attempts of the evaluation that produced
	// Total
	Kept int `json:"kept,omitempty"`
}

// Outcomes returns every raw die outcome of the kept evaluation in draw
// order, flattened across terms.
func (r *RollResult) Outcomes() []int {
	var out []int
	for _, t := range r.Terms {
		out = append(out, t.Outcomes...)
	}
	return out
}

// Description renders a one-line breakdown of the roll, for example
// "[3, 5] +3 = 11" or "d66: 3,5 (sorted: 5,3) → 53". Advantage and
// disadvantage show both attempts and tag the kept total.
func (r *RollResult) Description() string {
	switch r.Mode {
	case RollModeD66, RollModeD66Unordered:
		return r.d66Description()
	case RollModeAdvantage, RollModeDisadvantage:
		tag := "adv"
		if r.Mode == RollModeDisadvantage {
			tag = "dis"
		}
		parts := make([]string, len(r.Attempts))
		for i, a := range r.Attempts {
			parts[i] = describeTerms(a.Terms, a.Total)
		}
		return fmt.Sprintf("%s (%s: %d)", strings.Join(parts, " | "), tag, r.Total)
	default:
		return describeTerms(r.Terms, r.Total)
	}
}

func (r *RollResult) d66Description() string {
	tr := r.Terms[0]
	var sb strings.Builder
	fmt.Fprintf(&sb, "d66: %d,%d", tr.Outcomes[0], tr.Outcomes[1])
	if tr.Sorted {
		fmt.Fprintf(&sb, " (sorted: %d,%d)", r.Total/10, r.Total%10)
	}
	fmt.Fprintf(&sb, " → %d", r.Total)
	return sb.String()
}

func describeTerms(terms []TermResult, total int) string {
	var sb strings.Builder
	for i, tr := range terms {
		if i > 0 {
			sb.WriteByte(' ')
		}
		if tr.Term.IsConstant() {
			if tr.Term.Negative {
				sb.WriteByte('-')
			} else {
				sb.WriteByte('+')
			}
			sb.WriteString(strconv.Itoa(tr.Term.Value))
			continue
		}
		if tr.Term.Negative {
			sb.WriteByte('-')
		}
		faces := make([]string, len(tr.Outcomes))
		for j, v := range tr.Outcomes {
			faces[j] = strconv.Itoa(v)
		}
		sb.WriteString("[" + strings.Join(faces, ", ") + "]")
	}
	fmt.Fprintf(&sb, " = %d", total)
	return sb.String()
}

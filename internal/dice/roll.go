package dice

// Evaluate executes a parsed expression under the given mode, drawing
// from src. The expression must structurally match the mode: the d66
// modes require the d66 token, every other mode requires its absence.
// A mismatch returns an *EvaluationError and consumes no draws.
func Evaluate(expr *Expression, mode RollMode, src Source) (*RollResult, error) {
	if expr == nil || len(expr.Terms) == 0 {
		return nil, &EvaluationError{Mode: mode, Reason: "expression has no terms"}
	}
	return evaluate(expr, mode, src, expr.String())
}

// Roll parses text and evaluates it under the mode the text implies.
// It is the one-step entry point for callers holding raw expression
// text; the result keeps the original text rather than the canonical
// form.
func Roll(text string, src Source) (*RollResult, error) {
	expr, err := Parse(text)
	if err != nil {
		return nil, err
	}
	return evaluate(expr, expr.Mode(), src, text)
}

func evaluate(expr *Expression, mode RollMode, src Source, text string) (*RollResult, error) {
	if src == nil {
		return nil, &EvaluationError{Expression: text, Mode: mode, Reason: "no random source supplied"}
	}

	switch mode {
	case RollModeStandard:
		if expr.IsD66() {
			return nil, &EvaluationError{Expression: text, Mode: mode, Reason: "a d66 expression requires a d66 mode"}
		}
		terms, total := rollTerms(expr, src)
		return &RollResult{Expression: text, Mode: mode, Terms: terms, Total: total}, nil

	case RollModeD66, RollModeD66Unordered:
		if !expr.IsD66() {
			return nil, &EvaluationError{Expression: text, Mode: mode, Reason: "expression has no d66 token"}
		}
		return rollD66(expr, mode, src, text), nil

	case RollModeAdvantage, RollModeDisadvantage:
		if expr.IsD66() {
			return nil, &EvaluationError{Expression: text, Mode: mode, Reason: "advantage and disadvantage apply to standard expressions only"}
		}
		firstTerms, firstTotal := rollTerms(expr, src)
		secondTerms, secondTotal := rollTerms(expr, src)

		// Ties keep the first attempt.
		kept := 0
		if mode == RollModeAdvantage && secondTotal > firstTotal {
			kept = 1
		}
		if mode == RollModeDisadvantage && secondTotal < firstTotal {
			kept = 1
		}

		attempts := []Attempt{
			{Terms: firstTerms, Total: firstTotal},
			{Terms: secondTerms, Total: secondTotal},
		}
		return &RollResult{
			Expression: text,
			Mode:       mode,
			Terms:      attempts[kept].Terms,
			Total:      attempts[kept].Total,
			Attempts:   attempts,
			Kept:       kept,
		}, nil

	default:
		return nil, &EvaluationError{Expression: text, Mode: mode, Reason: "unknown roll mode"}
	}
}

// rollTerms draws every die of every term in input order and returns
// the per-term breakdown plus the signed sum.
func rollTerms(expr *Expression, src Source) ([]TermResult, int) {
	results := make([]TermResult, 0, len(expr.Terms))
	total := 0
	for _, term := range expr.Terms {
		tr := TermResult{Term: term}
		if term.IsConstant() {
			tr.Subtotal = term.Value
		} else {
			tr.Outcomes = make([]int, term.Count)
			sum := 0
			for i := range tr.Outcomes {
				v := src.Intn(term.Sides) + 1
				tr.Outcomes[i] = v
				sum += v
			}
			tr.Subtotal = sum
		}
		if term.Negative {
			tr.Subtotal = -tr.Subtotal
		}
		total += tr.Subtotal
		results = append(results, tr)
	}
	return results, total
}

// rollD66 draws the two d6 of a composite roll and joins them into a
// two-digit value. Ordered mode assigns the tens digit by draw order;
// unordered mode sorts the pair descending first and flags the result.
func rollD66(expr *Expression, mode RollMode, src Source, text string) *RollResult {
	first := src.Intn(6) + 1
	second := src.Intn(6) + 1

	tens, units := first, second
	sorted := false
	if mode == RollModeD66Unordered {
		sorted = true
		if second > first {
			tens, units = second, first
		}
	}
	composed := tens*10 + units

	tr := TermResult{
		Term:     expr.Terms[0],
		Outcomes: []int{first, second},
		Subtotal: composed,
		Sorted:   sorted,
	}
	return &RollResult{
		Expression: text,
		Mode:       mode,
		Terms:      []TermResult{tr},
		Total:      composed,
	}
}

package dice

import (
	"fmt"
	"strconv"
	"strings"
)

// SidesD66 marks a term as the composite d66 roll rather than a die with
// 66 faces. Two six-sided dice are drawn and combined into a two-digit
// value.
const SidesD66 = 66

// RollMode selects how an expression is evaluated.
type RollMode string

// Roll modes
const (
	// RollModeStandard sums every term
	RollModeStandard RollMode = "standard"

	// RollModeD66 composes two d6 into a two-digit value in draw order
	RollModeD66 RollMode = "d66"

	// RollModeD66Unordered sorts the two d6 descending before composing
	RollModeD66Unordered RollMode = "d66u"

	// RollModeAdvantage evaluates twice and keeps the higher total
	RollModeAdvantage RollMode = "advantage"

	// RollModeDisadvantage evaluates twice and keeps the lower total
	RollModeDisadvantage RollMode = "disadvantage"
)

// DiceTerm is one additive term of an expression: either a group of
// dice ("2d6") or a constant modifier ("3"). Count is zero for
// constants.
type DiceTerm struct {
	// Count is the number of dice to roll; zero marks a constant term
	Count int `json:"count,omitempty"`

	// Sides is the face count per die; SidesD66 marks the composite
	// d66 token
	Sides int `json:"sides,omitempty"`

	// Value holds a constant term's modifier
	Value int `json:"value,omitempty"`

	// Negative subtracts the term from the running total
	Negative bool `json:"negative,omitempty"`

	// Unordered selects the sorted d66 variant ("d66u")
	Unordered bool `json:"unordered,omitempty"`
}

// IsConstant reports whether the term is a bare modifier with no dice.
func (t DiceTerm) IsConstant() bool {
	return t.Count == 0
}

// IsD66 reports whether the term is the composite d66 token.
func (t DiceTerm) IsD66() bool {
	return !t.IsConstant() && t.Sides == SidesD66
}

// String returns the canonical text of the term without a leading sign.
func (t DiceTerm) String() string {
	if t.IsConstant() {
		return strconv.Itoa(t.Value)
	}
	if t.IsD66() {
		if t.Unordered {
			return "d66u"
		}
		return "d66"
	}
	if t.Count == 1 {
		return "d" + strconv.Itoa(t.Sides)
	}
	return fmt.Sprintf("%dd%d", t.Count, t.Sides)
}

// Expression is an ordered sequence of terms combined by addition and
// subtraction, produced by Parse. Term order is preserved so that
// breakdowns and draw order follow the input text.
type Expression struct {
	Terms []DiceTerm `json:"terms"`
}

// String returns the canonical text form of the expression: lowercase,
// no whitespace, no redundant leading plus. Parsing the result yields a
// structurally equal Expression.
func (e *Expression) String() string {
	var sb strings.Builder
	for i, t := range e.Terms {
		if t.Negative {
			sb.WriteByte('-')
		} else if i > 0 {
			sb.WriteByte('+')
		}
		sb.WriteString(t.String())
	}
	return sb.String()
}

// IsD66 reports whether the expression is a composite d66 roll.
func (e *Expression) IsD66() bool {
	for _, t := range e.Terms {
		if t.IsD66() {
			return true
		}
	}
	return false
}

// Mode returns the evaluation mode the expression itself implies: one
// of the d66 modes when the d66 token is present, standard otherwise.
// Advantage and disadvantage are caller choices and are never inferred
// from text.
func (e *Expression) Mode() RollMode {
	for _, t := range e.Terms {
		if t.IsD66() {
			if t.Unordered {
				return RollModeD66Unordered
			}
			return RollModeD66
		}
	}
	return RollModeStandard
}

// Limits bounds the work a parsed expression may demand. Expressions
// inside the bounds always evaluate in time proportional to the number
// of dice drawn.
type Limits struct {
	// MaxDice caps the total number of dice across all terms
	MaxDice int

	// MaxSides caps the face count of any single die term
	MaxSides int
}

// DefaultLimits returns the bounds Parse applies.
func DefaultLimits() Limits {
	return Limits{
		MaxDice:  10000,
		MaxSides: 10000,
	}
}

package dice

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"
	"unicode"
)

// dieTermRegex matches a single dice term: optional count, the d
// separator, the face count, and the u suffix reserved for d66.
var dieTermRegex = regexp.MustCompile(`^(\d+)?[dD](\d+)([uU])?$`)

// Parse converts expression text into an Expression under
// DefaultLimits.
func Parse(text string) (*Expression, error) {
	return ParseWithLimits(text, DefaultLimits())
}

// ParseWithLimits converts expression text into an Expression, failing
// with a *ParseError when the text is malformed or exceeds the limits.
//
// The grammar is terms joined by + or -, where each term is either dice
// ("2d6", "d20", "d66", "d66u") or a bare integer modifier. Whitespace
// is ignored anywhere and the d separator is case-insensitive. A
// leading + is redundant and allowed; a leading - is allowed only on a
// constant term, since a die term cannot have a negative count. A d66
// token must be the entire expression.
func ParseWithLimits(text string, limits Limits) (*Expression, error) {
	cleaned := stripSpace(text)
	if cleaned == "" {
		return nil, &ParseError{Input: text, Reason: "expression is empty"}
	}

	expr := &Expression{}
	totalDice := 0
	pos := 0
	for pos < len(cleaned) {
		negative := false
		first := pos == 0
		if !first || cleaned[pos] == '+' || cleaned[pos] == '-' {
			negative = cleaned[pos] == '-'
			pos++
		}

		start := pos
		for pos < len(cleaned) && cleaned[pos] != '+' && cleaned[pos] != '-' {
			pos++
		}
		chunk := cleaned[start:pos]
		if chunk == "" {
			return nil, &ParseError{Input: text, Token: string(cleaned[start-1]), Reason: "has no term after it"}
		}

		term, err := parseTerm(text, chunk, negative, first)
		if err != nil {
			return nil, err
		}

		if !term.IsConstant() {
			if !term.IsD66() && term.Sides > limits.MaxSides {
				return nil, &ParseError{
					Input:  text,
					Token:  chunk,
					Reason: fmt.Sprintf("exceeds the die size limit of %d", limits.MaxSides),
				}
			}
			drawn := term.Count
			if term.IsD66() {
				drawn = 2
			}
			totalDice += drawn
			if totalDice > limits.MaxDice {
				return nil, &ParseError{
					Input:  text,
					Token:  chunk,
					Reason: fmt.Sprintf("pushes the expression past the limit of %d dice", limits.MaxDice),
				}
			}
		}

		expr.Terms = append(expr.Terms, term)
	}

	// d66 is all or nothing: it never combines with other terms, not
	// even another d66.
	if expr.IsD66() && len(expr.Terms) > 1 {
		return nil, &ParseError{Input: text, Token: "d66", Reason: "cannot be combined with other terms"}
	}

	return expr, nil
}

// parseTerm converts one sign-free chunk into a term. The first term of
// an expression may not be a negated die group, because the minus would
// read as a negative count.
func parseTerm(input, chunk string, negative, first bool) (DiceTerm, error) {
	if isDigits(chunk) {
		v, err := strconv.Atoi(chunk)
		if err != nil {
			return DiceTerm{}, &ParseError{Input: input, Token: chunk, Reason: "is out of range for a modifier"}
		}
		return DiceTerm{Value: v, Negative: negative}, nil
	}

	m := dieTermRegex.FindStringSubmatch(chunk)
	if m == nil {
		return DiceTerm{}, &ParseError{Input: input, Token: chunk, Reason: "is not a dice term or modifier"}
	}

	if negative && first {
		return DiceTerm{}, &ParseError{Input: input, Token: "-" + chunk, Reason: "has a non-positive dice count"}
	}

	count := 1
	if m[1] != "" {
		c, err := strconv.Atoi(m[1])
		if err != nil {
			return DiceTerm{}, &ParseError{Input: input, Token: chunk, Reason: "is out of range for a dice count"}
		}
		count = c
	}
	if count < 1 {
		return DiceTerm{}, &ParseError{Input: input, Token: chunk, Reason: "has a non-positive dice count"}
	}

	sides, err := strconv.Atoi(m[2])
	if err != nil {
		return DiceTerm{}, &ParseError{Input: input, Token: chunk, Reason: "is out of range for a die size"}
	}
	unordered := m[3] != ""

	// 66 always reads as the composite roll, never as a 66-sided die.
	if sides == SidesD66 {
		if count != 1 {
			return DiceTerm{}, &ParseError{Input: input, Token: chunk, Reason: "d66 already draws two dice and takes no count"}
		}
		return DiceTerm{Count: 1, Sides: SidesD66, Negative: negative, Unordered: unordered}, nil
	}

	if unordered {
		return DiceTerm{}, &ParseError{Input: input, Token: chunk, Reason: "the u suffix applies only to d66"}
	}
	if sides < 2 {
		return DiceTerm{}, &ParseError{Input: input, Token: chunk, Reason: "has a die size below 2"}
	}

	return DiceTerm{Count: count, Sides: sides, Negative: negative}, nil
}

func stripSpace(s string) string {
	return strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, s)
}

func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return true
}

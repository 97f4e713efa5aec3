// Package dice parses dice expressions and evaluates them against a
// seedable random source.
//
// Expressions follow Cepheus Engine conventions: one or more additive
// terms such as "2d6+3" or "d20-1d4+2", plus the composite d66 roll
// where two six-sided dice form a two-digit value instead of a sum.
// "d66" keeps draw order (first die is the tens digit), "d66u" sorts
// the pair descending before composing. A d66 token is always the
// entire expression; it never mixes with other terms.
//
// # Determinism
//
// Randomness is an injected Source. NewSource(seed) yields a generator
// whose draw sequence is stable across runs, so the same expression,
// mode, and seed always reproduce the same raw outcomes and the same
// total. Draws are consumed in term order, then in sub-die order within
// a term, left to right as written. Advantage and disadvantage evaluate
// the expression twice; the first evaluation consumes all of its draws
// before the second begins. Reordering terms changes which draw lands
// on which die, never the distribution.
//
// # Concurrency
//
// Parsing is pure and evaluation touches no shared state. A Source is
// not safe for concurrent use; give each concurrent caller its own,
// either seeded explicitly or from NewRandomSource.
package dice

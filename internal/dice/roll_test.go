package dice_test

import (
	"math/rand"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/cepheus-dice/internal/dice"
)

// scriptedSource feeds a fixed sequence of draws so tests can pin exact
// outcomes. Each entry is the zero-based draw, so a face of 3 is
// scripted as 2.
type scriptedSource struct {
	draws []int
	pos   int
}

func (s *scriptedSource) Intn(n int) int {
	v := s.draws[s.pos]
	s.pos++
	return v % n
}

func faces(values ...int) *scriptedSource {
	draws := make([]int, len(values))
	for i, v := range values {
		draws[i] = v - 1
	}
	return &scriptedSource{draws: draws}
}

func TestRollDeterministic(t *testing.T) {
	first, err := dice.Roll("2d6+3", dice.NewSource(42))
	require.NoError(t, err)

	second, err := dice.Roll("2d6+3", dice.NewSource(42))
	require.NoError(t, err)

	// Same seed, same expression: identical breakdowns, not just the
	// same total.
	assert.Equal(t, first, second)
	assert.Equal(t, "2d6+3", first.Expression)
	assert.Equal(t, dice.RollModeStandard, first.Mode)
	require.Len(t, first.Terms, 2)
	assert.Equal(t, dice.DiceTerm{Count: 2, Sides: 6}, first.Terms[0].Term)
	assert.Equal(t, dice.DiceTerm{Value: 3}, first.Terms[1].Term)
}

func TestRollStandardSums(t *testing.T) {
	result, err := dice.Roll("3d6-4", dice.NewSource(7))
	require.NoError(t, err)

	require.Len(t, result.Terms, 2)
	group := result.Terms[0]
	require.Len(t, group.Outcomes, 3)

	sum := 0
	for _, v := range group.Outcomes {
		assert.GreaterOrEqual(t, v, 1)
		assert.LessOrEqual(t, v, 6)
		sum += v
	}
	assert.Equal(t, sum, group.Subtotal)
	assert.Equal(t, -4, result.Terms[1].Subtotal)
	assert.Equal(t, sum-4, result.Total)
}

func TestRollNegativeDieGroup(t *testing.T) {
	result, err := dice.Roll("d20-1d4", faces(15, 3))
	require.NoError(t, err)

	assert.Equal(t, 15, result.Terms[0].Subtotal)
	assert.Equal(t, -3, result.Terms[1].Subtotal)
	assert.Equal(t, 12, result.Total)
	assert.Equal(t, []int{15, 3}, result.Outcomes())
}

func TestRollDrawOrder(t *testing.T) {
	// Draws are consumed in term order, then sub-die order, left to
	// right as written. Mirror the generator to pin the exact mapping.
	const seed = 99
	result, err := dice.Roll("2d6+1d4", dice.NewSource(seed))
	require.NoError(t, err)

	mirror := rand.New(rand.NewSource(seed))
	want := []int{mirror.Intn(6) + 1, mirror.Intn(6) + 1, mirror.Intn(4) + 1}
	assert.Equal(t, want, result.Outcomes())
	assert.Equal(t, want[:2], result.Terms[0].Outcomes)
	assert.Equal(t, want[2:], result.Terms[1].Outcomes)
}

func TestRollD66Ordered(t *testing.T) {
	result, err := dice.Roll("d66", faces(3, 5))
	require.NoError(t, err)

	assert.Equal(t, dice.RollModeD66, result.Mode)
	assert.Equal(t, []int{3, 5}, result.Terms[0].Outcomes)
	assert.Equal(t, 35, result.Total)
	assert.False(t, result.Terms[0].Sorted)

	// Reversed draws compose the other two-digit value.
	result, err = dice.Roll("d66", faces(5, 3))
	require.NoError(t, err)
	assert.Equal(t, 53, result.Total)
}

func TestRollD66Unordered(t *testing.T) {
	result, err := dice.Roll("d66u", faces(3, 5))
	require.NoError(t, err)

	assert.Equal(t, dice.RollModeD66Unordered, result.Mode)
	assert.Equal(t, []int{3, 5}, result.Terms[0].Outcomes)
	assert.Equal(t, 53, result.Total)
	assert.True(t, result.Terms[0].Sorted)

	// Draw order stops mattering once the pair is sorted.
	result, err = dice.Roll("d66u", faces(5, 3))
	require.NoError(t, err)
	assert.Equal(t, []int{5, 3}, result.Terms[0].Outcomes)
	assert.Equal(t, 53, result.Total)
}

func TestRollD66Range(t *testing.T) {
	for seed := int64(0); seed < 25; seed++ {
		result, err := dice.Roll("d66", dice.NewSource(seed))
		require.NoError(t, err)

		out := result.Terms[0].Outcomes
		require.Len(t, out, 2)
		assert.Equal(t, out[0]*10+out[1], result.Total)
		assert.GreaterOrEqual(t, result.Total, 11)
		assert.LessOrEqual(t, result.Total, 66)
	}
}

func TestRollD66SharesDraws(t *testing.T) {
	// The two d66 variants consume the same raw draws for a given
	// seed; only the composition differs.
	ordered, err := dice.Roll("d66", dice.NewSource(11))
	require.NoError(t, err)

	unordered, err := dice.Roll("d66u", dice.NewSource(11))
	require.NoError(t, err)

	assert.Equal(t, ordered.Terms[0].Outcomes, unordered.Terms[0].Outcomes)
}

func TestEvaluateAdvantage(t *testing.T) {
	expr, err := dice.Parse("2d6+3")
	require.NoError(t, err)

	t.Run("keeps the higher attempt", func(t *testing.T) {
		result, err := dice.Evaluate(expr, dice.RollModeAdvantage, faces(1, 2, 6, 5))
		require.NoError(t, err)

		require.Len(t, result.Attempts, 2)
		assert.Equal(t, 6, result.Attempts[0].Total)
		assert.Equal(t, 14, result.Attempts[1].Total)
		assert.Equal(t, 14, result.Total)
		assert.Equal(t, 1, result.Kept)
		assert.Equal(t, result.Attempts[1].Terms, result.Terms)
	})

	t.Run("ties keep the first attempt", func(t *testing.T) {
		result, err := dice.Evaluate(expr, dice.RollModeAdvantage, faces(3, 4, 4, 3))
		require.NoError(t, err)

		assert.Equal(t, 10, result.Total)
		assert.Equal(t, 0, result.Kept)
	})

	t.Run("never below either attempt", func(t *testing.T) {
		for seed := int64(0); seed < 10; seed++ {
			result, err := dice.Evaluate(expr, dice.RollModeAdvantage, dice.NewSource(seed))
			require.NoError(t, err)

			assert.GreaterOrEqual(t, result.Total, result.Attempts[0].Total)
			assert.GreaterOrEqual(t, result.Total, result.Attempts[1].Total)
			assert.Equal(t, result.Attempts[result.Kept].Total, result.Total)
		}
	})
}

func TestEvaluateDisadvantage(t *testing.T) {
	expr, err := dice.Parse("2d6+3")
	require.NoError(t, err)

	result, err := dice.Evaluate(expr, dice.RollModeDisadvantage, faces(1, 2, 6, 5))
	require.NoError(t, err)

	require.Len(t, result.Attempts, 2)
	assert.Equal(t, 6, result.Total)
	assert.Equal(t, 0, result.Kept)

	for seed := int64(0); seed < 10; seed++ {
		result, err := dice.Evaluate(expr, dice.RollModeDisadvantage, dice.NewSource(seed))
		require.NoError(t, err)

		assert.LessOrEqual(t, result.Total, result.Attempts[0].Total)
		assert.LessOrEqual(t, result.Total, result.Attempts[1].Total)
	}
}

func TestEvaluateAdvantageDeterministic(t *testing.T) {
	expr, err := dice.Parse("1d20")
	require.NoError(t, err)

	first, err := dice.Evaluate(expr, dice.RollModeAdvantage, dice.NewSource(42))
	require.NoError(t, err)

	second, err := dice.Evaluate(expr, dice.RollModeAdvantage, dice.NewSource(42))
	require.NoError(t, err)

	assert.Equal(t, first, second)

	// The first attempt consumes all of its draws before the second
	// begins.
	mirror := rand.New(rand.NewSource(42))
	assert.Equal(t, []int{mirror.Intn(20) + 1}, first.Attempts[0].Terms[0].Outcomes)
	assert.Equal(t, []int{mirror.Intn(20) + 1}, first.Attempts[1].Terms[0].Outcomes)
}

func TestEvaluateModeMismatch(t *testing.T) {
	tests := []struct {
		name string
		expr string
		mode dice.RollMode
	}{
		{name: "d66 mode on a standard expression", expr: "2d6+3", mode: dice.RollModeD66},
		{name: "unordered mode on a standard expression", expr: "2d6", mode: dice.RollModeD66Unordered},
		{name: "standard mode on a d66 expression", expr: "d66", mode: dice.RollModeStandard},
		{name: "advantage on a d66 expression", expr: "d66", mode: dice.RollModeAdvantage},
		{name: "disadvantage on a d66 expression", expr: "d66u", mode: dice.RollModeDisadvantage},
		{name: "unknown mode", expr: "2d6", mode: dice.RollMode("bogus")},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := dice.Parse(tt.expr)
			require.NoError(t, err)

			result, err := dice.Evaluate(expr, tt.mode, dice.NewSource(1))
			assert.Nil(t, result)

			var evalErr *dice.EvaluationError
			require.ErrorAs(t, err, &evalErr)
			assert.Equal(t, tt.mode, evalErr.Mode)
		})
	}
}

func TestEvaluateBrokenInputs(t *testing.T) {
	expr, err := dice.Parse("2d6")
	require.NoError(t, err)

	t.Run("nil source", func(t *testing.T) {
		result, err := dice.Evaluate(expr, dice.RollModeStandard, nil)
		assert.Nil(t, result)

		var evalErr *dice.EvaluationError
		require.ErrorAs(t, err, &evalErr)
	})

	t.Run("nil expression", func(t *testing.T) {
		_, err := dice.Evaluate(nil, dice.RollModeStandard, dice.NewSource(1))
		require.Error(t, err)
	})

	t.Run("empty expression", func(t *testing.T) {
		_, err := dice.Evaluate(&dice.Expression{}, dice.RollModeStandard, dice.NewSource(1))
		require.Error(t, err)
	})
}

func TestRollPropagatesParseErrors(t *testing.T) {
	result, err := dice.Roll("2d", dice.NewSource(1))
	assert.Nil(t, result)

	var parseErr *dice.ParseError
	require.ErrorAs(t, err, &parseErr)
}

func TestRollResultDescription(t *testing.T) {
	t.Run("standard with modifier", func(t *testing.T) {
		result, err := dice.Roll("2d6+3", faces(3, 5))
		require.NoError(t, err)
		assert.Equal(t, "[3, 5] +3 = 11", result.Description())
	})

	t.Run("negative die group", func(t *testing.T) {
		result, err := dice.Roll("2d6-1d4", faces(3, 5, 2))
		require.NoError(t, err)
		assert.Equal(t, "[3, 5] -[2] = 6", result.Description())
	})

	t.Run("d66 ordered", func(t *testing.T) {
		result, err := dice.Roll("d66", faces(3, 5))
		require.NoError(t, err)
		assert.Equal(t, "d66: 3,5 → 35", result.Description())
	})

	t.Run("d66 unordered", func(t *testing.T) {
		result, err := dice.Roll("d66u", faces(3, 5))
		require.NoError(t, err)
		assert.Equal(t, "d66: 3,5 (sorted: 5,3) → 53", result.Description())
	})

	t.Run("advantage shows both attempts", func(t *testing.T) {
		expr, err := dice.Parse("1d6")
		require.NoError(t, err)

		result, err := dice.Evaluate(expr, dice.RollModeAdvantage, faces(2, 5))
		require.NoError(t, err)
		assert.Equal(t, "[2] = 2 | [5] = 5 (adv: 5)", result.Description())
	})

	t.Run("disadvantage tags the kept total", func(t *testing.T) {
		expr, err := dice.Parse("1d6")
		require.NoError(t, err)

		result, err := dice.Evaluate(expr, dice.RollModeDisadvantage, faces(2, 5))
		require.NoError(t, err)
		assert.Equal(t, "[2] = 2 | [5] = 5 (dis: 2)", result.Description())
	})
}

package dice_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/cepheus-dice/internal/dice"
)

func TestParse(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []dice.DiceTerm
	}{
		{
			name:  "single die group",
			input: "2d6",
			want:  []dice.DiceTerm{{Count: 2, Sides: 6}},
		},
		{
			name:  "implicit count of one",
			input: "d20",
			want:  []dice.DiceTerm{{Count: 1, Sides: 20}},
		},
		{
			name:  "die group with modifier",
			input: "2d6+3",
			want:  []dice.DiceTerm{{Count: 2, Sides: 6}, {Value: 3}},
		},
		{
			name:  "die group with negative modifier",
			input: "3d6-4",
			want:  []dice.DiceTerm{{Count: 3, Sides: 6}, {Value: 4, Negative: true}},
		},
		{
			name:  "several die groups",
			input: "d20-1d4+2",
			want: []dice.DiceTerm{
				{Count: 1, Sides: 20},
				{Count: 1, Sides: 4, Negative: true},
				{Value: 2},
			},
		},
		{
			name:  "bare constant",
			input: "7",
			want:  []dice.DiceTerm{{Value: 7}},
		},
		{
			name:  "leading plus",
			input: "+2d6",
			want:  []dice.DiceTerm{{Count: 2, Sides: 6}},
		},
		{
			name:  "leading negative constant",
			input: "-3+2d6",
			want:  []dice.DiceTerm{{Value: 3, Negative: true}, {Count: 2, Sides: 6}},
		},
		{
			name:  "whitespace ignored anywhere",
			input: " 2 d 6 + 3 ",
			want:  []dice.DiceTerm{{Count: 2, Sides: 6}, {Value: 3}},
		},
		{
			name:  "uppercase separator",
			input: "2D6",
			want:  []dice.DiceTerm{{Count: 2, Sides: 6}},
		},
		{
			name:  "d66 ordered",
			input: "d66",
			want:  []dice.DiceTerm{{Count: 1, Sides: dice.SidesD66}},
		},
		{
			name:  "d66 unordered",
			input: "d66u",
			want:  []dice.DiceTerm{{Count: 1, Sides: dice.SidesD66, Unordered: true}},
		},
		{
			name:  "d66 uppercase",
			input: "D66U",
			want:  []dice.DiceTerm{{Count: 1, Sides: dice.SidesD66, Unordered: true}},
		},
		{
			name:  "d66 with explicit count of one",
			input: "1d66",
			want:  []dice.DiceTerm{{Count: 1, Sides: dice.SidesD66}},
		},
		{
			name:  "constant sixty six is a plain modifier",
			input: "66",
			want:  []dice.DiceTerm{{Value: 66}},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := dice.Parse(tt.input)
			require.NoError(t, err)
			assert.Equal(t, tt.want, expr.Terms)
		})
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		name  string
		input string
	}{
		{name: "empty", input: ""},
		{name: "whitespace only", input: "   "},
		{name: "word", input: "abc"},
		{name: "missing sides", input: "2d"},
		{name: "bare separator", input: "d"},
		{name: "zero count", input: "0d6"},
		{name: "zero sides", input: "2d0"},
		{name: "one side", input: "d1"},
		{name: "doubled separator", input: "d6d6"},
		{name: "dangling operator", input: "2d6+"},
		{name: "operator only", input: "+"},
		{name: "doubled operator", input: "2d6++3"},
		{name: "trailing junk", input: "d100abc"},
		{name: "junk after u suffix", input: "d66ux"},
		{name: "u suffix on ordinary die", input: "d6u"},
		{name: "negative die group", input: "-1d6"},
		{name: "negative implicit count", input: "-d6"},
		{name: "negative sides", input: "1d-6"},
		{name: "d66 with count", input: "2d66"},
		{name: "d66 with modifier", input: "d66+3"},
		{name: "d66 with die group", input: "d66+2d6"},
		{name: "d66 twice", input: "d66+d66"},
		{name: "d66 after die group", input: "2d6-d66"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			expr, err := dice.Parse(tt.input)
			assert.Nil(t, expr)
			require.Error(t, err)

			var parseErr *dice.ParseError
			require.ErrorAs(t, err, &parseErr)
			assert.Equal(t, tt.input, parseErr.Input)
			assert.NotEmpty(t, parseErr.Reason)
		})
	}
}

func TestParseWithLimits(t *testing.T) {
	t.Run("count past the dice limit", func(t *testing.T) {
		expr, err := dice.Parse("10001d6")
		assert.Nil(t, expr)
		var parseErr *dice.ParseError
		require.ErrorAs(t, err, &parseErr)
	})

	t.Run("dice limit counts across terms", func(t *testing.T) {
		_, err := dice.Parse("6000d6+5000d6")
		require.Error(t, err)

		_, err = dice.Parse("6000d6+4000d6")
		require.NoError(t, err)
	})

	t.Run("die size past the limit", func(t *testing.T) {
		_, err := dice.Parse("d10001")
		require.Error(t, err)

		_, err = dice.Parse("d10000")
		require.NoError(t, err)
	})

	t.Run("custom limits", func(t *testing.T) {
		limits := dice.Limits{MaxDice: 2, MaxSides: 10}

		_, err := dice.ParseWithLimits("3d6", limits)
		require.Error(t, err)

		_, err = dice.ParseWithLimits("d12", limits)
		require.Error(t, err)

		expr, err := dice.ParseWithLimits("2d6", limits)
		require.NoError(t, err)
		assert.Len(t, expr.Terms, 1)
	})

	t.Run("d66 draws two dice against the limit", func(t *testing.T) {
		_, err := dice.ParseWithLimits("d66", dice.Limits{MaxDice: 1, MaxSides: 10000})
		require.Error(t, err)

		// The 66 sentinel is never measured against MaxSides.
		_, err = dice.ParseWithLimits("d66", dice.Limits{MaxDice: 2, MaxSides: 10})
		require.NoError(t, err)
	})
}

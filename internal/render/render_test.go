package render_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/KirkDiggler/cepheus-dice/internal/dice"
	"github.com/KirkDiggler/cepheus-dice/internal/errors"
	"github.com/KirkDiggler/cepheus-dice/internal/render"
)

func TestParseFormat(t *testing.T) {
	tests := []struct {
		input string
		want  render.Format
	}{
		{input: "text", want: render.FormatText},
		{input: "json", want: render.FormatJSON},
		{input: "yaml", want: render.FormatYAML},
		{input: "JSON", want: render.FormatJSON},
		{input: "Text", want: render.FormatText},
	}

	for _, tc := range tests {
		t.Run(tc.input, func(t *testing.T) {
			got, err := render.ParseFormat(tc.input)
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

func TestParseFormatRejectsUnknown(t *testing.T) {
	for _, input := range []string{"", "csv", "xml", "jsonl"} {
		t.Run(input, func(t *testing.T) {
			_, err := render.ParseFormat(input)
			require.Error(t, err)
			assert.True(t, errors.IsInvalidArgument(err))
		})
	}
}

func TestText(t *testing.T) {
	result := &dice.RollResult{
		Expression: "2d6+3",
		Mode:       dice.RollModeStandard,
		Terms: []dice.TermResult{
			{
				Term:     dice.DiceTerm{Count: 2, Sides: 6},
				Outcomes: []int{3, 5},
				Subtotal: 8,
			},
			{
				Term:     dice.DiceTerm{Value: 3},
				Subtotal: 3,
			},
		},
		Total: 11,
	}

	assert.Equal(t, "[3, 5] +3 = 11", render.Text(result))
}

func TestJSON(t *testing.T) {
	view := struct {
		Expression string `json:"expression"`
		Total      int    `json:"total"`
	}{
		Expression: "2d6+3",
		Total:      11,
	}

	out, err := render.JSON(view)
	require.NoError(t, err)
	assert.Equal(t, "{\n  \"expression\": \"2d6+3\",\n  \"total\": 11\n}\n", out)
}

func TestYAML(t *testing.T) {
	view := struct {
		Expression string `yaml:"expression"`
		Total      int    `yaml:"total"`
	}{
		Expression: "2d6+3",
		Total:      11,
	}

	out, err := render.YAML(view)
	require.NoError(t, err)
	assert.Equal(t, "expression: 2d6+3\ntotal: 11\n", out)
}

func TestMarshal(t *testing.T) {
	view := map[string]int{"total": 7}

	out, err := render.Marshal(view, render.FormatJSON)
	require.NoError(t, err)
	assert.Contains(t, out, "\"total\": 7")

	out, err = render.Marshal(view, render.FormatYAML)
	require.NoError(t, err)
	assert.Equal(t, "total: 7\n", out)

	_, err = render.Marshal(view, render.FormatText)
	require.Error(t, err)
	assert.True(t, errors.IsInvalidArgument(err))
}

package color_test

import (
	"testing"

	"github.com/ratel-online/uno/uno/card/color"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	scenarios := []struct {
		description string
		input       string
		expected    color.Color
		fails       bool
	}{
		{description: "lowercase", input: "red", expected: color.Red},
		{description: "uppercase", input: "BLUE", expected: color.Blue},
		{description: "mixed_case_with_spaces", input: "  Green ", expected: color.Green},
		{description: "wild", input: "wild", expected: color.Wild},
		{description: "unknown", input: "purple", fails: true},
		{description: "empty", input: "", fails: true},
	}

	for _, scenario := range scenarios {
		t.Run(scenario.description, func(t *testing.T) {
			result, err := color.ByName(scenario.input)
			if scenario.fails {
				require.Error(t, err)
				return
			}
			require.NoError(t, err)
			require.Equal(t, scenario.expected, result)
		})
	}
}

func TestChosen(t *testing.T) {
	for _, c := range color.All {
		require.True(t, c.Chosen())
	}
	require.False(t, color.Wild.Chosen())
	require.False(t, color.Color(42).Chosen())
}

package console

import (
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDimensions(t *testing.T) {
	t.Run("Accepts rows x columns with any whitespace", func(t *testing.T) {
		for input, want := range map[string][2]int{
			"6x7":        {6, 7},
			"9X5":        {9, 5},
			" 5 x 9 ":    {5, 9},
			"\t8 \tX 8 ": {8, 8},
		} {
			rows, columns, err := ParseDimensions(input)

			require.NoError(t, err, input)
			assert.Equal(t, want, [2]int{rows, columns}, input)
		}
	})

	t.Run("Rejects malformed input", func(t *testing.T) {
		for _, input := range []string{"", "6", "6x", "x7", "6*7", "6x7x8", "-6x7", "sixxseven"} {
			_, _, err := ParseDimensions(input)

			assert.ErrorIs(t, err, apperror.ErrInvalidInput, input)
		}
	})

	t.Run("Reports rows before columns", func(t *testing.T) {
		_, _, err := ParseDimensions("4x10")
		assert.ErrorIs(t, err, apperror.ErrRowsOutOfRange)

		_, _, err = ParseDimensions("99999999999999999999x7")
		assert.ErrorIs(t, err, apperror.ErrRowsOutOfRange)

		_, _, err = ParseDimensions("6x10")
		assert.ErrorIs(t, err, apperror.ErrColumnsOutOfRange)
	})
}

func TestParseGameCount(t *testing.T) {
	for input, want := range map[string]int{"": 1, "  ": 1, "1": 1, "3": 3, " 12 ": 12} {
		games, err := ParseGameCount(input)

		require.NoError(t, err, input)
		assert.Equal(t, want, games, input)
	}

	for _, input := range []string{"0", "-2", "two", "1.5", "99999999999999999999"} {
		_, err := ParseGameCount(input)

		assert.Error(t, err, input)
	}
}

package console

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

var dimensionsRegex = regexp.MustCompile(`^(\d+)[xX](\d+)$`)

// ParseDimensions - parses "<rows>x<columns>", whitespace anywhere is ignored.
func ParseDimensions(input string) (int, int, error) {
	input = strings.Join(strings.Fields(input), "")

	match := dimensionsRegex.FindStringSubmatch(input)
	if match == nil {
		return 0, 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, input)
	}

	rows, columns := atoiOrZero(match[1]), atoiOrZero(match[2])
	if err := entity.ValidateDimensions(rows, columns); err != nil {
		return 0, 0, err
	}

	return rows, columns, nil
}

// ParseGameCount - empty input means a single game.
func ParseGameCount(input string) (int, error) {
	input = strings.TrimSpace(input)
	if input == "" {
		return 1, nil
	}

	if strings.TrimLeft(input, "0123456789") != "" {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidInput, input)
	}

	games, err := strconv.Atoi(input)
	if err != nil || games < 1 {
		return 0, fmt.Errorf("%w: %q", apperror.ErrInvalidGameCount, input)
	}

	return games, nil
}

// atoiOrZero - digits too long for an int are reported as out of range by the caller.
func atoiOrZero(digits string) int {
	value, err := strconv.Atoi(digits)
	if err != nil {
		return 0
	}

	return value
}

package tictactoe

import (
	"fmt"
	"strconv"
	"strings"
	"unicode"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

const coordSeparator = ","

// Position is a zero-based board coordinate: X is the column, Y is the row.
type Position struct {
	X int
	Y int
}

// ParsePosition - parses a "row,column" pair of one-based indexes.
// Whitespace anywhere in the line is ignored.
func ParsePosition(line string) (Position, error) {
	withoutSpace := strings.Map(func(r rune) rune {
		if unicode.IsSpace(r) {
			return -1
		}
		return r
	}, line)

	coords := strings.Split(withoutSpace, coordSeparator)
	if len(coords) != 2 {
		return Position{}, fmt.Errorf("%w: got %d", apperror.ErrWrongTokenCount, len(coords))
	}

	row, err := parseInt(coords[0])
	if err != nil {
		return Position{}, fmt.Errorf("invalid row: %w", err)
	}

	column, err := parseInt(coords[1])
	if err != nil {
		return Position{}, fmt.Errorf("invalid column: %w", err)
	}

	if row < 1 {
		return Position{}, fmt.Errorf("invalid row: %w: %d", apperror.ErrIndexFromOne, row)
	}

	if column < 1 {
		return Position{}, fmt.Errorf("invalid column: %w: %d", apperror.ErrIndexFromOne, column)
	}

	return Position{X: column - 1, Y: row - 1}, nil
}

// parseInt - converts a token to an int. Values that overflow an int are not integers either.
func parseInt(token string) (int, error) {
	value, err := strconv.Atoi(token)
	if err != nil {
		return 0, fmt.Errorf("%w: %q", apperror.ErrNotInteger, token)
	}

	return value, nil
}

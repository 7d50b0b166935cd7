package tictactoe

import (
	"errors"
	"fmt"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	msgWelcome   = "Welcome to tic-tac-toe!"
	msgTie       = "\nGame Over: Tie!"
	msgWinFmt    = "\nGame Over: Player %s Wins!"
	msgPromptFmt = "\nWhere does player %s want to play? Give a row,column pair: "
)

// diagnostic - returns the text shown to the player for a rejected move or input.
func diagnostic(err error) string {
	switch {
	case errors.Is(err, apperror.ErrColumnOutOfRange):
		return fmt.Sprintf("Column must be between 1 and %d", entity.BoardSize)
	case errors.Is(err, apperror.ErrRowOutOfRange):
		return fmt.Sprintf("Row must be between 1 and %d", entity.BoardSize)
	case errors.Is(err, apperror.ErrCellOccupied):
		return "Cannot place in a cell which is already occupied!"
	case errors.Is(err, apperror.ErrNotYourTurn):
		return "It's not your turn!"
	case errors.Is(err, apperror.ErrWrongTokenCount):
		return "Expected two numbers separated by a comma"
	case errors.Is(err, apperror.ErrNotInteger):
		return "Couldn't parse row/column, expected an integer"
	case errors.Is(err, apperror.ErrIndexFromOne):
		return "Couldn't parse row/column, index must start from 1"
	default:
		return err.Error()
	}
}

func prompt(player entity.Player) string {
	return fmt.Sprintf(msgPromptFmt, player)
}

func winMessage(player entity.Player) string {
	return fmt.Sprintf(msgWinFmt, player)
}

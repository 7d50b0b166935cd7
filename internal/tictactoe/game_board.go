package tictactoe

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

type prompter interface {
	ReadLine(ctx context.Context, prompt string) (string, error)
}

type printer interface {
	Println(msg string)
	RenderBoard(board *entity.Board)
}

// GameBoard owns the board, whose turn it is, and drives the turn loop.
type GameBoard struct {
	logger *slog.Logger

	board   *entity.Board
	current entity.Player

	prompter prompter
	printer  printer
}

// NewGameBoard - creates a game on an empty board with starting to move first.
func NewGameBoard(logger *slog.Logger, starting entity.Player, prompter prompter, printer printer) *GameBoard {
	return &GameBoard{
		logger: logger.With("component", "game"),

		board:   entity.NewBoard(entity.BoardSize),
		current: starting,

		prompter: prompter,
		printer:  printer,
	}
}

func (that *GameBoard) Get(x, y int) entity.Cell {
	return that.board.Get(x, y)
}

func (that *GameBoard) Current() entity.Player {
	return that.current
}

func (that *GameBoard) Board() *entity.Board {
	return that.board
}

// TryPlace - claims (x, y) for the player, who must be the current one.
// A rejected move prints its reason and leaves the board unchanged.
func (that *GameBoard) TryPlace(x, y int, player entity.Player) bool {
	err := that.place(x, y, player)
	if err != nil {
		that.logger.Debug("move rejected", "player", player, "x", x, "y", y, "error", err)
		that.printer.Println(diagnostic(err))

		return false
	}

	that.logger.Debug("move accepted", "player", player, "x", x, "y", y)

	return true
}

func (that *GameBoard) place(x, y int, player entity.Player) error {
	if player != that.current {
		return fmt.Errorf("%w: %s to move", apperror.ErrNotYourTurn, that.current)
	}

	if err := that.board.Place(x, y, player); err != nil {
		return fmt.Errorf("could not place: %w", err)
	}

	return nil
}

func (that *GameBoard) Won(player entity.Player) bool {
	return that.board.WonBy(player)
}

// Tied - reports a full board. Only meaningful once neither player has won.
func (that *GameBoard) Tied() bool {
	return that.board.Full()
}

func (that *GameBoard) NextTurn() {
	that.current = that.current.Next()
}

// Outcome - evaluates the board: noughts win, then crosses win, then tie.
func (that *GameBoard) Outcome() entity.Outcome {
	switch {
	case that.Won(entity.Noughts):
		return entity.Won(entity.Noughts)
	case that.Won(entity.Crosses):
		return entity.Won(entity.Crosses)
	case that.Tied():
		return entity.Tie
	default:
		return entity.Running
	}
}

// Step - plays one full turn of the current player.
// It returns false once the game has reached a terminal state.
func (that *GameBoard) Step(ctx context.Context) (bool, error) {
	if err := that.makeMove(ctx); err != nil {
		return false, err
	}

	that.printer.Println("")
	that.printer.RenderBoard(that.board)

	switch outcome := that.Outcome(); outcome.Status {
	case entity.StatusWon:
		that.printer.Println(winMessage(outcome.Winner))
	case entity.StatusTie:
		that.printer.Println(msgTie)
	default:
		return true, nil
	}

	return false, nil
}

// makeMove - asks the current player until a move is accepted.
func (that *GameBoard) makeMove(ctx context.Context) error {
	for {
		position, err := that.askPosition(ctx)
		if err != nil {
			return err
		}

		if that.TryPlace(position.X, position.Y, that.current) {
			return nil
		}
	}
}

func (that *GameBoard) askPosition(ctx context.Context) (Position, error) {
	for {
		line, err := that.prompter.ReadLine(ctx, prompt(that.current))
		if err != nil {
			return Position{}, fmt.Errorf("could not read move: %w", err)
		}

		position, err := ParsePosition(line)
		if err != nil {
			that.logger.Debug("invalid input", "player", that.current, "input", line, "error", err)
			that.printer.Println(diagnostic(err))

			continue
		}

		return position, nil
	}
}

// Run - plays the game to completion and returns how it ended.
func (that *GameBoard) Run(ctx context.Context) (entity.Outcome, error) {
	that.printer.Println(msgWelcome)

	for {
		proceed, err := that.Step(ctx)
		if err != nil {
			return entity.Running, err
		}

		if !proceed {
			break
		}

		that.NextTurn()
	}

	outcome := that.Outcome()
	that.logger.Info("game finished", "outcome", outcome.String(), "moves", that.board.OccupiedCount())

	return outcome, nil
}

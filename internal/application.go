package application

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/config"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
	"github.com/rocketscienceinc/tictactoe-cli/internal/tictactoe"
	"github.com/rocketscienceinc/tictactoe-cli/internal/transport/console"
)

const (
	msgAborted     = "\nGame aborted"
	msgInputClosed = "\nGame aborted: no more input"
)

// RunApp - runs one game on the terminal.
func RunApp(logger *slog.Logger, conf *config.Config) error {
	ctx, cancel := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer cancel()

	return Play(ctx, logger, conf, os.Stdin, os.Stdout)
}

// Play - runs one game with crosses moving first, reading moves from in and writing to out.
// Running out of input or a cancelled context ends the game without an error.
func Play(ctx context.Context, logger *slog.Logger, conf *config.Config, in io.Reader, out io.Writer) error {
	log := logger.With("component", "app")
	log.Debug("starting game", "log_level", conf.LogLevel)

	cons := console.New(in, out)
	game := tictactoe.NewGameBoard(logger, entity.Crosses, cons, cons)

	outcome, err := game.Run(ctx)
	switch {
	case errors.Is(err, apperror.ErrInputClosed):
		log.Info("input closed, stopping game", "error", err)
		cons.Println(msgInputClosed)
		return nil
	case errors.Is(err, context.Canceled):
		log.Info("received signal, stopping game")
		cons.Println(msgAborted)
		return nil
	case err != nil:
		return fmt.Errorf("game failed: %w", err)
	}

	log.Debug("game over", "outcome", outcome.String())

	return nil
}

package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/muesli/termenv"
	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
	"github.com/rocketscienceinc/tictactoe-cli/internal/entity"
)

const (
	colorCrosses = "1"
	colorNoughts = "4"
)

type readResult struct {
	line string
	err  error
}

// Console reads moves from in and writes the game to out.
type Console struct {
	in       io.Reader
	out      *termenv.Output
	lines    chan readResult
	pumpOnce sync.Once
}

func New(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:    in,
		out:   termenv.NewOutput(out),
		lines: make(chan readResult),
	}
}

// ReadLine - shows the prompt and waits for the next line of input.
// Returns apperror.ErrInputClosed once the input is exhausted.
func (that *Console) ReadLine(ctx context.Context, prompt string) (string, error) {
	that.pumpOnce.Do(func() {
		go that.pump()
	})

	if _, err := fmt.Fprint(that.out, prompt); err != nil {
		return "", fmt.Errorf("could not write prompt: %w", err)
	}

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case res, ok := <-that.lines:
		if !ok {
			return "", apperror.ErrInputClosed
		}
		return res.line, res.err
	}
}

func (that *Console) Println(msg string) {
	_, _ = fmt.Fprintln(that.out, msg)
}

// RenderBoard - draws the board, colouring symbols when the output supports it.
func (that *Console) RenderBoard(board *entity.Board) {
	that.Println(board.RenderWith(that.symbol))
}

func (that *Console) symbol(cell entity.Cell) string {
	owner, ok := cell.Owner()
	if !ok {
		return cell.String()
	}

	color := colorNoughts
	if owner == entity.Crosses {
		color = colorCrosses
	}

	return that.out.String(cell.String()).Foreground(that.out.Color(color)).Bold().String()
}

// pump - forwards input lines of any length until the reader is exhausted.
func (that *Console) pump() {
	defer close(that.lines)

	reader := bufio.NewReader(that.in)
	for {
		line, err := reader.ReadString('\n')
		if line != "" || err == nil {
			that.lines <- readResult{line: strings.TrimSuffix(strings.TrimSuffix(line, "\n"), "\r")}
		}

		switch {
		case err == nil:
			continue
		case errors.Is(err, io.EOF):
			return
		default:
			that.lines <- readResult{err: fmt.Errorf("%w: %w", apperror.ErrInputClosed, err)}
			return
		}
	}
}

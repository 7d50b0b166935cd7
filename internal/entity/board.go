package entity

import (
	"fmt"
	"strings"

	"github.com/rocketscienceinc/tictactoe-cli/internal/apperror"
)

// BoardSize is the side length of the game board.
const BoardSize = 3

const (
	colSeparator  = "|"
	rowSeparator  = "- "
	lineSeparator = "\n"
)

// Board is a square grid of cells indexed by zero-based (column, row).
type Board struct {
	size  int
	tiles []Cell
}

// NewBoard - creates an all-empty board of size x size cells.
func NewBoard(size int) *Board {
	return &Board{
		size:  size,
		tiles: make([]Cell, size*size),
	}
}

func (that *Board) Size() int {
	return that.size
}

// Get - returns the cell at column x, row y. Callers validate the coordinates.
func (that *Board) Get(x, y int) Cell {
	return that.tiles[that.index(x, y)]
}

// Place - claims the empty cell at (x, y) for the player.
// The board is left untouched when an error is returned.
func (that *Board) Place(x, y int, player Player) error {
	switch {
	case x < 0 || x >= that.size:
		return fmt.Errorf("%w: column %d", apperror.ErrColumnOutOfRange, x+1)
	case y < 0 || y >= that.size:
		return fmt.Errorf("%w: row %d", apperror.ErrRowOutOfRange, y+1)
	case !that.Get(x, y).IsEmpty():
		return fmt.Errorf("%w: row %d, column %d", apperror.ErrCellOccupied, y+1, x+1)
	}

	that.set(x, y, player)

	return nil
}

// Lines - returns every row, every column and the two main diagonals.
func (that *Board) Lines() [][]Cell {
	lines := make([][]Cell, 0, 2*that.size+2)

	for y := range that.size {
		row := make([]Cell, 0, that.size)
		for x := range that.size {
			row = append(row, that.Get(x, y))
		}
		lines = append(lines, row)
	}

	for x := range that.size {
		column := make([]Cell, 0, that.size)
		for y := range that.size {
			column = append(column, that.Get(x, y))
		}
		lines = append(lines, column)
	}

	upDiag := make([]Cell, 0, that.size)
	downDiag := make([]Cell, 0, that.size)
	for n := range that.size {
		upDiag = append(upDiag, that.Get(n, n))
		downDiag = append(downDiag, that.Get(n, that.size-1-n))
	}

	return append(lines, upDiag, downDiag)
}

// WonBy - reports whether any line is fully owned by the player.
func (that *Board) WonBy(player Player) bool {
	for _, line := range that.Lines() {
		if ownedLine(line, player) {
			return true
		}
	}
	return false
}

// Full - reports whether no empty cell remains.
func (that *Board) Full() bool {
	return that.OccupiedCount() == len(that.tiles)
}

func (that *Board) OccupiedCount() int {
	count := 0
	for _, cell := range that.tiles {
		if !cell.IsEmpty() {
			count++
		}
	}
	return count
}

func (that *Board) String() string {
	return that.RenderWith(Cell.String)
}

// RenderWith - lays the board out as text, drawing each cell with symbol.
func (that *Board) RenderWith(symbol func(Cell) string) string {
	rows := make([]string, 0, that.size)
	for y := range that.size {
		cells := make([]string, 0, that.size)
		for x := range that.size {
			cells = append(cells, symbol(that.Get(x, y)))
		}
		rows = append(rows, strings.Join(cells, colSeparator))
	}

	separator := lineSeparator + strings.Repeat(rowSeparator, that.size) + lineSeparator

	return strings.Join(rows, separator)
}

func (that *Board) set(x, y int, player Player) {
	that.tiles[that.index(x, y)] = Occupied(player)
}

func (that *Board) index(x, y int) int {
	return x + y*that.size
}

func ownedLine(line []Cell, player Player) bool {
	for _, cell := range line {
		if !cell.OwnedBy(player) {
			return false
		}
	}
	return true
}

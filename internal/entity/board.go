package entity

import (
	"encoding/json"
	"fmt"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
)

const (
	MinSize = 5
	MaxSize = 9

	DefaultRows    = 6
	DefaultColumns = 7
)

// Cell is either empty or owned by one of the players.
type Cell uint8

const EmptyCell Cell = 0

// Owned - the cell value for a token of the given player.
func Owned(player PlayerID) Cell {
	return Cell(player)
}

func (that Cell) IsEmpty() bool {
	return that == EmptyCell
}

// Owner - returns the owning player, false for an empty cell.
func (that Cell) Owner() (PlayerID, bool) {
	if that.IsEmpty() {
		return NoPlayer, false
	}
	return PlayerID(that), true
}

// Board is indexed [column][row], row 0 is the bottom row.
type Board struct {
	rows    int
	columns int
	grid    [][]Cell
}

func ValidateDimensions(rows, columns int) error {
	if rows < MinSize || rows > MaxSize {
		return fmt.Errorf("%w: %d rows", apperror.ErrRowsOutOfRange, rows)
	}

	if columns < MinSize || columns > MaxSize {
		return fmt.Errorf("%w: %d columns", apperror.ErrColumnsOutOfRange, columns)
	}

	return nil
}

func NewBoard(rows, columns int) (*Board, error) {
	if err := ValidateDimensions(rows, columns); err != nil {
		return nil, fmt.Errorf("%w: %w", apperror.ErrInvalidDimensions, err)
	}

	return &Board{
		rows:    rows,
		columns: columns,
		grid:    newGrid(rows, columns),
	}, nil
}

func newGrid(rows, columns int) [][]Cell {
	grid := make([][]Cell, columns)
	for i := range grid {
		grid[i] = make([]Cell, rows)
	}
	return grid
}

func (that *Board) Rows() int {
	return that.rows
}

func (that *Board) Columns() int {
	return that.columns
}

func (that *Board) Cell(column, row int) Cell {
	return that.grid[column][row]
}

// Column - copy of a column, bottom to top.
func (that *Board) Column(column int) []Cell {
	cells := make([]Cell, that.rows)
	copy(cells, that.grid[column])
	return cells
}

// Grid - deep copy of the whole grid.
func (that *Board) Grid() [][]Cell {
	grid := make([][]Cell, that.columns)
	for i := range that.grid {
		grid[i] = that.Column(i)
	}
	return grid
}

func (that *Board) Clone() *Board {
	return &Board{
		rows:    that.rows,
		columns: that.columns,
		grid:    that.Grid(),
	}
}

// IsColumnPlayable - the column still has an empty cell on top.
func (that *Board) IsColumnPlayable(column int) bool {
	return that.grid[column][that.rows-1].IsEmpty()
}

// Drop - places the token of the player in the lowest empty cell of the column
// and returns its row.
func (that *Board) Drop(column int, player PlayerID) (int, error) {
	if column < 0 || column >= that.columns {
		return -1, fmt.Errorf("%w: column %d does not exist", apperror.ErrInvalidMove, column)
	}

	if !player.IsValid() {
		return -1, fmt.Errorf("%w: unknown player %d", apperror.ErrInvalidMove, player)
	}

	for row, cell := range that.grid[column] {
		if cell.IsEmpty() {
			that.grid[column][row] = Owned(player)
			return row, nil
		}
	}

	return -1, fmt.Errorf("%w: column %d is full", apperror.ErrInvalidMove, column)
}

func (that *Board) IsFull() bool {
	for column := range that.grid {
		if that.IsColumnPlayable(column) {
			return false
		}
	}
	return true
}

func (that *Board) Clear() {
	for _, column := range that.grid {
		for row := range column {
			column[row] = EmptyCell
		}
	}
}

// boardJSON keeps cells as numbers, a []Cell would be encoded as base64.
type boardJSON struct {
	Rows    int     `json:"rows"`
	Columns int     `json:"columns"`
	Grid    [][]int `json:"grid"`
}

func (that *Board) MarshalJSON() ([]byte, error) {
	grid := make([][]int, that.columns)
	for i, column := range that.grid {
		grid[i] = make([]int, that.rows)
		for row, cell := range column {
			grid[i][row] = int(cell)
		}
	}

	return json.Marshal(boardJSON{
		Rows:    that.rows,
		Columns: that.columns,
		Grid:    grid,
	})
}

func (that *Board) UnmarshalJSON(data []byte) error {
	var raw boardJSON
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidBoard, err)
	}

	if err := ValidateDimensions(raw.Rows, raw.Columns); err != nil {
		return fmt.Errorf("%w: %w", apperror.ErrInvalidBoard, err)
	}

	if len(raw.Grid) != raw.Columns {
		return fmt.Errorf("%w: expected %d columns, got %d", apperror.ErrInvalidBoard, raw.Columns, len(raw.Grid))
	}

	grid := newGrid(raw.Rows, raw.Columns)
	for i, column := range raw.Grid {
		if err := validateColumn(column, raw.Rows); err != nil {
			return fmt.Errorf("%w: column %d: %w", apperror.ErrInvalidBoard, i, err)
		}

		for row, value := range column {
			grid[i][row] = Cell(value)
		}
	}

	that.rows = raw.Rows
	that.columns = raw.Columns
	that.grid = grid

	return nil
}

// validateColumn - checks the cell values and that no token floats above an empty cell.
func validateColumn(column []int, rows int) error {
	if len(column) != rows {
		return fmt.Errorf("expected %d rows, got %d", rows, len(column))
	}

	seenEmpty := false
	for row, value := range column {
		if value == int(EmptyCell) {
			seenEmpty = true
			continue
		}

		if value != int(First) && value != int(Second) {
			return fmt.Errorf("unknown cell value %d at row %d", value, row)
		}

		if seenEmpty {
			return fmt.Errorf("floating token at row %d", row)
		}
	}

	return nil
}

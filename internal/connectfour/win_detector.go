package connectfour

import "github.com/rocketscienceinc/connectfour/internal/entity"

// WinLength is the number of consecutive tokens needed to win. Longer runs win too.
const WinLength = 4

type Position struct {
	Column int `json:"column"`
	Row    int `json:"row"`
}

// Line is a maximal straight sequence of cells on the board.
type Line []Position

type direction struct {
	column int
	row    int
}

type lineStart struct {
	from Position
	dir  direction
}

var (
	horizontal   = direction{column: 1, row: 0}
	vertical     = direction{column: 0, row: 1}
	diagonalUp   = direction{column: 1, row: 1}  // "/"
	diagonalDown = direction{column: 1, row: -1} // "\"
)

// Lines - every line of at least WinLength cells on a rows x columns board,
// grouped by family: rows, columns, "/" diagonals, "\" diagonals.
func Lines(rows, columns int) []Line {
	var starts []lineStart
	add := func(column, row int, dir direction) {
		starts = append(starts, lineStart{from: Position{Column: column, Row: row}, dir: dir})
	}

	for row := 0; row < rows; row++ {
		add(0, row, horizontal)
	}

	for column := 0; column < columns; column++ {
		add(column, 0, vertical)
	}

	// "/" diagonals start on the left edge or the bottom edge
	for row := rows - 1; row >= 0; row-- {
		add(0, row, diagonalUp)
	}
	for column := 1; column < columns; column++ {
		add(column, 0, diagonalUp)
	}

	// "\" diagonals start on the left edge or the top edge
	for row := 0; row < rows; row++ {
		add(0, row, diagonalDown)
	}
	for column := 1; column < columns; column++ {
		add(column, rows-1, diagonalDown)
	}

	lines := make([]Line, 0, len(starts))
	for _, start := range starts {
		line := walk(rows, columns, start.from, start.dir)
		if len(line) >= WinLength {
			lines = append(lines, line)
		}
	}

	return lines
}

func walk(rows, columns int, from Position, dir direction) Line {
	var line Line
	for pos := from; pos.Column >= 0 && pos.Column < columns && pos.Row >= 0 && pos.Row < rows; {
		line = append(line, pos)
		pos.Column += dir.column
		pos.Row += dir.row
	}
	return line
}

// Verdict is the result of a win check: either a winner with its run or no win.
type Verdict struct {
	Winner entity.PlayerID
	Run    Line
}

var NoWin = Verdict{}

func (that Verdict) IsWin() bool {
	return that.Winner != entity.NoPlayer
}

// WinDetector scans all lines of one board shape.
type WinDetector struct {
	rows    int
	columns int
	lines   []Line
}

func NewWinDetector(rows, columns int) *WinDetector {
	return &WinDetector{
		rows:    rows,
		columns: columns,
		lines:   Lines(rows, columns),
	}
}

// Check - looks for a run of the player on the whole board.
func (that *WinDetector) Check(board *entity.Board, player entity.PlayerID) Verdict {
	lines := that.lines
	if board.Rows() != that.rows || board.Columns() != that.columns {
		lines = Lines(board.Rows(), board.Columns())
	}

	owned := entity.Owned(player)
	for _, line := range lines {
		if run := findRun(board, line, owned); run != nil {
			return Verdict{Winner: player, Run: run}
		}
	}

	return NoWin
}

// findRun - the first run of at least WinLength cells equal to want, nil if there is none.
func findRun(board *entity.Board, line Line, want entity.Cell) Line {
	start, length := 0, 0
	for i, pos := range line {
		if board.Cell(pos.Column, pos.Row) != want {
			length = 0
			continue
		}

		if length == 0 {
			start = i
		}
		length++

		if length >= WinLength {
			end := i + 1
			for end < len(line) && board.Cell(line[end].Column, line[end].Row) == want {
				end++
			}
			return line[start:end]
		}
	}

	return nil
}

package entity

import (
	"encoding/json"
	"testing"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewBoard(t *testing.T) {
	t.Run("Creates an empty board of the requested size", func(t *testing.T) {
		// When: a 6x7 board is created
		board, err := NewBoard(6, 7)

		// Then: it has the requested dimensions and only empty cells
		require.NoError(t, err)
		assert.Equal(t, 6, board.Rows())
		assert.Equal(t, 7, board.Columns())

		for column := 0; column < board.Columns(); column++ {
			for row := 0; row < board.Rows(); row++ {
				assert.True(t, board.Cell(column, row).IsEmpty())
			}
		}
	})

	t.Run("Rejects dimensions outside 5..9", func(t *testing.T) {
		cases := []struct {
			rows, columns int
			want          error
		}{
			{4, 7, apperror.ErrRowsOutOfRange},
			{10, 7, apperror.ErrRowsOutOfRange},
			{6, 4, apperror.ErrColumnsOutOfRange},
			{6, 10, apperror.ErrColumnsOutOfRange},
		}

		for _, c := range cases {
			// When: a board is created with invalid dimensions
			board, err := NewBoard(c.rows, c.columns)

			// Then: an ErrInvalidDimensions error carrying the reason is returned
			require.ErrorIs(t, err, apperror.ErrInvalidDimensions)
			require.ErrorIs(t, err, c.want)
			assert.Nil(t, board)
		}
	})
}

func TestBoard_Drop(t *testing.T) {
	t.Run("Tokens stack from the bottom without gaps", func(t *testing.T) {
		// Given: an empty 5x5 board
		board, err := NewBoard(5, 5)
		require.NoError(t, err)

		// When: tokens are dropped into column 2
		players := []PlayerID{First, Second, First}
		for i, player := range players {
			row, dropErr := board.Drop(2, player)
			require.NoError(t, dropErr)

			// Then: every token lands on top of the previous one
			assert.Equal(t, i, row)
		}

		// Then: the column is contiguous from row 0
		assert.Equal(t, []Cell{Owned(First), Owned(Second), Owned(First), EmptyCell, EmptyCell}, board.Column(2))
		assertGravity(t, board)
	})

	t.Run("Dropping into a full column is an invalid move", func(t *testing.T) {
		// Given: a full column
		board, err := NewBoard(5, 5)
		require.NoError(t, err)
		fillColumn(t, board, 0)
		before := board.Grid()

		// When: another token is dropped into it
		row, err := board.Drop(0, First)

		// Then: ErrInvalidMove is returned and nothing changes
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
		assert.Equal(t, -1, row)
		assert.Equal(t, before, board.Grid())
	})

	t.Run("Dropping outside the board is an invalid move", func(t *testing.T) {
		board, err := NewBoard(5, 5)
		require.NoError(t, err)

		_, err = board.Drop(5, First)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)

		_, err = board.Drop(-1, First)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Dropping for no player is an invalid move", func(t *testing.T) {
		board, err := NewBoard(5, 5)
		require.NoError(t, err)

		_, err = board.Drop(0, NoPlayer)
		require.ErrorIs(t, err, apperror.ErrInvalidMove)
	})

	t.Run("Gravity holds for any drop order", func(t *testing.T) {
		// Given: an empty 9x6 board
		board, err := NewBoard(9, 6)
		require.NoError(t, err)

		// When: tokens are dropped in a scattered column order until the board is full
		player := First
		for step := 0; !board.IsFull(); step++ {
			column := (step * 7) % board.Columns()
			for !board.IsColumnPlayable(column) {
				column = (column + 1) % board.Columns()
			}

			_, err = board.Drop(column, player)
			require.NoError(t, err)
			player = player.Other()

			// Then: no column ever has a gap
			assertGravity(t, board)
		}
	})
}

func TestBoard_IsFull(t *testing.T) {
	// Given: an empty 5x6 board
	board, err := NewBoard(5, 6)
	require.NoError(t, err)

	for column := 0; column < board.Columns(); column++ {
		// Then: the board is full only when every column is unplayable
		assert.Equal(t, allUnplayable(board), board.IsFull())

		// When: the next column is filled
		fillColumn(t, board, column)
	}

	assert.True(t, allUnplayable(board))
	assert.True(t, board.IsFull())
}

func TestBoard_Clear(t *testing.T) {
	// Given: a board with a few tokens
	board, err := NewBoard(7, 8)
	require.NoError(t, err)
	fillColumn(t, board, 3)
	_, err = board.Drop(7, Second)
	require.NoError(t, err)

	// When: the board is cleared
	board.Clear()

	// Then: every cell is empty and the dimensions are kept
	empty, err := NewBoard(7, 8)
	require.NoError(t, err)
	assert.Equal(t, empty.Grid(), board.Grid())
	assert.Equal(t, 7, board.Rows())
	assert.Equal(t, 8, board.Columns())
}

func TestBoard_Clone(t *testing.T) {
	board, err := NewBoard(5, 5)
	require.NoError(t, err)
	_, err = board.Drop(1, First)
	require.NoError(t, err)

	clone := board.Clone()
	_, err = clone.Drop(1, Second)
	require.NoError(t, err)

	assert.Equal(t, EmptyCell, board.Cell(1, 1))
	assert.Equal(t, Owned(Second), clone.Cell(1, 1))
}

func TestBoard_JSON(t *testing.T) {
	t.Run("Marshal and unmarshal keep the grid", func(t *testing.T) {
		// Given: a board with tokens of both players
		board, err := NewBoard(6, 7)
		require.NoError(t, err)
		for _, column := range []int{3, 3, 4, 0, 6, 3} {
			_, err = board.Drop(column, PlayerID(1+column%2))
			require.NoError(t, err)
		}

		// When: the board is marshaled and unmarshaled
		data, err := json.Marshal(board)
		require.NoError(t, err)

		restored := &Board{}
		require.NoError(t, json.Unmarshal(data, restored))

		// Then: the restored board equals the original one
		assert.Equal(t, board.Grid(), restored.Grid())
		assert.Equal(t, board.Rows(), restored.Rows())
		assert.Equal(t, board.Columns(), restored.Columns())
	})

	t.Run("Cells are encoded as numbers", func(t *testing.T) {
		board, err := NewBoard(5, 5)
		require.NoError(t, err)
		_, err = board.Drop(0, Second)
		require.NoError(t, err)

		data, err := json.Marshal(board)
		require.NoError(t, err)

		assert.JSONEq(t, `{"rows":5,"columns":5,"grid":[[2,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0]]}`, string(data))
	})

	t.Run("Rejects corrupt boards", func(t *testing.T) {
		cases := map[string]string{
			"floating token": `{"rows":5,"columns":5,"grid":[[0,1,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0]]}`,
			"unknown cell":   `{"rows":5,"columns":5,"grid":[[3,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0]]}`,
			"missing column": `{"rows":5,"columns":5,"grid":[[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0]]}`,
			"short column":   `{"rows":5,"columns":5,"grid":[[0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0],[0,0,0,0,0]]}`,
			"too small":      `{"rows":4,"columns":5,"grid":[[0,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0],[0,0,0,0]]}`,
			"not json":       `[`,
		}

		for name, data := range cases {
			board := &Board{}
			err := board.UnmarshalJSON([]byte(data))
			assert.ErrorIs(t, err, apperror.ErrInvalidBoard, name)
		}
	})
}

func TestCell_Owner(t *testing.T) {
	owner, ok := EmptyCell.Owner()
	assert.False(t, ok)
	assert.Equal(t, NoPlayer, owner)

	owner, ok = Owned(Second).Owner()
	assert.True(t, ok)
	assert.Equal(t, Second, owner)
}

func fillColumn(t *testing.T, board *Board, column int) {
	t.Helper()

	player := First
	for board.IsColumnPlayable(column) {
		_, err := board.Drop(column, player)
		require.NoError(t, err)
		player = player.Other()
	}
}

func allUnplayable(board *Board) bool {
	for column := 0; column < board.Columns(); column++ {
		if board.IsColumnPlayable(column) {
			return false
		}
	}
	return true
}

func assertGravity(t *testing.T, board *Board) {
	t.Helper()

	for column := 0; column < board.Columns(); column++ {
		seenEmpty := false
		for row, cell := range board.Column(column) {
			if cell.IsEmpty() {
				seenEmpty = true
				continue
			}
			assert.False(t, seenEmpty, "gap below row %d in column %d", row, column)
		}
	}
}

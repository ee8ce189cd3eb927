package console

import (
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"

	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	wall        = "║"
	leftCorner  = "╚"
	bottomFill  = "═╩"
	rightCorner = "═╝"

	ansiReset = "\x1b[0m"
)

var tokenColors = map[entity.PlayerID]string{
	entity.First:  "\x1b[31m",
	entity.Second: "\x1b[33m",
}

// ColorEnabled - resolves the color mode against the output, "auto" colors terminals only.
func ColorEnabled(mode string, out io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}

	file, ok := out.(*os.File)
	return ok && term.IsTerminal(int(file.Fd()))
}

// Renderer draws the board with box characters, row zero at the bottom.
type Renderer struct {
	color bool
}

func NewRenderer(color bool) *Renderer {
	return &Renderer{color: color}
}

func (that *Renderer) Render(session *entity.SessionSnapshot) string {
	board := session.Board

	var sb strings.Builder

	for column := 1; column <= board.Columns(); column++ {
		fmt.Fprintf(&sb, " %d", column)
	}
	sb.WriteString("\n")

	for row := board.Rows() - 1; row >= 0; row-- {
		sb.WriteString(wall)
		for column := 0; column < board.Columns(); column++ {
			sb.WriteString(that.token(session, board.Cell(column, row)))
			sb.WriteString(wall)
		}
		sb.WriteString("\n")
	}

	sb.WriteString(leftCorner)
	sb.WriteString(strings.Repeat(bottomFill, board.Columns()-1))
	sb.WriteString(rightCorner)
	sb.WriteString("\n")

	return sb.String()
}

func (that *Renderer) token(session *entity.SessionSnapshot, cell entity.Cell) string {
	owner, ok := cell.Owner()
	if !ok {
		return " "
	}

	token := session.Players[owner.Index()].Token
	if !that.color {
		return token
	}

	return tokenColors[owner] + token + ansiReset
}

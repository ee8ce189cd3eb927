package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/rocketscienceinc/connectfour/internal/apperror"
	"github.com/rocketscienceinc/connectfour/internal/connectfour"
	"github.com/rocketscienceinc/connectfour/internal/entity"
)

const (
	endCommand = "end"

	// maxLineLength - longer lines are discarded and re-prompted.
	maxLineLength = 4096
)

var errLineTooLong = fmt.Errorf("%w: line longer than %d bytes", apperror.ErrInvalidInput, maxLineLength)

type gameManager interface {
	ConfigurePlayers(first, second string) error
	ConfigureBoard(rows, columns int) error
	ConfigureSession(ctx context.Context, totalGames int) error
	SubmitMove(ctx context.Context, raw string) (connectfour.MoveResult, error)
	Advance(ctx context.Context) error
	RequestEnd(ctx context.Context) error
	State() (*entity.SessionSnapshot, error)
}

// Settings - the board offered on empty input and whether tokens are colored.
type Settings struct {
	Rows    int
	Columns int
	Color   bool
}

// Console plays a session over a line based text protocol.
type Console struct {
	logger   *slog.Logger
	manager  gameManager
	in       io.Reader
	out      io.Writer
	renderer *Renderer
	settings Settings

	lines <-chan inputLine
}

type inputLine struct {
	text string
	err  error
}

func New(logger *slog.Logger, manager gameManager, in io.Reader, out io.Writer, settings Settings) *Console {
	if settings.Rows == 0 || settings.Columns == 0 {
		settings.Rows, settings.Columns = entity.DefaultRows, entity.DefaultColumns
	}

	return &Console{
		logger:   logger.With("component", "console"),
		manager:  manager,
		in:       in,
		out:      out,
		renderer: NewRenderer(settings.Color),
		settings: settings,
	}
}

// Run - plays until the session ends, "end" is typed, the input is exhausted or ctx is canceled.
func (that *Console) Run(ctx context.Context) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	that.lines = readLines(ctx, that.in)

	err := that.play(ctx)
	if errors.Is(err, io.EOF) || errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded) {
		that.logger.Debug("input closed", "error", err)
		err = nil
	}

	if endErr := that.manager.RequestEnd(context.WithoutCancel(ctx)); endErr != nil &&
		!errors.Is(endErr, apperror.ErrSessionNotStarted) {
		that.logger.Warn("could not end session", "error", endErr)
	}

	that.println("Game over!")

	return err
}

func (that *Console) play(ctx context.Context) error {
	that.println("Connect Four")

	if err := that.askPlayers(ctx); err != nil {
		return err
	}

	if err := that.askBoard(ctx); err != nil {
		return err
	}

	games, err := that.askGames(ctx)
	if err != nil {
		return err
	}

	if err = that.manager.ConfigureSession(ctx, games); err != nil {
		return fmt.Errorf("failed start session: %w", err)
	}

	state, err := that.manager.State()
	if err != nil {
		return err
	}

	that.printBanner(state)
	that.print(that.renderer.Render(state))

	return that.playTurns(ctx)
}

func (that *Console) printBanner(state *entity.SessionSnapshot) {
	that.printf("%s VS %s\n", state.Players[0].Name, state.Players[1].Name)
	that.printf("%d X %d board\n", state.Board.Rows(), state.Board.Columns())

	if state.TotalGames == 1 {
		that.println("Single game")
		return
	}

	that.printf("Total %d games\n", state.TotalGames)
	that.printf("Game #%d\n", state.GameIndex)
}

func (that *Console) askPlayers(ctx context.Context) error {
	for {
		first, err := that.askName(ctx, "First player's name:")
		if err != nil {
			return err
		}

		second, err := that.askName(ctx, "Second player's name:")
		if err != nil {
			return err
		}

		if err = that.manager.ConfigurePlayers(first, second); err == nil {
			return nil
		}
	}
}

func (that *Console) askName(ctx context.Context, prompt string) (string, error) {
	for {
		that.println(prompt)

		name, err := that.readLine(ctx)
		if errors.Is(err, errLineTooLong) {
			that.println("Invalid input")
			continue
		}
		if err != nil {
			return "", err
		}

		if strings.TrimSpace(name) != "" {
			return name, nil
		}
	}
}

func (that *Console) askBoard(ctx context.Context) error {
	for {
		that.println("Set the board dimensions (Rows x Columns)")
		that.printf("Press Enter for default (%d x %d)\n", that.settings.Rows, that.settings.Columns)

		input, err := that.readLine(ctx)
		if errors.Is(err, errLineTooLong) {
			that.println("Invalid input")
			continue
		}
		if err != nil {
			return err
		}

		rows, columns := that.settings.Rows, that.settings.Columns
		if strings.TrimSpace(input) != "" {
			rows, columns, err = ParseDimensions(input)
			if err != nil {
				that.println(dimensionsMessage(err))
				continue
			}
		}

		if err = that.manager.ConfigureBoard(rows, columns); err != nil {
			that.println(dimensionsMessage(err))
			continue
		}

		return nil
	}
}

func (that *Console) askGames(ctx context.Context) (int, error) {
	for {
		that.println("Do you want to play single or multiple games?")
		that.println("For a single game, input 1 or press Enter")
		that.println("Input a number of games:")

		input, err := that.readLine(ctx)
		if errors.Is(err, errLineTooLong) {
			that.println("Invalid input")
			continue
		}
		if err != nil {
			return 0, err
		}

		games, err := ParseGameCount(input)
		if err != nil {
			that.println("Invalid input")
			continue
		}

		return games, nil
	}
}

func (that *Console) playTurns(ctx context.Context) error {
	for {
		state, err := that.manager.State()
		if err != nil {
			return err
		}

		if state.Status == entity.StatusEnded {
			return nil
		}

		that.printf("%s's turn:\n", state.Players[state.CurrentPlayer.Index()].Name)

		input, err := that.readLine(ctx)
		if errors.Is(err, errLineTooLong) {
			that.println("Incorrect column number")
			continue
		}
		if err != nil {
			return err
		}

		if strings.EqualFold(strings.TrimSpace(input), endCommand) {
			return nil
		}

		result, err := that.manager.SubmitMove(ctx, input)
		if err != nil {
			if message, ok := moveMessage(err, input, state.Board.Columns()); ok {
				that.println(message)
				continue
			}

			return err
		}

		if err = that.afterMove(ctx, result); err != nil {
			return err
		}
	}
}

func (that *Console) afterMove(ctx context.Context, result connectfour.MoveResult) error {
	state, err := that.manager.State()
	if err != nil {
		return err
	}

	that.print(that.renderer.Render(state))

	switch result.Status {
	case entity.StatusWon:
		that.printf("Player %s won\n", state.Players[result.Player.Index()].Name)
	case entity.StatusDraw:
		that.println("It is a draw")
	default:
		return nil
	}

	if state.TotalGames > 1 {
		that.println("Score")
		that.printf("%s: %d %s: %d\n",
			state.Players[0].Name, state.Players[0].Score,
			state.Players[1].Name, state.Players[1].Score,
		)
	}

	if err = that.manager.Advance(ctx); err != nil {
		return err
	}

	state, err = that.manager.State()
	if err != nil {
		return err
	}

	if state.Status != entity.StatusEnded {
		that.printf("Game #%d\n", state.GameIndex)
		that.print(that.renderer.Render(state))
	}

	return nil
}

func dimensionsMessage(err error) string {
	switch {
	case errors.Is(err, apperror.ErrRowsOutOfRange):
		return fmt.Sprintf("Board rows should be from %d to %d", entity.MinSize, entity.MaxSize)
	case errors.Is(err, apperror.ErrColumnsOutOfRange):
		return fmt.Sprintf("Board columns should be from %d to %d", entity.MinSize, entity.MaxSize)
	default:
		return "Invalid input"
	}
}

func moveMessage(err error, input string, columns int) (string, bool) {
	switch {
	case errors.Is(err, apperror.ErrNotANumber):
		return "Incorrect column number", true
	case errors.Is(err, apperror.ErrOutOfRange):
		return fmt.Sprintf("The column number is out of range (1 - %d)", columns), true
	case errors.Is(err, apperror.ErrColumnFull):
		return fmt.Sprintf("Column %s is full", strings.TrimSpace(input)), true
	default:
		return "", false
	}
}

func (that *Console) readLine(ctx context.Context) (string, error) {
	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case line, ok := <-that.lines:
		if !ok {
			return "", io.EOF
		}
		return line.text, line.err
	}
}

// readLines - feeds lines from in until EOF, a read error or until ctx is done.
// A read error is delivered once before the channel is closed.
func readLines(ctx context.Context, in io.Reader) <-chan inputLine {
	lines := make(chan inputLine)

	go func() {
		defer close(lines)

		reader := bufio.NewReaderSize(in, maxLineLength)
		for {
			text, err := readBoundedLine(reader)
			if errors.Is(err, io.EOF) {
				return
			}

			select {
			case lines <- inputLine{text: text, err: err}:
			case <-ctx.Done():
				return
			}

			if err != nil && !errors.Is(err, errLineTooLong) {
				return
			}
		}
	}()

	return lines
}

// readBoundedLine - one line without its line ending. The rest of a line that
// does not fit the reader's buffer is skipped and errLineTooLong returned.
func readBoundedLine(reader *bufio.Reader) (string, error) {
	line, isPrefix, err := reader.ReadLine()
	if err != nil {
		return "", err
	}

	if !isPrefix {
		return string(line), nil
	}

	for isPrefix {
		if _, isPrefix, err = reader.ReadLine(); err != nil {
			if errors.Is(err, io.EOF) {
				return "", errLineTooLong
			}
			return "", err
		}
	}

	return "", errLineTooLong
}

func (that *Console) print(text string) {
	fmt.Fprint(that.out, text)
}

func (that *Console) println(text string) {
	fmt.Fprintln(that.out, text)
}

func (that *Console) printf(format string, args ...any) {
	fmt.Fprintf(that.out, format, args...)
}

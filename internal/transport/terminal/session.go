package terminal

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/bitlinegames/tictactoe-cli/internal/apperror"
	"github.com/bitlinegames/tictactoe-cli/pkg/bitboard"
	"github.com/bitlinegames/tictactoe-cli/pkg/tictactoe"
	"github.com/muesli/termenv"
)

// Session drives one hotseat match over a line-based terminal: both
// players share the same input and type their moves in turn. The board is
// printed as plain ASCII; colors only ever touch prompts and verdicts.
type Session struct {
	logger *slog.Logger
	game   *tictactoe.Game

	in        *bufio.Scanner
	out       io.Writer
	styled    *termenv.Output
	showMoves bool
}

// Options adjust how the session presents the match.
type Options struct {
	Profile   termenv.Profile
	ShowMoves bool
}

func New(logger *slog.Logger, game *tictactoe.Game, in io.Reader, out io.Writer, opts Options) *Session {
	return &Session{
		logger:    logger,
		game:      game,
		in:        bufio.NewScanner(in),
		out:       out,
		styled:    termenv.NewOutput(out, termenv.WithProfile(opts.Profile)),
		showMoves: opts.ShowMoves,
	}
}

// ProfileFor maps the color-mode setting to a termenv profile: "always"
// forces ANSI colors, "never" strips all styling, anything else lets
// termenv detect what the terminal supports.
func ProfileFor(mode string) termenv.Profile {
	switch mode {
	case "always":
		return termenv.ANSI
	case "never":
		return termenv.Ascii
	default:
		return termenv.ColorProfile()
	}
}

// Run plays a single match to completion, reading one move per input
// line. It returns nil once the match reaches a terminal state and
// ErrMatchAbandoned when a player resigns with q, the input ends, or the
// context is canceled between turns. Anything else is an I/O failure.
func (that *Session) Run(ctx context.Context) error {
	log := that.logger.With("component", "terminal")

	lines := make(chan string)
	go func() {
		defer close(lines)

		for that.in.Scan() {
			select {
			case lines <- that.in.Text():
			case <-ctx.Done():
				return
			}
		}
	}()

	for {
		state := that.game.State()
		if state.IsTerminal() {
			that.finish(state)
			log.Info("match finished", "state", state.String())

			return nil
		}

		that.printBoard()
		that.prompt(state)

		select {
		case <-ctx.Done():
			fmt.Fprintln(that.out)
			log.Info("session canceled, abandoning match")

			return apperror.ErrMatchAbandoned

		case line, ok := <-lines:
			if !ok {
				if err := that.in.Err(); err != nil {
					return fmt.Errorf("failed to read move: %w", err)
				}

				fmt.Fprintln(that.out)
				log.Info("input closed, abandoning match")

				return apperror.ErrMatchAbandoned
			}

			move := strings.TrimSpace(line)
			if move == "q" || move == "quit" {
				log.Info("match abandoned by player", "state", state.String())

				return apperror.ErrMatchAbandoned
			}

			if err := that.play(move); err != nil {
				that.report(err)
			}
		}
	}
}

// play parses and validates one typed move. Game.Play panics on occupied
// cells, so occupancy is checked here first and handed back to the player
// as a recoverable error.
func (that *Session) play(raw string) error {
	move, err := bitboard.ParseCellIndex(raw)
	if err != nil {
		return fmt.Errorf("failed to parse move: %w", err)
	}

	if that.game.Cell(move) != bitboard.Empty {
		return fmt.Errorf("%w: cell %s", apperror.ErrCellOccupied, move)
	}

	that.game.Play(move)

	return nil
}

// printBoard writes the plain board. Styling must never touch these
// bytes; the drawing is a compatibility contract.
func (that *Session) printBoard() {
	fmt.Fprintf(that.out, "%s\n", that.game)
}

func (that *Session) prompt(state tictactoe.State) {
	label := that.styled.String(state.String()).Bold()

	if that.showMoves {
		fmt.Fprintf(that.out, "%s %s> ", label, that.legalMoveHint())
		return
	}

	fmt.Fprintf(that.out, "%s> ", label)
}

func (that *Session) finish(state tictactoe.State) {
	that.printBoard()

	verdict := that.styled.String(state.String()).Bold()
	if state == tictactoe.Draw {
		verdict = verdict.Foreground(termenv.ANSIYellow)
	} else {
		verdict = verdict.Foreground(termenv.ANSIGreen)
	}

	fmt.Fprintf(that.out, "%s\n", verdict)
}

func (that *Session) report(err error) {
	hint := err.Error()

	switch {
	case errors.Is(err, bitboard.ErrInvalidCell):
		hint = "enter a single digit from 0 to 8, or q to quit"
	case errors.Is(err, apperror.ErrCellOccupied):
		hint = "that cell is already taken, pick an empty one"
	}

	fmt.Fprintf(that.out, "%s\n", that.styled.String(hint).Foreground(termenv.ANSIRed))
}

// legalMoveHint lists the empty cells the way they appear in the prompt,
// e.g. [0 1 5 8].
func (that *Session) legalMoveHint() string {
	var hint strings.Builder

	hint.WriteByte('[')
	for move := range that.game.LegalMoves() {
		if hint.Len() > 1 {
			hint.WriteByte(' ')
		}
		hint.WriteString(move.String())
	}
	hint.WriteByte(']')

	return hint.String()
}

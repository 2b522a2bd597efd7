package tui

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/reversi/internal/apperror"
	"github.com/rocketscienceinc/reversi/internal/config"
	"github.com/rocketscienceinc/reversi/internal/reversi"
	"github.com/rocketscienceinc/reversi/internal/service"
)

// App is the terminal front-end: it renders the game, submits human moves,
// lets the bot take its turns and drives save/load.
type App struct {
	logger *slog.Logger

	session service.SessionService
	bot     service.BotService

	saveSlot   string
	botEnabled bool
	botPlayer  int

	app     *tview.Application
	board   *BoardUI
	status  *tview.TextView
	game    *reversi.Game
	message string

	ctx context.Context
}

func New(logger *slog.Logger, conf *config.Config, session service.SessionService, bot service.BotService) *App {
	status := tview.NewTextView()
	status.SetDynamicColors(true)
	status.SetBorder(true)
	status.SetTitle(" reversi ")

	return &App{
		logger:     logger.With("component", "tui"),
		session:    session,
		bot:        bot,
		saveSlot:   conf.SaveSlot,
		botEnabled: conf.Bot.Enabled,
		botPlayer:  conf.Bot.Player,
		app:        tview.NewApplication(),
		board:      NewBoardUI(),
		status:     status,
	}
}

// Run blocks until the user quits or the context is cancelled.
func (that *App) Run(ctx context.Context, game *reversi.Game) error {
	that.ctx = ctx
	that.setGame(game)
	that.refresh()

	layout := tview.NewFlex().
		AddItem(that.board.Box, 0, 2, true).
		AddItem(that.status, 0, 1, false)

	that.app.SetInputCapture(that.handleKey)

	go func() {
		<-ctx.Done()
		that.app.Stop()
	}()

	if err := that.app.SetRoot(layout, true).Run(); err != nil {
		return fmt.Errorf("failed to run terminal UI: %w", err)
	}

	return nil
}

func (that *App) handleKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyUp:
		that.board.MoveSelection(-1, 0)
	case tcell.KeyDown:
		that.board.MoveSelection(1, 0)
	case tcell.KeyLeft:
		that.board.MoveSelection(0, -1)
	case tcell.KeyRight:
		that.board.MoveSelection(0, 1)
	case tcell.KeyEnter:
		that.submitMove()
	case tcell.KeyF2:
		that.saveGame()
	case tcell.KeyF3:
		that.loadGame()
	case tcell.KeyEscape:
		that.app.Stop()
	case tcell.KeyRune:
		switch event.Rune() {
		case 's':
			that.passTurn()
		case 'q':
			that.app.Stop()
		}
	}

	that.refresh()

	return nil
}

func (that *App) setGame(game *reversi.Game) {
	that.game = game
	that.board.SetGame(game)
	that.advance()
}

// submitMove plays the selected square for the current (human) player. An
// illegal move leaves the game untouched; the user just picks again.
func (that *App) submitMove() {
	if that.game.IsDone() || that.isBot(that.game.Turn()) {
		return
	}

	player := that.game.Turn()
	pos := that.board.Selected()

	if err := that.game.ApplyMove(player, pos.Row, pos.Col); err != nil {
		if errors.Is(err, apperror.ErrIllegalMove) {
			that.message = fmt.Sprintf("(%d, %d) is not a legal move", pos.Row, pos.Col)
			return
		}

		that.logger.Error("move rejected", "error", err)
		that.message = err.Error()

		return
	}

	that.message = ""
	that.advance()
}

// passTurn acknowledges a forced pass for a human player without moves.
func (that *App) passTurn() {
	if that.game.IsDone() || that.isBot(that.game.Turn()) {
		return
	}

	if len(that.game.LegalMoves(that.game.Turn())) > 0 {
		that.message = "you still have legal moves"
		return
	}

	that.message = fmt.Sprintf("player %d passed", that.game.Turn())
	that.game.SkipTurn()
	that.advance()
}

// advance runs bot turns and bot passes until a human must act or the game
// ends. A human with no legal moves is told to pass; the engine never
// advances the turn by itself.
func (that *App) advance() {
	for !that.game.IsDone() {
		turn := that.game.Turn()
		moves := that.game.LegalMoves(turn)

		if !that.isBot(turn) {
			if len(moves) == 0 {
				that.message = fmt.Sprintf("player %d has no legal moves, press s to pass", turn)
			}
			break
		}

		if len(moves) == 0 {
			that.message = fmt.Sprintf("player %d passed", turn)
			that.game.SkipTurn()
			continue
		}

		if err := that.bot.MakeTurn(that.game); err != nil {
			that.logger.Error("bot turn failed", "error", err)
			that.message = err.Error()
			break
		}
	}

	that.board.Refresh()
}

func (that *App) saveGame() {
	if err := that.session.Save(that.ctx, that.saveSlot, that.game); err != nil {
		that.logger.Error("save failed", "error", err)
		that.message = "save failed: " + err.Error()

		return
	}

	that.message = fmt.Sprintf("saved to slot %q", that.saveSlot)
}

func (that *App) loadGame() {
	game, err := that.session.Load(that.ctx, that.saveSlot)
	if err != nil {
		that.logger.Error("load failed", "error", err)
		that.message = "load failed: " + err.Error()

		return
	}

	that.message = fmt.Sprintf("loaded slot %q", that.saveSlot)
	that.setGame(game)
}

func (that *App) refresh() {
	var text strings.Builder

	for player := 1; player <= that.game.Players(); player++ {
		marker := " "
		if !that.game.IsDone() && that.game.Turn() == player {
			marker = ">"
		}

		count := 0
		for row := 0; row < that.game.Side(); row++ {
			for col := 0; col < that.game.Side(); col++ {
				if cell, _ := that.game.Cell(row, col); int(cell) == player {
					count++
				}
			}
		}

		fmt.Fprintf(&text, "%s player %d: %d pieces\n", marker, player, count)
	}

	fmt.Fprintf(&text, "\npasses in a row: %d\n", that.game.Skipped())

	if that.game.IsDone() {
		fmt.Fprintf(&text, "\n[yellow::b]game over, winner(s): %v[-:-:-]\n", that.game.Winners())
	}

	if that.message != "" {
		fmt.Fprintf(&text, "\n%s\n", that.message)
	}

	text.WriteString("\narrows: move  enter: play  s: pass\nF2: save  F3: load  q: quit")

	that.status.SetText(text.String())
}

func (that *App) isBot(player int) bool {
	return that.botEnabled && player == that.botPlayer
}

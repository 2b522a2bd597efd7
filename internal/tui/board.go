// Package tui renders a Reversi game in the terminal and turns key presses
// into rules-engine calls.
package tui

import (
	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/rocketscienceinc/reversi/internal/entity"
	"github.com/rocketscienceinc/reversi/internal/reversi"
)

// playerColors maps player numbers (1-based) to piece colors.
var playerColors = []tcell.Color{
	tcell.ColorBlack,
	tcell.ColorWhite,
	tcell.ColorRed,
	tcell.ColorBlue,
	tcell.ColorYellow,
	tcell.ColorPurple,
}

const (
	pieceRune     = '●'
	legalRune     = '·'
	emptyRune     = ' '
	cellWidth     = 2 // terminal cells per board square, for a square look
	boardColor    = tcell.ColorDarkGreen
	boardColorAlt = tcell.ColorGreen
)

// BoardUI draws the grid, the pieces, the legal-move hints and the cursor.
type BoardUI struct {
	Box *tview.Box

	game   *reversi.Game
	legal  reversi.LegalMoves
	selRow int
	selCol int
}

func NewBoardUI() *BoardUI {
	board := &BoardUI{
		Box: tview.NewBox(),
	}

	board.Box.SetDrawFunc(func(screen tcell.Screen, x, y, width, height int) (int, int, int, int) {
		board.draw(screen, x, y)
		return x, y, width, height
	})

	return board
}

// SetGame points the widget at a game and recomputes the legal-move
// highlights for the player whose turn it is.
func (that *BoardUI) SetGame(game *reversi.Game) {
	that.game = game
	that.selRow = game.Side() / 2
	that.selCol = game.Side() / 2
	that.Refresh()
}

// Refresh recomputes the legal-move highlights after a state change.
func (that *BoardUI) Refresh() {
	if that.game.IsDone() {
		that.legal = nil
		return
	}

	that.legal = that.game.LegalMoves(that.game.Turn())
}

func (that *BoardUI) Selected() reversi.Position {
	return reversi.Position{Row: that.selRow, Col: that.selCol}
}

func (that *BoardUI) MoveSelection(dr, dc int) {
	if that.game == nil {
		return
	}

	row, col := that.selRow+dr, that.selCol+dc
	if row < 0 || row >= that.game.Side() || col < 0 || col >= that.game.Side() {
		return
	}

	that.selRow, that.selCol = row, col
}

func (that *BoardUI) draw(screen tcell.Screen, x, y int) {
	if that.game == nil {
		return
	}

	side := that.game.Side()
	for row := 0; row < side; row++ {
		for col := 0; col < side; col++ {
			background := boardColor
			if (row+col)%2 == 1 {
				background = boardColorAlt
			}

			drawRune := emptyRune
			foreground := tcell.ColorBlack

			cell, _ := that.game.Cell(row, col)
			if cell != entity.Empty {
				drawRune = pieceRune
				foreground = pieceColor(int(cell))
			} else if _, ok := that.legal[reversi.Position{Row: row, Col: col}]; ok {
				drawRune = legalRune
			}

			style := tcell.StyleDefault.Foreground(foreground).Background(background)
			if row == that.selRow && col == that.selCol {
				style = style.Reverse(true)
			}

			screen.SetContent(x+col*cellWidth, y+row, drawRune, nil, style)
			screen.SetContent(x+col*cellWidth+1, y+row, emptyRune, nil, style)
		}
	}
}

func pieceColor(player int) tcell.Color {
	if player < 1 || player > len(playerColors) {
		return tcell.ColorGray
	}

	return playerColors[player-1]
}

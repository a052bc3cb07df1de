package ui

import (
	"fmt"

	"github.com/gdamore/tcell/v2"

	"github.com/mingu600/tapu-simu/internal/battleformat"
	"github.com/mingu600/tapu-simu/internal/pokemon"
)

// column width of one battle-position cell, wide enough for a name, an HP
// bar and a status abbreviation on one line.
const cellWidth = 24

// Renderer draws a BattleState as a two-sided grid of battle positions,
// one row per side, repurposing the teacher's tcell-based tile renderer
// from dungeon-tile rendering to battle-position rendering.
type Renderer struct {
	screen *Screen
}

// NewRenderer creates a new renderer for the given screen.
func NewRenderer(screen *Screen) *Renderer {
	return &Renderer{screen: screen}
}

// Render draws the full battle state: SideTwo's row above SideOne's,
// matching the conventional "opponent on top" battle layout, plus a turn
// counter and a trailing message line.
func (r *Renderer) Render(state *pokemon.BattleState, message string) {
	r.screen.Clear()

	r.renderSideRow(state, battleformat.SideTwo, 0)
	r.renderSideRow(state, battleformat.SideOne, 3)

	r.renderTurnIndicator(state.Turn)

	if message != "" {
		r.RenderMessage(message, 7)
	}

	r.screen.Show()
}

// renderSideRow draws every active position of one side at rows y (name
// and level) and y+1 (HP bar, plus a status abbreviation when statused).
func (r *Renderer) renderSideRow(state *pokemon.BattleState, side battleformat.Side, y int) {
	for slot := 0; slot < state.Format.ActivePerSide; slot++ {
		pos := battleformat.Position{Side: side, Slot: slot}
		p := state.PokemonAt(pos)
		x := slot * cellWidth
		if p == nil {
			r.renderText(x, y, "---", tcell.StyleDefault.Foreground(tcell.ColorDarkGray))
			continue
		}
		r.renderPokemonCell(x, y, p)
	}
}

func (r *Renderer) renderPokemonCell(x, y int, p *pokemon.Pokemon) {
	nameStyle := tcell.StyleDefault.Foreground(tcell.ColorWhite).Bold(true)
	if p.IsFainted() {
		nameStyle = tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
	r.renderText(x, y, fmt.Sprintf("%s L%d", p.Species, p.Level), nameStyle)

	hpLine := fmt.Sprintf("%s %d/%d", r.hpBar(p), p.CurrentHP, p.MaxHP)
	r.renderText(x, y+1, hpLine, r.hpStyle(p))

	if p.Status != pokemon.StatusNone {
		r.renderText(x+cellWidth-4, y+1, p.Status.String()[:min(3, len(p.Status.String()))], tcell.StyleDefault.Foreground(tcell.ColorYellow))
	}
}

// hpBar renders a 10-cell bracketed bar proportional to current/max HP.
func (r *Renderer) hpBar(p *pokemon.Pokemon) string {
	const width = 10
	filled := 0
	if p.MaxHP > 0 {
		filled = width * p.CurrentHP / p.MaxHP
	}
	if filled > width {
		filled = width
	}
	if filled < 0 {
		filled = 0
	}
	bar := make([]byte, width)
	for i := range bar {
		if i < filled {
			bar[i] = '#'
		} else {
			bar[i] = '-'
		}
	}
	return "[" + string(bar) + "]"
}

// hpStyle color-codes the HP line the way most Pokemon UIs do: green above
// half, yellow above a quarter, red below.
func (r *Renderer) hpStyle(p *pokemon.Pokemon) tcell.Style {
	if p.IsFainted() {
		return tcell.StyleDefault.Foreground(tcell.ColorDarkGray)
	}
	if p.MaxHP == 0 {
		return tcell.StyleDefault.Foreground(tcell.ColorWhite)
	}
	ratio := float64(p.CurrentHP) / float64(p.MaxHP)
	switch {
	case ratio > 0.5:
		return tcell.StyleDefault.Foreground(tcell.ColorGreen)
	case ratio > 0.25:
		return tcell.StyleDefault.Foreground(tcell.ColorYellow)
	default:
		return tcell.StyleDefault.Foreground(tcell.ColorRed)
	}
}

// renderTurnIndicator draws the current turn number in the top-right corner.
func (r *Renderer) renderTurnIndicator(turn int) {
	text := fmt.Sprintf("Turn %d", turn)
	style := tcell.StyleDefault.Foreground(tcell.ColorAqua).Bold(true)
	width, _ := r.screen.Size()
	startX := width - len(text)
	if startX < 0 {
		startX = 0
	}
	r.renderText(startX, 0, text, style)
}

// RenderMessage displays a message at the given row.
func (r *Renderer) RenderMessage(msg string, y int) {
	r.renderText(0, y, msg, tcell.StyleDefault.Foreground(tcell.ColorWhite))
}

// renderText draws a string at the given position.
func (r *Renderer) renderText(x, y int, text string, style tcell.Style) {
	for i, ch := range text {
		r.screen.SetContent(x+i, y, ch, style)
	}
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}

package main

import (
	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/game"
	"github.com/lixenwraith/arcade-siege/render"
)

// inputHandler translates terminal events into game commands
type inputHandler struct {
	game     *game.Game
	renderer *render.TerminalRenderer
}

func newInputHandler(g *game.Game, r *render.TerminalRenderer) *inputHandler {
	return &inputHandler{game: g, renderer: r}
}

// HandleEvent applies one terminal event; returns false when the player quits
func (h *inputHandler) HandleEvent(ev tcell.Event) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev)

	case *tcell.EventMouse:
		x, _ := ev.Position()
		h.game.MoveTo(h.renderer.ToFieldX(x))
		if ev.Buttons()&tcell.Button1 != 0 {
			h.game.Fire()
		}

	case *tcell.EventResize:
		h.renderer.UpdateDimensions(ev.Size())
	}
	return true
}

func (h *inputHandler) handleKey(ev *tcell.EventKey) bool {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return false
	case tcell.KeyLeft:
		h.game.MoveDelta(-constants.PlayerSpeed)
	case tcell.KeyRight:
		h.game.MoveDelta(constants.PlayerSpeed)
	case tcell.KeyEnter:
		h.start()
	case tcell.KeyRune:
		switch ev.Rune() {
		case 'q':
			return false
		case 'h', 'a':
			h.game.MoveDelta(-constants.PlayerSpeed)
		case 'l', 'd':
			h.game.MoveDelta(constants.PlayerSpeed)
		case ' ':
			h.game.Fire()
		}
	}
	return true
}

// start begins a session from the menu or after game over, never mid-game
func (h *inputHandler) start() {
	switch h.game.Phase() {
	case engine.PhaseMenu, engine.PhaseGameOver:
		h.game.StartGame()
	}
}

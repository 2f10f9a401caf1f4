package main

import (
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/game"
	"github.com/lixenwraith/arcade-siege/render"
)

func newTestInput(t *testing.T) (*inputHandler, *game.Game) {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	g := game.New(engine.NewMockTimeProvider(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)), engine.Tuning{Seed: 3})
	t.Cleanup(g.Stop)
	return newInputHandler(g, render.NewTerminalRenderer(screen, nil)), g
}

func key(k tcell.Key) *tcell.EventKey {
	return tcell.NewEventKey(k, 0, tcell.ModNone)
}

func runeKey(ch rune) *tcell.EventKey {
	return tcell.NewEventKey(tcell.KeyRune, ch, tcell.ModNone)
}

func TestInputQuitKeys(t *testing.T) {
	h, _ := newTestInput(t)

	tests := []struct {
		name string
		ev   tcell.Event
	}{
		{"escape", key(tcell.KeyEscape)},
		{"ctrl-c", tcell.NewEventKey(tcell.KeyCtrlC, 0, tcell.ModCtrl)},
		{"q", runeKey('q')},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if h.HandleEvent(tt.ev) {
				t.Error("HandleEvent() = true, want quit")
			}
		})
	}
}

func TestInputEnterStartsFromMenu(t *testing.T) {
	h, g := newTestInput(t)

	if !h.HandleEvent(key(tcell.KeyEnter)) {
		t.Fatal("Enter quit the game")
	}
	if got := g.Phase(); got != engine.PhasePlaying {
		t.Errorf("Phase() = %v, want Playing", got)
	}
}

func TestInputEnterIgnoredWhilePlaying(t *testing.T) {
	h, g := newTestInput(t)
	h.HandleEvent(key(tcell.KeyEnter))
	h.HandleEvent(runeKey(' '))

	if n := len(g.Snapshot().PlayerBullets); n != 1 {
		t.Fatalf("player bullets = %d, want 1", n)
	}

	h.HandleEvent(key(tcell.KeyEnter))
	if n := len(g.Snapshot().PlayerBullets); n != 1 {
		t.Errorf("player bullets after Enter = %d, want 1 (no restart)", n)
	}
}

func TestInputMovement(t *testing.T) {
	h, g := newTestInput(t)
	h.HandleEvent(key(tcell.KeyEnter))
	start := g.Snapshot().Player.X

	tests := []struct {
		name string
		ev   tcell.Event
		dx   float64
	}{
		{"right arrow", key(tcell.KeyRight), constants.PlayerSpeed},
		{"left arrow", key(tcell.KeyLeft), -constants.PlayerSpeed},
		{"l", runeKey('l'), constants.PlayerSpeed},
		{"h", runeKey('h'), -constants.PlayerSpeed},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			before := g.Snapshot().Player.X
			h.HandleEvent(tt.ev)
			if got := g.Snapshot().Player.X - before; got != tt.dx {
				t.Errorf("moved %v, want %v", got, tt.dx)
			}
		})
	}

	if got := g.Snapshot().Player.X; got != start {
		t.Errorf("X = %v after balanced moves, want %v", got, start)
	}
}

func TestInputMouseMovesAndFires(t *testing.T) {
	h, g := newTestInput(t)
	h.HandleEvent(key(tcell.KeyEnter))

	h.HandleEvent(tcell.NewEventMouse(10, 5, tcell.ButtonNone, tcell.ModNone))
	snap := g.Snapshot()
	if want := 10.5 * constants.FieldWidth / 80; snap.Player.X != want {
		t.Errorf("X = %v, want %v", snap.Player.X, want)
	}
	if len(snap.PlayerBullets) != 0 {
		t.Errorf("bullets = %d after plain mouse move, want 0", len(snap.PlayerBullets))
	}

	h.HandleEvent(tcell.NewEventMouse(10, 5, tcell.Button1, tcell.ModNone))
	if n := len(g.Snapshot().PlayerBullets); n != 1 {
		t.Errorf("bullets = %d after click, want 1", n)
	}
}

func TestInputIgnoredInMenu(t *testing.T) {
	h, g := newTestInput(t)
	before := g.Snapshot().Player.X

	h.HandleEvent(key(tcell.KeyRight))
	h.HandleEvent(runeKey(' '))

	snap := g.Snapshot()
	if snap.Player.X != before {
		t.Errorf("X = %v in menu, want %v", snap.Player.X, before)
	}
	if len(snap.PlayerBullets) != 0 {
		t.Errorf("bullets = %d in menu, want 0", len(snap.PlayerBullets))
	}
}

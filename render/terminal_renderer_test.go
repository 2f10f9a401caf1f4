package render

import (
	"strings"
	"testing"
	"time"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/arcade-siege/component"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/game"
)

var testStart = time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)

func newTestScreen(t *testing.T, w, h int) tcell.SimulationScreen {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen.Init() error = %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(w, h)
	return screen
}

func cellAt(screen tcell.Screen, x, y int) rune {
	ch, _, _, _ := screen.GetContent(x, y)
	return ch
}

func rowText(screen tcell.Screen, y int) string {
	w, _ := screen.Size()
	var b strings.Builder
	for x := 0; x < w; x++ {
		b.WriteRune(cellAt(screen, x, y))
	}
	return b.String()
}

func screenContains(screen tcell.Screen, text string) bool {
	_, h := screen.Size()
	for y := 0; y < h; y++ {
		if strings.Contains(rowText(screen, y), text) {
			return true
		}
	}
	return false
}

func TestToCellMapsFieldCorners(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen, nil)

	tests := []struct {
		name     string
		x, y     float64
		col, row int
	}{
		{"top left", 0, 0, 0, constants.HUDRows},
		{"bottom right", constants.FieldWidth, constants.FieldHeight, 79, 22},
		{"centre", constants.FieldWidth / 2, constants.FieldHeight / 2, 40, 12},
		{"outside left clamps", -50, 100, 0, 3},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			col, row := r.ToCell(tt.x, tt.y)
			if col != tt.col || row != tt.row {
				t.Errorf("ToCell(%v, %v) = (%d, %d), want (%d, %d)", tt.x, tt.y, col, row, tt.col, tt.row)
			}
		})
	}
}

func TestToFieldXRoundTrips(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen, nil)

	for col := 0; col < 80; col++ {
		got, _ := r.ToCell(r.ToFieldX(col), 0)
		if got != col {
			t.Errorf("ToCell(ToFieldX(%d)) col = %d", col, got)
		}
	}
}

func TestRenderMenuOverlay(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	g := game.New(engine.NewMockTimeProvider(testStart), engine.Tuning{Seed: 1})
	r := NewTerminalRenderer(screen, nil)

	r.RenderFrame(g.Snapshot(), testStart)

	if !screenContains(screen, constants.TextMenu) {
		t.Errorf("menu title %q not drawn", constants.TextMenu)
	}
	if !screenContains(screen, constants.TextMenuHint) {
		t.Errorf("menu hint %q not drawn", constants.TextMenuHint)
	}
}

func TestRenderPlayingDrawsEntities(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	g := game.New(engine.NewMockTimeProvider(testStart), engine.Tuning{Seed: 1})
	hud := NewHUD()
	g.Subscribe(hud)
	g.StartGame()

	r := NewTerminalRenderer(screen, hud)
	snap := g.Snapshot()
	r.RenderFrame(snap, testStart)

	p := snap.Player
	col, row := r.ToCell(p.X, p.NoseY())
	if got := cellAt(screen, col, row); got != constants.GlyphPlayer {
		t.Errorf("player cell = %q, want %q", got, constants.GlyphPlayer)
	}

	boss := snap.Enemies[0]
	if boss.Kind != component.EnemyBoss {
		t.Fatalf("first enemy kind = %v, want Boss", boss.Kind)
	}
	col, row = r.ToCell(boss.X, boss.Y)
	if got, want := cellAt(screen, col, row), constants.EnemyGlyphs[component.EnemyBoss][0]; got != want {
		t.Errorf("boss cell = %q, want %q", got, want)
	}

	hudRow := rowText(screen, 0)
	if !strings.Contains(hudRow, "SCORE 0") || !strings.Contains(hudRow, "LIVES 3") {
		t.Errorf("HUD row = %q, want score and lives", hudRow)
	}
	if !strings.Contains(hudRow, "LEVEL 1") {
		t.Errorf("HUD row = %q, want level banner or counter", hudRow)
	}
	if screenContains(screen, constants.TextMenu) {
		t.Error("menu overlay drawn while playing")
	}

	status := rowText(screen, 23)
	if !strings.Contains(status, component.WeaponSingle.String()) {
		t.Errorf("status row = %q, want weapon name", status)
	}
}

func TestRenderGameOverOverlay(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen, nil)

	snap := engine.Snapshot{
		Player:  component.NewPlayer(),
		Session: engine.SessionSnapshot{Score: 420, Lives: 0, Level: 3, Phase: engine.PhaseGameOver},
	}
	r.RenderFrame(snap, testStart)

	if !screenContains(screen, constants.TextGameOver) {
		t.Errorf("%q not drawn", constants.TextGameOver)
	}
	if !screenContains(screen, "score 420, level 3") {
		t.Error("final score not drawn")
	}
}

func TestRenderLevelCompleteCountdown(t *testing.T) {
	screen := newTestScreen(t, 80, 24)
	r := NewTerminalRenderer(screen, nil)

	snap := engine.Snapshot{
		Player: component.NewPlayer(),
		Session: engine.SessionSnapshot{
			Level:              2,
			Phase:              engine.PhaseLevelComplete,
			CountdownRemaining: 1500 * time.Millisecond,
		},
	}
	r.RenderFrame(snap, testStart)

	if !screenContains(screen, "LEVEL 1 COMPLETE") {
		t.Error("level complete title not drawn for the finished level")
	}
	if !screenContains(screen, "next wave in 1.5s") {
		t.Error("countdown not drawn")
	}
}

func TestRenderTinyScreenDoesNotPanic(t *testing.T) {
	screen := newTestScreen(t, 4, 2)
	g := game.New(engine.NewMockTimeProvider(testStart), engine.Tuning{Seed: 1})
	g.StartGame()

	r := NewTerminalRenderer(screen, nil)
	r.RenderFrame(g.Snapshot(), testStart)

	screen.SetSize(1, 1)
	r.UpdateDimensions(screen.Size())
	r.RenderFrame(g.Snapshot(), testStart)
}

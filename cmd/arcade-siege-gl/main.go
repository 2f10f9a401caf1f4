package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/lixenwraith/arcade-siege/audio"
	"github.com/lixenwraith/arcade-siege/config"
	"github.com/lixenwraith/arcade-siege/constants"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/game"
	"github.com/lixenwraith/arcade-siege/render"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 uses the config or a time-based seed")
	scaleFlag  = flag.Float64("scale", 1.0, "Window scale factor")
)

// errQuit ends the ebiten loop on Escape
var errQuit = errors.New("quit")

// glGame adapts the simulation to ebiten's Update/Draw/Layout loop
type glGame struct {
	game   *game.Game
	hud    *render.HUD
	clock  engine.TimeProvider
	canvas *canvas

	lastCursorX int
	lastTick    time.Time
}

func (a *glGame) Update() error {
	if inpututil.IsKeyJustPressed(ebiten.KeyEscape) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return errQuit
	}

	if inpututil.IsKeyJustPressed(ebiten.KeyEnter) {
		switch a.game.Phase() {
		case engine.PhaseMenu, engine.PhaseGameOver:
			a.game.StartGame()
		}
	}

	if ebiten.IsKeyPressed(ebiten.KeyLeft) || ebiten.IsKeyPressed(ebiten.KeyH) {
		a.game.MoveDelta(-constants.PlayerSpeed)
	}
	if ebiten.IsKeyPressed(ebiten.KeyRight) || ebiten.IsKeyPressed(ebiten.KeyL) {
		a.game.MoveDelta(constants.PlayerSpeed)
	}

	// Mouse steers only when it moves so the keyboard keeps control otherwise
	if x, _ := ebiten.CursorPosition(); x != a.lastCursorX {
		a.lastCursorX = x
		a.game.MoveTo(float64(x))
	}

	if inpututil.IsKeyJustPressed(ebiten.KeySpace) || inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		a.game.Fire()
	}

	now := a.clock.Now()
	dt := now.Sub(a.lastTick)
	a.lastTick = now
	a.game.Tick(min(dt, constants.MaxTickDelta))
	return nil
}

func (a *glGame) Draw(screen *ebiten.Image) {
	now := a.clock.Now()
	a.canvas.draw(screen, a.game.Snapshot(), a.hud.State(now))
}

func (a *glGame) Layout(outsideWidth, outsideHeight int) (int, int) {
	return int(constants.FieldWidth), int(constants.FieldHeight)
}

func main() {
	flag.Parse()

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	tuning := cfg.Tuning()
	if *seedFlag != 0 {
		tuning.Seed = *seedFlag
	}
	clock := engine.NewTimeProvider()
	g := game.New(clock, tuning)
	defer g.Stop()

	hud := render.NewHUD()
	g.Subscribe(hud)

	audioCfg := cfg.AudioSettings()
	if *muteFlag {
		audioCfg.Enabled = false
	}
	soundManager := audio.NewSoundManager(audioCfg)
	if err := soundManager.Initialize(); err != nil {
		log.Printf("audio: %v, continuing without audio", err)
	} else if soundManager.Initialized() {
		defer soundManager.Cleanup()
		g.Subscribe(audio.NewNotifier(soundManager))
	}

	ebiten.SetWindowSize(int(constants.FieldWidth*(*scaleFlag)), int(constants.FieldHeight*(*scaleFlag)))
	ebiten.SetWindowTitle("Arcade Siege")
	ebiten.SetTPS(cfg.TickRate)

	app := &glGame{
		game:     g,
		hud:      hud,
		clock:    clock,
		canvas:   newCanvas(),
		lastTick: clock.Now(),
	}
	if err := ebiten.RunGame(app); err != nil && !errors.Is(err, errQuit) {
		log.Fatal(err)
	}
}

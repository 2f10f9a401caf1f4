package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/gdamore/tcell/v2"
	"github.com/lixenwraith/arcade-siege/audio"
	"github.com/lixenwraith/arcade-siege/config"
	"github.com/lixenwraith/arcade-siege/core"
	"github.com/lixenwraith/arcade-siege/engine"
	"github.com/lixenwraith/arcade-siege/game"
	"github.com/lixenwraith/arcade-siege/render"
)

var (
	configFlag = flag.String("config", "", "Path to a YAML config file")
	debugFlag  = flag.Bool("debug", false, "Write logs to logs/arcade-siege.log")
	muteFlag   = flag.Bool("mute", false, "Disable audio")
	seedFlag   = flag.Int64("seed", 0, "Random seed, 0 uses the config or a time-based seed")
)

func main() {
	flag.Parse()

	if logFile := setupLogging(*debugFlag); logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	screen.SetStyle(tcell.StyleDefault.Background(tcell.ColorBlack).Foreground(tcell.ColorWhite))
	screen.HideCursor()
	screen.EnableMouse()

	// Crash path restores the terminal before the stack trace is printed
	core.SetResetHook(screen.Fini)
	defer func() {
		if r := recover(); r != nil {
			core.HandleCrash(r)
		}
	}()
	defer screen.Fini()

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

	renderer := render.NewTerminalRenderer(screen, hud)
	input := newInputHandler(g, renderer)

	scheduler := engine.NewClockScheduler(clock, cfg.TickInterval(), g.Tick)
	scheduler.Start()
	defer scheduler.Stop()

	eventChan := make(chan tcell.Event, 256)
	core.Go(func() {
		for {
			ev := screen.PollEvent()
			if ev == nil {
				return
			}
			eventChan <- ev
		}
	})

	log.Printf("arcade-siege: started, tick %v, seed %d", cfg.TickInterval(), tuning.Seed)

	for {
		select {
		case ev := <-eventChan:
			if !input.HandleEvent(ev) {
				log.Printf("arcade-siege: quit at score %d", g.Session().Score)
				return
			}

		case <-scheduler.UpdateDone():
			renderer.RenderFrame(g.Snapshot(), clock.Now())
		}
	}
}

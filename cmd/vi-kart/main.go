package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"runtime/debug"

	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/vi-kart/audio"
	"github.com/lixenwraith/vi-kart/config"
	"github.com/lixenwraith/vi-kart/constant"
	"github.com/lixenwraith/vi-kart/engine"
	"github.com/lixenwraith/vi-kart/input"
	"github.com/lixenwraith/vi-kart/render"
	"github.com/lixenwraith/vi-kart/status"
)

var (
	configFlag = flag.String("config", "", "Path to a TOML config file")
	debugFlag  = flag.Bool("debug", false, "Write a debug log to logs/vi-kart.log")
	muteFlag   = flag.Bool("mute", false, "Start with sound muted")
)

func main() {
	flag.Parse()

	logFile := setupLogging(*debugFlag)
	if logFile != nil {
		defer logFile.Close()
	}

	cfg, err := config.Load(*configFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-kart: %v\n", err)
		os.Exit(1)
	}

	reg := status.NewRegistry()
	clock := engine.NewMonotonicTimeProvider()
	held := input.NewHeldKeys(clock, cfg.HoldWindow())

	director, tr, err := buildRace(cfg, held, reg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "vi-kart: %v\n", err)
		os.Exit(1)
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to create terminal screen: %v\n", err)
		os.Exit(1)
	}
	if err := screen.Init(); err != nil {
		fmt.Fprintf(os.Stderr, "Failed to initialize terminal: %v\n", err)
		os.Exit(1)
	}
	// Normal exit terminal cleanup
	defer screen.Fini()

	// Restores the terminal before printing, stack traces are unreadable in raw mode
	crash := func(where string, r any) {
		screen.Fini()
		fmt.Fprintf(os.Stderr, "\n\x1b[31mVI-KART %s CRASHED: %v\x1b[0m\n", where, r)
		fmt.Fprintf(os.Stderr, "Stack Trace:\n%s\n", debug.Stack())
		log.Printf("%s crashed: %v\n%s", where, r, debug.Stack())
		os.Exit(1)
	}
	defer func() {
		if r := recover(); r != nil {
			crash("GAME LOOP", r)
		}
	}()

	sound := audio.NewSoundManager(cfg.AudioSettings(), reg)
	if err := sound.Initialize(); err != nil {
		log.Printf("audio initialization failed: %v (continuing without audio)", err)
	} else {
		defer sound.Cleanup()
	}
	if *muteFlag {
		sound.ToggleMute()
	}
	director.Subscribe(sound)

	presenter := render.NewTerminalPresenter(screen, tr, render.Hints{
		Footer: footerHint(cfg.Controls),
		Idle:   idleHint(cfg.Controls),
	})

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	actions := actionKeys(cfg.Controls)
	requests := make(chan action, constant.KeyEventBuffer)

	// Input polling uses raw goroutine as it interacts directly with terminal
	go func() {
		defer func() {
			if r := recover(); r != nil {
				crash("EVENT POLLER", r)
			}
		}()

		for {
			ev := screen.PollEvent()
			switch ev := ev.(type) {
			case nil:
				// Screen finalized
				cancel()
				return
			case *tcell.EventResize:
				screen.Sync()
			case *tcell.EventKey:
				a := classify(ev, actions)
				if a == actionQuit {
					cancel()
					return
				}
				if a != actionNone {
					select {
					case requests <- a:
					default:
						// Loop stalled, drop the request
					}
					continue
				}
				held.HandleEvent(ev)
			}
		}
	}()

	// Requests apply between ticks, so Start never interleaves with a step
	applyRequests := func() {
		for {
			select {
			case a := <-requests:
				switch a {
				case actionStart:
					held.Clear()
					director.Start()
				case actionToggleAI:
					on := director.ToggleAI(aiTarget)
					log.Printf("kart %s AI=%v", director.Kart(aiTarget).Name, on)
				case actionMute:
					sound.ToggleMute()
				}
			default:
				return
			}
		}
	}

	driver := engine.NewFrameDriver(clock, constant.FrameUpdateInterval, constant.MaxFrameStep, func(dt float64) {
		director.Tick(dt)
		presenter.Present(director.Snapshot())
	}, reg)

	if err := driver.Run(ctx, applyRequests); err != nil && err != context.Canceled {
		log.Printf("game loop stopped: %v", err)
	}

	for _, line := range reg.Lines() {
		log.Println(line)
	}
}

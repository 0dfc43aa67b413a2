package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/slithergame/slither/client/audio"
	clientgame "github.com/slithergame/slither/client/game"
	"github.com/slithergame/slither/pkg/game"
	"github.com/slithergame/slither/pkg/log"
	"github.com/slithergame/slither/pkg/version"
)

func main() {
	logLevel := flag.String("log-level", "info", "Log level")
	gridWidth := flag.Int("grid-width", 0, "Grid width in cells (0 for default)")
	gridHeight := flag.Int("grid-height", 0, "Grid height in cells (0 for default)")
	tickInterval := flag.Duration("tick-interval", 0, "Simulation tick interval (0 for default)")
	fruitCount := flag.Int("fruit-count", 0, "Number of food items on the board (0 for default)")
	seed := flag.Int64("seed", 0, "Random seed (0 for time-based)")
	debug := flag.Bool("debug", false, "Show the debug overlay")
	flag.Parse()

	parsedLogLevel, err := log.ParseLogLevel(*logLevel)
	if err != nil {
		panic(fmt.Sprintf("Failed to parse log level: %v", err))
	}

	logger := log.New(os.Stdout, "", log.DefaultLoggerFlag, parsedLogLevel)
	log.SetDefaultLogger(logger)
	log.Info("Log level set to %s", parsedLogLevel)

	log.Info("Starting slither version %s", version.Get())

	cfg := game.DefaultConfig()
	if *gridWidth > 0 {
		cfg.GridWidth = *gridWidth
	}
	if *gridHeight > 0 {
		cfg.GridHeight = *gridHeight
	}
	if *tickInterval > 0 {
		cfg.TickInterval = *tickInterval
	}
	if *fruitCount > 0 {
		cfg.FruitCount = *fruitCount
	}

	rngSeed := *seed
	if rngSeed == 0 {
		rngSeed = time.Now().UnixNano()
	}

	if err := audio.Init(); err != nil {
		log.Warn("Failed to initialize audio, continuing without sound: %v", err)
	}

	state := game.NewState(cfg, rngSeed)
	engine := game.NewEngine(state)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan struct{})
	go func() {
		defer close(done)
		if err := engine.Run(ctx); err != nil {
			log.Error("Engine stopped with error: %v", err)
		}
	}()

	g, err := clientgame.NewGame(clientgame.NewGameOptions{
		Debug: *debug,
		State: state,
	})
	if err != nil {
		panic(fmt.Sprintf("Failed to create game: %v", err))
	}

	ebiten.SetWindowSize(clientgame.DefaultScreenWidth, clientgame.DefaultScreenHeight)
	ebiten.SetWindowTitle("Slither")
	if err := ebiten.RunGame(g); err != nil {
		panic(fmt.Sprintf("Failed to run game: %v", err))
	}

	cancel()
	<-done
	log.Info("Shutdown complete")
}

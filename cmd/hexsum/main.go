package main

import (
	"flag"
	"log"
	"math/rand/v2"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/ingyamilmolinar/hexsum/internal/audio"
	"github.com/ingyamilmolinar/hexsum/internal/config"
	game_log "github.com/ingyamilmolinar/hexsum/internal/log"
	"github.com/ingyamilmolinar/hexsum/internal/ui"
)

func main() {
	configPath := flag.String("config", "", "path to the YAML config (default $HEXSUM_CONFIG or "+config.DefaultPath+")")
	seed := flag.Uint64("seed", 0, "random seed; 0 uses the config value or the clock")
	logLevel := flag.String("log-level", "", "debug, info, warn, error or none; overrides the config")
	flag.Parse()

	cfg, err := config.LoadOrDefault(config.ResolvePath(*configPath))
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	if *logLevel != "" {
		cfg.Log.Level = *logLevel
	}
	if *seed != 0 {
		cfg.Game.Seed = *seed
	}
	if cfg.Game.Seed == 0 {
		cfg.Game.Seed = uint64(time.Now().UnixNano())
	}

	logger := game_log.New(os.Stderr, game_log.LevelFromString(cfg.Log.Level))
	logger.Infof("Starting hexsum: seed=%d audio=%t volume=%.2f", cfg.Game.Seed, cfg.Audio.AudioOn(), cfg.Audio.Volume)

	audio.SetLogger(logger)
	audio.Configure(cfg.Audio.AudioOn(), cfg.Audio.Volume)

	g := ui.New(logger, rand.New(rand.NewPCG(cfg.Game.Seed, cfg.Game.Seed^0x9e3779b97f4a7c15)))

	// Window settings are ignored on WASM builds.
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetWindowTitle(cfg.Window.Title)

	if err := ebiten.RunGame(g); err != nil {
		log.Fatal(err)
	}
}

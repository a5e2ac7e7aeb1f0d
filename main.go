package main

import (
	"errors"
	"flag"
	"fmt"
	"log"
	"os"
	"time"

	"golang.org/x/exp/rand"

	"snake-arcade/config"
	"snake-arcade/game"
	"snake-arcade/sound"
	"snake-arcade/ui"
	"snake-arcade/ui/terminal"
)

const (
	exitOK       = 0
	exitResource = 1
	exitStartup  = 2
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	cfg, debug, err := parseArgs(args)
	if errors.Is(err, flag.ErrHelp) {
		return exitOK
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "An error has occurred: %v\n", err)
		return exitStartup
	}

	if logFile := setupLogging(debug); logFile != nil {
		defer logFile.Close()
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = uint64(time.Now().UnixNano())
	}
	log.Printf("starting %s frontend, %dx%d board, seed %d", cfg.Frontend, cfg.ScreenWidth, cfg.ScreenHeight, seed)

	surface, closeSurface, err := openSurface(cfg)
	if err != nil {
		fmt.Fprintf(os.Stderr, "An error has occurred: %v\n", err)
		return exitCode(err)
	}
	defer closeSurface()

	var opts []game.Option
	if !cfg.Mute {
		if player, err := sound.NewPlayer(); err != nil {
			log.Printf("Audio initialization failed: %v (continuing without audio)", err)
		} else {
			defer player.Close()
			opts = append(opts, game.WithSounds(player))
		}
	}

	g := game.NewGame(cfg, surface, rand.New(rand.NewSource(seed)), opts...)
	code := g.Run()
	log.Printf("session ended: %v, length %d", g.Cause(), g.Snake().Length())
	return code
}

// parseArgs builds the startup config: defaults, then the -config file,
// then any flag given on the command line.
func parseArgs(args []string) (config.Config, bool, error) {
	fs := flag.NewFlagSet("snake", flag.ContinueOnError)
	configPath := fs.String("config", "", "YAML file with startup settings")
	debug := fs.Bool("debug", false, "Write a debug log to "+logDir+"/"+logFileName)

	flags := config.Default()
	fs.StringVar(&flags.Frontend, "frontend", flags.Frontend, "Frontend: window or terminal")
	fs.Uint64Var(&flags.Seed, "seed", flags.Seed, "Food spawner seed (0 = time based)")
	fs.IntVar(&flags.FrameRate, "fps", flags.FrameRate, "Frames (simulation steps) per second")
	fs.IntVar(&flags.FoodCount, "food", flags.FoodCount, "Number of food items")
	fs.IntVar(&flags.SnakeLength, "length", flags.SnakeLength, "Initial snake length")
	fs.StringVar(&flags.FontPath, "font", flags.FontPath, "Font file for the window frontend")
	fs.BoolVar(&flags.Mute, "mute", flags.Mute, "Disable sound")
	if err := fs.Parse(args); err != nil {
		return config.Config{}, false, err
	}

	cfg := config.Default()
	if *configPath != "" {
		var err error
		if cfg, err = config.Load(*configPath); err != nil {
			return cfg, *debug, fmt.Errorf("failed to load config: %w", err)
		}
	}

	fs.Visit(func(f *flag.Flag) {
		switch f.Name {
		case "frontend":
			cfg.Frontend = flags.Frontend
		case "seed":
			cfg.Seed = flags.Seed
		case "fps":
			cfg.FrameRate = flags.FrameRate
		case "food":
			cfg.FoodCount = flags.FoodCount
		case "length":
			cfg.SnakeLength = flags.SnakeLength
		case "font":
			cfg.FontPath = flags.FontPath
		case "mute":
			cfg.Mute = flags.Mute
		}
	})

	return cfg, *debug, cfg.Validate()
}

func openSurface(cfg config.Config) (game.Surface, func(), error) {
	if cfg.Frontend == config.FrontendTerminal {
		s, err := terminal.New(cfg)
		if err != nil {
			return nil, nil, err
		}
		return s, s.Close, nil
	}
	w, err := ui.NewWindow(cfg)
	if err != nil {
		return nil, nil, err
	}
	return w, w.Close, nil
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case errors.Is(err, game.ErrResourceNotFound), errors.Is(err, game.ErrResourceLoad):
		return exitResource
	default:
		return exitStartup
	}
}

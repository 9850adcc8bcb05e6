package main

import (
	"fmt"
	"os"

	"shapes-demo/internal/config"
	"shapes-demo/internal/demo"
	"shapes-demo/internal/env"
	"shapes-demo/internal/geometry"
	"shapes-demo/internal/graphics"
	"shapes-demo/internal/logger"
)

func main() {
	if err := env.Load(".env"); err != nil {
		fmt.Fprintln(os.Stderr, err)
	}
	path := os.Getenv(config.EnvPath)
	if path == "" {
		path = config.DefaultPath
	}
	cfg, loadErr := config.Load(path)
	envErr := cfg.ApplyEnv(os.Getenv)

	log := logger.New(cfg.LogPath)
	for _, err := range []error{loadErr, envErr} {
		if err != nil {
			log.Log(err.Error())
		}
	}
	if err := cfg.Validate(); err != nil {
		log.Log(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}

	palette := geometry.NewSeededPalette(cfg.PaletteSize, cfg.Seed)
	log.Logf("palette of %d colours, seed %d", palette.Len(), cfg.Seed)

	game := demo.New(cfg, palette, graphics.Keyboard{}, log)
	if err := graphics.Run(cfg, game, log); err != nil {
		log.Log(err.Error())
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

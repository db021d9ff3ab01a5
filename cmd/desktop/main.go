// pirate-platformer-desktop plays a level in a window.
package main

import (
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"

	"pirate-platformer/internal/config"
	"pirate-platformer/internal/gui"
	"pirate-platformer/internal/level"
	"pirate-platformer/internal/profiling"
	"pirate-platformer/internal/session"

	"github.com/hajimehoshi/ebiten/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults to $GAME_CONFIG)")
	levelPath := flag.String("level", "", "Level file (default: built-in harbor)")
	generate := flag.Bool("generate", false, "Play a generated level")
	seed := flag.Int64("seed", 1, "Seed for -generate")
	prof := flag.String("profile", "", "Profile mode: cpu or mem")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	if err := run(logger, *configPath, level.Source{Path: *levelPath, Generate: *generate, Seed: *seed}, *prof); err != nil {
		logger.Error("desktop stopped", "error", err)
		os.Exit(1)
	}
}

func run(logger *slog.Logger, configPath string, src level.Source, prof string) error {
	stopProfile, err := profiling.Start(prof)
	if err != nil {
		return err
	}
	defer stopProfile()

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	name, m, err := src.Open()
	if err != nil {
		return err
	}
	s, err := session.New(m, cfg, nil, logger)
	if err != nil {
		return err
	}
	defer s.Close()

	g := gui.New(s, cfg.Loop.TickHz)
	w, h := g.Size()
	ebiten.SetWindowSize(w, h)
	ebiten.SetWindowTitle(fmt.Sprintf("Pirate Platformer: %s", name))
	ebiten.SetTPS(cfg.Loop.TickHz)

	logger.Info("window open", "level", name, "width", w, "height", h)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return fmt.Errorf("run game: %w", err)
	}
	return nil
}

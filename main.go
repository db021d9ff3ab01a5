// pirate-platformer plays a level in the terminal.
package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"

	"pirate-platformer/internal/config"
	"pirate-platformer/internal/game"
	"pirate-platformer/internal/level"
	"pirate-platformer/internal/profiling"

	"github.com/gdamore/tcell/v2"
)

func main() {
	configPath := flag.String("config", "", "YAML config file (defaults to $GAME_CONFIG)")
	levelPath := flag.String("level", "", "Level file (default: built-in harbor)")
	generate := flag.Bool("generate", false, "Play a generated level")
	seed := flag.Int64("seed", 1, "Seed for -generate")
	logPath := flag.String("log", "pirate-platformer.log", "Log file; the terminal owns stdout")
	verbose := flag.Bool("v", false, "Debug logging")
	prof := flag.String("profile", "", "Profile mode: cpu or mem")
	saveRuns := flag.Bool("save-runs", true, "Append a summary of each run to the XDG data dir")
	flag.Parse()

	if err := run(*configPath, level.Source{Path: *levelPath, Generate: *generate, Seed: *seed}, *logPath, *verbose, *prof, *saveRuns); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func run(configPath string, src level.Source, logPath string, verbose bool, prof string, saveRuns bool) error {
	stopProfile, err := profiling.Start(prof)
	if err != nil {
		return err
	}
	defer stopProfile()

	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("open log: %w", err)
	}
	defer logFile.Close()
	opts := &slog.HandlerOptions{}
	if verbose {
		opts.Level = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(logFile, opts))

	cfg, err := config.Load(configPath)
	if err != nil {
		return err
	}
	name, m, err := src.Open()
	if err != nil {
		return err
	}

	screen, err := tcell.NewScreen()
	if err != nil {
		return fmt.Errorf("create screen: %w", err)
	}
	if err := screen.Init(); err != nil {
		return fmt.Errorf("init screen: %w", err)
	}
	defer screen.Fini()

	g, err := game.New(screen, cfg, name, m, nil, logger)
	if err != nil {
		return err
	}
	g.SaveRuns = saveRuns

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()
	return g.Run(ctx)
}

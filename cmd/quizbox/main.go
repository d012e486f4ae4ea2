package main

import (
	"errors"
	"fmt"
	"os"

	clog "github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"quizbox/internal/canvas"
	"quizbox/internal/content"
	"quizbox/internal/game"
	"quizbox/internal/telemetry"
)

func main() {
	cfg := game.DefaultConfig()

	root := &cobra.Command{
		Use:           "quizbox",
		Short:         "Animated multiple-choice quizzes in the terminal",
		Long:          "quizbox plays animated multiple-choice quizzes in the terminal\nand tells you what your answers say about you.",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cfg)
		},
	}
	root.Flags().StringVar(&cfg.PacksDir, "packs", cfg.PacksDir, "directory of quiz packs")
	root.Flags().StringVar(&cfg.LogPath, "log", cfg.LogPath, "telemetry log file (empty disables logging)")
	root.Flags().StringVar(&cfg.QuizID, "quiz", cfg.QuizID, "start this quiz directly, skipping the menu")
	root.Flags().Int64Var(&cfg.Seed, "seed", cfg.Seed, "random seed (0 seeds from the clock)")
	root.Flags().BoolVar(&cfg.Debug, "debug", cfg.Debug, "log debug events")

	if err := root.Execute(); err != nil {
		os.Exit(1)
	}
}

func run(cfg game.Config) error {
	if err := cfg.Validate(); err != nil {
		clog.Error("invalid configuration", "err", err)
		return err
	}

	log, err := telemetry.NewLogger(cfg.LogPath, cfg.Debug)
	if err != nil {
		clog.Error("open log file", "path", cfg.LogPath, "err", err)
		return err
	}
	defer log.Close()

	packs, err := content.NewLoader().LoadPacks(cfg.PacksDir)
	if err != nil {
		clog.Error("load quiz packs", "dir", cfg.PacksDir, "err", err)
		return err
	}
	if len(packs) == 0 {
		clog.Error("no quiz packs found", "dir", cfg.PacksDir)
		return fmt.Errorf("no quiz packs in %s", cfg.PacksDir)
	}

	screen, err := canvas.New()
	if err != nil {
		clog.Error("initialize terminal", "err", err)
		return err
	}
	defer screen.Fini()

	g, err := game.New(cfg, log, screen, packs)
	if err != nil {
		screen.Fini()
		clog.Error("start game", "err", err)
		return err
	}

	err = g.Run()
	// Restore the terminal before anything prints.
	screen.Fini()
	if errors.Is(err, canvas.ErrInterrupted) {
		log.Info("player left", nil)
		fmt.Println("Thanks for playing!")
		return nil
	}
	if err != nil {
		log.Error("game aborted", map[string]any{"err": err.Error()})
		clog.Error("game aborted", "err", err)
	}
	return err
}

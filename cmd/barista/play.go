package main

import (
	"context"
	"fmt"
	"os"
	"os/user"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/barista/internal/core"
	"github.com/vovakirdan/barista/internal/platform/tui"
)

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Brew a cup in the local terminal",
	Long: `Start a pour session in the local terminal.

Controls:
  Hold left mouse - Tip the pot and pour
  Space           - Toggle pouring (for terminals without mouse)
  Enter           - Start brewing / serve / brew another cup
  Ctrl+S          - Save a text screenshot to ~/.barista/screenshots
  Q/Ctrl+C        - Quit

Logs go to ~/.barista/barista.log unless --log-file is given.

Examples:
  barista play
  barista play --fps 30
  barista play --config ./slow-pour.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func runPlay(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	a, err := setup(ctx, setupOptions{logToFile: true, journal: true, fortunes: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	width, height := 80, 24 // Defaults
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	player := ""
	if u, userErr := user.Current(); userErr == nil {
		player = u.Username
	}

	a.logger.Info("session started", "player", player, "offline", a.generator.Offline())
	err = tui.Run(tui.Options{
		Params:    a.cfg.Params(),
		Generator: a.generator,
		Store:     a.store,
		Logger:    a.logger,
		Player:    player,
		Context:   ctx,
		Config: core.RuntimeConfig{
			ScreenW:  width,
			ScreenH:  height,
			TickRate: flagFPS,
		},
	})
	a.logger.Info("session ended", "player", player)
	if err != nil {
		a.Close()
		fmt.Fprintf(os.Stderr, "Error running game: %v\n", err)
		os.Exit(1)
	}
}

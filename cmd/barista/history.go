package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/barista/internal/platform/tui"
	"github.com/vovakirdan/barista/internal/storage"
)

var (
	flagHistoryBest        bool
	flagHistoryLimit       int
	flagHistoryPlayer      string
	flagHistoryInteractive bool
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show the pour journal",
	Long: `Display recorded pours with their fortunes.

Examples:
  barista history
  barista history --best --limit 5
  barista history --player alice
  barista history -i             # browse in a table`,
	Args: cobra.NoArgs,
	Run:  runHistory,
}

func init() {
	historyCmd.Flags().BoolVar(&flagHistoryBest, "best", false, "Show the highest rated pours instead of the most recent")
	historyCmd.Flags().IntVar(&flagHistoryLimit, "limit", 10, "Number of pours to show")
	historyCmd.Flags().StringVar(&flagHistoryPlayer, "player", "", "Only show pours of this player")
	historyCmd.Flags().BoolVarP(&flagHistoryInteractive, "interactive", "i", false, "Browse the journal in a table")
}

func runHistory(_ *cobra.Command, _ []string) {
	if flagDBPath == "" {
		fmt.Fprintln(os.Stderr, "Error: the pour journal is disabled (--db is empty)")
		os.Exit(1)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening pour journal: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if flagHistoryInteractive {
		width, height := 100, 30
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width, height = w, h
		}
		if err := tui.RunHistory(store, width, height); err != nil {
			store.Close()
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		return
	}

	var pours []storage.PourEntry
	title := "Recent Pours"
	switch {
	case flagHistoryPlayer != "":
		title = "Recent Pours - " + flagHistoryPlayer
		pours, err = store.PlayerPours(flagHistoryPlayer, flagHistoryLimit)
	case flagHistoryBest:
		title = "Best Pours"
		pours, err = store.BestPours(flagHistoryLimit)
	default:
		pours, err = store.RecentPours(flagHistoryLimit)
	}
	if err != nil {
		store.Close()
		fmt.Fprintf(os.Stderr, "Error retrieving pours: %v\n", err)
		os.Exit(1)
	}

	fmt.Println(title)
	fmt.Println()

	if len(pours) == 0 {
		fmt.Println("No pours recorded yet.")
		fmt.Println()
		fmt.Println("Run 'barista play' to brew your first cup!")
		return
	}

	fmt.Printf("  %-3s  %-7s  %-6s  %-5s  %-6s  %-16s  %s\n", "#", "Fill", "Time", "Spill", "Rating", "Date", "Title")
	fmt.Printf("  %-3s  %-7s  %-6s  %-5s  %-6s  %-16s  %s\n", "-", "----", "----", "-----", "------", "----", "-----")

	for i, p := range pours {
		spill := "no"
		if p.Stats.Spilled {
			spill = "yes"
		}
		fmt.Printf("  %-3d  %-7s  %-6s  %-5s  %-6s  %-16s  %s\n",
			i+1,
			fmt.Sprintf("%.1f%%", p.Stats.FillPercentage),
			fmt.Sprintf("%.1fs", p.Stats.TimeTaken),
			spill,
			fmt.Sprintf("%d/10", p.Fortune.Rating),
			p.CreatedAt.Format("2006-01-02 15:04"),
			p.Fortune.Title,
		)
	}

	fmt.Println()
	if sum, err := store.Summary(); err == nil {
		fmt.Printf("Pours: %d  Spills: %d  Best: %d/10\n", sum.Pours, sum.Spills, sum.BestRating)
	}
}

package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/barista/internal/fortune"
)

var (
	flagFill    float64
	flagSpilled bool
	flagTime    float64
	flagJSON    bool
)

var fortuneCmd = &cobra.Command{
	Use:   "fortune",
	Short: "Read the fortune of a pour without playing",
	Long: `Ask for the coffee fortune of a pour described on the command line.
Uses the same generator as the game: Gemini when a key is set, the offline
reading otherwise.

Examples:
  barista fortune --fill 87.5 --time 4.2
  barista fortune --fill 112 --spilled --time 6
  barista fortune --fill 60 --json`,
	Args: cobra.NoArgs,
	Run:  runFortune,
}

func init() {
	fortuneCmd.Flags().Float64Var(&flagFill, "fill", 88, "Fill percentage (above 100 is an overflow)")
	fortuneCmd.Flags().BoolVar(&flagSpilled, "spilled", false, "Whether the cup overflowed")
	fortuneCmd.Flags().Float64Var(&flagTime, "time", 4, "Seconds spent pouring")
	fortuneCmd.Flags().BoolVar(&flagJSON, "json", false, "Print the fortune as JSON")
}

func runFortune(cmd *cobra.Command, _ []string) {
	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}

	if flagFill <= 0 || flagTime < 0 {
		fmt.Fprintln(os.Stderr, "Error: --fill must be positive and --time not negative")
		os.Exit(1)
	}

	a, err := setup(ctx, setupOptions{fortunes: true})
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	defer a.Close()

	stats := fortune.PourStats{
		FillPercentage: flagFill,
		Spilled:        flagSpilled || flagFill > 100,
		TimeTaken:      flagTime,
	}
	res := a.generator.Generate(ctx, stats)

	if flagJSON {
		enc := json.NewEncoder(os.Stdout)
		enc.SetIndent("", "  ")
		//nolint:errcheck // Stdout write failures are not recoverable
		enc.Encode(res.Fortune)
		return
	}

	fmt.Println(res.Fortune.Title)
	fmt.Printf("Barista Rating %d/10\n", res.Fortune.Rating)
	fmt.Println()
	fmt.Println("The Oracle Speaks")
	fmt.Printf("  %q\n", res.Fortune.Fortune)
	fmt.Println()
	fmt.Println("Technique Critique")
	fmt.Printf("  %s\n", res.Fortune.BaristaComment)
	if res.Source != fortune.SourceRemote {
		fmt.Println()
		fmt.Printf("(%s reading)\n", res.Source)
	}
}

package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/CuriAlexity/snake-arcade/internal/eventlog"
	"github.com/CuriAlexity/snake-arcade/internal/platform/tui"
)

var flagInteractive bool

var runsCmd = &cobra.Command{
	Use:   "runs",
	Short: "Show past run records",
	Long: `Display the end-of-run records from the event log, newest first.

Examples:
  snake runs
  snake runs --interactive
  snake runs --log-dir ./logs`,
	Args: cobra.NoArgs,
	Run:  runRuns,
}

func init() {
	runsCmd.Flags().BoolVar(&flagInteractive, "interactive", false, "Browse runs in an interactive table")
}

func runRuns(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}

	logger := newLogger(cfg.Log.Dir)
	runlog := eventlog.New(cfg.Log.Dir, logger)

	records, err := runlog.Records()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading run log: %v\n", err)
		os.Exit(1)
	}

	if flagInteractive {
		width, height := 80, 24
		if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
			width = w
			height = h
		}
		if histErr := tui.RunHistory(records, width, height); histErr != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", histErr)
			os.Exit(1)
		}
		return
	}

	fmt.Println("Run History")
	fmt.Println()

	if len(records) == 0 {
		fmt.Println("No runs recorded yet.")
		fmt.Println()
		fmt.Println("Play 'snake' to record the first run!")
		return
	}

	// Print header
	fmt.Printf("  %-17s  %-9s  %-13s  %-6s  %-7s  %s\n", "When", "Outcome", "Reason", "Score", "Length", "Speed")
	fmt.Printf("  %-17s  %-9s  %-13s  %-6s  %-7s  %s\n", "----", "-------", "------", "-----", "------", "-----")

	// Newest first
	for i := len(records) - 1; i >= 0; i-- {
		r := records[i]
		dateStr := time.Unix(r.TS, 0).Format("2006-01-02 15:04")
		fmt.Printf("  %-17s  %-9s  %-13s  %-6d  %-7d  %d\n", dateStr, r.Event, r.Reason, r.Score, r.Length, r.Speed)
	}

	// Show best score
	best := 0
	for _, r := range records {
		if r.Score > best {
			best = r.Score
		}
	}
	fmt.Println()
	fmt.Printf("Best: %d\n", best)
}

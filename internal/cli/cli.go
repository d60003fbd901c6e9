package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"github.com/crewcal/crewcal/internal/calendar"
	"github.com/crewcal/crewcal/internal/normalizer"
	"github.com/crewcal/crewcal/internal/schedule"
)

const (
	ExitSuccess = 0
	ExitError   = 1
)

var (
	flagInput     string
	flagExclude   string
	flagOutputDir string
	flagFormat    string
	flagVerbose   bool
	flagKeepOpen  bool
)

// NewRootCmd creates the root command
func NewRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "crewcal",
		Short: "Convert a pasted crew training schedule into an iCalendar file",
		Long: `Converts a copy-pasted crew training schedule into an iCalendar (.ics) file.
Paste your schedule webpage into a text file, then run crewcal to get a
calendar file with briefing-to-debriefing runs merged into single events.`,
		RunE: runConvert,
	}

	cmd.Flags().StringVar(&flagInput, "input", "schedule.txt", "Schedule text file to read")
	cmd.Flags().StringVar(&flagExclude, "exclude", "", "Comma-separated names to drop from crew notes")
	cmd.Flags().StringVar(&flagOutputDir, "output-dir", ".", "Directory to write the .ics file to")
	cmd.Flags().StringVar(&flagFormat, "format", "text", "Output format: text or json")
	cmd.Flags().BoolVar(&flagVerbose, "verbose", false, "Enable verbose logging")
	cmd.Flags().BoolVar(&flagKeepOpen, "keep-open-runs", false, "Emit briefing runs with no closing debriefing instead of dropping them")

	return cmd
}

// runConvert is the main command logic
func runConvert(cmd *cobra.Command, args []string) error {
	format := OutputFormat(strings.ToLower(flagFormat))
	if format != FormatText && format != FormatJSON {
		return fmt.Errorf("invalid format: %s (must be 'text' or 'json')", flagFormat)
	}

	data, err := os.ReadFile(flagInput)
	if err != nil {
		if os.IsNotExist(err) {
			return fmt.Errorf("%s not found; create it with your pasted schedule text", flagInput)
		}
		return fmt.Errorf("reading %s: %w", flagInput, err)
	}

	excludeNames := schedule.SplitExcludeNames(flagExclude)
	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Input file: %s\n", flagInput)
		fmt.Fprintf(os.Stderr, "Excluded names: %v\n", excludeNames)
	}

	canonical := normalizer.Normalize(string(data))
	events := schedule.ExtractWithOptions(canonical, schedule.Options{
		ExcludeNames: excludeNames,
		KeepOpenRuns: flagKeepOpen,
	})
	if len(events) == 0 {
		return fmt.Errorf("no valid events found in %s", flagInput)
	}

	if flagVerbose {
		fmt.Fprintf(os.Stderr, "Extracted %d events\n", len(events))
	}

	filename, doc, err := calendar.Build(events)
	if err != nil {
		return fmt.Errorf("generating calendar: %w", err)
	}

	outPath := filepath.Join(flagOutputDir, filename)
	if err := os.WriteFile(outPath, doc, 0o644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}

	result := &OutputResult{
		GeneratedAt: time.Now().UTC(),
		Filename:    outPath,
		EventCount:  len(events),
		Events:      events,
	}
	return WriteOutput(os.Stdout, result, format, flagVerbose)
}

// Execute runs the CLI
func Execute() {
	if err := NewRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(ExitError)
	}
}

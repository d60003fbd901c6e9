package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/crewcal/crewcal/internal/schedule"
)

// OutputFormat specifies the output format
type OutputFormat string

const (
	FormatText OutputFormat = "text"
	FormatJSON OutputFormat = "json"
)

// OutputResult contains data to be output
type OutputResult struct {
	GeneratedAt time.Time                `json:"generated_at"`
	Filename    string                   `json:"filename"`
	EventCount  int                      `json:"event_count"`
	Events      []schedule.TrainingEvent `json:"events"`
}

// WriteOutput writes the result in the specified format
func WriteOutput(w io.Writer, result *OutputResult, format OutputFormat, verbose bool) error {
	switch format {
	case FormatJSON:
		return writeJSON(w, result)
	case FormatText:
		return writeText(w, result, verbose)
	default:
		return fmt.Errorf("unknown format: %s", format)
	}
}

// writeJSON outputs results as JSON
func writeJSON(w io.Writer, result *OutputResult) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(result)
}

// writeText outputs results as human-readable text
func writeText(w io.Writer, result *OutputResult, verbose bool) error {
	fmt.Fprintf(w, "Calendar file created: %s\n", result.Filename)
	fmt.Fprintf(w, "Found %d events\n", result.EventCount)

	if !verbose {
		return nil
	}

	for _, evt := range result.Events {
		fmt.Fprintf(w, "\n%s %s - %s: %s\n", evt.Date, evt.StartTime, evt.EndTime, evt.Activity)
		if evt.Location != "" {
			fmt.Fprintf(w, "  Location: %s\n", evt.Location)
		}
		for _, line := range evt.CrewLines() {
			fmt.Fprintf(w, "  %s\n", line)
		}
	}
	return nil
}
